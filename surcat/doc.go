/*
Command surcat prints segment update request files.

A segment update request (SUR) commands rigid body adjustments --
piston, translation, tilt, clock -- to telescope mirror segments.
Updates are arranged in groups applied in sequence.  Surcat reads SUR
XML files and prints their contents as a summary, or regenerates the
XML text.

Usage

  Usage: surcat [options] <surfile>...   print segment update requests
         surcat -v                       display version and copyright

  Options:
         -x   write regenerated XML text
         -s   short, one line per update

The default output is an indented summary, one file per argument:

  SUR sur_ok_rel_gl.xml
          Group 1
                  Update 1, relative, global: {PISTON: -2.5e-08, ...}

With -s each update prints on one line with its segment id.  With -x
the document is regenerated from the parsed contents; the output
parses back to an identical document, which makes the option useful as
a normalization and consistency check before delivery.

-------------
Public domain.
*/
package main
