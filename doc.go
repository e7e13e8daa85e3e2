/*
Command aperture lists and plots science instrument apertures.

Contents

  Program overview
  Command line usage
  Configuring file locations
  Coordinate frames
  File format

Program overview

Input is a Science Instrument Aperture File (SIAF), the XML delivery of
geometric calibration data for one instrument: NIRCam, NIRSpec, NIRISS,
MIRI, or FGS.  For each aperture the program prints the aperture name,
the telescope pointing of the reference point as V2,V3 in arcsec, and
the V3 ideal Y angle.  With the -o option it also draws the aperture
outlines in a chosen coordinate frame and writes the drawing to an
image file.

Sample run:

  $ aperture -p ~/siaf NIRCam
  aperture version 0.1 Go source.
  Aperture                     V2         V3  V3IdlYAng
  NIRCAM A                 87.500   -497.100  1°15′0″

Command line usage

  Usage: aperture [options] <instrument>   list apertures of an instrument
         aperture -h                       display help
         aperture -v                       display version and copyright

  Options:
         -c <config-file>  TOML file locations config
         -p <path>         directory containing SIAF files
         -f <frame>        frame for plotting: Det, Sci, Idl, or Tel
         -o <image-file>   draw aperture outlines to this file

The instrument name is case sensitive and must be one of NIRCam,
NIRSpec, NIRISS, MIRI, or FGS.  The SIAF file is looked for in the -p
directory under the delivery file name, for example NIRCamSIAF.XML.

Configuring file locations

The -c option names a TOML file with keys

  path               directory containing SIAF files
  plot_cm            width and height of plot output, centimeters
  [files]            per instrument file name overrides
  NIRCam = "..."

Command line options take precedence over the config file.  A files
override bypasses the delivery naming convention but not the
instrument whitelist.

Coordinate frames

Each aperture relates four frames: Det, raw detector pixels; Sci,
pixels in DMS orientation; Idl, arcsec offsets from the aperture
reference point; and Tel, absolute telescope pointing angles V2,V3 in
arcsec.  The Sci-Idl relation is a fitted polynomial distortion
solution carried in the SIAF; the Idl-Tel relation is a planar tangent
plane approximation, adequate to about 1.7 mas at 10 arcmin from the
reference point.  Plots in the Idl and Tel frames draw V2 increasing
to the left.

File format

A SIAF document holds one SiafEntry element per aperture.  Within an
entry, leaf elements are scalar calibration fields, value/units pairs
are angles, and elt sequences are numeric arrays.  See package
github.com/soniakeys/aperture/siaf for the field set.

-------------
Public domain.
*/
package main
