// Public domain.

// Package sur reads and writes Segment Update Request files.
//
// A SUR is an XML document commanding rigid body adjustments to
// telescope mirror segments.  Updates are arranged in ordered groups;
// group order is operationally meaningful, as commands may be applied
// group by group in sequence.
package sur

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/soniakeys/aperture/internal/xmltree"
)

// A SUR is one parsed segment update request document: its metadata
// and an ordered sequence of update groups.
type SUR struct {
	Filename string

	// root attributes, kept as the document carries them
	Creator     string
	Date        string
	Time        string
	Version     string
	Operational string

	ConfigurationName string
	CorrectionId      string

	Groups [][]*Update
}

// ReadFile reads a SUR from disk.
func ReadFile(filename string) (*SUR, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, err
	}
	s.Filename = filename
	return s, nil
}

// Read parses a SUR document from r.  The first malformed update
// aborts the parse.
func Read(r io.Reader) (*SUR, error) {
	root, err := xmltree.Decode(r)
	if err != nil {
		return nil, err
	}
	s := &SUR{
		Creator:     root.Attr["creator"],
		Date:        root.Attr["date"],
		Time:        root.Attr["time"],
		Version:     root.Attr["version"],
		Operational: root.Attr["operational"],
	}
	if e := root.Find("CONFIGURATION_NAME"); e != nil {
		s.ConfigurationName = e.Text
	}
	if e := root.Find("CORRECTION_ID"); e != nil {
		s.CorrectionId = e.Text
	}
	for _, grp := range root.FindAll("GROUP") {
		var updates []*Update
		for _, un := range grp.FindAll("UPDATE") {
			u, err := parseUpdate(un)
			if err != nil {
				return nil, err
			}
			updates = append(updates, u)
		}
		s.Groups = append(s.Groups, updates)
	}
	return s, nil
}

func (s *SUR) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "SUR %s\n", s.Filename)
	for i, grp := range s.Groups {
		fmt.Fprintf(&b, "\tGroup %d\n", i+1)
		for _, u := range grp {
			fmt.Fprintf(&b, "\t\t%v\n", u)
		}
	}
	return b.String()
}

// XMLText generates the XML document text for the SUR.  It is a pure
// function of the document contents: group ids renumber from 1 in
// sequence and update children emit in the fixed axis order.  Parsing
// the generated text yields a structurally identical document.
func (s *SUR) XMLText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n")
	fmt.Fprintf(&b, "<SEGMENT_UPDATE_REQUEST creator=\"%s\" date=\"%s\" time=\"%s\""+
		" version=\"%s\" operational=\"%s\""+
		" xmlns:xsi=\"http://www.w3.org/2001/XMLSchema-instance\""+
		" xsi:noNamespaceSchemaLocation=\"../../setup_files/schema/segment_update_request.xsd\">\n",
		s.Creator, s.Date, s.Time, s.Version, s.Operational)
	fmt.Fprintf(&b, "    <CONFIGURATION_NAME>%s</CONFIGURATION_NAME>\n", s.ConfigurationName)
	fmt.Fprintf(&b, "    <CORRECTION_ID>%s</CORRECTION_ID>\n", s.CorrectionId)
	for i, grp := range s.Groups {
		fmt.Fprintf(&b, "    <GROUP id=\"%d\">\n", i+1)
		for _, u := range grp {
			u.xmlText(&b)
		}
		b.WriteString("    </GROUP>\n")
	}
	b.WriteString("</SEGMENT_UPDATE_REQUEST>")
	return b.String()
}
