// Public domain.

// Package xmltree decodes an XML document into a generic element tree.
//
// The tree exposes just what the SIAF and SUR parsers consume: element
// tags, attributes, child elements in document order, and character
// data.  Namespace qualifiers are stripped; parsers see local names
// only.
package xmltree

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Element is one node of a parsed XML document.
type Element struct {
	Tag      string
	Attr     map[string]string
	Children []Element
	Text     string
}

// Decode reads a single XML document from r and returns its root
// element.
func Decode(r io.Reader) (*Element, error) {
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil, errors.New("xmltree.Decode: no root element")
		}
		if err != nil {
			return nil, err
		}
		if s, ok := tok.(xml.StartElement); ok {
			var root Element
			if err := decodeElement(d, s, &root); err != nil {
				return nil, err
			}
			return &root, nil
		}
	}
}

func decodeElement(d *xml.Decoder, s xml.StartElement, e *Element) error {
	e.Tag = s.Name.Local
	if len(s.Attr) > 0 {
		e.Attr = make(map[string]string, len(s.Attr))
		for _, a := range s.Attr {
			e.Attr[a.Name.Local] = a.Value
		}
	}
	var text []byte
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var c Element
			if err := decodeElement(d, t, &c); err != nil {
				return err
			}
			e.Children = append(e.Children, c)
		case xml.CharData:
			text = append(text, t...)
		case xml.EndElement:
			e.Text = strings.TrimSpace(string(text))
			return nil
		}
	}
}

// Find returns the first direct child with the given tag, or nil.
func (e *Element) Find(tag string) *Element {
	for i := range e.Children {
		if e.Children[i].Tag == tag {
			return &e.Children[i]
		}
	}
	return nil
}

// FindAll returns every element with the given tag in the subtree
// rooted at e, in document order.  e itself is not considered.
func (e *Element) FindAll(tag string) []*Element {
	var found []*Element
	for i := range e.Children {
		c := &e.Children[i]
		if c.Tag == tag {
			found = append(found, c)
		}
		found = append(found, c.FindAll(tag)...)
	}
	return found
}
