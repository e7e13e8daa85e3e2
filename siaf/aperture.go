// Public domain.

package siaf

import (
	"fmt"
	"strconv"

	"github.com/soniakeys/unit"

	"github.com/soniakeys/aperture/internal/xmltree"
)

// An Aperture holds the geometric calibration of one instrument
// aperture and transforms positions between its four coordinate
// frames:
//
//	Det  raw detector pixels, readout orientation
//	Sci  pixels, conventional DMS orientation
//	Idl  arcsec offsets from the aperture reference point
//	Tel  telescope pointing angles V2,V3 in arcsec
//
// Apertures are immutable once parsed and safe to share.
type Aperture struct {
	AperName string

	// reference pixel in Det and Sci frames
	XDetRef, YDetRef float64
	XSciRef, YSciRef float64

	DetSciYAngle unit.Angle
	DetSciParity int // +1 or -1

	// telescope reference point, arcsec
	V2Ref, V3Ref float64

	V3IdlYAng  unit.Angle
	VIdlParity int // +1 or -1

	// aperture outline in the Idl frame, 4 vertices
	XIdlVert, YIdlVert [4]float64

	Sci2IdlDeg       int
	sci2idl, idl2sci poly

	// Fields outside the fixed schema are retained here rather than
	// dropped: Extra for numeric leaves, Text for non-numeric leaves,
	// Arrays for elt sequences.
	Extra  map[string]float64
	Text   map[string]string
	Arrays map[string][]float64
}

// SchemaError reports XML with a shape or token outside the fixed SIAF
// schema.  A load stops at the first SchemaError; there is no recovery.
type SchemaError struct {
	Tag    string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("siaf: unsupported schema at <%s>: %s", e.Tag, e.Reason)
}

// angleScale maps the units tokens of the SIAF schema to typed angles.
var angleScale = map[string]func(float64) unit.Angle{
	"RADIANS": func(v float64) unit.Angle { return unit.Angle(v) },
	"DEGREES": unit.AngleFromDeg,
	"ARCSECS": unit.AngleFromSec,
}

// parseAperture converts one SiafEntry subtree into an Aperture.
//
// Leaf nodes become scalar fields, numeric where they parse as numbers.
// A node with a units child is an angle/units pair.  A node with elt
// children is a numeric sequence.  Any other nested shape is a
// SchemaError, as is any missing required field.
func parseAperture(e *xmltree.Element) (*Aperture, error) {
	nums := make(map[string]float64)
	texts := make(map[string]string)
	angles := make(map[string]unit.Angle)
	arrays := make(map[string][]float64)

	for i := range e.Children {
		c := &e.Children[i]
		switch {
		case len(c.Children) == 0:
			if v, err := strconv.ParseFloat(c.Text, 64); err == nil {
				nums[c.Tag] = v
			} else {
				texts[c.Tag] = c.Text
			}
		case c.Find("units") != nil:
			a, err := parseAngle(c)
			if err != nil {
				return nil, err
			}
			angles[c.Tag] = a
		case c.Find("elt") != nil:
			elts := make([]float64, 0, len(c.Children))
			for j := range c.Children {
				el := &c.Children[j]
				if el.Tag != "elt" {
					continue
				}
				v, err := strconv.ParseFloat(el.Text, 64)
				if err != nil {
					return nil, &SchemaError{c.Tag, "elt " + el.Text + " not numeric"}
				}
				elts = append(elts, v)
			}
			arrays[c.Tag] = elts
		default:
			return nil, &SchemaError{c.Tag, "unrecognized nested node shape"}
		}
	}

	// The remaining work is moving parsed values into the enumerated
	// field set.  The closures record the first missing field and
	// consume values as they go; whatever is left over lands in the
	// auxiliary maps.
	var parseErr error
	num := func(tag string) float64 {
		v, ok := nums[tag]
		if !ok && parseErr == nil {
			parseErr = &SchemaError{tag, "required field missing"}
		}
		delete(nums, tag)
		return v
	}
	angle := func(tag string) unit.Angle {
		if a, ok := angles[tag]; ok {
			delete(angles, tag)
			return a
		}
		return unit.AngleFromDeg(num(tag)) // bare leaf angles are degrees
	}
	parity := func(tag string) int {
		p := int(num(tag))
		if p != 1 && p != -1 && parseErr == nil {
			parseErr = &SchemaError{tag, "parity must be +1 or -1"}
		}
		return p
	}

	a := new(Aperture)
	name, ok := texts["AperName"]
	if !ok {
		return nil, &SchemaError{"AperName", "required field missing"}
	}
	delete(texts, "AperName")
	a.AperName = name

	a.XDetRef = num("XDetRef")
	a.YDetRef = num("YDetRef")
	a.XSciRef = num("XSciRef")
	a.YSciRef = num("YSciRef")
	a.DetSciYAngle = angle("DetSciYAngle")
	a.DetSciParity = parity("DetSciParity")
	a.V2Ref = num("V2Ref")
	a.V3Ref = num("V3Ref")
	a.V3IdlYAng = angle("V3IdlYAng")
	a.VIdlParity = parity("VIdlParity")
	for i := 0; i < 4; i++ {
		a.XIdlVert[i] = num(fmt.Sprintf("XIdlVert%d", i+1))
		a.YIdlVert[i] = num(fmt.Sprintf("YIdlVert%d", i+1))
	}
	deg := int(num("Sci2IdlDeg"))
	if parseErr != nil {
		return nil, parseErr
	}
	if deg < 0 || deg > 9 {
		return nil, &SchemaError{"Sci2IdlDeg", "degree out of range"}
	}
	a.Sci2IdlDeg = deg
	a.sci2idl = newPoly(deg)
	a.idl2sci = newPoly(deg)
	for i := 1; i <= deg; i++ {
		for j := 0; j <= i; j++ {
			a.sci2idl.cx[i][j] = num(fmt.Sprintf("Sci2IdlX%d%d", i, j))
			a.sci2idl.cy[i][j] = num(fmt.Sprintf("Sci2IdlY%d%d", i, j))
			a.idl2sci.cx[i][j] = num(fmt.Sprintf("Idl2SciX%d%d", i, j))
			a.idl2sci.cy[i][j] = num(fmt.Sprintf("Idl2SciY%d%d", i, j))
		}
	}
	if parseErr != nil {
		return nil, parseErr
	}

	for tag, v := range angles {
		nums[tag] = v.Rad()
	}
	if len(nums) > 0 {
		a.Extra = nums
	}
	if len(texts) > 0 {
		a.Text = texts
	}
	if len(arrays) > 0 {
		a.Arrays = arrays
	}
	return a, nil
}

func parseAngle(e *xmltree.Element) (unit.Angle, error) {
	val := e.Find("value")
	if val == nil {
		return 0, &SchemaError{e.Tag, "units child without value child"}
	}
	conv, ok := angleScale[e.Find("units").Text]
	if !ok {
		return 0, &SchemaError{e.Tag, "unknown units token " + e.Find("units").Text}
	}
	v, err := strconv.ParseFloat(val.Text, 64)
	if err != nil {
		return 0, &SchemaError{e.Tag, "value " + val.Text + " not numeric"}
	}
	return conv(v), nil
}
