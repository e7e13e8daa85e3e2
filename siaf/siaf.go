// Public domain.

// Package siaf reads Science Instrument Aperture Files and transforms
// positions between aperture coordinate frames.
//
// A SIAF is per-instrument geometric calibration data: one XML file
// holding an entry per aperture.  Package siaf loads a file into a
// collection of Apertures keyed by name.  Each Aperture converts
// positions between the Det, Sci, Idl and Tel frames; the Sci-Idl edge
// of the transform graph is a calibrated 2D polynomial distortion
// solution, the other edges are affine.
package siaf

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/soniakeys/aperture/internal/xmltree"
)

// Instruments lists the instrument names with SIAF calibration files.
var Instruments = []string{"NIRCam", "NIRSpec", "NIRISS", "MIRI", "FGS"}

// InstrumentError reports an instrument name outside Instruments.
// Note that names are case sensitive.
type InstrumentError string

func (e InstrumentError) Error() string {
	return "siaf: invalid instrument name " + string(e) + " (case sensitive)"
}

// SIAF is a read-only collection of the apertures of one instrument.
type SIAF struct {
	Instrument string
	Filename   string
	apertures  map[string]*Aperture
}

// Load reads the SIAF for the named instrument from basepath.
//
// The instrument name is validated against Instruments before any file
// access.  The file name follows the delivery convention,
// <instrument>SIAF.XML, with an extra underscore for NIRISS.  A single
// malformed aperture entry fails the whole load.
func Load(instr, basepath string) (*SIAF, error) {
	valid := false
	for _, n := range Instruments {
		if n == instr {
			valid = true
			break
		}
	}
	if !valid {
		return nil, InstrumentError(instr)
	}
	sep := ""
	if instr == "NIRISS" {
		sep = "_"
	}
	fn := filepath.Join(basepath, instr+sep+"SIAF.XML")
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Read(f, instr)
	if err != nil {
		return nil, err
	}
	s.Filename = fn
	return s, nil
}

// Read parses SIAF XML from r.  It applies no file naming convention
// and no instrument whitelist; instr is recorded as documentation.
func Read(r io.Reader, instr string) (*SIAF, error) {
	root, err := xmltree.Decode(r)
	if err != nil {
		return nil, err
	}
	s := &SIAF{Instrument: instr, apertures: make(map[string]*Aperture)}
	for _, entry := range root.FindAll("SiafEntry") {
		a, err := parseAperture(entry)
		if err != nil {
			return nil, err
		}
		s.apertures[a.AperName] = a
	}
	if len(s.apertures) == 0 {
		return nil, errors.New("siaf.Read: no SiafEntry elements")
	}
	return s, nil
}

// Aperture returns the named aperture, or nil if the collection has no
// aperture of that name.
func (s *SIAF) Aperture(name string) *Aperture {
	return s.apertures[name]
}

// Names returns the aperture names in sorted order.
func (s *SIAF) Names() []string {
	names := make([]string, 0, len(s.apertures))
	for n := range s.apertures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of apertures.
func (s *SIAF) Len() int {
	return len(s.apertures)
}
