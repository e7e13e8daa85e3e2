// Public domain.

package siaf

import (
	"math"
	"strconv"
)

// Frame identifies one of the four aperture coordinate frames.
type Frame int

const (
	Det Frame = iota // raw detector pixels
	Sci              // DMS oriented pixels
	Idl              // arcsec offsets from the aperture reference point
	Tel              // telescope V2,V3 angles, arcsec
)

var frameNames = [...]string{"Det", "Sci", "Idl", "Tel"}

func (f Frame) String() string {
	if f < 0 || int(f) >= len(frameNames) {
		return "Frame(" + strconv.Itoa(int(f)) + ")"
	}
	return frameNames[f]
}

// FrameError reports a frame name or frame pair with no defined
// transform.
type FrameError string

func (e FrameError) Error() string {
	return "siaf: invalid coordinate frame: " + string(e)
}

// ParseFrame returns the frame named by s, one of "Det", "Sci", "Idl"
// or "Tel".
func ParseFrame(s string) (Frame, error) {
	for i, n := range frameNames {
		if s == n {
			return Frame(i), nil
		}
	}
	return 0, FrameError(s)
}

// Det2Sci converts detector pixels to DMS oriented pixels: a rigid
// rotation by DetSciYAngle about the reference pixel with a parity flip
// of the X axis.
func (a *Aperture) Det2Sci(xDet, yDet float64) (xSci, ySci float64) {
	s, c := math.Sincos(a.DetSciYAngle.Rad())
	dx := xDet - a.XDetRef
	dy := yDet - a.YDetRef
	xSci = a.XSciRef + float64(a.DetSciParity)*(dx*c+dy*s)
	ySci = a.YSciRef - dx*s + dy*c
	return
}

// Sci2Det is the exact algebraic inverse of Det2Sci.
func (a *Aperture) Sci2Det(xSci, ySci float64) (xDet, yDet float64) {
	s, c := math.Sincos(a.DetSciYAngle.Rad())
	dx := xSci - a.XSciRef
	dy := ySci - a.YSciRef
	xDet = a.XDetRef + float64(a.DetSciParity)*dx*c - dy*s
	yDet = a.YDetRef + float64(a.DetSciParity)*dx*s + dy*c
	return
}

// Sci2Idl converts DMS pixels to Idl frame angular offsets in arcsec.
// The Idl frame is zero at the aperture reference point, so no offset
// is added to the polynomial result.
func (a *Aperture) Sci2Idl(xSci, ySci float64) (xIdl, yIdl float64) {
	return a.sci2idl.eval(xSci-a.XSciRef, ySci-a.YSciRef)
}

// Idl2Sci converts Idl frame offsets in arcsec to absolute DMS pixels.
// The inverse polynomial is an independent calibration fit, not an
// algebraic inverse of the forward one.
func (a *Aperture) Idl2Sci(xIdl, yIdl float64) (xSci, ySci float64) {
	x, y := a.idl2sci.eval(xIdl, yIdl)
	return x + a.XSciRef, y + a.YSciRef
}

// Idl2Tel converts Idl frame offsets to telescope V2,V3 angles.
//
// This is the planar tangent plane approximation.  Error reaches about
// 1.7 mas at 10 arcmin from the reference point, which callers must
// accept.
func (a *Aperture) Idl2Tel(xIdl, yIdl float64) (v2, v3 float64) {
	s, c := math.Sincos(a.V3IdlYAng.Rad())
	v2 = a.V2Ref + float64(a.VIdlParity)*xIdl*c + yIdl*s
	v3 = a.V3Ref - float64(a.VIdlParity)*xIdl*s + yIdl*c
	return
}

// Tel2Idl is the exact algebraic inverse of Idl2Tel, under the same
// planar approximation.
func (a *Aperture) Tel2Idl(v2, v3 float64) (xIdl, yIdl float64) {
	s, c := math.Sincos(a.V3IdlYAng.Rad())
	dv2 := v2 - a.V2Ref
	dv3 := v3 - a.V3Ref
	xIdl = float64(a.VIdlParity) * (dv2*c - dv3*s)
	yIdl = dv2*s + dv3*c
	return
}

// Compound transforms compose the direct ones in the fixed chain order
// Det-Sci-Idl-Tel or its exact reverse.

func (a *Aperture) Det2Idl(xDet, yDet float64) (xIdl, yIdl float64) {
	return a.Sci2Idl(a.Det2Sci(xDet, yDet))
}

func (a *Aperture) Det2Tel(xDet, yDet float64) (v2, v3 float64) {
	return a.Idl2Tel(a.Sci2Idl(a.Det2Sci(xDet, yDet)))
}

func (a *Aperture) Sci2Tel(xSci, ySci float64) (v2, v3 float64) {
	return a.Idl2Tel(a.Sci2Idl(xSci, ySci))
}

func (a *Aperture) Idl2Det(xIdl, yIdl float64) (xDet, yDet float64) {
	return a.Sci2Det(a.Idl2Sci(xIdl, yIdl))
}

func (a *Aperture) Tel2Sci(v2, v3 float64) (xSci, ySci float64) {
	return a.Idl2Sci(a.Tel2Idl(v2, v3))
}

func (a *Aperture) Tel2Det(v2, v3 float64) (xDet, yDet float64) {
	return a.Sci2Det(a.Idl2Sci(a.Tel2Idl(v2, v3)))
}

// xforms is the complete transform graph.  Convert dispatches through
// this fixed table rather than by name so that only defined frame
// pairs can ever be reached.
var xforms = map[[2]Frame]func(*Aperture, float64, float64) (float64, float64){
	{Det, Sci}: (*Aperture).Det2Sci,
	{Det, Idl}: (*Aperture).Det2Idl,
	{Det, Tel}: (*Aperture).Det2Tel,
	{Sci, Det}: (*Aperture).Sci2Det,
	{Sci, Idl}: (*Aperture).Sci2Idl,
	{Sci, Tel}: (*Aperture).Sci2Tel,
	{Idl, Det}: (*Aperture).Idl2Det,
	{Idl, Sci}: (*Aperture).Idl2Sci,
	{Idl, Tel}: (*Aperture).Idl2Tel,
	{Tel, Det}: (*Aperture).Tel2Det,
	{Tel, Sci}: (*Aperture).Tel2Sci,
	{Tel, Idl}: (*Aperture).Tel2Idl,
}

// Convert transforms (x, y) between any two frames.  Converting a
// frame to itself is the identity, not an error.  A frame value
// outside the four defined frames returns a FrameError.
func (a *Aperture) Convert(x, y float64, from, to Frame) (float64, float64, error) {
	if from == to {
		if from < 0 || int(from) >= len(frameNames) {
			return 0, 0, FrameError(from.String())
		}
		return x, y, nil
	}
	f, ok := xforms[[2]Frame{from, to}]
	if !ok {
		return 0, 0, FrameError(from.String() + " to " + to.String())
	}
	xo, yo := f(a, x, y)
	return xo, yo, nil
}

// ConvertXY transforms corresponding elements of x and y between two
// frames, returning new slices of the same length.  The slices must be
// the same length; ConvertXY panics otherwise.
func (a *Aperture) ConvertXY(x, y []float64, from, to Frame) ([]float64, []float64, error) {
	if len(x) != len(y) {
		panic("ConvertXY: slice lengths differ")
	}
	xo := make([]float64, len(x))
	yo := make([]float64, len(y))
	for i := range x {
		var err error
		xo[i], yo[i], err = a.Convert(x[i], y[i], from, to)
		if err != nil {
			return nil, nil, err
		}
	}
	return xo, yo, nil
}

// Corners returns the aperture outline vertices in the requested
// frame.
func (a *Aperture) Corners(frame Frame) (x, y [4]float64, err error) {
	for i := range a.XIdlVert {
		x[i], y[i], err = a.Convert(a.XIdlVert[i], a.YIdlVert[i], Idl, frame)
		if err != nil {
			return
		}
	}
	return
}

// Center returns the aperture reference point in the requested frame.
func (a *Aperture) Center(frame Frame) (x, y float64, err error) {
	return a.Convert(a.V2Ref, a.V3Ref, Tel, frame)
}
