// Public domain.

// Package siafplot draws SIAF aperture outlines with gonum plot.
//
// Every function draws onto a caller supplied *plot.Plot; the package
// keeps no drawing state of its own.
package siafplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/soniakeys/aperture/siaf"
)

// Outline adds the closed outline polygon of one aperture to p, with
// the aperture name at the outline centroid.
func Outline(p *plot.Plot, a *siaf.Aperture, frame siaf.Frame) error {
	xs, ys, err := a.Corners(frame)
	if err != nil {
		return err
	}
	pts := make(plotter.XYs, len(xs)+1)
	var cx, cy float64
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
		cx += xs[i]
		cy += ys[i]
	}
	pts[len(xs)] = pts[0] // close the box
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: cx / float64(len(xs)), Y: cy / float64(len(ys))}},
		Labels: []string{a.AperName},
	})
	if err != nil {
		return err
	}
	p.Add(labels)
	return nil
}

// All adds outlines for the named apertures, or for every aperture
// when names is nil, then labels the axes for the frame.
func All(p *plot.Plot, s *siaf.SIAF, frame siaf.Frame, names []string) error {
	if names == nil {
		names = s.Names()
	}
	for _, n := range names {
		a := s.Aperture(n)
		if a == nil {
			continue
		}
		if err := Outline(p, a, frame); err != nil {
			return err
		}
	}
	Axes(p, frame)
	return nil
}

// Axes sets title and axis labels on p for the frame.  In the Idl and
// Tel frames the X axis is inverted so V2 increases to the left, the
// usual orientation for V2,V3 field layouts.
func Axes(p *plot.Plot, frame siaf.Frame) {
	switch frame {
	case siaf.Idl, siaf.Tel:
		p.X.Label.Text = "V2 [arcsec]"
		p.Y.Label.Text = "V3 [arcsec]"
		p.X.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
		p.X.Tick.Marker = plot.InvertedTicks{plot.DefaultTicks{}}
	default:
		p.X.Label.Text = "X pixels [" + frame.String() + "]"
		p.Y.Label.Text = "Y pixels [" + frame.String() + "]"
	}
	p.Title.Text = frame.String() + " frame"
}
