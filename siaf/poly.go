// Public domain.

package siaf

// poly holds one direction of the Sci-Idl distortion solution: a
// truncated 2D power series with separate coefficient grids for the X
// and Y output axes.  Grids are square, (deg+1) by (deg+1), with only
// the region i >= 1, 0 <= j <= i populated.  The two directions are
// independent calibration fits; the inverse grids are not derived from
// the forward ones.
type poly struct {
	deg    int
	cx, cy [][]float64
}

func newPoly(deg int) poly {
	cx := make([][]float64, deg+1)
	cy := make([][]float64, deg+1)
	for i := range cx {
		cx[i] = make([]float64, deg+1)
		cy[i] = make([]float64, deg+1)
	}
	return poly{deg, cx, cy}
}

// eval sums the series terms cx[i][j]*dx**(i-j)*dy**j and likewise for
// cy at the offset (dx, dy).  Degree 0 has no terms and returns (0, 0).
func (p poly) eval(dx, dy float64) (x, y float64) {
	for i := 1; i <= p.deg; i++ {
		for j := 0; j <= i; j++ {
			t := ipow(dx, i-j) * ipow(dy, j)
			x += p.cx[i][j] * t
			y += p.cy[i][j] * t
		}
	}
	return
}

// ipow is x**n for small non-negative n.
func ipow(x float64, n int) float64 {
	r := 1.
	for ; n > 0; n-- {
		r *= x
	}
	return r
}
