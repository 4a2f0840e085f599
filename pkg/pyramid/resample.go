package pyramid

import(
	"gonum.org/v1/gonum/floats"

	"github.com/abworrall/pyr-blend/pkg/pgrid"
)

// Blur smooths a grid with one horizontal and one vertical pass of
// the 1-D kernel. Output has the same dimensions as the input.
// Boundaries reflect (sample -1 reads sample 0, sample w reads sample
// w-1); reduce and expand share this so they stay consistent.
func Blur(g *pgrid.FloatGrid, kern FilterVec) pgrid.FloatGrid {
	t := convolveRows(g, kern)
	return convolveCols(&t, kern)
}

// Reduce blurs and then drops every second row and column, halving
// each dimension (rounding up when odd).
func Reduce(g *pgrid.FloatGrid, kern FilterVec) pgrid.FloatGrid {
	return reduceByStride(g, kern, 2)
}

// reduceByStride blurs at the input's resolution and subsamples rows
// and columns at the given stride. The Gaussian builder calls this
// with stride 2^i against the original image; see BuildGaussian.
func reduceByStride(g *pgrid.FloatGrid, kern FilterVec, stride int) pgrid.FloatGrid {
	blurred := Blur(g, kern)
	return subsample(&blurred, stride)
}

// Expand doubles each dimension: each input sample lands at an
// even/even position, the gaps stay zero, and a blur with the kernel
// weights doubled (per axis) fills them in. Doubling compensates for
// the energy lost to the zero interlacing.
func Expand(g *pgrid.FloatGrid, kern FilterVec) pgrid.FloatGrid {
	out := pgrid.NewFloatGrid(g.Dx()*2, g.Dy()*2)
	for y:=0; y<g.Dy(); y++ {
		for x:=0; x<g.Dx(); x++ {
			out.Set(x*2, y*2, g.Get(x, y))
		}
	}

	doubled := make(FilterVec, len(kern))
	copy(doubled, kern)
	floats.Scale(2.0, doubled)

	return Blur(&out, doubled)
}

func subsample(g *pgrid.FloatGrid, stride int) pgrid.FloatGrid {
	w := (g.Dx() + stride - 1) / stride
	h := (g.Dy() + stride - 1) / stride
	out := pgrid.NewFloatGrid(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			out.Set(x, y, g.Get(x*stride, y*stride))
		}
	}
	return out
}

func convolveRows(g *pgrid.FloatGrid, kern FilterVec) pgrid.FloatGrid {
	out := g.NewFromThis()
	w := g.Dx()
	c := len(kern) / 2

	for y:=0; y<g.Dy(); y++ {
		for x:=0; x<w; x++ {
			acc := 0.0
			for j:=0; j<len(kern); j++ {
				acc += kern[j] * g.Get(reflect(x+j-c, w), y)
			}
			out.Set(x, y, acc)
		}
	}
	return out
}

func convolveCols(g *pgrid.FloatGrid, kern FilterVec) pgrid.FloatGrid {
	out := g.NewFromThis()
	h := g.Dy()
	c := len(kern) / 2

	for x:=0; x<g.Dx(); x++ {
		for y:=0; y<h; y++ {
			acc := 0.0
			for j:=0; j<len(kern); j++ {
				acc += kern[j] * g.Get(x, reflect(y+j-c, h))
			}
			out.Set(x, y, acc)
		}
	}
	return out
}

// reflect folds an out-of-range index back into [0,n). The loop is for
// kernels wider than the grid, which can happen at the coarsest levels.
func reflect(i, n int) int {
	for i < 0 || i >= n {
		if i < 0  { i = -i - 1 }
		if i >= n { i = 2*n - i - 1 }
	}
	return i
}
