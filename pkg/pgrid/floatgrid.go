package pgrid

import(
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg" // Move to https://pkg.go.dev/golang.org/x/image/font#Drawer sometime
	"gonum.org/v1/gonum/floats"
)

// ErrNumericDegenerate means a grid with zero dynamic range hit a
// range-normalization step, which would otherwise divide by zero.
var ErrNumericDegenerate = errors.New("pgrid: zero dynamic range")

// A FloatGrid is a single-channel image: a grid of float64 samples,
// nominally in [0,1], with some operations
type FloatGrid struct {
	stride int
	values []float64
}

func NewFloatGrid(w, h int) FloatGrid {
	return FloatGrid{
		stride: w,
		values: make([]float64, w*h),
	}
}

func (g1 *FloatGrid)NewFromThis() FloatGrid  { return NewFloatGrid(g1.Dx(), g1.Dy()) }
func (fg *FloatGrid)Set(x, y int, v float64) { fg.values[fg.stride*y + x] = v }
func (fg *FloatGrid)Get(x, y int) float64    { return fg.values[fg.stride*y + x] }
func (fg *FloatGrid)Dx() int                 { return fg.stride }

// Dy reports zero for a zero-width grid rather than dividing by it, so
// validation code can describe a bad grid without tripping over it.
func (fg *FloatGrid)Dy() int {
	if fg.stride == 0 {
		return 0
	}
	return len(fg.values) / fg.stride
}

func (g1 *FloatGrid)Copy() *FloatGrid {
	g2 := FloatGrid{stride: g1.stride, values:make([]float64, len(g1.values))}
	copy(g2.values, g1.values)
	return &g2
}

func (fg *FloatGrid)Fill(v float64) {
	for i:=0; i<len(fg.values); i++ {
		fg.values[i] = v
	}
}

// Sub returns (g1 - g2), elementwise. The two grids must have the
// same dimensions.
func (g1 *FloatGrid)Sub(g2 *FloatGrid) FloatGrid {
	out := g1.NewFromThis()
	copy(out.values, g1.values)
	floats.Sub(out.values, g2.values)
	return out
}

// Scale returns a copy of the grid with every sample multiplied by c.
func (g1 *FloatGrid)Scale(c float64) FloatGrid {
	out := g1.NewFromThis()
	copy(out.values, g1.values)
	floats.Scale(c, out.values)
	return out
}

// AddScaled returns (g1*c + g2), elementwise.
func (g1 *FloatGrid)AddScaled(c float64, g2 *FloatGrid) FloatGrid {
	out := g1.Scale(c)
	floats.Add(out.values, g2.values)
	return out
}

// Crop returns the top-left (w,h) sub-grid. Used to trim the extra
// row/col an expand step can generate when a level had odd dimensions.
func (g1 *FloatGrid)Crop(w, h int) FloatGrid {
	if w == g1.Dx() && h == g1.Dy() {
		return *g1.Copy()
	}
	g2 := NewFloatGrid(w, h)
	for y:=0; y<h; y++ {
		copy(g2.values[y*w:(y+1)*w], g1.values[y*g1.stride:y*g1.stride+w])
	}
	return g2
}

// Clip clamps every sample into [lo,hi], in place.
func (fg *FloatGrid)Clip(lo, hi float64) {
	for i:=0; i<len(fg.values); i++ {
		if fg.values[i] < lo { fg.values[i] = lo }
		if fg.values[i] > hi { fg.values[i] = hi }
	}
}

func (fg *FloatGrid)MinMax() (float64, float64) {
	return floats.Min(fg.values), floats.Max(fg.values)
}

// Normalize returns a copy stretched so the samples span [0,1]
// exactly. A flat grid has no range to stretch, so that comes back as
// ErrNumericDegenerate rather than a grid full of NaNs.
func (g1 *FloatGrid)Normalize() (FloatGrid, error) {
	min, max := g1.MinMax()
	if max == min {
		return FloatGrid{}, fmt.Errorf("normalize %dx%d grid, all values %f: %w", g1.Dx(), g1.Dy(), min, ErrNumericDegenerate)
	}

	out := g1.NewFromThis()
	for i:=0; i<len(g1.values); i++ {
		out.values[i] = (g1.values[i] - min) / (max - min)
	}
	return out, nil
}

func (fg *FloatGrid)Stats() string {
	min, max := fg.MinMax()
	return fmt.Sprintf("fg[%dx%d, vals{%f,%f}]", fg.Dx(), fg.Dy(), min, max)
}

// ToImage renders the grid as a grayscale image, mapping [0,1] to
// black..white. Values are assumed already clipped.
func (fg *FloatGrid)ToImage() image.Image {
	img := image.NewGray16(image.Rectangle{Max:image.Point{fg.Dx(), fg.Dy()}})
	for x:=0; x<fg.Dx(); x++ {
		for y:=0; y<fg.Dy(); y++ {
			img.Set(x, y, color.Gray16{uint16(fg.Get(x,y) * 65535.0)})
		}
	}
	return img
}

// ToImg saves a simple grayscale PNG, stretching the range of values in the
// grid so the full range of grays is used
func (fg *FloatGrid)ToImg(title, filename string) error {
	norm, err := fg.Normalize()
	if err != nil {
		return err
	}

	dc := gg.NewContextForImage(norm.ToImage())
	dc.SetRGB(1,1,1)
	dc.DrawString(title, 50, 50)
	return dc.SavePNG(filename)
}
