package pgrid

import(
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatGridBasics(t *testing.T) {
	g := NewFloatGrid(4, 3)
	assert.Equal(t, 4, g.Dx())
	assert.Equal(t, 3, g.Dy())

	g.Set(2, 1, 0.5)
	assert.Equal(t, 0.5, g.Get(2, 1))
	assert.Equal(t, 0.0, g.Get(1, 2))

	g2 := g.Copy()
	g2.Set(2, 1, 0.9)
	assert.Equal(t, 0.5, g.Get(2, 1), "Copy must not alias the original")
}

func TestFloatGridZeroValue(t *testing.T) {
	var g FloatGrid
	assert.Equal(t, 0, g.Dx())
	assert.Equal(t, 0, g.Dy(), "zero-width grid must not divide by its own stride")
}

func TestFloatGridArithmetic(t *testing.T) {
	a := NewFloatGrid(2, 2)
	b := NewFloatGrid(2, 2)
	a.Fill(3.0)
	b.Fill(1.0)

	diff := a.Sub(&b)
	assert.Equal(t, 2.0, diff.Get(0, 0))
	assert.Equal(t, 2.0, diff.Get(1, 1))

	scaled := a.Scale(0.5)
	assert.Equal(t, 1.5, scaled.Get(1, 0))

	sum := a.AddScaled(2.0, &b)
	assert.Equal(t, 7.0, sum.Get(0, 1))

	// Inputs untouched
	assert.Equal(t, 3.0, a.Get(0, 0))
	assert.Equal(t, 1.0, b.Get(0, 0))
}

func TestFloatGridCrop(t *testing.T) {
	g := NewFloatGrid(4, 4)
	for y:=0; y<4; y++ {
		for x:=0; x<4; x++ {
			g.Set(x, y, float64(y*4+x))
		}
	}

	c := g.Crop(3, 2)
	require.Equal(t, 3, c.Dx())
	require.Equal(t, 2, c.Dy())
	assert.Equal(t, 0.0, c.Get(0, 0))
	assert.Equal(t, 6.0, c.Get(2, 1))
}

func TestFloatGridClip(t *testing.T) {
	g := NewFloatGrid(3, 1)
	g.Set(0, 0, -0.5)
	g.Set(1, 0, 0.5)
	g.Set(2, 0, 1.5)

	g.Clip(0.0, 1.0)
	assert.Equal(t, 0.0, g.Get(0, 0))
	assert.Equal(t, 0.5, g.Get(1, 0))
	assert.Equal(t, 1.0, g.Get(2, 0))
}

func TestFloatGridNormalize(t *testing.T) {
	g := NewFloatGrid(2, 2)
	g.Set(0, 0, 0.2)
	g.Set(1, 0, 0.4)
	g.Set(0, 1, 0.6)
	g.Set(1, 1, 1.0)

	norm, err := g.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, norm.Get(0, 0), 1e-12)
	assert.InDelta(t, 0.25, norm.Get(1, 0), 1e-12)
	assert.InDelta(t, 0.5, norm.Get(0, 1), 1e-12)
	assert.InDelta(t, 1.0, norm.Get(1, 1), 1e-12)
}

func TestFloatGridNormalizeDegenerate(t *testing.T) {
	g := NewFloatGrid(8, 8)
	g.Fill(0.7)

	_, err := g.Normalize()
	if !errors.Is(err, ErrNumericDegenerate) {
		t.Errorf("Normalize() error = %v; want ErrNumericDegenerate", err)
	}
}
