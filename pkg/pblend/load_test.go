package pblend

import(
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG writes a w x h image that is dark on the left half and
// light on the right.
func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			if x < w/2 {
				img.Set(x, y, color.RGBA{20, 20, 20, 255})
			} else {
				img.Set(x, y, color.RGBA{240, 240, 240, 255})
			}
		}
	}

	filename := filepath.Join(t.TempDir(), "test.png")
	writer, err := os.Create(filename)
	require.NoError(t, err)
	defer writer.Close()
	require.NoError(t, png.Encode(writer, img))
	return filename
}

func TestLoadRGB(t *testing.T) {
	filename := writeTestPNG(t, 16, 8)

	im, err := LoadRGB(filename)
	require.NoError(t, err)
	assert.Equal(t, 16, im.Dx())
	assert.Equal(t, 8, im.Dy())

	for c:=0; c<3; c++ {
		assert.InDelta(t, 20.0/255.0, im[c].Get(2, 4), 0.01, "channel %d", c)
		assert.InDelta(t, 240.0/255.0, im[c].Get(12, 4), 0.01, "channel %d", c)
	}
}

func TestLoadGrayRange(t *testing.T) {
	filename := writeTestPNG(t, 16, 8)

	g, err := LoadGray(filename)
	require.NoError(t, err)
	assert.Equal(t, 16, g.Dx())
	assert.Equal(t, 8, g.Dy())

	// XYZ luminance of a neutral gray is below its sRGB value (gamma),
	// but dark stays dark and light stays light
	assert.Less(t, g.Get(2, 4), 0.1)
	assert.Greater(t, g.Get(12, 4), 0.7)

	min, max := g.MinMax()
	assert.GreaterOrEqual(t, min, 0.0)
	assert.LessOrEqual(t, max, 1.0)
}

func TestLoadMaskThreshold(t *testing.T) {
	filename := writeTestPNG(t, 16, 8)

	mask, err := LoadMask(filename, 127.0/255.0)
	require.NoError(t, err)

	for y:=0; y<8; y++ {
		for x:=0; x<8; x++ {
			assert.Equal(t, 0.0, mask.Get(x, y), "(%d,%d)", x, y)
		}
		for x:=8; x<16; x++ {
			assert.Equal(t, 1.0, mask.Get(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.bmp")
	require.NoError(t, os.WriteFile(filename, []byte("not an image"), 0644))

	_, err := LoadRGB(filename)
	assert.Error(t, err)
}

func TestWritePNGRoundTrip(t *testing.T) {
	orig := constantRGB(10, 6, 0.25, 0.5, 0.75)
	filename := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, WritePNG(orig.ToImage(), filename))

	got, err := LoadRGB(filename)
	require.NoError(t, err)
	require.Equal(t, 10, got.Dx())
	require.Equal(t, 6, got.Dy())

	for c:=0; c<3; c++ {
		assert.InDelta(t, orig[c].Get(5, 3), got[c].Get(5, 3), 0.001, "channel %d", c)
	}
}
