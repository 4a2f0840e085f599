package pblend

import(
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/tiff"

	"github.com/abworrall/pyr-blend/pkg/pgrid"
)

// An RGBImage is three FloatGrids, one per channel, each in [0,1].
type RGBImage [3]pgrid.FloatGrid

func (im *RGBImage)Dx() int { return im[0].Dx() }
func (im *RGBImage)Dy() int { return im[0].Dy() }

func decodeFile(filename string) (image.Image, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r '%s': %v", filename, err)
	}
	defer reader.Close()

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".tif", ".tiff":
		return tiff.Decode(reader)
	case ".png":
		return png.Decode(reader)
	case ".jpg", ".jpeg":
		return jpeg.Decode(reader)
	default:
		return nil, fmt.Errorf("'%s': unhandled image extension '%s'", filename, ext)
	}
}

// LoadRGB decodes an image file into three [0,1] channel grids.
func LoadRGB(filename string) (RGBImage, error) {
	img, err := decodeFile(filename)
	if err != nil {
		return RGBImage{}, fmt.Errorf("loading %s: %v", filename, err)
	}

	bounds := img.Bounds()
	out := RGBImage{}
	for c:=0; c<3; c++ {
		out[c] = pgrid.NewFloatGrid(bounds.Dx(), bounds.Dy())
	}

	for x:=bounds.Min.X; x<bounds.Max.X; x++ {
		for y:=bounds.Min.Y; y<bounds.Max.Y; y++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out[0].Set(x-bounds.Min.X, y-bounds.Min.Y, float64(r)/65535.0)
			out[1].Set(x-bounds.Min.X, y-bounds.Min.Y, float64(g)/65535.0)
			out[2].Set(x-bounds.Min.X, y-bounds.Min.Y, float64(b)/65535.0)
		}
	}

	return out, nil
}

// LoadGray decodes an image file into a single [0,1] luminance grid,
// taking Y from CIE XYZ rather than a naive channel average.
func LoadGray(filename string) (pgrid.FloatGrid, error) {
	img, err := decodeFile(filename)
	if err != nil {
		return pgrid.FloatGrid{}, fmt.Errorf("loading %s: %v", filename, err)
	}

	bounds := img.Bounds()
	out := pgrid.NewFloatGrid(bounds.Dx(), bounds.Dy())

	for x:=bounds.Min.X; x<bounds.Max.X; x++ {
		for y:=bounds.Min.Y; y<bounds.Max.Y; y++ {
			r, g, b, _ := img.At(x, y).RGBA()
			col := colorful.Color{R:float64(r)/65535.0, G:float64(g)/65535.0, B:float64(b)/65535.0}
			_, lum, _ := col.Xyz()
			out.Set(x-bounds.Min.X, y-bounds.Min.Y, lum)
		}
	}

	return out, nil
}

// LoadMask decodes an image file and thresholds it into a 0.0/1.0
// selection mask. The boolean-to-float conversion lives here, at the
// I/O boundary; the blend core only ever sees a float mask.
func LoadMask(filename string, threshold float64) (pgrid.FloatGrid, error) {
	gray, err := LoadGray(filename)
	if err != nil {
		return pgrid.FloatGrid{}, err
	}

	mask := gray.NewFromThis()
	for x:=0; x<gray.Dx(); x++ {
		for y:=0; y<gray.Dy(); y++ {
			if gray.Get(x, y) > threshold {
				mask.Set(x, y, 1.0)
			}
		}
	}

	return mask, nil
}

// ToImage reassembles the three channel grids into a 16-bit RGB
// image. Values are assumed already clipped to [0,1].
func (im *RGBImage)ToImage() image.Image {
	out := image.NewRGBA64(image.Rectangle{Max:image.Point{im.Dx(), im.Dy()}})
	for x:=0; x<im.Dx(); x++ {
		for y:=0; y<im.Dy(); y++ {
			out.Set(x, y, color.RGBA64{
				R: uint16(im[0].Get(x,y) * float64(0xFFFF)),
				G: uint16(im[1].Get(x,y) * float64(0xFFFF)),
				B: uint16(im[2].Get(x,y) * float64(0xFFFF)),
				A: 0xFFFF,
			})
		}
	}
	return out
}

func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}
