package pblend

import(
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/abworrall/pyr-blend/pkg/pgrid"
	"github.com/abworrall/pyr-blend/pkg/pyramid"
)

// RenderPyramid tiles up to `levels` pyramid levels horizontally onto
// one canvas, each level stretched to the full [0,1] range so the
// small-amplitude laplacian bands are visible. Canvas height is the
// finest level's height; the area under the coarser tiles stays black.
func RenderPyramid(pyr []pgrid.FloatGrid, levels int) (pgrid.FloatGrid, error) {
	if len(pyr) == 0 || levels < 1 {
		return pgrid.FloatGrid{}, fmt.Errorf("render %d levels of a %d-level pyramid: %w", levels, len(pyr), pyramid.ErrInvalidArgument)
	}
	if levels > len(pyr) {
		levels = len(pyr)
	}

	width := 0
	for i:=0; i<levels; i++ {
		width += pyr[i].Dx()
	}

	out := pgrid.NewFloatGrid(width, pyr[0].Dy())

	marker := 0
	for i:=0; i<levels; i++ {
		norm, err := pyr[i].Normalize()
		if err != nil {
			return pgrid.FloatGrid{}, fmt.Errorf("pyramid level %d: %w", i, err)
		}
		for y:=0; y<norm.Dy(); y++ {
			for x:=0; x<norm.Dx(); x++ {
				out.Set(marker+x, y, norm.Get(x, y))
			}
		}
		marker += pyr[i].Dx()
	}

	return out, nil
}

// SavePyramidPNG renders the tiled pyramid and writes it out as a
// titled grayscale PNG.
func SavePyramidPNG(pyr []pgrid.FloatGrid, levels int, title, filename string) error {
	tiled, err := RenderPyramid(pyr, levels)
	if err != nil {
		return err
	}

	dc := gg.NewContextForImage(tiled.ToImage())
	dc.SetRGB(1,1,1)
	dc.DrawString(title, 20, 20)
	return dc.SavePNG(filename)
}

// SavePreviewPNG writes the 2x2 montage: input A, input B, mask,
// blended result.
func SavePreviewPNG(a, b *RGBImage, mask *pgrid.FloatGrid, blend *RGBImage, filename string) error {
	w, h := a.Dx(), a.Dy()

	dc := gg.NewContext(w*2, h*2)
	dc.SetRGB(0,0,0)
	dc.Clear()

	maskImg := maskToImage(mask)

	dc.DrawImage(a.ToImage(), 0, 0)
	dc.DrawImage(b.ToImage(), w, 0)
	dc.DrawImage(maskImg, 0, h)
	dc.DrawImage(blend.ToImage(), w, h)

	return dc.SavePNG(filename)
}

func maskToImage(mask *pgrid.FloatGrid) image.Image {
	clipped := mask.Copy()
	clipped.Clip(0.0, 1.0)
	return clipped.ToImage()
}
