package pyramid

// Multiresolution blending, after Burt & Adelson '83: split both
// inputs into frequency bands, blend each band with a smoothed copy
// of the selection mask, and collapse. Low frequencies mix over a
// wide region and high frequencies over a narrow one, so the seam at
// the mask boundary disappears.

import(
	"fmt"

	"github.com/abworrall/pyr-blend/pkg/pgrid"
)

// Blend composites two single-channel images under a float mask (1.0
// selects a, 0.0 selects b). All three must share the same
// dimensions. The result is clipped to [0,1], since band
// recombination can overshoot.
func Blend(a, b, mask *pgrid.FloatGrid, maxLevels, filterSizeImage, filterSizeMask int) (pgrid.FloatGrid, error) {
	if a.Dx() != b.Dx() || a.Dy() != b.Dy() {
		return pgrid.FloatGrid{}, fmt.Errorf("images %dx%d vs %dx%d: %w", a.Dx(), a.Dy(), b.Dx(), b.Dy(), ErrShapeMismatch)
	}
	if a.Dx() != mask.Dx() || a.Dy() != mask.Dy() {
		return pgrid.FloatGrid{}, fmt.Errorf("image %dx%d vs mask %dx%d: %w", a.Dx(), a.Dy(), mask.Dx(), mask.Dy(), ErrShapeMismatch)
	}
	if maxLevels < 1 {
		return pgrid.FloatGrid{}, fmt.Errorf("maxLevels %d, need >= 1: %w", maxLevels, ErrInvalidArgument)
	}
	if filterSizeImage < 2 || filterSizeMask < 2 {
		return pgrid.FloatGrid{}, fmt.Errorf("filter sizes %d/%d, need >= 2: %w", filterSizeImage, filterSizeMask, ErrInvalidArgument)
	}

	lapA, kern, err := BuildLaplacian(a, maxLevels, filterSizeImage)
	if err != nil {
		return pgrid.FloatGrid{}, err
	}
	lapB, _, err := BuildLaplacian(b, maxLevels, filterSizeImage)
	if err != nil {
		return pgrid.FloatGrid{}, err
	}
	gaussMask, _, err := BuildGaussian(mask, maxLevels, filterSizeMask)
	if err != nil {
		return pgrid.FloatGrid{}, err
	}

	// Same dims + same stop rule, so all three have the same depth
	combined := make([]pgrid.FloatGrid, len(lapA))
	for k:=0; k<len(lapA); k++ {
		combined[k] = combineLevel(&gaussMask[k], &lapA[k], &lapB[k])
	}

	out, err := Reconstruct(combined, kern, UnitCoefficients(len(combined)))
	if err != nil {
		return pgrid.FloatGrid{}, err
	}

	out.Clip(0.0, 1.0)
	return out, nil
}

// combineLevel is m*a + (1-m)*b, elementwise.
func combineLevel(m, a, b *pgrid.FloatGrid) pgrid.FloatGrid {
	out := a.NewFromThis()
	for y:=0; y<out.Dy(); y++ {
		for x:=0; x<out.Dx(); x++ {
			w := m.Get(x, y)
			out.Set(x, y, w*a.Get(x,y) + (1.0-w)*b.Get(x,y))
		}
	}
	return out
}
