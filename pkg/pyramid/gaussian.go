package pyramid

import(
	"fmt"

	"github.com/abworrall/pyr-blend/pkg/pgrid"
)

// LowestRes is the resolution floor: no pyramid level is built whose
// nominal reduced size would be <= 16 in both dimensions.
const LowestRes = 16

// BuildGaussian builds a Gaussian pyramid: level 0 is the input, each
// later level a blurred, subsampled copy. It stops early once the
// original dimensions divided by 2^i would breach the resolution
// floor, so the pyramid can come back shorter than maxLevels. The
// kernel is returned so callers can reuse it for reconstruction.
//
// Level i blurs the original image once and subsamples it with stride
// 2^i, rather than cascading a x2 reduce on level i-1. So each level
// carries one full-resolution blur rather than i accumulated ones,
// and levels > 1 are sharper than a classic iterated pyramid.
func BuildGaussian(im *pgrid.FloatGrid, maxLevels, filterSize int) ([]pgrid.FloatGrid, FilterVec, error) {
	if err := checkGrid(im); err != nil {
		return nil, nil, err
	}
	if maxLevels < 1 {
		return nil, nil, fmt.Errorf("maxLevels %d, need >= 1: %w", maxLevels, ErrInvalidArgument)
	}

	kern, err := MakeFilter(filterSize)
	if err != nil {
		return nil, nil, err
	}

	rows, cols := im.Dy(), im.Dx()
	pyr := []pgrid.FloatGrid{*im.Copy()}

	for i:=1; i<maxLevels; i++ {
		factor := 1 << i
		if float64(rows)/float64(factor) > LowestRes || float64(cols)/float64(factor) > LowestRes {
			pyr = append(pyr, reduceByStride(im, kern, factor))
		} else {
			break
		}
	}

	return pyr, kern, nil
}

func checkGrid(g *pgrid.FloatGrid) error {
	if g.Dx() < 1 || g.Dy() < 1 {
		return fmt.Errorf("image is %dx%d: %w", g.Dx(), g.Dy(), ErrInvalidArgument)
	}
	return nil
}
