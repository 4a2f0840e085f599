package pyramid

import(
	"github.com/abworrall/pyr-blend/pkg/pgrid"
)

// BuildLaplacian builds a band-pass pyramid from the Gaussian pyramid
// of the input: each level is a Gaussian level minus the expanded
// version of the next coarser one. The last level is the coarsest
// Gaussian level verbatim (there is nothing coarser to subtract), so
// the Laplacian pyramid always has the same length as the Gaussian.
func BuildLaplacian(im *pgrid.FloatGrid, maxLevels, filterSize int) ([]pgrid.FloatGrid, FilterVec, error) {
	gauss, kern, err := BuildGaussian(im, maxLevels, filterSize)
	if err != nil {
		return nil, nil, err
	}

	pyr := make([]pgrid.FloatGrid, 0, len(gauss))

	for i:=0; i<len(gauss)-1; i++ {
		expanded := Expand(&gauss[i+1], kern)
		// An odd-sized level expands one row/col past its finer
		// neighbour; trim before subtracting
		expanded = expanded.Crop(gauss[i].Dx(), gauss[i].Dy())
		pyr = append(pyr, gauss[i].Sub(&expanded))
	}

	pyr = append(pyr, *gauss[len(gauss)-1].Copy())
	return pyr, kern, nil
}
