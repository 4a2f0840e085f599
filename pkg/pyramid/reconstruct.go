package pyramid

import(
	"fmt"

	"github.com/abworrall/pyr-blend/pkg/pgrid"
)

// Reconstruct collapses a Laplacian pyramid back into an image,
// coarsest level out: each step expands the running image and adds
// the next finer level, scaled by its coefficient. With all-ones
// coefficients this inverts BuildLaplacian, up to floating point.
// Other coefficients weight the frequency bands, e.g. >1 on the fine
// levels sharpens, 0 suppresses a band.
func Reconstruct(lap []pgrid.FloatGrid, kern FilterVec, coeff []float64) (pgrid.FloatGrid, error) {
	if len(lap) < 1 {
		return pgrid.FloatGrid{}, fmt.Errorf("empty pyramid: %w", ErrInvalidArgument)
	}
	if len(coeff) != len(lap) {
		return pgrid.FloatGrid{}, fmt.Errorf("%d levels, %d coefficients: %w", len(lap), len(coeff), ErrInvalidArgument)
	}

	last := len(lap) - 1
	result := lap[last].Scale(coeff[last])

	for i:=last-1; i>=0; i-- {
		expanded := Expand(&result, kern)
		expanded = expanded.Crop(lap[i].Dx(), lap[i].Dy())
		result = lap[i].AddScaled(coeff[i], &expanded)
	}

	return result, nil
}

// UnitCoefficients returns the all-ones vector that makes Reconstruct
// a pure inverse.
func UnitCoefficients(n int) []float64 {
	coeff := make([]float64, n)
	for i:=0; i<n; i++ {
		coeff[i] = 1.0
	}
	return coeff
}
