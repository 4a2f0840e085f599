package pyramid

import(
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// A FilterVec is a normalized 1-D smoothing kernel. It is applied
// along rows, and then transposed along columns, to get a separable
// 2-D blur.
type FilterVec []float64

// MakeFilter builds a binomial smoothing kernel of the requested
// length, by repeatedly convolving [1 1] with itself, then normalizing
// so the weights sum to 1. MakeFilter(2) is [0.5 0.5]; larger sizes
// approximate a Gaussian (e.g. MakeFilter(5) is [1 4 6 4 1]/16).
func MakeFilter(size int) (FilterVec, error) {
	if size < 2 {
		return nil, fmt.Errorf("filter size %d, need >= 2: %w", size, ErrInvalidArgument)
	}

	kern := FilterVec{1, 1}
	for len(kern) < size {
		kern = convolve1d(kern, FilterVec{1, 1})
	}

	floats.Scale(1.0 / floats.Sum(kern), kern)
	return kern, nil
}

// convolve1d is full discrete convolution, output length len(a)+len(b)-1.
func convolve1d(a, b FilterVec) FilterVec {
	out := make(FilterVec, len(a)+len(b)-1)
	for i:=0; i<len(a); i++ {
		for j:=0; j<len(b); j++ {
			out[i+j] += a[i] * b[j]
		}
	}
	return out
}
