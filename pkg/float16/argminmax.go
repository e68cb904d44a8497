package float16

import (
	"errors"

	"github.com/oisee/argminmax/pkg/dispatch"
	"github.com/oisee/argminmax/pkg/kernel"
)

// ErrEmptyInput mirrors pkg/argminmax.ErrEmptyInput for the half-precision
// entry point, kept package-local so importing float16 alone never pulls
// in the root package.
var ErrEmptyInput = errors.New("float16: empty input")

// ArgMinMax returns the indices of the minimum and maximum elements of
// data under the return-NaN policy, reusing the 16-bit-wide kernel and
// dispatch machinery built for int16/uint16.
func ArgMinMax(data []Float16) (argmin, argmax int, err error) {
	if len(data) == 0 {
		return 0, 0, ErrEmptyInput
	}
	encoded := make([]int16, len(data))
	for i, h := range data {
		encoded[i] = EncodeOrdinal(h)
	}
	argmin, argmax = kernel.ArgMinMax(encoded, dispatch.Select[int16](16))
	return argmin, argmax, nil
}
