// Package argminmax computes, in a single pass, the indices of the
// minimum and maximum elements of a one-dimensional sequence, dispatching
// to a SIMD-width-simulated kernel specialized per element type and the
// strongest instruction-set family the host CPU supports.
package argminmax

import (
	"fmt"

	"github.com/oisee/argminmax/pkg/dispatch"
	"github.com/oisee/argminmax/pkg/kernel"
	"github.com/oisee/argminmax/pkg/ordinal"
	"github.com/oisee/argminmax/pkg/scalar"
)

// ArgMinMax returns the indices of the minimum and maximum elements of
// data under the return-NaN policy for floating-point element types: if
// data contains a NaN with the sign bit clear, the returned argmax is a
// NaN (the first-occurring one when all such NaNs share one bit pattern,
// as math.NaN() values do). A NaN with the sign bit set orders below -Inf.
// Ties are broken by the lowest index.
func ArgMinMax[T Ordered](data []T) (argmin, argmax int, err error) {
	if len(data) == 0 {
		return 0, 0, ErrEmptyInput
	}
	minIdx, maxIdx := dispatchArgMinMax(data)
	return minIdx, maxIdx, nil
}

// ArgMin returns the index of the minimum element of data.
func ArgMin[T Ordered](data []T) (int, error) {
	minIdx, _, err := ArgMinMax(data)
	return minIdx, err
}

// ArgMax returns the index of the maximum element of data.
func ArgMax[T Ordered](data []T) (int, error) {
	_, maxIdx, err := ArgMinMax(data)
	return maxIdx, err
}

// NanArgMinMax returns the indices of the minimum and maximum elements of
// data under the ignore-NaN policy: NaNs are skipped entirely, while
// infinities take part like any other value. Fails with ErrAllNaN if every
// element of data is NaN.
func NanArgMinMax[T Float](data []T) (argmin, argmax int, err error) {
	if len(data) == 0 {
		return 0, 0, ErrEmptyInput
	}
	minIdx, maxIdx, ok := scalar.ArgMinMaxIgnoreNaN(data)
	if !ok {
		return 0, 0, ErrAllNaN
	}
	return minIdx, maxIdx, nil
}

// NanArgMin returns the index of the minimum non-NaN element of data.
func NanArgMin[T Float](data []T) (int, error) {
	minIdx, _, err := NanArgMinMax(data)
	return minIdx, err
}

// NanArgMax returns the index of the maximum non-NaN element of data.
func NanArgMax[T Float](data []T) (int, error) {
	_, maxIdx, err := NanArgMinMax(data)
	return maxIdx, err
}

// dispatchArgMinMax type-switches on the concrete element type, encodes
// the input into a caller-owned scratch ordinal buffer, selects the
// strongest isa.Ops for that width, and runs the kernel. This is the one
// place package argminmax binds T to the right (O, width) pair; every
// branch is a handful of lines because pkg/kernel and pkg/isa carry all
// the actual logic.
func dispatchArgMinMax[T Ordered](data []T) (int, int) {
	switch v := any(data).(type) {
	case []int8:
		return kernel.ArgMinMax(v, dispatch.Select[int8](8))
	case []int16:
		return kernel.ArgMinMax(v, dispatch.Select[int16](16))
	case []int32:
		return kernel.ArgMinMax(v, dispatch.Select[int32](32))
	case []int64:
		return kernel.ArgMinMax(v, dispatch.Select[int64](64))
	case []uint8:
		enc := make([]int8, len(v))
		ordinal.EncodeSliceUint8(enc, v)
		return kernel.ArgMinMax(enc, dispatch.Select[int8](8))
	case []uint16:
		enc := make([]int16, len(v))
		ordinal.EncodeSliceUint16(enc, v)
		return kernel.ArgMinMax(enc, dispatch.Select[int16](16))
	case []uint32:
		enc := make([]int32, len(v))
		ordinal.EncodeSliceUint32(enc, v)
		return kernel.ArgMinMax(enc, dispatch.Select[int32](32))
	case []uint64:
		enc := make([]int64, len(v))
		ordinal.EncodeSliceUint64(enc, v)
		return kernel.ArgMinMax(enc, dispatch.Select[int64](64))
	case []float32:
		enc := make([]int32, len(v))
		ordinal.EncodeSliceFloat32(enc, v)
		return kernel.ArgMinMax(enc, dispatch.Select[int32](32))
	case []float64:
		enc := make([]int64, len(v))
		ordinal.EncodeSliceFloat64(enc, v)
		return kernel.ArgMinMax(enc, dispatch.Select[int64](64))
	default:
		// Unreachable: Ordered is a closed type set enumerated above.
		panic(fmt.Sprintf("argminmax: unsupported element type %T", data))
	}
}
