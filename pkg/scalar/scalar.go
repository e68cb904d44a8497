// Package scalar is the portable, single-pass fallback: it serves the
// ignore-NaN policy (which cannot use a masked SIMD register since
// masked-input support does not exist here), and is the reference oracle
// the tests of pkg/kernel and pkg/argminmax check every specialization
// against.
package scalar

import "math"

// ArgMinMax scans an already-ordinal-encoded slice and returns the
// (argmin, argmax) pair, keeping the earlier index on ties.
func ArgMinMax[O int8 | int16 | int32 | int64](data []O) (minIdx, maxIdx int) {
	minVal, maxVal := data[0], data[0]
	for i := 1; i < len(data); i++ {
		v := data[i]
		if v < minVal {
			minVal = v
			minIdx = i
		}
		if v > maxVal {
			maxVal = v
			maxIdx = i
		}
	}
	return minIdx, maxIdx
}

// ArgMinMaxIgnoreNaN implements the ignore-NaN policy directly on T,
// skipping NaNs during the scan rather than reaching for an alternative
// encoding. ok is false only when every element is NaN.
func ArgMinMaxIgnoreNaN[T float32 | float64](data []T) (minIdx, maxIdx int, ok bool) {
	minIdx, maxIdx = -1, -1
	var minVal, maxVal T
	for i, v := range data {
		if isNaN(v) {
			continue
		}
		if minIdx == -1 || v < minVal {
			minVal = v
			minIdx = i
		}
		if maxIdx == -1 || v > maxVal {
			maxVal = v
			maxIdx = i
		}
	}
	return minIdx, maxIdx, minIdx != -1
}

func isNaN[T float32 | float64](v T) bool {
	return math.IsNaN(float64(v))
}
