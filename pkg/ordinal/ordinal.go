// Package ordinal implements the bit-twiddle bijections between a source
// element type T and a same-width signed integer ordinal O(T) such that
// signed-integer comparison on O(T) agrees with T's natural ordering.
package ordinal

import "math"

// EncodeInt8 / DecodeInt8: signed integers are already ordinally correct.
func EncodeInt8(v int8) int8 { return v }
func DecodeInt8(v int8) int8 { return v }

func EncodeInt16(v int16) int16 { return v }
func DecodeInt16(v int16) int16 { return v }

func EncodeInt32(v int32) int32 { return v }
func DecodeInt32(v int32) int32 { return v }

func EncodeInt64(v int64) int64 { return v }
func DecodeInt64(v int64) int64 { return v }

// Unsigned integers: XOR the sign bit to re-center the range on zero.
// This "increasing ordinal" choice, applied uniformly down to 8 bits,
// avoids the min/max swap-at-reduction that a "decreasing" (XOR 0x7F)
// 8-bit variant would otherwise require (see DESIGN.md).
func EncodeUint8(v uint8) int8 { return int8(v ^ 0x80) }
func DecodeUint8(v int8) uint8 { return uint8(v) ^ 0x80 }

func EncodeUint16(v uint16) int16 { return int16(v ^ 0x8000) }
func DecodeUint16(v int16) uint16 { return uint16(v) ^ 0x8000 }

func EncodeUint32(v uint32) int32 { return int32(v ^ 0x80000000) }
func DecodeUint32(v int32) uint32 { return uint32(v) ^ 0x80000000 }

func EncodeUint64(v uint64) int64 { return int64(v ^ 0x8000000000000000) }
func DecodeUint64(v int64) uint64 { return uint64(v) ^ 0x8000000000000000 }

// Float encodings. The "return-NaN" policy uses the scalar twiddle:
//
//	((bits >> (W-1)) & ((1<<(W-1))-1)) ^ bits
//
// applied to the bit pattern interpreted as a signed integer of width W.
// For non-negative values this is the identity; for negative values every
// bit but the sign bit is flipped. NaNs (maximal biased exponent) with the
// sign bit clear land above +Inf's encoding, making the "return-NaN" policy
// fall out of plain signed-integer max; NaNs with the sign bit set land
// below -Inf's encoding. The "ignore-NaN" policy is implemented separately
// (see pkg/scalar) by skipping NaNs during the scan rather than by an
// alternative encoding, since masking them out of a SIMD register would
// require masked-input support this core does not have.

func EncodeFloat32ReturnNaN(v float32) int32 {
	bits := int32(math.Float32bits(v))
	return ((bits >> 31) & 0x7fffffff) ^ bits
}

func DecodeFloat32ReturnNaN(v int32) float32 {
	bits := ((v >> 31) & 0x7fffffff) ^ v
	return math.Float32frombits(uint32(bits))
}

func EncodeFloat64ReturnNaN(v float64) int64 {
	bits := int64(math.Float64bits(v))
	return ((bits >> 63) & 0x7fffffffffffffff) ^ bits
}

func DecodeFloat64ReturnNaN(v int64) float64 {
	bits := ((v >> 63) & 0x7fffffffffffffff) ^ v
	return math.Float64frombits(uint64(bits))
}

// EncodeSliceInt8 etc. batch-encode a whole slice into a caller-provided
// destination buffer, standing in for the fused load+encode SIMD primitive:
// the kernel itself receives only the already-encoded buffer and never
// allocates. One such helper per element type, used by package argminmax
// immediately before a kernel call.

func EncodeSliceInt8(dst []int8, src []int8) {
	copy(dst, src)
}

func EncodeSliceInt16(dst []int16, src []int16) {
	copy(dst, src)
}

func EncodeSliceInt32(dst []int32, src []int32) {
	copy(dst, src)
}

func EncodeSliceInt64(dst []int64, src []int64) {
	copy(dst, src)
}

func EncodeSliceUint8(dst []int8, src []uint8) {
	for i, v := range src {
		dst[i] = EncodeUint8(v)
	}
}

func EncodeSliceUint16(dst []int16, src []uint16) {
	for i, v := range src {
		dst[i] = EncodeUint16(v)
	}
}

func EncodeSliceUint32(dst []int32, src []uint32) {
	for i, v := range src {
		dst[i] = EncodeUint32(v)
	}
}

func EncodeSliceUint64(dst []int64, src []uint64) {
	for i, v := range src {
		dst[i] = EncodeUint64(v)
	}
}

func EncodeSliceFloat32(dst []int32, src []float32) {
	for i, v := range src {
		dst[i] = EncodeFloat32ReturnNaN(v)
	}
}

func EncodeSliceFloat64(dst []int64, src []float64) {
	for i, v := range src {
		dst[i] = EncodeFloat64ReturnNaN(v)
	}
}
