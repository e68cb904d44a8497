package argminmax

// Ordered is the closed set of element types the core supports. Half-
// precision (float16) is an optional feature, provided by the separate
// pkg/float16 package instead of being folded into this union, so only a
// caller that imports pkg/float16 pulls it in.
type Ordered interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Float is the subset of Ordered that has a NaN policy choice. Dispatch
// on the concrete type below relies on these being the exact underlying
// types, not merely types with a matching underlying kind, so both
// constraints are closed sets rather than ~-prefixed.
type Float interface {
	float32 | float64
}
