package isa

// Signed is the closed set of ordinal register element types: every
// supported T's O(T) is one of these, since encoding never changes width.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Ops is the capability set the traversal algorithm is generic over: load
// (handled by pkg/ordinal before the kernel ever sees the data), add,
// cmpgt, cmplt, blendv, horiz_min, horiz_max, plus the three compile-time
// constants. NewOps builds one Ops[O] value for a (Descriptor, element
// width) pair; the value can be reused across kernel calls.
type Ops[O Signed] struct {
	descriptor     Descriptor
	widthBits      int
	lanes          int
	initialIndex   []O
	indexIncrement []O
	maxIndex       int
}

// NewOps builds the operation set for a descriptor at a given element
// width. Panics if the descriptor does not cover that width (callers are
// expected to check Descriptor.Supports first; pkg/dispatch always does).
func NewOps[O Signed](d Descriptor, widthBits int) Ops[O] {
	if !d.Supports(widthBits) {
		panic("isa: descriptor does not support this element width")
	}
	lanes := d.Lanes(widthBits)
	initial := make([]O, lanes)
	increment := make([]O, lanes)
	for i := 0; i < lanes; i++ {
		initial[i] = O(i)
		increment[i] = O(lanes)
	}
	return Ops[O]{
		descriptor:     d,
		widthBits:      widthBits,
		lanes:          lanes,
		initialIndex:   initial,
		indexIncrement: increment,
		maxIndex:       maxIndexForWidth(widthBits),
	}
}

// maxIndexForWidth computes MAX_INDEX(T) = 2^(W-1) - 1 for every
// supported width, index lanes being the same width as the value.
func maxIndexForWidth(widthBits int) int {
	switch widthBits {
	case 8:
		return 1<<7 - 1
	case 16:
		return 1<<15 - 1
	case 32:
		return 1<<31 - 1
	case 64:
		return 1<<63 - 1
	default:
		panic("isa: unsupported element width")
	}
}

func (o Ops[O]) Descriptor() Descriptor { return o.descriptor }
func (o Ops[O]) Lanes() int             { return o.lanes }
func (o Ops[O]) MaxIndex() int          { return o.maxIndex }
func (o Ops[O]) Feature() Feature       { return o.descriptor.Feature(o.widthBits) }

// InitialIndex returns the constant [0,1,...,L-1] vector. Callers must
// treat the result as read-only; it is shared, not copied, to keep the
// kernel's steady state allocation-free.
func (o Ops[O]) InitialIndex() []O { return o.initialIndex }

// IndexIncrement returns the constant [L,L,...,L] vector.
func (o Ops[O]) IndexIncrement() []O { return o.indexIncrement }

// Add is the lane-wise integer add primitive, used only on the index
// vector.
func (o Ops[O]) Add(dst, a, b []O) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// CmpGT is the lane-wise signed-greater comparison; mask lanes are 1 where
// a[i] > b[i], 0 otherwise (the full-register-mask convention of the
// 128/256-bit families; 512-bit bitmask families are simulated the same
// way since Go has no sub-byte-addressable register to model the packed
// bitmask distinction).
func (o Ops[O]) CmpGT(mask, a, b []O) {
	for i := range mask {
		if a[i] > b[i] {
			mask[i] = 1
		} else {
			mask[i] = 0
		}
	}
}

// CmpLT is synthesized from CmpGT(mask, b, a), the standard trick for
// instruction families lacking a native signed-less-than.
func (o Ops[O]) CmpLT(mask, a, b []O) {
	o.CmpGT(mask, b, a)
}

// Blendv is the per-lane select primitive: mask==0 selects a, mask!=0
// selects b.
func (o Ops[O]) Blendv(dst, a, b, mask []O) {
	for i := range dst {
		if mask[i] != 0 {
			dst[i] = b[i]
		} else {
			dst[i] = a[i]
		}
	}
}

// HorizMin reduces (index, value) lanes to the scalar (index, value) pair
// with the smallest value, tie-broken by the smallest index. This is the
// extract-and-scan reduction strategy, appropriate for the small lane
// counts involved here; every Family shares this one Ops implementation,
// so all families agree on ties by construction.
func (o Ops[O]) HorizMin(index, value []O) (int, O) {
	minVal := value[0]
	minPos := index[0]
	for i := 1; i < len(value); i++ {
		if value[i] < minVal || (value[i] == minVal && index[i] < minPos) {
			minVal = value[i]
			minPos = index[i]
		}
	}
	return int(minPos), minVal
}

// HorizMax is HorizMin's counterpart for the largest value. Lane scan
// order does not track absolute position, so ties are broken by comparing
// the carried index lanes directly rather than by first-encountered lane.
func (o Ops[O]) HorizMax(index, value []O) (int, O) {
	maxVal := value[0]
	maxPos := index[0]
	for i := 1; i < len(value); i++ {
		if value[i] > maxVal || (value[i] == maxVal && index[i] < maxPos) {
			maxVal = value[i]
			maxPos = index[i]
		}
	}
	return int(maxPos), maxVal
}
