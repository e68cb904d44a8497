// Package containers adapts common container shapes to the
// (base-pointer, length) contract the core requires: raw contiguous
// sequences need no adapter at all (package argminmax already accepts any
// Go slice), so this package covers the remaining two shapes:
// dynamically-sized buffers and multi-dimensional arrays restricted to
// their one-dimensional contiguous view.
package containers

// Float64Buffer wraps an owned, growable buffer of float64 values and
// exposes the contiguous slice view argminmax needs.
type Float64Buffer struct {
	data []float64
}

// NewFloat64Buffer copies src into a new owned buffer.
func NewFloat64Buffer(src []float64) *Float64Buffer {
	b := &Float64Buffer{data: make([]float64, len(src))}
	copy(b.data, src)
	return b
}

// View returns the buffer's contiguous backing slice.
func (b *Float64Buffer) View() []float64 { return b.data }

// Append grows the buffer in place.
func (b *Float64Buffer) Append(v ...float64) {
	b.data = append(b.data, v...)
}

// Len returns the number of elements currently held.
func (b *Float64Buffer) Len() int { return len(b.data) }
