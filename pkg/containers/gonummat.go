package containers

import "gonum.org/v1/gonum/mat"

// VecDenseView returns the one-dimensional contiguous view of a
// *mat.VecDense. gonum's VecDense is itself 1-D, but it stands in for the
// matrix/tensor types analytical libraries expose, whose rows/columns this
// adapter would slice the same way via RawRowView/RawMatrix when built out
// for a true multi-dimensional container.
func VecDenseView(v *mat.VecDense) []float64 {
	return v.RawVector().Data
}
