package argminmax

import "errors"

// ErrEmptyInput is returned by every public entry point when called with a
// zero-length sequence.
var ErrEmptyInput = errors.New("argminmax: empty input")

// ErrAllNaN is returned by the ignore-NaN entry points when every element
// of the input is NaN.
var ErrAllNaN = errors.New("argminmax: all elements are NaN")
