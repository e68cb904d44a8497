package scalar

import (
	"math"
	"testing"
)

func TestArgMinMaxTieBreak(t *testing.T) {
	minIdx, maxIdx := ArgMinMax([]int32{5, 1, 1, 9, 9, 1})
	if minIdx != 1 {
		t.Errorf("argmin: got %d want 1", minIdx)
	}
	if maxIdx != 3 {
		t.Errorf("argmax: got %d want 3", maxIdx)
	}
}

func TestArgMinMaxIgnoreNaNSkipsNaN(t *testing.T) {
	nan := math.NaN()
	minIdx, maxIdx, ok := ArgMinMaxIgnoreNaN([]float64{nan, 10, nan, -5, 3, nan})
	if !ok {
		t.Fatal("ArgMinMaxIgnoreNaN: ok = false, want true")
	}
	if minIdx != 3 {
		t.Errorf("argmin: got %d want 3", minIdx)
	}
	if maxIdx != 1 {
		t.Errorf("argmax: got %d want 1", maxIdx)
	}
}

func TestArgMinMaxIgnoreNaNAllNaN(t *testing.T) {
	nan := math.NaN()
	if _, _, ok := ArgMinMaxIgnoreNaN([]float64{nan, nan, nan}); ok {
		t.Error("ArgMinMaxIgnoreNaN: ok = true, want false for all-NaN input")
	}
}
