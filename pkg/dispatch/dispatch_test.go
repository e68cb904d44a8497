package dispatch

import (
	"testing"

	"github.com/oisee/argminmax/pkg/isa"
)

func TestBestNeverExceedsCoverage(t *testing.T) {
	for _, width := range []int{8, 16, 32, 64} {
		d := Best(width)
		if !d.Supports(width) {
			t.Errorf("width=%d family=%s: Best returned a descriptor that does not support this width", width, d.Family)
		}
	}
}

func TestBestFallsBackToScalarWhenNothingAvailable(t *testing.T) {
	// With no feature bit set beyond FeatureNone, as on a host without any
	// recognized vector extension, Best must return the scalar descriptor,
	// which supports every width.
	detect()
	saved := featureSeen
	featureSeen = map[isa.Feature]bool{isa.FeatureNone: true}
	defer func() { featureSeen = saved }()

	for _, width := range []int{8, 16, 32, 64} {
		if d := Best(width); d != isa.ScalarDescriptor {
			t.Errorf("Best(%d) = %s, want scalar", width, d.Family)
		}
	}
}

func TestSelectProducesUsableOps(t *testing.T) {
	ops := Select[int32](32)
	if ops.Lanes() < 1 {
		t.Errorf("Lanes() = %d, want >= 1", ops.Lanes())
	}
	if want := 1<<31 - 1; ops.MaxIndex() != want {
		t.Errorf("MaxIndex() = %d, want %d", ops.MaxIndex(), want)
	}
}
