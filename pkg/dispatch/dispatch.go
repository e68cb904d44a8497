// Package dispatch is the runtime feature-detection layer: it reads the
// host's CPU feature bits once via golang.org/x/sys/cpu and, for each
// element width, hands back the strongest isa.Ops the host actually
// supports.
package dispatch

import (
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/oisee/argminmax/pkg/isa"
)

var (
	detectOnce  sync.Once
	candidates  []isa.Descriptor
	featureSeen map[isa.Feature]bool
)

// detect runs exactly once per process: it builds the strongest-first
// candidate list for the host architecture and records which feature tags
// the host actually has.
func detect() {
	detectOnce.Do(func() {
		featureSeen = map[isa.Feature]bool{isa.FeatureNone: true}

		switch runtime.GOARCH {
		case "amd64", "386":
			candidates = []isa.Descriptor{isa.AVX512Descriptor, isa.AVX2Descriptor, isa.SSEDescriptor, isa.ScalarDescriptor}
			featureSeen[isa.FeatureSSE2] = cpu.X86.HasSSE2
			featureSeen[isa.FeatureAVX2] = cpu.X86.HasAVX2
			featureSeen[isa.FeatureAVX512F] = cpu.X86.HasAVX512F
			featureSeen[isa.FeatureAVX512BW] = cpu.X86.HasAVX512BW
		case "arm64":
			candidates = []isa.Descriptor{isa.ARMNeonDescriptor, isa.ScalarDescriptor}
			featureSeen[isa.FeatureNeon] = cpu.ARM64.HasASIMD
		default:
			candidates = []isa.Descriptor{isa.ScalarDescriptor}
		}
	})
}

// Best returns the strongest descriptor available on this host for a
// given element width, applying both the coverage matrix
// (Descriptor.Supports) and the live feature bits.
func Best(widthBits int) isa.Descriptor {
	detect()
	for _, d := range candidates {
		if !d.Supports(widthBits) {
			continue
		}
		if featureSeen[d.Feature(widthBits)] {
			return d
		}
	}
	return isa.ScalarDescriptor
}

// Select builds the isa.Ops for the strongest descriptor available for O's
// width on this host. argminmax.ArgMinMax (and the ArgMin/ArgMax built on
// it) and float16.ArgMinMax call this once per invocation; the ignore-NaN
// entry points do not use it. The result is cheap to construct (a handful
// of int slices of length <= 64) and is not itself cached across calls,
// since the host's CPU features never change mid-process and detect is
// already memoized.
func Select[O isa.Signed](widthBits int) isa.Ops[O] {
	return isa.NewOps[O](Best(widthBits), widthBits)
}
