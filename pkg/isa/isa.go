// Package isa holds the compile-time instruction-set descriptors and the
// primitive operation set (load/add/compare/blend/horizontal-reduce) that
// pkg/kernel's traversal algorithm is generic over.
//
// Go has no portable way to hand-write AVX2/AVX512/NEON intrinsics without
// either cgo or per-arch assembly files generated by a build step, and this
// module is built without running any toolchain. Each Family below instead
// fixes the metadata real vector hardware would impose: lane count per
// element width and a minimum-feature tag, while the primitive operations
// themselves are plain, allocation-free Go loops over lane-width slices.
// pkg/dispatch still picks the strongest Family the host CPU feature bits
// (golang.org/x/sys/cpu) support, so the selection and fall-back logic is
// real; only the lane-parallel execution is simulated.
package isa

// Feature tags the minimum CPU capability a Family+width combination needs.
type Feature uint8

const (
	FeatureNone Feature = iota
	FeatureSSE2
	FeatureAVX2
	FeatureAVX512F
	FeatureAVX512BW
	FeatureNeon
)

func (f Feature) String() string {
	switch f {
	case FeatureSSE2:
		return "SSE2"
	case FeatureAVX2:
		return "AVX2"
	case FeatureAVX512F:
		return "AVX512F"
	case FeatureAVX512BW:
		return "AVX512BW"
	case FeatureNeon:
		return "NEON"
	default:
		return "none"
	}
}

// Family identifies one of the four x86 compile-time descriptors plus the
// ARM 128-bit family.
type Family uint8

const (
	Scalar Family = iota
	SSE
	AVX2
	AVX512
	ARMNeon
)

func (f Family) String() string {
	switch f {
	case SSE:
		return "sse"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case ARMNeon:
		return "arm_neon"
	default:
		return "scalar"
	}
}

// Descriptor fixes a native register width in bits (0 for the scalar
// fallback, which has exactly one lane regardless of element width).
type Descriptor struct {
	Family       Family
	RegisterBits int
}

var (
	ScalarDescriptor  = Descriptor{Family: Scalar, RegisterBits: 0}
	SSEDescriptor     = Descriptor{Family: SSE, RegisterBits: 128}
	AVX2Descriptor    = Descriptor{Family: AVX2, RegisterBits: 256}
	AVX512Descriptor  = Descriptor{Family: AVX512, RegisterBits: 512}
	ARMNeonDescriptor = Descriptor{Family: ARMNeon, RegisterBits: 128}
)

// Lanes returns the per-element lane count L = register-width/W for a
// given element width in bits. Scalar always has exactly one lane.
func (d Descriptor) Lanes(widthBits int) int {
	if d.RegisterBits == 0 {
		return 1
	}
	return d.RegisterBits / widthBits
}

// Feature returns the minimum CPU feature tag required to run this
// descriptor at the given element width.
func (d Descriptor) Feature(widthBits int) Feature {
	switch d.Family {
	case SSE:
		return FeatureSSE2
	case AVX2:
		return FeatureAVX2
	case AVX512:
		if widthBits == 8 {
			return FeatureAVX512BW
		}
		return FeatureAVX512F
	case ARMNeon:
		return FeatureNeon
	default:
		return FeatureNone
	}
}

// Supports reports the coverage matrix: every family covers every element
// width (8, 16, 32 and 64 bits, the last also carrying f64), except ARM
// NEON, which has no 64-bit-element lane-wise compare/add and falls back
// to scalar there.
func (d Descriptor) Supports(widthBits int) bool {
	if d.Family == ARMNeon && widthBits == 64 {
		return false
	}
	return true
}
