package ordinal

import (
	"math"
	"testing"
)

func TestUnsignedOrderPreserved(t *testing.T) {
	vals := []uint8{0, 1, 127, 128, 200, 255}
	for i := 0; i < len(vals); i++ {
		for j := 0; j < len(vals); j++ {
			a, b := vals[i], vals[j]
			want := a < b
			got := EncodeUint8(a) < EncodeUint8(b)
			if got != want {
				t.Errorf("a=%d b=%d: got %v want %v", a, b, got, want)
			}
		}
	}
}

func TestUnsignedRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		u := uint8(v)
		if got := DecodeUint8(EncodeUint8(u)); got != u {
			t.Errorf("uint8 round trip %d: got %d", u, got)
		}
	}
	for _, v := range []uint32{0, 1, 1 << 31, math.MaxUint32} {
		if got := DecodeUint32(EncodeUint32(v)); got != v {
			t.Errorf("uint32 round trip %d: got %d", v, got)
		}
	}
	for _, v := range []uint64{0, 1, 1 << 63, math.MaxUint64} {
		if got := DecodeUint64(EncodeUint64(v)); got != v {
			t.Errorf("uint64 round trip %d: got %d", v, got)
		}
	}
}

func TestFloat32OrderPreserved(t *testing.T) {
	vals := []float32{
		float32(math.Inf(-1)), -1000, -1, 0, 1, 1000, float32(math.Inf(1)),
	}
	for i := range vals {
		for j := range vals {
			a, b := vals[i], vals[j]
			want := a < b
			got := EncodeFloat32ReturnNaN(a) < EncodeFloat32ReturnNaN(b)
			if got != want {
				t.Errorf("a=%v b=%v: got %v want %v", a, b, got, want)
			}
		}
	}
}

func TestFloat32NaNOrdersAboveInf(t *testing.T) {
	nan := float32(math.NaN())
	posInf := float32(math.Inf(1))
	if EncodeFloat32ReturnNaN(nan) <= EncodeFloat32ReturnNaN(posInf) {
		t.Errorf("NaN encoding does not order above +Inf")
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	vals := []float32{0, -0, 1, -1, 3.14159, -3.14159, float32(math.Inf(1)), float32(math.Inf(-1))}
	for _, v := range vals {
		got := DecodeFloat32ReturnNaN(EncodeFloat32ReturnNaN(v))
		if math.Float32bits(got) != math.Float32bits(v) {
			t.Errorf("float32 round trip %v: got %v", v, got)
		}
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	vals := []float64{0, -0, 1, -1, 2.718281828, -2.718281828, math.Inf(1), math.Inf(-1)}
	for _, v := range vals {
		got := DecodeFloat64ReturnNaN(EncodeFloat64ReturnNaN(v))
		if math.Float64bits(got) != math.Float64bits(v) {
			t.Errorf("float64 round trip %v: got %v", v, got)
		}
	}
}

func TestSignedIdentity(t *testing.T) {
	if got := EncodeInt32(-5); got != -5 {
		t.Errorf("EncodeInt32(-5): got %d want -5", got)
	}
	if got := DecodeInt32(EncodeInt32(-5)); got != -5 {
		t.Errorf("DecodeInt32(EncodeInt32(-5)): got %d want -5", got)
	}
}
