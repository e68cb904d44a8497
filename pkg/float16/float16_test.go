package float16

import (
	"math"
	"testing"
)

func TestRoundTripCommonValues(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 0.5, -0.5, 3.14, 100, -100, 65504} {
		h := FromFloat32(f)
		got := ToFloat32(h)
		if math.Abs(float64(got-f)) > 0.05 {
			t.Errorf("FromFloat32(%v) round trip: got %v", f, got)
		}
	}
}

func TestOrdinalOrderPreserved(t *testing.T) {
	values := []float32{-100, -1, -0.5, 0, 0.5, 1, 100}
	var prev int16
	for i, f := range values {
		enc := EncodeOrdinal(FromFloat32(f))
		if i > 0 && prev >= enc {
			t.Errorf("EncodeOrdinal(%v)=%d not greater than previous %d", f, enc, prev)
		}
		prev = enc
	}
}

func TestOrdinalRoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 42.5, -42.5} {
		h := FromFloat32(f)
		if got := DecodeOrdinal(EncodeOrdinal(h)); got != h {
			t.Errorf("DecodeOrdinal(EncodeOrdinal(%v)): got %v want %v", f, got, h)
		}
	}
}

func TestArgMinMaxConcreteScenario(t *testing.T) {
	data := []Float16{
		FromFloat32(10), FromFloat32(0), FromFloat32(6), FromFloat32(9),
		FromFloat32(9), FromFloat32(22), FromFloat32(-5), FromFloat32(4),
	}
	argmin, argmax, err := ArgMinMax(data)
	if err != nil {
		t.Fatalf("ArgMinMax: %v", err)
	}
	if argmin != 6 {
		t.Errorf("argmin: got %d want 6", argmin)
	}
	if argmax != 5 {
		t.Errorf("argmax: got %d want 5", argmax)
	}
}

func TestArgMinMaxEmptyFails(t *testing.T) {
	if _, _, err := ArgMinMax(nil); err != ErrEmptyInput {
		t.Errorf("ArgMinMax(nil): got err %v want %v", err, ErrEmptyInput)
	}
}
