package math

import (
	"math"
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{3, 4, 5}
	got := a.Add(b)
	want := Vec3{4, 6, 8}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 0}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 3}
	if got := a.Min(b); got != (Vec3{-1, -2, 3}) {
		t.Errorf("Vec3.Min() = %v", got)
	}
	if got := a.Max(b); got != (Vec3{1, 2, 3}) {
		t.Errorf("Vec3.Max() = %v", got)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		in   float32
		want bool
	}{
		{0, true},
		{-1.5, true},
		{float32(math.NaN()), false},
		{float32(math.Inf(1)), false},
		{float32(math.Inf(-1)), false},
	}
	for _, tt := range tests {
		if got := IsFinite(tt.in); got != tt.want {
			t.Errorf("IsFinite(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if (Vec3{1, float32(math.NaN()), 0}).IsFinite() {
		t.Error("Vec3 with NaN should not be finite")
	}
}

func TestCrossAndNormalize(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("x cross y = %v, want +Z", got)
	}
	if got := x.Dot(y); got != 0 {
		t.Errorf("x dot y = %f, want 0", got)
	}
	if got := (Vec3{3, 0, 4}).Normalize(); got != (Vec3{0.6, 0, 0.8}) {
		t.Errorf("Normalize = %v", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize = %v, want zero", got)
	}
}
