package core

import (
	"math"
	"testing"
)

func TestInterval_Size(t *testing.T) {
	iv := NewInterval(1, 4)
	if got := iv.Size(); got != 3 {
		t.Errorf("Expected size 3, got %f", got)
	}
}

func TestInterval_ContainsSurrounds(t *testing.T) {
	iv := NewInterval(1, 4)

	tests := []struct {
		x         float64
		contains  bool
		surrounds bool
	}{
		{0.5, false, false},
		{1.0, true, false}, // Bounds are included by Contains but not Surrounds
		{2.5, true, true},
		{4.0, true, false},
		{4.5, false, false},
	}

	for _, tt := range tests {
		if got := iv.Contains(tt.x); got != tt.contains {
			t.Errorf("Contains(%f): got %t, want %t", tt.x, got, tt.contains)
		}
		if got := iv.Surrounds(tt.x); got != tt.surrounds {
			t.Errorf("Surrounds(%f): got %t, want %t", tt.x, got, tt.surrounds)
		}
	}
}

func TestInterval_Clamp(t *testing.T) {
	iv := NewInterval(0, 0.999)

	tests := []struct {
		x    float64
		want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{1.5, 0.999},
	}

	for _, tt := range tests {
		if got := iv.Clamp(tt.x); got != tt.want {
			t.Errorf("Clamp(%f): got %f, want %f", tt.x, got, tt.want)
		}
	}
}

func TestInterval_UniverseAndEmpty(t *testing.T) {
	if !UniverseInterval.Contains(math.MaxFloat64) || !UniverseInterval.Contains(-math.MaxFloat64) {
		t.Error("Universe interval should contain every value")
	}
	if EmptyInterval.Contains(0) {
		t.Error("Empty interval should contain no value")
	}
}
