package core

import (
	"math"
	"testing"
)

func TestSampler_Determinism(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)

	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers with equal seeds diverged at draw %d", i)
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() > 1.0 {
			t.Fatalf("Point %v lies outside the unit sphere", p)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit length, got %f", v.Length())
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample %v has nonzero z", p)
		}
		if p.LengthSquared() > 1.0 {
			t.Fatalf("Point %v lies outside the unit disk", p)
		}
	}
}

func TestRandomOnHemisphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	normal := NewVec3(0, 1, 0)

	for i := 0; i < 1000; i++ {
		v := RandomOnHemisphere(normal, sampler)
		if v.Dot(normal) < 0 {
			t.Fatalf("Sample %v points into the surface", v)
		}
	}
}

func TestRandomVec3InRange(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		v := RandomVec3InRange(0.5, 1.0, sampler)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < 0.5 || c >= 1.0 {
				t.Fatalf("Component %f outside [0.5, 1.0)", c)
			}
		}
	}
}
