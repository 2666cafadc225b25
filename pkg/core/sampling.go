package core

import (
	"math/rand"
)

// Sampler provides random values for rendering algorithms.
// Can be swapped out for deterministic testing or different sampling patterns.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a deterministic sampler from a seed
func NewSeededSampler(seed int64) *RandomSampler {
	return &RandomSampler{random: rand.New(rand.NewSource(seed))}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomVec3 returns a vector with components uniform in [0, 1)
func RandomVec3(sampler Sampler) Vec3 {
	return sampler.Get3D()
}

// RandomVec3InRange returns a vector with components uniform in [min, max)
func RandomVec3InRange(min, max float64, sampler Sampler) Vec3 {
	span := max - min
	s := sampler.Get3D()
	return NewVec3(min+span*s.X, min+span*s.Y, min+span*s.Z)
}

// RandomInUnitSphere generates a random point inside the unit sphere by
// rejection sampling over the bounding cube (~52% acceptance rate)
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		lengthSq := p.LengthSquared()
		// Reject points outside the sphere and points so close to the
		// center that normalizing them would blow up
		if lengthSq > 1e-160 && lengthSq <= 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniform random direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	return RandomInUnitSphere(sampler).Normalize()
}

// RandomInUnitDisk generates a random point in the unit disk in the z=0
// plane, used for lens (defocus) sampling
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

// RandomOnHemisphere generates a uniform random direction on the hemisphere
// around the given normal
func RandomOnHemisphere(normal Vec3, sampler Sampler) Vec3 {
	onSphere := RandomUnitVector(sampler)
	if onSphere.Dot(normal) > 0 {
		return onSphere
	}
	return onSphere.Negate()
}
