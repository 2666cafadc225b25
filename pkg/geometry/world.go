package geometry

import (
	"github.com/tdegroot/go-pathtracer/pkg/core"
	"github.com/tdegroot/go-pathtracer/pkg/material"
)

// World is an unordered collection of primitives intersected by linear scan.
// It is read-only during rendering.
type World struct {
	Objects []Hittable
}

// NewWorld creates a world from the given objects
func NewWorld(objects ...Hittable) *World {
	return &World{Objects: objects}
}

// Add appends objects to the world
func (w *World) Add(objects ...Hittable) {
	w.Objects = append(w.Objects, objects...)
}

// Hit intersects the ray against every object and keeps the closest valid
// hit, shrinking the upper bound of the search interval as hits are found.
func (w *World) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tRange.Max

	for _, object := range w.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(tRange.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}
