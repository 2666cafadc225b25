package geometry

import (
	"github.com/tdegroot/go-pathtracer/pkg/core"
	"github.com/tdegroot/go-pathtracer/pkg/material"
)

// Hittable is the contract a primitive fulfills when a ray strikes it: the
// nearest root inside the open parameter interval, with the surface normal
// oriented against the incoming ray. A false second return means no hit;
// the record is nil in that case.
type Hittable interface {
	Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool)
}
