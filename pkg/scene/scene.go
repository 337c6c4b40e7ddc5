package scene

import (
	"github.com/rciliberto/ray-tracer/pkg/core"
)

// Scene is an ordered collection of renderable objects together with the
// environment rays escape into. Object order does not affect correctness;
// it only breaks ties when two hits land at exactly the same distance.
type Scene struct {
	Objects     []core.Hittable
	Environment core.Environment
}

// NewScene creates an empty scene with the given environment
func NewScene(environment core.Environment) *Scene {
	return &Scene{Environment: environment}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...core.Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// Hit returns the globally nearest hit across all objects within
// [tMin, tMax], or false if nothing is hit. Exact-distance ties keep the
// first object in insertion order.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range s.Objects {
		hit, ok := object.Hit(ray, tMin, closestSoFar)
		if !ok {
			continue
		}
		// Primitives accept t == tMax, so a later object can report the
		// exact distance already held; only a strictly closer hit replaces it
		if closest == nil || hit.T < closest.T {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}
