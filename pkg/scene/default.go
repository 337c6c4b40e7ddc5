package scene

import (
	"github.com/rciliberto/ray-tracer/pkg/core"
	"github.com/rciliberto/ray-tracer/pkg/geometry"
	"github.com/rciliberto/ray-tracer/pkg/material"
)

// Default builds the demo scene: a large diffuse ground sphere, a diffuse
// sphere, a fuzzy metal sphere, a hollow glass sphere (outer shell plus an
// inner negative-radius shell sharing the same material instance), and a
// metal triangle behind them.
func Default() *Scene {
	s := NewScene(NewSkyEnvironment())

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metal),
		// Hollow glass: inner shell uses a negative radius so its normal
		// points inward, and shares the outer shell's material
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewTriangle(
			core.NewVec3(-2, 0, -3),
			core.NewVec3(2, 0, -3),
			core.NewVec3(0, 2, -3),
			material.NewMetal(core.NewVec3(0.7, 0.7, 0.8), 0.05),
		),
	)

	return s
}
