package scene

import (
	"math"
	"testing"

	"github.com/rciliberto/ray-tracer/pkg/core"
	"github.com/rciliberto/ray-tracer/pkg/geometry"
	"github.com/rciliberto/ray-tracer/pkg/material"
)

func TestScene_Hit_Empty(t *testing.T) {
	s := NewScene(NewSkyEnvironment())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, isHit := s.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Expected miss in an empty scene")
	}
}

func TestScene_Hit_NearestWins(t *testing.T) {
	diffuse := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	near := geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, diffuse)
	far := geometry.NewSphere(core.NewVec3(0, 0, -10), 0.5, diffuse)

	tests := []struct {
		name    string
		objects []core.Hittable
	}{
		{"near first", []core.Hittable{near, far}},
		{"far first", []core.Hittable{far, near}},
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene(NewSkyEnvironment())
			s.Add(tt.objects...)

			hit, isHit := s.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			// The near sphere's front surface sits at t=1.5 regardless of
			// insertion order
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected nearest hit at t=1.5, got t=%f", hit.T)
			}
		})
	}
}

func TestScene_Hit_TieBreaksFirstInOrder(t *testing.T) {
	// Two identical spheres at the same distance: the first one added wins
	first := material.NewLambertian(core.NewVec3(1, 0, 0))
	second := material.NewLambertian(core.NewVec3(0, 1, 0))

	s := NewScene(NewSkyEnvironment())
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, first),
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, second),
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if hit.Material != first {
		t.Errorf("Expected the first object's material on an exact tie, got %v", hit.Material)
	}
}

func TestScene_Hit_IntervalClipsNearObject(t *testing.T) {
	diffuse := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s := NewScene(NewSkyEnvironment())
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, diffuse),
		geometry.NewSphere(core.NewVec3(0, 0, -10), 0.5, diffuse),
	)

	// Start the interval past the near sphere: only the far one remains
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.Hit(ray, 3.0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit on the far sphere")
	}
	if math.Abs(hit.T-9.5) > 1e-9 {
		t.Errorf("Expected hit at t=9.5, got t=%f", hit.T)
	}
}

func TestGradientEnvironment_Color(t *testing.T) {
	env := NewSkyEnvironment()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight down", core.NewVec3(0, -1, 0), env.Horizon},
		{"straight up", core.NewVec3(0, 1, 0), env.Zenith},
		{"horizontal", core.NewVec3(1, 0, 0), env.Horizon.Add(env.Zenith).Multiply(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := env.Color(tt.direction)
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGradientEnvironment_Color_NormalizesDirection(t *testing.T) {
	env := NewSkyEnvironment()

	// Scaling the direction must not change the color
	a := env.Color(core.NewVec3(0, 1, 0))
	b := env.Color(core.NewVec3(0, 100, 0))
	if a.Subtract(b).Length() > 1e-9 {
		t.Errorf("Expected scale-invariant color, got %v and %v", a, b)
	}
}

func TestDefault_Composition(t *testing.T) {
	s := Default()

	if len(s.Objects) != 6 {
		t.Errorf("Expected 6 objects in the demo scene, got %d", len(s.Objects))
	}
	if s.Environment == nil {
		t.Fatal("Expected an environment")
	}

	// The camera's demo axis passes through the center sphere
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	if _, isHit := s.Hit(ray, 0.001, math.Inf(1)); !isHit {
		t.Error("Expected the demo scene to block the axis ray")
	}
}
