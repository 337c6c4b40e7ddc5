package material

import (
	"math/rand"
	"testing"

	"github.com/rciliberto/ray-tracer/pkg/core"
)

func TestNewMetal_FuzzClamping(t *testing.T) {
	tests := []struct {
		name     string
		fuzz     float64
		expected float64
	}{
		{"in range", 0.3, 0.3},
		{"above one", 2.5, 1.0},
		{"negative", -0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), tt.fuzz)
			if metal.Fuzz != tt.expected {
				t.Errorf("Expected fuzz %f, got %f", tt.expected, metal.Fuzz)
			}
		})
	}
}

func TestMetal_Scatter_PerfectMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	hit := testHit(core.NewVec3(0, 0, 1), true)
	random := rand.New(rand.NewSource(42))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight along the normal", core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)},
		{"45 degree incidence", core.NewVec3(1, 0, -1), core.NewVec3(1, 0, 1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rayIn := core.NewRay(core.NewVec3(0, 0, 1), tt.direction)
			result, scatters := metal.Scatter(rayIn, hit, random)
			if !scatters {
				t.Fatal("Expected reflection, but ray was absorbed")
			}

			if result.Scattered.Direction.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected mirror direction %v, got %v", tt.expected, result.Scattered.Direction)
			}
			if result.Attenuation != metal.Albedo {
				t.Errorf("Expected attenuation %v, got %v", metal.Albedo, result.Attenuation)
			}
		})
	}
}

func TestMetal_Scatter_FuzzStaysInHemisphere(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	hit := testHit(core.NewVec3(0, 0, 1), true)
	rayIn := core.NewRay(core.NewVec3(-1, 0, 1), core.NewVec3(1, 0, -1))

	random := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		result, scatters := metal.Scatter(rayIn, hit, random)
		if !scatters {
			continue // Absorbed: perturbation pushed the ray into the surface
		}
		if result.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Sample %d: scattered ray %v points into the surface", i, result.Scattered.Direction)
		}
	}
}

func TestMetal_Scatter_GrazingAbsorption(t *testing.T) {
	// At maximum fuzz a grazing ray must sometimes be absorbed
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	hit := testHit(core.NewVec3(0, 0, 1), true)
	rayIn := core.NewRay(core.NewVec3(-10, 0, 0.1), core.NewVec3(10, 0, -0.1))

	random := rand.New(rand.NewSource(42))
	absorbed := 0
	for i := 0; i < 200; i++ {
		if _, scatters := metal.Scatter(rayIn, hit, random); !scatters {
			absorbed++
		}
	}
	if absorbed == 0 {
		t.Error("Expected some grazing rays to be absorbed at fuzz=1")
	}
}

func TestMetal_CullBackFaces(t *testing.T) {
	if !NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0).CullBackFaces() {
		t.Error("Expected metal material to cull back faces")
	}
}
