package geometry

import (
	"math/rand"

	"github.com/rciliberto/ray-tracer/pkg/core"
)

// testMaterial is a stub material for intersection tests
type testMaterial struct {
	cull bool
}

func (m *testMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (m *testMaterial) CullBackFaces() bool {
	return m.cull
}

func cullingMaterial() core.Material {
	return &testMaterial{cull: true}
}

func nonCullingMaterial() core.Material {
	return &testMaterial{cull: false}
}
