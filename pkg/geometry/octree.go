package geometry

import (
	"github.com/rciliberto/ray-tracer/pkg/core"
)

// Leaf threshold: a node with this many triangles or fewer stops subdividing
const octreeLeafThreshold = 16

// noChild marks an absent child slot in the node arena
const noChild = int32(-1)

// Planar geometry yields a zero-thickness extent along one axis, which the
// slab test always rejects. Padding the extent keeps flat meshes hittable.
const boundsPadding = 1e-4

// octreeNode is one node of the octree, stored in a flat arena and
// addressed by index. A node is a leaf when its triangle count is at or
// below the threshold, and a bud when at least one direct child is a leaf.
// Buds are the coarsest granularity at which per-triangle testing begins.
type octreeNode struct {
	bounds    core.AABB
	triangles []int // Candidate triangle indices assigned to this region
	children  [8]int32
	leaf      bool
	bud       bool
}

// Octree recursively partitions a triangle set over a shared vertex buffer.
// Traversal answers which regions a ray plausibly hits so the mesh only
// tests those candidate triangles.
type Octree struct {
	nodes []octreeNode
	root  int32
}

// NewOctree builds an octree over the given triangle set. The vertex and
// triangle buffers are owned by the caller and must not change afterwards.
func NewOctree(vertices []core.Vec3, triangles [][3]int) *Octree {
	bounds := core.NewAABBFromPoints(vertices...).Expand(boundsPadding)

	candidates := make([]int, len(triangles))
	for i := range candidates {
		candidates[i] = i
	}

	o := &Octree{}
	o.root = o.build(bounds, candidates, vertices, triangles)
	return o
}

// build creates the node for the given extent and candidate set, recursing
// into non-empty octants, and returns its arena index.
func (o *Octree) build(bounds core.AABB, candidates []int, vertices []core.Vec3, triangles [][3]int) int32 {
	index := int32(len(o.nodes))
	node := octreeNode{bounds: bounds, triangles: candidates}
	for i := range node.children {
		node.children[i] = noChild
	}
	o.nodes = append(o.nodes, node)

	if len(candidates) <= octreeLeafThreshold {
		o.nodes[index].leaf = true
		return index
	}

	for octant := 0; octant < 8; octant++ {
		childBounds := bounds.Octant(octant)

		// A triangle belongs to every octant containing at least one of
		// its vertices, so boundary triangles duplicate across children.
		var childTriangles []int
		for _, ti := range candidates {
			tri := triangles[ti]
			if childBounds.Contains(vertices[tri[0]]) ||
				childBounds.Contains(vertices[tri[1]]) ||
				childBounds.Contains(vertices[tri[2]]) {
				childTriangles = append(childTriangles, ti)
			}
		}
		if len(childTriangles) == 0 {
			continue
		}

		child := o.build(childBounds, childTriangles, vertices, triangles)
		o.nodes[index].children[octant] = child
		if o.nodes[child].leaf {
			o.nodes[index].bud = true
		}
	}

	return index
}

// IntersectingBuds returns the arena indices of every bud node whose box
// the ray passes through. Traversal stops descending at buds; a root that
// never subdivided counts as the sole bud.
func (o *Octree) IntersectingBuds(ray core.Ray, tMin, tMax float64) []int32 {
	return o.collectBuds(o.root, ray, tMin, tMax, nil)
}

func (o *Octree) collectBuds(index int32, ray core.Ray, tMin, tMax float64, buds []int32) []int32 {
	node := &o.nodes[index]

	if !node.bounds.Hit(ray, tMin, tMax) {
		return buds
	}

	if node.bud || !o.hasChildren(index) {
		return append(buds, index)
	}

	for _, child := range node.children {
		if child != noChild {
			buds = o.collectBuds(child, ray, tMin, tMax, buds)
		}
	}
	return buds
}

func (o *Octree) hasChildren(index int32) bool {
	for _, child := range o.nodes[index].children {
		if child != noChild {
			return true
		}
	}
	return false
}

// Triangles returns the candidate triangle indices stored at the node with
// the given arena index
func (o *Octree) Triangles(index int32) []int {
	return o.nodes[index].triangles
}

// Bounds returns the spatial extent covered by the whole tree
func (o *Octree) Bounds() core.AABB {
	return o.nodes[o.root].bounds
}

// NodeCount returns the number of nodes in the arena
func (o *Octree) NodeCount() int {
	return len(o.nodes)
}
