// Package render meshes track parts and writes them out as binary STL,
// with an optional PNG preview of the result.
package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams the triangles of a mesh. ReadTriangles fills t and
// returns io.EOF once the mesh is exhausted.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a mesh face, vertices in counter-clockwise order seen from
// outside the part.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the outward unit normal of the face.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Bounds returns the axis aligned box containing every vertex of model.
func Bounds(model []Triangle3) (min, max r3.Vec) {
	if len(model) == 0 {
		return min, max
	}
	min, max = model[0].V[0], model[0].V[0]
	for _, t := range model {
		for _, v := range t.V {
			min = r3.Vec{X: math.Min(min.X, v.X), Y: math.Min(min.Y, v.Y), Z: math.Min(min.Z, v.Z)}
			max = r3.Vec{X: math.Max(max.X, v.X), Y: math.Max(max.Y, v.Y), Z: math.Max(max.Z, v.Z)}
		}
	}
	return min, max
}
