package render

import (
	"io"
	"math"

	"github.com/deadsy/sdfx/sdf"
	sdfrender "github.com/deadsy/sdfx/render"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a marching cubes triangulation of a solid.
type Mesh struct {
	buf triangle3Buffer
}

var _ Renderer = (*Mesh)(nil)

// NewMesh triangulates s on a uniform grid with cells cubes along its
// longest side. Faces that do not survive float32 storage as a proper
// triangle are dropped.
func NewMesh(s sdf.SDF3, cells int) *Mesh {
	if cells < 1 {
		cells = 1
	}
	tris := sdfrender.ToTriangles(s, sdfrender.NewMarchingCubesUniform(cells))
	m := &Mesh{}
	m.buf.buf = make([]Triangle3, 0, len(tris))
	for _, tri := range tris {
		t := Triangle3{V: [3]r3.Vec{vec(tri[0]), vec(tri[1]), vec(tri[2])}}
		if d := toSTL(t); d.degenerate(0) || bad3F32(d.Normal) {
			continue
		}
		m.buf.Write([]Triangle3{t})
	}
	return m
}

// ReadTriangles implements Renderer.
func (m *Mesh) ReadTriangles(t []Triangle3) (int, error) {
	if m.buf.Len() == 0 {
		return 0, io.EOF
	}
	return m.buf.Read(t), nil
}

// Len returns the number of triangles not yet read.
func (m *Mesh) Len() int { return m.buf.Len() }

// Cells returns the grid size along the longest side of s that keeps each
// cube no larger than size.
func Cells(s sdf.SDF3, size float64) int {
	if size <= 0 {
		panic("cell size must be positive")
	}
	d := s.BoundingBox().Size()
	return int(math.Ceil(math.Max(d.X, math.Max(d.Y, d.Z)) / size))
}

func vec(v v3.Vec) r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }
