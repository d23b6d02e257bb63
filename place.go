package brickrail

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// End identifies one end of a curve.
type End int

const (
	// Start is the end at angle 0.
	Start End = iota
	// Far is the end at the curve angle.
	Far
)

// Placement positions a feature built in a local frame. The local frame has
// X lateral (outward from the curve center), Y along the track and Z up.
// A point is first turned half a revolution about local Z if Turn is set,
// then moved by Offset and finally rotated by Angle degrees about world Z.
type Placement struct {
	Angle  float64
	Offset r3.Vec
	Turn   bool
}

// EndPlacement returns the frame of an endpoint on a curve of centerline
// radius r (mm) and the given angle. The start frame faces the segment from
// angle 0; the far frame is rotated to angle and turned so it faces back into
// the segment. Local Y is always positive inside the segment.
func EndPlacement(r, angle float64, e End) Placement {
	p := Placement{Offset: r3.Vec{X: r}}
	if e == Far {
		p.Angle = angle
		p.Turn = true
	}
	return p
}

// ArcPlacement returns the frame centered on the track centerline at angle.
func ArcPlacement(r, angle float64) Placement {
	return Placement{Angle: angle, Offset: r3.Vec{X: r}}
}

// Apply maps a local point to world coordinates.
func (p Placement) Apply(v r3.Vec) r3.Vec {
	if p.Turn {
		v.X, v.Y = -v.X, -v.Y
	}
	v = r3.Add(v, p.Offset)
	s, c := math.Sincos(p.Angle * math.Pi / 180)
	return r3.Vec{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y, Z: v.Z}
}

// Matrix returns the placement as a kernel transform.
func (p Placement) Matrix() sdf.M44 {
	m := sdf.RotateZ(sdf.DtoR(p.Angle)).Mul(sdf.Translate3d(v3.Vec{X: p.Offset.X, Y: p.Offset.Y, Z: p.Offset.Z}))
	if p.Turn {
		m = m.Mul(sdf.RotateZ(math.Pi))
	}
	return m
}

// Place transforms s into the placement's frame.
func (p Placement) Place(s sdf.SDF3) sdf.SDF3 {
	return sdf.Transform3D(s, p.Matrix())
}

// Local returns the placement with its origin moved to the local point q,
// so that p.Local(q).Apply(v) == p.Apply(v+q).
func (p Placement) Local(q r3.Vec) Placement {
	if p.Turn {
		q.X, q.Y = -q.X, -q.Y
	}
	p.Offset = r3.Add(p.Offset, q)
	return p
}
