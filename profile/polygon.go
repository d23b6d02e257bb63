package profile

import (
	"errors"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Area returns the signed area of the closed polygon. It is positive for
// counterclockwise winding.
func Area(pts []r2.Vec) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += r2.Cross(pts[i], pts[j])
	}
	return a / 2
}

// MirrorX reflects the polygon across the Y axis, keeping it counterclockwise.
func MirrorX(pts []r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = r2.Vec{X: -p.X, Y: p.Y}
	}
	return out
}

// Translate returns the polygon moved by d.
func Translate(pts []r2.Vec, d r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(pts))
	for i, p := range pts {
		out[i] = r2.Add(p, d)
	}
	return out
}

// Polygon returns the kernel SDF2 for a closed point list. Clockwise lists
// are reversed so the outward normal is always on the right of travel.
func Polygon(pts []r2.Vec) (sdf.SDF2, error) {
	if len(pts) < 3 {
		return nil, errors.New("polygon needs at least 3 points")
	}
	area := Area(pts)
	if area == 0 {
		return nil, errors.New("degenerate polygon")
	}
	vs := make([]v2.Vec, len(pts))
	for i, p := range pts {
		if area < 0 {
			p = pts[len(pts)-1-i]
		}
		vs[i] = v2.Vec{X: p.X, Y: p.Y}
	}
	return sdf.Polygon2D(vs)
}
