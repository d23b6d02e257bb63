// Package feature builds the small solids that the track and ballast
// generators repeat and place: boxes, sectors, swept and extruded profiles,
// pins, studs and grip tubes.
//
// Every builder works in a local frame with X lateral, Y along the track and
// Z up, so its result can be moved into place with a brickrail.Placement.
package feature

import (
	"errors"
	"fmt"
	"math"
	"runtime/debug"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/soypat/brickrail"
	"github.com/soypat/brickrail/profile"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Stack returns the stack trace captured when a shape error was recovered,
// or the empty string for other errors.
func Stack(err error) string {
	var se *shapeErr
	if errors.As(err, &se) {
		return se.stack
	}
	return ""
}

// Catch recovers a panic raised while composing a solid and stores it in
// err. It must be deferred directly:
//
//	defer feature.Catch(&err)
func Catch(err *error) {
	if a := recover(); a != nil {
		*err = &shapeErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}

// Must returns s or panics with err. Pair with Catch.
func Must[T any](s T, err error) T {
	if err != nil {
		panic(err)
	}
	return s
}

func vec(v r3.Vec) v3.Vec { return v3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

// Box returns the axis aligned box spanning min to max.
func Box(min, max r3.Vec) (sdf.SDF3, error) {
	size := r3.Sub(max, min)
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("box size %v must be positive", size)
	}
	s, err := sdf.Box3D(vec(size), 0)
	if err != nil {
		return nil, err
	}
	center := r3.Scale(0.5, r3.Add(min, max))
	return sdf.Transform3D(s, sdf.Translate3d(vec(center))), nil
}

// SectorParams defines an annular sector about the Z axis.
type SectorParams struct {
	Inner, Outer float64 // radii
	Bottom, Top  float64
	// Start is the angle in degrees the sector begins at and Angle its
	// counterclockwise sweep. A sweep of 360 closes the ring.
	Start, Angle float64
}

// AnnularSector returns the solid between two radii and two heights, over an
// angular range. Negative radii are clamped to the axis; a sector lying
// entirely behind the axis is empty and returned as nil.
func AnnularSector(k SectorParams) (s sdf.SDF3, err error) {
	defer Catch(&err)
	if k.Outer <= k.Inner || k.Top <= k.Bottom || k.Angle <= 0 {
		return nil, fmt.Errorf("degenerate sector %+v", k)
	}
	if k.Outer <= 0 {
		return nil, nil
	}
	inner := math.Max(k.Inner, 0)
	rect := sdf.Box2D(v2.Vec{X: k.Outer - inner, Y: k.Top - k.Bottom}, 0)
	rect = sdf.Transform2D(rect, sdf.Translate2d(v2.Vec{X: (k.Outer + inner) / 2, Y: (k.Top + k.Bottom) / 2}))
	s = revolve(rect, k.Angle)
	if k.Start != 0 {
		s = sdf.Transform3D(s, sdf.RotateZ(sdf.DtoR(k.Start)))
	}
	return s, nil
}

// Sweep revolves a (lateral, up) profile centered radius from the Z axis
// through angle degrees counterclockwise from +X.
func Sweep(pts []r2.Vec, radius, angle float64) (s sdf.SDF3, err error) {
	defer Catch(&err)
	poly := Must(profile.Polygon(profile.Translate(pts, r2.Vec{X: radius})))
	return revolve(poly, angle), nil
}

func revolve(s2 sdf.SDF2, angle float64) sdf.SDF3 {
	if angle >= 360 {
		return Must(sdf.Revolve3D(s2))
	}
	return Must(sdf.RevolveTheta3D(s2, sdf.DtoR(angle)))
}

// PrismParams defines a (lateral, up) profile extruded along local Y.
type PrismParams struct {
	Profile []r2.Vec
	Y0, Y1  float64
	// Grow offsets the profile outward, for cutting clearance.
	Grow float64
}

// Prism returns the extrusion of a cross section along the track.
func Prism(k PrismParams) (s sdf.SDF3, err error) {
	defer Catch(&err)
	if k.Y0 == k.Y1 {
		return nil, errors.New("zero length prism")
	}
	poly := Must(profile.Polygon(k.Profile))
	if k.Grow != 0 {
		poly = sdf.Offset2D(poly, k.Grow)
	}
	return alongY(sdf.Extrude3D(poly, math.Abs(k.Y1-k.Y0)), (k.Y0+k.Y1)/2), nil
}

// alongY turns a solid built along Z, centered on the origin, to lie along Y
// centered on y. Local Z of the source becomes Y pointing backwards, so a
// source point at z=-h/2 ends at y+h/2.
func alongY(s sdf.SDF3, y float64) sdf.SDF3 {
	m := sdf.Translate3d(v3.Vec{Y: y}).Mul(sdf.RotateX(math.Pi / 2))
	return sdf.Transform3D(s, m)
}

// RodParams defines a round rod along local Y, optionally tapered.
type RodParams struct {
	X, Z   float64 // axis position
	Y0, Y1 float64
	R0, R1 float64 // radius at Y0 and at Y1
}

// Rod returns a cylinder or truncated cone lying along local Y. Connector
// pegs, key pins and the sockets they seat in are all rods.
func Rod(k RodParams) (s sdf.SDF3, err error) {
	defer Catch(&err)
	lo, hi, rlo, rhi := k.Y0, k.Y1, k.R0, k.R1
	if hi < lo {
		lo, hi, rlo, rhi = hi, lo, rhi, rlo
	}
	h := hi - lo
	if h <= 0 {
		return nil, errors.New("zero length rod")
	}
	if rlo == rhi {
		s = Must(sdf.Cylinder3D(h, rlo, 0))
	} else {
		// Cone3D puts r0 at -h/2, which alongY maps to the high end.
		s = Must(sdf.Cone3D(h, rhi, rlo, 0))
	}
	s = alongY(s, 0)
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{X: k.X, Y: (lo + hi) / 2, Z: k.Z})), nil
}

// Post returns a vertical cylinder of the given diameter standing on z0.
func Post(diameter, z0, height float64) (s sdf.SDF3, err error) {
	defer Catch(&err)
	s = Must(sdf.Cylinder3D(height, diameter/2, 0))
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: z0 + height/2})), nil
}

// Stud returns a brick stud standing on z0.
func Stud(z0 float64) (sdf.SDF3, error) {
	return Post(brickrail.StudDiameter, z0, brickrail.StudHeight)
}

// StudSocket returns the void that receives a stud from below. It rises from
// under z=0 to the stud height, both grown by clearance.
func StudSocket(clearance float64) (sdf.SDF3, error) {
	const below = 1
	return Post(brickrail.StudDiameter+2*clearance, -below, brickrail.StudHeight+clearance+below)
}

// GripTube returns an underside tube standing on z0. Studs pressed between
// neighbouring tubes, or into the tube bore, are held by friction.
func GripTube(z0, height float64) (s sdf.SDF3, err error) {
	defer Catch(&err)
	outer := Must(Post(brickrail.TubeOuterDiameter, z0, height))
	// The bore runs past both ends so no skin is left.
	bore := Must(Post(brickrail.TubeInnerDiameter, z0-1, height+2))
	return sdf.Difference3D(outer, bore), nil
}

// PlaceAll returns the union of s moved into each placement, or nil when
// there are no placements.
func PlaceAll(s sdf.SDF3, at []brickrail.Placement) sdf.SDF3 {
	if len(at) == 0 {
		return nil
	}
	placed := make([]sdf.SDF3, len(at))
	for i, p := range at {
		placed[i] = p.Place(s)
	}
	return sdf.Union3D(placed...)
}

// Union returns the union of the non nil solids, or nil if there are none.
func Union(solids ...sdf.SDF3) sdf.SDF3 {
	var keep []sdf.SDF3
	for _, s := range solids {
		if s != nil {
			keep = append(keep, s)
		}
	}
	switch len(keep) {
	case 0:
		return nil
	case 1:
		return keep[0]
	}
	return sdf.Union3D(keep...)
}

// Cut removes tool from s. A nil tool leaves s unchanged.
func Cut(s, tool sdf.SDF3) sdf.SDF3 {
	if tool == nil {
		return s
	}
	return sdf.Difference3D(s, tool)
}
