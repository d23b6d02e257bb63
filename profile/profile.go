// Package profile holds the fixed cross sections swept and extruded by the
// track builders. Every function returns a fresh, counterclockwise, simple
// point list that callers may modify.
package profile

import (
	"github.com/soypat/brickrail"
	"gonum.org/v1/gonum/spatial/r2"
)

// Rail returns the rail cross section in the (lateral, up) plane, centered
// laterally on the rail. It has a foot for the ties to fuse into, a thin web
// and a railhead RailHalfWidth either side of center.
func Rail() []r2.Vec {
	const (
		foot   = brickrail.RailFootHalfWidth
		head   = brickrail.RailHalfWidth
		web    = 0.8
		top    = brickrail.RailHeight
		footZ  = 1.2
		webZ   = 2.0
		headZ  = top - 1.6
		flareZ = headZ - 0.4
	)
	return []r2.Vec{
		{X: -foot, Y: 0},
		{X: foot, Y: 0},
		{X: foot, Y: footZ},
		{X: web, Y: webZ},
		{X: web, Y: flareZ},
		{X: head, Y: headZ},
		{X: head, Y: top},
		{X: -head, Y: top},
		{X: -head, Y: headZ},
		{X: -web, Y: flareZ},
		{X: -web, Y: webZ},
		{X: -foot, Y: footZ},
	}
}

// LeftEnd returns the cross section of the left rail connector, the solid
// shoe that replaces the trimmed rail over the endpoint. Its shoulder is wider
// on the inner (+X) side, toward the track centerline.
func LeftEnd() []r2.Vec {
	const (
		outer    = brickrail.RailFootHalfWidth
		inner    = 4.8
		head     = brickrail.RailHalfWidth
		top      = brickrail.RailHeight
		shoulder = brickrail.AttachHeight
		headZ    = top - 1.6
	)
	return []r2.Vec{
		{X: -outer, Y: 0},
		{X: inner, Y: 0},
		{X: inner, Y: shoulder},
		{X: head, Y: headZ},
		{X: head, Y: top},
		{X: -head, Y: top},
		{X: -head, Y: headZ},
		{X: -outer, Y: shoulder},
	}
}

// RightEnd returns the cross section of the right rail connector, the mirror
// image of LeftEnd.
func RightEnd() []r2.Vec {
	return MirrorX(LeftEnd())
}

// AttachPoly returns the key outline in the (lateral, up) plane: a trapezoid
// of height h standing on y=0, wider at the base than at the top. Extruded
// along the track it forms the male key and, grown by the socket clearance,
// the cutout that receives it. A key only seats when both parts are the right
// way up.
func AttachPoly(h float64) []r2.Vec {
	const base, top = 2.5, 1.5
	return []r2.Vec{
		{X: -base, Y: 0},
		{X: base, Y: 0},
		{X: top, Y: h},
		{X: -top, Y: h},
	}
}
