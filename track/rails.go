// Package track assembles curved track segments: a swept rail pair with
// connector endpoints at both ends, optional ties and an identification label.
package track

import (
	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/brickrail"
	"github.com/soypat/brickrail/feature"
	"github.com/soypat/brickrail/profile"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rails returns the two rails swept over the curve, untrimmed. A 360 degree
// curve gives two closed rings.
func Rails(c brickrail.Curve) (s sdf.SDF3, err error) {
	defer feature.Catch(&err)
	r := c.CenterRadius()
	inner := feature.Must(feature.Sweep(profile.Rail(), r-brickrail.RailOffset, c.Angle))
	outer := feature.Must(feature.Sweep(profile.Rail(), r+brickrail.RailOffset, c.Angle))
	return sdf.Union3D(inner, outer), nil
}

// TrimBoxes returns the two boxes that cut TrimDepth of rail off each end so
// the endpoints can take their place. The boxes are oversized across the
// track and in height so the cut is complete for any radius.
func TrimBoxes(c brickrail.Curve, t brickrail.Tuning) (s sdf.SDF3, err error) {
	defer feature.Catch(&err)
	const margin = 1
	box := feature.Must(feature.Box(
		r3.Vec{X: -brickrail.TrackWidth, Y: -margin, Z: -margin},
		r3.Vec{X: brickrail.TrackWidth, Y: t.TrimDepth, Z: brickrail.RailHeight + 2*margin},
	))
	r := c.CenterRadius()
	return feature.PlaceAll(box, []brickrail.Placement{
		brickrail.EndPlacement(r, c.Angle, brickrail.Start),
		brickrail.EndPlacement(r, c.Angle, brickrail.Far),
	}), nil
}

// Envelope returns the untrimmed footprint of the segment: an annular sector
// the width of the track covering every feature height. The assembled solid
// is clipped to it.
func Envelope(c brickrail.Curve) (sdf.SDF3, error) {
	r := c.CenterRadius()
	return feature.AnnularSector(feature.SectorParams{
		Inner:  r - brickrail.TrackWidth/2,
		Outer:  r + brickrail.TrackWidth/2,
		Bottom: 0,
		Top:    brickrail.RailHeight + 1,
		Angle:  c.Angle,
	})
}
