// Package ballast builds the two layer bed plate a curved segment sits in.
//
// Layer 1 covers the full width and carries rim studs plus an underside
// recess with grip tubes at each end. Layer 2 is narrower and is cut for the
// rails, the ties and the endpoints of the segment above it. Every angle is
// derived from the same radius, angle and tie count as the segment so the
// two parts line up.
package ballast

import (
	"fmt"
	"math"

	"github.com/soypat/brickrail"
	"gonum.org/v1/gonum/spatial/r3"
)

// Params defines a ballast plate.
type Params struct {
	// Radius of the track centerline in studs.
	Radius float64
	// Angle swept in degrees.
	Angle float64
	// NumTies is the tie division count of the segment, as returned by
	// brickrail.Curve.TieCount. Cutouts go at brickrail.TieAngles(Angle, NumTies).
	NumTies int
	// RailAdjust widens the rail clearance bands on each side, for thicker
	// printed rails.
	RailAdjust float64
	// Full sizes the tie cutouts for H ties.
	Full   bool
	Tuning brickrail.Tuning
}

// ParamsFor returns the plate matching a segment.
func ParamsFor(c brickrail.Curve, t brickrail.Tuning) Params {
	return Params{
		Radius:  c.Radius,
		Angle:   c.Angle,
		NumTies: c.TieCount(),
		Full:    c.Full,
		Tuning:  t,
	}
}

// Validate rejects parameters that cannot produce a plate.
func (k Params) Validate() error {
	if err := (brickrail.Curve{Radius: k.Radius, Angle: k.Angle}).Validate(); err != nil {
		return err
	}
	if k.NumTies < 0 {
		return fmt.Errorf("%w: got %d", brickrail.ErrTies, k.NumTies)
	}
	if math.IsNaN(k.RailAdjust) || math.IsInf(k.RailAdjust, 0) ||
		k.RailAdjust < -(brickrail.RailFootHalfWidth+k.Tuning.RailClearance) {
		return fmt.Errorf("%w: rail adjust %g", brickrail.ErrTuning, k.RailAdjust)
	}
	return k.Tuning.Validate()
}

// Heights of the plate.
const (
	layer1Top = brickrail.PlateHeight
	layer2Top = 2 * brickrail.PlateHeight
	recessTop = layer1Top - brickrail.BallastWall
	studR     = brickrail.StudDiameter / 2
)

// Row is a row of studs along the arc.
type Row struct {
	// Offset is the lateral distance from the centerline, positive outward.
	Offset float64
	// Z is the height the studs stand on.
	Z float64
	// Angles holds the stud positions in degrees.
	Angles []float64
}

// Placements returns the frames of the studs of the row on a plate with
// centerline radius rc.
func (r Row) Placements(rc float64) []brickrail.Placement {
	at := make([]brickrail.Placement, len(r.Angles))
	for i, a := range r.Angles {
		at[i] = brickrail.Placement{Angle: a, Offset: r3.Vec{X: rc + r.Offset, Z: r.Z}}
	}
	return at
}

// Cutout is a rectangular tie cutout centered on the centerline at Angle,
// its long side radial.
type Cutout struct {
	Angle         float64
	Length, Width float64
}

// Layout is the placement of every repeated feature of a plate, computed
// without touching the solid kernel.
type Layout struct {
	CenterRadius float64
	// NotchAngle is the angular depth of each end notch in layer 2.
	NotchAngle float64
	// RailBand holds the inner and outer lateral extent of the clearance
	// band cut for each rail, mirrored about the centerline.
	RailBand [2]float64
	// Cutouts are the tie cutouts.
	Cutouts []Cutout
	// Rows are the stud rows of both layers.
	Rows []Row
	// Tubes are the grip tube frames in the end recesses.
	Tubes []brickrail.Placement
}

// TieAngles returns the angles of the tie cutouts.
func (l Layout) TieAngles() []float64 {
	angles := make([]float64, len(l.Cutouts))
	for i, c := range l.Cutouts {
		angles[i] = c.Angle
	}
	return angles
}

// NewLayout computes the layout of a plate. k must be valid.
func NewLayout(k Params) Layout {
	t := k.Tuning
	rc := k.Radius * brickrail.StudPitch
	l := Layout{
		CenterRadius: rc,
		NotchAngle:   brickrail.EndDepth/rc*180/math.Pi + t.NotchClearance,
	}
	band := brickrail.RailFootHalfWidth + t.RailClearance + k.RailAdjust
	l.RailBand = [2]float64{brickrail.RailOffset - band, brickrail.RailOffset + band}

	length, width := brickrail.TieFootprint(k.Full)
	length += 2 * t.CutoutClearance
	width += 2 * t.CutoutClearance
	for _, a := range brickrail.TieAngles(k.Angle, k.NumTies) {
		l.Cutouts = append(l.Cutouts, Cutout{Angle: a, Length: length, Width: width})
	}

	for _, off := range brickrail.BallastRimRows {
		r := rc + off
		skip := endSkips(r, k.Angle, 0)
		l.Rows = append(l.Rows, Row{
			Offset: off,
			Z:      layer1Top,
			Angles: brickrail.ArcPositions(r, k.Angle, brickrail.StudPitch, skip),
		})
	}
	for _, off := range brickrail.BallastTopRows {
		if math.Abs(off)-studR < l.RailBand[1] || math.Abs(off)+studR > brickrail.BallastTopWidth/2 {
			continue // no room between the rail band and the layer edge
		}
		r := rc + off
		skip := endSkips(r, k.Angle, l.NotchAngle)
		for _, c := range l.Cutouts {
			if math.Abs(off)-studR < c.Length/2 {
				skip = append(skip, brickrail.Around(c.Angle, brickrail.SubtendedAngle(r, c.Width/2+studR)))
			}
		}
		l.Rows = append(l.Rows, Row{
			Offset: off,
			Z:      layer2Top,
			Angles: brickrail.ArcPositions(r, k.Angle, brickrail.StudPitch, skip),
		})
	}

	const n = int(brickrail.BallastTopWidth/brickrail.StudPitch) + 1
	for _, e := range []brickrail.End{brickrail.Start, brickrail.Far} {
		end := brickrail.EndPlacement(rc, k.Angle, e)
		for i := 0; i < n; i++ {
			x := float64(i)*brickrail.StudPitch - brickrail.BallastTopWidth/2
			l.Tubes = append(l.Tubes, end.Local(r3.Vec{X: x, Y: brickrail.BallastRecessLength / 2}))
		}
	}
	return l
}

// endSkips keeps studs on a row of radius r clear of a notch of the given
// angular depth at both ends of the arc, and inside the arc itself.
func endSkips(r, angle, notch float64) brickrail.SkipSet {
	half := brickrail.SubtendedAngle(r, studR)
	return brickrail.SkipSet{
		{Start: math.Inf(-1), End: notch + half},
		{Start: angle - notch - half, End: math.Inf(1)},
	}
}
