// Package brickrail holds the parameters, dimensional standards and pure
// layout math shared by the curved track and ballast plate generators.
//
// Angles are in degrees and measured counterclockwise about +Z from the +X
// axis, which is where every curve starts. Radii are given in studs and
// converted to millimeters with StudPitch. Nothing in this package talks to
// the solid kernel except the Placement transforms.
package brickrail

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrRadius  = errors.New("radius must be positive")
	ErrAngle   = errors.New("angle must be in (0, 360]")
	ErrTies    = errors.New("tie count must not be negative")
	ErrSpacing = errors.New("tie spacing must not be negative")
	ErrTuning  = errors.New("bad tuning")
)

// Curve describes one curved track segment.
type Curve struct {
	// Radius of the track centerline in studs.
	Radius float64
	// Angle swept by the segment in degrees.
	Angle float64
	// Full selects reinforced, connector bearing ties and endpoints.
	// When false lightweight spacers are used and a label is engraved.
	Full bool
	// TieSpacing is the target distance between ties along the centerline
	// in mm. Zero disables ties.
	TieSpacing float64
}

// Validate rejects curves that cannot produce a well formed solid.
func (c Curve) Validate() error {
	if err := validateArc(c.Radius, c.Angle); err != nil {
		return err
	}
	if c.TieSpacing < 0 || !finite(c.TieSpacing) {
		return fmt.Errorf("%w: got %g", ErrSpacing, c.TieSpacing)
	}
	return nil
}

func validateArc(radius, angle float64) error {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return fmt.Errorf("%w: got %g", ErrRadius, radius)
	}
	if !(angle > 0 && angle <= 360) {
		return fmt.Errorf("%w: got %g", ErrAngle, angle)
	}
	return nil
}

// CenterRadius returns the centerline radius in mm.
func (c Curve) CenterRadius() float64 { return c.Radius * StudPitch }

// ArcLength returns the centerline length of the segment in mm.
func (c Curve) ArcLength() float64 {
	return ArcLength(c.CenterRadius(), c.Angle)
}

// RailLength returns the length of the outer rail in mm. It is the longest
// run of the segment and is reported for print time estimates.
func (c Curve) RailLength() float64 {
	return ArcLength(c.CenterRadius()+RailOffset, c.Angle)
}

// TieCount returns round(ArcLength/TieSpacing), the number of tie divisions.
func (c Curve) TieCount() int {
	if c.TieSpacing == 0 {
		return 0
	}
	return int(math.Round(c.ArcLength() / c.TieSpacing))
}

// TieAngles returns the tie positions for the curve.
func (c Curve) TieAngles() []float64 {
	return TieAngles(c.Angle, c.TieCount())
}

// Label returns the identification text for the curve, i.e. "R56 L20".
func (c Curve) Label() string {
	return Label(c.Radius, c.Angle)
}

// Label formats the identification text for a radius and angle.
func Label(radius, angle float64) string {
	return "R" + strconv.FormatFloat(radius, 'f', -1, 64) + " L" + strconv.FormatFloat(angle, 'f', -1, 64)
}

// ArcLength returns the length of an arc of radius r (mm) sweeping angle degrees.
func ArcLength(r, angle float64) float64 {
	return angle * math.Pi / 180 * r
}

// TieAngles divides angle into count equal parts and returns the inner
// division angles. The start and end are left to the endpoints, so a count
// of one or less yields no ties. Track segments and ballast plates both call
// TieAngles so the ties of one drop into the cutouts of the other.
func TieAngles(angle float64, count int) []float64 {
	if count <= 1 {
		return nil
	}
	div := floats.Span(make([]float64, count+1), 0, angle)
	return div[1:count]
}

// SweepSteps returns the number of angular subdivisions needed to sweep an
// arc of radius r (mm) over angle degrees so that the chord sagitta stays at
// or below tol. Larger radii need more steps per degree.
func SweepSteps(r, angle, tol float64) int {
	if r <= tol {
		return int(math.Ceil(angle / 90))
	}
	step := 2 * math.Acos(1-tol/r)
	return int(math.Ceil(angle * math.Pi / 180 / step))
}

// TieFootprint returns the plan size of a tie: its lateral length and its
// extent along the track.
func TieFootprint(full bool) (length, width float64) {
	if full {
		return FullTieLength, FullTiePadLength
	}
	return SimpleTieLength, SimpleTieWidth
}
