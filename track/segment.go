package track

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/brickrail"
	"github.com/soypat/brickrail/feature"
)

// Segment is a finished curved track piece.
type Segment struct {
	Curve brickrail.Curve
	// Solid is the printable part. The curve starts on +X and sweeps
	// counterclockwise; the bottom face lies on z=0.
	Solid sdf.SDF3
	// RailLength is the outer rail length in mm, for print time estimates.
	RailLength float64
	// TieAngles are the angles ties were placed at.
	TieAngles []float64
	// Label is the engraved text, empty in full mode.
	Label string
}

// Build assembles the segment for c:
//  1. sweep the rail pair and trim both ends,
//  2. add an endpoint at the start and one turned at the far end,
//  3. engrave the label on the start endpoint unless c.Full,
//  4. add ties at c.TieAngles,
//  5. clip everything to the untrimmed footprint,
//  6. add the protruding male connectors.
func Build(c brickrail.Curve, t brickrail.Tuning) (seg Segment, err error) {
	if err := c.Validate(); err != nil {
		return Segment{}, err
	}
	if err := t.Validate(); err != nil {
		return Segment{}, err
	}
	if c.CenterRadius() <= brickrail.MinCenterRadius {
		return Segment{}, fmt.Errorf("%w: %g studs leaves no room for the inner rail", brickrail.ErrRadius, c.Radius)
	}
	defer feature.Catch(&err)
	r := c.CenterRadius()
	seg = Segment{
		Curve:      c,
		RailLength: c.RailLength(),
		TieAngles:  c.TieAngles(),
	}
	ends := []brickrail.Placement{
		brickrail.EndPlacement(r, c.Angle, brickrail.Start),
		brickrail.EndPlacement(r, c.Angle, brickrail.Far),
	}

	rails := feature.Cut(feature.Must(Rails(c)), feature.Must(TrimBoxes(c, t)))
	end := feature.Must(NewEndpoint(EndpointParams{Full: c.Full, Tuning: t}))
	s := feature.Union(rails, feature.PlaceAll(end.Body, ends))
	if !c.Full {
		seg.Label = c.Label()
		engraving := feature.Must(Engraving(seg.Label, t))
		s = feature.Cut(s, ends[0].Place(engraving))
	}
	if len(seg.TieAngles) > 0 {
		tie := feature.Must(NewTie(c.Full, t))
		s = feature.Union(s, feature.PlaceAll(tie, TiePlacements(c)))
	}
	s = sdf.Intersect3D(s, feature.Must(Envelope(c)))
	seg.Solid = feature.Union(s, feature.PlaceAll(end.Male, ends))
	return seg, nil
}
