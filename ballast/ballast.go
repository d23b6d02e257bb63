package ballast

import (
	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/brickrail"
	"github.com/soypat/brickrail/feature"
	"gonum.org/v1/gonum/spatial/r3"
)

// Plate is a finished ballast plate.
type Plate struct {
	Params Params
	Layout Layout
	Solid  sdf.SDF3
}

// Build returns the plate for k.
func Build(k Params) (p Plate, err error) {
	if err := k.Validate(); err != nil {
		return Plate{}, err
	}
	defer feature.Catch(&err)
	l := NewLayout(k)
	p = Plate{Params: k, Layout: l}
	rc := l.CenterRadius
	ends := []brickrail.Placement{
		brickrail.EndPlacement(rc, k.Angle, brickrail.Start),
		brickrail.EndPlacement(rc, k.Angle, brickrail.Far),
	}
	sector := func(in, out, bottom, top, start, angle float64) sdf.SDF3 {
		return feature.Must(feature.AnnularSector(feature.SectorParams{
			Inner: rc + in, Outer: rc + out,
			Bottom: bottom, Top: top,
			Start: start, Angle: angle,
		}))
	}

	// Layer 1 with its end recesses and tubes.
	const w1 = brickrail.BallastWidth / 2
	layer1 := sector(-w1, w1, 0, layer1Top, 0, k.Angle)
	recess := feature.Must(feature.Box(
		r3.Vec{X: -w1 + brickrail.BallastWall, Y: -1, Z: -1},
		r3.Vec{X: w1 - brickrail.BallastWall, Y: brickrail.BallastRecessLength, Z: recessTop},
	))
	layer1 = feature.Cut(layer1, feature.PlaceAll(recess, ends))
	tube := feature.Must(feature.GripTube(0, recessTop))
	layer1 = feature.Union(layer1, feature.PlaceAll(tube, l.Tubes))

	// Layer 2 and its cutouts. Tools reach below the layer so no skin is left
	// on the shared face.
	const (
		w2     = brickrail.BallastTopWidth / 2
		gap    = brickrail.BallastGap / 2
		bottom = layer1Top - 0.01
		over   = layer2Top + 1
	)
	layer2 := sector(-w2, w2, layer1Top, layer2Top, 0, k.Angle)
	cuts := []sdf.SDF3{
		sector(-gap, gap, bottom, over, 0, k.Angle),
		sector(-l.RailBand[1], -l.RailBand[0], bottom, over, 0, k.Angle),
		sector(l.RailBand[0], l.RailBand[1], bottom, over, 0, k.Angle),
	}
	if l.NotchAngle >= k.Angle/2 {
		cuts = append(cuts, sector(-w2-1, w2+1, bottom, over, 0, k.Angle))
	} else {
		cuts = append(cuts,
			sector(-w2-1, w2+1, bottom, over, 0, l.NotchAngle),
			sector(-w2-1, w2+1, bottom, over, k.Angle-l.NotchAngle, l.NotchAngle),
		)
	}
	for _, c := range l.Cutouts {
		box := feature.Must(feature.Box(
			r3.Vec{X: -c.Length / 2, Y: -c.Width / 2, Z: bottom},
			r3.Vec{X: c.Length / 2, Y: c.Width / 2, Z: over},
		))
		cuts = append(cuts, brickrail.ArcPlacement(rc, c.Angle).Place(box))
	}
	layer2 = feature.Cut(layer2, feature.Union(cuts...))

	stud := feature.Must(feature.Stud(0))
	var studs []brickrail.Placement
	for _, row := range l.Rows {
		studs = append(studs, row.Placements(rc)...)
	}
	p.Solid = feature.Union(layer1, layer2, feature.PlaceAll(stud, studs))
	return p, nil
}
