package track

import (
	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/brickrail"
	"github.com/soypat/brickrail/feature"
	"gonum.org/v1/gonum/spatial/r3"
)

// NewTie returns a tie centered on the local origin, lying on z=0 across the
// track. The simple tie is a plain spacer bar under the rail feet. The full
// tie is an H: a crossbar the width of the track plus a pad under each rail,
// with stud sockets underneath so it locks onto bricks.
func NewTie(full bool, t brickrail.Tuning) (s sdf.SDF3, err error) {
	defer feature.Catch(&err)
	if !full {
		const l, w = brickrail.SimpleTieLength / 2, brickrail.SimpleTieWidth / 2
		return feature.Box(r3.Vec{X: -l, Y: -w}, r3.Vec{X: l, Y: w, Z: brickrail.SimpleTieHeight})
	}
	const (
		l   = brickrail.FullTieLength / 2
		w   = brickrail.FullTieWidth / 2
		pad = brickrail.FullTiePadLength / 2
		h   = brickrail.FullTieHeight
	)
	bar := feature.Must(feature.Box(r3.Vec{X: -l, Y: -w}, r3.Vec{X: l, Y: w, Z: h}))
	var pads []sdf.SDF3
	for _, x := range []float64{-brickrail.RailOffset, brickrail.RailOffset} {
		p := feature.Must(feature.Box(r3.Vec{X: x - w, Y: -pad}, r3.Vec{X: x + w, Y: pad, Z: h}))
		pads = append(pads, p)
	}
	tie := sdf.Union3D(bar, pads[0], pads[1])
	stud := feature.Must(feature.StudSocket(t.SocketClearance))
	return feature.Cut(tie, feature.PlaceAll(stud, TieSockets())), nil
}

// TieSockets returns the underside stud socket positions of a full tie. The
// crossbar carries them at the connector positions clear of the rails, and
// each pad one either side of the crossbar. The pattern is mirrored about
// the track centerline.
func TieSockets() []brickrail.Placement {
	var at []brickrail.Placement
	for _, u := range brickrail.ConnectorOffsets {
		x := u - brickrail.ConnectorCenter
		if x < 0 {
			// Each position and its mirror.
			at = append(at,
				brickrail.Placement{Offset: r3.Vec{X: x}},
				brickrail.Placement{Offset: r3.Vec{X: -x}},
			)
		}
	}
	// Pad sockets stay on the stud grid, a little inside the rail center.
	const padX = 2.5 * brickrail.StudPitch
	for _, x := range []float64{-padX, padX} {
		for _, y := range []float64{-brickrail.StudPitch, brickrail.StudPitch} {
			at = append(at, brickrail.Placement{Offset: r3.Vec{X: x, Y: y}})
		}
	}
	return at
}

// TiePlacements returns the frames of the ties of a curve.
func TiePlacements(c brickrail.Curve) []brickrail.Placement {
	angles := c.TieAngles()
	at := make([]brickrail.Placement, len(angles))
	for i, a := range angles {
		at[i] = brickrail.ArcPlacement(c.CenterRadius(), a)
	}
	return at
}
