package track

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/brickrail"
	"github.com/soypat/brickrail/feature"
	"github.com/soypat/brickrail/profile"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Endpoint is the connector unit placed at both ends of a segment, built in
// the local end frame.
type Endpoint struct {
	// Body is the part inside the segment, 0 <= y <= EndDepth: both rail
	// connectors and the attach block with its sockets bored.
	Body sdf.SDF3
	// Male holds the pegs and key that protrude through the end face (y < 0).
	// It is kept apart so clipping the segment to its footprint leaves it whole.
	Male sdf.SDF3
}

// EndpointParams defines an endpoint.
type EndpointParams struct {
	// Full adds underside stud sockets so the attach block seats on bricks.
	Full   bool
	Tuning brickrail.Tuning
}

// NewEndpoint builds the endpoint unit. Connector roles follow
// brickrail.ConnectorRoles, so a unit turned half a revolution presents a
// socket wherever the original has a peg.
func NewEndpoint(k EndpointParams) (e Endpoint, err error) {
	defer feature.Catch(&err)
	t := k.Tuning
	left := feature.Must(feature.Prism(feature.PrismParams{
		Profile: profile.Translate(profile.LeftEnd(), r2.Vec{X: -brickrail.RailOffset, Y: t.LeftOffsetZ}),
		Y1:      brickrail.EndDepth,
	}))
	right := feature.Must(feature.Prism(feature.PrismParams{
		Profile: profile.Translate(profile.RightEnd(), r2.Vec{X: brickrail.RailOffset, Y: t.RightOffsetZ}),
		Y1:      brickrail.EndDepth,
	}))
	block := feature.Must(feature.Box(
		r3.Vec{X: -brickrail.AttachWidth / 2},
		r3.Vec{X: brickrail.AttachWidth / 2, Y: brickrail.EndDepth, Z: brickrail.AttachHeight},
	))

	var male, voids []sdf.SDF3
	for i, u := range brickrail.ConnectorOffsets {
		x := u - brickrail.ConnectorCenter
		switch role := brickrail.ConnectorRoles[i]; role {
		case brickrail.RoleMale:
			male = append(male, peg(x))
		case brickrail.RoleFemale:
			voids = append(voids, socket(x, t))
		case brickrail.RoleKeyMale:
			male = append(male, keyMale(x, t))
		case brickrail.RoleKeyFemale:
			voids = append(voids, keyFemale(x, t))
		default:
			panic(fmt.Sprintf("unknown connector role %d", role))
		}
	}
	if k.Full {
		stud := feature.Must(feature.StudSocket(t.SocketClearance))
		voids = append(voids, feature.PlaceAll(stud, UndersideGrid()))
	}
	body := feature.Union(left, right, block)
	body = feature.Cut(body, feature.Union(voids...))
	return Endpoint{Body: body, Male: feature.Union(male...)}, nil
}

// UndersideGrid returns the stud socket positions under a full attach block,
// one every StudPitch across the block on its center line.
func UndersideGrid() []brickrail.Placement {
	const n = int(brickrail.AttachWidth / brickrail.StudPitch)
	at := make([]brickrail.Placement, n)
	for i := range at {
		x := (float64(i)+0.5)*brickrail.StudPitch - brickrail.AttachWidth/2
		at[i] = brickrail.Placement{Offset: r3.Vec{X: x, Y: brickrail.EndDepth / 2}}
	}
	return at
}

// maleFuse is how far male parts reach back past the end face into the
// block. It stays short of the underside stud sockets.
const maleFuse = 0.5

// peg returns a connector peg at lateral position x.
func peg(x float64) sdf.SDF3 {
	const r = brickrail.PegDiameter / 2
	return feature.Must(feature.Rod(feature.RodParams{
		X: x, Z: brickrail.PlateHeight,
		Y0: -brickrail.PegLength, Y1: maleFuse,
		R0: r, R1: r,
	}))
}

func socket(x float64, t brickrail.Tuning) sdf.SDF3 {
	r := t.SocketDiameter() / 2
	return feature.Must(feature.Rod(feature.RodParams{
		X: x, Z: brickrail.PlateHeight,
		Y0: -1, Y1: brickrail.PegLength + t.SocketClearance,
		R0: r, R1: r,
	}))
}

func keyMale(x float64, t brickrail.Tuning) sdf.SDF3 {
	if t.Key == brickrail.KeyCone {
		return feature.Must(feature.Rod(feature.RodParams{
			X: x, Z: brickrail.PlateHeight,
			Y0: 0, Y1: -brickrail.PegLength,
			R0: brickrail.ConeSocketBase, R1: brickrail.ConeSocketTip,
		}))
	}
	return feature.Must(feature.Prism(feature.PrismParams{
		Profile: keyProfile(x),
		Y0:      -brickrail.PegLength, Y1: maleFuse,
	}))
}

func keyFemale(x float64, t brickrail.Tuning) sdf.SDF3 {
	if t.Key == brickrail.KeyCone {
		// Start the bore short of the face with the taper continued so the
		// opening is clean.
		const lead = 0.5
		slope := (brickrail.ConeSocketBase - brickrail.ConeSocketTip) / brickrail.PegLength
		return feature.Must(feature.Rod(feature.RodParams{
			X: x, Z: brickrail.PlateHeight,
			Y0: -lead, Y1: brickrail.PegLength + t.ConeTolerance,
			R0: brickrail.ConeSocketBase + t.ConeTolerance + slope*lead,
			R1: brickrail.ConeSocketTip + t.ConeTolerance - slope*t.ConeTolerance,
		}))
	}
	return feature.Must(feature.Prism(feature.PrismParams{
		Profile: keyProfile(x),
		Y0:      -1, Y1: brickrail.PegLength + t.SocketClearance,
		Grow: t.SocketClearance,
	}))
}

func keyProfile(x float64) []r2.Vec {
	return profile.Translate(profile.AttachPoly(brickrail.KeyHeight), r2.Vec{X: x, Y: brickrail.KeyBase})
}
