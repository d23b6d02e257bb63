package brickrail

// Brick system dimensions (mm). These are the published figures for the
// common 8mm stud grid and are what lets printed parts seat on bricks.
const (
	// StudPitch is the center to center distance between two studs.
	StudPitch = 8.0
	// PlateHeight is the height of a plate, a third of a brick.
	PlateHeight = 3.2
	// StudDiameter is the outer diameter of a stud.
	StudDiameter = 4.8
	// StudHeight is how far a stud rises above its plate.
	StudHeight = 1.7
	// TubeOuterDiameter is the outer diameter of an underside grip tube (anti-stud).
	TubeOuterDiameter = 6.51
	// TubeInnerDiameter is the inner diameter of a grip tube. It matches the
	// stud so tubes grip studs between them.
	TubeInnerDiameter = StudDiameter
)

// Connector standard for joining two segments end to end.
const (
	// PegDiameter is the nominal diameter of a connector peg. Sockets are
	// bored PegDiameter plus twice the tuned clearance.
	PegDiameter = 4.9
	// PegLength is how far a male peg protrudes past the end face.
	PegLength = 4.0
	// ConnectorCenter is the point along the connector axis that sits on the
	// track centerline. ConnectorOffsets are measured from the same origin.
	ConnectorCenter = 24.0
	// ConeSocketBase and ConeSocketTip are the radii of the tapered key pin
	// at the end face and at its tip.
	ConeSocketBase = 1.9
	ConeSocketTip  = 1.0
	// EndDepth is how deep an endpoint reaches into the segment along the track.
	EndDepth = StudPitch
	// AttachHeight is the attach block height, two plates.
	AttachHeight = 2 * PlateHeight
	// KeyHeight and KeyBase size and raise the central trapezoid key so it is
	// centered on the peg axis at PlateHeight.
	KeyHeight = 4.0
	KeyBase   = PlateHeight - KeyHeight/2
	// AttachWidth is the lateral size of the attach block, eight studs.
	AttachWidth = 8 * StudPitch
)

// ConnectorOffsets are the peg/socket positions along the attach block axis.
// Neighbouring positions are whole multiples of StudPitch apart and the layout
// is symmetric about ConnectorCenter, so a peg at c+d always faces a socket
// at c-d on a neighbour turned half a revolution.
var ConnectorOffsets = [6]float64{-4, 12, 20, 28, 36, 52}

// Role is the connector feature carried at a connector position.
type Role int

const (
	RoleMale Role = iota
	RoleKeyMale
	RoleKeyFemale
	RoleFemale
)

// ConnectorRoles holds the Role for each entry of ConnectorOffsets.
var ConnectorRoles = [6]Role{RoleMale, RoleMale, RoleKeyMale, RoleKeyFemale, RoleFemale, RoleFemale}

// Track dimensions (mm).
const (
	// Gauge is the distance between the inner faces of the two railheads.
	Gauge = 37.5
	// RailHalfWidth is half the railhead width.
	RailHalfWidth = 1.6
	// RailOffset is the lateral distance from the track centerline to a rail's center.
	RailOffset = Gauge/2 + RailHalfWidth
	// RailHeight is the total rail height.
	RailHeight = 3 * PlateHeight
	// RailFootHalfWidth is half the width of the rail foot.
	RailFootHalfWidth = 3.6
	// TrackWidth is the width of the swept footprint that bounds a segment.
	TrackWidth = AttachWidth
	// MinCenterRadius is the smallest centerline radius that leaves the
	// inner rail foot clear of the curve center.
	MinCenterRadius = RailOffset + RailFootHalfWidth
)

// Tie dimensions (mm).
const (
	// SimpleTieLength, SimpleTieWidth and SimpleTieHeight size the plain spacer bar.
	SimpleTieLength = 35.0
	SimpleTieWidth  = 6.0
	SimpleTieHeight = 1.5
	// FullTieLength is the crossbar length of an H tie.
	FullTieLength = AttachWidth
	// FullTieWidth is the crossbar width of an H tie.
	FullTieWidth = StudPitch
	// FullTiePadLength is the length along the track of the H tie rail pads.
	FullTiePadLength = 3 * StudPitch
	// FullTieHeight is the H tie height, one plate.
	FullTieHeight = PlateHeight
	// DefaultTieSpacing is the default target maximum distance between ties.
	DefaultTieSpacing = 6 * StudPitch
)

// Ballast plate dimensions (mm).
const (
	// BallastWidth is the radial width of ballast layer 1, ten studs.
	BallastWidth = 10 * StudPitch
	// BallastTopWidth is the radial width of ballast layer 2, eight studs.
	BallastTopWidth = 8 * StudPitch
	// BallastGap is the radial width of the central gap in layer 2.
	BallastGap = 3 * StudPitch
	// BallastRecessLength is how far the underside end recesses reach along the arc.
	BallastRecessLength = 2 * StudPitch
	// BallastWall is the wall and ceiling thickness left around a recess.
	BallastWall = 1.2
)

// Rows of the ballast plate, as lateral offsets from the track centerline.
var (
	// BallastRimRows are the stud rows on the exposed rim of layer 1.
	BallastRimRows = []float64{-4.5 * StudPitch, 4.5 * StudPitch}
	// BallastTopRows are the stud rows on layer 2 outside the rail bands.
	BallastTopRows = []float64{-3.5 * StudPitch, 3.5 * StudPitch}
)
