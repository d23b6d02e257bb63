package track

import (
	"errors"
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/soypat/brickrail"
	"gonum.org/v1/gonum/spatial/r3"
)

// eval returns the signed distance of s at the local point v of frame p.
func eval(s sdf.SDF3, p brickrail.Placement, v r3.Vec) float64 {
	w := p.Apply(v)
	return s.Evaluate(v3.Vec{X: w.X, Y: w.Y, Z: w.Z})
}

func build(t *testing.T, c brickrail.Curve) Segment {
	t.Helper()
	seg, err := Build(c, brickrail.DefaultTuning())
	if err != nil {
		t.Fatal(err)
	}
	return seg
}

func TestBuildRejectsDegenerate(t *testing.T) {
	for _, test := range []struct {
		c    brickrail.Curve
		want error
	}{
		{brickrail.Curve{Radius: 0, Angle: 20}, brickrail.ErrRadius},
		{brickrail.Curve{Radius: 56, Angle: 0}, brickrail.ErrAngle},
		{brickrail.Curve{Radius: 56, Angle: 400}, brickrail.ErrAngle},
		{brickrail.Curve{Radius: 56, Angle: 20, TieSpacing: -48}, brickrail.ErrSpacing},
		{brickrail.Curve{Radius: 2.5, Angle: 90}, brickrail.ErrRadius},
	} {
		_, err := Build(test.c, brickrail.DefaultTuning())
		if !errors.Is(err, test.want) {
			t.Errorf("%+v: want %v got %v", test.c, test.want, err)
		}
	}
	bad := brickrail.DefaultTuning()
	bad.Key = "round"
	_, err := Build(brickrail.Curve{Radius: 56, Angle: 20}, bad)
	if !errors.Is(err, brickrail.ErrTuning) {
		t.Errorf("want ErrTuning got %v", err)
	}
}

func TestSegmentR56L20(t *testing.T) {
	c := brickrail.Curve{Radius: 56, Angle: 20, TieSpacing: brickrail.DefaultTieSpacing}
	seg := build(t, c)
	if seg.Label != "R56 L20" {
		t.Errorf("label %q", seg.Label)
	}
	if len(seg.TieAngles) != 2 {
		t.Fatalf("want 2 ties, got %v", seg.TieAngles)
	}
	if math.Abs(seg.RailLength-163.5) > 0.1 {
		t.Errorf("rail length %g", seg.RailLength)
	}
	r := c.CenterRadius()
	mid := brickrail.ArcPlacement(r, c.Angle/2)
	s := seg.Solid
	for _, test := range []struct {
		name string
		p    brickrail.Placement
		v    r3.Vec
		in   bool
	}{
		{"inner railhead", mid, r3.Vec{X: -brickrail.RailOffset, Z: brickrail.RailHeight - 0.5}, true},
		{"outer railhead", mid, r3.Vec{X: brickrail.RailOffset, Z: brickrail.RailHeight - 0.5}, true},
		{"between rails", mid, r3.Vec{Z: 1}, false},
		{"outside footprint", mid, r3.Vec{X: brickrail.TrackWidth/2 + 1, Z: 1}, false},
		{"above rails", mid, r3.Vec{X: brickrail.RailOffset, Z: brickrail.RailHeight + 0.5}, false},
		{"first tie", brickrail.ArcPlacement(r, seg.TieAngles[0]), r3.Vec{Z: 0.75}, true},
		{"second tie", brickrail.ArcPlacement(r, seg.TieAngles[1]), r3.Vec{X: 10, Z: 0.75}, true},
		{"past the end", brickrail.ArcPlacement(r, c.Angle+3), r3.Vec{X: brickrail.RailOffset, Z: 5}, false},
	} {
		d := eval(s, test.p, test.v)
		if (d < 0) != test.in {
			t.Errorf("%s: distance %g, want inside=%v", test.name, d, test.in)
		}
	}
	checkEndpoint(t, s, brickrail.EndPlacement(r, c.Angle, brickrail.Start), false)
	checkEndpoint(t, s, brickrail.EndPlacement(r, c.Angle, brickrail.Far), false)
}

func TestSegmentR120L11Full(t *testing.T) {
	c := brickrail.Curve{Radius: 120, Angle: 11.25, Full: true, TieSpacing: brickrail.DefaultTieSpacing}
	seg := build(t, c)
	if seg.Label != "" {
		t.Errorf("full segment should carry no label, got %q", seg.Label)
	}
	if len(seg.TieAngles) != 3 {
		t.Fatalf("want 3 ties, got %v", seg.TieAngles)
	}
	r := c.CenterRadius()
	for i, a := range seg.TieAngles {
		want := float64(i+1) * c.Angle / 4
		if math.Abs(a-want) > 1e-9 {
			t.Errorf("tie %d at %g, want %g", i, a, want)
		}
		p := brickrail.ArcPlacement(r, a)
		// The crossbar spans the track, the pads run along the rails.
		if d := eval(seg.Solid, p, r3.Vec{X: 30.5, Z: 2.5}); d >= 0 {
			t.Errorf("tie %d: crossbar end missing", i)
		}
		if d := eval(seg.Solid, p, r3.Vec{X: brickrail.RailOffset + 3, Y: 11, Z: 2.5}); d >= 0 {
			t.Errorf("tie %d: rail pad missing", i)
		}
		// Underside stud socket.
		if d := eval(seg.Solid, p, r3.Vec{X: 12, Z: 0.5}); d <= 0 {
			t.Errorf("tie %d: underside socket missing", i)
		}
	}
	for _, e := range []brickrail.End{brickrail.Start, brickrail.Far} {
		checkEndpoint(t, seg.Solid, brickrail.EndPlacement(r, c.Angle, e), true)
	}
}

// checkEndpoint probes the connector layout of the endpoint in frame p.
func checkEndpoint(t *testing.T, s sdf.SDF3, p brickrail.Placement, full bool) {
	t.Helper()
	const z = brickrail.PlateHeight
	for i, u := range brickrail.ConnectorOffsets {
		x := u - brickrail.ConnectorCenter
		out := eval(s, p, r3.Vec{X: x, Y: -brickrail.PegLength / 2, Z: z})
		bore := eval(s, p, r3.Vec{X: x, Y: 1, Z: z})
		switch brickrail.ConnectorRoles[i] {
		case brickrail.RoleMale, brickrail.RoleKeyMale:
			if out >= 0 {
				t.Errorf("%+v: peg at %g missing", p, x)
			}
		case brickrail.RoleFemale, brickrail.RoleKeyFemale:
			if out <= 0 || bore <= 0 {
				t.Errorf("%+v: socket at %g missing (%g, %g)", p, x, out, bore)
			}
		}
	}
	// Solid block above the sockets, between connectors.
	if d := eval(s, p, r3.Vec{X: 8, Y: 2, Z: brickrail.AttachHeight - 0.3}); d >= 0 {
		t.Errorf("%+v: attach block missing", p)
	}
	// A stud pushed in from below must seat to its full height at every
	// grid position; without sockets the underside is solid.
	for _, g := range UndersideGrid() {
		if !full {
			if d := eval(s, p, r3.Vec{X: g.Offset.X, Y: g.Offset.Y, Z: 0.3}); d >= 0 {
				t.Errorf("%+v: underside at x=%g should be solid", p, g.Offset.X)
			}
			continue
		}
		for _, z := range []float64{0.5, brickrail.StudHeight - 0.1} {
			if d := eval(s, p, r3.Vec{X: g.Offset.X, Y: g.Offset.Y, Z: z}); d <= 0 {
				t.Errorf("%+v: stud socket at x=%g blocked at z=%g (%g)", p, g.Offset.X, z, d)
			}
		}
	}
}

// Segment B following segment A must mate: A's far endpoint is B's start
// endpoint seen from the other side.
func TestEndpointsMate(t *testing.T) {
	c := brickrail.Curve{Radius: 56, Angle: 20, Full: true, TieSpacing: brickrail.DefaultTieSpacing}
	a := build(t, c).Solid
	b := sdf.Transform3D(a, sdf.RotateZ(sdf.DtoR(c.Angle)))
	r := c.CenterRadius()
	start := brickrail.EndPlacement(r, c.Angle, brickrail.Start)
	far := brickrail.EndPlacement(r, c.Angle, brickrail.Far)

	// Both ends of one segment carry the same unit.
	const eps = 0.05
	for x := -30.0; x <= 30; x += 1.3 {
		for y := -3.0; y <= 7; y += 0.9 {
			for z := 0.3; z <= 10; z += 0.7 {
				v := r3.Vec{X: x, Y: y, Z: z}
				d0, d1 := eval(a, start, v), eval(a, far, v)
				if math.Abs(d0) < eps || math.Abs(d1) < eps {
					continue
				}
				if (d0 < 0) != (d1 < 0) {
					t.Fatalf("ends differ at %v: start %g far %g", v, d0, d1)
				}
			}
		}
	}

	// Every peg of A lands in a socket of B and the other way round.
	for i, u := range brickrail.ConnectorOffsets {
		x := u - brickrail.ConnectorCenter
		v := r3.Vec{X: x, Y: -brickrail.PegLength / 2, Z: brickrail.PlateHeight}
		w := far.Apply(v)
		da := a.Evaluate(v3.Vec{X: w.X, Y: w.Y, Z: w.Z})
		db := b.Evaluate(v3.Vec{X: w.X, Y: w.Y, Z: w.Z})
		switch brickrail.ConnectorRoles[i] {
		case brickrail.RoleMale, brickrail.RoleKeyMale:
			if da >= 0 || db <= 0 {
				t.Errorf("peg at %g: in A %g, in B %g", x, da, db)
			}
		default:
			if da <= 0 || db >= 0 {
				t.Errorf("socket at %g: in A %g, in B %g", x, da, db)
			}
		}
	}
}

func TestFullCircle(t *testing.T) {
	c := brickrail.Curve{Radius: 40, Angle: 360}
	seg := build(t, c)
	r := c.CenterRadius()
	for _, a := range []float64{90, 180, 270} {
		p := brickrail.ArcPlacement(r, a)
		if d := eval(seg.Solid, p, r3.Vec{X: brickrail.RailOffset, Z: brickrail.RailHeight - 0.5}); d >= 0 {
			t.Errorf("rail missing at %g degrees", a)
		}
	}
}

func TestSmallestRadiusKeepsBothRails(t *testing.T) {
	c := brickrail.Curve{Radius: 3, Angle: 90}
	if c.CenterRadius() <= brickrail.MinCenterRadius {
		t.Fatalf("radius %g should be buildable", c.Radius)
	}
	seg := build(t, c)
	mid := brickrail.ArcPlacement(c.CenterRadius(), c.Angle/2)
	for _, x := range []float64{-brickrail.RailOffset, brickrail.RailOffset} {
		if d := eval(seg.Solid, mid, r3.Vec{X: x, Z: brickrail.RailHeight - 0.5}); d >= 0 {
			t.Errorf("railhead at %g missing", x)
		}
	}
}

func TestConeKey(t *testing.T) {
	tune := brickrail.DefaultTuning()
	tune.Key = brickrail.KeyCone
	e, err := NewEndpoint(EndpointParams{Tuning: tune})
	if err != nil {
		t.Fatal(err)
	}
	x := brickrail.ConnectorOffsets[2] - brickrail.ConnectorCenter
	tip := v3.Vec{X: x + brickrail.ConeSocketTip + 0.3, Y: -brickrail.PegLength + 0.2, Z: brickrail.PlateHeight}
	base := v3.Vec{X: x + brickrail.ConeSocketBase - 0.3, Y: -0.2, Z: brickrail.PlateHeight}
	if e.Male.Evaluate(base) >= 0 {
		t.Error("cone key should be wide at the face")
	}
	if e.Male.Evaluate(tip) <= 0 {
		t.Error("cone key should taper")
	}
}

func TestEngraving(t *testing.T) {
	s, err := Engraving("R56 L20", brickrail.DefaultTuning())
	if err != nil {
		t.Fatal(err)
	}
	bb := s.BoundingBox()
	c := bb.Center()
	if math.Abs(c.X) > 0.5 || math.Abs(c.Y-LabelCenter) > 0.5 {
		t.Errorf("label not centered: %v", c)
	}
	if bb.Min.Z > brickrail.AttachHeight-brickrail.DefaultTuning().LabelDepth+1e-6 {
		t.Errorf("engraving too shallow: %v", bb.Min.Z)
	}
	// Stays between the rail connectors and clear of the sockets.
	if bb.Max.X-bb.Min.X > 2*(brickrail.RailOffset-4.8) {
		t.Errorf("label too wide: %g", bb.Max.X-bb.Min.X)
	}
	if bb.Min.Y < brickrail.PegLength || bb.Max.Y > brickrail.EndDepth {
		t.Errorf("label overlaps sockets or block edge: %v", bb)
	}
}

func TestTieSocketsMirrored(t *testing.T) {
	at := TieSockets()
	for _, p := range at {
		found := false
		for _, q := range at {
			if q.Offset.X == -p.Offset.X && q.Offset.Y == p.Offset.Y {
				found = true
			}
		}
		if !found {
			t.Errorf("socket %v has no mirror", p.Offset)
		}
		if math.Mod(p.Offset.X+brickrail.StudPitch/2, brickrail.StudPitch) != 0 {
			t.Errorf("socket %v off the stud grid", p.Offset)
		}
	}
}
