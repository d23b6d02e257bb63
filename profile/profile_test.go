package profile

import (
	"math"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/soypat/brickrail"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestProfilesSimpleCCW(t *testing.T) {
	for name, pts := range map[string][]r2.Vec{
		"rail":   Rail(),
		"left":   LeftEnd(),
		"right":  RightEnd(),
		"attach": AttachPoly(brickrail.PegLength),
	} {
		if a := Area(pts); a <= 0 {
			t.Errorf("%s: want counterclockwise winding, got area %g", name, a)
		}
		if i, j, ok := selfIntersection(pts); ok {
			t.Errorf("%s: edges %d and %d intersect", name, i, j)
		}
	}
}

func TestRailDimensions(t *testing.T) {
	min, max := bounds(Rail())
	if max.Y != brickrail.RailHeight || min.Y != 0 {
		t.Errorf("rail height: got %g..%g", min.Y, max.Y)
	}
	if max.X != brickrail.RailFootHalfWidth || min.X != -brickrail.RailFootHalfWidth {
		t.Errorf("rail foot: got %g..%g", min.X, max.X)
	}
	// Railhead is RailHalfWidth either side at the top.
	var head float64
	for _, p := range Rail() {
		if p.Y == brickrail.RailHeight && p.X > head {
			head = p.X
		}
	}
	if head != brickrail.RailHalfWidth {
		t.Errorf("railhead half width: got %g", head)
	}
}

func TestRightEndMirrorsLeft(t *testing.T) {
	left, right := LeftEnd(), RightEnd()
	if len(left) != len(right) {
		t.Fatal("length mismatch")
	}
	if math.Abs(Area(left)-Area(right)) > 1e-9 {
		t.Errorf("area mismatch %g != %g", Area(left), Area(right))
	}
	for _, p := range left {
		found := false
		for _, q := range right {
			if q.X == -p.X && q.Y == p.Y {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no mirror for %v", p)
		}
	}
	// Mutating one result must not affect the next.
	left[0].X = 100
	if LeftEnd()[0].X == 100 {
		t.Error("profiles share storage")
	}
}

func TestAttachPolyTaper(t *testing.T) {
	const h = 4
	pts := AttachPoly(h)
	base, top := width(pts, 0), width(pts, h)
	if top >= base {
		t.Errorf("key should narrow upwards: base %g top %g", base, top)
	}
	if _, max := bounds(pts); max.Y != h {
		t.Errorf("key height %g, want %g", max.Y, float64(h))
	}
}

func TestPolygonWinding(t *testing.T) {
	ccw := []r2.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	cw := []r2.Vec{{X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 0}}
	for _, pts := range [][]r2.Vec{ccw, cw} {
		s, err := Polygon(pts)
		if err != nil {
			t.Fatal(err)
		}
		if d := s.Evaluate(v2.Vec{X: 1, Y: 1}); d >= 0 {
			t.Errorf("center should be inside, got %g", d)
		}
		if d := s.Evaluate(v2.Vec{X: 3, Y: 1}); d <= 0 {
			t.Errorf("outside point should be positive, got %g", d)
		}
	}
	if _, err := Polygon(ccw[:2]); err == nil {
		t.Error("expected error for two points")
	}
	if _, err := Polygon([]r2.Vec{{}, {X: 1}, {X: 2}}); err == nil {
		t.Error("expected error for collinear points")
	}
}

func bounds(pts []r2.Vec) (min, max r2.Vec) {
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X, min.Y = minf(min.X, p.X), minf(min.Y, p.Y)
		max.X, max.Y = maxf(max.X, p.X), maxf(max.Y, p.Y)
	}
	return min, max
}

// width returns the extent along X of the vertices at height y.
func width(pts []r2.Vec, y float64) float64 {
	lo, hi := 0.0, 0.0
	for _, p := range pts {
		if p.Y == y {
			lo, hi = minf(lo, p.X), maxf(hi, p.X)
		}
	}
	return hi - lo
}

// selfIntersection reports the first pair of non adjacent edges that cross.
func selfIntersection(pts []r2.Vec) (int, int, bool) {
	n := len(pts)
	for i := 0; i < n; i++ {
		a0, a1 := pts[i], pts[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			b0, b1 := pts[j], pts[(j+1)%n]
			if segmentsCross(a0, a1, b0, b1) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func segmentsCross(a0, a1, b0, b1 r2.Vec) bool {
	d1 := orient(b0, b1, a0)
	d2 := orient(b0, b1, a1)
	d3 := orient(a0, a1, b0)
	d4 := orient(a0, a1, b1)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func orient(a, b, c r2.Vec) float64 {
	return r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
