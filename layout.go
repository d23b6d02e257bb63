package brickrail

import "math"

// SkipRegion is a closed angular interval, in degrees, where a repeated
// feature must not be placed.
type SkipRegion struct {
	Start, End float64
}

// Around returns the skip region centered on angle with the given half width.
func Around(angle, half float64) SkipRegion {
	return SkipRegion{Start: angle - half, End: angle + half}
}

// Contains reports whether a lies in the region. Both bounds are included so
// a feature landing exactly on a boundary is suppressed.
func (s SkipRegion) Contains(a float64) bool {
	return s.Start <= a && a <= s.End
}

// SkipSet is a union of skip regions.
type SkipSet []SkipRegion

// Contains reports whether any region contains a.
func (set SkipSet) Contains(a float64) bool {
	for _, s := range set {
		if s.Contains(a) {
			return true
		}
	}
	return false
}

// SubtendedAngle returns, in degrees, the angle a segment of half length
// half centered on a circle of radius r subtends from the circle center.
// Lengths reaching past the center subtend a quarter turn.
func SubtendedAngle(r, half float64) float64 {
	if half >= r {
		return 90
	}
	return math.Asin(half/r) * 180 / math.Pi
}

// ArcPositions returns the angles of a row of features spaced pitch mm apart
// along an arc of radius r (mm) that sweeps angle degrees. The row is centered
// on the arc so both ends see the same margin. Angles inside skip are dropped.
func ArcPositions(r, angle, pitch float64, skip SkipSet) []float64 {
	if r <= 0 || pitch <= 0 || angle <= 0 {
		return nil
	}
	step := pitch / r * 180 / math.Pi
	n := int(math.Floor(angle / step))
	start := (angle-float64(n)*step)/2 + step/2
	var positions []float64
	for k := 0; k < n; k++ {
		a := start + float64(k)*step
		if skip.Contains(a) {
			continue
		}
		positions = append(positions, a)
	}
	return positions
}
