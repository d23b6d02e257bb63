package brickrail

import (
	"fmt"
	"math"
)

// Key selects the shape of the central keyed connector pair.
type Key string

const (
	// KeyPoly is a dovetail tab that drops into a matching cutout.
	KeyPoly Key = "poly"
	// KeyCone is a tapered pin that seats in a tapered socket.
	KeyCone Key = "cone"
)

// Tuning holds printer and material calibration values. They are tuned by
// printing test pieces, not derived, so they are kept out of the builders
// and can be loaded from a file.
type Tuning struct {
	// SocketClearance is added to the peg radius when boring a socket.
	SocketClearance float64 `toml:"socket_clearance"`
	// ConeTolerance is added to the tapered socket radii.
	ConeTolerance float64 `toml:"cone_tolerance"`
	// LeftOffsetZ and RightOffsetZ shift the left and right rail connectors
	// vertically to compensate for first layer squish.
	LeftOffsetZ  float64 `toml:"left_offset_z"`
	RightOffsetZ float64 `toml:"right_offset_z"`
	// TrimDepth is how much rail is removed at each end before the
	// endpoints are added.
	TrimDepth float64 `toml:"trim_depth"`
	// NotchClearance is the extra angle (degrees) added to ballast end
	// notches so two plates laid end to end do not touch.
	NotchClearance float64 `toml:"notch_clearance"`
	// CutoutClearance grows tie cutouts on each side.
	CutoutClearance float64 `toml:"cutout_clearance"`
	// RailClearance grows the ballast rail bands on each side.
	RailClearance float64 `toml:"rail_clearance"`
	// LabelDepth is how deep the identification text is engraved.
	LabelDepth float64 `toml:"label_depth"`
	// LabelHeight is the cap height of the identification text.
	LabelHeight float64 `toml:"label_height"`
	// Key is the central key style.
	Key Key `toml:"key"`
}

// DefaultTuning returns the calibration used for PLA on a 0.4mm nozzle.
func DefaultTuning() Tuning {
	return Tuning{
		SocketClearance: 0.15,
		ConeTolerance:   0.1,
		LeftOffsetZ:     -0.15,
		RightOffsetZ:    0.515,
		TrimDepth:       EndDepth,
		NotchClearance:  0.5,
		CutoutClearance: 0.4,
		RailClearance:   0.4,
		LabelDepth:      0.6,
		LabelHeight:     3,
		Key:             KeyPoly,
	}
}

// Validate checks that the calibration values can produce a solid.
func (t Tuning) Validate() error {
	switch {
	case !finite(t.SocketClearance, t.ConeTolerance, t.LeftOffsetZ, t.RightOffsetZ,
		t.TrimDepth, t.NotchClearance, t.CutoutClearance, t.RailClearance, t.LabelDepth, t.LabelHeight):
		return fmt.Errorf("%w: non finite value", ErrTuning)
	case t.SocketClearance < 0 || t.ConeTolerance < 0 || t.CutoutClearance < 0 || t.RailClearance < 0:
		return fmt.Errorf("%w: negative clearance", ErrTuning)
	case t.SocketClearance > 1:
		return fmt.Errorf("%w: socket clearance %g too large", ErrTuning, t.SocketClearance)
	case t.TrimDepth <= 0:
		return fmt.Errorf("%w: trim depth must be positive", ErrTuning)
	case t.NotchClearance < 0:
		return fmt.Errorf("%w: negative notch clearance", ErrTuning)
	case t.LabelDepth <= 0 || t.LabelDepth >= AttachHeight:
		return fmt.Errorf("%w: label depth %g out of range", ErrTuning, t.LabelDepth)
	case t.LabelHeight <= 0:
		return fmt.Errorf("%w: label height must be positive", ErrTuning)
	case t.Key != KeyPoly && t.Key != KeyCone:
		return fmt.Errorf("%w: unknown key style %q", ErrTuning, t.Key)
	}
	return nil
}

// SocketDiameter returns the bore diameter for a connector socket.
func (t Tuning) SocketDiameter() float64 {
	return PegDiameter + 2*t.SocketClearance
}

func finite(v ...float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
