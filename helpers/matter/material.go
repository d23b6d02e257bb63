// Package matter compensates track parts for the way printing plastics
// shrink while cooling.
package matter

import (
	"fmt"
	"strings"

	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/brickrail"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{name: "pla", shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
	// PETG shrinks a little more than PLA but pulls less on holes.
	PETG = ViscousMaterial{name: "petg", shrink: 0.4e-2, pullShrink: .3}
)

// ViscousMaterial is a printing material that contracts once cooled and
// pulls in on holes as it sets.
type ViscousMaterial struct {
	name string
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// Lookup returns the material with the given name, case insensitive.
func Lookup(name string) (ViscousMaterial, error) {
	for _, m := range []ViscousMaterial{PLA, PETG} {
		if strings.EqualFold(name, m.name) {
			return m, nil
		}
	}
	return ViscousMaterial{}, fmt.Errorf("unknown material %q", name)
}

func (m ViscousMaterial) String() string { return m.name }

// ScaleFactor is the uniform scale that undoes thermal contraction.
func (m ViscousMaterial) ScaleFactor() float64 {
	return 1 / (1 - m.shrink)
}

// Scale grows s about the origin so it prints at its nominal size.
func (m ViscousMaterial) Scale(s sdf.SDF3) sdf.SDF3 {
	return sdf.ScaleUniform3D(s, m.ScaleFactor())
}

// InternalDimScale returns the size to model a hole at so it prints at
// real. It panics if real is not positive.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}

// Compensate widens the connector socket clearance of t so sockets printed
// in m still take a peg.
func (m ViscousMaterial) Compensate(t brickrail.Tuning) brickrail.Tuning {
	d := t.SocketDiameter()
	t.SocketClearance += (m.InternalDimScale(d) - d) / 2
	return t
}
