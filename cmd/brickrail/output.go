package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/deadsy/sdfx/sdf"
	"github.com/rs/zerolog"
	"github.com/soypat/brickrail"
	"github.com/soypat/brickrail/helpers/matter"
	"github.com/soypat/brickrail/render"
	"github.com/spf13/pflag"
)

// chordTol is the largest gap in mm allowed between a swept rail and the
// chords that approximate it in the mesh.
const chordTol = 0.05

// outputFlags control how a solid is meshed and written.
type outputFlags struct {
	out      string
	cells    int
	cellSize float64
	material string
	preview  string
}

func (o *outputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.out, "out", "o", "", "output STL file (defaults to a name built from the parameters)")
	fs.IntVar(&o.cells, "cells", 0, "marching cubes cells along the longest side, 0 picks from --cell-size")
	fs.Float64Var(&o.cellSize, "cell-size", 0.5, "largest marching cubes cell in mm when --cells is 0")
	fs.StringVar(&o.material, "material", "", "compensate for shrinkage of a print material (pla, petg)")
	fs.StringVar(&o.preview, "preview", "", "also write a PNG preview to this file")
}

func (o *outputFlags) validate() error {
	switch {
	case o.cells < 0:
		return errors.New("--cells must not be negative")
	case o.cells == 0 && !(o.cellSize > 0):
		return errors.New("--cell-size must be positive")
	}
	if o.material != "" {
		if _, err := matter.Lookup(o.material); err != nil {
			return err
		}
	}
	return nil
}

// compensate applies the chosen material to tuning values ahead of a build.
func (o *outputFlags) compensate(t brickrail.Tuning) brickrail.Tuning {
	if o.material == "" {
		return t
	}
	m, _ := matter.Lookup(o.material)
	return m.Compensate(t)
}

// cellsFor returns the mesh resolution for s. When picked automatically it
// is also fine enough to follow an arc of radius r sweeping angle degrees
// within chordTol. That floor only binds for cell sizes above the sweep
// chord, around 14mm for catalog radii.
func (o *outputFlags) cellsFor(s sdf.SDF3, r, angle float64) int {
	if o.cells > 0 {
		return o.cells
	}
	n := render.Cells(s, o.cellSize)
	steps := brickrail.SweepSteps(r, angle, chordTol)
	chord := brickrail.ArcLength(r, angle) / float64(steps)
	return max(n, render.Cells(s, chord))
}

// write meshes s and saves it, plus the preview if asked for.
func (o *outputFlags) write(log zerolog.Logger, s sdf.SDF3, cells int, name string) error {
	if o.material != "" {
		m, _ := matter.Lookup(o.material)
		s = m.Scale(s)
		log.Debug().Stringer("material", m).Float64("scale", m.ScaleFactor()).Msg("shrink compensation")
	}
	out := o.out
	if out == "" {
		out = name + ".stl"
	}
	start := time.Now()
	mesh := render.NewMesh(s, cells)
	log.Debug().Int("cells", cells).Int("triangles", mesh.Len()).Dur("took", time.Since(start)).Msg("meshed")
	n, err := render.CreateSTL(out, mesh)
	if err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	log.Info().Str("file", out).Int("triangles", n).Msg("wrote STL")
	if o.preview == "" {
		return nil
	}
	if err := render.Preview(out, o.preview, render.DefaultView); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	log.Info().Str("file", o.preview).Msg("wrote preview")
	return nil
}
