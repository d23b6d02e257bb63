package main

import (
	"github.com/soypat/brickrail"
	"github.com/soypat/brickrail/ballast"
	"github.com/spf13/cobra"
)

func newBallastCmd(a *app) *cobra.Command {
	var (
		k       ballast.Params
		spacing float64
		out     outputFlags
	)
	cmd := &cobra.Command{
		Use:   "ballast",
		Short: "Write the ballast plate for a curved segment",
		Long: `Write the two layer ballast plate a segment of the same radius and angle
sits in. Tie cutouts follow the segment's ties unless --ties is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("ties") {
				c := brickrail.Curve{Radius: k.Radius, Angle: k.Angle, Full: k.Full, TieSpacing: spacing}
				if err := c.Validate(); err != nil {
					return err
				}
				k.NumTies = c.TieCount()
			}
			if err := out.validate(); err != nil {
				return err
			}
			tune, err := loadTuning(a.tuningPath)
			if err != nil {
				return err
			}
			k.Tuning = out.compensate(tune)
			p, err := ballast.Build(k)
			if err != nil {
				return err
			}
			rows := 0
			for _, row := range p.Layout.Rows {
				rows += len(row.Angles)
			}
			a.log.Info().
				Str("label", brickrail.Label(k.Radius, k.Angle)).
				Int("cutouts", len(p.Layout.Cutouts)).
				Int("studs", rows).
				Float64("notch_angle", p.Layout.NotchAngle).
				Msg("ballast built")
			r := p.Layout.CenterRadius + brickrail.BallastWidth/2
			return out.write(a.log, p.Solid, out.cellsFor(p.Solid, r, k.Angle), ballastName(k))
		},
	}
	fs := cmd.Flags()
	fs.Float64VarP(&k.Radius, "radius", "r", 0, "centerline radius in studs")
	fs.Float64VarP(&k.Angle, "angle", "a", 0, "angle swept in degrees")
	fs.IntVar(&k.NumTies, "ties", 0, "tie divisions, overrides the count derived from --spacing")
	fs.Float64Var(&spacing, "spacing", brickrail.DefaultTieSpacing, "tie spacing of the matching segment in mm")
	fs.Float64Var(&k.RailAdjust, "rail-adjust", 0, "widen the rail bands on each side in mm")
	fs.BoolVar(&k.Full, "full", false, "size tie cutouts for H ties")
	cmd.MarkFlagRequired("radius")
	cmd.MarkFlagRequired("angle")
	out.register(fs)
	return cmd
}

func ballastName(k ballast.Params) string {
	return segmentName(brickrail.Curve{Radius: k.Radius, Angle: k.Angle, Full: k.Full}) + "_ballast"
}
