package main

import (
	"strings"

	"github.com/soypat/brickrail"
	"github.com/soypat/brickrail/track"
	"github.com/spf13/cobra"
)

func newSegmentCmd(a *app) *cobra.Command {
	var (
		c   brickrail.Curve
		out outputFlags
	)
	cmd := &cobra.Command{
		Use:   "segment",
		Short: "Write a curved track segment",
		Long: `Write a curved track segment with an endpoint connector at each end.
Plain segments carry light spacer ties and an engraved label, --full segments
carry H ties and endpoints that clip onto brick plates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Validate(); err != nil {
				return err
			}
			if err := out.validate(); err != nil {
				return err
			}
			tune, err := loadTuning(a.tuningPath)
			if err != nil {
				return err
			}
			seg, err := track.Build(c, out.compensate(tune))
			if err != nil {
				return err
			}
			a.log.Info().
				Str("label", c.Label()).
				Float64("rail_length", seg.RailLength).
				Int("ties", len(seg.TieAngles)).
				Msg("segment built")
			r := c.CenterRadius() + brickrail.TrackWidth/2
			return out.write(a.log, seg.Solid, out.cellsFor(seg.Solid, r, c.Angle), segmentName(c))
		},
	}
	fs := cmd.Flags()
	fs.Float64VarP(&c.Radius, "radius", "r", 0, "centerline radius in studs")
	fs.Float64VarP(&c.Angle, "angle", "a", 0, "angle swept in degrees")
	fs.BoolVar(&c.Full, "full", false, "H ties and brick compatible endpoints, no label")
	fs.Float64Var(&c.TieSpacing, "spacing", brickrail.DefaultTieSpacing, "target tie spacing in mm, 0 for no ties")
	cmd.MarkFlagRequired("radius")
	cmd.MarkFlagRequired("angle")
	out.register(fs)
	return cmd
}

// segmentName is the default file name for c, such as "R56_L22.5_full".
func segmentName(c brickrail.Curve) string {
	name := strings.ReplaceAll(c.Label(), " ", "_")
	if c.Full {
		name += "_full"
	}
	return name
}
