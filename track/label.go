package track

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/golang/freetype/truetype"
	"github.com/soypat/brickrail"
	"github.com/soypat/brickrail/feature"
	"golang.org/x/image/font/gofont/goregular"
)

// LabelCenter is where the label sits on the start attach block, in the
// local end frame: on the track centerline, clear of the bored sockets.
const LabelCenter = (brickrail.PegLength + brickrail.EndDepth) / 2

// Engraving returns the void that cuts text into the top of the attach block,
// in the local end frame. The text reads from above with its baseline across
// the track.
func Engraving(text string, t brickrail.Tuning) (s sdf.SDF3, err error) {
	defer feature.Catch(&err)
	font := feature.Must(truetype.Parse(goregular.TTF))
	s2 := feature.Must(sdf.Text2D(font, sdf.NewText(text), t.LabelHeight))
	c := s2.BoundingBox().Center()
	s2 = sdf.Transform2D(s2, sdf.Translate2d(v2.Vec{X: -c.X, Y: LabelCenter - c.Y}))

	// The cut starts LabelDepth below the top and runs out past it.
	const over = 1
	h := t.LabelDepth + over
	s = sdf.Extrude3D(s2, h)
	z := brickrail.AttachHeight - t.LabelDepth + h/2
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: z})), nil
}
