package render

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera of a preview. The mesh is fit into a bi-unit
// cube centered on the origin before drawing, so positions are in those units.
type View struct {
	// LookAt is the point the camera looks at.
	LookAt r3.Vec
	// Up is the direction that is up in the image.
	Up r3.Vec
	// Eye is the camera position.
	Eye       r3.Vec
	Near, Far float64
	// Width and Height of the image in pixels.
	Width, Height int
	// Supersample draws at this multiple of the output size and downsamples
	// for antialiasing. Zero means 1.
	Supersample int
}

// DefaultView is an isometric view from above the first quadrant.
var DefaultView = View{
	Up:          r3.Vec{Z: 1},
	Eye:         r3.Vec{X: 2.4, Y: 2.4, Z: 2.4},
	Near:        1,
	Far:         10,
	Width:       768,
	Height:      432,
	Supersample: 2,
}

// Preview renders the binary STL at stlPath and saves it as a PNG image at
// pngPath.
func Preview(stlPath, pngPath string, v View) error {
	img, err := PreviewImage(stlPath, v)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(pngPath, img)
}

// PreviewImage renders the binary STL at stlPath.
func PreviewImage(stlPath string, v View) (image.Image, error) {
	if v.Width <= 0 || v.Height <= 0 {
		return nil, errors.New("preview needs a positive image size")
	}
	if v.Near <= 0 || v.Far <= v.Near {
		return nil, errors.New("preview needs 0 < near < far")
	}
	mesh, err := fauxgl.LoadSTL(stlPath)
	if err != nil {
		return nil, err
	}
	scale := max(v.Supersample, 1)
	const fovy = 30 // vertical field of view in degrees
	var (
		eye    = fauxgl.V(v.Eye.X, v.Eye.Y, v.Eye.Z)
		center = fauxgl.V(v.LookAt.X, v.LookAt.Y, v.LookAt.Z)
		up     = fauxgl.V(v.Up.X, v.Up.Y, v.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#8C8C8C") // track grey
	)
	mesh.BiUnitCube()
	context := fauxgl.NewContext(v.Width*scale, v.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(v.Width) / float64(v.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, v.Near, v.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	img := context.Image()
	if scale > 1 {
		img = resize.Resize(uint(v.Width), uint(v.Height), img, resize.Bilinear)
	}
	return img, nil
}
