package render

import (
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// Raster output size, scaled down from Full HD.
const (
	fhdScaler     = 0.4
	width, height = int(1920. * fhdScaler), int(1080. * fhdScaler)
)

// ViewConfig places the camera for PNG rasterization.
type ViewConfig struct {
	// Lookat is the position (point) to look at.
	Lookat r3.Vec
	// Up is which way is up (direction).
	Up r3.Vec
	// Eyepos is where the camera/eye is located (point).
	Eyepos r3.Vec
	Far    float64
	Near   float64
}

// DefaultView is an isometric view of the scene.
var DefaultView = ViewConfig{
	Up:     r3.Vec{Z: 1},
	Eyepos: r3.Vec{X: 2.4, Y: 2.4, Z: 2.4},
	Near:   1,
	Far:    10,
}

// SavePNG rasterizes a binary STL file to a shaded PNG image. The mesh is
// fitted to a bi-unit cube before the view transform, so ViewConfig
// coordinates are scene size independent.
func SavePNG(stlPath, pngPath string, view ViewConfig) error {
	mesh, err := fauxgl.LoadSTL(stlPath)
	if err != nil {
		return err
	}
	const (
		scale = 1  // optional supersampling
		fovy  = 30 // vertical field of view in degrees
	)
	var (
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z)
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize() // light direction
		color  = fauxgl.HexColor("#BF4E30")           // flame brick tone
	)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(uint(width), uint(height), image, resize.Bilinear)
	return fauxgl.SavePNG(pngPath, image)
}
