package render

import (
	"math"

	"github.com/hazmath/bushfire"
	"gonum.org/v1/gonum/spatial/r3"
)

// Scene geometry parameters.
const (
	// groundApron extends the terrain sheet past the flame and receiver
	// in metres.
	groundApron = 5.0
	// markerMinHeight keeps the receiver post visible when the assessed
	// element sits at ground level, in metres.
	markerMinHeight = 1.0
	// markerHalfWidth is half the receiver post width in metres.
	markerHalfWidth = 1.0
)

// Scene realizes the worst case assessment geometry as a triangle mesh:
// the sloped terrain sheet from the flame front to the receiver, the flame
// panel inclined at the worst case angle for the given separation and a
// receiver post at the separation distance. The flame base runs along the
// y axis through the origin with the receiver on the positive x axis, and
// ground elevation follows the site slope.
//
// Scene fails like bushfire.Model.ViewFactor for inadmissible separations.
func Scene(m *bushfire.Model, separation float64) ([]Triangle, error) {
	_, angle, err := m.ViewFactor(separation)
	if err != nil {
		return nil, err
	}
	var (
		flameLen = m.FlameLength()
		halfW    = 0.5 * m.FlameWidth
		site     = m.Site()
		tanSlope = math.Tan(site.Slope)
	)

	// Terrain sheet with an apron past the flame base and the receiver,
	// raised along x by the site slope.
	x0, x1 := -groundApron, separation+groundApron
	y0, y1 := -halfW-groundApron, halfW+groundApron
	ground := quad(
		r3.Vec{X: x0, Y: y0, Z: x0 * tanSlope},
		r3.Vec{X: x1, Y: y0, Z: x1 * tanSlope},
		r3.Vec{X: x1, Y: y1, Z: x1 * tanSlope},
		r3.Vec{X: x0, Y: y1, Z: x0 * tanSlope},
	)

	// Flame panel hinged at the hazard edge, tip swung toward the
	// receiver by the worst case angle.
	tipX := flameLen * math.Cos(angle)
	tipZ := flameLen * math.Sin(angle)
	flame := quad(
		r3.Vec{X: 0, Y: -halfW, Z: 0},
		r3.Vec{X: 0, Y: halfW, Z: 0},
		r3.Vec{X: tipX, Y: halfW, Z: tipZ},
		r3.Vec{X: tipX, Y: -halfW, Z: tipZ},
	)

	// Receiver post facing the flame.
	baseZ := separation * tanSlope
	topZ := baseZ + math.Max(site.ReceiverHeight, markerMinHeight)
	marker := quad(
		r3.Vec{X: separation, Y: -markerHalfWidth, Z: baseZ},
		r3.Vec{X: separation, Y: markerHalfWidth, Z: baseZ},
		r3.Vec{X: separation, Y: markerHalfWidth, Z: topZ},
		r3.Vec{X: separation, Y: -markerHalfWidth, Z: topZ},
	)

	mesh := make([]Triangle, 0, 6)
	mesh = append(mesh, ground...)
	mesh = append(mesh, flame...)
	mesh = append(mesh, marker...)
	return mesh, nil
}

// quad splits the planar quadrilateral abcd into two triangles sharing the
// a-c diagonal, both wound with the quad.
func quad(a, b, c, d r3.Vec) []Triangle {
	return []Triangle{{a, b, c}, {a, c, d}}
}
