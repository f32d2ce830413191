// Package render turns radiant heat assessments into engineering output:
// worst case scene meshes with a binary STL codec, PNG rasterization of
// those meshes and flux profile charts.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a triangle in 3D space, a vertex ordered trio whose winding
// fixes the face normal.
type Triangle = r3.Triangle
