package slicer

import (
	"math"

	"github.com/gmlewis/stl-toolpath/stl"
	"github.com/go-gl/mathgl/mgl32"
)

func tri(n, v1, v2, v3 [3]float32) stl.Tri {
	return stl.Tri{N: n, V1: v1, V2: v2, V3: v3}
}

// referenceCube is the bottom, top and y=0 side of the unit cube.
func referenceCube() []stl.Tri {
	return []stl.Tri{
		tri([3]float32{0, 0, -1}, [3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{1, 1, 0}),
		tri([3]float32{0, 0, -1}, [3]float32{0, 0, 0}, [3]float32{1, 1, 0}, [3]float32{0, 1, 0}),
		tri([3]float32{0, 0, 1}, [3]float32{0, 0, 1}, [3]float32{1, 1, 1}, [3]float32{1, 0, 1}),
		tri([3]float32{0, 0, 1}, [3]float32{0, 0, 1}, [3]float32{0, 1, 1}, [3]float32{1, 1, 1}),
		tri([3]float32{0, -1, 0}, [3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{1, 0, 1}),
		tri([3]float32{0, -1, 0}, [3]float32{0, 0, 0}, [3]float32{1, 0, 1}, [3]float32{0, 0, 1}),
	}
}

// unitCube is the closed 12-facet cube spanning [0,1] on every axis.
func unitCube() []stl.Tri {
	return append(referenceCube(),
		tri([3]float32{0, 1, 0}, [3]float32{0, 1, 0}, [3]float32{1, 1, 1}, [3]float32{1, 1, 0}),
		tri([3]float32{0, 1, 0}, [3]float32{0, 1, 0}, [3]float32{0, 1, 1}, [3]float32{1, 1, 1}),
		tri([3]float32{-1, 0, 0}, [3]float32{0, 0, 0}, [3]float32{0, 1, 1}, [3]float32{0, 1, 0}),
		tri([3]float32{-1, 0, 0}, [3]float32{0, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 1}),
		tri([3]float32{1, 0, 0}, [3]float32{1, 0, 0}, [3]float32{1, 1, 0}, [3]float32{1, 1, 1}),
		tri([3]float32{1, 0, 0}, [3]float32{1, 0, 0}, [3]float32{1, 1, 1}, [3]float32{1, 0, 1}),
	)
}

// squareLoop is the unit cube's cross-section at z=0.5, in emitted order.
var squareLoop = Contour{
	{0, 0}, {0.5, 0}, {1, 0}, {1, 0.5}, {1, 1}, {0.5, 1}, {0, 1}, {0, 0.5},
}

func shoelace(c Contour) float64 {
	var a float64
	for i, p := range c {
		q := c[(i+1)%len(c)]
		a += float64(p[0])*float64(q[1]) - float64(q[0])*float64(p[1])
	}
	return math.Abs(a) / 2
}

func vecNear(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		if abs32(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
