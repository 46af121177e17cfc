// Package shapes builds test meshes from signed distance functions.
package shapes

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/gmlewis/stl-toolpath/stl"
)

// DefaultCells is the marching cubes resolution along the longest axis.
const DefaultCells = 64

// Box returns a box with one corner at the origin and the opposite corner
// at (x, y, z).
func Box(x, y, z float64) (sdf.SDF3, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdf.Box3D: %v", err)
	}
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return sdf.Transform3D(s, m), nil
}

// Sphere returns a sphere of radius r centered on the origin.
func Sphere(r float64) (sdf.SDF3, error) {
	s, err := sdf.Sphere3D(r)
	if err != nil {
		return nil, fmt.Errorf("sdf.Sphere3D: %v", err)
	}
	return s, nil
}

// Cylinder returns a cylinder along Z, centered on the origin.
func Cylinder(height, radius float64) (sdf.SDF3, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdf.Cylinder3D: %v", err)
	}
	return s, nil
}

// Mesh triangulates s with uniform marching cubes.
func Mesh(s sdf.SDF3, cells int) []stl.Tri {
	if cells <= 0 {
		cells = DefaultCells
	}
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	tris := make([]stl.Tri, 0, len(triangles))
	for _, tri := range triangles {
		n := tri.Normal()
		t := stl.Tri{N: [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}}
		for j, v := range []*[3]float32{&t.V1, &t.V2, &t.V3} {
			*v = [3]float32{float32(tri[j].X), float32(tri[j].Y), float32(tri[j].Z)}
		}
		tris = append(tris, t)
	}
	return tris
}

// WriteFile triangulates s and writes it as a binary STL file. It returns
// the number of triangles written.
func WriteFile(filename string, s sdf.SDF3, cells int) (int, error) {
	tris := Mesh(s, cells)
	c, err := stl.New(filename, filename)
	if err != nil {
		return 0, fmt.Errorf("stl.New: %v", err)
	}
	for i := range tris {
		if err := c.Write(&tris[i]); err != nil {
			c.Close()
			return i, fmt.Errorf("Write: %v", err)
		}
	}
	if err := c.Close(); err != nil {
		return len(tris), fmt.Errorf("Close: %v", err)
	}
	return len(tris), nil
}
