package slicer

import (
	"github.com/gmlewis/stl-toolpath/stl"
	"github.com/go-gl/mathgl/mgl32"
)

// Crossing is the point where one triangle edge passes through a slice
// plane, in the plane's two in-plane axes, along with the triangle normal.
type Crossing struct {
	P mgl32.Vec2
	N mgl32.Vec3
}

// Intersect appends to dst the crossings of tri's edges with the plane at
// coordinate z along axis and returns the extended slice.
//
// An edge crosses only when its endpoints lie strictly on opposite sides of
// the plane. A vertex lying exactly on the plane never registers by itself,
// so a triangle contributes 0 or 2 crossings, or 1 when one vertex sits on
// the plane and the opposite edge straddles it.
func Intersect(dst []Crossing, tri *stl.Tri, z float32, axis Axis) []Crossing {
	a := axis.index()
	u, v := axis.planeAxes()
	n := mgl32.Vec3{tri.N[0], tri.N[1], tri.N[2]}
	verts := [3]*[3]float32{&tri.V1, &tri.V2, &tri.V3}

	for i := 0; i < 3; i++ {
		p, q := verts[i], verts[(i+1)%3]
		if !((p[a]-z)*(q[a]-z) < 0) {
			continue
		}
		t := (z - p[a]) / (q[a] - p[a])
		dst = append(dst, Crossing{
			P: mgl32.Vec2{p[u] + t*(q[u]-p[u]), p[v] + t*(q[v]-p[v])},
			N: n,
		})
	}
	return dst
}
