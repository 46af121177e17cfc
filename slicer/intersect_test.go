package slicer

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/gmlewis/stl-toolpath/stl"
	"github.com/go-gl/mathgl/mgl32"
)

func TestIntersect(t *testing.T) {
	side := tri([3]float32{0, -1, 0}, [3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{1, 0, 1})
	sideN := mgl32.Vec3{0, -1, 0}

	tests := []struct {
		name string
		tri  stl.Tri
		z    float32
		axis Axis
		want []Crossing
	}{
		{
			name: "straddling triangle",
			tri:  side,
			z:    0.5,
			want: []Crossing{{P: mgl32.Vec2{1, 0}, N: sideN}, {P: mgl32.Vec2{0.5, 0}, N: sideN}},
		},
		{
			name: "interpolated at a quarter",
			tri:  side,
			z:    0.25,
			want: []Crossing{{P: mgl32.Vec2{1, 0}, N: sideN}, {P: mgl32.Vec2{0.25, 0}, N: sideN}},
		},
		{name: "plane above triangle", tri: side, z: 2},
		{name: "plane below triangle", tri: side, z: -0.5},
		{name: "plane through bottom edge", tri: side, z: 0},
		{name: "plane through top vertex", tri: side, z: 1},
		{
			name: "one vertex on the plane",
			tri:  tri([3]float32{0, -1, 0}, [3]float32{0, 0, 0.5}, [3]float32{1, 0, 0}, [3]float32{1, 0, 1}),
			z:    0.5,
			want: []Crossing{{P: mgl32.Vec2{1, 0}, N: sideN}},
		},
		{
			name: "x axis",
			tri:  side,
			z:    0.5,
			axis: AxisX,
			want: []Crossing{{P: mgl32.Vec2{0, 0}, N: sideN}, {P: mgl32.Vec2{0, 0.5}, N: sideN}},
		},
		{
			name: "y axis",
			tri:  tri([3]float32{1, 0, 0}, [3]float32{1, 0, 0}, [3]float32{1, 1, 0}, [3]float32{1, 1, 1}),
			z:    0.5,
			axis: AxisY,
			want: []Crossing{{P: mgl32.Vec2{0, 1}, N: mgl32.Vec3{1, 0, 0}}, {P: mgl32.Vec2{0.5, 1}, N: mgl32.Vec3{1, 0, 0}}},
		},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			got := Intersect(nil, &tt.tri, tt.z, tt.axis)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectAppends(t *testing.T) {
	tris := referenceCube()
	var got []Crossing
	for i := range tris {
		got = Intersect(got, &tris[i], 0.5, AxisZ)
	}
	if len(got) != 4 {
		t.Fatalf("got %v crossings, want 4", len(got))
	}
	want := []mgl32.Vec2{{1, 0}, {0.5, 0}, {0.5, 0}, {0, 0}}
	for i, c := range got {
		if c.P != want[i] {
			t.Errorf("crossing[%v] = %v, want %v", i, c.P, want[i])
		}
	}
}

func TestIntersectLeavesTriangleUntouched(t *testing.T) {
	tris := unitCube()
	orig := unitCube()
	for i := range tris {
		Intersect(nil, &tris[i], 0.5, AxisZ)
		Intersect(nil, &tris[i], 0.5, AxisX)
	}
	if !reflect.DeepEqual(tris, orig) {
		t.Error("Intersect modified its triangle")
	}
}
