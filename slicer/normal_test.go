package slicer

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAverageNormal(t *testing.T) {
	r := float32(1 / math.Sqrt2)
	tests := []struct {
		name    string
		normals []mgl32.Vec3
		want    mgl32.Vec3
	}{
		{name: "empty"},
		{name: "single unit", normals: []mgl32.Vec3{{0, -1, 0}}, want: mgl32.Vec3{0, -1, 0}},
		{name: "single scaled", normals: []mgl32.Vec3{{0, 0, 2}}, want: mgl32.Vec3{0, 0, 1}},
		{name: "repeated", normals: []mgl32.Vec3{{0, -1, 0}, {0, -1, 0}, {0, -1, 0}}, want: mgl32.Vec3{0, -1, 0}},
		{name: "diagonal", normals: []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}}, want: mgl32.Vec3{r, r, 0}},
		{name: "opposites cancel", normals: []mgl32.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}}},
		{name: "below tolerance", normals: []mgl32.Vec3{{4e-7, 0, 0}, {2e-7, 0, 0}}, want: mgl32.Vec3{3e-7, 0, 0}},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			got := AverageNormal(tt.normals)
			if !vecNear(got, tt.want, 1e-6) {
				t.Errorf("AverageNormal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAverageNormalIsUnitOrDegenerate(t *testing.T) {
	normals := []mgl32.Vec3{{0.3, -0.2, 0.9}, {-0.7, 0.1, 0.1}, {0.2, 0.2, -0.5}}
	for i := 1; i <= len(normals); i++ {
		got := AverageNormal(normals[:i])
		if l := got.Len(); math.Abs(float64(l)-1) > 1e-3 && l > Epsilon {
			t.Errorf("AverageNormal(%v) has length %v", normals[:i], l)
		}
	}
}
