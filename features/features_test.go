package features

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/gmlewis/stl-toolpath/slicer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var square = slicer.Contour{{0, 0}, {0.5, 0}, {1, 0}, {1, 0.5}, {1, 1}, {0.5, 1}, {0, 1}, {0, 0.5}}

func TestRing(t *testing.T) {
	if got := Ring(nil); got != nil {
		t.Errorf("Ring(nil) = %v, want nil", got)
	}
	got := Ring(slicer.Contour{{1, 2}, {3, 4}})
	want := orb.Ring{{1, 2}, {3, 4}, {1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ring = %v, want %v", got, want)
	}
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		name            string
		contour         slicer.Contour
		area, perimeter float64
	}{
		{name: "empty"},
		{name: "unit square", contour: square, area: 1, perimeter: 4},
		{name: "two points", contour: slicer.Contour{{0, 0}, {3, 4}}, perimeter: 10},
		{name: "right triangle", contour: slicer.Contour{{0, 0}, {3, 0}, {0, 4}}, area: 6, perimeter: 12},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			area, perimeter := Measure(&slicer.Layer{Contour: tt.contour})
			if math.Abs(area-tt.area) > 1e-9 || math.Abs(perimeter-tt.perimeter) > 1e-9 {
				t.Errorf("Measure = (%v, %v), want (%v, %v)", area, perimeter, tt.area, tt.perimeter)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	layers := []slicer.Layer{
		{Index: 0, Z: 0},
		{Index: 1, Z: 0.5, Contour: square, Normal: mgl32.Vec3{0, -1, 0}},
		{Index: 2, Z: 0.75, Contour: slicer.Contour{{0, 0}, {1, 0}}, Dropped: true},
	}

	var buf bytes.Buffer
	if err := Write(&buf, layers); err != nil {
		t.Fatalf("Write: %v", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	if err != nil {
		t.Fatalf("UnmarshalFeatureCollection: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("got %v features, want 1", len(fc.Features))
	}

	f := fc.Features[0]
	ls, ok := f.Geometry.(orb.LineString)
	if !ok {
		t.Fatalf("geometry is %T, want orb.LineString", f.Geometry)
	}
	if len(ls) != len(square)+1 || ls[0] != ls[len(ls)-1] {
		t.Errorf("line string %v is not the closed contour", ls)
	}

	want := map[string]interface{}{
		"index":     1.0,
		"z":         0.5,
		"axis":      "z",
		"normal":    []interface{}{0.0, -1.0, 0.0},
		"points":    8.0,
		"area":      1.0,
		"perimeter": 4.0,
	}
	if got := map[string]interface{}(f.Properties); !reflect.DeepEqual(got, want) {
		t.Errorf("properties = %#v, want %#v", got, want)
	}
}
