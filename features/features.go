// Package features exports slice contours as GeoJSON and measures them
// with planar geometry.
package features

import (
	"fmt"
	"io"

	"github.com/gmlewis/stl-toolpath/slicer"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// Ring returns c as a closed ring in the slice plane.
func Ring(c slicer.Contour) orb.Ring {
	if len(c) == 0 {
		return nil
	}
	r := make(orb.Ring, 0, len(c)+1)
	for _, p := range c {
		r = append(r, orb.Point{float64(p[0]), float64(p[1])})
	}
	return append(r, r[0])
}

// Measure returns the enclosed area and the perimeter of a layer's
// contour. Contours with fewer than 3 points enclose no area.
func Measure(l *slicer.Layer) (area, perimeter float64) {
	r := Ring(l.Contour)
	if len(r) == 0 {
		return 0, 0
	}
	perimeter = planar.Length(orb.LineString(r))
	if len(l.Contour) >= 3 {
		area = planar.Area(orb.Polygon{r})
	}
	return area, perimeter
}

// Collection returns one closed LineString feature per emitted layer.
func Collection(layers []slicer.Layer) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := range layers {
		l := &layers[i]
		if l.Empty() || l.Dropped {
			continue
		}
		area, perimeter := Measure(l)
		f := geojson.NewFeature(orb.LineString(Ring(l.Contour)))
		f.Properties["index"] = l.Index
		f.Properties["z"] = l.Z
		f.Properties["axis"] = l.Axis.String()
		f.Properties["normal"] = []float32{l.Normal[0], l.Normal[1], l.Normal[2]}
		f.Properties["points"] = len(l.Contour)
		f.Properties["area"] = area
		f.Properties["perimeter"] = perimeter
		fc.Append(f)
	}
	return fc
}

// Write encodes the feature collection for layers to w.
func Write(w io.Writer, layers []slicer.Layer) error {
	buf, err := Collection(layers).MarshalJSON()
	if err != nil {
		return fmt.Errorf("MarshalJSON: %v", err)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("Write: %v", err)
	}
	return nil
}
