// Package ribbon turns a toolpath into a thin-walled STL surface so that
// any mesh viewer can display it.
//
// Each segment of every closed loop is extruded along the slicing axis into
// a quad (two triangles) centered on its slice plane.
package ribbon

import (
	"fmt"

	"github.com/gmlewis/stl-toolpath/slicer"
	"github.com/gmlewis/stl-toolpath/stl"
	"github.com/go-gl/mathgl/mgl32"
)

// TriWriter accepts triangles; *stl.Client implements it.
type TriWriter interface {
	Write(t *stl.Tri) error
}

// Write extrudes every loop of path by height along axis and writes the
// resulting triangles to w. Moves between loops are not extruded.
// It returns the number of triangles written.
func Write(w TriWriter, path slicer.Path, axis slicer.Axis, height float32) (int, error) {
	if !(height > 0) {
		return 0, fmt.Errorf("ribbon height %v must be positive", height)
	}
	half := axis.Dir().Mul(height / 2)

	var count int
	genTris := func(p1, p2 mgl32.Vec3) error {
		d := p2.Sub(p1)
		if d.Len() <= slicer.Epsilon {
			return nil
		}
		n := d.Cross(axis.Dir()).Normalize()
		v1 := p1.Sub(half)
		v3 := p2.Add(half)
		t := &stl.Tri{N: n, V1: v1, V2: p2.Sub(half), V3: v3}
		if err := w.Write(t); err != nil {
			return err
		}
		t = &stl.Tri{N: n, V1: v1, V2: v3, V3: p1.Add(half)}
		if err := w.Write(t); err != nil {
			return err
		}
		count += 2
		return nil
	}

	for _, seg := range path.Segments() {
		for i := 1; i < len(seg); i++ {
			if err := genTris(seg[i-1].Pos, seg[i].Pos); err != nil {
				return count, fmt.Errorf("write: %v", err)
			}
		}
	}
	return count, nil
}

// WriteFile writes the ribbon for path to a new binary STL file.
func WriteFile(filename string, path slicer.Path, axis slicer.Axis, height float32) (int, error) {
	c, err := stl.New(filename, "stl-toolpath ribbon")
	if err != nil {
		return 0, fmt.Errorf("stl.New: %v", err)
	}
	n, err := Write(c, path, axis, height)
	if cerr := c.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("Close: %v", cerr)
	}
	return n, err
}
