package slicer

import (
	"fmt"
	"math"

	"github.com/gmlewis/stl-toolpath/stl"
)

// SpacingFactor converts a tool length into the distance between slices.
const SpacingFactor = 0.75

// countSlack absorbs float32 noise in extent/spacing so that an exact
// multiple is not rounded to the next integer.
const countSlack = 1e-6

// Extent returns the smallest and largest vertex coordinate along axis.
// It returns (0, 0) for an empty triangle list.
func Extent(tris []stl.Tri, axis Axis) (lo, hi float32) {
	if len(tris) == 0 {
		return 0, 0
	}
	a := axis.index()
	lo, hi = tris[0].V1[a], tris[0].V1[a]
	for i := range tris {
		t := &tris[i]
		for _, v := range [3]float32{t.V1[a], t.V2[a], t.V3[a]} {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// Heights returns the slice coordinates for tris along opts.Axis. The first
// coordinate is the minimum vertex coordinate; the rest follow at
// toolLength*SpacingFactor intervals. opts.Overshoot decides how the last
// plane relates to the maximum vertex coordinate.
//
// The default OvershootKeep yields ceil(extent/spacing)+1 planes, so the
// last plane reaches or passes the far end of the mesh. Use OvershootDrop
// for the floor(extent/spacing)+1 count, which never passes it.
func Heights(tris []stl.Tri, toolLength float32, opts Options) ([]float32, error) {
	if len(tris) == 0 {
		return nil, fmt.Errorf("%w: no triangles", ErrInvalidInput)
	}
	if !(toolLength > 0) || math.IsInf(float64(toolLength), 1) {
		return nil, fmt.Errorf("%w: tool length %v must be positive and finite", ErrInvalidInput, toolLength)
	}

	lo, hi := Extent(tris, opts.Axis)
	extent := hi - lo
	if math.IsNaN(float64(extent)) || math.IsInf(float64(extent), 0) {
		return nil, fmt.Errorf("%w: mesh extent [%v,%v] is not finite", ErrInvalidInput, lo, hi)
	}

	spacing := toolLength * SpacingFactor
	if !(spacing > 0) {
		return nil, fmt.Errorf("%w: spacing for tool length %v underflows", ErrInvalidInput, toolLength)
	}

	r := float64(extent) / float64(spacing)
	var n float64
	switch opts.Overshoot {
	case OvershootDrop:
		n = math.Floor(r+countSlack) + 1
	default:
		n = math.Ceil(r-countSlack) + 1
	}
	if n < 1 || n > float64(opts.maxSlices()) {
		return nil, fmt.Errorf("%w: %v slices for extent %v and spacing %v (limit %v)",
			ErrInvalidInput, n, extent, spacing, opts.maxSlices())
	}

	count := int(n)
	heights := make([]float32, count)
	for i := range heights {
		heights[i] = lo + float32(i)*spacing
		if i > 0 && heights[i] <= heights[i-1] {
			return nil, fmt.Errorf("%w: spacing %v is below float32 resolution at %v", ErrInvalidInput, spacing, heights[i])
		}
	}

	if opts.Overshoot == OvershootClamp && count > 1 && heights[count-1] > hi {
		if heights[count-2] >= hi {
			heights = heights[:count-1]
		} else {
			heights[count-1] = hi
		}
	}

	return heights, nil
}
