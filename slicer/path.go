package slicer

import (
	"fmt"

	"github.com/gmlewis/stl-toolpath/stl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"
)

// PathPoint is one toolpath vertex in world coordinates, annotated with the
// averaged surface normal of its slice.
type PathPoint struct {
	Pos mgl32.Vec3
	N   mgl32.Vec3
}

// Path is the concatenation of every non-empty slice's closed contour, in
// slice order.
type Path []PathPoint

// Segments splits p into its closed loops. Each loop ends at the first
// repetition of its starting position.
func (p Path) Segments() []Path {
	var segs []Path
	for i := 0; i < len(p); {
		j := i + 1
		for j < len(p) && p[j].Pos != p[i].Pos {
			j++
		}
		if j == len(p) {
			// Unclosed tail; only possible for a hand-built Path.
			segs = append(segs, p[i:])
			break
		}
		segs = append(segs, p[i:j+1])
		i = j + 1
	}
	return segs
}

// Layer is the result of cutting the mesh with one slice plane.
type Layer struct {
	Index int
	Z     float32
	Axis  Axis

	Contour Contour
	Normal  mgl32.Vec3

	// Crossings is the number of edge crossings found on this plane.
	Crossings int

	// Dropped is set on a degenerate layer when Options.DropDegenerate is
	// in effect; Emit skips it.
	Dropped bool
}

// Empty reports whether the plane missed the mesh.
func (l *Layer) Empty() bool { return len(l.Contour) == 0 }

// Degenerate reports whether the plane touched the mesh in fewer than 3
// distinct points.
func (l *Layer) Degenerate() bool { return len(l.Contour) > 0 && len(l.Contour) < 3 }

// Points returns the layer's contour in world coordinates, closed by a
// repetition of the first point. It returns nil for an empty layer.
func (l *Layer) Points() []mgl32.Vec3 {
	if l.Empty() {
		return nil
	}
	pts := make([]mgl32.Vec3, 0, len(l.Contour)+1)
	for _, p := range l.Contour {
		pts = append(pts, l.Axis.Position(p, l.Z))
	}
	return append(pts, pts[0])
}

func sliceLayer(tris []stl.Tri, index int, z float32, opts *Options) Layer {
	var (
		crossings []Crossing
		normals   normalSum
	)
	for i := range tris {
		before := len(crossings)
		crossings = Intersect(crossings, &tris[i], z, opts.Axis)
		switch {
		case len(crossings) == before:
		case opts.Weighting == WeightPerFacet:
			normals.add(crossings[before].N)
		default:
			for _, c := range crossings[before:] {
				normals.add(c.N)
			}
		}
	}

	l := Layer{
		Index:     index,
		Z:         z,
		Axis:      opts.Axis,
		Contour:   Assemble(crossings),
		Normal:    normals.average(),
		Crossings: len(crossings),
	}

	log := logger()
	log.Debug("slice", "index", index, "z", z, "crossings", l.Crossings, "points", len(l.Contour))
	if l.Degenerate() {
		l.Dropped = opts.DropDegenerate
		log.Warn("degenerate slice", "index", index, "z", z, "points", len(l.Contour), "dropped", l.Dropped, "err", ErrDegenerateGeometry)
	}
	return l
}

// Layers cuts tris with a plane at every coordinate in heights.
func Layers(tris []stl.Tri, heights []float32, opts Options) ([]Layer, error) {
	if len(tris) == 0 {
		return nil, fmt.Errorf("%w: no triangles", ErrInvalidInput)
	}
	if len(heights) == 0 {
		return nil, fmt.Errorf("%w: no slice heights", ErrInvalidInput)
	}

	layers := make([]Layer, len(heights))
	if opts.Workers <= 1 {
		for i, z := range heights {
			layers[i] = sliceLayer(tris, i, z, &opts)
		}
		return layers, nil
	}

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for i, z := range heights {
		g.Go(func() error {
			layers[i] = sliceLayer(tris, i, z, &opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return layers, nil
}

// Emit flattens layers into a Path. Every non-empty, non-dropped layer
// contributes its contour points followed by a copy of the first one.
func Emit(layers []Layer) Path {
	n := 0
	for i := range layers {
		if !layers[i].Empty() && !layers[i].Dropped {
			n += len(layers[i].Contour) + 1
		}
	}

	path := make(Path, 0, n)
	for i := range layers {
		l := &layers[i]
		if l.Dropped {
			continue
		}
		for _, pos := range l.Points() {
			path = append(path, PathPoint{Pos: pos, N: l.Normal})
		}
	}
	return path
}

// Plan cuts tris at heights and returns the resulting toolpath.
func Plan(tris []stl.Tri, heights []float32, opts Options) (Path, error) {
	layers, err := Layers(tris, heights, opts)
	if err != nil {
		return nil, err
	}
	return Emit(layers), nil
}

// Stats summarizes a run.
type Stats struct {
	Slices     int
	Empty      int
	Degenerate int
	Dropped    int
	Points     int
}

func (s Stats) String() string {
	return fmt.Sprintf("%v slices (%v empty, %v degenerate, %v dropped), %v path points",
		s.Slices, s.Empty, s.Degenerate, s.Dropped, s.Points)
}

// Result holds every stage of a run.
type Result struct {
	Heights []float32
	Layers  []Layer
	Path    Path
	Stats   Stats
}

// Run computes the slice heights for toolLength and plans the toolpath.
func Run(tris []stl.Tri, toolLength float32, opts Options) (*Result, error) {
	heights, err := Heights(tris, toolLength, opts)
	if err != nil {
		return nil, err
	}
	layers, err := Layers(tris, heights, opts)
	if err != nil {
		return nil, err
	}

	r := &Result{
		Heights: heights,
		Layers:  layers,
		Path:    Emit(layers),
	}
	r.Stats.Slices = len(layers)
	r.Stats.Points = len(r.Path)
	for i := range layers {
		l := &layers[i]
		switch {
		case l.Empty():
			r.Stats.Empty++
		case l.Degenerate():
			r.Stats.Degenerate++
			if l.Dropped {
				r.Stats.Dropped++
			}
		}
	}
	return r, nil
}
