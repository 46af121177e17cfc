// Package slicer cuts a triangle mesh into uniformly spaced planar
// cross-sections and turns them into a closed, normal-annotated toolpath.
//
// The pipeline is:
//
//	Heights  -> slice coordinates from the mesh extent and a tool length
//	Intersect -> edge crossings of every triangle with one slice plane
//	Assemble -> tolerance deduplication and angular ordering into a loop
//	Emit     -> path points for every non-empty slice, each loop closed
//
// Contour ordering sorts points by angle around their centroid. This only
// yields a correct loop when the cross-section is a single star-shaped
// polygon; several disjoint loops in one slice are silently interleaved.
package slicer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the absolute tolerance below which two coordinates are equal
// and below which a vector is considered to have zero length.
const Epsilon = 1e-6

// DefaultMaxSlices bounds the number of slices Heights may generate when
// Options.MaxSlices is zero.
const DefaultMaxSlices = 1000000

var (
	// ErrInvalidInput is returned, before any per-slice work, for an empty
	// triangle list, a non-positive tool length, or a request that computes
	// no usable slices.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateGeometry marks a slice that produced fewer than 3
	// distinct points. It is never returned; it only appears in log records.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// Axis selects the slicing axis.
type Axis int

const (
	AxisZ Axis = iota
	AxisX
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// index returns the vertex component along the axis.
func (a Axis) index() int {
	switch a {
	case AxisX:
		return 0
	case AxisY:
		return 1
	default:
		return 2
	}
}

// planeAxes returns the vertex components spanning the slice plane, in
// cyclic order after the slicing axis.
func (a Axis) planeAxes() (u, v int) {
	switch a {
	case AxisX:
		return 1, 2
	case AxisY:
		return 2, 0
	default:
		return 0, 1
	}
}

// Dir returns the unit vector along the axis.
func (a Axis) Dir() mgl32.Vec3 {
	var d mgl32.Vec3
	d[a.index()] = 1
	return d
}

// Position maps a point on the slice plane at coordinate z back into world
// space.
func (a Axis) Position(p mgl32.Vec2, z float32) mgl32.Vec3 {
	u, v := a.planeAxes()
	var pos mgl32.Vec3
	pos[u] = p[0]
	pos[v] = p[1]
	pos[a.index()] = z
	return pos
}

// ParseAxis parses "x", "y" or "z" (case-insensitive). The empty string
// selects AxisZ.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "", "z":
		return AxisZ, nil
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	}
	return AxisZ, fmt.Errorf("unknown axis %q", s)
}

// Overshoot decides what happens to a slice plane that lands beyond the far
// end of the mesh when the spacing does not evenly divide the extent.
type Overshoot int

const (
	// OvershootKeep emits ceil(extent/spacing)+1 uniformly spaced planes;
	// the last one may lie beyond the mesh. It differs from
	// floor(extent/spacing)+1 whenever the spacing does not divide the
	// extent evenly.
	OvershootKeep Overshoot = iota
	// OvershootDrop discards planes beyond the mesh, which gives
	// floor(extent/spacing)+1 planes.
	OvershootDrop
	// OvershootClamp moves an overshooting last plane onto the far end of
	// the mesh.
	OvershootClamp
)

func (o Overshoot) String() string {
	switch o {
	case OvershootDrop:
		return "drop"
	case OvershootClamp:
		return "clamp"
	default:
		return "keep"
	}
}

// ParseOvershoot parses "keep", "drop" or "clamp". The empty string selects
// OvershootKeep.
func ParseOvershoot(s string) (Overshoot, error) {
	switch strings.ToLower(s) {
	case "", "keep":
		return OvershootKeep, nil
	case "drop":
		return OvershootDrop, nil
	case "clamp":
		return OvershootClamp, nil
	}
	return OvershootKeep, fmt.Errorf("unknown overshoot policy %q", s)
}

// Weighting selects how triangle normals enter a slice's average.
type Weighting int

const (
	// WeightPerCrossing adds a triangle's normal once per crossing edge, so
	// a triangle straddling the plane counts twice.
	WeightPerCrossing Weighting = iota
	// WeightPerFacet adds each intersecting triangle's normal exactly once.
	WeightPerFacet
)

func (w Weighting) String() string {
	if w == WeightPerFacet {
		return "facet"
	}
	return "crossing"
}

// ParseWeighting parses "crossing" or "facet". The empty string selects
// WeightPerCrossing.
func ParseWeighting(s string) (Weighting, error) {
	switch strings.ToLower(s) {
	case "", "crossing":
		return WeightPerCrossing, nil
	case "facet":
		return WeightPerFacet, nil
	}
	return WeightPerCrossing, fmt.Errorf("unknown normal weighting %q", s)
}

// Options tunes the pipeline. The zero value slices along Z, keeps
// overshooting planes, weights normals per crossing, passes degenerate
// slices through and runs sequentially.
type Options struct {
	Axis      Axis
	Overshoot Overshoot
	Weighting Weighting

	// DropDegenerate omits slices with fewer than 3 distinct points from
	// the path.
	DropDegenerate bool

	// Workers > 1 processes that many slices concurrently. Output is
	// identical to a sequential run.
	Workers int

	// MaxSlices caps Heights; zero means DefaultMaxSlices.
	MaxSlices int
}

func (o *Options) maxSlices() int {
	if o.MaxSlices > 0 {
		return o.MaxSlices
	}
	return DefaultMaxSlices
}
