package slicer

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Contour is the ordered set of distinct points of one slice. The loop is
// implicitly closed; Emit repeats the first point.
type Contour []mgl32.Vec2

// Assemble deduplicates the crossing points of one slice and orders them
// by angle around their centroid.
func Assemble(crossings []Crossing) Contour {
	ps := newPointSet(len(crossings))
	for _, c := range crossings {
		ps.add(c.P)
	}
	sortRadial(ps.points)
	return ps.points
}

// Dedup returns points with every point dropped that lies within Epsilon,
// on both axes, of an earlier kept point. Arrival order is preserved.
func Dedup(points []mgl32.Vec2) Contour {
	ps := newPointSet(len(points))
	for _, p := range points {
		ps.add(p)
	}
	return ps.points
}

// cell is a grid coordinate with Epsilon-sized cells. Any kept point within
// Epsilon of p on both axes lies in p's cell or one of its 8 neighbours.
type cell struct{ x, y int64 }

func cellOf(p mgl32.Vec2) cell {
	return cell{
		x: int64(math.Floor(float64(p[0]) / Epsilon)),
		y: int64(math.Floor(float64(p[1]) / Epsilon)),
	}
}

// pointSet keeps the first of every group of near-coincident points.
type pointSet struct {
	points Contour
	grid   map[cell][]int32
}

func newPointSet(n int) *pointSet {
	return &pointSet{
		points: make(Contour, 0, n),
		grid:   make(map[cell][]int32, n),
	}
}

func (ps *pointSet) add(p mgl32.Vec2) bool {
	c := cellOf(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, i := range ps.grid[cell{c.x + dx, c.y + dy}] {
				if near(ps.points[i], p) {
					return false
				}
			}
		}
	}
	ps.grid[c] = append(ps.grid[c], int32(len(ps.points)))
	ps.points = append(ps.points, p)
	return true
}

func near(a, b mgl32.Vec2) bool {
	return abs32(a[0]-b[0]) < Epsilon && abs32(a[1]-b[1]) < Epsilon
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// polar pairs a point with its angle around the contour centroid.
type polar struct {
	p     mgl32.Vec2
	angle float64
}

// sortRadial orders points in place by ascending atan2 angle around their
// centroid. Equal angles keep their arrival order. Fewer than 3 points are
// left untouched.
func sortRadial(points []mgl32.Vec2) {
	if len(points) <= 2 {
		return
	}

	var c mgl32.Vec2
	c[0], c[1] = centroid(points)

	keyed := make([]polar, len(points))
	for i, p := range points {
		keyed[i] = polar{
			p:     p,
			angle: math.Atan2(float64(p[1]-c[1]), float64(p[0]-c[0])),
		}
	}
	sort.SliceStable(keyed, func(a, b int) bool { return keyed[a].angle < keyed[b].angle })

	for i, k := range keyed {
		points[i] = k.p
	}
}

// centroid is the arithmetic mean of points, summed and divided in float32.
func centroid(points []mgl32.Vec2) (cx, cy float32) {
	for _, p := range points {
		cx += p[0]
		cy += p[1]
	}
	n := float32(len(points))
	return cx / n, cy / n
}
