// Package binvox writes the voxels swept by a toolpath to binvox files.
package binvox

import (
	"fmt"
	"log"
	"math"

	"github.com/gmlewis/stl-toolpath/slicer"
	"github.com/gmlewis/stldice/v4/binvox"
	"github.com/go-gl/mathgl/mgl32"
)

// Grid maps world coordinates onto cubic voxels.
type Grid struct {
	Min  mgl32.Vec3
	Size float32 // voxel edge length
	N    [3]int
}

// NewGrid returns a grid covering every point of path with res voxels
// along its longest dimension.
func NewGrid(path slicer.Path, res int) (*Grid, error) {
	if res < 1 {
		return nil, fmt.Errorf("resolution %v must be at least 1", res)
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("empty path")
	}

	min, max := path[0].Pos, path[0].Pos
	for _, p := range path[1:] {
		for i := 0; i < 3; i++ {
			min[i] = float32(math.Min(float64(min[i]), float64(p.Pos[i])))
			max[i] = float32(math.Max(float64(max[i]), float64(p.Pos[i])))
		}
	}

	var longest float32
	for i := 0; i < 3; i++ {
		if d := max[i] - min[i]; d > longest {
			longest = d
		}
	}
	if longest <= slicer.Epsilon {
		// A single point still occupies one voxel.
		longest = 1
	}

	g := &Grid{Min: min, Size: longest / float32(res)}
	for i := 0; i < 3; i++ {
		n := int(math.Ceil(float64((max[i] - min[i]) / g.Size)))
		if n < 1 {
			n = 1
		}
		if n > res {
			n = res
		}
		g.N[i] = n
	}
	return g, nil
}

// Voxel returns the grid cell holding p, clamped to the grid.
func (g *Grid) Voxel(p mgl32.Vec3) (x, y, z int) {
	var v [3]int
	for i := 0; i < 3; i++ {
		n := int(math.Floor(float64((p[i] - g.Min[i]) / g.Size)))
		if n < 0 {
			n = 0
		}
		if n >= g.N[i] {
			n = g.N[i] - 1
		}
		v[i] = n
	}
	return v[0], v[1], v[2]
}

type key [3]int

// Rasterize calls add once for every distinct voxel touched by a segment of
// path. Segments are sampled at half-voxel steps. It returns the number of
// distinct voxels.
func (g *Grid) Rasterize(path slicer.Path, add func(x, y, z int)) int {
	seen := map[key]struct{}{}
	mark := func(p mgl32.Vec3) {
		x, y, z := g.Voxel(p)
		k := key{x, y, z}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		add(x, y, z)
	}

	for _, seg := range path.Segments() {
		mark(seg[0].Pos)
		for i := 1; i < len(seg); i++ {
			p, q := seg[i-1].Pos, seg[i].Pos
			steps := int(math.Ceil(float64(q.Sub(p).Len() / (g.Size / 2))))
			for s := 1; s <= steps; s++ {
				mark(p.Add(q.Sub(p).Mul(float32(s) / float32(steps))))
			}
		}
	}
	return len(seen)
}

// Write voxelizes path at res voxels along its longest dimension and
// writes the result to filename. It returns the number of filled voxels.
func Write(filename string, path slicer.Path, res int) (int, error) {
	g, err := NewGrid(path, res)
	if err != nil {
		return 0, err
	}

	b := binvox.New(g.N[0], g.N[1], g.N[2],
		float64(g.Min[0]), float64(g.Min[1]), float64(g.Min[2]),
		float64(g.Size)*float64(res), false)

	n := g.Rasterize(path, func(x, y, z int) { b.Add(x, y, z) })

	log.Printf("Writing: %v", filename)
	if err := b.Write(filename, 0, 0, 0, b.NX, b.NY, b.NZ); err != nil {
		return n, fmt.Errorf("Write: %v", err)
	}
	return n, nil
}
