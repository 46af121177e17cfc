// -*- compile-command: "go run main.go"; -*-

// test-cube writes cube.stl, a closed 12-facet unit cube, and
// halfcube.stl, its bottom, top and y=0 faces only.
package main

import (
	"log"

	"github.com/gmlewis/stl-toolpath/stl"
)

type face struct {
	n    [3]float32
	tris [2][3][3]float32
}

var faces = []face{
	{n: [3]float32{0, 0, -1}, tris: [2][3][3]float32{{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, {{0, 0, 0}, {1, 1, 0}, {0, 1, 0}}}},
	{n: [3]float32{0, 0, 1}, tris: [2][3][3]float32{{{0, 0, 1}, {1, 1, 1}, {1, 0, 1}}, {{0, 0, 1}, {0, 1, 1}, {1, 1, 1}}}},
	{n: [3]float32{0, -1, 0}, tris: [2][3][3]float32{{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}}, {{0, 0, 0}, {1, 0, 1}, {0, 0, 1}}}},
	{n: [3]float32{0, 1, 0}, tris: [2][3][3]float32{{{0, 1, 0}, {1, 1, 1}, {1, 1, 0}}, {{0, 1, 0}, {0, 1, 1}, {1, 1, 1}}}},
	{n: [3]float32{-1, 0, 0}, tris: [2][3][3]float32{{{0, 0, 0}, {0, 1, 1}, {0, 1, 0}}, {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}}}},
	{n: [3]float32{1, 0, 0}, tris: [2][3][3]float32{{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}}, {{1, 0, 0}, {1, 1, 1}, {1, 0, 1}}}},
}

func main() {
	writeCube("cube.stl", faces)
	writeCube("halfcube.stl", faces[:3])
	log.Printf("Done.")
}

func writeCube(filename string, faces []face) {
	w, err := stl.New(filename, "unit cube")
	check("stl.New: %v", err)

	for _, f := range faces {
		for _, q := range f.tris {
			err := w.Write(&stl.Tri{N: f.n, V1: q[0], V2: q[1], V3: q[2]})
			check("Write: %v", err)
		}
	}

	check("Close: %v", w.Close())
	log.Printf("Wrote %v triangles to %v", w.Count(), filename)
}

func check(fmtStr string, args ...interface{}) {
	if err := args[len(args)-1]; err != nil {
		log.Fatalf(fmtStr, args...)
	}
}
