// -*- compile-command: "go run main.go"; -*-

// test-shapes writes curved STL example files built from signed
// distance functions: sphere.stl, cylinder.stl and box.stl.
package main

import (
	"flag"
	"log"

	"github.com/deadsy/sdfx/sdf"
	"github.com/gmlewis/stl-toolpath/shapes"
)

var cells = flag.Int("cells", shapes.DefaultCells, "Marching cubes cells along the longest axis")

func main() {
	flag.Parse()

	sphere, err := shapes.Sphere(10)
	check("shapes.Sphere: %v", err)
	cylinder, err := shapes.Cylinder(20, 5)
	check("shapes.Cylinder: %v", err)
	box, err := shapes.Box(10, 20, 5)
	check("shapes.Box: %v", err)

	for _, s := range []struct {
		filename string
		sdf      sdf.SDF3
	}{
		{"sphere.stl", sphere},
		{"cylinder.stl", cylinder},
		{"box.stl", box},
	} {
		n, err := shapes.WriteFile(s.filename, s.sdf, *cells)
		check("shapes.WriteFile: %v", err)
		log.Printf("Wrote %v triangles to %v", n, s.filename)
	}

	log.Printf("Done.")
}

func check(fmtStr string, args ...interface{}) {
	if err := args[len(args)-1]; err != nil {
		log.Fatalf(fmtStr, args...)
	}
}
