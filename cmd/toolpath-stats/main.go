// toolpath-stats slices STL files over a range of tool lengths and prints
// the slice count, path size, and the total cross-section area and
// perimeter for each setting so that a suitable tool can be picked.
//
// Output columns (tab-separated): file, tool length, slices, empty slices,
// degenerate slices, path points, total area, total perimeter.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gmlewis/stl-toolpath/features"
	"github.com/gmlewis/stl-toolpath/slicer"
	"github.com/gmlewis/stl-toolpath/stl"
)

var (
	tools     = flag.String("tools", "4,2,1,0.5,0.25,0.1", "Comma-separated tool lengths to try, largest first")
	maxPoints = flag.Int("max", 5000000, "Stop searching once the path exceeds max points")
	workers   = flag.Int("workers", 4, "Number of slices processed concurrently")
)

func main() {
	flag.Parse()

	inputs, err := parseTools(*tools)
	check("-tools: %v", err)

	var pts []string
	for _, arg := range flag.Args() {
		log.Printf("Reading %v", arg)
		mesh, err := stl.ReadFile(arg)
		check("stl.ReadFile: %v", err)

		for _, toolLength := range inputs {
			res, err := slicer.Run(mesh.Tris, toolLength, slicer.Options{Workers: *workers})
			check("slicer.Run(%v): %v", toolLength, err)

			var area, perimeter float64
			for i := range res.Layers {
				a, p := features.Measure(&res.Layers[i])
				area += a
				perimeter += p
			}
			log.Printf("tool=%v: %v", toolLength, res.Stats)

			pts = append(pts, fmt.Sprintf("%v\t%v\t%v\t%v\t%v\t%v\t%0.4f\t%0.4f",
				arg, toolLength, res.Stats.Slices, res.Stats.Empty, res.Stats.Degenerate,
				res.Stats.Points, area, perimeter))

			if res.Stats.Points >= *maxPoints {
				break
			}
		}
	}

	fmt.Printf("%v\n", strings.Join(pts, "\n"))
	log.Printf("Done.")
}

func parseTools(s string) ([]float32, error) {
	var out []float32
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		out = append(out, float32(v))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no tool lengths in %q", s)
	}
	return out, nil
}

func check(fmtStr string, args ...interface{}) {
	if err := args[len(args)-1]; err != nil {
		log.Fatalf(fmtStr, args...)
	}
}
