// stl-toolpath slices one or more binary STL files into uniformly spaced
// cross-sections and generates a closed, normal-annotated toolpath.
//
// The slice spacing is 0.75 times the tool length. By default only the
// slice and path statistics are logged. To generate output, supply at
// least one of -csv, -ribbon, -binvox, -zip or -geojson (or name outputs
// in a -config job file).
//
// Flags given on the command line override values from the job file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gmlewis/stl-toolpath/binvox"
	"github.com/gmlewis/stl-toolpath/config"
	"github.com/gmlewis/stl-toolpath/features"
	"github.com/gmlewis/stl-toolpath/ribbon"
	"github.com/gmlewis/stl-toolpath/slicer"
	"github.com/gmlewis/stl-toolpath/stl"
	"github.com/gmlewis/stl-toolpath/zipper"
)

var (
	jobFile = flag.String("config", "", "TOML job file")
	verbose = flag.Bool("v", false, "Log every slice")

	toolLength = flag.Float64("tool", 1.0, "Tool length; slices are 0.75 tool lengths apart")
	axis       = flag.String("axis", "z", "Slicing axis: x, y or z")
	overshoot  = flag.String("overshoot", "keep", "Last plane beyond the mesh: keep, drop or clamp")
	weighting  = flag.String("weighting", "crossing", "Normal weighting: crossing or facet")
	drop       = flag.Bool("drop", false, "Omit slices with fewer than 3 distinct points from the path")
	workers    = flag.Int("workers", 0, "Number of slices processed concurrently")
	maxSlices  = flag.Int("max", 0, "Maximum number of slices (default 1000000)")

	writeBinvox  = flag.Bool("binvox", false, "Write a binvox file of the voxels swept by the toolpath")
	writeCSV     = flag.Bool("csv", false, "Write the toolpath as x,y,z,nx,ny,nz rows")
	writeGeoJSON = flag.Bool("geojson", false, "Write the slice contours as GeoJSON")
	writeRibbon  = flag.Bool("ribbon", false, "Write the toolpath as a ribbon STL file")
	writeZip     = flag.Bool("zip", false, "Write slice preview PNGs to a zip file")
	res          = flag.Int("res", 0, "Voxels along the longest axis for -binvox (default 256)")
	imageSize    = flag.Int("size", 0, "Preview image size in pixels for -zip (default 512)")
)

func main() {
	flag.Parse()

	job := config.Default()
	if *jobFile != "" {
		var err error
		job, err = config.Load(*jobFile)
		check("config.Load: %v", err)
	}
	applyFlags(job)

	opts, err := job.Options()
	check("%v", err)

	if *verbose {
		slicer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	inputs := flag.Args()
	if job.Input != "" {
		inputs = append([]string{job.Input}, inputs...)
	}

	out := job.Output
	if out.CSV == "" && out.Ribbon == "" && out.Binvox == "" && out.Zip == "" && out.GeoJSON == "" &&
		!*writeBinvox && !*writeCSV && !*writeGeoJSON && !*writeRibbon && !*writeZip {
		log.Printf("-binvox, -csv, -geojson, -ribbon, or -zip must be supplied to generate output. Reporting statistics only.")
	}

	for _, arg := range inputs {
		if !strings.HasSuffix(strings.ToLower(arg), ".stl") {
			log.Printf("Skipping non-STL file %q", arg)
			continue
		}
		if !stl.IsValid(arg) {
			log.Printf("Skipping invalid binary STL file %q", arg)
			continue
		}

		log.Printf("Processing STL file %q...", arg)
		mesh, err := stl.ReadFile(arg)
		check("stl.ReadFile: %v", err)

		min, max := mesh.MBB()
		center := mesh.Center()
		log.Printf("Loaded %v triangles", len(mesh.Tris))
		log.Printf("MBB=(%v,%v,%v)-(%v,%v,%v)", min[0], min[1], min[2], max[0], max[1], max[2])
		log.Printf("Model size: %v, center: (%v,%v,%v)", mesh.Size(), center[0], center[1], center[2])

		result, err := slicer.Run(mesh.Tris, float32(job.ToolLength), opts)
		check("slicer.Run: %v", err)
		log.Printf("Generated %v slices", len(result.Heights))
		log.Printf("Generated path with %v points", len(result.Path))
		log.Printf("%v", result.Stats)

		baseName := arg[:len(arg)-len(".stl")]
		outName := func(name string, enabled bool, suffix string) string {
			if name != "" {
				return name
			}
			if enabled {
				return baseName + suffix
			}
			return ""
		}

		if name := outName(out.CSV, *writeCSV, ".csv"); name != "" {
			log.Printf("Writing: %v", name)
			f, err := os.Create(name)
			check("Create: %v", err)
			check("WriteCSV: %v", result.Path.WriteCSV(f))
			check("Close: %v", f.Close())
		}

		if name := outName(out.Ribbon, *writeRibbon, "-path.stl"); name != "" {
			height := float32(out.RibbonHeight)
			if height <= 0 {
				height = float32(job.ToolLength) * slicer.SpacingFactor / 2
			}
			log.Printf("Writing: %v", name)
			n, err := ribbon.WriteFile(name, result.Path, opts.Axis, height)
			check("ribbon.WriteFile: %v", err)
			log.Printf("Wrote %v ribbon triangles", n)
		}

		if name := outName(out.Binvox, *writeBinvox, ".binvox"); name != "" {
			if len(result.Path) == 0 {
				log.Printf("Empty toolpath; skipping %v", name)
			} else {
				n, err := binvox.Write(name, result.Path, out.BinvoxRes)
				check("binvox.Write: %v", err)
				log.Printf("Filled %v voxels", n)
			}
		}

		if name := outName(out.Zip, *writeZip, ".zip"); name != "" {
			log.Printf("Writing: %v", name)
			zopts := zipper.DefaultOptions
			zopts.Width, zopts.Height = out.ImageSize, out.ImageSize
			n, err := zipper.Slice(name, result.Layers, zopts)
			check("zipper.Slice: %v", err)
			log.Printf("Wrote %v slice images", n)
		}

		if name := outName(out.GeoJSON, *writeGeoJSON, ".geojson"); name != "" {
			log.Printf("Writing: %v", name)
			f, err := os.Create(name)
			check("Create: %v", err)
			check("features.Write: %v", features.Write(f, result.Layers))
			check("Close: %v", f.Close())
		}
	}

	log.Println("Done.")
}

// applyFlags copies every flag set on the command line into job.
func applyFlags(job *config.Job) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tool":
			job.ToolLength = *toolLength
		case "axis":
			job.Axis = *axis
		case "overshoot":
			job.Overshoot = *overshoot
		case "weighting":
			job.Weighting = *weighting
		case "drop":
			job.DropDegenerate = *drop
		case "workers":
			job.Workers = *workers
		case "max":
			job.MaxSlices = *maxSlices
		case "res":
			job.Output.BinvoxRes = *res
		case "size":
			job.Output.ImageSize = *imageSize
		}
	})
}

func check(fmtStr string, args ...interface{}) {
	err := args[len(args)-1]
	if err != nil {
		log.Fatalf(fmtStr, args...)
	}
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] file.stl ...\n", os.Args[0])
		flag.PrintDefaults()
	}
}
