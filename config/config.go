// Package config reads slicing job descriptions from TOML files.
//
// A job file looks like:
//
//	input       = "part.stl"
//	tool_length = 0.5
//	axis        = "z"      # x, y or z
//	overshoot   = "keep"   # keep, drop or clamp
//	weighting   = "crossing"
//	workers     = 4
//
//	[output]
//	csv     = "part.csv"
//	zip     = "part.zip"
//	ribbon  = "part-path.stl"
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/gmlewis/stl-toolpath/slicer"
	"github.com/pelletier/go-toml/v2"
)

// Job describes one slicing run.
type Job struct {
	Input          string  `toml:"input"`
	ToolLength     float64 `toml:"tool_length"`
	Axis           string  `toml:"axis"`
	Overshoot      string  `toml:"overshoot"`
	Weighting      string  `toml:"weighting"`
	DropDegenerate bool    `toml:"drop_degenerate"`
	Workers        int     `toml:"workers"`
	MaxSlices      int     `toml:"max_slices"`

	Output Output `toml:"output"`
}

// Output names the files to write. Empty names are skipped.
type Output struct {
	CSV     string `toml:"csv"`
	Ribbon  string `toml:"ribbon"`
	Binvox  string `toml:"binvox"`
	Zip     string `toml:"zip"`
	GeoJSON string `toml:"geojson"`

	// RibbonHeight is the ribbon wall height; zero means half the slice
	// spacing.
	RibbonHeight float64 `toml:"ribbon_height"`
	// BinvoxRes is the voxel count along the longest axis.
	BinvoxRes int `toml:"binvox_res"`
	// ImageSize is the edge length in pixels of the zip previews.
	ImageSize int `toml:"image_size"`
}

// Default returns the job used when no file is given.
func Default() *Job {
	return &Job{
		ToolLength: 1,
		Axis:       slicer.AxisZ.String(),
		Overshoot:  slicer.OvershootKeep.String(),
		Weighting:  slicer.WeightPerCrossing.String(),
		Output: Output{
			BinvoxRes: 256,
			ImageSize: 512,
		},
	}
}

// Decode reads a job from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (*Job, error) {
	j := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(j); err != nil {
		return nil, fmt.Errorf("decode job: %w", err)
	}
	if _, err := j.Options(); err != nil {
		return nil, err
	}
	return j, nil
}

// Load reads the job file at path.
func Load(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	j, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return j, nil
}

// Options converts the job's slicing settings.
func (j *Job) Options() (slicer.Options, error) {
	var opts slicer.Options
	var err error
	if opts.Axis, err = slicer.ParseAxis(j.Axis); err != nil {
		return opts, err
	}
	if opts.Overshoot, err = slicer.ParseOvershoot(j.Overshoot); err != nil {
		return opts, err
	}
	if opts.Weighting, err = slicer.ParseWeighting(j.Weighting); err != nil {
		return opts, err
	}
	if j.Workers < 0 {
		return opts, fmt.Errorf("workers %v must not be negative", j.Workers)
	}
	if j.MaxSlices < 0 {
		return opts, fmt.Errorf("max_slices %v must not be negative", j.MaxSlices)
	}
	opts.DropDegenerate = j.DropDegenerate
	opts.Workers = j.Workers
	opts.MaxSlices = j.MaxSlices
	return opts, nil
}
