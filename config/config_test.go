package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gmlewis/stl-toolpath/slicer"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *Job
		opts slicer.Options
	}{
		{
			name: "defaults",
			want: Default(),
		},
		{
			name: "full job",
			in: `
input = "part.stl"
tool_length = 0.5
axis = "X"
overshoot = "clamp"
weighting = "facet"
drop_degenerate = true
workers = 4
max_slices = 100

[output]
csv = "part.csv"
zip = "part.zip"
binvox_res = 64
`,
			want: &Job{
				Input:          "part.stl",
				ToolLength:     0.5,
				Axis:           "X",
				Overshoot:      "clamp",
				Weighting:      "facet",
				DropDegenerate: true,
				Workers:        4,
				MaxSlices:      100,
				Output: Output{
					CSV:       "part.csv",
					Zip:       "part.zip",
					BinvoxRes: 64,
					ImageSize: 512,
				},
			},
			opts: slicer.Options{
				Axis:           slicer.AxisX,
				Overshoot:      slicer.OvershootClamp,
				Weighting:      slicer.WeightPerFacet,
				DropDegenerate: true,
				Workers:        4,
				MaxSlices:      100,
			},
		},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode = %+v, want %+v", got, tt.want)
			}
			opts, err := got.Options()
			if err != nil {
				t.Fatalf("Options: %v", err)
			}
			if opts != tt.opts {
				t.Errorf("Options = %+v, want %+v", opts, tt.opts)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "unknown key", in: `tool_lenght = 1`},
		{name: "unknown output key", in: "[output]\nstep = \"x.step\""},
		{name: "bad axis", in: `axis = "w"`},
		{name: "bad overshoot", in: `overshoot = "wrap"`},
		{name: "bad weighting", in: `weighting = "area"`},
		{name: "negative workers", in: `workers = -2`},
		{name: "wrong type", in: `tool_length = "long"`},
		{name: "syntax", in: `tool_length = `},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			if j, err := Decode(strings.NewReader(tt.in)); err == nil {
				t.Errorf("Decode = %+v, want error", j)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.toml")
	if err := os.WriteFile(path, []byte("input = \"cube.stl\"\ntool_length = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	j, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if j.Input != "cube.stl" || j.ToolLength != 2 {
		t.Errorf("Load = %+v", j)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load(missing) succeeded")
	}
}
