// Package zipper writes a ZIP file of per-slice contour previews.
//
// Every non-empty slice becomes a PNG image with the cross-section filled
// in white on black and the toolpath start marked in red. A manifest.xml
// lists the slices that were written.
package zipper

import (
	"archive/zip"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/gmlewis/stl-toolpath/slicer"
	"github.com/gogpu/gg"
)

// Options sets the preview image size in pixels.
type Options struct {
	Width, Height int
	Margin        int
}

// DefaultOptions renders 512x512 previews with a 16 pixel margin.
var DefaultOptions = Options{Width: 512, Height: 512, Margin: 16}

// Slice writes the previews for layers to a new ZIP file.
func Slice(zipName string, layers []slicer.Layer, opts Options) (int, error) {
	zf, err := os.Create(zipName)
	if err != nil {
		return 0, fmt.Errorf("Create: %v", err)
	}
	n, err := Write(zf, layers, opts)
	if err != nil {
		zf.Close()
		return n, err
	}
	if err := zf.Close(); err != nil {
		return n, fmt.Errorf("Unable to close ZIP file: %v", err)
	}
	return n, nil
}

// Write writes the ZIP archive to w and returns the number of slice images
// it contains.
func Write(w io.Writer, layers []slicer.Layer, opts Options) (int, error) {
	if opts.Width <= 2*opts.Margin || opts.Height <= 2*opts.Margin {
		return 0, fmt.Errorf("image size %vx%v leaves no room inside margin %v", opts.Width, opts.Height, opts.Margin)
	}

	zp := &zipper{w: zip.NewWriter(w), opts: opts, now: time.Now()}
	zp.fit(layers)

	var written []*slicer.Layer
	for i := range layers {
		l := &layers[i]
		if l.Empty() || l.Dropped {
			continue
		}
		if err := zp.writeSlice(l); err != nil {
			return len(written), err
		}
		written = append(written, l)
	}

	if err := zp.writeManifest(written); err != nil {
		return len(written), err
	}
	if err := zp.w.Close(); err != nil {
		return len(written), fmt.Errorf("Unable to close ZIP writer: %v", err)
	}
	return len(written), nil
}

// zipper renders layers into a ZIP writer using one transform for all
// slices so they line up when flipped through.
type zipper struct {
	w    *zip.Writer
	opts Options
	now  time.Time

	minU, minV float64
	scale      float64
}

func (zp *zipper) fit(layers []slicer.Layer) {
	minU, minV := math.Inf(1), math.Inf(1)
	maxU, maxV := math.Inf(-1), math.Inf(-1)
	for i := range layers {
		if layers[i].Dropped {
			continue
		}
		for _, p := range layers[i].Contour {
			minU = math.Min(minU, float64(p[0]))
			minV = math.Min(minV, float64(p[1]))
			maxU = math.Max(maxU, float64(p[0]))
			maxV = math.Max(maxV, float64(p[1]))
		}
	}
	if math.IsInf(minU, 1) {
		minU, minV, maxU, maxV = 0, 0, 1, 1
	}

	w := float64(zp.opts.Width - 2*zp.opts.Margin)
	h := float64(zp.opts.Height - 2*zp.opts.Margin)
	du, dv := maxU-minU, maxV-minV
	switch {
	case du <= slicer.Epsilon && dv <= slicer.Epsilon:
		zp.scale = 1
	case du <= slicer.Epsilon:
		zp.scale = h / dv
	case dv <= slicer.Epsilon:
		zp.scale = w / du
	default:
		zp.scale = math.Min(w/du, h/dv)
	}
	zp.minU, zp.minV = minU, minV
}

// pixel maps a contour point to image coordinates with v pointing up.
func (zp *zipper) pixel(u, v float32) (float64, float64) {
	x := float64(zp.opts.Margin) + (float64(u)-zp.minU)*zp.scale
	y := float64(zp.opts.Height-zp.opts.Margin) - (float64(v)-zp.minV)*zp.scale
	return x, y
}

func sliceName(index int) string {
	return fmt.Sprintf("slice%04d.png", index)
}

func (zp *zipper) writeSlice(l *slicer.Layer) error {
	dc := gg.NewContext(zp.opts.Width, zp.opts.Height)
	defer dc.Close()
	dc.ClearWithColor(gg.Black)

	if len(l.Contour) >= 3 {
		for i, p := range l.Contour {
			x, y := zp.pixel(p[0], p[1])
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetRGB(1, 1, 1)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("Fill: %v", err)
		}
	} else {
		dc.SetRGB(1, 1, 1)
		dc.SetLineWidth(2)
		for i, p := range l.Contour {
			x, y := zp.pixel(p[0], p[1])
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("Stroke: %v", err)
		}
	}

	x, y := zp.pixel(l.Contour[0][0], l.Contour[0][1])
	dc.SetRGB(1, 0, 0)
	dc.DrawCircle(x, y, 3)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("Fill: %v", err)
	}

	fh := &zip.FileHeader{
		Name:     sliceName(l.Index),
		Comment:  fmt.Sprintf("z=%0.2f", l.Z),
		Modified: zp.now,
	}
	f, err := zp.w.CreateHeader(fh)
	if err != nil {
		return fmt.Errorf("Unable to create ZIP file %q: %v", fh.Name, err)
	}
	if err := dc.EncodePNG(f); err != nil {
		return fmt.Errorf("PNG encode: %v", err)
	}
	return nil
}

func (zp *zipper) writeManifest(layers []*slicer.Layer) error {
	fh := &zip.FileHeader{
		Name:     "manifest.xml",
		Modified: zp.now,
	}
	f, err := zp.w.CreateHeader(fh)
	if err != nil {
		return fmt.Errorf("Unable to create ZIP file %q: %v", fh.Name, err)
	}

	axis := slicer.AxisZ
	if len(layers) > 0 {
		axis = layers[0].Axis
	}
	if _, err := fmt.Fprintf(f, manifestHeader, len(layers), axis, zp.opts.Width, zp.opts.Height, 1/zp.scale); err != nil {
		return fmt.Errorf("manifest: %v", err)
	}
	for _, l := range layers {
		if _, err := fmt.Fprintf(f, manifestLayer, l.Index, l.Z, len(l.Contour), l.Normal[0], l.Normal[1], l.Normal[2], sliceName(l.Index)); err != nil {
			return fmt.Errorf("manifest: %v", err)
		}
	}
	_, err = io.WriteString(f, manifestFooter)
	return err
}

var manifestHeader = `<?xml version="1.0"?>

<toolpath version="1.0" slices="%v" axis="%v"
   imageWidth="%v" imageHeight="%v" pixelSize="%v" >

    <layers>
`

var manifestLayer = `        <layer index="%v" z="%v" points="%v" normal="%v %v %v" image=%q />
`

var manifestFooter = `    </layers>
</toolpath>
`
