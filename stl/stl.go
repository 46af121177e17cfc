// Package stl reads binary STL files and provides a streaming binary STL
// file writer.
package stl

const (
	headerSize = 80
	bufSize    = 10000

	// MaxTriangles is the largest triangle count accepted as plausible.
	MaxTriangles = 5000000
)

// Tri represents an STL triangle.
type Tri struct {
	// Normal plus three vertex triplets: [3]float{x,y,z}
	N, V1, V2, V3 [3]float32
	_             uint16 // unused attribute byte count
}

// fileHeader is the fixed-size preamble of a binary STL file.
type fileHeader struct {
	Label [headerSize]byte
	Count uint32
}

// Mesh is a decoded binary STL file.
type Mesh struct {
	Header [headerSize]byte
	Tris   []Tri
}

// MBB returns the minimum bounding box of the mesh.
// An empty mesh has a zero-sized box at the origin.
func (m *Mesh) MBB() (min, max [3]float32) {
	if len(m.Tris) == 0 {
		return min, max
	}
	min, max = m.Tris[0].V1, m.Tris[0].V1
	for i := range m.Tris {
		t := &m.Tris[i]
		for _, v := range [3][3]float32{t.V1, t.V2, t.V3} {
			for j := 0; j < 3; j++ {
				if v[j] < min[j] {
					min[j] = v[j]
				}
				if v[j] > max[j] {
					max[j] = v[j]
				}
			}
		}
	}
	return min, max
}

// Size returns the largest edge of the bounding box.
func (m *Mesh) Size() float32 {
	min, max := m.MBB()
	var size float32
	for i := 0; i < 3; i++ {
		if d := max[i] - min[i]; d > size {
			size = d
		}
	}
	return size
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() [3]float32 {
	min, max := m.MBB()
	return [3]float32{
		0.5 * (min[0] + max[0]),
		0.5 * (min[1] + max[1]),
		0.5 * (min[2] + max[2]),
	}
}
