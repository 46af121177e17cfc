package stl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrTriangleCount is returned when a header announces an implausible
	// number of triangles.
	ErrTriangleCount = errors.New("implausible triangle count")

	// ErrTruncated is returned when the file ends before all announced
	// triangles were read.
	ErrTruncated = errors.New("truncated triangle data")
)

func readHeader(r io.Reader) (*fileHeader, error) {
	h := &fileHeader{}
	if err := binary.Read(r, binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if h.Count < 1 || h.Count > MaxTriangles {
		return h, fmt.Errorf("%w: %v (want 1..%v)", ErrTriangleCount, h.Count, MaxTriangles)
	}
	return h, nil
}

// Probe reads only the header from r and returns the announced triangle count.
func Probe(r io.Reader) (uint32, error) {
	h, err := readHeader(r)
	if err != nil {
		if h != nil {
			return h.Count, err
		}
		return 0, err
	}
	return h.Count, nil
}

// IsValid reports whether filename can be opened and announces a plausible
// number of triangles. The triangle data itself is not read.
func IsValid(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		return false
	}
	defer f.Close()
	_, err = Probe(f)
	return err == nil
}

// Read decodes a binary STL stream.
func Read(r io.Reader) (*Mesh, error) {
	br := bufio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	m := &Mesh{Header: h.Label, Tris: make([]Tri, h.Count)}
	if err := binary.Read(br, binary.LittleEndian, m.Tris); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: want %v triangles", ErrTruncated, h.Count)
		}
		return nil, fmt.Errorf("read triangles: %w", err)
	}
	return m, nil
}

// ReadFile decodes the binary STL file filename.
func ReadFile(filename string) (*Mesh, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return m, nil
}
