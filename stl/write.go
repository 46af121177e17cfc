package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"
)

// Client is a streaming binary STL file writer client.
type Client struct {
	wg sync.WaitGroup // ensures file is closed
	ch chan Tri

	mu    sync.RWMutex
	err   error
	count uint32
}

// New creates filename and returns a streaming binary STL writer for it.
// label is stored (truncated to 80 bytes) in the file header.
func New(filename, label string) (*Client, error) {
	out, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	c, err := newClient(out, label)
	if err != nil {
		out.Close()
		return nil, err
	}
	return c, nil
}

func newClient(out writeSeekCloser, label string) (*Client, error) {
	// count will be overwritten on channel close.
	h := &fileHeader{}
	copy(h.Label[:], label)
	if err := binary.Write(out, binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("error writing header: %v", err)
	}

	c := &Client{
		ch: make(chan Tri, bufSize),
	}
	c.start(out)
	return c, nil
}

func (c *Client) start(out writeSeekCloser) {
	c.wg.Add(1)
	go func() {
		count, err := writer(out, c.ch)
		c.mu.Lock()
		c.count = count
		c.err = err
		c.mu.Unlock()
		c.wg.Done()
	}()
}

// Write writes a triangle to the STL file.
func (c *Client) Write(t *Tri) error {
	c.ch <- *t
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Close finalizes the STL file.
func (c *Client) Close() error {
	close(c.ch)
	c.wg.Wait()
	return c.err
}

// Count returns the number of triangles written. It is only meaningful
// after Close.
func (c *Client) Count() uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count
}

type writeSeekCloser interface {
	io.Writer
	io.Seeker
	io.Closer
}

func writer(out writeSeekCloser, ch <-chan Tri) (uint32, error) {
	var count uint32
	for t := range ch {
		if err := binary.Write(out, binary.LittleEndian, &t); err != nil {
			out.Close()
			return count, fmt.Errorf("write triangle %#v: %v", t, err)
		}
		count++
	}

	if _, err := out.Seek(headerSize, io.SeekStart); err != nil {
		out.Close()
		return count, fmt.Errorf("seek: %v", err)
	}

	if err := binary.Write(out, binary.LittleEndian, &count); err != nil {
		out.Close()
		return count, fmt.Errorf("write count %v: %v", count, err)
	}

	return count, out.Close()
}

// Encode writes tris as a complete binary STL stream to w. Unlike Client,
// it does not need to seek because the count is known up front.
func Encode(w io.Writer, label string, tris []Tri) error {
	h := &fileHeader{Count: uint32(len(tris))}
	copy(h.Label[:], label)
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("error writing header: %v", err)
	}
	if err := binary.Write(w, binary.LittleEndian, tris); err != nil {
		return fmt.Errorf("write triangles: %v", err)
	}
	return nil
}
