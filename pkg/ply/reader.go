package ply

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/philipparndt/goply/pkg/geometry"
)

// RecordSize is the byte width of one vertex record: float32 x, y, z and uint8 r, g, b
const RecordSize = 4 + 4 + 4 + 1 + 1 + 1

// Vertex is one binary little-endian vertex record
type Vertex struct {
	X, Y, Z float32
	R, G, B uint8
}

// Position returns the vertex coordinates
func (v Vertex) Position() geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}

// Reader reads a PLY header followed by fixed-size vertex records.
// Header lines and records are read through the same buffer, so the
// binary body starts exactly after the end_header line.
type Reader struct {
	r      *bufio.Reader
	offset int64
	buf    [RecordSize]byte
}

// NewReader creates a Reader
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Offset returns the number of bytes consumed so far
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadVertex reads the next record into v.
// A record cut short by the end of input yields io.ErrUnexpectedEOF.
func (r *Reader) ReadVertex(v *Vertex) error {
	n, err := io.ReadFull(r.r, r.buf[:])
	r.offset += int64(n)
	if err != nil {
		return err
	}

	b := r.buf[:]
	v.X = math.Float32frombits(binary.LittleEndian.Uint32(b[0:4]))
	v.Y = math.Float32frombits(binary.LittleEndian.Uint32(b[4:8]))
	v.Z = math.Float32frombits(binary.LittleEndian.Uint32(b[8:12]))
	v.R = b[12]
	v.G = b[13]
	v.B = b[14]
	return nil
}

// EachVertex reads count records, calling fn with each index and record.
// The record passed to fn is reused between calls.
func (r *Reader) EachVertex(count int, fn func(i int, v *Vertex)) error {
	var v Vertex
	for i := 0; i < count; i++ {
		if err := r.ReadVertex(&v); err != nil {
			return fmt.Errorf("failed to read vertex %d of %d: %w", i, count, err)
		}
		fn(i, &v)
	}
	return nil
}

func (r *Reader) readLine() (string, error) {
	line, err := r.r.ReadString('\n')
	r.offset += int64(len(line))
	return line, err
}
