// Package plytest builds synthetic binary PLY files for tests.
package plytest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goply/pkg/ply"
)

// Header returns a binary little-endian header declaring count vertices
func Header(count int) string {
	return fmt.Sprintf(`ply
format binary_little_endian 1.0
comment synthetic
element vertex %d
property float x
property float y
property float z
property uchar red
property uchar green
property uchar blue
end_header
`, count)
}

// Body encodes vertices as contiguous ply.RecordSize (15 byte) records
func Body(vertices []ply.Vertex) []byte {
	var buf bytes.Buffer
	for _, v := range vertices {
		// Writes to a bytes.Buffer cannot fail
		_ = binary.Write(&buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}

// Build returns a complete file with a header matching len(vertices)
func Build(vertices []ply.Vertex) []byte {
	return append([]byte(Header(len(vertices))), Body(vertices)...)
}

// WriteFile writes data to a file in a per-test temporary directory
func WriteFile(t testing.TB, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "model.ply")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// Grid returns n vertices where vertex i sits at (i, 2i, -i)
func Grid(n int) []ply.Vertex {
	vertices := make([]ply.Vertex, n)
	for i := range vertices {
		f := float32(i)
		vertices[i] = ply.Vertex{X: f, Y: 2 * f, Z: -f, R: uint8(i), G: 128, B: 255}
	}
	return vertices
}
