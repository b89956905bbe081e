package ply_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/goply/internal/plytest"
	"github.com/philipparndt/goply/pkg/geometry"
	"github.com/philipparndt/goply/pkg/ply"
)

func TestReadVertex(t *testing.T) {
	vertices := []ply.Vertex{
		{X: 0, Y: 0, Z: 0, R: 255, G: 0, B: 0},
		{X: 10, Y: 20, Z: 30, R: 0, G: 255, B: 0},
		{X: -5, Y: 2, Z: 100, R: 0, G: 0, B: 255},
	}
	r := ply.NewReader(bytes.NewReader(plytest.Build(vertices)))

	h, err := r.ReadHeader()
	require.NoError(t, err)
	require.Equal(t, 3, h.VertexCount)

	for i, expected := range vertices {
		var v ply.Vertex
		require.NoError(t, r.ReadVertex(&v))
		assert.Equal(t, expected, v)
		assert.Equal(t, h.Length+int64(i+1)*ply.RecordSize, r.Offset(), "offset after vertex %d", i)
	}

	var v ply.Vertex
	assert.ErrorIs(t, r.ReadVertex(&v), io.EOF)
}

func TestReadVertexLayout(t *testing.T) {
	// x = 1.0, y = -2.5, z = 0.5 little-endian, then r, g, b
	record := []byte{
		0x00, 0x00, 0x80, 0x3f,
		0x00, 0x00, 0x20, 0xc0,
		0x00, 0x00, 0x00, 0x3f,
		1, 2, 3,
	}
	r := ply.NewReader(bytes.NewReader(record))

	var v ply.Vertex
	require.NoError(t, r.ReadVertex(&v))
	assert.Equal(t, ply.Vertex{X: 1, Y: -2.5, Z: 0.5, R: 1, G: 2, B: 3}, v)
	assert.Equal(t, geometry.NewVector3(1, -2.5, 0.5), v.Position())
	assert.Equal(t, int64(ply.RecordSize), r.Offset())
}

func TestReadVertexTruncated(t *testing.T) {
	data := plytest.Build(plytest.Grid(4))
	data = data[:len(data)-1]
	r := ply.NewReader(bytes.NewReader(data))

	h, err := r.ReadHeader()
	require.NoError(t, err)

	var seen int
	err = r.EachVertex(h.VertexCount, func(i int, v *ply.Vertex) {
		seen++
	})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, 3, seen)
}

func TestEachVertex(t *testing.T) {
	vertices := plytest.Grid(5)
	r := ply.NewReader(bytes.NewReader(plytest.Build(vertices)))

	h, err := r.ReadHeader()
	require.NoError(t, err)

	var got []ply.Vertex
	require.NoError(t, r.EachVertex(h.VertexCount, func(i int, v *ply.Vertex) {
		assert.Equal(t, len(got), i)
		got = append(got, *v)
	}))
	assert.Equal(t, vertices, got)
	assert.Equal(t, h.Length+5*ply.RecordSize, r.Offset())
}
