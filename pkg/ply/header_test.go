package ply_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/goply/internal/plytest"
	"github.com/philipparndt/goply/pkg/ply"
)

func readHeader(input string) (*ply.Header, error) {
	return ply.NewReader(strings.NewReader(input)).ReadHeader()
}

func TestReadHeader(t *testing.T) {
	input := plytest.Header(12345)

	h, err := readHeader(input)
	require.NoError(t, err)

	assert.Equal(t, 12345, h.VertexCount)
	assert.True(t, h.HasVertexElement)
	assert.Equal(t, "binary_little_endian 1.0", h.Format)
	assert.Equal(t, int64(len(input)), h.Length)
}

func TestReadHeaderVariants(t *testing.T) {
	testCases := map[string]struct {
		input     string
		count     int
		hasVertex bool
	}{
		"CRLF": {
			input:     "ply\r\nelement vertex 7\r\nend_header\r\n",
			count:     7,
			hasVertex: true,
		},
		"LastVertexElementWins": {
			input:     "ply\nelement vertex 3\nelement vertex 9\nend_header\n",
			count:     9,
			hasVertex: true,
		},
		"OtherElementsIgnored": {
			input:     "ply\nelement face 40\nelement vertex 2\nproperty list uchar int vertex_indices\nend_header\n",
			count:     2,
			hasVertex: true,
		},
		"NoVertexElement": {
			input: "ply\nformat binary_little_endian 1.0\nend_header\n",
		},
		"PaddedLines": {
			input:     "  ply  \n\telement   vertex   4  \n  end_header \n",
			count:     4,
			hasVertex: true,
		},
		"EndHeaderWithoutNewline": {
			input:     "ply\nelement vertex 1\nend_header",
			count:     1,
			hasVertex: true,
		},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			h, err := readHeader(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.count, h.VertexCount)
			assert.Equal(t, tt.hasVertex, h.HasVertexElement)
			assert.Equal(t, int64(len(tt.input)), h.Length)
		})
	}
}

func TestReadHeaderNotPLY(t *testing.T) {
	for _, input := range []string{"", "solid cube\n", "plyx\nend_header\n", "format ascii 1.0\nply\n"} {
		t.Run(strconv.Quote(input), func(t *testing.T) {
			_, err := readHeader(input)
			assert.ErrorIs(t, err, ply.ErrNotPLY)
		})
	}
}

func TestReadHeaderTruncated(t *testing.T) {
	for _, input := range []string{"ply\n", "ply\nelement vertex 3\n", "ply\nelement vertex 3"} {
		t.Run(strconv.Quote(input), func(t *testing.T) {
			_, err := readHeader(input)
			assert.ErrorIs(t, err, ply.ErrHeaderTruncated)
		})
	}
}

func TestReadHeaderBadCount(t *testing.T) {
	testCases := map[string]string{
		"NotANumber": "ply\nelement vertex many\nend_header\n",
		"Float":      "ply\nelement vertex 1.5\nend_header\n",
		"Negative":   "ply\nelement vertex -2\nend_header\n",
		"Missing":    "ply\nelement vertex\nend_header\n",
	}

	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := readHeader(input)
			require.Error(t, err)

			var headerErr *ply.HeaderError
			require.True(t, errors.As(err, &headerErr), "expected HeaderError, got %T", err)
			assert.Equal(t, 2, headerErr.Line)
		})
	}
}

func TestReadHeaderUnsupportedFormat(t *testing.T) {
	testCases := map[string]string{
		"ASCII":     "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nend_header\n0.5\n1.5\n",
		"BigEndian": "ply\nformat binary_big_endian 1.0\nelement vertex 2\nend_header\n",
		"Empty":     "ply\nformat\nelement vertex 2\nend_header\n",
	}

	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := readHeader(input)
			require.ErrorIs(t, err, ply.ErrUnsupportedFormat)

			var headerErr *ply.HeaderError
			require.True(t, errors.As(err, &headerErr), "expected HeaderError, got %T", err)
			assert.Equal(t, 2, headerErr.Line)
		})
	}
}

func TestReadHeaderNonASCII(t *testing.T) {
	input := "ply\ncomment scanned by caf\xc3\xa9\nelement vertex 1\nend_header\n"

	_, err := readHeader(input)
	require.Error(t, err)

	var headerErr *ply.HeaderError
	require.True(t, errors.As(err, &headerErr), "expected HeaderError, got %T", err)
	assert.Equal(t, 2, headerErr.Line)
}
