package ply

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// Magic is the first header line of every PLY file
	Magic = "ply"

	// FormatBinaryLittleEndian is the only body encoding the Reader decodes
	FormatBinaryLittleEndian = "binary_little_endian"

	headerEnd = "end_header"
)

var (
	// ErrNotPLY is returned when the first line of the input is not the PLY magic
	ErrNotPLY = errors.New("not a PLY file")
	// ErrHeaderTruncated is returned when the input ends before end_header
	ErrHeaderTruncated = errors.New("header ends before end_header")
	// ErrUnsupportedFormat is returned for any body encoding other than binary_little_endian
	ErrUnsupportedFormat = errors.New("unsupported format")

	errNonASCII = errors.New("non-ASCII byte in header")
)

// HeaderError describes a header line that could not be interpreted
type HeaderError struct {
	Line int
	Text string
	Err  error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("header line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}

// Header holds the parts of a PLY header the analyzer consumes
type Header struct {
	// Format is the value of the "format" line, e.g. "binary_little_endian 1.0".
	// ReadHeader rejects any encoding other than binary_little_endian.
	Format string
	// VertexCount is the count from the last "element vertex N" line
	VertexCount int
	// HasVertexElement is false when no "element vertex" line was present
	HasVertexElement bool
	// Length is the size of the header in bytes, including the end_header line
	Length int64
}

// ReadHeader consumes the header up to and including the end_header line.
// It returns ErrNotPLY if the first line is not the PLY magic.
func (r *Reader) ReadHeader() (*Header, error) {
	line, err := r.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if strings.TrimSpace(line) != Magic {
		return nil, ErrNotPLY
	}

	header := &Header{}
	for lineNo := 2; ; lineNo++ {
		raw, readErr := r.readLine()
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("failed to read header line %d: %w", lineNo, readErr)
		}

		line := strings.TrimSpace(raw)
		if !isASCII(line) {
			return nil, &HeaderError{Line: lineNo, Text: line, Err: errNonASCII}
		}
		if line == headerEnd {
			break
		}
		if err := header.parseLine(lineNo, line); err != nil {
			return nil, err
		}
		if readErr != nil {
			return nil, ErrHeaderTruncated
		}
	}

	header.Length = r.offset
	return header, nil
}

func (h *Header) parseLine(lineNo int, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "format":
		h.Format = strings.Join(fields[1:], " ")
		if len(fields) < 2 || fields[1] != FormatBinaryLittleEndian {
			return &HeaderError{Line: lineNo, Text: line, Err: fmt.Errorf("%w %q", ErrUnsupportedFormat, h.Format)}
		}

	case "element":
		if len(fields) < 2 || fields[1] != "vertex" {
			return nil
		}
		if len(fields) < 3 {
			return &HeaderError{Line: lineNo, Text: line, Err: errors.New("missing vertex count")}
		}
		count, err := strconv.Atoi(fields[2])
		if err != nil {
			return &HeaderError{Line: lineNo, Text: line, Err: err}
		}
		if count < 0 {
			return &HeaderError{Line: lineNo, Text: line, Err: fmt.Errorf("negative vertex count %d", count)}
		}
		h.VertexCount = count
		h.HasVertexElement = true
	}

	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
