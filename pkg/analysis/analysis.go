package analysis

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/goply/pkg/geometry"
	"github.com/philipparndt/goply/pkg/ply"
)

// DefaultSampleStride is the record interval used for the bounding box
const DefaultSampleStride = 1000

// Options controls the streaming pass
type Options struct {
	// SampleStride selects records whose index is a multiple of it; 1 samples every vertex
	SampleStride int
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{SampleStride: DefaultSampleStride}
}

// Validate checks that the options can drive an analysis
func (o Options) Validate() error {
	if o.SampleStride <= 0 {
		return fmt.Errorf("sample stride must be a positive integer, got %d", o.SampleStride)
	}
	return nil
}

// Result contains the summary of a PLY file
type Result struct {
	Header       *ply.Header
	SampleStride int
	// Sampled is the number of records that contributed to Bounds
	Sampled int
	Bounds  geometry.BoundingBox
}

// VertexCount returns the declared number of vertices
func (r *Result) VertexCount() int {
	return r.Header.VertexCount
}

// Reporter receives the analysis as it progresses.
// ReportHeader is called once the header is parsed, before any record is read.
type Reporter interface {
	ReportHeader(h *ply.Header) error
	ReportResult(r *Result) error
}

// AnalyzeFile opens path and runs Analyze on it
func AnalyzeFile(path string, opts Options, rep Reporter) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Analyze(file, opts, rep)
}

// Analyze parses the header, streams every vertex record and accumulates the
// bounding box over records whose index is a multiple of the sample stride.
// It returns ply.ErrNotPLY without reporting anything when the magic line is wrong.
func Analyze(r io.Reader, opts Options, rep Reporter) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	reader := ply.NewReader(r)
	header, err := reader.ReadHeader()
	if err != nil {
		return nil, err
	}

	if rep != nil {
		if err := rep.ReportHeader(header); err != nil {
			return nil, fmt.Errorf("failed to report header: %w", err)
		}
	}

	result := &Result{
		Header:       header,
		SampleStride: opts.SampleStride,
		Bounds:       geometry.NewBoundingBox(),
	}

	err = reader.EachVertex(header.VertexCount, func(i int, v *ply.Vertex) {
		if i%opts.SampleStride != 0 {
			return
		}
		result.Bounds.Extend(v.Position())
		result.Sampled++
	})
	if err != nil {
		return nil, err
	}

	if rep != nil {
		if err := rep.ReportResult(result); err != nil {
			return nil, fmt.Errorf("failed to report result: %w", err)
		}
	}

	return result, nil
}
