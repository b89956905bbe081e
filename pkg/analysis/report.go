package analysis

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/goply/pkg/geometry"
	"github.com/philipparndt/goply/pkg/ply"
)

// Report formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// NewReporter returns the reporter for the named format
func NewReporter(format string, w io.Writer) (Reporter, error) {
	switch format {
	case FormatText, "":
		return &TextReporter{W: w}, nil
	case FormatYAML:
		return &YAMLReporter{W: w}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected %s or %s)", format, FormatText, FormatYAML)
	}
}

// FormatFixed renders v with three decimals. Infinities and NaN are spelled
// inf, -inf and nan so an empty box prints the same way as a sampled one.
func FormatFixed(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// TextReporter prints the human readable console report
type TextReporter struct {
	W io.Writer
}

func (t *TextReporter) ReportHeader(h *ply.Header) error {
	_, err := fmt.Fprintf(t.W, "Vertex count: %d\n", h.VertexCount)
	return err
}

func (t *TextReporter) ReportResult(r *Result) error {
	b := r.Bounds
	size := b.Size()
	center := b.Center()

	f := FormatFixed
	_, err := fmt.Fprintf(t.W, "\nBounding Box:\n"+
		"X: %s to %s (width: %s)\n"+
		"Y: %s to %s (height: %s)\n"+
		"Z: %s to %s (depth: %s)\n"+
		"\nCenter: (%s, %s, %s)\n",
		f(b.Min.X), f(b.Max.X), f(size.X),
		f(b.Min.Y), f(b.Max.Y), f(size.Y),
		f(b.Min.Z), f(b.Max.Z), f(size.Z),
		f(center.X), f(center.Y), f(center.Z),
	)
	return err
}

// YAMLReporter writes the whole result as one YAML document once the pass completes
type YAMLReporter struct {
	W io.Writer
}

type yamlAxis struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Extent float64 `yaml:"extent"`
}

type yamlVector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type yamlBox struct {
	X yamlAxis `yaml:"x"`
	Y yamlAxis `yaml:"y"`
	Z yamlAxis `yaml:"z"`
}

type yamlReport struct {
	Format       string     `yaml:"format,omitempty"`
	VertexCount  int        `yaml:"vertex_count"`
	SampleStride int        `yaml:"sample_stride"`
	Sampled      int        `yaml:"sampled"`
	BoundingBox  yamlBox    `yaml:"bounding_box"`
	Diagonal     float64    `yaml:"diagonal"`
	Center       yamlVector `yaml:"center"`
}

func (y *YAMLReporter) ReportHeader(*ply.Header) error {
	return nil
}

func (y *YAMLReporter) ReportResult(r *Result) error {
	report := yamlReport{
		Format:       r.Header.Format,
		VertexCount:  r.VertexCount(),
		SampleStride: r.SampleStride,
		Sampled:      r.Sampled,
		Diagonal:     r.Bounds.Diagonal(),
		Center:       toYAMLVector(r.Bounds.Center()),
	}
	size := r.Bounds.Size()
	report.BoundingBox.X = yamlAxis{Min: r.Bounds.Min.X, Max: r.Bounds.Max.X, Extent: size.X}
	report.BoundingBox.Y = yamlAxis{Min: r.Bounds.Min.Y, Max: r.Bounds.Max.Y, Extent: size.Y}
	report.BoundingBox.Z = yamlAxis{Min: r.Bounds.Min.Z, Max: r.Bounds.Max.Z, Extent: size.Z}

	enc := yaml.NewEncoder(y.W)
	enc.SetIndent(2)
	if err := enc.Encode(&report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

func toYAMLVector(v geometry.Vector3) yamlVector {
	return yamlVector{X: v.X, Y: v.Y, Z: v.Z}
}
