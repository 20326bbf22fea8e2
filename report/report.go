// Package report holds per-source percolation results and renders them.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat indicates a renderer name that is not registered.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Report is the outcome of processing one input source.
// MaxComponentSize is the legacy "depth" figure: the size of the largest
// union-find tree observed, not a graph depth.
type Report struct {
	Source           string        `json:"source" toml:"source" yaml:"source"`
	SideLength       int           `json:"side_length" toml:"side_length" yaml:"side_length"`
	MaxComponentSize int           `json:"max_component_size" toml:"max_component_size" yaml:"max_component_size"`
	Percolates       bool          `json:"percolates" toml:"percolates" yaml:"percolates"`
	OpenSites        int           `json:"open_sites" toml:"open_sites" yaml:"open_sites"`
	Requests         int           `json:"requests" toml:"requests" yaml:"requests"`
	OutOfRange       int           `json:"out_of_range,omitempty" toml:"out_of_range,omitempty" yaml:"out_of_range,omitempty"`
	SkippedZeros     int           `json:"skipped_zeros,omitempty" toml:"skipped_zeros,omitempty" yaml:"skipped_zeros,omitempty"`
	Duration         time.Duration `json:"-" toml:"-" yaml:"-"`
	Err              error         `json:"-" toml:"-" yaml:"-"`
}

// Failed reports whether the source could not be processed.
func (r Report) Failed() bool {
	return r.Err != nil
}

// record is the serializable form of Report: durations become
// milliseconds and errors become text.
type record struct {
	Report     `yaml:",inline"`
	DurationMs int64  `json:"duration_ms" toml:"duration_ms" yaml:"duration_ms"`
	Error      string `json:"error,omitempty" toml:"error,omitempty" yaml:"error,omitempty"`
}

func toRecords(reports []Report) []record {
	out := make([]record, len(reports))
	for i, r := range reports {
		out[i] = record{Report: r, DurationMs: r.Duration.Milliseconds()}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	return out
}

// Write renders reports to w in the named format.
func Write(w io.Writer, format string, reports []Report) error {
	switch format {
	case FormatText:
		return writeText(w, reports)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(reports))
	case FormatTOML:
		doc := struct {
			Report []record `toml:"report"`
		}{Report: toRecords(reports)}
		return toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toRecords(reports)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Known reports whether format names a renderer.
func Known(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatTOML, FormatYAML:
		return true
	}
	return false
}

// writeText prints the classic block per source followed by a blank line.
func writeText(w io.Writer, reports []Report) error {
	for _, r := range reports {
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(w, "file: %s\nerror: %v\n\n", r.Source, r.Err)
		} else {
			_, err = fmt.Fprintf(w, "file: %s\nside length: %d\ndepth: %d\npercolates: %t\n\n",
				r.Source, r.SideLength, r.MaxComponentSize, r.Percolates)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
