package sitefile

import (
	"errors"

	"github.com/katalvlaran/percolation/percolation"
)

var (
	// ErrEmptyInput indicates a source contains no integers at all.
	ErrEmptyInput = errors.New("sitefile: input has no side length")
	// ErrDanglingRow indicates the stream ended after a row with no column.
	ErrDanglingRow = errors.New("sitefile: row value without a column")
)

// Source is one parsed input.
type Source struct {
	// Name identifies the source, usually its file path.
	Name string
	// SideLength is the first integer of the input.
	SideLength int
	// Requests lists the sites to open, in input order.
	Requests []percolation.Site
	// SkippedZeros counts lone 0 tokens dropped from row position.
	SkippedZeros int
}

// Grid builds a fresh grid for the source and replays every request.
func (s *Source) Grid(opts ...percolation.Option) (*percolation.Grid, error) {
	g, err := percolation.New(s.SideLength, opts...)
	if err != nil {
		return nil, err
	}
	g.OpenAll(s.Requests)
	return g, nil
}

// OutOfRange returns the requests that fall outside an n×n grid.
func (s *Source) OutOfRange() []percolation.Site {
	var out []percolation.Site
	for _, r := range s.Requests {
		if r.Row < 1 || r.Row > s.SideLength || r.Col < 1 || r.Col > s.SideLength {
			out = append(out, r)
		}
	}
	return out
}

// stream is the participle grammar: a flat run of integer tokens. The side
// length and the pairing are resolved after parsing since the lone-zero
// rule depends on position in the stream, not on token shape. Tokens are
// kept as text so leading zeros stay decimal.
type stream struct {
	Tokens []string `parser:"@Integer*"`
}
