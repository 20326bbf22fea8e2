package sitefile

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"

	"github.com/katalvlaran/percolation/percolation"
)

// Parser reads input sources.
type Parser struct {
	parser *participle.Parser[stream]
}

// NewParser creates a new Parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[stream](
		participle.Lexer(siteLexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a source from a reader. name labels the source in errors
// and in the returned Source.
func (p *Parser) Parse(name string, r io.Reader) (*Source, error) {
	st, err := p.parser.Parse(name, r)
	return finish(name, st, err)
}

// ParseString parses a source held in memory.
func (p *Parser) ParseString(name, input string) (*Source, error) {
	st, err := p.parser.ParseString(name, input)
	return finish(name, st, err)
}

// ParseFile parses the source stored at path.
func (p *Parser) ParseFile(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(path, file)
}

// finish converts the token run into a Source, applying the lone-zero rule.
func finish(name string, st *stream, err error) (*Source, error) {
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if st == nil || len(st.Tokens) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyInput)
	}

	vals := make([]int, len(st.Tokens))
	for i, tok := range st.Tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%s: token %d: %w", name, i+1, err)
		}
		vals[i] = v
	}

	src := &Source{Name: name, SideLength: vals[0]}
	vals = vals[1:]
	for i := 0; i < len(vals); {
		if vals[i] == 0 {
			src.SkippedZeros++
			i++
			continue
		}
		if i+1 >= len(vals) {
			return nil, fmt.Errorf("%s: %w (row %d)", name, ErrDanglingRow, vals[i])
		}
		src.Requests = append(src.Requests, percolation.Site{Row: vals[i], Col: vals[i+1]})
		i += 2
	}
	return src, nil
}
