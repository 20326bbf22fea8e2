package sitefile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// siteLexer tokenizes input sources: signed integers, '#' comments and whitespace.
var siteLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Integer", Pattern: `[-+]?[0-9]+`},
})
