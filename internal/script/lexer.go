// Package script parses and runs construction scripts: plain text files
// whose statements map one to one onto the engine's input events.
//
//	# a triangle with its circumcircle construction
//	tool triangle
//	click 0 0
//	click 100 0
//	click 0 80
//	set snapToGrid on
//	tool perpendicular-bisector
//	click 0 0; click 100 0
package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes construction scripts. Keywords are plain identifiers
// matched case-insensitively by the grammar.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_-]*`},
	{Name: "Punct", Pattern: `[,;]`},
})
