// Package source carries source-location information through the AST and
// diagnostics. The lexer and parser that produce these positions are
// external collaborators (see pkg/dascript) and are not part of this
// module; Position is the minimal shared value type both sides need.
package source

import "fmt"

// Position identifies a single point in a source file.
type Position struct {
	File   string
	Line   int
	Column int
	Offset int
}

// String renders "file:line:column", or "line:column" when File is empty.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsValid reports whether the position carries real line/column info.
func (p Position) IsValid() bool {
	return p.Line > 0
}
