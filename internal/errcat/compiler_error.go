package errcat

import (
	"fmt"
	"strings"

	"github.com/dascript-lang/dascript/internal/source"
)

// CompilerError is one accumulated compile-time diagnostic (spec §7):
// a message, its source location, and its Kind.
type CompilerError struct {
	Message string
	Pos     source.Position
	Kind    Kind
}

// NewCompilerError builds a CompilerError from a Kind and a printf-style
// message template, mirroring the teacher's NewCompilerError.
func NewCompilerError(pos source.Position, kind Kind, format string, args ...any) *CompilerError {
	return &CompilerError{
		Pos:     pos,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format("")
}

// Format renders "<pos>: <kind>: <message>", optionally followed by one
// line of source context and a caret under the error's column
// (sourceLine may be empty).
func (e *CompilerError) Format(sourceLine string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s: %s", e.Pos.String(), e.Kind.String(), e.Message)
	if sourceLine != "" {
		sb.WriteString("\n    ")
		sb.WriteString(sourceLine)
		sb.WriteString("\n    ")
		sb.WriteString(strings.Repeat(" ", max(0, e.Pos.Column-1)))
		sb.WriteString("^")
	}
	return sb.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
