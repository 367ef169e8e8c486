package errcat

import (
	"fmt"
	"strings"

	"github.com/dascript-lang/dascript/internal/source"
)

// StackFrame is one frame of a runtime call stack, captured when a throw
// propagates so the host can report where it happened.
type StackFrame struct {
	Function string
	Pos      source.Position
}

func (f StackFrame) String() string {
	if !f.Pos.IsValid() {
		return f.Function
	}
	return fmt.Sprintf("%s [%s]", f.Function, f.Pos.String())
}

// StackTrace is a complete call stack, oldest frame first.
type StackTrace []StackFrame

func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	lines := make([]string, len(st))
	for i, f := range st {
		lines[i] = f.String()
	}
	return strings.Join(lines, "\n")
}
