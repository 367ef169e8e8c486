package simulate

import (
	"fmt"

	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/sim"
)

// frame tracks one function body's (or one global initializer's)
// variable bindings while it is being lowered: which *ast.Variable maps
// to which argument index or local slot (spec §4.4's prologue,
// generalized to per-register slots per sim.Frame's doc comment).
type frame struct {
	*lowering
	fn       *ast.Function
	args     map[*ast.Variable]int
	locals   map[*ast.Variable]int
	nextSlot int
}

// newFunctionFrame seeds arg bindings from fn's declared parameter
// order; locals are bound lazily, the first time lower() encounters the
// Let or For that declares them — every declaration necessarily precedes
// its uses in a well-formed tree, so a single forward pass suffices
// (spec §9, "single dispatch point" rationale generalized to allocation).
func (l *lowering) newFunctionFrame(fn *ast.Function) *frame {
	fr := &frame{lowering: l, fn: fn, args: map[*ast.Variable]int{}, locals: map[*ast.Variable]int{}}
	for i, v := range fn.Arguments {
		fr.args[v] = i
	}
	return fr
}

// newGlobalFrame lowers a global initializer, which may reference other
// globals (already index-assigned by the time Lower reaches
// initializers) but never locals or arguments.
func (l *lowering) newGlobalFrame() *frame {
	return &frame{lowering: l, args: map[*ast.Variable]int{}, locals: map[*ast.Variable]int{}}
}

// declareLocal assigns v its own frame slot, never reused across
// scopes — simpler than a scope-popping allocator and still bounded,
// since a function's total local count is fixed at lowering time.
func (fr *frame) declareLocal(v *ast.Variable) int {
	slot := fr.nextSlot
	fr.nextSlot++
	fr.locals[v] = slot
	return slot
}

// resolveVar returns the LValue a VariableRef (or any other reference to
// v) should lower to: a global slot, the enclosing function's argument,
// or a previously declared local.
func (fr *frame) resolveVar(v *ast.Variable) (sim.LValue, error) {
	if idx, ok := fr.globals[v]; ok {
		return &sim.GlobalRef{Index: idx}, nil
	}
	if idx, ok := fr.args[v]; ok {
		return &sim.ArgRef{Index: idx}, nil
	}
	if idx, ok := fr.locals[v]; ok {
		return &sim.LocalRef{Offset: idx}, nil
	}
	return nil, fmt.Errorf("variable %q has no assigned storage (lowered out of declaration order?)", v.Name)
}
