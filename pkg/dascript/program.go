package dascript

import (
	"fmt"
	"strings"

	"github.com/dascript-lang/dascript/internal/builtin"
	"github.com/dascript-lang/dascript/internal/infer"
	"github.com/dascript-lang/dascript/internal/library"
	"github.com/dascript-lang/dascript/internal/simulate"
	"github.com/dascript-lang/dascript/internal/sim"
)

// Program wraps an internal/library.Program: one user module plus the
// built-in modules it searches after its own (spec §3, §6.1).
type Program struct {
	inner *library.Program
	reg   builtin.Registry
}

// NewProgram returns a Program whose user module searches first, then the
// core registered built-in module, then the given extra modules (spec §6.5:
// "at least one built-in module providing numeric types, string,
// pointer, arithmetic and comparison operators").
func NewProgram(userModule *library.Module, extraBuiltins ...*library.Module) *Program {
	core, reg := builtin.NewModule()
	mods := append([]*library.Module{core}, extraBuiltins...)
	return &Program{inner: library.NewProgram(userModule, mods...), reg: reg}
}

// Inner exposes the wrapped *library.Program for callers that need to
// build AST directly against it (e.g. a Parser implementation, or a
// test harness using internal/ast's builders).
func (p *Program) Inner() *library.Program { return p.inner }

// Infer runs type inference over every function body and global
// initializer (spec §6.1's "Program::infer() → () | errors"). Idempotent.
func (p *Program) Infer() error {
	infer.InferProgram(p.inner)
	if p.inner.Failed() {
		return p.Errors()
	}
	return nil
}

// Failed reports whether any compile error was recorded (spec §7).
func (p *Program) Failed() bool { return p.inner.Failed() }

// Errors renders every accumulated compile diagnostic as a single error
// (spec §7: "Program::errors"), or nil if there are none.
func (p *Program) Errors() error {
	if len(p.inner.Errors) == 0 {
		return nil
	}
	lines := make([]string, len(p.inner.Errors))
	for i, e := range p.inner.Errors {
		lines[i] = e.Format("")
	}
	return fmt.Errorf("%d compile error(s):\n%s", len(lines), strings.Join(lines, "\n"))
}

// Simulate lowers the (already inferred) program into a *sim.Program and
// wraps a fresh Context around it, running every global initializer once
// (spec §6.1's "Program::simulate(context) → bool", spec §3's global
// lifecycle). Simulate refuses to run when the program failed inference
// (spec §7: "simulate refuses to run when failed").
func (p *Program) Simulate(opts sim.Options) (*Context, error) {
	if p.inner.Failed() {
		return nil, fmt.Errorf("dascript: cannot simulate a failed program: %w", p.Errors())
	}
	simProg, err := simulate.Lower(p.inner, p.reg)
	if err != nil {
		return nil, fmt.Errorf("dascript: lowering failed: %w", err)
	}
	ctx := sim.NewContext(simProg, opts)
	return &Context{inner: ctx}, nil
}

// Context wraps an internal/sim.Context: the runtime state for one
// interpreter instance (spec §6.1).
type Context struct {
	inner *sim.Context
}

// Inner exposes the wrapped *sim.Context for advanced embedding (e.g.
// wiring a custom DebugSink).
func (c *Context) Inner() *sim.Context { return c.inner }

// SetDebugSink installs the hook every debug() call in a running script
// invokes (spec §4.3, §6.2); debuginfo.NewPrinter builds one of these
// from a plain write func.
func (c *Context) SetDebugSink(sink sim.DebugSink) { c.inner.Debug = sink }

// FindFunction resolves a short function name to its dense index (spec
// §6.1).
func (c *Context) FindFunction(name string) (int, bool) { return c.inner.FindFunction(name) }

// Eval pushes a frame, runs functionIndex with argv, and restores the
// frame (spec §6.1). The returned bool reports whether the call
// completed without an uncaught throw; on false, Exception() names the
// message.
func (c *Context) Eval(functionIndex int, argv []sim.Register) (sim.Register, bool) {
	result := c.inner.Eval(functionIndex, argv)
	return result, !c.inner.IsThrowing()
}

// Call is Eval's name-based convenience: look up name, then evaluate it,
// reporting "not found" as its own error distinct from a script-level
// throw.
func (c *Context) Call(name string, argv ...sim.Register) (sim.Register, error) {
	idx, ok := c.FindFunction(name)
	if !ok {
		return sim.Null, fmt.Errorf("dascript: function %q not found", name)
	}
	result, ok := c.Eval(idx, argv)
	if !ok {
		msg, _ := c.Exception()
		return sim.Null, fmt.Errorf("dascript: exception: %s", msg)
	}
	return result, nil
}

// Restart resets stack, control flow and heap, and re-runs every
// global's init node, but keeps compiled code (spec §6.1, §8 property 7).
func (c *Context) Restart() { c.inner.Restart() }

// Exception returns the last thrown message, if any (spec §6.1).
func (c *Context) Exception() (string, bool) { return c.inner.Exception() }
