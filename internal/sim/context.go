package sim

import (
	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/errcat"
)

// SimNode is the evaluator tree's uniform node shape (spec §4.4): every
// node exposes Eval, returning a Register. Throws are not Go errors on
// this path — they are recorded via Context.Throw (which sets
// StopForThrow and LastException) so every node can implement the
// documented "check stop_flags after each child, return immediately on
// nonzero" discipline with a plain field read rather than an error
// check that would fight Go's usual error-handling idiom in the hot
// loop. Native (built-in) functions still get a real error from
// Throw, which builtin.Native implementations call directly.
type SimNode interface {
	Eval(ctx *Context) Register
}

// FunctionInfo is one function's compiled form: its entry node, the
// register-slot count its frame needs, and the originating *ast.Function
// for debug info and argument-count checks (spec §4.3).
type FunctionInfo struct {
	Fn        *ast.Function
	Entry     SimNode
	StackSize int
}

// GlobalInfo is one global's compiled form: its dense slot index,
// declared type, and init node (spec §4.3).
type GlobalInfo struct {
	Var  *ast.Variable
	Init SimNode
}

// Program is the simulate package's output: dense function and global
// tables ready for a Context to run (spec §4.3's "for each module,
// assign dense indices ... store per function ... per global").
type Program struct {
	Functions []FunctionInfo
	Globals   []GlobalInfo
	ByName    map[string]int // function short name -> index, for FindFunction
}

// Context is one interpreter instance: spec §6.1's Context, owning
// globals, heap and stack exclusively (spec §5, "one Context per logical
// interpreter instance").
type Context struct {
	Program *Program
	Globals []Register
	Heap    *Heap
	Stack   *Stack

	Stop          StopFlags
	LastException string
	LastThrowPos  string // source position string, set by Throw call-sites that know it

	BreakValueDepth int // not set or read by any node in this package

	// Debug, when set by the host, receives every debug() call a running
	// script makes (spec §4.3, §6.2). Left nil, DebugNode is a no-op.
	Debug DebugSink
}

// Options configures a new Context's resource limits.
type Options struct {
	HeapBudget    int
	StackCapacity int
}

// DefaultOptions mirrors the teacher's "sane default, override for
// embedding" convention: a generous but finite heap and call-stack depth
// so a runaway script throws instead of hanging the host process.
func DefaultOptions() Options {
	return Options{HeapBudget: 64 << 20, StackCapacity: 4096}
}

// NewContext allocates globals per prog.Globals and runs every global's
// init node once, left to right (spec §6.1: "Program::simulate(context)
// ... runs the init script once").
func NewContext(prog *Program, opts Options) *Context {
	ctx := &Context{
		Program: prog,
		Globals: make([]Register, len(prog.Globals)),
		Heap:    NewHeap(opts.HeapBudget),
		Stack:   NewStack(opts.StackCapacity),
	}
	for i, g := range prog.Globals {
		if g.Init == nil {
			continue
		}
		ctx.Globals[i] = g.Init.Eval(ctx)
		if ctx.IsThrowing() {
			return ctx
		}
	}
	return ctx
}

// FindFunction resolves a short function name to its dense index (spec
// §6.1).
func (c *Context) FindFunction(name string) (int, bool) {
	idx, ok := c.Program.ByName[name]
	return idx, ok
}

// Eval pushes a frame, clears every stop flag except a pre-existing
// throw, runs the function's entry node with argv already evaluated by
// the caller, and restores the frame (spec §6.1).
func (c *Context) Eval(functionIndex int, argv []Register) Register {
	fi := c.Program.Functions[functionIndex]
	savedTop, ok := c.Stack.Push(fi.Fn, fi.StackSize)
	if !ok {
		return c.Throw2(errcat.MsgStackOverflow)
	}
	frame := c.Stack.Top()
	frame.Argv = argv

	c.Stop &^= StopForBreak | StopForReturn | StopForContinue
	result := fi.Entry.Eval(c)
	if c.IsReturning() {
		result = c.Stack.Top().Result
	}
	c.ClearReturn()

	c.Stack.Pop(savedTop)
	if c.IsThrowing() {
		return Null
	}
	return result
}

// Throw2 is a convenience used by runtime failure sites (index out of
// range, division by zero, ...) that only need Throw's side effect, not
// its error return.
func (c *Context) Throw2(msg string) Register {
	c.Throw(msg)
	return Null
}

// Restart resets stack depth, control flow and the heap, then re-runs
// every global's init node, but keeps compiled code (spec §6.1, §7
// "Recovery", §8 testable property 7: "after restart, no pointer
// previously returned by the heap is dereferenceable; all globals are
// re-initialized by re-running their init nodes").
func (c *Context) Restart() {
	c.Stack.Pop(0)
	c.Stop = 0
	c.LastException = ""
	c.Heap.Reset()
	for i, g := range c.Program.Globals {
		c.Globals[i] = Register{}
		if g.Init == nil {
			continue
		}
		c.Globals[i] = g.Init.Eval(c)
		if c.IsThrowing() {
			return
		}
	}
}

// Exception returns the last thrown message, if any (spec §6.1).
func (c *Context) Exception() (string, bool) {
	if c.LastException == "" {
		return "", false
	}
	return c.LastException, true
}
