package infer

import (
	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/errcat"
	"github.com/dascript-lang/dascript/internal/library"
	"github.com/dascript-lang/dascript/internal/source"
)

// ctx carries the state threaded through one function body's (or one
// global initializer's) inference walk.
type ctx struct {
	prog *library.Program
	lib  *library.Library
	fn   *ast.Function // nil while inferring a global initializer

	scopes []map[string]*ast.Variable

	loopDepth       int
	blockValueDepth int // >0 while inferring a MakeBlock body; no check reads it
}

func newCtx(prog *library.Program, fn *ast.Function) *ctx {
	c := &ctx{prog: prog, lib: prog.Library, fn: fn}
	c.pushScope()
	if fn != nil {
		for _, a := range fn.Arguments {
			c.declare(a)
		}
	}
	return c
}

func (c *ctx) pushScope() { c.scopes = append(c.scopes, map[string]*ast.Variable{}) }
func (c *ctx) popScope()  { c.scopes = c.scopes[:len(c.scopes)-1] }

func (c *ctx) declare(v *ast.Variable) {
	c.scopes[len(c.scopes)-1][v.Name] = v
}

func (c *ctx) lookupLocal(name string) (*ast.Variable, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if v, ok := c.scopes[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (c *ctx) errorf(pos source.Position, kind errcat.Kind, format string, args ...any) {
	c.prog.AddError(errcat.NewCompilerError(pos, kind, format, args...))
}
