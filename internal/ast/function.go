package ast

import (
	"strings"

	"github.com/dascript-lang/dascript/internal/source"
	"github.com/dascript-lang/dascript/internal/types"
)

// Variable is a named, typed storage location: a global (Index is its
// dense 0-based slot, assigned by simulate) or a local/argument. Both
// fields default to -1; simulate keeps local and argument slots in its
// own per-frame tables and leaves StackTop at -1 (spec §3).
type Variable struct {
	Name        string
	Decl        *types.TypeDecl
	Initializer Expression // nil if none
	At          source.Position

	Index    int // dense global index, or -1
	StackTop int // frame offset; not assigned by simulate, so -1

	IsArgument bool
}

// NewVariable returns a Variable with Index/StackTop unassigned.
func NewVariable(name string, t *types.TypeDecl) *Variable {
	return &Variable{Name: name, Decl: t, Index: -1, StackTop: -1}
}

// Clone returns a deep-enough copy for re-simulating against a fresh
// Context; the initializer expression tree is cloned, the type is shared
// (types form trees with interned leaves, spec §9).
func (v *Variable) Clone() *Variable {
	c := *v
	if v.Initializer != nil {
		c.Initializer = v.Initializer.Clone()
	}
	return &c
}

// Function is a named, ordered sequence of arguments plus a result type
// and body (spec §3). BuiltIn functions carry a Native implementation
// instead of (or in addition to) a Body; simulate bypasses the normal
// prologue for them (spec §4.4, "Calls").
type Function struct {
	Name      string
	Arguments []*Variable
	Result    *types.TypeDecl
	Body      Expression
	At        source.Position

	BuiltIn        bool
	Index          int
	TotalStackSize int

	nativeKey string
}

// NativeKey names the Go-side implementation a BuiltIn function's call
// sites should invoke, bypassing the normal prologue (spec §4.4,
// "Calls"). It defaults to Mangled() but built-in modules are free to
// share one implementation across several declared overloads (e.g. every
// integer width's "op+") by setting it explicitly. The implementation
// itself lives in internal/builtin's registry and is looked up by this
// key during internal/simulate's lowering — kept out of this package to
// avoid an import cycle (the implementation operates on
// internal/sim.Register, and internal/sim already imports internal/ast
// for *Function/*Variable).
func (f *Function) NativeKey() string {
	if f.nativeKey != "" {
		return f.nativeKey
	}
	return f.Mangled()
}

// SetNativeKey overrides the lookup key a built-in module's registry
// uses for this function.
func (f *Function) SetNativeKey(key string) { f.nativeKey = key }

// Mangled returns the function's mangled name: its short Name concatenated
// with each argument's mangled type (spec §3: "Mangled name is `name`
// concatenated with each argument's mangled type; overloads share `name`
// but not mangled name").
func (f *Function) Mangled() string {
	var sb strings.Builder
	sb.WriteString(f.Name)
	for _, a := range f.Arguments {
		sb.WriteString("@")
		sb.WriteString(a.Decl.MangledName())
	}
	return sb.String()
}
