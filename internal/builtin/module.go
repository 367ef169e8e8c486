package builtin

import (
	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/library"
	"github.com/dascript-lang/dascript/internal/sim"
	"github.com/dascript-lang/dascript/internal/types"
)

// ModuleName is the name the library search order shows for this
// module; "builtin::op+" etc. is a legal module-qualified call (spec
// §3, "a name may be prefixed with module::name").
const ModuleName = "builtin"

// NewModule returns the core built-in module plus the native registry
// internal/simulate resolves every NativeKey against (spec §6.5).
func NewModule() (*library.Module, Registry) {
	m := library.NewModule(ModuleName)
	m.BuiltIn = true
	reg := Registry{}

	registerArithmetic(m, reg)
	registerComparisons(m, reg)
	registerLogical(m, reg)
	registerStrings(m, reg)
	registerRanges(m, reg)

	return m, reg
}

// numericTypes lists every scalar base type the arithmetic/comparison
// policies apply to (spec §4.4, "Arithmetic policies keyed by base
// type"); vectors are out of the core per spec §1's scope note on the
// vector math intrinsics library.
var numericTypes = []types.BaseType{
	types.TInt8, types.TInt16, types.TInt32, types.TInt64,
	types.TUInt8, types.TUInt16, types.TUInt32, types.TUInt64,
	types.TFloat, types.TDouble,
}

// addBinary declares a two-operand built-in "op<op>" overload of base
// type argT, returning resultT, and registers its native implementation
// under key.
func addBinary(m *library.Module, reg Registry, op string, argT *types.TypeDecl, resultT *types.TypeDecl, key string, fn sim.NativeFunc) {
	f := ast.NewFunc("op"+op, resultT, nil,
		ast.Arg("a", argT), ast.Arg("b", argT))
	f.BuiltIn = true
	f.SetNativeKey(key)
	m.AddFunction(f)
	reg[key] = fn
}

// addUnary mirrors addBinary for a single-operand "op<op>" overload.
func addUnary(m *library.Module, reg Registry, op string, argT *types.TypeDecl, resultT *types.TypeDecl, key string, fn sim.NativeFunc) {
	f := ast.NewFunc("op"+op, resultT, nil, ast.Arg("a", argT))
	f.BuiltIn = true
	f.SetNativeKey(key)
	m.AddFunction(f)
	reg[key] = fn
}

// addCall declares a plain (non-operator) built-in function under name,
// with the given argument types, and registers its implementation.
func addCall(m *library.Module, reg Registry, name string, resultT *types.TypeDecl, key string, fn sim.NativeFunc, args ...*types.TypeDecl) {
	vars := make([]*ast.Variable, len(args))
	for i, a := range args {
		vars[i] = ast.Arg(argName(i), a)
	}
	f := ast.NewFunc(name, resultT, nil, vars...)
	f.BuiltIn = true
	f.SetNativeKey(key)
	m.AddFunction(f)
	reg[key] = fn
}

func argName(i int) string {
	names := [...]string{"a", "b", "c", "d"}
	if i < len(names) {
		return names[i]
	}
	return "arg"
}
