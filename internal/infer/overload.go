package infer

import (
	"strings"

	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/types"
)

// Resolution is the outcome of resolving a call site against a candidate
// pool (spec §4.2.1).
type Resolution struct {
	Chosen  *ast.Function
	Matches []*ast.Function // the surviving candidate set; len != 1 means an error
}

// ResolveOverload implements spec §4.2.1: gather every candidate whose
// short name matches (done by the caller via library.FindOverloads),
// filter by arity, per-argument type match, reference compatibility and
// constness monotonicity, and trailing defaults. Exactly one survivor is
// success; zero or more than one is reported by the caller using
// FormatCandidates.
func ResolveOverload(candidates []*ast.Function, argTypes []*types.TypeDecl, argIsRef []bool) Resolution {
	var survivors []*ast.Function
	for _, fn := range candidates {
		if matchesCandidate(fn, argTypes, argIsRef) {
			survivors = append(survivors, fn)
		}
	}
	res := Resolution{Matches: survivors}
	if len(survivors) == 1 {
		res.Chosen = survivors[0]
	}
	return res
}

func matchesCandidate(fn *ast.Function, argTypes []*types.TypeDecl, argIsRef []bool) bool {
	if len(fn.Arguments) < len(argTypes) {
		return false // (1) candidate arity >= call arity
	}
	for i, at := range argTypes {
		slot := fn.Arguments[i]
		if !types.IsSame(at, slot.Decl, false, false) {
			return false // (2) type match ignoring ref/const
		}
		if slot.Decl.Ref && !argIsRef[i] {
			return false // (3) reference slot requires a reference argument
		}
		if (slot.Decl.Ref || slot.Decl.Base == types.TPointer) && at.Constant && !slot.Decl.Constant {
			return false // (4) reference/pointer slots may only add const, never drop it
		}
	}
	for i := len(argTypes); i < len(fn.Arguments); i++ {
		if fn.Arguments[i].Initializer == nil {
			return false // (5) trailing unspecified params need defaults
		}
	}
	return true
}

// FormatCandidates renders a candidate list for "no matching function" /
// "too many matching functions" diagnostics (spec §4.2.1).
func FormatCandidates(fns []*ast.Function) string {
	parts := make([]string, len(fns))
	for i, f := range fns {
		argParts := make([]string, len(f.Arguments))
		for j, a := range f.Arguments {
			argParts[j] = a.Decl.MangledName()
		}
		parts[i] = f.Name + "(" + strings.Join(argParts, ", ") + ")"
	}
	return strings.Join(parts, "; ")
}

// FormatArgTypes renders a call site's argument types for a diagnostic.
func FormatArgTypes(argTypes []*types.TypeDecl) string {
	parts := make([]string, len(argTypes))
	for i, t := range argTypes {
		parts[i] = t.MangledName()
	}
	return strings.Join(parts, ", ")
}
