package infer

import (
	"testing"

	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/types"
)

func intT() *types.TypeDecl    { return types.NewPrimitive(types.TInt32) }
func floatT() *types.TypeDecl  { return types.NewPrimitive(types.TFloat) }

func TestResolveOverload_ExactlyOneMatch(t *testing.T) {
	f1 := ast.NewFunc("add", intT(), nil, ast.Arg("a", intT()), ast.Arg("b", intT()))
	f2 := ast.NewFunc("add", floatT(), nil, ast.Arg("a", floatT()), ast.Arg("b", floatT()))

	res := ResolveOverload([]*ast.Function{f1, f2}, []*types.TypeDecl{intT(), intT()}, []bool{false, false})
	if res.Chosen != f1 {
		t.Fatalf("expected f1 chosen, got %v matches=%d", res.Chosen, len(res.Matches))
	}
}

func TestResolveOverload_NoMatch(t *testing.T) {
	f1 := ast.NewFunc("add", intT(), nil, ast.Arg("a", intT()), ast.Arg("b", intT()))
	res := ResolveOverload([]*ast.Function{f1}, []*types.TypeDecl{floatT(), floatT()}, []bool{false, false})
	if res.Chosen != nil || len(res.Matches) != 0 {
		t.Fatalf("expected no match, got %+v", res)
	}
}

func TestResolveOverload_TooManyMatches(t *testing.T) {
	f1 := ast.NewFunc("id", intT(), nil, ast.Arg("a", intT()))
	f2 := ast.NewFunc("id", intT(), nil, ast.Arg("a", intT()))
	res := ResolveOverload([]*ast.Function{f1, f2}, []*types.TypeDecl{intT()}, []bool{false})
	if res.Chosen != nil || len(res.Matches) != 2 {
		t.Fatalf("expected ambiguous match (2 survivors), got %+v", res)
	}
}

func TestResolveOverload_ReferenceSlotRequiresReferenceArg(t *testing.T) {
	refSlot := ast.Arg("a", intT().AsRef())
	f1 := ast.NewFunc("inc", intT(), nil, refSlot)

	notRef := ResolveOverload([]*ast.Function{f1}, []*types.TypeDecl{intT()}, []bool{false})
	if len(notRef.Matches) != 0 {
		t.Fatal("non-reference argument must not match a reference slot")
	}

	isRef := ResolveOverload([]*ast.Function{f1}, []*types.TypeDecl{intT()}, []bool{true})
	if len(isRef.Matches) != 1 {
		t.Fatal("reference argument should match a reference slot")
	}
}

func TestResolveOverload_ConstMayOnlyBeAdded(t *testing.T) {
	nonConstSlot := ast.Arg("a", intT().AsRef())
	f1 := ast.NewFunc("f", intT(), nil, nonConstSlot)

	constArg := intT().AsConst()
	res := ResolveOverload([]*ast.Function{f1}, []*types.TypeDecl{constArg}, []bool{true})
	if len(res.Matches) != 0 {
		t.Fatal("passing a const argument to a non-const reference slot must not match (would drop const)")
	}

	constSlot := ast.Arg("a", intT().AsConst())
	f2 := ast.NewFunc("f", intT(), nil, constSlot)
	res2 := ResolveOverload([]*ast.Function{f2}, []*types.TypeDecl{intT()}, []bool{false})
	if len(res2.Matches) != 1 {
		t.Fatal("passing a non-const argument to a const slot should match (adds const)")
	}
}

func TestResolveOverload_TrailingDefaults(t *testing.T) {
	def := ast.Arg("b", intT())
	def.Initializer = ast.Int(0)
	f1 := ast.NewFunc("f", intT(), nil, ast.Arg("a", intT()), def)

	res := ResolveOverload([]*ast.Function{f1}, []*types.TypeDecl{intT()}, []bool{false})
	if len(res.Matches) != 1 {
		t.Fatal("trailing parameter with a default initializer should allow a shorter call")
	}
}
