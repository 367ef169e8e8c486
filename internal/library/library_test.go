package library

import (
	"testing"

	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/types"
)

func TestModuleQualifiedLookupRestrictsSearch(t *testing.T) {
	a := NewModule("A")
	b := NewModule("B")
	a.AddFunction(ast.NewFunc("foo", types.NewPrimitive(types.TInt32), nil))
	b.AddFunction(ast.NewFunc("foo", types.NewPrimitive(types.TInt32), nil, ast.Arg("x", types.NewPrimitive(types.TInt32))))

	lib := NewLibrary(a, b)

	unqualified, ok := lib.FindOverloads("", "foo")
	if !ok || len(unqualified) != 2 {
		t.Fatalf("expected 2 overloads across both modules, got %d ok=%v", len(unqualified), ok)
	}

	qualified, ok := lib.FindOverloads("B", "foo")
	if !ok || len(qualified) != 1 {
		t.Fatalf("expected 1 overload restricted to module B, got %d ok=%v", len(qualified), ok)
	}
	if qualified[0] != b.Overloads("foo")[0] {
		t.Errorf("qualified lookup returned a function from the wrong module")
	}

	if _, ok := lib.FindOverloads("C", "foo"); ok {
		t.Error("lookup in a nonexistent module must fail")
	}
}

func TestSearchOrderIsLibraryOrderRegardlessOfPermutation(t *testing.T) {
	a := NewModule("A")
	b := NewModule("B")
	a.AddFunction(ast.NewFunc("bar", types.NewPrimitive(types.TInt32), nil))
	b.AddFunction(ast.NewFunc("bar", types.NewPrimitive(types.TInt32), nil))

	lib1 := NewLibrary(a, b)
	lib2 := NewLibrary(b, a)

	r1, _ := lib1.FindOverloads("", "bar")
	r2, _ := lib2.FindOverloads("", "bar")

	if len(r1) != 2 || len(r2) != 2 {
		t.Fatalf("expected 2 candidates from each order")
	}
	// Spec §8 property 3: the matching *set* doesn't depend on order, only
	// which one is listed first does — and that follows the library order.
	aBar, bBar := a.Overloads("bar")[0], b.Overloads("bar")[0]
	if r1[0] != aBar || r1[1] != bBar {
		t.Errorf("library (A, B) should list A's candidate first")
	}
	if r2[0] != bBar || r2[1] != aBar {
		t.Errorf("library (B, A) should list B's candidate first")
	}
}

func TestEnumConstLookup(t *testing.T) {
	m := NewModule("Colors")
	e := types.NewEnumeration("Color")
	e.Add("Red", 0)
	e.Add("Green", 1)
	m.AddEnumeration(e)

	lib := NewLibrary(m)
	owner, v, ok := lib.FindEnumConst("", "Green")
	if !ok || v != 1 || owner != e {
		t.Fatalf("FindEnumConst(Green) = (%v, %v, %v)", owner, v, ok)
	}

	if _, _, ok := lib.FindEnumConst("", "Blue"); ok {
		t.Error("unknown constant should not resolve")
	}
}

func TestProgramFailed(t *testing.T) {
	p := NewProgram(NewModule("Main"))
	if p.Failed() {
		t.Fatal("fresh program should not be failed")
	}
}
