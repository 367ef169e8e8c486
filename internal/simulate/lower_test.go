package simulate

import (
	"testing"

	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/builtin"
	"github.com/dascript-lang/dascript/internal/infer"
	"github.com/dascript-lang/dascript/internal/library"
	"github.com/dascript-lang/dascript/internal/sim"
	"github.com/dascript-lang/dascript/internal/types"
	"github.com/gkampitakis/go-snaps/snaps"
)

func intT() *types.TypeDecl { return types.NewPrimitive(types.TInt32) }

// lowerFixture runs a user module through inference and lowering,
// mirroring the pipeline pkg/dascript.Program drives, but stopping short
// of simulation so the test can snapshot the lowered SimNode shape
// instead of a runtime result.
func lowerFixture(t *testing.T, m *library.Module) *sim.Program {
	t.Helper()
	core, reg := builtin.NewModule()
	prog := library.NewProgram(m, core)
	infer.InferProgram(prog)
	if prog.Failed() {
		t.Fatalf("infer failed: %v", prog.Errors)
	}
	simProg, err := Lower(prog, reg)
	if err != nil {
		t.Fatalf("lower: %v", err)
	}
	return simProg
}

// TestLower_Arithmetic snapshots the node tree `let a = 1 + 2 * 3; return
// a` lowers to: a BlockNode containing a LetNode (with a nested BinaryOp
// tree for the initializer) followed by a ReturnNode.
func TestLower_Arithmetic(t *testing.T) {
	m := library.NewModule("Main")
	body := ast.Blk(
		ast.LetOne("a", intT(), ast.BinOp("+", ast.Int(1), ast.BinOp("*", ast.Int(2), ast.Int(3)))),
		ast.Ret(ast.Var("a")),
	)
	m.AddFunction(ast.NewFunc("main", intT(), body))

	simProg := lowerFixture(t, m)
	snaps.MatchSnapshot(t, "arithmetic", sim.DisassembleProgram(simProg))
}

// TestLower_IfWhile snapshots control-flow lowering: an If guarding a
// While loop that counts down to zero.
func TestLower_IfWhile(t *testing.T) {
	m := library.NewModule("Main")
	loop := ast.Blk(
		ast.LetOne("n", intT(), ast.Int(3)),
		&ast.If{
			Cond: ast.BinOp(">", ast.Var("n"), ast.Int(0)),
			Then: &ast.While{
				Cond: ast.BinOp(">", ast.Var("n"), ast.Int(0)),
				Body: ast.Blk(&ast.Copy{Left: ast.Var("n"), Right: ast.BinOp("-", ast.Var("n"), ast.Int(1))}),
			},
		},
		ast.Ret(ast.Var("n")),
	)
	m.AddFunction(ast.NewFunc("countdown", intT(), loop))

	simProg := lowerFixture(t, m)
	snaps.MatchSnapshot(t, "if_while", sim.DisassembleProgram(simProg))
}
