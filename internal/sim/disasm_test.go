package sim

import (
	"testing"

	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestDisassemble_HandBuilt snapshots a SimNode tree assembled directly
// (no inference/lowering pass involved), covering the node kinds
// internal/simulate's own lowering test doesn't happen to reach: a
// try/catch wrapping a throwing call, and a make-block/invoke pair.
func TestDisassemble_HandBuilt(t *testing.T) {
	fn := &ast.Function{Name: "sample"}
	entry := &BlockNode{
		ReturnsValue: true,
		Statements: []SimNode{
			&TryCatchNode{
				Try: &CallNode{FnIdx: 0, Native: func(ctx *Context, args []Register) Register {
					return ctx.Throw2("boom")
				}},
				Catch: &ConstNode{Value: Int32Register(-1)},
			},
			&InvokeNode{
				Block: &MakeBlockNode{Body: &ConstNode{Value: Int32Register(1)}},
			},
		},
	}
	info := &FunctionInfo{Fn: fn, Entry: entry, StackSize: 2}

	snaps.MatchSnapshot(t, "hand_built", Disassemble(info))
}
