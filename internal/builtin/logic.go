package builtin

import (
	"github.com/dascript-lang/dascript/internal/library"
	"github.com/dascript-lang/dascript/internal/sim"
	"github.com/dascript-lang/dascript/internal/types"
)

// registerLogical wires bool op&&, op||, op^^ (xor) and unary op! (spec
// §4.4). sim.BinaryOpNode always evaluates both operands before calling
// Native (spec §8 property 6's left-to-right, throw-short-circuit
// contract) — there is no short-circuit "and-then"/"or-else" form in
// this core, matching the evaluator's documented evaluation order
// rather than introducing one here.
func registerLogical(m *library.Module, reg Registry) {
	boolT := types.NewPrimitive(types.TBool)

	addBinary(m, reg, "&&", boolT, boolT, "op&&@bool", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.BoolRegister(args[0].Bool() && args[1].Bool())
	})
	addBinary(m, reg, "||", boolT, boolT, "op||@bool", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.BoolRegister(args[0].Bool() || args[1].Bool())
	})
	addBinary(m, reg, "^^", boolT, boolT, "op^^@bool", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.BoolRegister(args[0].Bool() != args[1].Bool())
	})
	addUnary(m, reg, "!", boolT, boolT, "op!@bool", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.BoolRegister(!args[0].Bool())
	})
}
