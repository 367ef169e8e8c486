package builtin

import (
	"github.com/dascript-lang/dascript/internal/library"
	"github.com/dascript-lang/dascript/internal/sim"
	"github.com/dascript-lang/dascript/internal/types"
)

// registerArithmetic wires op+/op-/op*/op///op% and unary op- for every
// scalar numeric base type (spec §4.4's arithmetic policies), one
// concrete overload per width — the nominal overload resolver in
// internal/infer has no notion of a type parameter, so a generic
// "numeric T" operator cannot be expressed as a single *ast.Function;
// DESIGN.md records this as a decided limitation rather than a gap
// to fill with reflection-like tricks.
func registerArithmetic(m *library.Module, reg Registry) {
	for _, bt := range numericTypes {
		t := types.NewPrimitive(bt)
		bt := bt // capture

		addBinary(m, reg, "+", t, t, "op+@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.AddRegister(bt, args[0], args[1])
		})
		addBinary(m, reg, "-", t, t, "op-@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.SubRegister(bt, args[0], args[1])
		})
		addBinary(m, reg, "*", t, t, "op*@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.MulRegister(bt, args[0], args[1])
		})
		addBinary(m, reg, "/", t, t, "op/@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.DivRegister(ctx, bt, args[0], args[1])
		})
		addBinary(m, reg, "%", t, t, "op%@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.ModRegister(ctx, bt, args[0], args[1])
		})
		addUnary(m, reg, "-", t, t, "opneg@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.NegRegister(bt, args[0])
		})
	}
}
