package builtin

import (
	"github.com/dascript-lang/dascript/internal/library"
	"github.com/dascript-lang/dascript/internal/sim"
	"github.com/dascript-lang/dascript/internal/types"
)

// registerComparisons wires op==/op!=/op</op<=/op>/op>= for every scalar
// numeric base type, plus op==/op!= for bool (spec §4.4). String
// comparisons live in strings.go, next to the rest of the string
// builtins the teacher keeps in its own vm_builtins_string.go file.
func registerComparisons(m *library.Module, reg Registry) {
	boolT := types.NewPrimitive(types.TBool)

	for _, bt := range numericTypes {
		t := types.NewPrimitive(bt)
		bt := bt

		addBinary(m, reg, "==", t, boolT, "op==@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.BoolRegister(sim.EqualRegister(bt, args[0], args[1]))
		})
		addBinary(m, reg, "!=", t, boolT, "op!=@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.BoolRegister(!sim.EqualRegister(bt, args[0], args[1]))
		})
		addBinary(m, reg, "<", t, boolT, "op<@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.BoolRegister(sim.CompareRegister(bt, args[0], args[1]) < 0)
		})
		addBinary(m, reg, "<=", t, boolT, "op<=@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.BoolRegister(sim.CompareRegister(bt, args[0], args[1]) <= 0)
		})
		addBinary(m, reg, ">", t, boolT, "op>@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.BoolRegister(sim.CompareRegister(bt, args[0], args[1]) > 0)
		})
		addBinary(m, reg, ">=", t, boolT, "op>=@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.BoolRegister(sim.CompareRegister(bt, args[0], args[1]) >= 0)
		})
	}

	addBinary(m, reg, "==", boolT, boolT, "op==@bool", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.BoolRegister(args[0].Bits == args[1].Bits)
	})
	addBinary(m, reg, "!=", boolT, boolT, "op!=@bool", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.BoolRegister(args[0].Bits != args[1].Bits)
	})
}
