package builtin

import (
	"github.com/dascript-lang/dascript/internal/library"
	"github.com/dascript-lang/dascript/internal/sim"
	"github.com/dascript-lang/dascript/internal/types"
)

// registerRanges wires the range/urange constructor functions a `for`
// loop's range source calls (spec §3's range/urange base tags; `step`
// defaults to 1 via the two-argument (from, to) overload, next to the
// three-argument (from, to, step) one).
func registerRanges(m *library.Module, reg Registry) {
	i32 := types.NewPrimitive(types.TInt32)
	u32 := types.NewPrimitive(types.TUInt32)
	rng := types.NewPrimitive(types.TRange)
	urng := types.NewPrimitive(types.TURange)

	addCall(m, reg, "range", rng, "range@2", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.Register{Ref: &sim.RangeValue{From: int64(args[0].Int32()), To: int64(args[1].Int32()), Step: 1, Signed: true}}
	}, i32, i32)
	addCall(m, reg, "range", rng, "range@3", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.Register{Ref: &sim.RangeValue{From: int64(args[0].Int32()), To: int64(args[1].Int32()), Step: int64(args[2].Int32()), Signed: true}}
	}, i32, i32, i32)

	addCall(m, reg, "urange", urng, "urange@2", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.Register{Ref: &sim.RangeValue{From: int64(args[0].UInt32()), To: int64(args[1].UInt32()), Step: 1}}
	}, u32, u32)
	addCall(m, reg, "urange", urng, "urange@3", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.Register{Ref: &sim.RangeValue{From: int64(args[0].UInt32()), To: int64(args[1].UInt32()), Step: int64(args[2].UInt32())}}
	}, u32, u32, u32)
}
