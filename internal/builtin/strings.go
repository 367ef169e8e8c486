package builtin

import (
	"strconv"

	"github.com/dascript-lang/dascript/internal/library"
	"github.com/dascript-lang/dascript/internal/sim"
	"github.com/dascript-lang/dascript/internal/types"
)

// registerStrings wires string concatenation, equality, length and a
// handful of numeric-to-string conversions (spec §4.4's string header).
// Conversions are
// nominal overloads of the same "string" name, one per source type, for
// the same reason arithmetic.go gives one overload per width: the
// overload resolver has no generic parameter to bind against.
func registerStrings(m *library.Module, reg Registry) {
	strT := types.NewPrimitive(types.TString)
	boolT := types.NewPrimitive(types.TBool)
	u32T := types.NewPrimitive(types.TUInt32)

	addBinary(m, reg, "+", strT, strT, "op+@string", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.ConcatStrings(args[0], args[1])
	})
	addBinary(m, reg, "==", strT, boolT, "op==@string", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.BoolRegister(sim.StringsEqual(args[0], args[1]))
	})
	addBinary(m, reg, "!=", strT, boolT, "op!=@string", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.BoolRegister(!sim.StringsEqual(args[0], args[1]))
	})

	addCall(m, reg, "length", u32T, "length@string", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.UInt32Register(uint32(sim.LengthOf(args[0])))
	}, strT)

	for _, bt := range numericTypes {
		t := types.NewPrimitive(bt)
		bt := bt
		addCall(m, reg, "string", strT, "string@"+bt.String(), func(ctx *sim.Context, args []sim.Register) sim.Register {
			return sim.StringRegister(formatNumeric(bt, args[0]))
		}, t)
	}
	addCall(m, reg, "string", strT, "string@bool", func(ctx *sim.Context, args []sim.Register) sim.Register {
		return sim.StringRegister(strconv.FormatBool(args[0].Bool()))
	}, boolT)
}

// formatNumeric renders a numeric Register the way the host's "string"
// conversion builtin does: decimal for integers, Go's shortest
// round-tripping form for float/double.
func formatNumeric(bt types.BaseType, r sim.Register) string {
	switch {
	case bt.IsFloat():
		if bt == types.TFloat {
			return strconv.FormatFloat(float64(r.Float()), 'g', -1, 32)
		}
		return strconv.FormatFloat(r.Double(), 'g', -1, 64)
	case bt == types.TUInt8, bt == types.TUInt16, bt == types.TUInt32, bt == types.TUInt64:
		return strconv.FormatUint(unsignedValue(bt, r), 10)
	default:
		return strconv.FormatInt(signedValue(bt, r), 10)
	}
}

func signedValue(bt types.BaseType, r sim.Register) int64 {
	switch bt {
	case types.TInt8:
		return int64(int8(r.Bits))
	case types.TInt16:
		return int64(int16(r.Bits))
	case types.TInt32:
		return int64(r.Int32())
	default:
		return r.Int64()
	}
}

func unsignedValue(bt types.BaseType, r sim.Register) uint64 {
	switch bt {
	case types.TUInt8:
		return uint64(uint8(r.Bits))
	case types.TUInt16:
		return uint64(uint16(r.Bits))
	case types.TUInt32:
		return uint64(r.UInt32())
	default:
		return r.UInt64()
	}
}
