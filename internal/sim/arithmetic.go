package sim

import (
	"github.com/dascript-lang/dascript/internal/errcat"
	"github.com/dascript-lang/dascript/internal/types"
)

// This file implements spec §4.4's "arithmetic policies keyed by base
// type": internal/builtin registers these functions under each built-in
// operator's NativeKey (one entry per argument width, e.g. "op+@int32"),
// so the BinaryOp/UnaryOp nodes below never need a type switch of their
// own — they just invoke whichever native implementation
// internal/simulate resolved for that call site's Function.NativeKey().

func asI64(t types.BaseType, r Register) int64 {
	switch t {
	case types.TInt8:
		return int64(int8(r.Bits))
	case types.TInt16:
		return int64(int16(r.Bits))
	case types.TInt32:
		return int64(int32(r.Bits))
	default:
		return int64(r.Bits)
	}
}

func asU64(r Register) uint64 { return r.Bits }

func fromI64(t types.BaseType, v int64) Register {
	switch t {
	case types.TInt8:
		return Register{Bits: uint64(uint8(int8(v)))}
	case types.TInt16:
		return Register{Bits: uint64(uint16(int16(v)))}
	case types.TInt32:
		return Int32Register(int32(v))
	default:
		return Int64Register(v)
	}
}

func fromU64(t types.BaseType, v uint64) Register {
	switch t {
	case types.TUInt8:
		return Register{Bits: uint64(uint8(v))}
	case types.TUInt16:
		return Register{Bits: uint64(uint16(v))}
	case types.TUInt32:
		return UInt32Register(uint32(v))
	default:
		return UInt64Register(v)
	}
}

// AddRegister, SubRegister, MulRegister implement the three policies
// that never fail, dispatched by base type.
func AddRegister(t types.BaseType, a, b Register) Register {
	switch {
	case t.IsFloat():
		return floatOp(t, a, b, func(x, y float64) float64 { return x + y })
	case unsignedBase(t):
		return fromU64(t, asU64(a)+asU64(b))
	default:
		return fromI64(t, asI64(t, a)+asI64(t, b))
	}
}

func SubRegister(t types.BaseType, a, b Register) Register {
	switch {
	case t.IsFloat():
		return floatOp(t, a, b, func(x, y float64) float64 { return x - y })
	case unsignedBase(t):
		return fromU64(t, asU64(a)-asU64(b))
	default:
		return fromI64(t, asI64(t, a)-asI64(t, b))
	}
}

func MulRegister(t types.BaseType, a, b Register) Register {
	switch {
	case t.IsFloat():
		return floatOp(t, a, b, func(x, y float64) float64 { return x * y })
	case unsignedBase(t):
		return fromU64(t, asU64(a)*asU64(b))
	default:
		return fromI64(t, asI64(t, a)*asI64(t, b))
	}
}

// DivRegister and ModRegister throw "division by zero" through ctx on
// an integer zero divisor (spec §4.4, §7); float division by zero
// follows IEEE 754 (produces Inf/NaN, never throws).
func DivRegister(ctx *Context, t types.BaseType, a, b Register) Register {
	if t.IsFloat() {
		return floatOp(t, a, b, func(x, y float64) float64 { return x / y })
	}
	if unsignedBase(t) {
		if asU64(b) == 0 {
			return ctx.Throw2(errcat.MsgDivisionByZero)
		}
		return fromU64(t, asU64(a)/asU64(b))
	}
	if asI64(t, b) == 0 {
		return ctx.Throw2(errcat.MsgDivisionByZero)
	}
	return fromI64(t, asI64(t, a)/asI64(t, b))
}

func ModRegister(ctx *Context, t types.BaseType, a, b Register) Register {
	if t.IsFloat() {
		return floatOp(t, a, b, func(x, y float64) float64 {
			q := float64(int64(x / y))
			return x - q*y
		})
	}
	if unsignedBase(t) {
		if asU64(b) == 0 {
			return ctx.Throw2(errcat.MsgDivisionByZero)
		}
		return fromU64(t, asU64(a)%asU64(b))
	}
	if asI64(t, b) == 0 {
		return ctx.Throw2(errcat.MsgDivisionByZero)
	}
	return fromI64(t, asI64(t, a)%asI64(t, b))
}

func NegRegister(t types.BaseType, a Register) Register {
	if t.IsFloat() {
		return floatOp(t, a, Register{}, func(x, _ float64) float64 { return -x })
	}
	return fromI64(t, -asI64(t, a))
}

// IncRegister and DecRegister implement the pre/post ++/-- policy.
func IncRegister(t types.BaseType, a Register) Register { return AddRegister(t, a, fromI64(t, 1)) }
func DecRegister(t types.BaseType, a Register) Register { return SubRegister(t, a, fromI64(t, 1)) }

// CompareRegister returns -1/0/1 for ordered types; daScript's relational
// operators ("<", "<=", ">", ">=") lower to this plus a sign check.
func CompareRegister(t types.BaseType, a, b Register) int {
	switch {
	case t.IsFloat():
		x, y := floatVal(t, a), floatVal(t, b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case unsignedBase(t):
		x, y := asU64(a), asU64(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	default:
		x, y := asI64(t, a), asI64(t, b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
}

// EqualRegister implements "==" for any scalar base type, including
// string (by header hash then bytes, spec §4.4).
func EqualRegister(t types.BaseType, a, b Register) bool {
	if t == types.TString {
		return StringsEqual(a, b)
	}
	if t.IsFloat() {
		return floatVal(t, a) == floatVal(t, b)
	}
	return a.Bits == b.Bits
}

func unsignedBase(t types.BaseType) bool {
	switch t {
	case types.TUInt8, types.TUInt16, types.TUInt32, types.TUInt64:
		return true
	default:
		return false
	}
}

func floatVal(t types.BaseType, r Register) float64 {
	if t == types.TFloat {
		return float64(r.Float())
	}
	return r.Double()
}

func floatOp(t types.BaseType, a, b Register, f func(x, y float64) float64) Register {
	result := f(floatVal(t, a), floatVal(t, b))
	if t == types.TFloat {
		return FloatRegister(float32(result))
	}
	return DoubleRegister(result)
}
