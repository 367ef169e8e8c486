package sim

import "math"

// Register is the runtime's "128-bit value register" (spec §4.4): Bits
// carries any primitive scalar (bool/int/uint/float, bit-for-bit, sign
// or zero extended to 64 bits as appropriate) or an enum's int32 value;
// Ref carries anything too large for Bits alone — a string, array,
// table, block, or heap-allocated structure/handle. Exactly one of the
// two is meaningful for a given static type; both are always present so
// a Register can be copied, stored in a slice, and passed by value
// without boxing.
type Register struct {
	Bits uint64
	Ref  any
}

// Null is the zero Register: false, 0, "", and a nil pointer/reference,
// simultaneously — every base type's zero value maps onto it.
var Null = Register{}

func BoolRegister(v bool) Register {
	if v {
		return Register{Bits: 1}
	}
	return Register{}
}

func (r Register) Bool() bool { return r.Bits != 0 }

func Int32Register(v int32) Register  { return Register{Bits: uint64(uint32(v))} }
func UInt32Register(v uint32) Register { return Register{Bits: uint64(v)} }
func Int64Register(v int64) Register  { return Register{Bits: uint64(v)} }
func UInt64Register(v uint64) Register { return Register{Bits: v} }

func (r Register) Int32() int32   { return int32(uint32(r.Bits)) }
func (r Register) UInt32() uint32 { return uint32(r.Bits) }
func (r Register) Int64() int64   { return int64(r.Bits) }
func (r Register) UInt64() uint64 { return r.Bits }

func FloatRegister(v float32) Register  { return Register{Bits: uint64(math.Float32bits(v))} }
func DoubleRegister(v float64) Register { return Register{Bits: math.Float64bits(v)} }

func (r Register) Float() float32  { return math.Float32frombits(uint32(r.Bits)) }
func (r Register) Double() float64 { return math.Float64frombits(r.Bits) }

// PointerRegister wraps a heap-side payload (e.g. *StructValue,
// *HandleValue) behind a non-nil pointer Register; a nil ptr is the null
// pointer, matching spec §4.4's "null pointer is rendered as..." but for
// pointee kinds in general, not just strings.
func PointerRegister(ptr any) Register { return Register{Ref: ptr} }

func (r Register) IsNullPointer() bool { return r.Ref == nil }

func (r Register) Ptr() any { return r.Ref }
