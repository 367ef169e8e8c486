package types

// BaseType is the closed tag enumeration every TypeDecl carries. Most tags
// have a fixed byte size and alignment; Structure, Tuple and Handle defer to
// their descriptors (see TypeDecl.SizeOf).
type BaseType int

const (
	TVoid BaseType = iota
	TBool
	TInt8
	TInt16
	TInt32
	TInt64
	TUInt8
	TUInt16
	TUInt32
	TUInt64
	TFloat
	TDouble
	TInt2 // 2-wide int vector
	TInt3
	TInt4
	TUInt2
	TUInt3
	TUInt4
	TFloat2
	TFloat3
	TFloat4
	TRange
	TURange
	TString
	TPointer
	TIterator
	TArray
	TTable
	TStructure
	THandle
	TBlock
	TFunction
	TLambda
	TTuple
	TEnumeration
)

// String gives the base tag's daScript-ish spelling, used in error messages
// and mangled names.
func (b BaseType) String() string {
	switch b {
	case TVoid:
		return "void"
	case TBool:
		return "bool"
	case TInt8:
		return "int8"
	case TInt16:
		return "int16"
	case TInt32:
		return "int"
	case TInt64:
		return "int64"
	case TUInt8:
		return "uint8"
	case TUInt16:
		return "uint16"
	case TUInt32:
		return "uint"
	case TUInt64:
		return "uint64"
	case TFloat:
		return "float"
	case TDouble:
		return "double"
	case TInt2:
		return "int2"
	case TInt3:
		return "int3"
	case TInt4:
		return "int4"
	case TUInt2:
		return "uint2"
	case TUInt3:
		return "uint3"
	case TUInt4:
		return "uint4"
	case TFloat2:
		return "float2"
	case TFloat3:
		return "float3"
	case TFloat4:
		return "float4"
	case TRange:
		return "range"
	case TURange:
		return "urange"
	case TString:
		return "string"
	case TPointer:
		return "pointer"
	case TIterator:
		return "iterator"
	case TArray:
		return "array"
	case TTable:
		return "table"
	case TStructure:
		return "structure"
	case THandle:
		return "handle"
	case TBlock:
		return "block"
	case TFunction:
		return "function"
	case TLambda:
		return "lambda"
	case TTuple:
		return "tuple"
	case TEnumeration:
		return "enum"
	default:
		return "?"
	}
}

// mangleTag is the single-character code used by MangledName; kept distinct
// from String() because the mangling scheme is a compact compiler artifact,
// not user-facing text.
func (b BaseType) mangleTag() string {
	switch b {
	case TVoid:
		return "v"
	case TBool:
		return "b"
	case TInt8:
		return "i8"
	case TInt16:
		return "i16"
	case TInt32:
		return "i"
	case TInt64:
		return "i64"
	case TUInt8:
		return "u8"
	case TUInt16:
		return "u16"
	case TUInt32:
		return "u"
	case TUInt64:
		return "u64"
	case TFloat:
		return "f"
	case TDouble:
		return "d"
	case TInt2:
		return "i2"
	case TInt3:
		return "i3"
	case TInt4:
		return "i4"
	case TUInt2:
		return "u2v"
	case TUInt3:
		return "u3v"
	case TUInt4:
		return "u4v"
	case TFloat2:
		return "f2"
	case TFloat3:
		return "f3"
	case TFloat4:
		return "f4"
	case TRange:
		return "rng"
	case TURange:
		return "urng"
	case TString:
		return "s"
	case TPointer:
		return "p"
	case TIterator:
		return "it"
	case TArray:
		return "a"
	case TTable:
		return "t"
	case TStructure:
		return "S"
	case THandle:
		return "H"
	case TBlock:
		return "bl"
	case TFunction:
		return "fn"
	case TLambda:
		return "la"
	case TTuple:
		return "tup"
	case TEnumeration:
		return "E"
	default:
		return "?"
	}
}

// fixedSize and fixedAlign hold the natural size/alignment of every base
// type whose layout does not depend on a descriptor. Structure, Tuple and
// Handle are intentionally absent: TypeDecl.SizeOf/AlignOf special-case
// them.
var fixedSize = map[BaseType]int{
	TVoid:     0,
	TBool:     1,
	TInt8:     1,
	TInt16:    2,
	TInt32:    4,
	TInt64:    8,
	TUInt8:    1,
	TUInt16:   2,
	TUInt32:   4,
	TUInt64:   8,
	TFloat:    4,
	TDouble:   8,
	TInt2:     8,
	TInt3:     12,
	TInt4:     16,
	TUInt2:    8,
	TUInt3:    12,
	TUInt4:    16,
	TFloat2:   8,
	TFloat3:   12,
	TFloat4:   16,
	TRange:    8,  // {from, to} as two int32
	TURange:   8,  // {from, to} as two uint32
	TString:   8,  // pointer-sized handle into the heap
	TPointer:  8,
	TIterator: 8,
	TArray:    16, // {data ptr, size, capacity}
	TTable:    8,  // pointer to the hash table's backing storage
	TBlock:    16, // {argument-stack-base, body SimNode ptr}
	TFunction: 8,
	TLambda:   16,
	TEnumeration: 4, // backed by int32
}

var fixedAlign = map[BaseType]int{
	TVoid:     1,
	TBool:     1,
	TInt8:     1,
	TInt16:    2,
	TInt32:    4,
	TInt64:    8,
	TUInt8:    1,
	TUInt16:   2,
	TUInt32:   4,
	TUInt64:   8,
	TFloat:    4,
	TDouble:   8,
	TInt2:     4,
	TInt3:     4,
	TInt4:     4,
	TUInt2:    4,
	TUInt3:    4,
	TUInt4:    4,
	TFloat2:   4,
	TFloat3:   4,
	TFloat4:   4,
	TRange:    4,
	TURange:   4,
	TString:   8,
	TPointer:  8,
	TIterator: 8,
	TArray:    8,
	TTable:    8,
	TBlock:    8,
	TFunction: 8,
	TLambda:   8,
	TEnumeration: 4,
}

// IsVector reports whether b is one of the 2/3/4-wide int/uint/float
// vector tags.
func (b BaseType) IsVector() bool {
	switch b {
	case TInt2, TInt3, TInt4, TUInt2, TUInt3, TUInt4, TFloat2, TFloat3, TFloat4:
		return true
	default:
		return false
	}
}

// IsInteger reports whether b is one of the signed/unsigned integer scalar
// tags (not counting vectors).
func (b BaseType) IsInteger() bool {
	switch b {
	case TInt8, TInt16, TInt32, TInt64, TUInt8, TUInt16, TUInt32, TUInt64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether b is float or double.
func (b BaseType) IsFloat() bool {
	return b == TFloat || b == TDouble
}

// IsNumeric reports whether arithmetic policies apply to b directly
// (integers, floats and vectors of them).
func (b BaseType) IsNumeric() bool {
	return b.IsInteger() || b.IsFloat() || b.IsVector()
}

// IndexKind reports whether b is a legal array/fixed-dim index type: a
// signed or unsigned 32-bit integer, per spec §4.2's "Good array" indexing
// contract.
func (b BaseType) IndexKind() bool {
	return b == TInt32 || b == TUInt32
}
