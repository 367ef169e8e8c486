package sim

// StringValue is the runtime representation of a dynamic string: the
// {hash, length} header from spec §4.4 plus its bytes, with the hash
// stored in Hash and the length taken from len(Data). SPEC_FULL.md's
// supplemented string header chooses FNV-1a for Hash.
type StringValue struct {
	Hash uint32
	Data string
}

const (
	fnvOffsetBasis32 uint32 = 2166136261
	fnvPrime32       uint32 = 16777619
)

// FNV1a32 hashes data per SPEC_FULL.md's decided string-header hash.
func FNV1a32(data string) uint32 {
	h := fnvOffsetBasis32
	for i := 0; i < len(data); i++ {
		h ^= uint32(data[i])
		h *= fnvPrime32
	}
	return h
}

// NewStringValue builds a header-carrying string value.
func NewStringValue(s string) *StringValue {
	return &StringValue{Hash: FNV1a32(s), Data: s}
}

// StringRegister wraps s in a Register; the empty string is represented
// by a nil Ref exactly like a null pointer (spec §4.4: "a null pointer
// is rendered as a canonical empty string").
func StringRegister(s string) Register {
	if s == "" {
		return Register{}
	}
	return Register{Ref: NewStringValue(s)}
}

// StringOf reads a string Register's text; a null Ref renders as "".
func StringOf(r Register) string {
	if r.Ref == nil {
		return ""
	}
	sv, ok := r.Ref.(*StringValue)
	if !ok {
		return ""
	}
	return sv.Data
}

// HashOf returns a string Register's header hash, recomputing for the
// canonical empty string (hash of "" is well-defined and constant).
func HashOf(r Register) uint32 {
	if r.Ref == nil {
		return FNV1a32("")
	}
	sv, ok := r.Ref.(*StringValue)
	if !ok {
		return FNV1a32("")
	}
	return sv.Hash
}

// LengthOf returns a string Register's length via its header, avoiding a
// second scan of the bytes (spec §4.4: "use the header's length where
// possible").
func LengthOf(r Register) int {
	if r.Ref == nil {
		return 0
	}
	sv, ok := r.Ref.(*StringValue)
	if !ok {
		return 0
	}
	return len(sv.Data)
}

// ConcatStrings builds a new header-carrying value from two string
// Registers.
func ConcatStrings(a, b Register) Register {
	return StringRegister(StringOf(a) + StringOf(b))
}

// StringsEqual compares by header hash first, falling back to the bytes
// only when hashes collide (spec §4.4, "equality use the header's length
// where possible" generalized to the hash as a fast-reject).
func StringsEqual(a, b Register) bool {
	if HashOf(a) != HashOf(b) {
		return false
	}
	return StringOf(a) == StringOf(b)
}
