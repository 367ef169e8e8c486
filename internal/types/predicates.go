package types

// IsSame reports whether a and b are structurally equal, per spec §4.1.
// Structures compare by identity (same declaration); handles by annotation
// identity; compound types recurse on FirstType/SecondType; Dim is
// compared element-wise; block/function/lambda/tuple additionally compare
// ArgTypes when present.
func IsSame(a, b *TypeDecl, refMatters, constMatters bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Base != b.Base {
		return false
	}
	if refMatters && a.Ref != b.Ref {
		return false
	}
	if constMatters && a.Constant != b.Constant {
		return false
	}
	if len(a.Dim) != len(b.Dim) {
		return false
	}
	for i := range a.Dim {
		if a.Dim[i] != b.Dim[i] {
			return false
		}
	}

	switch a.Base {
	case TStructure:
		return a.StructType == b.StructType
	case TEnumeration:
		return a.Enum == b.Enum
	case THandle:
		return a.Annotation == b.Annotation
	}

	if !isSameOrBothNil(a.FirstType, b.FirstType, refMatters, constMatters) {
		return false
	}
	if !isSameOrBothNil(a.SecondType, b.SecondType, refMatters, constMatters) {
		return false
	}

	switch a.Base {
	case TBlock, TFunction, TLambda, TTuple:
		if len(a.ArgTypes) != len(b.ArgTypes) {
			return false
		}
		for i := range a.ArgTypes {
			if !isSameOrBothNil(a.ArgTypes[i], b.ArgTypes[i], refMatters, constMatters) {
				return false
			}
		}
	}
	return true
}

func isSameOrBothNil(a, b *TypeDecl, refMatters, constMatters bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return IsSame(a, b, refMatters, constMatters)
}

// IsRef reports whether the value is reference-valued, or inherently held
// by reference: structures, arrays, tables, and any type with a non-empty
// Dim (spec §4.1).
func (t *TypeDecl) IsRef() bool {
	if t.Ref {
		return true
	}
	if len(t.Dim) > 0 {
		return true
	}
	switch t.Base {
	case TStructure, TArray, TTable:
		return true
	default:
		return false
	}
}

// IsPod reports whether t is "plain old data": false if it contains an
// array, table, string, or block anywhere (spec §4.1).
func (t *TypeDecl) IsPod() bool {
	if len(t.Dim) > 0 {
		// A fixed-dim value is pod iff its scalar element is pod; the
		// dimensions themselves are laid out inline, not as a dynamic
		// array.
		return t.scalarOf().IsPod()
	}
	switch t.Base {
	case TArray, TTable, TString, TBlock:
		return false
	case TStructure:
		return t.StructType.IsPod()
	case THandle:
		return t.Annotation.IsPod()
	case TTuple:
		for _, a := range t.ArgTypes {
			if !a.IsPod() {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// CanCopy reports whether a value of type t may be copy-assigned (`=`).
// Arrays, tables and blocks are not copyable but are movable (spec §4.1).
func (t *TypeDecl) CanCopy() bool {
	if len(t.Dim) > 0 {
		return t.scalarOf().CanCopy()
	}
	switch t.Base {
	case TArray, TTable, TBlock:
		return false
	case TStructure:
		return t.StructType.CanCopy()
	case THandle:
		return t.Annotation.CanCopy()
	case TTuple:
		for _, a := range t.ArgTypes {
			if !a.CanCopy() {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// CanMove reports whether a value of type t may be move-assigned (`<-`).
func (t *TypeDecl) CanMove() bool {
	if len(t.Dim) > 0 {
		return t.scalarOf().CanMove()
	}
	switch t.Base {
	case TStructure:
		return t.StructType.CanMove()
	case THandle:
		return t.Annotation.CanMove()
	case TTuple:
		for _, a := range t.ArgTypes {
			if !a.CanMove() {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// IsConst reports whether writes through t are forbidden.
func (t *TypeDecl) IsConst() bool {
	return t.Constant
}
