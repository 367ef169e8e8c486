package types

// baseSize returns base_size(t): the size of one scalar element of t,
// ignoring Dim. Structures/tuples/handles defer to their descriptors.
func (t *TypeDecl) baseSize() int {
	switch t.Base {
	case TStructure:
		return t.StructType.SizeOf()
	case THandle:
		return t.Annotation.Size()
	case TTuple:
		size := 0
		maxAlign := 1
		for _, a := range t.ArgTypes {
			align := a.AlignOf()
			if align < 1 {
				align = 1
			}
			size = alignUp(size, align)
			size += a.SizeOf()
			if align > maxAlign {
				maxAlign = align
			}
		}
		return alignUp(size, maxAlign)
	default:
		if sz, ok := fixedSize[t.Base]; ok {
			return sz
		}
		return 0
	}
}

// SizeOf returns size_of(t) = base_size(t) * product(dim), per spec §4.1.
func (t *TypeDecl) SizeOf() int {
	n := t.baseSize()
	for _, d := range t.Dim {
		n *= d
	}
	return n
}

// AlignOf returns align_of(t): the max alignment of t's constituent parts.
func (t *TypeDecl) AlignOf() int {
	switch t.Base {
	case TStructure:
		return t.StructType.AlignOf()
	case THandle:
		a := t.Annotation.Align()
		if a < 1 {
			return 1
		}
		return a
	case TTuple:
		maxAlign := 1
		for _, a := range t.ArgTypes {
			if al := a.AlignOf(); al > maxAlign {
				maxAlign = al
			}
		}
		return maxAlign
	default:
		if a, ok := fixedAlign[t.Base]; ok {
			return a
		}
		return 1
	}
}

// Stride returns the product of all but the last Dim entry, times
// base_size, in bytes (spec §4.1). For a scalar or single-dim array,
// Stride equals base_size.
func (t *TypeDecl) Stride() int {
	n := t.baseSize()
	if len(t.Dim) <= 1 {
		return n
	}
	for _, d := range t.Dim[:len(t.Dim)-1] {
		n *= d
	}
	return n
}
