package types

// Field is one member of a Structure: its name, declared type, and the
// byte offset assigned by AssignOffsets.
type Field struct {
	Name   string
	Type   *TypeDecl
	Offset int
}

// Structure is an ordered sequence of fields. Offsets are computed once,
// after parse, by AssignOffsets; until then Offset is -1 for every field.
// Structures compare by identity: two Structure values describe the same
// type iff they are the same *Structure.
type Structure struct {
	Name   string
	Fields []Field

	totalSize  int
	alignment  int
	offsetsSet bool
}

// NewStructure creates an empty structure ready to receive fields via
// AddField.
func NewStructure(name string) *Structure {
	return &Structure{Name: name}
}

// AddField appends a field with no offset assigned yet. Call
// AssignOffsets once every field has been added.
func (s *Structure) AddField(name string, t *TypeDecl) {
	s.Fields = append(s.Fields, Field{Name: name, Type: t, Offset: -1})
	s.offsetsSet = false
}

// Field looks up a field by name; ok is false if it does not exist.
func (s *Structure) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// AssignOffsets computes each field's byte offset respecting its
// alignment, and the structure's own total size/alignment (spec §3: "a
// Structure's offsets are computed after parse respecting each field's
// alignment"). Idempotent.
func (s *Structure) AssignOffsets() {
	offset := 0
	maxAlign := 1
	for i := range s.Fields {
		f := &s.Fields[i]
		align := f.Type.AlignOf()
		if align < 1 {
			align = 1
		}
		offset = alignUp(offset, align)
		f.Offset = offset
		offset += f.Type.SizeOf()
		if align > maxAlign {
			maxAlign = align
		}
	}
	s.totalSize = alignUp(offset, maxAlign)
	s.alignment = maxAlign
	s.offsetsSet = true
}

// SizeOf returns the structure's total byte size, running AssignOffsets
// first if it has not run since the last AddField.
func (s *Structure) SizeOf() int {
	if !s.offsetsSet {
		s.AssignOffsets()
	}
	return s.totalSize
}

// AlignOf returns the structure's own alignment: the max alignment among
// its fields.
func (s *Structure) AlignOf() int {
	if !s.offsetsSet {
		s.AssignOffsets()
	}
	if s.alignment < 1 {
		return 1
	}
	return s.alignment
}

// IsPod reports whether every field is pod (spec §3: "pod iff every field
// is pod; arrays/tables/strings/blocks are non-pod").
func (s *Structure) IsPod() bool {
	for _, f := range s.Fields {
		if !f.Type.IsPod() {
			return false
		}
	}
	return true
}

// CanCopy reports whether the structure is copyable: transitively, iff
// every field is copyable (spec §3).
func (s *Structure) CanCopy() bool {
	for _, f := range s.Fields {
		if !f.Type.CanCopy() {
			return false
		}
	}
	return true
}

// CanMove reports whether every field is movable (arrays/tables/blocks
// are movable even when not copyable; a handle field answers for itself).
func (s *Structure) CanMove() bool {
	for _, f := range s.Fields {
		if !f.Type.CanMove() {
			return false
		}
	}
	return true
}

func alignUp(offset, align int) int {
	if align <= 1 {
		return offset
	}
	rem := offset % align
	if rem == 0 {
		return offset
	}
	return offset + (align - rem)
}
