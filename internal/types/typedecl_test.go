package types

import "testing"

func TestIsSame_PrimitivesAndRefConst(t *testing.T) {
	tests := []struct {
		name         string
		a, b         *TypeDecl
		refMatters   bool
		constMatters bool
		want         bool
	}{
		{"same base", NewPrimitive(TInt32), NewPrimitive(TInt32), false, false, true},
		{"different base", NewPrimitive(TInt32), NewPrimitive(TFloat), false, false, false},
		{"ref ignored", NewPrimitive(TInt32).AsRef(), NewPrimitive(TInt32), false, false, true},
		{"ref matters", NewPrimitive(TInt32).AsRef(), NewPrimitive(TInt32), true, false, false},
		{"const ignored", NewPrimitive(TInt32).AsConst(), NewPrimitive(TInt32), false, false, true},
		{"const matters", NewPrimitive(TInt32).AsConst(), NewPrimitive(TInt32), false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSame(tt.a, tt.b, tt.refMatters, tt.constMatters); got != tt.want {
				t.Errorf("IsSame() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSame_StructuresCompareByIdentity(t *testing.T) {
	s1 := NewStructure("Point")
	s1.AddField("x", NewPrimitive(TInt32))
	s2 := NewStructure("Point")
	s2.AddField("x", NewPrimitive(TInt32))

	t1 := NewStructureType(s1)
	t2 := NewStructureType(s2)
	t1b := NewStructureType(s1)

	if IsSame(t1, t2, true, true) {
		t.Error("distinct Structure values with the same shape must not be IsSame")
	}
	if !IsSame(t1, t1b, true, true) {
		t.Error("same *Structure must be IsSame")
	}
}

func TestMangledName_InjectiveProperty(t *testing.T) {
	s1 := NewStructure("Point")
	s2 := NewStructure("Point")

	cases := []*TypeDecl{
		NewPrimitive(TInt32),
		NewPrimitive(TInt32).AsRef(),
		NewPrimitive(TInt32).AsConst(),
		NewPrimitive(TFloat),
		NewArrayOf(NewPrimitive(TInt32)),
		NewArrayOf(NewPrimitive(TFloat)),
		NewTableOf(NewPrimitive(TString), NewPrimitive(TInt32)),
		NewStructureType(s1),
		NewStructureType(s2),
		NewPrimitive(TInt32).WithDim(3),
		NewPrimitive(TInt32).WithDim(4),
		NewPrimitive(TInt32).WithDim(3, 4),
	}

	for i, a := range cases {
		for j, b := range cases {
			same := IsSame(a, b, true, true)
			mangleEq := a.MangledName() == b.MangledName()
			if same != mangleEq {
				t.Errorf("case %d vs %d: IsSame=%v MangledName equal=%v (%q vs %q)",
					i, j, same, mangleEq, a.MangledName(), b.MangledName())
			}
		}
	}
}

func TestSizeAlignConsistency(t *testing.T) {
	s := NewStructure("Vec3")
	s.AddField("x", NewPrimitive(TDouble))
	s.AddField("y", NewPrimitive(TBool))
	s.AddField("z", NewPrimitive(TDouble))
	st := NewStructureType(s)

	if st.SizeOf()%st.AlignOf() != 0 {
		t.Errorf("size %d not a multiple of align %d", st.SizeOf(), st.AlignOf())
	}

	offset := -1
	for _, f := range s.Fields {
		if f.Offset < offset {
			t.Errorf("field %s offset %d decreased from previous %d", f.Name, f.Offset, offset)
		}
		offset = f.Offset
		if f.Offset%f.Type.AlignOf() != 0 {
			t.Errorf("field %s offset %d not aligned to %d", f.Name, f.Offset, f.Type.AlignOf())
		}
	}
}

func TestStride(t *testing.T) {
	arr := NewPrimitive(TInt32).WithDim(3, 4) // 3 rows of 4 ints
	if got := arr.Stride(); got != 3*4 {
		t.Errorf("Stride() = %d, want %d", got, 12)
	}
	if got := arr.SizeOf(); got != 3*4*4 {
		t.Errorf("SizeOf() = %d, want %d", got, 48)
	}
}

func TestPodCopyMove(t *testing.T) {
	if !NewPrimitive(TInt32).IsPod() {
		t.Error("int should be pod")
	}
	if NewArrayOf(NewPrimitive(TInt32)).IsPod() {
		t.Error("array should not be pod")
	}
	if NewArrayOf(NewPrimitive(TInt32)).CanCopy() {
		t.Error("array should not be copyable")
	}
	if !NewArrayOf(NewPrimitive(TInt32)).CanMove() {
		t.Error("array should be movable")
	}

	s := NewStructure("WithArray")
	s.AddField("items", NewArrayOf(NewPrimitive(TInt32)))
	st := NewStructureType(s)
	if st.IsPod() {
		t.Error("structure containing an array must not be pod")
	}
	if st.CanCopy() {
		t.Error("structure containing a non-copyable field must not be copyable")
	}
}

func TestIsRef(t *testing.T) {
	if !NewStructureType(NewStructure("S")).IsRef() {
		t.Error("structures are inherently ref-held")
	}
	if !NewArrayOf(NewPrimitive(TInt32)).IsRef() {
		t.Error("arrays are inherently ref-held")
	}
	if NewPrimitive(TInt32).IsRef() {
		t.Error("plain scalar int is not ref")
	}
	if !NewPrimitive(TInt32).WithDim(4).IsRef() {
		t.Error("fixed-dim value is ref-held")
	}
}
