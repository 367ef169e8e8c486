package debuginfo

import (
	"testing"

	"github.com/dascript-lang/dascript/internal/sim"
	"github.com/dascript-lang/dascript/internal/types"
	"github.com/gkampitakis/go-snaps/snaps"
)

// Snapshot-tested the way the teacher's fixture_test.go golden-compares
// pretty-printed program output: Format's recursive traversal is the
// piece most likely to silently drift (field order, quoting, nesting) as
// internal/types grows, so a snapshot catches that without hand-writing
// every expected string.
func TestFormat_Snapshot(t *testing.T) {
	cases := map[string]struct {
		t *types.TypeDecl
		v sim.Register
	}{
		"int":    {types.NewPrimitive(types.TInt32), sim.Int32Register(42)},
		"bool":   {types.NewPrimitive(types.TBool), sim.BoolRegister(true)},
		"string": {types.NewPrimitive(types.TString), sim.StringRegister("hello")},
		"null_pointer": {
			types.NewPointerTo(types.NewPrimitive(types.TInt32)),
			sim.Null,
		},
		"array": {
			types.NewArrayOf(types.NewPrimitive(types.TInt32)),
			sim.Register{Ref: &sim.ArrayValue{
				Elem:  types.NewPrimitive(types.TInt32),
				Items: []sim.Register{sim.Int32Register(1), sim.Int32Register(2), sim.Int32Register(3)},
			}},
		},
		"struct": {
			types.NewStructureType(pointStruct()),
			sim.Register{Ref: pointValue(1, 2)},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			snaps.MatchSnapshot(t, name, Format(c.t, c.v))
		})
	}
}

func pointStruct() *types.Structure {
	s := types.NewStructure("Point")
	s.AddField("x", types.NewPrimitive(types.TInt32))
	s.AddField("y", types.NewPrimitive(types.TInt32))
	s.AssignOffsets()
	return s
}

func pointValue(x, y int32) *sim.StructValue {
	sv := sim.NewStructValue(pointStruct())
	sv.Fields[0] = sim.Int32Register(x)
	sv.Fields[1] = sim.Int32Register(y)
	return sv
}
