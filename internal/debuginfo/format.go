package debuginfo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dascript-lang/dascript/internal/sim"
	"github.com/dascript-lang/dascript/internal/types"
)

// Format renders v (a sim.Register) through t's runtime type descriptor,
// recursively, mirroring original_source's Program::dumpDataValue
// traversal (SPEC_FULL.md's "Debug pretty-printing format" supplement).
// A nil t falls back to the raw bit pattern, for values whose static
// type was not threaded through (defensive only; every debug()/hash()
// call site in internal/sim always carries a type).
func Format(t *types.TypeDecl, v sim.Register) string {
	if t == nil {
		return strconv.FormatUint(v.Bits, 10)
	}
	vt := t.AsValue()
	switch vt.Base {
	case types.TVoid:
		return "void"
	case types.TBool:
		return strconv.FormatBool(v.Bool())
	case types.TInt8, types.TInt16, types.TInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case types.TInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case types.TUInt8, types.TUInt16, types.TUInt32:
		return strconv.FormatUint(uint64(v.UInt32()), 10)
	case types.TUInt64:
		return strconv.FormatUint(v.UInt64(), 10)
	case types.TFloat:
		return strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	case types.TDouble:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	case types.TString:
		return strconv.Quote(sim.StringOf(v))
	case types.TEnumeration:
		return formatEnum(vt, v)
	case types.TPointer:
		return formatPointer(vt, v)
	case types.TArray:
		return formatArray(vt, v)
	case types.TTable:
		return formatTable(vt, v)
	case types.TStructure:
		return formatStruct(v)
	case types.TRange, types.TURange:
		return formatRange(v)
	case types.TBlock, types.TLambda:
		return "<block>"
	case types.TFunction:
		return "<function>"
	case types.THandle:
		return formatHandle(vt, v)
	default:
		return strconv.FormatUint(v.Bits, 10)
	}
}

func formatEnum(t *types.TypeDecl, v sim.Register) string {
	if t.Enum != nil {
		if name, ok := t.Enum.NameOf(int64(v.Int32())); ok {
			return name
		}
	}
	return strconv.FormatInt(int64(v.Int32()), 10)
}

func formatPointer(t *types.TypeDecl, v sim.Register) string {
	if v.IsNullPointer() {
		return "null"
	}
	if sv, ok := v.Ptr().(*sim.StructValue); ok {
		return "&" + formatStruct(sim.Register{Ref: sv})
	}
	elem := "?"
	if t.FirstType != nil {
		elem = t.FirstType.MangledName()
	}
	return fmt.Sprintf("&<%s>", elem)
}

func formatArray(t *types.TypeDecl, v sim.Register) string {
	av, ok := v.Ref.(*sim.ArrayValue)
	if !ok || av == nil {
		return "[]"
	}
	parts := make([]string, len(av.Items))
	for i, it := range av.Items {
		parts[i] = Format(av.Elem, it)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatTable(t *types.TypeDecl, v sim.Register) string {
	tv, ok := v.Ref.(*sim.TableValue)
	if !ok || tv == nil {
		return "{}"
	}
	keys, values := tv.Keys(), tv.Values()
	parts := make([]string, len(keys))
	for i := range keys {
		parts[i] = Format(tv.Key, keys[i]) + ": " + Format(tv.Value, values[i])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatStruct(v sim.Register) string {
	sv, ok := v.Ref.(*sim.StructValue)
	if !ok || sv == nil {
		return "null"
	}
	parts := make([]string, len(sv.Fields))
	for i, f := range sv.Fields {
		name, ft := "?", (*types.TypeDecl)(nil)
		if i < len(sv.Decl.Fields) {
			name = sv.Decl.Fields[i].Name
			ft = sv.Decl.Fields[i].Type
		}
		parts[i] = name + " = " + Format(ft, f)
	}
	return sv.Decl.Name + " { " + strings.Join(parts, ", ") + " }"
}

func formatRange(v sim.Register) string {
	rv, ok := v.Ref.(*sim.RangeValue)
	if !ok || rv == nil {
		return "0..0"
	}
	return fmt.Sprintf("%d..%d", rv.From, rv.To)
}

func formatHandle(t *types.TypeDecl, v sim.Register) string {
	name := "handle"
	if t.Annotation != nil {
		name = t.Annotation.Name()
	}
	return fmt.Sprintf("<%s>", name)
}

// Label renders the "label = value" / "value" form spec §4.2's debug
// intrinsic contract calls for (an optional string-constant label).
func Label(label string, t *types.TypeDecl, v sim.Register) string {
	rendered := Format(t, v)
	if label == "" {
		return rendered
	}
	return label + " = " + rendered
}

// NewPrinter returns a sim.DebugSink that writes each debug() call's
// rendered form to write (e.g. os.Stdout from cmd/dascript, or a
// strings.Builder in a test), one line per call.
func NewPrinter(write func(string)) sim.DebugSink {
	return func(label string, t *types.TypeDecl, v sim.Register) {
		write(Label(label, t, v))
	}
}
