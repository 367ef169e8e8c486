package debuginfo

import (
	"sort"

	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/library"
	"github.com/dascript-lang/dascript/internal/types"
)

// FieldInfo mirrors one types.Field for host inspection, without
// exposing the internal/types package to callers that only want names,
// mangled type strings and byte offsets (e.g. a REPL's `:fields Point`
// command).
type FieldInfo struct {
	Name   string
	Type   string // MangledName of the field's declared type
	Offset int
}

// StructInfo mirrors a types.Structure.
type StructInfo struct {
	Name   string
	Fields []FieldInfo
	Size   int
	Align  int
}

// EnumInfo mirrors a types.Enumeration.
type EnumInfo struct {
	Name   string
	Values []types.EnumValue
}

// VariableInfo mirrors an ast.Variable (global or argument).
type VariableInfo struct {
	Name string
	Type string
	// Index is the dense global slot, or -1 for a non-global.
	Index int
}

// FunctionInfo mirrors an ast.Function signature (not its body — the
// mirror is for signatures and type shapes, not for re-interpreting
// code).
type FunctionInfo struct {
	Name      string
	Mangled   string
	Arguments []VariableInfo
	Result    string
	BuiltIn   bool
}

// ModuleInfo mirrors one library.Module's exported declarations.
type ModuleInfo struct {
	Name        string
	BuiltIn     bool
	Structures  []StructInfo
	Enumerations []EnumInfo
	Globals     []VariableInfo
	Functions   []FunctionInfo
}

// DescribeStruct mirrors s (spec §2 item 7).
func DescribeStruct(s *types.Structure) StructInfo {
	fields := make([]FieldInfo, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = FieldInfo{Name: f.Name, Type: f.Type.MangledName(), Offset: f.Offset}
	}
	return StructInfo{Name: s.Name, Fields: fields, Size: s.SizeOf(), Align: s.AlignOf()}
}

// DescribeEnum mirrors e.
func DescribeEnum(e *types.Enumeration) EnumInfo {
	return EnumInfo{Name: e.Name, Values: append([]types.EnumValue{}, e.Values...)}
}

// DescribeVariable mirrors v.
func DescribeVariable(v *ast.Variable) VariableInfo {
	return VariableInfo{Name: v.Name, Type: v.Decl.MangledName(), Index: v.Index}
}

// DescribeFunction mirrors fn's signature.
func DescribeFunction(fn *ast.Function) FunctionInfo {
	args := make([]VariableInfo, len(fn.Arguments))
	for i, a := range fn.Arguments {
		args[i] = DescribeVariable(a)
	}
	return FunctionInfo{
		Name:      fn.Name,
		Mangled:   fn.Mangled(),
		Arguments: args,
		Result:    fn.Result.MangledName(),
		BuiltIn:   fn.BuiltIn,
	}
}

// DescribeModule mirrors m's functions, globals and enumerations, sorted
// by name so the result is deterministic for snapshot tests and REPL
// ":module" dumps. Structures is left empty: library.Module offers no way
// to list the structures it owns.
func DescribeModule(m *library.Module) ModuleInfo {
	info := ModuleInfo{Name: m.Name, BuiltIn: m.BuiltIn}

	for _, fn := range m.AllFunctions() {
		info.Functions = append(info.Functions, DescribeFunction(fn))
	}
	sort.Slice(info.Functions, func(i, j int) bool { return info.Functions[i].Mangled < info.Functions[j].Mangled })

	for _, v := range m.AllGlobals() {
		info.Globals = append(info.Globals, DescribeVariable(v))
	}
	sort.Slice(info.Globals, func(i, j int) bool { return info.Globals[i].Name < info.Globals[j].Name })

	for _, e := range m.AllEnumerations() {
		info.Enumerations = append(info.Enumerations, DescribeEnum(e))
	}
	sort.Slice(info.Enumerations, func(i, j int) bool { return info.Enumerations[i].Name < info.Enumerations[j].Name })

	return info
}

// DescribeProgram mirrors every module in prog's search order.
func DescribeProgram(prog *library.Program) []ModuleInfo {
	out := make([]ModuleInfo, 0, len(prog.Library.Modules))
	for _, m := range prog.Library.Modules {
		out = append(out, DescribeModule(m))
	}
	return out
}
