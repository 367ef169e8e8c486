// Package library implements module/name resolution and the Program root:
// an owning mapping from name to structures, enumerations, globals and
// functions, searched across an ordered library of modules, plus the
// compile-error accumulator spec §7 calls the compile-time plane.
package library

import (
	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/types"
)

// Module is an owning mapping from name to structures, enumerations,
// globals and functions; functions are unique by mangled name, and also
// indexed by short name into an overload list (spec §3).
type Module struct {
	Name string

	structures   map[string]*types.Structure
	enumerations map[string]*types.Enumeration
	globals      map[string]*ast.Variable
	functions    map[string]*ast.Function   // by mangled name
	overloads    map[string][]*ast.Function // by short name

	// BuiltIn marks a module contributed by the host (spec §6.5); user
	// modules are false.
	BuiltIn bool
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{
		Name:         name,
		structures:   map[string]*types.Structure{},
		enumerations: map[string]*types.Enumeration{},
		globals:      map[string]*ast.Variable{},
		functions:    map[string]*ast.Function{},
		overloads:    map[string][]*ast.Function{},
	}
}

// AddStructure registers a structure under its short name.
func (m *Module) AddStructure(s *types.Structure) { m.structures[s.Name] = s }

// Structure looks up a structure by short name.
func (m *Module) Structure(name string) (*types.Structure, bool) {
	s, ok := m.structures[name]
	return s, ok
}

// AddEnumeration registers an enumeration under its short name.
func (m *Module) AddEnumeration(e *types.Enumeration) { m.enumerations[e.Name] = e }

// Enumeration looks up an enumeration by short name.
func (m *Module) Enumeration(name string) (*types.Enumeration, bool) {
	e, ok := m.enumerations[name]
	return e, ok
}

// AllEnumerations returns every enumeration the module declares, used by
// inference to resolve a bare constant name against every enum in scope.
func (m *Module) AllEnumerations() []*types.Enumeration {
	out := make([]*types.Enumeration, 0, len(m.enumerations))
	for _, e := range m.enumerations {
		out = append(out, e)
	}
	return out
}

// AddGlobal registers a global variable under its short name.
func (m *Module) AddGlobal(v *ast.Variable) { m.globals[v.Name] = v }

// Global looks up a global variable by short name.
func (m *Module) Global(name string) (*ast.Variable, bool) {
	v, ok := m.globals[name]
	return v, ok
}

// AllGlobals returns every global the module declares, in no particular
// order; internal/simulate sorts before assigning indices.
func (m *Module) AllGlobals() []*ast.Variable {
	out := make([]*ast.Variable, 0, len(m.globals))
	for _, v := range m.globals {
		out = append(out, v)
	}
	return out
}

// AddFunction registers f under its mangled name and appends it to the
// short-name overload list.
func (m *Module) AddFunction(f *ast.Function) {
	m.functions[f.Mangled()] = f
	m.overloads[f.Name] = append(m.overloads[f.Name], f)
}

// FunctionByMangled looks up a function by its exact mangled name.
func (m *Module) FunctionByMangled(mangled string) (*ast.Function, bool) {
	f, ok := m.functions[mangled]
	return f, ok
}

// Overloads returns every function registered under the given short name.
func (m *Module) Overloads(name string) []*ast.Function {
	return m.overloads[name]
}

// AllFunctions returns every function the module declares, for
// simulation's dense-index assignment.
func (m *Module) AllFunctions() []*ast.Function {
	out := make([]*ast.Function, 0, len(m.functions))
	for _, f := range m.functions {
		out = append(out, f)
	}
	return out
}
