package library

import (
	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/types"
)

// Library is an ordered sequence of modules, searched in order when
// resolving an unqualified name (spec §3). A name may be prefixed with
// `module::name` to restrict the search to one module (spec §4.2.1).
type Library struct {
	Modules []*Module
}

// NewLibrary returns a Library searching the given modules in order.
func NewLibrary(modules ...*Module) *Library {
	return &Library{Modules: append([]*Module{}, modules...)}
}

// Add appends a module to the end of the search order.
func (l *Library) Add(m *Module) { l.Modules = append(l.Modules, m) }

// ModuleNamed returns the module with the given name, if any.
func (l *Library) ModuleNamed(name string) (*Module, bool) {
	for _, m := range l.Modules {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// searchOrder returns the modules to search for an unqualified or
// qualified lookup: either every module in library order, or just the one
// named by qualifier.
func (l *Library) searchOrder(qualifier string) ([]*Module, bool) {
	if qualifier == "" {
		return l.Modules, true
	}
	m, ok := l.ModuleNamed(qualifier)
	if !ok {
		return nil, false
	}
	return []*Module{m}, true
}

// FindStructure resolves a (possibly module-qualified) structure name.
func (l *Library) FindStructure(qualifier, name string) (*types.Structure, bool) {
	mods, ok := l.searchOrder(qualifier)
	if !ok {
		return nil, false
	}
	for _, m := range mods {
		if s, ok := m.Structure(name); ok {
			return s, true
		}
	}
	return nil, false
}

// FindEnumeration resolves a (possibly module-qualified) enumeration
// name.
func (l *Library) FindEnumeration(qualifier, name string) (*types.Enumeration, bool) {
	mods, ok := l.searchOrder(qualifier)
	if !ok {
		return nil, false
	}
	for _, m := range mods {
		if e, ok := m.Enumeration(name); ok {
			return e, true
		}
	}
	return nil, false
}

// FindEnumConst resolves a bare constant name against every enumeration
// visible in the search order, returning the owning enumeration and the
// value. Ambiguity (two enums defining the same constant name) resolves
// to the first match in search order, the same way FindGlobal resolves
// an unqualified variable name (unlike function overloads, where a tie
// is reported as ambiguous).
func (l *Library) FindEnumConst(qualifier, name string) (*types.Enumeration, int64, bool) {
	mods, ok := l.searchOrder(qualifier)
	if !ok {
		return nil, 0, false
	}
	for _, m := range mods {
		for _, e := range m.AllEnumerations() {
			if v, ok := e.Lookup(name); ok {
				return e, v, true
			}
		}
	}
	return nil, 0, false
}

// FindGlobal resolves a (possibly module-qualified) global variable name.
func (l *Library) FindGlobal(qualifier, name string) (*ast.Variable, bool) {
	mods, ok := l.searchOrder(qualifier)
	if !ok {
		return nil, false
	}
	for _, m := range mods {
		if v, ok := m.Global(name); ok {
			return v, true
		}
	}
	return nil, false
}

// FindOverloads gathers every function visible under the given
// (possibly module-qualified) short name, across the search order, in
// module order — the candidate pool for spec §4.2.1's overload
// resolution.
func (l *Library) FindOverloads(qualifier, name string) ([]*ast.Function, bool) {
	mods, ok := l.searchOrder(qualifier)
	if !ok {
		return nil, false
	}
	var out []*ast.Function
	for _, m := range mods {
		out = append(out, m.Overloads(name)...)
	}
	return out, true
}
