package types

// EnumValue is one named constant of an Enumeration.
type EnumValue struct {
	Name  string
	Value int64
}

// Enumeration is a named, closed set of int32-backed constants. Spec.md's
// base-tag list names `enumeration` but leaves its operation contract
// implicit; SPEC_FULL.md §"Supplemented features" adds it as a first-class
// type since any program that declares `enum Foo ... end` needs it.
// Enumerations compare by identity, like Structure.
type Enumeration struct {
	Name   string
	Values []EnumValue

	byName map[string]int64
}

// NewEnumeration creates an empty enumeration.
func NewEnumeration(name string) *Enumeration {
	return &Enumeration{Name: name, byName: map[string]int64{}}
}

// Add registers a named constant. Add does not reject duplicate names: a
// duplicate is appended to Values and replaces the name's Lookup binding.
func (e *Enumeration) Add(name string, value int64) {
	e.Values = append(e.Values, EnumValue{Name: name, Value: value})
	if e.byName == nil {
		e.byName = map[string]int64{}
	}
	e.byName[name] = value
}

// Lookup returns the value bound to name, if any.
func (e *Enumeration) Lookup(name string) (int64, bool) {
	v, ok := e.byName[name]
	return v, ok
}

// NameOf returns the first constant name bound to v, for pretty-printing.
func (e *Enumeration) NameOf(v int64) (string, bool) {
	for _, ev := range e.Values {
		if ev.Value == v {
			return ev.Name, true
		}
	}
	return "", false
}
