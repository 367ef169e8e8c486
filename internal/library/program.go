package library

import "github.com/dascript-lang/dascript/internal/errcat"

// Program owns one user Module plus references to built-in modules,
// collects compile errors, and is the object internal/infer and
// internal/simulate operate on (spec §3, §6.1).
type Program struct {
	UserModule *Module
	Library    *Library // search order: user module first, then built-ins

	Errors []*errcat.CompilerError
}

// NewProgram creates a Program whose user module searches before the
// given built-in modules.
func NewProgram(userModule *Module, builtins ...*Module) *Program {
	lib := NewLibrary(append([]*Module{userModule}, builtins...)...)
	return &Program{UserModule: userModule, Library: lib}
}

// AddError records a compile diagnostic. Per spec §7, inference keeps
// going after most errors: it records the diagnostic and leaves the
// offending node's type unset.
func (p *Program) AddError(err *errcat.CompilerError) {
	p.Errors = append(p.Errors, err)
}

// Failed reports whether any error was recorded (spec §7).
func (p *Program) Failed() bool {
	return len(p.Errors) > 0
}
