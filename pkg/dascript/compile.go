package dascript

import "fmt"

// Compile resolves filename through fa, hands its source to parser, and
// runs inference over the result (spec §6.1's "compile(filename,
// file-access, module-group) → Program"). Recursive `require` linking is
// the Parser's own responsibility per spec §1/§6.2 — this entry point
// only wires the FileAccess lookup a Parser is expected to call back
// into while doing so, and runs the inference pass this core owns once
// parsing returns a Program.
func Compile(filename string, fa FileAccess, parser Parser) (*Program, error) {
	info, ok := fa.GetFileInfo(filename)
	if !ok {
		return nil, fmt.Errorf("dascript: file %q not found", filename)
	}
	prog, err := parser.Parse(info.Source)
	if err != nil {
		return nil, fmt.Errorf("dascript: parse %q: %w", filename, err)
	}
	if err := prog.Infer(); err != nil {
		return prog, err
	}
	return prog, nil
}
