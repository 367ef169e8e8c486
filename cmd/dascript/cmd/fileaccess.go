package cmd

import (
	"os"
	"path/filepath"

	"github.com/dascript-lang/dascript/pkg/dascript"
)

// osFileAccess is the FileAccess collaborator (spec §6.2) backing CLI
// commands that read scripts from disk, as opposed to the in-memory
// dascript.MapFileAccess used by tests and embedders without a
// filesystem. Grounded on the teacher's cmd/dwscript/cmd/run.go's plain
// os.ReadFile(filename) call, generalized into the pluggable interface
// this core's compile() entry point expects.
type osFileAccess struct{}

func (osFileAccess) GetFileInfo(name string) (dascript.FileInfo, bool) {
	data, err := os.ReadFile(name)
	if err != nil {
		return dascript.FileInfo{}, false
	}
	return dascript.FileInfo{Source: string(data), Length: len(data)}, true
}

// ResolveInclude joins base's directory with includeName, the most
// common `require` resolution rule for a file-backed front end.
func (osFileAccess) ResolveInclude(base, includeName string) (string, error) {
	return filepath.Join(filepath.Dir(base), includeName), nil
}
