// Package commands holds the builtin commands the interpreter can run
// without spawning an external process.
package commands

import (
	"github.com/spf13/afero"
)

// OS exposes the host collaborators available to builtin commands.
type OS interface {
	// Fs is the filesystem commands read files from.
	Fs() afero.Fs
	// Getwd returns the current working directory.
	Getwd() (string, error)
}

// Func runs a builtin command. args holds the arguments after the command
// name and input holds the output of the previous pipeline stage, nil if
// there was none. The returned string is the stage's output; nil means the
// stage produced nothing to pass on.
type Func func(sys OS, args []string, input *string) (*string, error)

// AllCommands holds every registered builtin keyed by command name.
var AllCommands = make(map[string]Func)

func addCmd(name string, cmd Func) {
	AllCommands[name] = cmd
}

// UsageError reports a command invocation that could not be decoded.
type UsageError struct {
	Cmd string
	Err error
}

func (e *UsageError) Error() string {
	return e.Cmd + ": " + e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
