// Package core contains the pipeline interpreter and the interactive
// shell built on top of it.
package core

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/pipesh/pipesh/commands"
	"github.com/pipesh/pipesh/core/shell"
)

// assignmentPattern recognizes a variable assignment stage: a word-only
// name, '=', and a word-only prefix of the value. Only the prefix is
// anchored, so the value may itself contain further '=' characters.
var assignmentPattern = regexp.MustCompile(`^\w+=\w*`)

// Interpreter executes command pipelines. It owns the session variable
// store and the running flag; both persist across pipelines until the
// exit builtin stops it for good.
//
// An Interpreter is not safe for concurrent use: pipelines run
// synchronously on the calling goroutine, each stage consuming the full
// output of the previous one.
type Interpreter struct {
	vars     *Environment
	fs       afero.Fs
	external Runner
	getwd    func() (string, error)
	running  bool
}

// NewInterpreter returns an interpreter wired to the host: the OS
// filesystem, working directory, process environment, and subprocess
// execution for unknown commands.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		vars:     NewEnvironment(),
		fs:       afero.NewOsFs(),
		external: ExecRunner{},
		getwd:    os.Getwd,
		running:  true,
	}
}

// Vars returns the session variable store.
func (i *Interpreter) Vars() *Environment {
	return i.vars
}

// Running reports whether the interpreter is still accepting pipelines.
// It turns false when a pipeline hits the exit builtin and never turns
// true again.
func (i *Interpreter) Running() bool {
	return i.running
}

// Fs implements commands.OS.
func (i *Interpreter) Fs() afero.Fs {
	return i.fs
}

// Getwd implements commands.OS.
func (i *Interpreter) Getwd() (string, error) {
	return i.getwd()
}

var _ commands.OS = (*Interpreter)(nil)

// Execute runs one pipeline: the line is split into stages on unquoted
// pipes and each stage is expanded, tokenized, and dispatched in order,
// with every stage receiving the previous stage's output as its input.
//
// The result is the last stage's output, nil if it produced none. A
// failing stage aborts the rest of the pipeline and its error becomes the
// returned error; the interpreter itself stays usable. Hitting the exit
// builtin aborts the pipeline with an absent result and stops the
// interpreter permanently.
func (i *Interpreter) Execute(line string) (*string, error) {
	if !i.running {
		return nil, nil
	}

	var input *string
	for _, stage := range shell.SplitPipeline(line) {
		expanded := shell.Expand(stage, i.vars)
		args := shell.SplitArgs(expanded)

		out, err := i.executeCommand(args, input)
		if err != nil {
			return nil, err
		}

		input = out
		if !i.running {
			break
		}
	}
	return input, nil
}

// executeCommand dispatches a single tokenized stage to an assignment,
// the exit transition, a builtin, or the external runner.
func (i *Interpreter) executeCommand(args []string, input *string) (*string, error) {
	switch {
	case isAssignment(args):
		parts := strings.SplitN(args[0], "=", 2)
		i.vars.Set(parts[0], parts[1])
		return nil, nil

	case isExit(args):
		i.running = false
		return nil, nil
	}

	if len(args) > 0 {
		if builtin, ok := commands.AllCommands[args[0]]; ok {
			return builtin(i, args[1:], input)
		}
	}

	return i.external.Run(args, input)
}

func isAssignment(args []string) bool {
	return len(args) == 1 && assignmentPattern.MatchString(args[0])
}

func isExit(args []string) bool {
	return len(args) > 0 && args[0] == "exit"
}
