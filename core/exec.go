package core

import (
	"bytes"
	"os/exec"
	"strings"
	"unicode"
)

// Runner executes commands the interpreter has no builtin for.
type Runner interface {
	// Run executes argv on the host, feeding input (if any) to stdin, and
	// returns the captured stdout. A nil argv slice is a no-op.
	Run(argv []string, input *string) (*string, error)
}

// NotFoundError reports an executable that could not be located.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return e.Name + ": command not found..."
}

// ExitError carries the captured stderr of a command that exited non-zero.
type ExitError struct {
	Stderr string
}

func (e *ExitError) Error() string {
	return e.Stderr
}

// ExecRunner runs external commands as host subprocesses. It blocks until
// the process exits; there is no timeout or cancellation.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

// Run implements Runner.
func (ExecRunner) Run(argv []string, input *string) (*string, error) {
	if len(argv) == 0 {
		return nil, nil
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, &NotFoundError{Name: argv[0]}
	}

	cmd := exec.Command(path, argv[1:]...)
	if input != nil {
		cmd.Stdin = strings.NewReader(*input)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return nil, &ExitError{Stderr: strings.TrimRightFunc(stderr.String(), unicode.IsSpace)}
		}
		return nil, &NotFoundError{Name: argv[0]}
	}

	out := strings.TrimRightFunc(stdout.String(), unicode.IsSpace)
	return &out, nil
}
