package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

// testOS is an in-memory stand-in for the interpreter's host collaborators.
type testOS struct {
	fs afero.Fs
	wd string
}

func newTestOS() *testOS {
	return &testOS{
		fs: afero.NewMemMapFs(),
		wd: "/home/test",
	}
}

func (t *testOS) Fs() afero.Fs {
	return t.fs
}

func (t *testOS) Getwd() (string, error) {
	return t.wd, nil
}

var _ OS = (*testOS)(nil)

func strp(s string) *string {
	return &s
}

func TestAllCommands(t *testing.T) {
	for _, name := range []string{"echo", "cat", "wc", "pwd", "grep"} {
		t.Run(name, func(t *testing.T) {
			cmd, ok := AllCommands[name]
			assert.True(t, ok, "missing builtin %q", name)
			assert.NotNil(t, cmd)
		})
	}
}

func TestUsageError(t *testing.T) {
	err := &UsageError{Cmd: "grep", Err: assert.AnError}
	assert.Equal(t, "grep: "+assert.AnError.Error(), err.Error())
	assert.Equal(t, assert.AnError, err.Unwrap())
}
