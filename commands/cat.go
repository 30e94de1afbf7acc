package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Cat implements the UNIX cat command over the interpreter's filesystem.
// With no arguments it passes the previous stage's output through
// unchanged; otherwise it returns the concatenated contents of its file
// arguments.
func Cat(sys OS, args []string, input *string) (*string, error) {
	if len(args) == 0 {
		return input, nil
	}

	var sb strings.Builder
	for _, name := range args {
		data, err := afero.ReadFile(sys.Fs(), name)
		if err != nil {
			return nil, fmt.Errorf("cat: %w", err)
		}
		sb.Write(data)
	}

	out := sb.String()
	return &out, nil
}

var _ Func = Cat

func init() {
	addCmd("cat", Cat)
}
