package commands

import (
	"strings"
)

// Echo implements a limited echo command: it returns its arguments joined
// by single spaces and ignores its input.
func Echo(sys OS, args []string, input *string) (*string, error) {
	out := strings.Join(args, " ")
	return &out, nil
}

var _ Func = Echo

func init() {
	addCmd("echo", Echo)
}
