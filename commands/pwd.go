package commands

import (
	"fmt"
)

// Pwd returns the current working directory. Arguments and input are
// ignored.
func Pwd(sys OS, args []string, input *string) (*string, error) {
	wd, err := sys.Getwd()
	if err != nil {
		return nil, fmt.Errorf("pwd: %w", err)
	}
	return &wd, nil
}

var _ Func = Pwd

func init() {
	addCmd("pwd", Pwd)
}
