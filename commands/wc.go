package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Wc counts newlines, words and bytes in its first file argument, or in
// the previous stage's output when no file is given. Empty text yields no
// output at all.
func Wc(sys OS, args []string, input *string) (*string, error) {
	var text string
	if input != nil {
		text = *input
	}
	if len(args) > 0 {
		data, err := afero.ReadFile(sys.Fs(), args[0])
		if err != nil {
			return nil, fmt.Errorf("wc: %w", err)
		}
		text = string(data)
	}

	if text == "" {
		return nil, nil
	}

	out := fmt.Sprintf("%d %d %d", strings.Count(text, "\n"), len(strings.Fields(text)), len(text))
	return &out, nil
}

var _ Func = Wc

func init() {
	addCmd("wc", Wc)
}
