package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoreInputNeeded(t *testing.T) {
	cases := []struct {
		name string
		line string
		want bool
	}{
		{"complete command", "echo 4", false},
		{"unclosed single quote", "echo 'a", true},
		{"unclosed double quote", `echo "a`, true},
		{"trailing pipe", "echo 4 |", true},
		{"trailing pipe with whitespace", "echo 4 | \t ", true},
		{"quoted pipe at end", "echo '4|'", false},
		{"empty line", "", false},
		{"balanced quotes", `echo 'a' "b"`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, moreInputNeeded(tc.line))
		})
	}
}
