package shell

import (
	"strings"
	"unicode"
)

// Variables resolves variable names during expansion.
type Variables interface {
	// Get returns the value of the named variable, or the empty string
	// if it is unset.
	Get(name string) string
}

// Expand substitutes $name references in text with values from vars.
//
// References inside single quotes are copied literally; references inside
// double quotes or bare text are replaced. The name itself extends until
// whitespace, a quote character, another '$', or the end of the text,
// regardless of the quoting state at those characters. A '$' immediately
// followed by a terminator substitutes the empty string and disappears.
func Expand(text string, vars Variables) string {
	runes := []rune(text)
	expandable := expandableDollars(runes)

	var out strings.Builder
	for i := 0; i < len(runes); {
		if expandable[i] {
			start := i + 1
			end := variableEnd(runes, start)
			out.WriteString(vars.Get(string(runes[start:end])))
			i = end
			continue
		}
		out.WriteRune(runes[i])
		i++
	}
	return out.String()
}

// expandableDollars returns the indexes of the '$' characters that are
// subject to expansion: every '$' whose quoting state is not
// single-quoted. A '$' never changes the state itself, so the state after
// processing it equals the state before.
func expandableDollars(runes []rune) map[int]bool {
	out := make(map[int]bool)
	state := unquoted
	for i, ch := range runes {
		state = nextState(state, ch)
		if ch == '$' && state != inSingle {
			out[i] = true
		}
	}
	return out
}

// variableEnd returns the index just past the variable name that starts at
// start. The scan is quote-unaware: only the literal character class ends
// a name.
func variableEnd(runes []rune, start int) int {
	for i := start; i < len(runes); i++ {
		ch := runes[i]
		if unicode.IsSpace(ch) || ch == '\'' || ch == '"' || ch == '$' {
			return i
		}
	}
	return len(runes)
}
