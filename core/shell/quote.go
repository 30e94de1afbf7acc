// Package shell implements the quote-aware text processing used to turn
// raw command lines into pipelines and argument lists.
//
// Quoting follows the POSIX shell rules for single and double quotes:
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/V3_chap02.html
package shell

import (
	"strings"
	"unicode"
)

// quoteState tracks whether a scan position sits inside quotes.
type quoteState int

const (
	unquoted quoteState = iota
	inSingle
	inDouble
)

// nextState advances the quoting state machine by one character.
//
// A double quote toggles between unquoted and double-quoted but is inert
// inside single quotes; a single quote toggles between unquoted and
// single-quoted but is inert inside double quotes. Every other character
// leaves the state unchanged.
func nextState(state quoteState, ch rune) quoteState {
	switch {
	case ch == '"' && state != inSingle:
		if state == inDouble {
			return unquoted
		}
		return inDouble
	case ch == '\'' && state != inDouble:
		if state == inSingle {
			return unquoted
		}
		return inSingle
	default:
		return state
	}
}

// QuotesMatch reports whether every quote opened in text is closed again:
// scanning the whole string ends back in the unquoted state.
func QuotesMatch(text string) bool {
	state := unquoted
	for _, ch := range text {
		state = nextState(state, ch)
	}
	return state == unquoted
}

// structural reports whether a character at the current scan position is
// unquoted in the structural sense: either the state before or the state
// after processing it is unquoted. This deliberately includes the quote
// characters that open and close a quoted region.
func structural(before, after quoteState) bool {
	return before == unquoted || after == unquoted
}

// splitOnUnquoted splits text at every structural character matching pred.
// The delimiters themselves are consumed; quoted occurrences stay inside
// their segment verbatim. Splitting the empty string yields one empty
// segment, and n delimiters always yield n+1 segments.
func splitOnUnquoted(text string, pred func(rune) bool) []string {
	var parts []string
	var cur strings.Builder
	state := unquoted
	for _, ch := range text {
		before := state
		state = nextState(state, ch)
		if pred(ch) && structural(before, state) {
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(ch)
	}
	return append(parts, cur.String())
}

// StripQuotes removes the structural quote characters from text, leaving
// quoted content (including quotes of the other kind) intact.
func StripQuotes(text string) string {
	var out strings.Builder
	state := unquoted
	for _, ch := range text {
		before := state
		state = nextState(state, ch)
		if (ch == '\'' || ch == '"') && structural(before, state) {
			continue
		}
		out.WriteRune(ch)
	}
	return out.String()
}

// SplitPipeline splits a command line into its pipeline stages on unquoted
// pipe characters. The stage strings are returned unexpanded and untrimmed.
func SplitPipeline(line string) []string {
	return splitOnUnquoted(line, func(ch rune) bool { return ch == '|' })
}

// SplitArgs splits an expanded stage into its argument words on unquoted
// whitespace and strips the structural quotes from each word. Words that
// are empty after stripping are dropped.
func SplitArgs(stage string) []string {
	var args []string
	for _, word := range splitOnUnquoted(stage, unicode.IsSpace) {
		if stripped := StripQuotes(word); stripped != "" {
			args = append(args, stripped)
		}
	}
	return args
}
