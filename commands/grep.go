package commands

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"
)

// grepOptions holds one decoded grep invocation.
type grepOptions struct {
	pattern      *regexp.Regexp
	files        []string
	afterContext int
	// contextSet records whether -A was given at all, even as -A 0. It
	// controls whether group separators are emitted.
	contextSet bool
}

// parseGrepArgs decodes the grep flag grammar: an optional leading flag
// cluster, one required PATTERN, and zero or more FILE paths.
func parseGrepArgs(args []string) (*grepOptions, error) {
	opts := getopt.New()
	ignoreCase := opts.BoolLong("ignore-case", 'i', "ignore case distinctions in the pattern")
	wordRegexp := opts.BoolLong("word-regexp", 'w', "select only lines containing whole-word matches")
	afterContext := opts.IntLong("after-context", 'A', 0, "print NUM lines of trailing context after matching lines", "NUM")

	if err := opts.Getopt(append([]string{"grep"}, args...), nil); err != nil {
		return nil, err
	}

	rest := opts.Args()
	if len(rest) == 0 {
		return nil, errors.New("the following arguments are required: PATTERN")
	}
	if *afterContext < 0 {
		return nil, fmt.Errorf("%d: invalid context length argument", *afterContext)
	}

	pattern := rest[0]
	if *wordRegexp {
		pattern = `\b` + pattern + `\b`
	}
	if *ignoreCase {
		pattern = "(?i)" + pattern
	}
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &grepOptions{
		pattern:      regex,
		files:        rest[1:],
		afterContext: *afterContext,
		contextSet:   opts.Lookup("after-context").Seen(),
	}, nil
}

// Grep searches its file arguments, or the previous stage's output when no
// files are given, for lines matching PATTERN and renders them the way the
// bash grep does.
func Grep(sys OS, args []string, input *string) (*string, error) {
	opts, err := parseGrepArgs(args)
	if err != nil {
		return nil, &UsageError{Cmd: "grep", Err: err}
	}

	formatter := newGrepFormatter(len(opts.files) > 1, opts.contextSet)
	if len(opts.files) == 0 {
		var text string
		if input != nil {
			text = *input
		}
		grepSource(opts, formatter, "", text)
	} else {
		for _, name := range opts.files {
			data, err := afero.ReadFile(sys.Fs(), name)
			if err != nil {
				return nil, fmt.Errorf("grep: %w", err)
			}
			grepSource(opts, formatter, name, string(data))
		}
	}

	out := formatter.format()
	return &out, nil
}

// grepSource scans one input source and feeds matching lines and their
// trailing context window to the formatter.
//
// printBoundary is the last line index still covered by an open context
// window; it only ever moves forward because afterContext is constant and
// the line index increases.
func grepSource(opts *grepOptions, out *grepFormatter, name, text string) {
	printBoundary := -1
	for i, line := range splitLinesKeepEnds(text) {
		switch {
		case opts.pattern.MatchString(line):
			printBoundary = i + opts.afterContext
			out.addLine(name, i, line, true)
		case i <= printBoundary:
			out.addLine(name, i, line, false)
		}
	}
}

// splitLinesKeepEnds splits text into lines that keep their own
// terminators; a final line without a newline is returned as-is.
func splitLinesKeepEnds(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

var _ Func = Grep

func init() {
	addCmd("grep", Grep)
}
