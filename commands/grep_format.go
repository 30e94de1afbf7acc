package commands

import "strings"

// grepSeparator divides non-intersecting match groups, like bash grep's.
const grepSeparator = "--\n"

// grepFormatter assembles grep output the way the bash version renders it.
//
// When more than one file was searched every emitted line is prefixed with
// its file name, joined by ':' for matches and '-' for context lines. When
// the after-context flag was given explicitly, a '--' separator line is
// inserted between emitted lines that are not adjacent: different sources,
// or a line-index gap greater than one. Lines are stored with their own
// terminators, so the final output is their plain concatenation.
type grepFormatter struct {
	needsFile     bool
	needsSplitter bool

	lastFile  string
	lastIndex int
	hasLast   bool

	lines []string
}

func newGrepFormatter(needsFile, needsSplitter bool) *grepFormatter {
	return &grepFormatter{needsFile: needsFile, needsSplitter: needsSplitter}
}

// addLine appends one emitted line from the given source and line index.
func (f *grepFormatter) addLine(file string, index int, line string, isMatch bool) {
	if f.needsFile {
		divider := ":"
		if !isMatch {
			divider = "-"
		}
		line = file + divider + line
	}

	if f.needsSplitter && f.hasLast && (f.lastFile != file || f.lastIndex+1 < index) {
		f.lines = append(f.lines, grepSeparator)
	}

	f.lastFile, f.lastIndex, f.hasLast = file, index, true
	f.lines = append(f.lines, line)
}

func (f *grepFormatter) format() string {
	return strings.Join(f.lines, "")
}
