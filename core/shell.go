package core

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"

	"github.com/pipesh/pipesh/core/config"
	"github.com/pipesh/pipesh/core/shell"
)

var promptColor = color.New(color.FgGreen, color.Bold)

// Shell is the interactive read/execute loop around one Interpreter.
type Shell struct {
	Interp   *Interpreter
	Readline *readline.Instance
	config   *config.Configuration
}

// NewShell builds a shell for the given configuration, seeding the
// session variables from its env section.
func NewShell(cfg *config.Configuration) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return nil, err
	}

	interp := NewInterpreter()
	for name, value := range cfg.Env {
		interp.Vars().Set(name, value)
	}

	return &Shell{
		Interp:   interp,
		Readline: rl,
		config:   cfg,
	}, nil
}

func (s *Shell) prompt() string {
	if s.config.ColorPrompt {
		return promptColor.Sprint(s.config.Prompt)
	}
	return s.config.Prompt
}

// ReadCommand reads one logical command, querying continuation lines
// while the quotes don't balance or the input ends with a pipe. The
// continuation lines are joined with newlines, exactly as typed.
func (s *Shell) ReadCommand() (string, error) {
	s.Readline.SetPrompt(s.prompt())
	line, err := s.Readline.Readline()
	if err != nil {
		return "", err
	}

	for moreInputNeeded(line) {
		s.Readline.SetPrompt(s.config.ContinuationPrompt)
		next, err := s.Readline.Readline()
		if err != nil {
			return "", err
		}
		line += "\n" + next
	}

	return line, nil
}

// moreInputNeeded reports whether line is an unfinished command: its
// quotes don't balance, or it ends with a trailing pipe once right-hand
// whitespace is dropped.
func moreInputNeeded(line string) bool {
	if !shell.QuotesMatch(line) {
		return true
	}
	return strings.HasSuffix(strings.TrimRightFunc(line, unicode.IsSpace), "|")
}

// Run executes pipelines until the exit builtin stops the interpreter or
// the input is closed. Pipeline failures are printed like any other
// result and never stop the loop.
func (s *Shell) Run() error {
	for s.Interp.Running() {
		line, err := s.ReadCommand()
		switch {
		case err == io.EOF:
			return nil
		case err == readline.ErrInterrupt:
			continue
		case err != nil:
			return err
		}

		out, execErr := s.Interp.Execute(line)
		switch {
		case execErr != nil:
			fmt.Fprintln(s.Readline, execErr)
		case out != nil && *out != "":
			fmt.Fprintln(s.Readline, *out)
		}
	}
	return nil
}

func (s *Shell) Close() error {
	return s.Readline.Close()
}
