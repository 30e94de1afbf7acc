package core

import "os"

// Environment is the session-scoped variable store. Lookups prefer
// variables assigned during the session and fall back to the process
// environment; a miss yields the empty string, never an error.
type Environment struct {
	vars      map[string]string
	lookupEnv func(string) (string, bool)
}

// NewEnvironment returns an empty store backed by the process environment.
func NewEnvironment() *Environment {
	return &Environment{
		vars:      make(map[string]string),
		lookupEnv: os.LookupEnv,
	}
}

// Get implements shell.Variables.
func (e *Environment) Get(name string) string {
	if value, ok := e.vars[name]; ok {
		return value
	}
	if value, ok := e.lookupEnv(name); ok {
		return value
	}
	return ""
}

// Set assigns a session variable, shadowing the process environment.
func (e *Environment) Set(name, value string) {
	e.vars[name] = value
}
