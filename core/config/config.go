// Package config loads and validates the shell configuration.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file name Initialize writes and Load expects.
const ConfigurationName = "config.yaml"

// Configuration holds the user-tunable shell settings.
type Configuration struct {
	// Prompt is shown before each new command line.
	Prompt string `json:"prompt" validate:"required"`
	// ContinuationPrompt is shown while a command still needs more input.
	ContinuationPrompt string `json:"continuation_prompt" validate:"required"`
	// ColorPrompt renders the prompt in bold green on capable terminals.
	ColorPrompt bool `json:"color_prompt"`
	// HistoryFile is the readline history path; empty disables history.
	HistoryFile string `json:"history_file"`
	// Env seeds the session variable store before the first command.
	Env map[string]string `json:"env"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	// Will panic() on load failure because it should never happen at runtime.
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
