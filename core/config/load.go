package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads and validates the configuration file at path.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	contents, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Initialize writes the default configuration file into dir unless one
// already exists, and returns the resulting configuration either way.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	path := filepath.Join(dir, ConfigurationName)

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Printf("configuration already exists at %s", path)
		return Load(fsys, path)
	}

	if err := afero.WriteFile(fsys, path, defaultConfigData, 0644); err != nil {
		return nil, err
	}
	logger.Printf("wrote default configuration to %s", path)
	return Default(), nil
}
