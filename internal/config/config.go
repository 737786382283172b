// Package config loads optional project-local default files for the
// four stage binaries. Flags always win over a config file; a missing
// file is not an error, defaults simply apply (spec §6 "Configuration
// layer").
package config

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadTOML decodes path into v if it exists. Used by cmd/pager and
// cmd/contents for their typeset.toml defaults.
func LoadTOML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	_, err = toml.Decode(string(data), v)
	return err
}

// LoadYAML decodes path into v if it exists. Used by cmd/markup-reader
// and cmd/markup-raw for their typeset.yaml defaults.
func LoadYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, v)
}
