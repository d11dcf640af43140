package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// fileOptions is the YAML document shape a project's config file takes.
// Fields are pointers so an absent key in the document leaves the
// corresponding Options default untouched, rather than zeroing it out.
type fileOptions struct {
	MaxLines           *int  `yaml:"max_lines"`
	MaxOptimizerPasses *int  `yaml:"max_optimizer_passes"`
	PreserveRem        *bool `yaml:"preserve_rem"`
}

// LoadFile reads a YAML config file at path and returns the Options it
// describes, layered on top of the same defaults New() would use.
//
// A minimal config file looks like:
//
//	max_lines: 2000
//	max_optimizer_passes: 16
//	preserve_rem: true
func LoadFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var fo fileOptions
	if err := yaml.Unmarshal(data, &fo); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	var opts []Option
	if fo.MaxLines != nil {
		opts = append(opts, WithMaxLines(*fo.MaxLines))
	}
	if fo.MaxOptimizerPasses != nil {
		opts = append(opts, WithMaxOptimizerPasses(*fo.MaxOptimizerPasses))
	}
	if fo.PreserveRem != nil {
		opts = append(opts, WithPreserveRem(*fo.PreserveRem))
	}

	return New(opts...), nil
}
