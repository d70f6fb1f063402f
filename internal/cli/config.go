package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML config file. Explicitly set flags
// always win over file values.
type fileConfig struct {
	MaxErrors *int  `yaml:"max_errors"`
	Verbose   *bool `yaml:"verbose"`
}

func applyConfig(cmd *cobra.Command, opts *RootOptions) error {
	if opts.ConfigPath == "" {
		return nil
	}

	raw, err := os.ReadFile(opts.ConfigPath)

	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig

	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", opts.ConfigPath, err)
	}

	if fc.MaxErrors != nil && !cmd.Flags().Changed("max-errors") {
		opts.MaxErrors = *fc.MaxErrors
	}

	if fc.Verbose != nil && !cmd.Flags().Changed("verbose") {
		opts.Verbose = *fc.Verbose
	}

	return nil
}
