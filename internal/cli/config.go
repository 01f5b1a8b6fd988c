package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config carries flag defaults loadable from a YAML file. Fields are
// pointers so an absent key is distinguishable from an explicit zero.
// Flags set on the command line always win over file values.
type Config struct {
	PathsToKeep    *string `yaml:"paths-to-keep"`
	Threads        *int    `yaml:"threads"`
	IgnoreSegments *bool   `yaml:"ignore-segments"`
	IgnoreLinks    *bool   `yaml:"ignore-links"`
	IgnoreJumps    *bool   `yaml:"ignore-jumps"`
	Output         *string `yaml:"output"`
	AllowMissing   *bool   `yaml:"allow-missing"`
	Quiet          *bool   `yaml:"quiet"`
}

// LoadConfig reads and decodes a YAML defaults file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return &cfg, nil
}

// Apply writes the config values into flags the user did not set
// explicitly.
func (c *Config) Apply(cmd *cobra.Command) error {
	if err := applyString(cmd, "paths-to-keep", c.PathsToKeep); err != nil {
		return err
	}
	if err := applyInt(cmd, "threads", c.Threads); err != nil {
		return err
	}
	if err := applyBool(cmd, "ignore-segments", c.IgnoreSegments); err != nil {
		return err
	}
	if err := applyBool(cmd, "ignore-links", c.IgnoreLinks); err != nil {
		return err
	}
	if err := applyBool(cmd, "ignore-jumps", c.IgnoreJumps); err != nil {
		return err
	}
	if err := applyString(cmd, "output", c.Output); err != nil {
		return err
	}
	if err := applyBool(cmd, "allow-missing", c.AllowMissing); err != nil {
		return err
	}
	return applyBool(cmd, "quiet", c.Quiet)
}

func applyString(cmd *cobra.Command, name string, value *string) error {
	if value == nil || cmd.Flags().Changed(name) {
		return nil
	}
	return setFlag(cmd, name, *value)
}

func applyInt(cmd *cobra.Command, name string, value *int) error {
	if value == nil || cmd.Flags().Changed(name) {
		return nil
	}
	return setFlag(cmd, name, fmt.Sprintf("%d", *value))
}

func applyBool(cmd *cobra.Command, name string, value *bool) error {
	if value == nil || cmd.Flags().Changed(name) {
		return nil
	}
	return setFlag(cmd, name, fmt.Sprintf("%t", *value))
}

func setFlag(cmd *cobra.Command, name, value string) error {
	if err := cmd.Flags().Set(name, value); err != nil {
		return fmt.Errorf("failed to apply config value for --%s: %w", name, err)
	}
	return nil
}
