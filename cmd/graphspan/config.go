package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// defaultConfigPath is consulted when --config is not given; a missing
// file at this path is not an error.
const defaultConfigPath = "graphspan.yaml"

// Config collects the settings shared by every subcommand. Values from
// graphspan.yaml provide defaults; flags set on the command line win.
type Config struct {
	File            string `yaml:"file"`
	Format          string `yaml:"format"`
	Directed        bool   `yaml:"directed"`
	PreReciprocated bool   `yaml:"pre_reciprocated"`

	MinCut MinCutConfig `yaml:"mincut"`
}

// MinCutConfig tunes the mincut subcommand.
type MinCutConfig struct {
	Factor      float64 `yaml:"factor"`
	Parallelism int     `yaml:"parallelism"`
}

// loadConfig merges the YAML config (if any) under the flags: a flag the
// user set explicitly keeps its command-line value, everything else falls
// back to the file.
func loadConfig(cmd *cobra.Command) error {
	path := flagConfig
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fileCfg Config
	if err = yaml.Unmarshal(raw, &fileCfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("file") && fileCfg.File != "" {
		cfg.File = fileCfg.File
	}
	if !flags.Changed("format") && fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if !flags.Changed("directed") {
		cfg.Directed = fileCfg.Directed
	}
	if !flags.Changed("pre-reciprocated") {
		cfg.PreReciprocated = fileCfg.PreReciprocated
	}
	cfg.MinCut = fileCfg.MinCut

	return nil
}
