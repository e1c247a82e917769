/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/voedger/edmfacets/pkg/csdl"
	"github.com/voedger/edmfacets/pkg/edm"
	"github.com/voedger/edmfacets/pkg/goutils/logger"
	"github.com/voedger/edmfacets/pkg/manifest"
)

// Compilation settings.
//
// Sources by priority: command line flags, environment variables (including .env file), config file.
type config struct {
	// Path to store provider manifest. If empty, embedded sample manifest is used
	Manifest string `yaml:"manifest,omitempty"`

	// Overrides UseStrongSpatialTypes attribute of conceptual schemas if not nil
	StrongSpatial *bool `yaml:"strongSpatial,omitempty"`

	// Kind of schemas: «csdl», «ssdl» or empty to detect by namespace
	Model string `yaml:"model,omitempty"`

	Parallelism int  `yaml:"parallelism,omitempty"`
	Complain    bool `yaml:"complain,omitempty"`
}

// Loads config file. Missing file is not an error if it is not specified explicitly.
//
// Relative manifest path is resolved against config file directory.
func loadConfigFile(path string, explicit bool) (config, error) {
	cfg := config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if cfg.Manifest != "" && !filepath.IsAbs(cfg.Manifest) {
		cfg.Manifest = filepath.Join(filepath.Dir(path), cfg.Manifest)
	}
	logger.Verbose("config loaded from", path)
	return cfg, nil
}

// Overrides config by environment variables. Variables from .env file do not override existing ones
func (c *config) applyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: .env: %v", ErrInvalidConfig, err)
	}
	if v, ok := os.LookupEnv(env_Manifest); ok {
		c.Manifest = v
	}
	if v, ok := os.LookupEnv(env_StrongSpatial); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, env_StrongSpatial, err)
		}
		c.StrongSpatial = &b
	}
	if v, ok := os.LookupEnv(env_Parallelism); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, env_Parallelism, err)
		}
		c.Parallelism = n
	}
	return nil
}

// Overrides config by flags changed in command line
func (c *config) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed(flag_Manifest) {
		c.Manifest, err = flags.GetString(flag_Manifest)
	}
	if err == nil && flags.Changed(flag_StrongSpatial) {
		var b bool
		b, err = flags.GetBool(flag_StrongSpatial)
		c.StrongSpatial = &b
	}
	if err == nil && flags.Changed(flag_Model) {
		c.Model, err = flags.GetString(flag_Model)
	}
	if err == nil && flags.Changed(flag_Parallelism) {
		c.Parallelism, err = flags.GetInt(flag_Parallelism)
	}
	if err == nil && flags.Changed(flag_Complain) {
		c.Complain, err = flags.GetBool(flag_Complain)
	}
	return err
}

// Returns config built from all sources
func resolveConfig(cmd *cobra.Command) (config, error) {
	path, _ := cmd.Flags().GetString(flag_Config)
	cfg, err := loadConfigFile(path, cmd.Flags().Changed(flag_Config))
	if err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.applyFlags(cmd); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Returns store catalog declared by manifest. Returns nil catalog if manifest is not specified
func (c config) storeCatalog() (edm.ICatalog, error) {
	if c.Manifest == "" {
		return nil, nil
	}
	m, err := manifest.Load(c.Manifest)
	if err != nil {
		return nil, err
	}
	return m.Catalog()
}

func (c config) compileOptions() (csdl.Options, error) {
	model, ok := csdl.ParseModel(c.Model)
	if !ok {
		return csdl.Options{}, fmt.Errorf("%w: unknown model «%s»", ErrInvalidConfig, c.Model)
	}
	if c.Parallelism < 0 {
		return csdl.Options{}, fmt.Errorf("%w: parallelism %d is negative", ErrInvalidConfig, c.Parallelism)
	}
	cat, err := c.storeCatalog()
	if err != nil {
		return csdl.Options{}, err
	}
	return csdl.Options{
		Model:                  model,
		StoreCatalog:           cat,
		UseStrongSpatialTypes:  c.StrongSpatial,
		ComplainOnMissingFacet: c.Complain,
		Parallelism:            c.Parallelism,
	}, nil
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String(flag_Config, defaultConfigFile, "Path to config file")
	cmd.Flags().StringP(flag_Manifest, "m", "", "Path to store provider manifest, embedded sample manifest is used if empty")
}
