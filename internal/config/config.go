// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads the razortags.yaml run configuration.
//
// Example:
//
//	includeDocumentation: true
//	excludeHidden: false
//	producers: [taghelpers, components, bind]
//	types: [Test.AnchorTagHelper]
//	markerInterface: Microsoft.AspNetCore.Razor.TagHelpers.ITagHelper
//	assembly: MyApp
//	log:
//	  level: debug
//	  json: false
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/razortags/internal/names"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "razortags.yaml"

// Config is the run configuration of a scan.
type Config struct {
	IncludeDocumentation bool     `yaml:"includeDocumentation"`
	ExcludeHidden        bool     `yaml:"excludeHidden"`
	Producers            []string `yaml:"producers" validate:"dive,required"`
	Types                []string `yaml:"types" validate:"dive,required"`
	MarkerInterface      string   `yaml:"markerInterface" validate:"required"`

	// Assembly is the containing assembly of C# source types.
	Assembly string `yaml:"assembly"`

	Log Log `yaml:"log"`
}

type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when no file is given. An empty
// producer list runs every registered producer.
func Default() *Config {
	return &Config{
		IncludeDocumentation: true,
		MarkerInterface:      names.TagHelperInterface,
		Log:                  Log{Level: "info"},
	}
}

var validate = validator.New()

// Parse decodes data over the defaults and validates the result.
// Unknown fields are errors.
func Parse(data []byte) (*Config, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a configuration from r over the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional reads path if it exists and returns the defaults otherwise.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
