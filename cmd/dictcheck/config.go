// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	"znkr.io/mistakes"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

func (l LogLevel) level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config is the configuration file of dictcheck. Command line flags override its values.
type Config struct {
	// Punctuation replaces the default punctuation characters if set.
	Punctuation *string `yaml:"punctuation"`

	// Fold enables substitution folding, defaults to true.
	Fold *bool `yaml:"fold"`

	// Workers is the number of submissions graded concurrently, 0 means one per CPU.
	Workers int `yaml:"workers"`

	// Register is the path of the SQLite register database.
	Register string `yaml:"register"`

	LogLevel LogLevel `yaml:"log_level"`

	// Color enables ANSI colors in annotated output.
	Color bool `yaml:"color"`
}

// options returns the engine options for cfg.
func (cfg *Config) options() []mistakes.Option {
	var opts []mistakes.Option
	if cfg.Punctuation != nil {
		opts = append(opts, mistakes.Punctuation(*cfg.Punctuation))
	}
	if cfg.Fold != nil && !*cfg.Fold {
		opts = append(opts, mistakes.NoFolding())
	}
	return opts
}

// loadConfig reads the configuration file at path. An empty path returns the default
// configuration.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := loadConfigFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

func loadConfigFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate returns a joined error listing all invalid values of cfg.
func validate(cfg *Config) error {
	var errs []error
	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	if cfg.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative", cfg.Workers))
	}
	if cfg.Punctuation != nil {
		for _, r := range *cfg.Punctuation {
			if r == ' ' || r == '\n' {
				errs = append(errs, fmt.Errorf("punctuation %q must not contain space or newline", *cfg.Punctuation))
				break
			}
		}
	}
	return errors.Join(errs...)
}

func newLogger(w io.Writer, level LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.level()}))
}
