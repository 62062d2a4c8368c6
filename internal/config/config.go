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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// mistakes.Option.
package config

import "strings"

// DefaultPunctuation is the set of punctuation characters that delimit words.
const DefaultPunctuation = `,.?!";:-—()`

// Config collects all configurable parameters for the functions in this module.
type Config struct {
	// Punctuation characters that act as delimiters in addition to space and newline.
	Punctuation string

	// If set, adjacent insert/delete pairs are folded into a single substitution.
	Fold bool
}

// Default is the default configuration.
var Default = Config{
	Punctuation: DefaultPunctuation,
	Fold:        true,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Punctuation Flag = 1 << iota
	NoFolding
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

// IsDelimiter reports whether r separates words.
func (c Config) IsDelimiter(r rune) bool {
	return r == ' ' || r == '\n' || strings.ContainsRune(c.Punctuation, r)
}

// IsPunctuation reports whether r is one of the configured punctuation characters.
func (c Config) IsPunctuation(r rune) bool {
	return strings.ContainsRune(c.Punctuation, r)
}

func printFlag(flag Flag) string {
	switch flag {
	case Punctuation:
		return "mistakes.Punctuation"
	case NoFolding:
		return "mistakes.NoFolding"
	default:
		panic("never reached")
	}
}
