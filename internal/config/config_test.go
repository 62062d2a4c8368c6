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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/mistakes"
	"znkr.io/mistakes/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "punctuation",
			opts: []config.Option{
				mistakes.Punctuation(".,"),
			},
			want: config.Config{
				Punctuation: ".,",
				Fold:        config.Default.Fold,
			},
		},
		{
			name: "no-folding",
			opts: []config.Option{
				mistakes.NoFolding(),
			},
			want: config.Config{
				Punctuation: config.Default.Punctuation,
				Fold:        false,
			},
		},
		{
			name: "punctuation-override",
			opts: []config.Option{
				mistakes.Punctuation(".,"),
				mistakes.NoFolding(),
				mistakes.Punctuation("!"),
			},
			want: config.Config{
				Punctuation: "!",
				Fold:        false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.Punctuation|config.NoFolding)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("FromOptions(...) did not panic for a disallowed option")
		}
	}()
	config.FromOptions([]config.Option{mistakes.NoFolding()}, config.Punctuation)
}

func TestIsDelimiter(t *testing.T) {
	cfg := config.Default
	for _, r := range " \n,.?!\";:-—()" {
		if !cfg.IsDelimiter(r) {
			t.Errorf("IsDelimiter(%q) = false, want true", r)
		}
	}
	for _, r := range "aZ'ё1\t" {
		if cfg.IsDelimiter(r) {
			t.Errorf("IsDelimiter(%q) = true, want false", r)
		}
	}
	if cfg.IsPunctuation(' ') {
		t.Errorf("IsPunctuation(' ') = true, want false")
	}
}
