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

package mistakes

import "znkr.io/mistakes/internal/config"

// Option configures the behavior of tokenization and mistake computation.
type Option = config.Option

// Punctuation replaces the set of punctuation characters that delimit words. Space and newline
// always delimit words. The default is `,.?!";:-—()`.
func Punctuation(chars string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Punctuation = chars
		return config.Punctuation
	}
}

// NoFolding disables substitution folding in [Compute]. The result is the preliminary list with
// one [Add] or [Del] mistake per token.
func NoFolding() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Fold = false
		return config.NoFolding
	}
}
