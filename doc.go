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

// Package mistakes grades a submitted text against a template and describes every difference as
// a [Mistake].
//
// The main function is [Compute], which compares two texts word by word, folds adjacent
// insertions and deletions into substitutions and returns the mistakes in reading order. Every
// mistake has a content address ([Mistake.Hash]) that is identical for the same mistake in
// different submissions against the same template. Related mistakes can be combined with [Merge]
// and split again with [Unmerge] without losing information.
//
// The underlying sequence comparison is available for arbitrary slices via [EditScript] and
// [EditScriptFunc]. It uses the O(NP) algorithm by Wu, Manber, Myers and Miller and always returns
// a minimal edit script.
//
// Performance: The time complexity is O((M+N)P) where M and N are the number of tokens in both
// texts and P is the number of deleted tokens on a shortest edit script. All functions in this
// package are free of shared state and safe to call concurrently.
//
// Note: The texts are expected to be normalized (quotes, dashes, whitespace) before they are
// compared.
package mistakes
