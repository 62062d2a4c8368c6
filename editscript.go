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

import "znkr.io/mistakes/internal/onp"

// EditAction describes a single step of an edit script.
//
//   - For Add, Item is an element of correct that is missing in check.
//   - For Del, Item is an element of check that is missing in correct.
//
// IndexCheck and IndexCorrect are the positions in check and correct at which the step occurs.
type EditAction[T any] struct {
	Kind         Kind
	Item         T
	IndexCheck   int
	IndexCorrect int
}

// EditScript compares check and correct and returns a minimal sequence of additions and deletions
// that transforms check into correct. Matching elements are not reported.
//
// If check and correct are identical, the output has length zero.
//
// The result is deterministic: ties between equally short scripts are always broken the same way.
func EditScript[T comparable](check, correct []T) []EditAction[T] {
	return EditScriptFunc(check, correct, func(a, b T) bool { return a == b })
}

// EditScriptFunc compares check and correct using the provided equality comparison and returns a
// minimal sequence of additions and deletions that transforms check into correct.
//
// eq is always called with an element of check as the first and an element of correct as the
// second argument.
func EditScriptFunc[T any](check, correct []T, eq func(a, b T) bool) []EditAction[T] {
	return editActions(onp.Diff(check, correct, eq))
}

func editActions[T any](edits []onp.Edit[T]) []EditAction[T] {
	if len(edits) == 0 {
		return nil
	}
	out := make([]EditAction[T], len(edits))
	for i, e := range edits {
		out[i] = EditAction[T]{
			Kind:         kindOf(e.Op),
			Item:         e.Item,
			IndexCheck:   e.IndexCheck,
			IndexCorrect: e.IndexCorrect,
		}
	}
	return out
}

func kindOf(op onp.Op) Kind {
	switch op {
	case onp.Add:
		return Add
	case onp.Del:
		return Del
	default:
		panic("never reached")
	}
}
