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

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidArgument is returned when a function is called outside of its documented domain.
var ErrInvalidArgument = errors.New("invalid argument")

// mergeSep joins the words of merged mistakes.
const mergeSep = ".."

// Merge combines mistakes into a single [Merged] mistake. Inputs that are merged themselves are
// used as a unit for the bounds and words of the result, but their children are adopted directly:
// the children of a merged mistake are never merged mistakes.
//
//   - Kind is [Add] or [Del] if all inputs have that kind, [Mixed] otherwise.
//   - BoundsCheck spans all inputs that are not [Add], BoundsCorrect all inputs that are not [Del]
//     and BoundsDiff all inputs. If no input contributes to a bound, it is the empty range at the
//     smallest start of all inputs.
//   - Word joins all words with "..", WordCorrect all corrected words of inputs that are not [Del].
//
// Merge returns an error wrapping [ErrInvalidArgument] if there are fewer than two inputs.
func Merge(inputs []Mistake) (Mistake, error) {
	if len(inputs) < 2 {
		return Mistake{}, fmt.Errorf("%w: merge needs at least two mistakes, got %d", ErrInvalidArgument, len(inputs))
	}

	out := Mistake{
		ID:      newID(),
		Subtype: Merged,
	}

	out.Kind = inputs[0].Kind
	for _, in := range inputs[1:] {
		if in.Kind != out.Kind {
			out.Kind = Mixed
			break
		}
	}

	out.BoundsCheck = span(inputs, func(m *Mistake) bool { return m.Kind != Add }, func(m *Mistake) Bounds { return m.BoundsCheck })
	out.BoundsCorrect = span(inputs, func(m *Mistake) bool { return m.Kind != Del }, func(m *Mistake) Bounds { return m.BoundsCorrect })
	out.BoundsDiff = span(inputs, func(*Mistake) bool { return true }, func(m *Mistake) Bounds { return m.BoundsDiff })

	words := make([]string, 0, len(inputs))
	var corrected []string
	for _, in := range inputs {
		words = append(words, in.Word)
		if in.Kind == Del {
			continue
		}
		if in.WordCorrect != "" {
			corrected = append(corrected, in.WordCorrect)
		} else {
			corrected = append(corrected, in.Word)
		}
	}
	out.Word = strings.Join(words, mergeSep)
	out.WordCorrect = strings.Join(corrected, mergeSep)

	for i := range inputs {
		in := &inputs[i]
		if in.Subtype == Merged {
			for _, c := range in.Children {
				c.Actions = slices.Clone(c.Actions)
				c.MergedID = out.ID
				out.Children = append(out.Children, c)
			}
			continue
		}
		out.Children = append(out.Children, Child{
			Kind:          in.Kind,
			Subtype:       in.Subtype,
			Hash:          hashOf(in.Kind, in.BoundsCorrect, in.Word),
			Word:          in.Word,
			WordCorrect:   in.WordCorrect,
			BoundsCheck:   in.BoundsCheck,
			BoundsCorrect: in.BoundsCorrect,
			BoundsDiff:    in.BoundsDiff,
			Actions:       slices.Clone(in.Actions),
			MergedID:      out.ID,
		})
	}
	return out, nil
}

// span returns the smallest range covering the bounds of all inputs selected by include.
func span(inputs []Mistake, include func(*Mistake) bool, bounds func(*Mistake) Bounds) Bounds {
	var out Bounds
	found := false
	for i := range inputs {
		m := &inputs[i]
		if !include(m) {
			continue
		}
		b := bounds(m)
		if !found {
			out, found = b, true
			continue
		}
		out.Start = min(out.Start, b.Start)
		out.End = max(out.End, b.End)
	}
	if found {
		return out
	}
	start := bounds(&inputs[0]).Start
	for i := range inputs[1:] {
		start = min(start, bounds(&inputs[i+1]).Start)
	}
	return Bounds{start, start}
}

// Unmerge splits a [Merged] mistake into its children. Every child becomes an independent mistake
// with a new ID. Mistakes that are not merged are returned unchanged.
func Unmerge(m Mistake) []Mistake {
	if m.Subtype != Merged {
		return []Mistake{m}
	}
	out := make([]Mistake, 0, len(m.Children))
	for _, c := range m.Children {
		out = append(out, Mistake{
			ID:            newID(),
			Kind:          c.Kind,
			Subtype:       c.Subtype,
			BoundsCheck:   c.BoundsCheck,
			BoundsCorrect: c.BoundsCorrect,
			BoundsDiff:    c.BoundsDiff,
			Word:          c.Word,
			WordCorrect:   c.WordCorrect,
			Actions:       slices.Clone(c.Actions),
			hash:          hashOf(c.Kind, c.BoundsCorrect, c.Word),
			hashed:        true,
		})
	}
	return out
}
