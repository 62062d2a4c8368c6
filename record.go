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
	"strings"

	"znkr.io/mistakes/internal/config"
)

// Record is the flat representation of a [Mistake] for storage. Enumerations are stored as
// lowercase names and hashes as 16 hex digits.
type Record struct {
	ID            string         `json:"id"`
	Hash          string         `json:"hash"`
	Kind          string         `json:"kind"`
	Subtype       string         `json:"subtype"`
	BoundsCheck   [2]int         `json:"bounds_check"`
	BoundsCorrect [2]int         `json:"bounds_correct"`
	BoundsDiff    [2]int         `json:"bounds_diff"`
	Word          string         `json:"word"`
	WordCorrect   string         `json:"word_correct,omitempty"`
	Actions       []ActionRecord `json:"actions,omitempty"`
	Children      []Record       `json:"children,omitempty"`
	MergedID      string         `json:"merged_id,omitempty"`
}

// ActionRecord is the flat representation of an [Action]. IndexDiff is omitted for [Add]
// actions.
type ActionRecord struct {
	Kind         string `json:"kind"`
	Class        string `json:"class"`
	Char         string `json:"char"`
	IndexCheck   int    `json:"index_check"`
	IndexCorrect int    `json:"index_correct"`
	IndexDiff    *int   `json:"index_diff,omitempty"`
}

// Export converts m into a record. Children of merged mistakes are exported as records without
// an ID.
func Export(m Mistake) Record {
	r := Record{
		ID:            m.ID,
		Hash:          FormatHash(m.Hash()),
		Kind:          name(m.Kind),
		Subtype:       name(m.Subtype),
		BoundsCheck:   pair(m.BoundsCheck),
		BoundsCorrect: pair(m.BoundsCorrect),
		BoundsDiff:    pair(m.BoundsDiff),
		Word:          m.Word,
		WordCorrect:   m.WordCorrect,
		Actions:       exportActions(m.Actions),
		MergedID:      m.MergedID,
	}
	for _, c := range m.Children {
		r.Children = append(r.Children, Record{
			Hash:          FormatHash(c.Hash),
			Kind:          name(c.Kind),
			Subtype:       name(c.Subtype),
			BoundsCheck:   pair(c.BoundsCheck),
			BoundsCorrect: pair(c.BoundsCorrect),
			BoundsDiff:    pair(c.BoundsDiff),
			Word:          c.Word,
			WordCorrect:   c.WordCorrect,
			Actions:       exportActions(c.Actions),
			MergedID:      c.MergedID,
		})
	}
	return r
}

func exportActions(actions []Action) []ActionRecord {
	if len(actions) == 0 {
		return nil
	}
	out := make([]ActionRecord, len(actions))
	for i, a := range actions {
		out[i] = ActionRecord{
			Kind:         name(a.Kind),
			Class:        name(a.Class),
			Char:         a.Char,
			IndexCheck:   a.IndexCheck,
			IndexCorrect: a.IndexCorrect,
		}
		if a.IndexDiff != NoIndex {
			out[i].IndexDiff = &a.IndexDiff
		}
	}
	return out
}

// Import converts a record created by [Export] back into a mistake. The hash stored in the
// record is used as the cached hash; an empty hash is computed on demand.
//
// A child record without a subtype is classified by its word: it is [Other] if all of its
// characters are delimiters and [Word] otherwise.
//
// Import returns an error wrapping [ErrInvalidArgument] for unknown names, malformed hashes or
// records that violate the invariants of [Mistake].
func Import(r Record) (Mistake, error) {
	var errs []error
	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	m := Mistake{
		ID:            r.ID,
		BoundsCheck:   bounds(r.BoundsCheck),
		BoundsCorrect: bounds(r.BoundsCorrect),
		BoundsDiff:    bounds(r.BoundsDiff),
		Word:          r.Word,
		WordCorrect:   r.WordCorrect,
		MergedID:      r.MergedID,
	}
	var err error
	m.Kind, err = parse("kind", r.Kind, kinds)
	check(err)
	m.Subtype, err = parse("subtype", r.Subtype, subtypes)
	check(err)
	m.Actions, err = importActions(r.Actions)
	check(err)
	if r.Hash != "" {
		m.hash, err = ParseHash(r.Hash)
		m.hashed = err == nil
		check(err)
	}

	for i, cr := range r.Children {
		c := Child{
			BoundsCheck:   bounds(cr.BoundsCheck),
			BoundsCorrect: bounds(cr.BoundsCorrect),
			BoundsDiff:    bounds(cr.BoundsDiff),
			Word:          cr.Word,
			WordCorrect:   cr.WordCorrect,
			MergedID:      cr.MergedID,
		}
		c.Kind, err = parse("kind", cr.Kind, kinds)
		check(err)
		if cr.Subtype == "" {
			c.Subtype = inferSubtype(c.Word)
		} else {
			c.Subtype, err = parse("subtype", cr.Subtype, subtypes)
			check(err)
		}
		if c.Subtype == Merged {
			check(fmt.Errorf("%w: child %d is a merged mistake", ErrInvalidArgument, i))
		}
		c.Actions, err = importActions(cr.Actions)
		check(err)
		if cr.Hash == "" {
			c.Hash = hashOf(c.Kind, c.BoundsCorrect, c.Word)
		} else {
			c.Hash, err = ParseHash(cr.Hash)
			check(err)
		}
		m.Children = append(m.Children, c)
	}
	if (m.Subtype == Merged) != (len(m.Children) > 0) {
		check(fmt.Errorf("%w: subtype %s with %d children", ErrInvalidArgument, r.Subtype, len(m.Children)))
	}
	for _, b := range []Bounds{m.BoundsCheck, m.BoundsCorrect, m.BoundsDiff} {
		if b.Start > b.End {
			check(fmt.Errorf("%w: bounds %v", ErrInvalidArgument, b))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Mistake{}, fmt.Errorf("import mistake %q: %w", r.ID, err)
	}
	return m, nil
}

func importActions(records []ActionRecord) ([]Action, error) {
	if len(records) == 0 {
		return nil, nil
	}
	out := make([]Action, len(records))
	for i, ar := range records {
		kind, err := parse("action kind", ar.Kind, kinds)
		if err != nil {
			return nil, err
		}
		class, err := parse("action class", ar.Class, classes)
		if err != nil {
			return nil, err
		}
		out[i] = Action{
			Kind:         kind,
			Class:        class,
			Char:         ar.Char,
			IndexCheck:   ar.IndexCheck,
			IndexCorrect: ar.IndexCorrect,
			IndexDiff:    NoIndex,
		}
		if ar.IndexDiff != nil {
			out[i].IndexDiff = *ar.IndexDiff
		}
	}
	return out, nil
}

// inferSubtype classifies a word using the default delimiters.
func inferSubtype(word string) Subtype {
	if word == "" {
		return Word
	}
	for _, r := range word {
		if !config.Default.IsDelimiter(r) {
			return Word
		}
	}
	return Other
}

var (
	kinds    = []Kind{Add, Del, Mixed}
	subtypes = []Subtype{Word, Other, Merged}
	classes  = []CharClass{Punct, Ortho, Space}
)

func name(v fmt.Stringer) string { return strings.ToLower(v.String()) }

func parse[T fmt.Stringer](field, s string, values []T) (T, error) {
	for _, v := range values {
		if name(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown %s %q", ErrInvalidArgument, field, s)
}

func pair(b Bounds) [2]int   { return [2]int{b.Start, b.End} }
func bounds(p [2]int) Bounds { return Bounds{p[0], p[1]} }
