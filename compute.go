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
	"cmp"
	"slices"
	"unicode"
	"unicode/utf8"

	"znkr.io/mistakes/internal/config"
	"znkr.io/mistakes/internal/onp"
)

// Compute compares the submission check with the template correct and returns the mistakes in
// check, ordered by their position in the rendered text ([Mistake.BoundsDiff]).
//
// Both texts are compared word by word (see [Tokenize]). Every missing or superfluous token
// becomes an [Add] or [Del] mistake. Afterwards, a missing word that is directly adjacent to a
// superfluous word (only separated by punctuation mistakes) is folded into a single [Mixed]
// mistake that carries the character level [Action]s between both words.
//
// The inputs are expected to be normalized, Compute does not alter whitespace, quotes or dashes.
// If check and correct are identical, the output has length zero.
//
// The following options are supported: [Punctuation], [NoFolding]
func Compute(check, correct string, opts ...Option) []Mistake {
	cfg := config.FromOptions(opts, config.Punctuation|config.NoFolding)
	c := computer{cfg: cfg}
	ms := c.derive(check, correct)
	if cfg.Fold {
		ms = c.fold(ms)
	}
	return ms
}

type computer struct {
	cfg    config.Config
	tokens onp.Differ[Token]
	runes  onp.Differ[rune]
}

// derive creates one mistake per token edit.
func (c *computer) derive(check, correct string) []Mistake {
	tcheck, tcorrect := tokenize(check, c.cfg), tokenize(correct, c.cfg)
	edits := c.tokens.Diff(tcheck, tcorrect, func(a, b Token) bool { return a.Content == b.Content })
	if len(edits) == 0 {
		return nil
	}
	ncheck, ncorrect := utf8.RuneCountInString(check), utf8.RuneCountInString(correct)

	// Positions in the rendered text: a position in check is shifted by all text added before it,
	// a position in correct by all text deleted before it.
	var addOffset, delOffset int
	out := make([]Mistake, 0, len(edits))
	for _, e := range edits {
		tok := e.Item
		n := tok.Len()
		cs := offsetAt(tcheck, e.IndexCheck, ncheck)
		rs := offsetAt(tcorrect, e.IndexCorrect, ncorrect)
		m := Mistake{
			ID:      newID(),
			Subtype: subtypeOf(tok),
			Word:    tok.Content,
		}
		switch e.Op {
		case onp.Add:
			m.Kind = Add
			m.BoundsCheck = Bounds{cs, cs}
			m.BoundsCorrect = Bounds{rs, rs + n}
			m.BoundsDiff = Bounds{rs + addOffset, rs + addOffset + n}
			delOffset += n
		case onp.Del:
			m.Kind = Del
			m.BoundsCheck = Bounds{cs, cs + n}
			m.BoundsCorrect = Bounds{rs, rs}
			m.BoundsDiff = Bounds{cs + delOffset, cs + delOffset + n}
			addOffset += n
		default:
			panic("never reached")
		}
		out = append(out, m)
	}
	sortByDiff(out)
	return out
}

// offsetAt returns the rune offset of the i-th token or the end of the text.
func offsetAt(toks []Token, i, end int) int {
	if i < len(toks) {
		return toks[i].Offset
	}
	if i > len(toks) {
		panic("token index out of range")
	}
	return end
}

func subtypeOf(tok Token) Subtype {
	if tok.Kind == TokenWord {
		return Word
	}
	return Other
}

// fold replaces adjacent Add/Del pairs with Mixed mistakes until no more pairs are found.
func (c *computer) fold(ms []Mistake) []Mistake {
	for {
		i, j, ok := findSubstitution(ms)
		if !ok {
			return ms
		}
		ms = c.substitute(ms, i, j)
	}
}

// findSubstitution returns the leftmost pair of an Add and a Del mistake with the same subtype
// that are only separated by single character mistakes of another subtype. The scan ends at the
// first mistake without a later mistake of the same subtype.
func findSubstitution(ms []Mistake) (int, int, bool) {
	for i := range ms {
		m := &ms[i]
		if m.Subtype == Merged {
			continue
		}
		j := i + 1
		for j < len(ms) && ms[j].Subtype != m.Subtype {
			j++
		}
		if j == len(ms) {
			// No partner for the first mistake of its subtype ends the scan.
			return 0, 0, false
		}
		next := &ms[j]
		if m.Kind == Mixed || next.Kind == m.Kind || next.Kind == Mixed {
			continue
		}
		gap := j - i - 1
		if next.BoundsDiff.Start != m.BoundsDiff.End+gap {
			continue
		}
		return i, j, true
	}
	return 0, 0, false
}

// substitute folds ms[i] and ms[j] into a Mixed mistake and returns the new list.
func (c *computer) substitute(ms []Mistake, i, j int) []Mistake {
	first := ms[i]
	add, del := ms[i], ms[j]
	if first.Kind == Del {
		add, del = del, add
	}
	nadd := utf8.RuneCountInString(add.Word)
	ndel := utf8.RuneCountInString(del.Word)

	// The substitution covers the deleted word in the rendered text.
	sub := first.BoundsDiff
	if first.Kind == Add {
		sub.End += ndel - nadd
	}

	mixed := Mistake{
		ID:            newID(),
		Kind:          Mixed,
		Subtype:       first.Subtype,
		BoundsCheck:   del.BoundsCheck,
		BoundsCorrect: add.BoundsCorrect,
		BoundsDiff:    sub,
		Word:          del.Word,
		WordCorrect:   add.Word,
		Actions:       c.actions(del, add, sub),
	}

	out := make([]Mistake, 0, len(ms)-1)
	out = append(out, ms[:i]...)
	out = append(out, mixed)
	for _, m := range ms[i+1 : j] {
		if first.Kind == Add {
			m.BoundsDiff = m.BoundsDiff.Shift(ndel - nadd)
		}
		out = append(out, m)
	}
	// The added word is no longer part of the rendered text.
	for _, m := range ms[j+1:] {
		m.BoundsDiff = m.BoundsDiff.Shift(-nadd)
		out = append(out, m)
	}
	sortByDiff(out)
	return out
}

// actions computes the character edits that turn del.Word into add.Word.
func (c *computer) actions(del, add Mistake, sub Bounds) []Action {
	edits := c.runes.Diff([]rune(del.Word), []rune(add.Word), func(a, b rune) bool { return a == b })
	out := make([]Action, len(edits))
	for i, e := range edits {
		a := Action{
			Kind:         kindOf(e.Op),
			Class:        c.classify(e.Item),
			Char:         string(e.Item),
			IndexCheck:   e.IndexCheck + del.BoundsCheck.Start,
			IndexCorrect: e.IndexCorrect + add.BoundsCorrect.Start,
			IndexDiff:    NoIndex,
		}
		if a.Kind == Del {
			a.IndexDiff = e.IndexCheck + sub.Start
		}
		out[i] = a
	}
	return out
}

func (c *computer) classify(r rune) CharClass {
	switch {
	case unicode.IsSpace(r):
		return Space
	case c.cfg.IsPunctuation(r):
		return Punct
	default:
		return Ortho
	}
}

func sortByDiff(ms []Mistake) {
	slices.SortStableFunc(ms, func(a, b Mistake) int {
		return cmp.Compare(a.BoundsDiff.Start, b.BoundsDiff.Start)
	})
}
