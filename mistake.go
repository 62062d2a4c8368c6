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
	"fmt"

	"github.com/google/uuid"
)

// Kind describes the direction of a mistake or an action.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind,Subtype,CharClass,TokenKind
type Kind int

const (
	Add   Kind = iota // Text of the template is missing in the submission
	Del               // Text of the submission is not in the template
	Mixed             // Text of the submission replaces text of the template
)

// Subtype classifies the content of a mistake.
type Subtype int

const (
	Word   Subtype = iota // A word
	Other                 // Punctuation or whitespace
	Merged                // A composite of other mistakes, see [Merge]
)

// CharClass classifies the character of an [Action].
type CharClass int

const (
	Punct CharClass = iota // Punctuation
	Ortho                  // Any other character (spelling)
	Space                  // Whitespace
)

// NoIndex marks an unset [Action.IndexDiff].
const NoIndex = -1

// Bounds is a half-open range [Start, End).
type Bounds struct {
	Start, End int
}

// Len returns the number of positions in b.
func (b Bounds) Len() int { return b.End - b.Start }

// Shift moves b by d positions.
func (b Bounds) Shift(d int) Bounds { return Bounds{b.Start + d, b.End + d} }

func (b Bounds) String() string { return fmt.Sprintf("[%d,%d)", b.Start, b.End) }

// Action is a single character edit inside a [Mixed] mistake.
//
// IndexCheck and IndexCorrect are positions in the submission and the template. IndexDiff is the
// position in the rendered text for [Del] actions and [NoIndex] for [Add] actions.
type Action struct {
	Kind         Kind
	Class        CharClass
	Char         string
	IndexCheck   int
	IndexCorrect int
	IndexDiff    int
}

// Mistake is a single difference between a submission (check text) and a template (correct
// text).
//
// Positions are counted in runes. Every mistake is located in three coordinate spaces:
//
//   - BoundsCheck is the range in the submission. It is empty for [Add] mistakes.
//   - BoundsCorrect is the range in the template. It is empty for [Del] mistakes.
//   - BoundsDiff is the range in the rendered text, i.e. the submission with the missing text
//     of all preceding mistakes inserted. It defines the order of mistakes.
//
// The remaining fields depend on Kind and Subtype:
//
//   - WordCorrect is only set for [Mixed] mistakes and [Merged] mistakes with a contributor that
//     is not a [Del].
//   - Actions is only set for [Mixed] mistakes produced by substitution folding.
//   - Children is set if and only if Subtype is [Merged].
//   - MergedID is the ID of the composite this mistake is part of, or empty.
type Mistake struct {
	ID            string
	Kind          Kind
	Subtype       Subtype
	BoundsCheck   Bounds
	BoundsCorrect Bounds
	BoundsDiff    Bounds
	Word          string
	WordCorrect   string
	Actions       []Action
	Children      []Child
	MergedID      string

	hash   uint64
	hashed bool
}

// Child is a frozen snapshot of a mistake that is part of a [Merged] mistake.
type Child struct {
	Kind          Kind
	Subtype       Subtype
	Hash          uint64
	Word          string
	WordCorrect   string
	BoundsCheck   Bounds
	BoundsCorrect Bounds
	BoundsDiff    Bounds
	Actions       []Action
	MergedID      string
}

// SetWord replaces the submitted content of m and invalidates the cached hash.
func (m *Mistake) SetWord(word string) {
	m.Word = word
	m.hashed = false
}

// SetBoundsCorrect moves m within the template and invalidates the cached hash.
func (m *Mistake) SetBoundsCorrect(b Bounds) {
	m.BoundsCorrect = b
	m.hashed = false
}

func newID() string { return uuid.NewString() }
