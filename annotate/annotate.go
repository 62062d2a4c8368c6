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

// Package annotate renders mistakes inline over the submitted text.
package annotate

import (
	"cmp"
	"slices"
	"strings"

	"znkr.io/mistakes"
	"znkr.io/mistakes/annotate/color"
	"znkr.io/mistakes/internal/config"
)

// Option configures the markup used by [Text].
type Option func(*config.Markup)

// TerminalColors marks deleted and inserted text with ANSI colors instead of brackets.
func TerminalColors(opts ...color.Option) Option {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	mk := cc.Markup()
	return func(m *config.Markup) {
		*m = mk
	}
}

// Text returns check with all mistakes marked inline. Text of the submission that is not in the
// template is enclosed in "[-" and "-]", text of the template that is missing in the submission in
// "{+" and "+}". A substitution is rendered as a deletion followed by an insertion.
//
// Mistakes are rendered in the order of their position in check, ties are broken by their
// position in the rendered text. Merged mistakes are rendered as their children. Mistakes must be
// computed for check; overlapping bounds are clamped to the text that has not been rendered yet.
func Text(check string, ms []mistakes.Mistake, opts ...Option) string {
	text := []rune(check)
	return render(text, 0, len(text), flatten(ms), markup(opts))
}

func markup(opts []Option) config.Markup {
	mk := config.PlainMarkup
	for _, opt := range opts {
		opt(&mk)
	}
	return mk
}

// render marks ms in text[start:end]. ms must be ordered as returned by flatten.
func render(text []rune, start, end int, ms []mistakes.Mistake, mk config.Markup) string {
	var b strings.Builder
	cursor := start
	for _, m := range ms {
		pos := clamp(m.BoundsCheck.Start, cursor, end)
		b.WriteString(string(text[cursor:pos]))
		cursor = pos
		switch m.Kind {
		case mistakes.Add:
			mark(&b, mk.InsertStart, m.Word, mk.InsertEnd)
		case mistakes.Del:
			mark(&b, mk.DeleteStart, m.Word, mk.DeleteEnd)
			cursor = clamp(m.BoundsCheck.End, cursor, end)
		case mistakes.Mixed:
			mark(&b, mk.DeleteStart, m.Word, mk.DeleteEnd)
			mark(&b, mk.InsertStart, m.WordCorrect, mk.InsertEnd)
			cursor = clamp(m.BoundsCheck.End, cursor, end)
		default:
			panic("never reached")
		}
	}
	b.WriteString(string(text[cursor:end]))
	return b.String()
}

func mark(b *strings.Builder, start, s, end string) {
	b.WriteString(start)
	b.WriteString(s)
	b.WriteString(end)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// flatten replaces merged mistakes by their children and orders the result for rendering.
func flatten(ms []mistakes.Mistake) []mistakes.Mistake {
	out := make([]mistakes.Mistake, 0, len(ms))
	for _, m := range ms {
		if m.Subtype == mistakes.Merged {
			out = append(out, mistakes.Unmerge(m)...)
			continue
		}
		out = append(out, m)
	}
	// The cursor in render only moves forward in check. Insertions at the same position keep the
	// order of the rendered text.
	slices.SortStableFunc(out, func(a, b mistakes.Mistake) int {
		return cmp.Or(
			cmp.Compare(a.BoundsCheck.Start, b.BoundsCheck.Start),
			cmp.Compare(a.BoundsDiff.Start, b.BoundsDiff.Start),
		)
	})
	return out
}
