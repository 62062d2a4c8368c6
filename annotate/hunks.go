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

package annotate

import (
	"iter"
	"unicode/utf8"

	"znkr.io/mistakes"
)

// Hunk is a range of the submission that contains one or more mistakes.
type Hunk struct {
	Start, End int // Range in the submission in runes, including context
	Mistakes   []mistakes.Mistake
}

// Hunks groups mistakes that are close to each other. Every mistake is shown with up to context
// runes of the submission before and after it; mistakes with overlapping context are part of the
// same hunk. Merged mistakes are split into their children.
func Hunks(check string, ms []mistakes.Mistake, context int) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		n := utf8.RuneCountInString(check)
		var h Hunk
		open := false // h holds an in-progress hunk
		for _, m := range flatten(ms) {
			start := clamp(m.BoundsCheck.Start-context, 0, n)
			end := clamp(m.BoundsCheck.End+context, start, n)
			if open && start <= h.End {
				h.End = max(h.End, end)
				h.Mistakes = append(h.Mistakes, m)
				continue
			}
			if open && !yield(h) {
				return
			}
			h = Hunk{Start: start, End: end, Mistakes: []mistakes.Mistake{m}}
			open = true
		}
		if open {
			yield(h)
		}
	}
}

// Excerpt returns the part of check covered by h with all mistakes marked as in [Text].
func Excerpt(check string, h Hunk, opts ...Option) string {
	text := []rune(check)
	end := min(h.End, len(text))
	start := min(h.Start, end)
	return render(text, start, end, h.Mistakes, markup(opts))
}
