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
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/mistakes"
)

func TestHunks(t *testing.T) {
	tests := []struct {
		name           string
		check, correct string
		context        int
		want           []string
	}{
		{
			name:    "no-mistakes",
			check:   "same",
			correct: "same",
			context: 3,
			want:    nil,
		},
		{
			name:    "separate",
			check:   "one two three four five six",
			correct: "one too three four five sex",
			context: 3,
			want: []string{
				"[1,10) ne [-two-]{+too+} th",
				"[21,27) ve [-six-]{+sex+}",
			},
		},
		{
			name:    "overlapping",
			check:   "Under the sink, mr. White",
			correct: "I'm very high, Mr. White",
			context: 2,
			want: []string{
				"[0,20) [-Under-]{+I'm+} [-the-]{+very+} [-sink-]{+high+}, [-mr-]{+Mr+}. ",
			},
		},
		{
			name:    "no-context",
			check:   "Under the sink, mr. White",
			correct: "I'm very high, Mr. White",
			context: 0,
			want: []string{
				"[0,5) [-Under-]{+I'm+}",
				"[6,9) [-the-]{+very+}",
				"[10,14) [-sink-]{+high+}",
				"[16,18) [-mr-]{+Mr+}",
			},
		},
		{
			name:    "insertion-at-end",
			check:   "Hello",
			correct: "Hello world",
			context: 2,
			want: []string{
				"[3,5) lo{+ +}{+world+}",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := mistakes.Compute(tt.check, tt.correct)
			var got []string
			for h := range Hunks(tt.check, ms, tt.context) {
				got = append(got, mistakes.Bounds{Start: h.Start, End: h.End}.String()+" "+Excerpt(tt.check, h))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hunks(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestHunksStop(t *testing.T) {
	check := "one two three four five six"
	ms := mistakes.Compute(check, "one too three four five sex")
	n := 0
	for range Hunks(check, ms, 0) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated over %d hunks after break, want 1", n)
	}
}
