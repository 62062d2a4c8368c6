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
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

var update = flag.Bool("update", false, "update golden files")

func TestCompute(t *testing.T) {
	for _, tt := range parseTests(t) {
		t.Run(tt.name, func(t *testing.T) {
			gotRaw := format(Compute(tt.check, tt.correct, NoFolding()))
			if diff := cmp.Diff(tt.raw, gotRaw); diff != "" {
				t.Errorf("Compute(..., NoFolding()) result are different [-want,+got]:\n%s", diff)
			}
			got := format(Compute(tt.check, tt.correct))
			if diff := cmp.Diff(tt.mistakes, got); diff != "" {
				t.Errorf("Compute(...) result are different [-want,+got]:\n%s", diff)
			}
			if *update {
				tt.raw, tt.mistakes = gotRaw, got
				tt.write(t)
			}
		})
	}
}

func TestComputeActions(t *testing.T) {
	tests := []struct {
		name           string
		check, correct string
		opts           []Option
		want           [][]Action
	}{
		{
			name:    "spelling",
			check:   "Hellw warld!",
			correct: "Hello world!",
			want: [][]Action{
				{
					{Kind: Add, Class: Ortho, Char: "o", IndexCheck: 4, IndexCorrect: 4, IndexDiff: NoIndex},
					{Kind: Del, Class: Ortho, Char: "w", IndexCheck: 4, IndexCorrect: 5, IndexDiff: 4},
				},
				{
					{Kind: Add, Class: Ortho, Char: "o", IndexCheck: 7, IndexCorrect: 7, IndexDiff: NoIndex},
					{Kind: Del, Class: Ortho, Char: "a", IndexCheck: 7, IndexCorrect: 8, IndexDiff: 7},
				},
			},
		},
		{
			name:    "capitalization",
			check:   "mr. White",
			correct: "Mr. White",
			want: [][]Action{
				{
					{Kind: Add, Class: Ortho, Char: "M", IndexCheck: 0, IndexCorrect: 0, IndexDiff: NoIndex},
					{Kind: Del, Class: Ortho, Char: "m", IndexCheck: 0, IndexCorrect: 1, IndexDiff: 0},
				},
			},
		},
		{
			name:    "add-first",
			check:   "ab c",
			correct: "x, c",
			want: [][]Action{
				{
					{Kind: Del, Class: Ortho, Char: "a", IndexCheck: 0, IndexCorrect: 0, IndexDiff: 0},
					{Kind: Del, Class: Ortho, Char: "b", IndexCheck: 1, IndexCorrect: 0, IndexDiff: 1},
					{Kind: Add, Class: Ortho, Char: "x", IndexCheck: 2, IndexCorrect: 0, IndexDiff: NoIndex},
				},
				nil,
			},
		},
		{
			name:    "space-for-comma",
			check:   "a b",
			correct: "a,b",
			want: [][]Action{
				{
					{Kind: Add, Class: Punct, Char: ",", IndexCheck: 1, IndexCorrect: 1, IndexDiff: NoIndex},
					{Kind: Del, Class: Space, Char: " ", IndexCheck: 1, IndexCorrect: 2, IndexDiff: 1},
				},
			},
		},
		{
			name:    "custom-punctuation",
			check:   "Hello, world",
			correct: "Hello world",
			opts:    []Option{Punctuation("")},
			want: [][]Action{
				{
					{Kind: Del, Class: Ortho, Char: ",", IndexCheck: 5, IndexCorrect: 5, IndexDiff: 5},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][]Action
			for _, m := range Compute(tt.check, tt.correct, tt.opts...) {
				got = append(got, m.Actions)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compute(...) actions are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestComputeIDs(t *testing.T) {
	ms := Compute("Under the sink, mr. White", "I'm very high, Mr. White", NoFolding())
	seen := make(map[string]bool)
	for _, m := range ms {
		if m.ID == "" {
			t.Errorf("mistake %q has no ID", m.Word)
		}
		if seen[m.ID] {
			t.Errorf("duplicate ID %q", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestComputeEmpty(t *testing.T) {
	tests := []struct {
		name           string
		check, correct string
		want           string
	}{
		{"both", "", "", ""},
		{"check", "", "a b", `Add/Word "a" check=[0,0) correct=[0,1) diff=[0,1)
Add/Other " " check=[0,0) correct=[1,2) diff=[1,2)
Add/Word "b" check=[0,0) correct=[2,3) diff=[2,3)
`},
		{"correct", "a.", "", `Del/Word "a" check=[0,1) correct=[0,0) diff=[0,1)
Del/Other "." check=[1,2) correct=[0,0) diff=[1,2)
`},
		{"unicode", "Grüße", "Grüsse", `Mixed/Word "Grüße" -> "Grüsse" check=[0,5) correct=[0,6) diff=[0,5) actions=3
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format(Compute(tt.check, tt.correct))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compute(%q, %q) result are different [-want,+got]:\n%s", tt.check, tt.correct, diff)
			}
		})
	}
}

// format renders mistakes one per line in the golden file format.
func format(ms []Mistake) string {
	var b strings.Builder
	for _, m := range ms {
		fmt.Fprintf(&b, "%v/%v %q", m.Kind, m.Subtype, m.Word)
		if m.Kind == Mixed {
			fmt.Fprintf(&b, " -> %q", m.WordCorrect)
		}
		fmt.Fprintf(&b, " check=%v correct=%v diff=%v", m.BoundsCheck, m.BoundsCorrect, m.BoundsDiff)
		if len(m.Actions) > 0 {
			fmt.Fprintf(&b, " actions=%d", len(m.Actions))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

type test struct {
	name           string
	filename       string
	comment        []byte
	check, correct string
	raw, mistakes  string
}

func parseTests(t testing.TB) []test {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []test
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		tt := test{
			name:     strings.TrimSuffix(strings.TrimPrefix(filename, "testdata/"), ".test"),
			filename: filename,
			comment:  ar.Comment,
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "check":
				tt.check = strings.TrimSuffix(string(f.Data), "\n")
			case "correct":
				tt.correct = strings.TrimSuffix(string(f.Data), "\n")
			case "raw":
				tt.raw = string(f.Data)
			case "mistakes":
				tt.mistakes = string(f.Data)
			default:
				t.Fatalf("unknown section %q in %s", f.Name, filename)
			}
		}
		tests = append(tests, tt)
	}
	return tests
}

func (tt *test) write(t testing.TB) {
	t.Helper()
	ar := &txtar.Archive{
		Comment: tt.comment,
		Files: []txtar.File{
			{Name: "check", Data: []byte(tt.check + "\n")},
			{Name: "correct", Data: []byte(tt.correct + "\n")},
			{Name: "raw", Data: []byte(tt.raw)},
			{Name: "mistakes", Data: []byte(tt.mistakes)},
		},
	}
	if err := os.WriteFile(tt.filename, txtar.Format(ar), 0o644); err != nil {
		t.Fatalf("error writing golden file: %v", err)
	}
}
