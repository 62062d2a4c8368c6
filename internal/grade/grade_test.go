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

package grade

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"znkr.io/mistakes"
)

const template = "I'm very high, Mr. White"

func TestGrade(t *testing.T) {
	subs := []Submission{
		{Name: "perfect", Text: template},
		{Name: "lowercase", Text: "I'm very high, mr. White"},
		{Name: "sink", Text: "Under the sink, mr. White"},
	}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g := New(template, WithWorkers(2), WithLogger(logger))
	got, err := g.Grade(t.Context(), subs)
	if err != nil {
		t.Fatalf("Grade(...) failed: %v", err)
	}

	var want []Result
	for _, s := range subs {
		want = append(want, Result{Name: s.Name, Mistakes: mistakes.Compute(s.Text, template)})
	}
	opts := cmp.Options{
		cmpopts.IgnoreFields(mistakes.Mistake{}, "ID"),
		cmpopts.IgnoreUnexported(mistakes.Mistake{}),
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("Grade(...) result is different [-want,+got]:\n%s", diff)
	}

	for _, s := range []string{
		`msg="graded submission" name=sink mistakes=4`,
		`msg="graded submissions" submissions=3 mistakes=5 workers=2`,
	} {
		if !strings.Contains(logs.String(), s) {
			t.Errorf("log output does not contain %q:\n%s", s, logs.String())
		}
	}
}

func TestGradeOptions(t *testing.T) {
	g := New("a b", WithOptions(mistakes.NoFolding()), WithLogger(slog.New(slog.DiscardHandler)))
	got, err := g.Grade(t.Context(), []Submission{{Name: "x", Text: "a c"}})
	if err != nil {
		t.Fatalf("Grade(...) failed: %v", err)
	}
	if n := len(got[0].Mistakes); n != 2 {
		t.Errorf("len(Mistakes) = %d, want 2 without folding", n)
	}
	if got[0].Count(mistakes.Add) != 1 || got[0].Count(mistakes.Del) != 1 {
		t.Errorf("Count(Add), Count(Del) = %d, %d, want 1, 1", got[0].Count(mistakes.Add), got[0].Count(mistakes.Del))
	}
}

func TestGradeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	subs := make([]Submission, 10)
	for i := range subs {
		subs[i] = Submission{Name: fmt.Sprint(i), Text: "text"}
	}
	g := New(template, WithLogger(slog.New(slog.DiscardHandler)))
	_, err := g.Grade(ctx, subs)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Grade(...) error = %v, want %v", err, context.Canceled)
	}
}

func TestFrequencies(t *testing.T) {
	g := New(template, WithLogger(slog.New(slog.DiscardHandler)))
	results, err := g.Grade(t.Context(), []Submission{
		{Name: "a", Text: "I'm very high, mr. White"},
		{Name: "b", Text: "Under the sink, mr. White"},
		{Name: "c", Text: "I'm very high Mr. White"},
	})
	if err != nil {
		t.Fatalf("Grade(...) failed: %v", err)
	}

	type entry struct {
		Word  string
		Count int
	}
	var got []entry
	for _, f := range Frequencies(results) {
		got = append(got, entry{f.Mistake.Word, f.Count})
	}
	want := []entry{
		{"mr", 2},
		{"Under", 1},
		{"the", 1},
		{"sink", 1},
		{",", 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Frequencies(...) result is different [-want,+got]:\n%s", diff)
	}
}
