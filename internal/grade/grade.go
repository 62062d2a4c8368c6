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

// Package grade computes the mistakes of many submissions against one template.
//
// Every submission is an independent task. Tasks run on a bounded number of goroutines and stop
// early when the context is canceled.
package grade

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
	"znkr.io/mistakes"
)

// Submission is a single text to grade.
type Submission struct {
	Name string
	Text string
}

// Result holds the mistakes of a submission.
type Result struct {
	Name     string
	Mistakes []mistakes.Mistake
}

// Count returns the number of mistakes of the given kind.
func (r Result) Count(kind mistakes.Kind) int {
	n := 0
	for _, m := range r.Mistakes {
		if m.Kind == kind {
			n++
		}
	}
	return n
}

// Grader grades submissions against a template.
type Grader struct {
	template string
	workers  int
	logger   *slog.Logger
	opts     []mistakes.Option
}

// Option is a functional option for [New].
type Option func(*Grader)

// WithWorkers limits the number of submissions graded concurrently. Values below one are
// ignored. Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(g *Grader) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithLogger sets the logger. Defaults to [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(g *Grader) { g.logger = l }
}

// WithOptions sets the options passed to [mistakes.Compute].
func WithOptions(opts ...mistakes.Option) Option {
	return func(g *Grader) { g.opts = opts }
}

// New creates a [Grader] for template.
func New(template string, opts ...Option) *Grader {
	g := &Grader{
		template: template,
		workers:  runtime.GOMAXPROCS(0),
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Grade computes the mistakes of all submissions. The results are in the order of subs.
//
// Grade returns the context error if ctx is canceled before all submissions are graded.
func (g *Grader) Grade(ctx context.Context, subs []Submission) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(subs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, s := range subs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			ms := mistakes.Compute(s.Text, g.template, g.opts...)
			results[i] = Result{Name: s.Name, Mistakes: ms}
			g.logger.Debug("graded submission", "name", s.Name, "mistakes", len(ms))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("grade: %w", err)
	}

	total := 0
	for _, r := range results {
		total += len(r.Mistakes)
	}
	g.logger.Info("graded submissions",
		"submissions", len(subs),
		"mistakes", total,
		"workers", g.workers,
		"duration", time.Since(start),
	)
	return results, nil
}

// Frequency is the number of submissions that contain a mistake.
type Frequency struct {
	Hash    uint64
	Mistake mistakes.Mistake // First occurrence
	Count   int
}

// Frequencies groups the mistakes of all results by hash. A mistake that occurs more than once
// in a submission is counted once. The result is ordered by decreasing count, ties by position in
// the template.
func Frequencies(results []Result) []Frequency {
	index := make(map[uint64]int)
	var out []Frequency
	for _, r := range results {
		seen := make(map[uint64]bool)
		for _, m := range r.Mistakes {
			h := m.Hash()
			if seen[h] {
				continue
			}
			seen[h] = true
			if i, ok := index[h]; ok {
				out[i].Count++
				continue
			}
			index[h] = len(out)
			out = append(out, Frequency{Hash: h, Mistake: m, Count: 1})
		}
	}
	slices.SortStableFunc(out, func(a, b Frequency) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Mistake.BoundsCorrect.Start, b.Mistake.BoundsCorrect.Start)
	})
	return out
}
