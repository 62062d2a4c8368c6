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

package onp

// Op describes an edit operation relative to the check sequence.
type Op int8

const (
	Add Op = iota // An element of the correct sequence is missing in check
	Del           // An element of the check sequence is not in correct
)

// Edit is a single step of an edit script.
//
// IndexCheck and IndexCorrect are the positions in the check and correct sequence before the
// step is applied.
type Edit[T any] struct {
	Op           Op
	Item         T
	IndexCheck   int
	IndexCorrect int
}

// point is a furthest reaching point on the edit graph. prev is the index of the point it was
// reached from or -1.
type point struct {
	x, y int
	prev int
}

// Differ computes edit scripts. The zero value is ready to use. A Differ reuses its buffers
// between calls, but no state of one call influences the next.
//
// A Differ must not be used concurrently.
type Differ[T any] struct {
	fp     []int
	path   []int
	points []point
	trail  []int
}

// Diff compares check and correct using eq and returns a minimal edit script that transforms
// check into correct. eq is always called with an element of check as its first argument.
func Diff[T any](check, correct []T, eq func(a, b T) bool) []Edit[T] {
	var d Differ[T]
	return d.Diff(check, correct, eq)
}

// Diff compares check and correct using eq and returns a minimal edit script that transforms
// check into correct.
func (d *Differ[T]) Diff(check, correct []T, eq func(a, b T) bool) []Edit[T] {
	// a is always the shorter input.
	a, b := check, correct
	swapped := len(check) > len(correct)
	if swapped {
		a, b = correct, check
	}
	match := func(x, y int) bool {
		if swapped {
			return eq(b[y], a[x])
		}
		return eq(a[x], b[y])
	}

	m, n := len(a), len(b)
	offset := m + 1
	delta := n - m
	size := m + n + 3

	d.fp = fill(d.fp, size, -1)
	d.path = fill(d.path, size, -1)
	d.points = d.points[:0]
	d.trail = d.trail[:0]

	snake := func(k, p, pp int) int {
		var r int
		if p > pp {
			r = d.path[k-1+offset]
		} else {
			r = d.path[k+1+offset]
		}
		y := max(p, pp)
		x := y - k
		for x < m && y < n && match(x, y) {
			x++
			y++
		}
		d.path[k+offset] = len(d.points)
		d.points = append(d.points, point{x: x, y: y, prev: r})
		return y
	}

	fp := d.fp
	for p := 0; ; p++ {
		for k := -p; k <= delta-1; k++ {
			fp[k+offset] = snake(k, fp[k-1+offset]+1, fp[k+1+offset])
		}
		for k := delta + p; k >= delta+1; k-- {
			fp[k+offset] = snake(k, fp[k-1+offset]+1, fp[k+1+offset])
		}
		fp[delta+offset] = snake(delta, fp[delta-1+offset]+1, fp[delta+1+offset])
		if fp[delta+offset] == n {
			break
		}
	}

	for r := d.path[delta+offset]; r != -1; r = d.points[r].prev {
		d.trail = append(d.trail, r)
	}

	var edits []Edit[T]
	px, py := 0, 0
	for i := len(d.trail) - 1; i >= 0; i-- {
		pt := d.points[d.trail[i]]
		for px < pt.x || py < pt.y {
			switch {
			case pt.y-pt.x > py-px:
				edits = append(edits, edit(Add, b[py], px, py, swapped))
				py++
			case pt.y-pt.x < py-px:
				edits = append(edits, edit(Del, a[px], px, py, swapped))
				px++
			default:
				px++
				py++
			}
		}
	}
	return edits
}

// edit creates an edit at position (x, y) of the edit graph and translates it back into the
// frame of the caller.
func edit[T any](op Op, item T, x, y int, swapped bool) Edit[T] {
	if !swapped {
		return Edit[T]{Op: op, Item: item, IndexCheck: x, IndexCorrect: y}
	}
	if op == Add {
		op = Del
	} else {
		op = Add
	}
	return Edit[T]{Op: op, Item: item, IndexCheck: y, IndexCorrect: x}
}

func fill(s []int, n, v int) []int {
	if cap(s) < n {
		s = make([]int, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = v
	}
	return s
}
