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

// Package onp contains an implementation of the O(NP) sequence comparison algorithm by Wu, Manber,
// Myers and Miller.
//
// The result is always a minimal edit script. Unlike the linear space Myers variant, the
// algorithm records every furthest reaching point it visits and recovers the path by following
// predecessor links. Ties between equally short scripts are always broken the same way.
//
// # Algorithm
//
// Let a be the shorter input with length M and b the longer one with length N. As in Myers'
// algorithm, all edits that transform a into b form a grid graph with a diagonal edge wherever
// a[x] == b[y]. Diagonals are numbered k = y - x and the destination (M, N) lies on diagonal
// delta = N - M.
//
// Every path to (M, N) must take at least delta vertical edges. Let P be the number of
// horizontal edges on a shortest path (a deletion from a), the edit distance is then D = delta +
// 2P. The algorithm iterates p = 0, 1, 2, ... and, for every p, extends the furthest reaching
// point on each diagonal k in [-p, delta+p]:
//
//	for k in -p ... delta-1:        fp[k] = snake(k, max(fp[k-1]+1, fp[k+1]))
//	for k in delta+p ... delta+1:   fp[k] = snake(k, max(fp[k-1]+1, fp[k+1]))
//	                                fp[delta] = snake(delta, max(fp[delta-1]+1, fp[delta+1]))
//
// until fp[delta] == N. snake follows diagonal edges as long as elements match. A point reached
// from fp[k-1]+1 took a vertical edge (consuming an element of b), a point reached from fp[k+1]
// took a horizontal edge (consuming an element of a). When both candidates are equal, the
// horizontal predecessor wins.
//
// The time complexity is O((M+N)P) and the space is O((M+N)P) for the recorded points.
//
// ## References:
//
// Wu, S., Manber, U., Myers, G., Miller, W. An O(NP) sequence comparison algorithm. Information
// Processing Letters, Volume 35, Issue 6, 317-323 (1990).
// https://doi.org/10.1016/0020-0190(90)90035-V
package onp
