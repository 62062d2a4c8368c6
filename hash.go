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
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Hash returns the content address of m. It only depends on Kind, BoundsCorrect and Word: the
// same mistake against the same template position has the same hash in every submission.
//
// The hash is cached. Use [Mistake.SetWord] and [Mistake.SetBoundsCorrect] to modify these
// fields, or call [Mistake.Rehash] after modifying them directly.
func (m *Mistake) Hash() uint64 {
	if !m.hashed {
		m.hash = hashOf(m.Kind, m.BoundsCorrect, m.Word)
		m.hashed = true
	}
	return m.hash
}

// Rehash recomputes the cached hash and returns it.
func (m *Mistake) Rehash() uint64 {
	m.hashed = false
	return m.Hash()
}

// hashOf encodes the fields in a fixed layout: kind, start and end (little endian), word length
// and word.
func hashOf(kind Kind, correct Bounds, word string) uint64 {
	var buf [25]byte
	buf[0] = byte(kind)
	binary.LittleEndian.PutUint64(buf[1:], uint64(correct.Start))
	binary.LittleEndian.PutUint64(buf[9:], uint64(correct.End))
	binary.LittleEndian.PutUint64(buf[17:], uint64(len(word)))
	d := xxhash.New()
	d.Write(buf[:])
	d.WriteString(word)
	return d.Sum64()
}

// FormatHash returns h as 16 lowercase hex digits.
func FormatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// ParseHash parses a hash formatted by [FormatHash].
func ParseHash(s string) (uint64, error) {
	h, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: hash %q: %v", ErrInvalidArgument, s, err)
	}
	return h, nil
}
