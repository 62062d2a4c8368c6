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

// Package register stores known mistakes by hash in a SQLite database.
//
// A mistake has the same hash in every submission graded against the same template. The register
// counts how many times each mistake was observed and lets graders attach a label to it, such as a
// classification of the error.
package register

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
	"znkr.io/mistakes"
)

// Schema is the SQL DDL of the register. It is applied by [Open].
const Schema = `
CREATE TABLE IF NOT EXISTS mistakes (
    hash     INTEGER PRIMARY KEY,
    kind     TEXT NOT NULL,
    word     TEXT NOT NULL,
    record   TEXT NOT NULL,
    label    TEXT NOT NULL DEFAULT '',
    count    INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_mistakes_count ON mistakes(count);
`

// ErrNotFound is returned for hashes that have never been observed.
var ErrNotFound = errors.New("register: not found")

// Entry is a mistake known to the register.
type Entry struct {
	Hash    uint64
	Mistake mistakes.Mistake // First observed occurrence
	Label   string
	Count   int
}

// Register is a SQLite backed store of mistakes. It is safe for concurrent use.
type Register struct {
	db *sql.DB
}

// Open opens or creates the register at path. Use ":memory:" for a transient register.
func Open(ctx context.Context, path string) (*Register, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("register: open %q: %w", path, err)
	}
	// In-memory databases exist per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("register: migrate %q: %w", path, err)
	}
	return &Register{db: db}, nil
}

// Close closes the database.
func (r *Register) Close() error {
	return r.db.Close()
}

// Observe records one occurrence of every mistake. The first occurrence of a hash is stored as
// the representative of all mistakes with that hash.
func (r *Register) Observe(ctx context.Context, ms []mistakes.Mistake) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("register: observe: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO mistakes (hash, kind, word, record, count)
		VALUES (?, ?, ?, ?, 1)
		ON CONFLICT(hash) DO UPDATE SET count = count + 1`

	for i := range ms {
		m := &ms[i]
		record, err := json.Marshal(mistakes.Export(*m))
		if err != nil {
			return fmt.Errorf("register: marshal mistake %q: %w", m.ID, err)
		}
		if _, err := tx.ExecContext(ctx, query, int64(m.Hash()), m.Kind.String(), m.Word, string(record)); err != nil {
			return fmt.Errorf("register: observe %s: %w", mistakes.FormatHash(m.Hash()), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("register: observe: %w", err)
	}
	return nil
}

// Lookup returns the entry for hash or an error wrapping [ErrNotFound].
func (r *Register) Lookup(ctx context.Context, hash uint64) (Entry, error) {
	const query = `SELECT hash, record, label, count FROM mistakes WHERE hash = ?`
	e, err := scan(r.db.QueryRowContext(ctx, query, int64(hash)))
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, mistakes.FormatHash(hash))
	}
	if err != nil {
		return Entry{}, fmt.Errorf("register: lookup %s: %w", mistakes.FormatHash(hash), err)
	}
	return e, nil
}

// Label attaches label to the mistake with the given hash. It returns an error wrapping
// [ErrNotFound] if the hash has never been observed.
func (r *Register) Label(ctx context.Context, hash uint64, label string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE mistakes SET label = ? WHERE hash = ?`, label, int64(hash))
	if err != nil {
		return fmt.Errorf("register: label %s: %w", mistakes.FormatHash(hash), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("register: label %s: %w", mistakes.FormatHash(hash), err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, mistakes.FormatHash(hash))
	}
	return nil
}

// Top returns up to n entries ordered by decreasing count.
func (r *Register) Top(ctx context.Context, n int) ([]Entry, error) {
	const query = `SELECT hash, record, label, count FROM mistakes ORDER BY count DESC, hash LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("register: top: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("register: top: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("register: top: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (Entry, error) {
	var (
		e      Entry
		hash   int64
		record string
	)
	if err := s.Scan(&hash, &record, &e.Label, &e.Count); err != nil {
		return Entry{}, err
	}
	e.Hash = uint64(hash)

	var rec mistakes.Record
	if err := json.Unmarshal([]byte(record), &rec); err != nil {
		return Entry{}, fmt.Errorf("unmarshal record: %w", err)
	}
	m, err := mistakes.Import(rec)
	if err != nil {
		return Entry{}, err
	}
	e.Mistake = m
	return e, nil
}
