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
	"unicode/utf8"

	"znkr.io/mistakes/internal/config"
)

// TokenKind distinguishes words from delimiters.
type TokenKind int

const (
	TokenWord  TokenKind = iota // A maximal run of non-delimiter characters
	TokenPunct                  // A single delimiter character
)

// Token is a word or a single delimiter character of a text.
type Token struct {
	Content string
	Offset  int // Offset of the first rune in the text
	Kind    TokenKind
}

// Len returns the length of the token in runes.
func (t Token) Len() int { return utf8.RuneCountInString(t.Content) }

// Tokenize splits text into words and delimiters. Space, newline and the punctuation characters
// are delimiters. Every delimiter becomes a token of its own, runs of other characters become word
// tokens.
//
// The following option is supported: [Punctuation]
func Tokenize(text string, opts ...Option) []Token {
	cfg := config.FromOptions(opts, config.Punctuation)
	return tokenize(text, cfg)
}

func tokenize(text string, cfg config.Config) []Token {
	var toks []Token
	word := -1 // byte offset of the current word or -1
	wordOffset := 0
	pos := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if cfg.IsDelimiter(r) {
			if word >= 0 {
				toks = append(toks, Token{Content: text[word:i], Offset: wordOffset, Kind: TokenWord})
				word = -1
			}
			toks = append(toks, Token{Content: text[i : i+size], Offset: pos, Kind: TokenPunct})
		} else if word < 0 {
			word, wordOffset = i, pos
		}
		i += size
		pos++
	}
	if word >= 0 {
		toks = append(toks, Token{Content: text[word:], Offset: wordOffset, Kind: TokenWord})
	}
	return toks
}
