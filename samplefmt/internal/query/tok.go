// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"unicode"
	"unicode/utf8"
)

// A token is a word or a single operator character.
type token struct {
	// kind is 'w' for an unquoted word, 'q' for a quoted word, the
	// operator character, or 0 at the end of the query.
	kind byte
	off  int
	text string
}

func isOp(r rune) bool {
	return r == '(' || r == ')' || r == ':'
}

// tokenize splits q into tokens. "-" and "*" are operators only at the
// start of a word, so "fnv-1a" is a single word.
func tokenize(q string) ([]token, error) {
	var toks []token
	for off := 0; off < len(q); {
		rest := q[off:]
		r, size := utf8.DecodeRuneInString(rest)
		switch {
		case unicode.IsSpace(r):
			off += size
		case isOp(r) || r == '-' || r == '*':
			toks = append(toks, token{rest[0], off, rest[:1]})
			off++
		case r == '"':
			end := 1
			for end < len(rest) && rest[end] != '"' {
				end++
			}
			if end == len(rest) {
				return nil, &SyntaxError{q, off, "missing end quote"}
			}
			toks = append(toks, token{'q', off, rest[1:end]})
			off += end + 1
		default:
			end := len(rest)
			for i, r := range rest {
				if unicode.IsSpace(r) || isOp(r) {
					end = i
					break
				}
			}
			toks = append(toks, token{'w', off, rest[:end]})
			off += end
		}
	}
	return append(toks, token{0, len(q), ""}), nil
}
