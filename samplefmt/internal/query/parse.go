// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package query implements a small boolean query language over
// key-value pairs.
//
// Syntax:
//
//	expr    = andExpr {"OR" andExpr} .
//	andExpr = phrase {"AND" phrase} .
//	phrase  = match {match} .
//	match   = "(" expr ")"
//	        | "-" match
//	        | "*"
//	        | word ":" (word | "(" {word} ")") .
//	word    = [^ ():]* | "\"" [^"]* "\""
//
// Values are regular expressions that must match the whole value of
// the key.
package query

import (
	"fmt"
	"regexp"
	"strconv"
)

// SyntaxError is returned for a malformed query.
type SyntaxError struct {
	Query string
	Off   int // byte offset of the error in Query
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s\n\t%s\n\t%*s^", e.Off, e.Msg, e.Query, e.Off, "")
}

// Parse parses q.
func Parse(q string) (Node, error) {
	toks, err := tokenize(q)
	if err != nil {
		return nil, err
	}
	for i, t := range toks {
		switch {
		case t.kind == 'w' && t.text == "AND":
			toks[i].kind = 'A'
		case t.kind == 'w' && t.text == "OR":
			toks[i].kind = 'O'
		case t.kind == 'q':
			toks[i].kind = 'w'
		}
	}

	p := &parser{q: q, toks: toks}
	n, i := p.orExpr(0)
	if p.toks[i].kind != 0 {
		p.error(i, "unexpected "+strconv.Quote(p.toks[i].text))
	}
	if p.err != nil {
		return nil, p.err
	}
	return n, nil
}

type parser struct {
	q    string
	toks []token
	err  *SyntaxError
}

// error records the earliest error and skips to the end token.
func (p *parser) error(i int, msg string) int {
	off := p.toks[i].off
	if p.err == nil || off < p.err.Off {
		p.err = &SyntaxError{p.q, off, msg}
	}
	return len(p.toks) - 1
}

func (p *parser) orExpr(i int) (Node, int) {
	return p.list(i, 'O', Or, p.andExpr)
}

func (p *parser) andExpr(i int) (Node, int) {
	return p.list(i, 'A', And, p.phrase)
}

func (p *parser) list(i int, sep byte, kind OpKind, sub func(int) (Node, int)) (Node, int) {
	n, i := sub(i)
	if p.toks[i].kind != sep {
		return n, i
	}
	terms := []Node{n}
	for p.toks[i].kind == sep {
		n, i = sub(i + 1)
		terms = append(terms, n)
	}
	return &Op{kind, terms}, i
}

func (p *parser) phrase(i int) (Node, int) {
	var terms []Node
	for {
		switch p.toks[i].kind {
		case '(', '-', 'w', '*':
			var n Node
			n, i = p.match(i)
			terms = append(terms, n)
			continue
		case ')', 'A', 'O', 0:
		default:
			return nil, p.error(i, "unexpected "+strconv.Quote(p.toks[i].text))
		}
		break
	}
	switch len(terms) {
	case 0:
		return nil, p.error(i, "nothing to match")
	case 1:
		return terms[0], i
	}
	return &Op{And, terms}, i
}

func (p *parser) match(i int) (Node, int) {
	switch p.toks[i].kind {
	case '(':
		n, i := p.orExpr(i + 1)
		if p.toks[i].kind != ')' {
			return nil, p.error(i, `missing ")"`)
		}
		return n, i + 1
	case '-':
		n, i := p.match(i + 1)
		return &Op{Not, []Node{n}}, i
	case '*':
		return &Op{And, nil}, i + 1
	case 'w':
		off, key := p.toks[i].off, p.toks[i].text
		if p.toks[i+1].kind != ':' {
			return nil, p.error(i, "expected key:value")
		}
		switch p.toks[i+2].kind {
		case 'w':
			return p.matchWord(i+2, off, key)
		case '(':
			var terms []Node
			for i += 3; p.toks[i].kind == 'w'; {
				var n Node
				n, i = p.matchWord(i, off, key)
				terms = append(terms, n)
			}
			if p.toks[i].kind != ')' {
				return nil, p.error(i, "expected value")
			}
			if len(terms) == 0 {
				return nil, p.error(i, "nothing to match")
			}
			return &Op{Or, terms}, i + 1
		}
		return nil, p.error(i, "expected key:value")
	}
	return nil, p.error(i, "expected key:value or subexpression")
}

func (p *parser) matchWord(i, keyOff int, key string) (Node, int) {
	pat := p.toks[i].text
	if _, err := regexp.Compile(pat); err != nil {
		return nil, p.error(i, err.Error())
	}
	re := regexp.MustCompile("^(?:" + pat + ")$")
	return &Match{Off: keyOff, Key: key, re: re, pattern: pat}, i + 1
}
