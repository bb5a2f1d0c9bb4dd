// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// A Node is a node in a parsed query. It is either an *Op or a *Match.
type Node interface {
	isNode()
	String() string
}

// Match is a leaf that tests the value of one key against a regular
// expression anchored at both ends.
type Match struct {
	Off     int // byte offset of Key in the query
	Key     string
	re      *regexp.Regexp
	pattern string
}

func (*Match) isNode() {}

func (m *Match) String() string {
	return quote(m.Key) + ":" + quote(m.pattern)
}

// Matches reports whether value matches m's pattern in full.
func (m *Match) Matches(value string) bool {
	return m.re.MatchString(value)
}

func quote(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if unicode.IsSpace(r) || r == '"' || isOp(r) {
			return strconv.Quote(s)
		}
	}
	return s
}

// OpKind is a boolean operator.
type OpKind int

const (
	And OpKind = 1 + iota
	Or
	Not
)

// Op applies a boolean operator to its children. Not has exactly one
// child. An And with no children matches everything and prints as
// "*".
type Op struct {
	Kind  OpKind
	Exprs []Node
}

func (*Op) isNode() {}

func (o *Op) String() string {
	switch o.Kind {
	case Not:
		return "-" + o.Exprs[0].String()
	case And:
		if len(o.Exprs) == 0 {
			return "*"
		}
	}
	sep := " AND "
	if o.Kind == Or {
		sep = " OR "
	}
	parts := make([]string, len(o.Exprs))
	for i, e := range o.Exprs {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// Eval evaluates n, looking up the value of each key with get.
func Eval(n Node, get func(key string) string) bool {
	switch n := n.(type) {
	case *Match:
		return n.Matches(get(n.Key))
	case *Op:
		switch n.Kind {
		case Not:
			return !Eval(n.Exprs[0], get)
		case Or:
			for _, e := range n.Exprs {
				if Eval(e, get) {
					return true
				}
			}
			return false
		}
		for _, e := range n.Exprs {
			if !Eval(e, get) {
				return false
			}
		}
		return true
	}
	return false
}
