// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import "github.com/jgerrish/tapestry-analysis/samplefmt/internal/query"

// A Filter selects records by their configuration.
//
// A filter is a boolean query over configuration keys, such as
//
//	algorithm:(crc32 crc32c) -generator:rand
//
// Each value is a regular expression that must match the whole value
// of its key. A missing key has the empty value. The query "*" matches
// everything.
type Filter struct {
	q query.Node
}

// NewFilter parses a filter query.
func NewFilter(q string) (*Filter, error) {
	n, err := query.Parse(q)
	if err != nil {
		return nil, err
	}
	return &Filter{n}, nil
}

// Match reports whether rec's configuration satisfies f.
func (f *Filter) Match(rec *Record) bool {
	return query.Eval(f.q, rec.GetConfig)
}

// MatchRun reports whether run's configuration satisfies f.
func (f *Filter) MatchRun(run *Run) bool {
	return f.Match(&Record{Config: run.Config})
}

func (f *Filter) String() string {
	return f.q.String()
}

// FilterRuns returns the runs that satisfy f.
func FilterRuns(f *Filter, runs []*Run) []*Run {
	var out []*Run
	for _, r := range runs {
		if f.MatchRun(r) {
			out = append(out, r)
		}
	}
	return out
}
