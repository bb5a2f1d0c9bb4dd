// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import (
	"github.com/jgerrish/tapestry-analysis/experiment"
	"github.com/jgerrish/tapestry-analysis/sample"
)

// A Run is a maximal sequence of consecutive samples sharing the same
// configuration.
type Run struct {
	Config  []Config
	Samples sample.Samples[uint32]
}

// Label returns a name for the run: its "algorithm" key if set,
// otherwise its ".file" key.
func (r *Run) Label() string {
	rec := Record{Config: r.Config}
	if l := rec.GetConfig("algorithm"); l != "" {
		return l
	}
	return rec.GetConfig(FileKey)
}

// Experiment returns the samples of r as an experiment.
func (r *Run) Experiment() experiment.Experiment[uint32] {
	return experiment.Experiment[uint32]{Samples: r.Samples}
}

// A Scanner is a source of records, such as a Reader or Files.
type Scanner interface {
	Scan() bool
	Record() (*Record, error)
	Err() error
}

// ReadAll reads every record from s and groups them into runs.
//
// If warn is nil, ReadAll stops at the first malformed sample.
// Otherwise it passes malformed samples to warn and skips them. I/O
// errors always stop ReadAll.
func ReadAll(s Scanner, warn func(error)) ([]*Run, error) {
	var runs []*Run
	var cur *Run
	for s.Scan() {
		rec, err := s.Record()
		if err != nil {
			if warn == nil {
				return nil, err
			}
			warn(err)
			continue
		}
		if cur == nil || !sameConfig(cur.Config, rec.Config) {
			cur = &Run{Config: append([]Config(nil), rec.Config...)}
			runs = append(runs, cur)
		}
		cur.Samples = append(cur.Samples, sample.Of(rec.Value))
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}
