// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package samplefmt reads and writes experiment outputs as text.
//
// A file is a sequence of lines. A line of the form "key: value",
// where key begins with a lower case letter and contains no spaces or
// upper case letters, sets a configuration value that applies to
// every following sample until it is changed. "key:" with no value
// removes the key. A line beginning with a decimal digit is one
// sample: an unsigned 32-bit integer. All other lines are ignored.
//
//	algorithm: crc32
//	generator: crc
//	message-size: 50
//
//	2596069104
//	418263947
//
// The format follows the key/value conventions of the Go benchmark
// format, so files can be annotated and concatenated freely.
package samplefmt

// Record is a single sample and the configuration in effect for it.
type Record struct {
	// Config is the set of key/value pairs in effect for this
	// record, in the order the keys were first set.
	//
	// This is modified in place by the Reader. New keys are
	// appended. Deleted keys are removed.
	Config []Config

	// Value is the sample.
	Value uint32

	// permConfig indicates that Config[:permConfig] cannot be
	// overridden by the file.
	permConfig int
}

// Config is a single key/value configuration pair.
type Config struct {
	Key, Value string
}

// Clone makes a copy of r that shares no state with r.
func (r *Record) Clone() *Record {
	return &Record{
		Config:     append([]Config(nil), r.Config...),
		Value:      r.Value,
		permConfig: r.permConfig,
	}
}

// ConfigIndex returns the index in r.Config of key.
func (r *Record) ConfigIndex(key string) (pos int, ok bool) {
	for i, cfg := range r.Config {
		if cfg.Key == key {
			return i, true
		}
	}
	return 0, false
}

// GetConfig returns the value of configuration key, or "" if it is
// not set.
func (r *Record) GetConfig(key string) string {
	if pos, ok := r.ConfigIndex(key); ok {
		return r.Config[pos].Value
	}
	return ""
}

// setConfig sets configuration key to value. perm indicates a
// permanent value that the file cannot override.
func (r *Record) setConfig(key, value string, perm bool) {
	pos, ok := r.ConfigIndex(key)
	if ok {
		if !perm && pos < r.permConfig {
			return
		}
		r.Config[pos].Value = value
		return
	}
	if perm {
		if len(r.Config) != r.permConfig {
			panic("setting permanent config after reading file")
		}
		r.permConfig++
	}
	r.Config = append(r.Config, Config{key, value})
}

func (r *Record) deleteConfig(key string) {
	pos, ok := r.ConfigIndex(key)
	if !ok || pos < r.permConfig {
		return
	}
	r.Config = append(r.Config[:pos], r.Config[pos+1:]...)
}

func sameConfig(a, b []Config) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
