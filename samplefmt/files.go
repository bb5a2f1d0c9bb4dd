// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import (
	"io"
	"os"
)

// FileKey is the configuration key Files sets to the path each record
// was read from. Keys starting with "." cannot appear in a file, so a
// file cannot override it.
const FileKey = ".file"

// Files reads records from a list of files in order, tagging each
// record with FileKey.
type Files struct {
	// Paths are the files to read. With AllowStdin, "-" names
	// standard input, and an empty list reads standard input only.
	Paths      []string
	AllowStdin bool

	started bool
	queue   []string
	cur     io.ReadCloser
	reader  Reader
	err     error
}

// Scan reads the next record, opening the next file as each one is
// exhausted. It returns false at the end of the last file or on an I/O
// error; Err distinguishes the two.
func (f *Files) Scan() bool {
	if !f.started {
		f.started = true
		f.queue = f.Paths
		if f.AllowStdin && len(f.queue) == 0 {
			f.queue = []string{"-"}
		}
	}
	for f.err == nil {
		if f.cur == nil && !f.openNext() {
			return false
		}
		if f.reader.Scan() {
			return true
		}
		f.err = f.reader.Err()
		f.closeCurrent()
	}
	return false
}

// openNext opens the first queued path and points the reader at it.
// It reports false when the queue is empty or the open failed.
func (f *Files) openNext() bool {
	if len(f.queue) == 0 {
		return false
	}
	path := f.queue[0]
	f.queue = f.queue[1:]

	if f.AllowStdin && path == "-" {
		f.cur = io.NopCloser(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			f.err = err
			return false
		}
		f.cur = file
	}
	f.reader.Reset(f.cur, path, FileKey, path)
	return true
}

func (f *Files) closeCurrent() {
	if f.cur != nil {
		f.cur.Close()
		f.cur = nil
	}
}

// Record returns the record read by the last call to Scan, or an error
// if its line was malformed. The record is reused by the next Scan.
func (f *Files) Record() (*Record, error) {
	return f.reader.Record()
}

// Err returns the first I/O error encountered, if any.
func (f *Files) Err() error {
	return f.err
}
