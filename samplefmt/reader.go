// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// A Reader reads the sample format.
//
// Its API is modeled on bufio.Scanner. The zero value of the Reader
// is a valid Reader, but the user must call Reset before using it.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	lineNum  int
	err      error // current I/O error

	rec    Record
	recErr error
}

// SyntaxError represents a syntax error on a particular line of a
// sample file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

var noRecord = errors.New("Reader.Scan has not been called")

// NewReader constructs a reader to parse the sample format from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input. It also
// resets all configuration values.
//
// initConfig is an alternating sequence of keys and values. Reset
// installs these as permanent configuration values that the file
// cannot override. Keys that are not valid in a file, such as
// ".file", will never be set by the file.
func (r *Reader) Reset(ior io.Reader, fileName string, initConfig ...string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.err = nil
	r.recErr = noRecord

	r.rec.Config = r.rec.Config[:0]
	r.rec.Value = 0
	r.rec.permConfig = 0

	if len(initConfig)%2 != 0 {
		panic("len(initConfig) must be a multiple of 2")
	}
	for i := 0; i < len(initConfig); i += 2 {
		r.rec.setConfig(initConfig[i], initConfig[i+1], true)
	}
}

// Scan advances the reader to the next sample and returns true if a
// sample line was read. The caller should use the Record method to
// get the record. If an I/O error occurs, or this reaches the end of
// the file, it returns false and the caller should use the Err method
// to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.s.Scan() {
		r.lineNum++
		line := r.s.Bytes()
		if len(line) > 0 && '0' <= line[0] && line[0] <= '9' {
			// A leading digit commits to a sample line.
			r.recErr = r.parseValueLine(line)
			return true
		} else if key, val, ok := parseKeyValueLine(line); ok {
			if len(val) == 0 {
				r.rec.deleteConfig(string(key))
			} else {
				r.rec.setConfig(string(key), string(val), false)
			}
		}
		// Ignore the line.
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.lineNum, err)
		return false
	}
	r.err = nil
	return false
}

// parseKeyValueLine attempts to parse line as a key: value pair. ok
// indicates whether the line could be parsed.
func parseKeyValueLine(line []byte) (key, val []byte, ok bool) {
	for i := 0; i < len(line); {
		r, n := utf8.DecodeRune(line[i:])
		// key begins with a lower case character ...
		if i == 0 && !unicode.IsLower(r) {
			return
		}
		// and contains no space characters nor upper case
		// characters.
		if unicode.IsSpace(r) || unicode.IsUpper(r) {
			return
		}
		if i > 0 && r == ':' {
			key = line[:i]
			val = line[i+1:]
			break
		}

		i += n
	}
	if len(key) == 0 {
		return
	}
	// Value can be omitted entirely, in which case the colon must
	// still be present, but need not be followed by a space.
	if len(val) == 0 {
		ok = true
		return
	}
	// One or more ASCII space or tab characters separate "key:"
	// from "value."
	for len(val) > 0 && (val[0] == ' ' || val[0] == '\t') {
		val = val[1:]
		ok = true
	}
	return
}

// parseValueLine parses line as a sample and updates r.rec. The
// caller must have already checked that it begins with a digit.
func (r *Reader) parseValueLine(line []byte) error {
	f := bytes.TrimRight(line, " \t\r")
	v, err := strconv.ParseUint(string(f), 10, 32)
	switch err := err.(type) {
	case nil:
	case *strconv.NumError:
		return &SyntaxError{r.fileName, r.lineNum, "parsing value: " + err.Err.Error()}
	default:
		return &SyntaxError{r.fileName, r.lineNum, err.Error()}
	}
	r.rec.Value = uint32(v)
	return nil
}

// Record returns the last record read, or an error if the sample line
// was malformed.
//
// Parse errors are non-fatal, so the caller can continue to call
// Scan.
//
// The caller should not retain the Record, as it will be overwritten
// by the next call to Scan.
func (r *Reader) Record() (*Record, error) {
	if r.recErr != nil {
		return nil, r.recErr
	}
	return &r.rec, nil
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}
