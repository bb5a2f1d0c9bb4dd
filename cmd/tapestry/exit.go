// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	exitSuccess = 0
	exitReject  = 1 // a test rejected uniformity with --fail-on-reject
	exitError   = 2 // bad configuration or input
)

// exitErr is an error with a specific exit code.
type exitErr struct {
	code int
	msg  string
	err  error
}

func (e *exitErr) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *exitErr) Unwrap() error {
	return e.err
}

func wrapExit(code int, msg string, err error) error {
	return &exitErr{code: code, msg: msg, err: err}
}

// exitCode returns the exit code for err. Errors without a code are
// command errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var e *exitErr
	if errors.As(err, &e) {
		return e.code
	}
	return exitError
}
