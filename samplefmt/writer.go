// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import (
	"bytes"
	"fmt"
	"io"
)

// A Writer writes the sample format.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer

	first  bool
	config map[string]string
	order  []string
}

// NewWriter returns a writer that writes samples to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, first: true, config: make(map[string]string)}
}

// Write writes record rec to w. If rec's configuration differs from
// the current configuration in w, it first emits the appropriate
// configuration lines. Keys beginning with "." are internal and are
// never written.
func (w *Writer) Write(rec *Record) error {
	cfg := writable(rec.Config)

	// If any config changed, write out the changes.
	if len(w.config) != len(cfg) {
		w.writeConfig(cfg)
	} else {
		for _, c := range cfg {
			if val, ok := w.config[c.Key]; !ok || c.Value != val {
				w.writeConfig(cfg)
				break
			}
		}
	}

	fmt.Fprintf(&w.buf, "%d\n", rec.Value)
	w.first = false

	// Flush the buffer out to the io.Writer. Write to the buffer
	// can't fail, so we only have to check if this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

// WriteRun writes every sample in run.
func (w *Writer) WriteRun(run *Run) error {
	rec := Record{Config: run.Config}
	for _, s := range run.Samples {
		rec.Value = s.Value
		if err := w.Write(&rec); err != nil {
			return err
		}
	}
	return nil
}

func writable(cfg []Config) []Config {
	out := cfg[:0:0]
	for _, c := range cfg {
		if len(c.Key) > 0 && c.Key[0] != '.' {
			out = append(out, c)
		}
	}
	return out
}

func (w *Writer) writeConfig(cfg []Config) {
	if !w.first {
		// Configuration blocks after samples get an extra blank.
		w.buf.WriteByte('\n')
		w.first = true
	}

	index := make(map[string]string, len(cfg))
	for _, c := range cfg {
		index[c.Key] = c.Value
	}

	// Walk keys we know to find changes and deletions.
	for i := 0; i < len(w.order); i++ {
		key := w.order[i]
		val, ok := index[key]
		if !ok {
			// Key was deleted.
			fmt.Fprintf(&w.buf, "%s:\n", key)
			delete(w.config, key)
			copy(w.order[i:], w.order[i+1:])
			w.order = w.order[:len(w.order)-1]
			i--
			continue
		}
		if w.config[key] == val {
			continue
		}
		fmt.Fprintf(&w.buf, "%s: %s\n", key, val)
		w.config[key] = val
	}

	// Find new keys.
	for _, c := range cfg {
		if _, ok := w.config[c.Key]; ok {
			continue
		}
		fmt.Fprintf(&w.buf, "%s: %s\n", c.Key, c.Value)
		w.config[c.Key] = c.Value
		w.order = append(w.order, c.Key)
	}

	w.buf.WriteByte('\n')
}
