// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/aclements/go-moremath/scale"
)

const (
	// width is the number of columns available for a bar.
	width = 55
	// headroom scales the expected bin count to the full bar
	// width, leaving room for bins above expectation.
	headroom = 1.8
)

// Draw writes one line per bin: the bin's hex range followed by a bar
// of '*' proportional to its count. Bars are scaled so that headroom
// times the expected count fills width columns, so biased data can
// exceed the expectation without wrapping badly.
func (h *Histogram) Draw(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bar := scale.Linear{Min: 0, Max: h.Expected() * headroom}
	for i, count := range h.Bins {
		start, end := h.BinRange(i)
		stars := 0
		if h.NumDataPoints > 0 {
			stars = int(math.Floor(bar.Map(float64(count)) * width))
		}
		fmt.Fprintf(bw, "0x%08X - 0x%08X: %s\n", start, end, strings.Repeat("*", stars))
	}
	return bw.Flush()
}

// DrawTerminal draws h to standard output.
func (h *Histogram) DrawTerminal() error {
	return h.Draw(os.Stdout)
}
