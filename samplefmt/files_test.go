// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestFiles(t *testing.T) {
	f := &Files{Paths: []string{"testdata/a.txt", "testdata/b.txt"}}
	runs, err := ReadAll(f, nil)
	if err != nil {
		t.Fatal(err)
	}

	type summary struct {
		label, file string
		values      []uint32
	}
	var got []summary
	for _, run := range runs {
		rec := Record{Config: run.Config}
		got = append(got, summary{run.Label(), rec.GetConfig(".file"), run.Samples.Values()})
	}
	want := []summary{
		{"adler32", "testdata/a.txt", []uint32{1, 2}},
		{"crc32", "testdata/a.txt", []uint32{3}},
		{"fnv1a", "testdata/b.txt", []uint32{4294967295}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v\nwant %+v", got, want)
	}
}

func TestFilesMissing(t *testing.T) {
	f := &Files{Paths: []string{"testdata/does-not-exist"}}
	if f.Scan() {
		t.Fatal("Scan succeeded on a missing file")
	}
	if !os.IsNotExist(f.Err()) {
		t.Errorf("want not-exist error, got %v", f.Err())
	}
}

func TestFilesMissingLater(t *testing.T) {
	f := &Files{Paths: []string{"testdata/b.txt", "testdata/does-not-exist"}}
	var values []uint32
	for f.Scan() {
		rec, err := f.Record()
		if err != nil {
			t.Fatal(err)
		}
		if got := rec.GetConfig(FileKey); got != "testdata/b.txt" {
			t.Errorf("%s = %q, want testdata/b.txt", FileKey, got)
		}
		values = append(values, rec.Value)
	}
	if !reflect.DeepEqual(values, []uint32{4294967295}) {
		t.Errorf("got values %v", values)
	}
	if !os.IsNotExist(f.Err()) {
		t.Errorf("want not-exist error, got %v", f.Err())
	}
	if f.Scan() {
		t.Error("Scan succeeded after an error")
	}
}

func TestFilesEmpty(t *testing.T) {
	f := &Files{}
	if f.Scan() {
		t.Error("Scan succeeded with no paths")
	}
	if f.Err() != nil {
		t.Errorf("unexpected error %v", f.Err())
	}
}

func TestRunLabelFallsBackToFile(t *testing.T) {
	run := &Run{Config: []Config{{".file", "x.txt"}}}
	if got := run.Label(); got != "x.txt" {
		t.Errorf("got %q, want x.txt", got)
	}
}

func TestReadAllWarn(t *testing.T) {
	const input = "algorithm: crc32\n1\nbogus-line-is-ignored\n12x\n2\n"

	if _, err := ReadAll(NewReader(strings.NewReader(input), "in"), nil); err == nil {
		t.Error("want error without warn")
	}

	var warnings []string
	runs, err := ReadAll(NewReader(strings.NewReader(input), "in"), func(err error) {
		warnings = append(warnings, err.Error())
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"in:4: parsing value: invalid syntax"}; !reflect.DeepEqual(warnings, want) {
		t.Errorf("warnings %q, want %q", warnings, want)
	}
	if len(runs) != 1 || !reflect.DeepEqual(runs[0].Samples.Values(), []uint32{1, 2}) {
		t.Errorf("unexpected runs %+v", runs)
	}
}
