// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package script

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/orderedset"
	"github.com/albertocavalcante/orderedset/internal/testutil"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	cases, archives := testutil.LoadCases(t, "testdata")

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			got := c.Run(t, func(script []byte) ([]string, error) {
				return Execute(bytes.NewReader(script))
			})

			if *update {
				ar := testutil.UpdateArchive(archives[c.Name], got)
				path := filepath.Join("testdata", c.Name+".txtar")
				if err := os.WriteFile(path, testutil.FormatArchive(ar), 0o644); err != nil {
					t.Fatalf("update %s: %v", path, err)
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	src := `# comment
append a b

insert x 1
swap 0 2
len
`
	ops, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []Op{
		{Line: 2, Name: "append", Args: []string{"a", "b"}},
		{Line: 4, Name: "insert", Args: []string{"x", "1"}, Ints: []int{1}},
		{Line: 5, Name: "swap", Args: []string{"0", "2"}, Ints: []int{0, 2}},
		{Line: 6, Name: "len", Args: []string{}},
	}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "unknown command", src: "pop", wantErr: `line 1: unknown command "pop"`},
		{name: "append without args", src: "append", wantErr: "line 1: append: want at least 1 argument(s)"},
		{name: "insert missing position", src: "len\ninsert x", wantErr: "line 2: insert: want 2 argument(s)"},
		{name: "len with args", src: "len 3", wantErr: "line 1: len: want 0 argument(s)"},
		{name: "non-numeric position", src: "swap 0 x", wantErr: `line 1: swap: invalid position "x"`},
		{name: "non-numeric get", src: "get first", wantErr: `line 1: get: invalid position "first"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tc.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestRunSharesSet(t *testing.T) {
	s := orderedset.New("seed")
	ops, err := Parse(strings.NewReader("append a\nlen"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := Run(s, ops)
	if diff := cmp.Diff([]string{"added 1", "2"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !s.Has("a") {
		t.Error("Run should mutate the given set")
	}
}

func TestCheck(t *testing.T) {
	s := orderedset.New(1, 2, 3)
	if err := Check(s); err != nil {
		t.Fatalf("Check on fresh set: %v", err)
	}

	if err := s.Set(0, 3); err != nil {
		t.Fatalf("Set: %v", err)
	}
	err := Check(s)
	if err == nil {
		t.Fatal("expected inconsistency after duplicate Set")
	}
	if want := "duplicate 3 at 0 and 2"; err.Error() != want {
		t.Errorf("Check error = %q, want %q", err.Error(), want)
	}
}

func TestFromArchive(t *testing.T) {
	ar := txtar.Parse([]byte("-- want --\n0\n-- script --\nlen\n"))
	src, ok := FromArchive(ar)
	if !ok {
		t.Fatal("expected script file")
	}
	if string(src) != "len\n" {
		t.Errorf("FromArchive = %q, want %q", src, "len\n")
	}

	if _, ok := FromArchive(txtar.Parse([]byte("-- want --\n0\n"))); ok {
		t.Error("archive without script should report false")
	}
}
