// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for orderedset.
package testutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case represents a parsed scenario from a txtar archive.
type Case struct {
	// Name is the scenario name (the filename without extension).
	Name string

	// Description is the comment block before any files.
	Description string

	// Script is the contents of the "script" file.
	Script []byte

	// Want is the contents of the "want" file: the expected transcript.
	Want []byte
}

// ParseCase parses a txtar archive into a Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - A "script" file with the operations to replay
//   - A "want" file with one expected transcript line per operation
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
	}

	for _, f := range ar.Files {
		switch f.Name {
		case "script":
			c.Script = f.Data
		case "want":
			c.Want = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected script or want)", f.Name)
		}
	}

	if c.Script == nil {
		return nil, fmt.Errorf("missing script in archive")
	}
	if c.Want == nil {
		return nil, fmt.Errorf("missing want in archive")
	}

	return c, nil
}

// RunFunc replays a script and returns the transcript lines.
type RunFunc func(script []byte) ([]string, error)

// Run executes the case using run and compares the transcript against Want.
func (c *Case) Run(t *testing.T, run RunFunc) []string {
	t.Helper()

	got, err := run(c.Script)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := normalizeContent(c.Want)
	if diff := cmp.Diff(want, normalizeContent([]byte(strings.Join(got, "\n")))); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
	return got
}

// normalizeContent trims trailing whitespace from each line and trailing
// newlines from the whole content.
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	result := strings.Join(lines, "\n")
	return strings.TrimRight(result, "\n")
}

// UpdateArchive returns a copy of ar whose "want" file holds got.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got []string) *txtar.Archive {
	result := &txtar.Archive{
		Comment: ar.Comment,
	}
	for _, f := range ar.Files {
		if f.Name == "script" {
			result.Files = append(result.Files, f)
			break
		}
	}
	result.Files = append(result.Files, txtar.File{
		Name: "want",
		Data: []byte(strings.Join(got, "\n") + "\n"),
	})
	return result
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}

// LoadCases loads all txtar scenarios from a directory, sorted by name.
// It also returns the parsed archives keyed by case name.
func LoadCases(t *testing.T, dir string) ([]*Case, map[string]*txtar.Archive) {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	archives := make(map[string]*txtar.Archive, len(files))
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, c)
		archives[name] = ar
	}

	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases, archives
}
