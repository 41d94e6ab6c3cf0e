// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command osetreplay replays an ordered-set operation script and prints
// the transcript, one line per operation.
//
// Usage:
//
//	osetreplay [flags] [file]
//
// Flags:
//
//	--txtar      Treat input as a txtar archive and replay its "script" file
//	--verbose    Verbose output
//	--version    Show version information
//	--help       Show help
//
// Files ending in .txtar are read as archives automatically. With no file,
// the script is read from stdin.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/orderedset"
	"github.com/albertocavalcante/orderedset/internal/script"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("osetreplay", flag.ContinueOnError)
	fs.SetOutput(stderr)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	archive := fs.Bool("txtar", false, "Treat input as a txtar archive")
	verbose := fs.Bool("verbose", false, "Verbose output")

	fs.Usage = func() {
		fmt.Fprint(stderr, `osetreplay - Ordered set script replayer

Replay a script of ordered-set operations and print the result of each.

Usage:
  osetreplay [flags] [file]

Flags:
  --txtar      Treat input as a txtar archive and replay its "script" file
  --verbose    Verbose output
  --version    Show version information
  --help       Show this help

Commands:
  append E...     insert E AT     swap I J
  remove E        remove-at I     get I
  set I E         has E           index E
  len             print           check

Examples:
  # Replay a plain script
  osetreplay ops.txt

  # Replay the script section of a golden archive
  osetreplay internal/script/testdata/scenario.txtar

  # Read from stdin
  printf 'append a b\nprint\n' | osetreplay

`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showHelp {
		fs.Usage()
		return nil
	}

	if *showVersion {
		fmt.Fprintf(stdout, "osetreplay %s (commit: %s, built: %s)\n", version, commit, date)
		return nil
	}

	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	name := "<stdin>"
	var data []byte
	var err error
	if fs.NArg() == 1 {
		name = fs.Arg(0)
		data, err = os.ReadFile(name)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	if *archive || strings.HasSuffix(name, ".txtar") {
		src, ok := script.FromArchive(txtar.Parse(data))
		if !ok {
			return fmt.Errorf("%s: archive has no script file", name)
		}
		data = src
	}

	ops, err := script.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	if *verbose {
		fmt.Fprintf(stderr, "Replaying %d operations from %s\n", len(ops), name)
	}

	for _, line := range script.Run(orderedset.New[string](), ops) {
		fmt.Fprintln(stdout, line)
	}
	return nil
}
