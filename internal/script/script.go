// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package script replays line-oriented operation scripts against an
// ordered set of strings and records a transcript of the results.
//
// A script holds one command per line. Blank lines and lines starting
// with "#" are ignored:
//
//	append a b c
//	insert x 0
//	swap 0 3
//	remove b
//	print
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/orderedset"
)

// Op is a single parsed script command.
type Op struct {
	// Line is the 1-based source line.
	Line int

	// Name is the command name, e.g. "append".
	Name string

	// Args holds the raw arguments.
	Args []string

	// Ints holds the arguments that were parsed as positions.
	Ints []int
}

// command describes the arguments a script command accepts.
type command struct {
	// minArgs and maxArgs bound len(Args); maxArgs < 0 means unbounded.
	minArgs, maxArgs int

	// intArgs lists argument offsets that must parse as integers.
	intArgs []int

	run func(s *orderedset.OrderedSet[string], op Op) string
}

var commands = map[string]command{
	"append":    {minArgs: 1, maxArgs: -1, run: runAppend},
	"insert":    {minArgs: 2, maxArgs: 2, intArgs: []int{1}, run: runInsert},
	"swap":      {minArgs: 2, maxArgs: 2, intArgs: []int{0, 1}, run: runSwap},
	"remove":    {minArgs: 1, maxArgs: 1, run: runRemove},
	"remove-at": {minArgs: 1, maxArgs: 1, intArgs: []int{0}, run: runRemoveAt},
	"get":       {minArgs: 1, maxArgs: 1, intArgs: []int{0}, run: runGet},
	"set":       {minArgs: 2, maxArgs: 2, intArgs: []int{0}, run: runSet},
	"has":       {minArgs: 1, maxArgs: 1, run: runHas},
	"index":     {minArgs: 1, maxArgs: 1, run: runIndex},
	"len":       {run: runLen},
	"print":     {run: runPrint},
	"check":     {run: runCheck},
}

// Parse reads a script and returns its operations.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		op, err := parseLine(line, text)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ops, nil
}

func parseLine(line int, text string) (Op, error) {
	fields := strings.Fields(text)
	op := Op{Line: line, Name: fields[0], Args: fields[1:]}

	cmd, ok := commands[op.Name]
	if !ok {
		return Op{}, fmt.Errorf("line %d: unknown command %q", line, op.Name)
	}
	if len(op.Args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(op.Args) > cmd.maxArgs) {
		return Op{}, fmt.Errorf("line %d: %s: %s", line, op.Name, arity(cmd))
	}
	for _, i := range cmd.intArgs {
		n, err := strconv.Atoi(op.Args[i])
		if err != nil {
			return Op{}, fmt.Errorf("line %d: %s: invalid position %q", line, op.Name, op.Args[i])
		}
		op.Ints = append(op.Ints, n)
	}
	return op, nil
}

func arity(cmd command) string {
	switch {
	case cmd.maxArgs < 0:
		return fmt.Sprintf("want at least %d argument(s)", cmd.minArgs)
	case cmd.minArgs == cmd.maxArgs:
		return fmt.Sprintf("want %d argument(s)", cmd.minArgs)
	default:
		return fmt.Sprintf("want %d to %d arguments", cmd.minArgs, cmd.maxArgs)
	}
}

// FromArchive returns the contents of the "script" file in ar.
func FromArchive(ar *txtar.Archive) ([]byte, bool) {
	for _, f := range ar.Files {
		if f.Name == "script" {
			return f.Data, true
		}
	}
	return nil, false
}

// Run applies ops to s and returns one transcript line per op.
func Run(s *orderedset.OrderedSet[string], ops []Op) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, commands[op.Name].run(s, op))
	}
	return out
}

// Execute parses the script in r and runs it against a fresh set.
func Execute(r io.Reader) ([]string, error) {
	ops, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return Run(orderedset.New[string](), ops), nil
}

func runAppend(s *orderedset.OrderedSet[string], op Op) string {
	return fmt.Sprintf("added %d", s.AppendAll(op.Args...))
}

func runInsert(s *orderedset.OrderedSet[string], op Op) string {
	if err := s.Insert(op.Args[0], op.Ints[0]); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

func runSwap(s *orderedset.OrderedSet[string], op Op) string {
	if s.Swap(op.Ints[0], op.Ints[1]) {
		return "swapped"
	}
	return "unchanged"
}

func runRemove(s *orderedset.OrderedSet[string], op Op) string {
	if v, ok := s.Remove(op.Args[0]); ok {
		return "removed " + v
	}
	return "absent"
}

func runRemoveAt(s *orderedset.OrderedSet[string], op Op) string {
	if v, ok := s.RemoveAt(op.Ints[0]); ok {
		return "removed " + v
	}
	return "absent"
}

func runGet(s *orderedset.OrderedSet[string], op Op) string {
	v, err := s.Get(op.Ints[0])
	if err != nil {
		return "error: " + err.Error()
	}
	return v
}

func runSet(s *orderedset.OrderedSet[string], op Op) string {
	if err := s.Set(op.Ints[0], op.Args[1]); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

func runHas(s *orderedset.OrderedSet[string], op Op) string {
	return strconv.FormatBool(s.Has(op.Args[0]))
}

func runIndex(s *orderedset.OrderedSet[string], op Op) string {
	if i, ok := s.IndexOf(op.Args[0]); ok {
		return strconv.Itoa(i)
	}
	return "absent"
}

func runLen(s *orderedset.OrderedSet[string], _ Op) string {
	return strconv.Itoa(s.Len())
}

func runPrint(s *orderedset.OrderedSet[string], _ Op) string {
	return s.String()
}

func runCheck(s *orderedset.OrderedSet[string], _ Op) string {
	if err := Check(s); err != nil {
		return err.Error()
	}
	return "consistent"
}

// Check verifies that every element maps back to its own position and
// that no element appears twice.
func Check[T comparable](s *orderedset.OrderedSet[T]) error {
	seen := make(map[T]int, s.Len())
	for i, e := range s.All() {
		if j, dup := seen[e]; dup {
			return fmt.Errorf("duplicate %v at %d and %d", e, j, i)
		}
		seen[e] = i
		got, ok := s.IndexOf(e)
		if !ok {
			return fmt.Errorf("%v at %d has no position", e, i)
		}
		if got != i {
			return fmt.Errorf("%v at %d maps to %d", e, i, got)
		}
	}
	return nil
}
