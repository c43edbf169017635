/*
Copyright (C) 2023  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestSessionEvalString(t *testing.T) {
	s := NewSession(nil)
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Fatalf("session id %q is not a uuid: %v", s.ID, err)
	}
	v, err := s.EvalString("test", "(define x 2) (* x 21)")
	if err != nil || String(v) != "42" {
		t.Fatalf("unexpected result %s %v", String(v), err)
	}
	// a program that does not parse is not evaluated at all
	if _, err := s.EvalString("test", "(define y 1) (+ y"); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if _, err := s.EvalString("test", "y"); !errors.Is(err, ErrUnboundSymbol) {
		t.Fatalf("partial program was evaluated: %v", err)
	}
	if NewSession(nil).ID == s.ID {
		t.Fatalf("session ids must differ")
	}
}

func TestSessionConcurrentUse(t *testing.T) {
	s := NewSession(nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := fmt.Sprintf("(define v%d (* %d %d))", i, i, i)
			if _, err := s.EvalString("test", code); err != nil {
				t.Errorf("%s: %v", code, err)
			}
		}(i)
	}
	wg.Wait()
	for i := 0; i < 16; i++ {
		v, err := s.EvalString("test", fmt.Sprintf("v%d", i))
		if err != nil || v.Int() != int64(i*i) {
			t.Fatalf("v%d = %s %v", i, String(v), err)
		}
	}
}

func TestRunParallel(t *testing.T) {
	jobs := []Job{
		{"a", "(+ 1 2)"},
		{"b", "(car (list))"},
		{"c", "(define z 5) (* z z)"},
		{"d", "z"},
	}
	var m sync.Mutex
	lanes := map[int]bool{}
	results := RunParallel(jobs, func(s *Session) {
		m.Lock()
		lanes[traceLane()] = true
		m.Unlock()
		s.Define("ten", NewInt(10))
	})
	if len(results) != len(jobs) {
		t.Fatalf("expected %d results, got %d", len(jobs), len(results))
	}
	if results[0].Source != "a" || results[0].Err != nil || String(results[0].Value) != "3" {
		t.Fatalf("job a: %+v", results[0])
	}
	if !errors.Is(results[1].Err, ErrIndexOutOfRange) {
		t.Fatalf("job b: expected index error, got %v", results[1].Err)
	}
	if results[2].Err != nil || String(results[2].Value) != "25" {
		t.Fatalf("job c: %+v", results[2])
	}
	// every job has its own environment
	if !errors.Is(results[3].Err, ErrUnboundSymbol) {
		t.Fatalf("job d saw a definition of job c: %v", results[3].Err)
	}
	for i := 1; i <= len(jobs); i++ {
		if !lanes[i] {
			t.Fatalf("no job ran on trace lane %d: %v", i, lanes)
		}
	}
	if traceLane() != 0 {
		t.Fatalf("lane leaked into the calling goroutine")
	}
	ids := map[string]bool{}
	for _, r := range results {
		if _, err := uuid.Parse(r.Session); err != nil {
			t.Fatalf("job %s: session %q is not a uuid", r.Source, r.Session)
		}
		ids[r.Session] = true
	}
	if len(ids) != len(jobs) {
		t.Fatalf("jobs share sessions: %v", ids)
	}
	if r := RunParallel(nil, nil); len(r) != 0 {
		t.Fatalf("no jobs must give no results")
	}
}

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func TestTrace(t *testing.T) {
	var out bufferCloser
	UseTrace(NewTrace(&out))
	defer UseTrace(nil)

	s := NewSession(nil)
	if _, err := s.EvalString("trace.lisp", "(define x 1)\n(+ x 1)"); err != nil {
		t.Fatalf("eval: %v", err)
	}
	UseTrace(nil)
	if !out.closed {
		t.Fatalf("trace file was not closed")
	}

	var events []map[string]any
	if err := json.Unmarshal(out.Bytes(), &events); err != nil {
		t.Fatalf("trace is no valid JSON: %v\n%s", err, out.String())
	}
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	if events[0]["ph"] != "B" || events[1]["ph"] != "E" || events[0]["cat"] != "scm" {
		t.Fatalf("unexpected events %v", events)
	}
	if events[2]["name"] != "trace.lisp:2:1" {
		t.Fatalf("unexpected event name %v", events[2]["name"])
	}
	args, _ := events[0]["args"].(map[string]any)
	if args["session"] != s.ID {
		t.Fatalf("begin event is not tagged with session %s: %v", s.ID, events[0])
	}
}

type countingCloser struct {
	bytes.Buffer
	m      sync.Mutex
	closes int
}

func (c *countingCloser) Write(p []byte) (int, error) {
	c.m.Lock()
	defer c.m.Unlock()
	return c.Buffer.Write(p)
}

func (c *countingCloser) Close() error {
	c.m.Lock()
	c.closes++
	c.m.Unlock()
	return nil
}

func TestTraceConcurrentShutdown(t *testing.T) {
	var out countingCloser
	UseTrace(NewTrace(&out))
	defer UseTrace(nil)

	s := NewSession(nil)
	if _, err := s.EvalString("t", "(+ 1 2)"); err != nil {
		t.Fatalf("eval: %v", err)
	}
	// exit handler and interrupt handler both switch tracing off
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := SetTrace(false, ""); err != nil {
				t.Errorf("SetTrace: %v", err)
			}
		}()
	}
	wg.Wait()
	if out.closes != 1 {
		t.Fatalf("trace file closed %d times", out.closes)
	}
	if strings.Count(out.String(), "]") != 1 {
		t.Fatalf("trace terminated more than once: %s", out.String())
	}
	var events []map[string]any
	if err := json.Unmarshal(out.Bytes(), &events); err != nil {
		t.Fatalf("trace is no valid JSON: %v\n%s", err, out.String())
	}
	// a closed trace drops late events
	tr := NewTrace(&out)
	tr.Close()
	tr.Close()
	tr.EventHalf("late", "scm", "B", 1, 0, nil)
	if strings.Contains(out.String(), "late") {
		t.Fatalf("event written after close")
	}
}

func TestEvalLine(t *testing.T) {
	s := NewSession(nil)
	var out bytes.Buffer

	pending := evalLine(s, &out, "(+ 1")
	if pending != "(+ 1\n" || out.Len() != 0 {
		t.Fatalf("incomplete input must be continued, got %q %q", pending, out.String())
	}
	if pending = evalLine(s, &out, pending+" 2)"); pending != "" {
		t.Fatalf("complete input kept pending: %q", pending)
	}
	if out.String() != resultprompt+"3\n" {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	evalLine(s, &out, "(define x 5)")
	if out.Len() != 0 {
		t.Fatalf("define must not print a result: %q", out.String())
	}
	evalLine(s, &out, "(car (list))")
	if !strings.HasPrefix(out.String(), "error: car: index out of range") {
		t.Fatalf("unexpected error output %q", out.String())
	}
	out.Reset()
	if evalLine(s, &out, ")") != "" || !strings.Contains(out.String(), "syntax error") {
		t.Fatalf("unexpected paren must be reported: %q", out.String())
	}
}

func TestCompleter(t *testing.T) {
	c := NewCompleter(func() []string { return []string{"cons", "car", "cdr", "list", "length", "car"} })
	got := c.Complete("c")
	if strings.Join(got, " ") != "car cdr cons" {
		t.Fatalf("unexpected completion %v", got)
	}
	if len(c.Complete("x")) != 0 {
		t.Fatalf("no name starts with x")
	}
	if len(c.Complete("")) != 5 {
		t.Fatalf("empty prefix must list every name once")
	}

	line := []rune("(map le")
	suffixes, length := c.Do(line, len(line))
	if length != 2 || len(suffixes) != 1 || string(suffixes[0]) != "ngth" {
		t.Fatalf("unexpected Do result %q %d", suffixes, length)
	}

	session := NewSession(nil)
	names := NewCompleter(session.Names).Complete("null")
	sort.Strings(names)
	if len(names) != 1 || names[0] != "null?" {
		t.Fatalf("session completion: %v", names)
	}
}
