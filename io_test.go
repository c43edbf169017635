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
package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/launix-de/lispcalc/scm"
)

// run with -race: jobs evaluate while others try to change runtime settings
func TestParallelJobsCannotChangeSettings(t *testing.T) {
	keepSettings(t)
	depth := scm.MaxDepth
	var jobs []scm.Job
	for i := 0; i < 16; i++ {
		if i%2 == 0 {
			jobs = append(jobs, scm.Job{Source: "settings", Code: "(settings MaxDepth 5)"})
		} else {
			jobs = append(jobs, scm.Job{Source: "calc", Code: "(+ 1 (+ 2 (+ 3 (+ 4 (+ 5 (+ 6 7))))))"})
		}
	}
	for _, r := range scm.RunParallel(jobs, setupJobIO) {
		switch r.Source {
		case "settings":
			if !errors.Is(r.Err, scm.ErrUnboundSymbol) {
				t.Fatalf("parallel job reached settings: %v", r.Err)
			}
		case "calc":
			if r.Err != nil || scm.String(r.Value) != "28" {
				t.Fatalf("calc job: %s %v", scm.String(r.Value), r.Err)
			}
		}
	}
	if scm.MaxDepth != depth {
		t.Fatalf("MaxDepth changed from %d to %d", depth, scm.MaxDepth)
	}
	// print and help stay available to jobs
	s := scm.NewSession(nil)
	setupJobIO(s)
	for _, name := range []string{"print", "help"} {
		if v, err := s.EvalString("test", name); err != nil || !v.IsProc() {
			t.Fatalf("%s is not bound for jobs: %v", name, err)
		}
	}
	if _, err := s.EvalString("test", "TracePrint"); !errors.Is(err, scm.ErrUnboundSymbol) {
		t.Fatalf("setting names bound for jobs: %v", err)
	}
}

func TestHelpOnSpecialForms(t *testing.T) {
	s := scm.NewSession(nil)
	setupIO(s)
	// if is no value, so it cannot be passed to help
	if _, err := s.EvalString("test", "(help if)"); !errors.Is(err, scm.ErrUnboundSymbol) {
		t.Fatalf("(help if): %v", err)
	}
	help, _ := s.EvalString("test", "help")
	if def := scm.DeclarationForValue(help); def == nil || !strings.Contains(def.Desc, "Special forms (if, define)") {
		t.Fatalf("help does not explain special forms")
	}
	var out bytes.Buffer
	if err := scm.Help(&out, nil); err != nil {
		t.Fatalf("help: %v", err)
	}
	if !strings.Contains(out.String(), "  if: ") || !strings.Contains(out.String(), "  define: ") {
		t.Fatalf("special forms missing from the overview:\n%s", out.String())
	}
}
