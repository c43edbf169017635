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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEveryBuiltinIsDeclared(t *testing.T) {
	for name, v := range NewBaseEnv().Vars {
		def := DeclarationFor(string(name))
		if name == "true" || name == "false" {
			continue
		}
		if def == nil {
			t.Fatalf("%s is bound but not declared", name)
		}
		if v.IsProc() {
			if DeclarationForValue(v) != def {
				t.Fatalf("%s resolves to the wrong declaration", name)
			}
			min, max := v.Proc().Arity()
			if min != def.MinParameter || max != def.MaxParameter {
				t.Fatalf("%s arity mismatch", name)
			}
		}
	}
	for _, name := range []string{"+", "-", "*", "/", ">", "<", ">=", "<=", "=", "abs", "round", "max", "min",
		"car", "cdr", "cons", "append", "list", "length", "list?", "number?", "symbol?", "null?",
		"procedure?", "eq?", "equal?", "not", "begin", "apply", "map", "sin", "cos", "sqrt", "pi", "e", "log"} {
		if _, err := NewBaseEnv().Lookup(name); err != nil {
			t.Fatalf("base environment lacks %s: %v", name, err)
		}
	}
}

func TestSpecialFormsAreDocumented(t *testing.T) {
	for _, name := range []string{"if", "define"} {
		def := DeclarationFor(name)
		if def == nil || !def.Special {
			t.Fatalf("%s not declared as special form", name)
		}
	}
}

func TestWriteDocumentation(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDocumentation(dir); err != nil {
		t.Fatalf("write docs: %v", err)
	}
	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	for _, link := range []string{"[Lists](lists.md)", "[Math](math.md)", "[SCM Builtins](scm-builtins.md)", "[Arithmetic / Logic](arithmetic--logic.md)"} {
		if !strings.Contains(string(index), link) {
			t.Fatalf("index lacks %s:\n%s", link, index)
		}
	}
	lists, err := os.ReadFile(filepath.Join(dir, "lists.md"))
	if err != nil {
		t.Fatalf("read chapter: %v", err)
	}
	if !strings.Contains(string(lists), "## car") || !strings.Contains(string(lists), "**Allowed number of parameters:** 1–1") {
		t.Fatalf("unexpected chapter:\n%s", lists)
	}
	mathDoc, _ := os.ReadFile(filepath.Join(dir, "math.md"))
	if !strings.Contains(string(mathDoc), "**Value:** `3.141592653589793`") {
		t.Fatalf("constant pi not documented:\n%s", mathDoc)
	}
}

func TestHelp(t *testing.T) {
	var b bytes.Buffer
	if err := Help(&b, nil); err != nil {
		t.Fatalf("help: %v", err)
	}
	if !strings.Contains(b.String(), "-- Lists --") || !strings.Contains(b.String(), "  car: extracts the head of a list") {
		t.Fatalf("unexpected overview:\n%s", b.String())
	}

	b.Reset()
	car, _ := NewBaseEnv().Lookup("car")
	if err := Help(&b, &car); err != nil {
		t.Fatalf("help car: %v", err)
	}
	if !strings.HasPrefix(b.String(), "Help for: car") {
		t.Fatalf("unexpected help:\n%s", b.String())
	}

	one := NewInt(1)
	if err := Help(&b, &one); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected error for help on a number, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Lists":              "lists",
		"Arithmetic / Logic": "arithmetic--logic",
		"  IO ":              "io",
		"???":                "chapter",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, expected %q", in, got, want)
		}
	}
}
