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
	"errors"
	"sort"
	"testing"
)

func TestEnvLookupDefine(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("x", NewInt(1))
	inner := outer.Extend(Vars{"y": NewInt(2)})

	if v, err := inner.Lookup("x"); err != nil || v.Int() != 1 {
		t.Fatalf("outer binding not visible: %v %v", v, err)
	}
	if v, err := inner.Lookup("y"); err != nil || v.Int() != 2 {
		t.Fatalf("extend binding missing: %v %v", v, err)
	}
	if _, err := outer.Lookup("y"); !errors.Is(err, ErrUnboundSymbol) {
		t.Fatalf("child binding leaked to parent: %v", err)
	}

	// define only touches the current scope
	inner.Define("x", NewInt(10))
	if v, _ := inner.Lookup("x"); v.Int() != 10 {
		t.Fatalf("shadowing failed: %v", v)
	}
	if v, _ := outer.Lookup("x"); v.Int() != 1 {
		t.Fatalf("define in child changed parent: %v", v)
	}
	if inner.FindRead("x") != inner || inner.FindRead("z") != nil {
		t.Fatalf("FindRead resolved the wrong scope")
	}
}

func TestEnvNames(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("a", NewInt(1))
	outer.Define("b", NewInt(1))
	inner := outer.Extend(Vars{"b": NewInt(2), "c": NewInt(3)})
	names := inner.Names()
	sort.Strings(names)
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestEnvUnboundError(t *testing.T) {
	_, err := NewEnv(nil).Lookup("nothing")
	var ee *EvalError
	if !errors.As(err, &ee) || ee.Op != "nothing" {
		t.Fatalf("expected EvalError for nothing, got %v", err)
	}
	if ee.Error() != "nothing: unbound symbol" {
		t.Fatalf("unexpected message %q", ee.Error())
	}
}

func TestBaseEnvIsFresh(t *testing.T) {
	a := NewBaseEnv()
	b := NewBaseEnv()
	if a.Outer != nil {
		t.Fatalf("base environment must not have a parent")
	}
	a.Define("car", NewInt(1))
	if v, _ := b.Lookup("car"); !v.IsProc() {
		t.Fatalf("base environments share bindings")
	}
	for _, special := range []string{"if", "define"} {
		if _, err := a.Lookup(special); !errors.Is(err, ErrUnboundSymbol) {
			t.Fatalf("%s must not be a first class value", special)
		}
	}
}
