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
	"testing"
)

func TestListFunctions(t *testing.T) {
	cases := []struct {
		code, want string
	}{
		{"(list)", "()"},
		{"(list 1 2 3)", "(1 2 3)"},
		{"(car (list 1 2 3))", "1"},
		{"(cdr (list 1 2 3))", "(2 3)"},
		{"(cdr (list 1))", "()"},
		{"(cons 1 (list 2 3))", "(1 2 3)"},
		{"(cons (list 1) (list))", "((1))"},
		{"(append (list 1) (list 2 3))", "(1 2 3)"},
		{"(append (list 1) (list) (list 2 3) (list 4))", "(1 2 3 4)"},
		{"(length (list 1 2 3))", "3"},
		{"(length (list))", "0"},
		{"(map abs (list -1 2 -3))", "(1 2 3)"},
		{"(map + (list 1 2 3) (list 10 20))", "(11 22)"},
		{"(map list (list))", "()"},
		{"(list? (list))", "true"},
		{"(list? 1)", "false"},
		{"(null? (list))", "true"},
		{"(null? (list 1))", "false"},
		{"(null? 0)", "false"},
	}
	for _, c := range cases {
		expectValue(t, c.code, c.want)
	}
}

func TestListErrors(t *testing.T) {
	expectError(t, "(car (list))", ErrIndexOutOfRange)
	expectError(t, "(cdr (list))", ErrIndexOutOfRange)
	expectError(t, "(car 1)", ErrTypeMismatch)
	expectError(t, "(cons 1 2)", ErrTypeMismatch)
	expectError(t, "(append (list 1) 2)", ErrTypeMismatch)
	expectError(t, "(append (list 1))", ErrWrongArity)
	expectError(t, "(length 5)", ErrTypeMismatch)
	expectError(t, "(map 1 (list 1))", ErrNotCallable)
	expectError(t, "(map car (list 1))", ErrTypeMismatch)
	expectError(t, "(map + (list 1))", ErrWrongArity)
}

func TestListsAreNotMutated(t *testing.T) {
	en := NewBaseEnv()
	v, err := EvalAll("test", "(define l (list 1 2)) (define m (cons 0 l)) (define n (append l (list 3))) l", en)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if String(v) != "(1 2)" {
		t.Fatalf("original list changed: %s", String(v))
	}
	m, _ := en.Lookup("m")
	n, _ := en.Lookup("n")
	if String(m) != "(0 1 2)" || String(n) != "(1 2 3)" {
		t.Fatalf("unexpected results %s %s", String(m), String(n))
	}
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		code, want string
	}{
		{"(number? 1)", "true"},
		{"(number? 1.5)", "true"},
		{"(number? (list))", "false"},
		{"(symbol? 1)", "false"},
		{"(procedure? car)", "true"},
		{"(procedure? 1)", "false"},
		{"(eq? car car)", "true"},
		{"(eq? car cdr)", "false"},
		{"(eq? 1 1)", "true"},
		{"(eq? 1 1.0)", "false"},
		{"(eq? (list 1) (list 1))", "false"},
		{"(begin (define l (list 1)) (eq? l l))", "true"},
		{"(eq? (list) (list))", "true"},
		{"(equal? (list 1 (list 2)) (list 1 (list 2)))", "true"},
		{"(equal? (list 1 2) (list 1 2.0))", "true"},
		{"(equal? (list 1 2) (list 2 1))", "false"},
	}
	for _, c := range cases {
		expectValue(t, c.code, c.want)
	}
	if !Equal(NewSymbol("a"), NewSymbol("a")) || Equal(NewSymbol("a"), NewSymbol("b")) {
		t.Fatalf("symbol equality broken")
	}
	if !Eq(NewSymbol("a"), NewSymbol("a")) {
		t.Fatalf("symbols with the same name must be eq?")
	}
}
