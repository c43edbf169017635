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

// Equal compares structurally; numbers compare by value across int and real.
func Equal(a, b Scmer) bool {
	if a.IsNumber() && b.IsNumber() {
		if a.IsInt() && b.IsInt() {
			return a.Int() == b.Int()
		}
		return a.Float() == b.Float()
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNil:
		return true
	case KindBool:
		return a.Bool() == b.Bool()
	case KindSymbol:
		return a.Symbol() == b.Symbol()
	case KindList:
		l1, l2 := a.Slice(), b.Slice()
		if len(l1) != len(l2) {
			return false
		}
		for i := range l1 {
			if !Equal(l1[i], l2[i]) {
				return false
			}
		}
		return true
	case KindProc:
		return Eq(a, b)
	}
	return false
}

// Eq is identity: atoms by representation, lists by their backing storage
func Eq(a, b Scmer) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNil:
		return true
	case KindBool, KindInt, KindFloat:
		return a.bits == b.bits
	case KindSymbol:
		return a.sym == b.sym
	case KindList:
		l1, l2 := a.list, b.list
		if len(l1) != len(l2) {
			return false
		}
		return len(l1) == 0 || &l1[0] == &l2[0]
	case KindProc:
		b1, ok1 := a.proc.(builtin)
		b2, ok2 := b.proc.(builtin)
		return ok1 && ok2 && b1.def == b2.def
	}
	return false
}

// compareNumbers returns -1, 0 or 1; ints are compared exactly
func compareNumbers(op string, a, b Scmer) (int, error) {
	if !a.IsNumber() || !b.IsNumber() {
		return 0, evalError(op, ErrTypeMismatch, "cannot compare %s and %s", a.Kind(), b.Kind())
	}
	if a.IsInt() && b.IsInt() {
		x, y := a.Int(), b.Int()
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
		return 0, nil
	}
	x, y := a.Float(), b.Float()
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	case x == y:
		return 0, nil
	}
	// NaN is neither
	return 2, nil
}

func init_predicates() {
	DeclareTitle("Predicates")

	Declare(&builtins, &Declaration{
		"number?", "tells if the value is a number",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "value"},
		}, "bool",
		func(a ...Scmer) (Scmer, error) {
			return NewBool(a[0].IsNumber()), nil
		}, Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"symbol?", "tells if the value is a symbol",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "value"},
		}, "bool",
		func(a ...Scmer) (Scmer, error) {
			return NewBool(a[0].IsSymbol()), nil
		}, Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"procedure?", "tells if the value can be called",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "value"},
		}, "bool",
		func(a ...Scmer) (Scmer, error) {
			return NewBool(a[0].IsProc()), nil
		}, Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"eq?", "compares two values by identity; lists are only eq? to themselves",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "any", "values"},
		}, "bool",
		func(a ...Scmer) (Scmer, error) {
			return NewBool(Eq(a[0], a[1])), nil
		}, Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"equal?", "compares two values structurally",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "any", "values"},
		}, "bool",
		func(a ...Scmer) (Scmer, error) {
			return NewBool(Equal(a[0], a[1])), nil
		}, Scmer{}, false,
	})
}
