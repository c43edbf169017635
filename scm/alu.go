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

import "math"

// numbers checks that every argument is a number
func numbers(op string, a ...Scmer) error {
	for i, v := range a {
		if !v.IsNumber() {
			return evalError(op, ErrTypeMismatch, "parameter %d must be a number, found %s %s", i+1, v.Kind(), String(v))
		}
	}
	return nil
}

func isZero(v Scmer) bool {
	if v.IsInt() {
		return v.Int() == 0
	}
	return v.Float() == 0.0
}

func addInt(x, y int64) (int64, bool) {
	r := x + y
	return r, (x > 0 && y > 0 && r < 0) || (x < 0 && y < 0 && r >= 0)
}

func subInt(x, y int64) (int64, bool) {
	r := x - y
	return r, (x >= 0 && y < 0 && r < 0) || (x < 0 && y > 0 && r >= 0)
}

func mulInt(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, false
	}
	r := x * y
	return r, r/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64)
}

// floorDiv rounds towards negative infinity
func floorDiv(x, y int64) (int64, bool) {
	if x == math.MinInt64 && y == -1 {
		return 0, true
	}
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q, false
}

// arith builds a two-argument numeric operator; ints stay ints unless fi reports overflow
func arith(op string, fi func(x, y int64) (int64, bool), ff func(x, y float64) float64) func(a ...Scmer) (Scmer, error) {
	return func(a ...Scmer) (Scmer, error) {
		if err := numbers(op, a...); err != nil {
			return NewNil(), err
		}
		if a[0].IsInt() && a[1].IsInt() {
			r, overflow := fi(a[0].Int(), a[1].Int())
			if overflow {
				return NewNil(), evalError(op, ErrOverflow, "%d %s %d", a[0].Int(), op, a[1].Int())
			}
			return NewInt(r), nil
		}
		return NewFloat(ff(a[0].Float(), a[1].Float())), nil
	}
}

// comparison builds a two-argument comparison from the sign of compareNumbers
func comparison(op string, accept func(c int) bool) func(a ...Scmer) (Scmer, error) {
	return func(a ...Scmer) (Scmer, error) {
		c, err := compareNumbers(op, a[0], a[1])
		if err != nil {
			return NewNil(), err
		}
		return NewBool(c != 2 && accept(c)), nil
	}
}

// extremum implements max (want = 1) and min (want = -1)
func extremum(op string, want int) func(a ...Scmer) (Scmer, error) {
	return func(a ...Scmer) (Scmer, error) {
		if len(a) == 1 {
			if !a[0].IsSlice() {
				return NewNil(), evalError(op, ErrTypeMismatch, "single parameter must be a list, found %s", a[0].Kind())
			}
			a = a[0].Slice()
			if len(a) == 0 {
				return NewNil(), evalError(op, ErrIndexOutOfRange, "empty list")
			}
		}
		if err := numbers(op, a...); err != nil {
			return NewNil(), err
		}
		result := a[0]
		for _, v := range a[1:] {
			c, _ := compareNumbers(op, v, result)
			if c == want {
				result = v
			}
		}
		return result, nil
	}
}

func init_alu() {
	DeclareTitle("Arithmetic / Logic")

	twoNumbers := []DeclarationParameter{
		DeclarationParameter{"a", "number", "first operand"},
		DeclarationParameter{"b", "number", "second operand"},
	}

	Declare(&builtins, &Declaration{
		"+", "adds two numbers",
		2, 2, twoNumbers, "number",
		arith("+", addInt, func(x, y float64) float64 { return x + y }),
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"-", "subtracts the second number from the first one",
		2, 2, twoNumbers, "number",
		arith("-", subInt, func(x, y float64) float64 { return x - y }),
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"*", "multiplies two numbers",
		2, 2, twoNumbers, "number",
		arith("*", mulInt, func(x, y float64) float64 { return x * y }),
		Scmer{}, false,
	})
	div := arith("/", floorDiv, func(x, y float64) float64 { return x / y })
	Declare(&builtins, &Declaration{
		"/", "divides the first number by the second one; two integers divide to the floor",
		2, 2, twoNumbers, "number",
		func(a ...Scmer) (Scmer, error) {
			if err := numbers("/", a...); err != nil {
				return NewNil(), err
			}
			if isZero(a[1]) {
				return NewNil(), evalError("/", ErrDivisionByZero, "%s / %s", String(a[0]), String(a[1]))
			}
			return div(a...)
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"<", "tells if the first number is less than the second",
		2, 2, twoNumbers, "bool",
		comparison("<", func(c int) bool { return c < 0 }),
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		">", "tells if the first number is greater than the second",
		2, 2, twoNumbers, "bool",
		comparison(">", func(c int) bool { return c > 0 }),
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"<=", "tells if the first number is less than or equal to the second",
		2, 2, twoNumbers, "bool",
		comparison("<=", func(c int) bool { return c <= 0 }),
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		">=", "tells if the first number is greater than or equal to the second",
		2, 2, twoNumbers, "bool",
		comparison(">=", func(c int) bool { return c >= 0 }),
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"=", "compares two values; numbers by value, everything else structurally",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "any", "values"},
		}, "bool",
		func(a ...Scmer) (Scmer, error) {
			return NewBool(Equal(a[0], a[1])), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"not", "negates the boolean value",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "value"},
		}, "bool",
		func(a ...Scmer) (Scmer, error) {
			return NewBool(!a[0].Bool()), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"abs", "returns the absolute value",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "number", "value"},
		}, "number",
		func(a ...Scmer) (Scmer, error) {
			if err := numbers("abs", a...); err != nil {
				return NewNil(), err
			}
			if a[0].IsInt() {
				v := a[0].Int()
				if v == math.MinInt64 {
					return NewNil(), evalError("abs", ErrOverflow, "%d", v)
				}
				if v < 0 {
					v = -v
				}
				return NewInt(v), nil
			}
			return NewFloat(math.Abs(a[0].Float())), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"round", "rounds half away from zero to the given number of digits and returns a real",
		1, 2,
		[]DeclarationParameter{
			DeclarationParameter{"value", "number", "value"},
			DeclarationParameter{"digits", "int", "digits after the decimal point (default 0)"},
		}, "number",
		func(a ...Scmer) (Scmer, error) {
			if err := numbers("round", a...); err != nil {
				return NewNil(), err
			}
			v := a[0].Float()
			if len(a) < 2 {
				return NewFloat(math.Round(v)), nil
			}
			if !a[1].IsInt() {
				return NewNil(), evalError("round", ErrTypeMismatch, "digits must be an integer")
			}
			scale := math.Pow(10, float64(a[1].Int()))
			switch {
			case scale == 0:
				// every digit is rounded away
				return NewFloat(math.Copysign(0, v)), nil
			case math.IsInf(scale, 1) || math.IsInf(v*scale, 0):
				// more digits than a float64 has
				return NewFloat(v), nil
			}
			return NewFloat(math.Round(v*scale) / scale), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"max", "returns the highest value of two or more numbers or of a list",
		1, -1,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number|list", "values"},
		}, "number",
		extremum("max", 1),
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"min", "returns the smallest value of two or more numbers or of a list",
		1, -1,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number|list", "values"},
		}, "number",
		extremum("min", -1),
		Scmer{}, false,
	})
}
