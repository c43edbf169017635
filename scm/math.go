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

// mathResult turns NaN and infinite results of finite inputs into errors
func mathResult(op string, r float64, poles bool, in ...float64) (Scmer, error) {
	for _, x := range in {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return NewFloat(r), nil
		}
	}
	if math.IsNaN(r) {
		return NewNil(), evalError(op, ErrDomain, "")
	}
	if math.IsInf(r, 0) {
		if poles {
			return NewNil(), evalError(op, ErrDomain, "")
		}
		return NewNil(), evalError(op, ErrOverflow, "math range error")
	}
	return NewFloat(r), nil
}

// declareUnary declares a function of one real; poles marks functions where an infinite result is a domain error
func declareUnary(name, desc string, fn func(float64) float64, poles bool) {
	Declare(&builtins, &Declaration{
		name, desc,
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"x", "number", "value"},
		}, "number",
		func(a ...Scmer) (Scmer, error) {
			if err := numbers(name, a...); err != nil {
				return NewNil(), err
			}
			x := a[0].Float()
			return mathResult(name, fn(x), poles, x)
		},
		Scmer{}, false,
	})
}

func declareBinary(name, desc string, fn func(float64, float64) float64, poles bool) {
	Declare(&builtins, &Declaration{
		name, desc,
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"x", "number", "first value"},
			DeclarationParameter{"y", "number", "second value"},
		}, "number",
		func(a ...Scmer) (Scmer, error) {
			if err := numbers(name, a...); err != nil {
				return NewNil(), err
			}
			x, y := a[0].Float(), a[1].Float()
			return mathResult(name, fn(x, y), poles, x, y)
		},
		Scmer{}, false,
	})
}

func declareConst(name, desc string, value float64) {
	Declare(&builtins, &Declaration{
		name, desc,
		0, 0, nil, "number", nil,
		NewFloat(value), false,
	})
}

func init_math() {
	DeclareTitle("Math")

	declareConst("pi", "the ratio of a circle's circumference to its diameter", math.Pi)
	declareConst("e", "Euler's number", math.E)
	declareConst("tau", "two pi", 2*math.Pi)
	declareConst("inf", "positive infinity", math.Inf(1))
	declareConst("nan", "not a number", math.NaN())

	declareUnary("sin", "sine of x (radians)", math.Sin, false)
	declareUnary("cos", "cosine of x (radians)", math.Cos, false)
	declareUnary("tan", "tangent of x (radians)", math.Tan, false)
	declareUnary("asin", "arc sine of x", math.Asin, false)
	declareUnary("acos", "arc cosine of x", math.Acos, false)
	declareUnary("atan", "arc tangent of x", math.Atan, false)
	declareUnary("sinh", "hyperbolic sine of x", math.Sinh, false)
	declareUnary("cosh", "hyperbolic cosine of x", math.Cosh, false)
	declareUnary("tanh", "hyperbolic tangent of x", math.Tanh, false)
	declareUnary("asinh", "inverse hyperbolic sine of x", math.Asinh, false)
	declareUnary("acosh", "inverse hyperbolic cosine of x", math.Acosh, false)
	declareUnary("atanh", "inverse hyperbolic tangent of x", math.Atanh, true)
	declareUnary("exp", "e raised to the power of x", math.Exp, false)
	declareUnary("expm1", "exp(x) - 1, accurate for small x", math.Expm1, false)
	declareUnary("log10", "base 10 logarithm of x", math.Log10, true)
	declareUnary("log2", "base 2 logarithm of x", math.Log2, true)
	declareUnary("log1p", "natural logarithm of 1 + x", math.Log1p, true)
	declareUnary("sqrt", "square root of x", math.Sqrt, false)
	declareUnary("fabs", "absolute value of x as a real", math.Abs, false)
	declareUnary("floor", "rounds x down, returns a real", math.Floor, false)
	declareUnary("ceil", "rounds x up, returns a real", math.Ceil, false)
	declareUnary("degrees", "converts radians to degrees", func(x float64) float64 { return x * 180 / math.Pi }, false)
	declareUnary("radians", "converts degrees to radians", func(x float64) float64 { return x * math.Pi / 180 }, false)
	declareUnary("gamma", "gamma function of x", math.Gamma, true)
	declareUnary("lgamma", "natural logarithm of the absolute gamma function of x", func(x float64) float64 {
		r, _ := math.Lgamma(x)
		return r
	}, true)
	declareUnary("erf", "error function of x", math.Erf, false)
	declareUnary("erfc", "complementary error function of x", math.Erfc, false)

	declareBinary("atan2", "arc tangent of y/x in the correct quadrant", math.Atan2, false)
	declareBinary("pow", "x raised to the power of y, as a real", math.Pow, true)
	declareBinary("fmod", "remainder of x/y with the sign of x", math.Mod, false)
	declareBinary("hypot", "euclidean norm sqrt(x*x + y*y)", math.Hypot, false)
	declareBinary("copysign", "x with the sign of y", math.Copysign, false)

	Declare(&builtins, &Declaration{
		"log", "logarithm of x to the given base (natural logarithm by default)",
		1, 2,
		[]DeclarationParameter{
			DeclarationParameter{"x", "number", "value"},
			DeclarationParameter{"base", "number", "base (default e)"},
		}, "number",
		func(a ...Scmer) (Scmer, error) {
			if err := numbers("log", a...); err != nil {
				return NewNil(), err
			}
			x := a[0].Float()
			if len(a) == 1 {
				return mathResult("log", math.Log(x), true, x)
			}
			base := a[1].Float()
			if base == 1 {
				return NewNil(), evalError("log", ErrDivisionByZero, "base 1")
			}
			return mathResult("log", math.Log(x)/math.Log(base), true, x, base)
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"trunc", "truncates x towards zero and returns an integer",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"x", "number", "value"},
		}, "int",
		func(a ...Scmer) (Scmer, error) {
			if err := numbers("trunc", a...); err != nil {
				return NewNil(), err
			}
			if a[0].IsInt() {
				return a[0], nil
			}
			t := math.Trunc(a[0].Float())
			if math.IsNaN(t) || t >= math.MaxInt64 || t < math.MinInt64 {
				return NewNil(), evalError("trunc", ErrOverflow, "%s does not fit an integer", String(a[0]))
			}
			return NewInt(int64(t)), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"factorial", "n! of a non-negative integer",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"n", "int", "value"},
		}, "int",
		func(a ...Scmer) (Scmer, error) {
			n := a[0]
			if n.IsFloat() && n.Float() == math.Trunc(n.Float()) {
				n = NewInt(int64(n.Float()))
			}
			if !n.IsInt() || n.Int() < 0 {
				return NewNil(), evalError("factorial", ErrDomain, "only accepts non-negative integral values")
			}
			result := int64(1)
			for i := int64(2); i <= n.Int(); i++ {
				r, overflow := mulInt(result, i)
				if overflow {
					return NewNil(), evalError("factorial", ErrOverflow, "%d! does not fit an integer", n.Int())
				}
				result = r
			}
			return NewInt(result), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"isinf", "tells if x is positive or negative infinity",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"x", "number", "value"},
		}, "bool",
		func(a ...Scmer) (Scmer, error) {
			if err := numbers("isinf", a...); err != nil {
				return NewNil(), err
			}
			return NewBool(math.IsInf(a[0].Float(), 0)), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"isnan", "tells if x is not a number",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"x", "number", "value"},
		}, "bool",
		func(a ...Scmer) (Scmer, error) {
			if err := numbers("isnan", a...); err != nil {
				return NewNil(), err
			}
			return NewBool(math.IsNaN(a[0].Float())), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"ldexp", "x * 2**i",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"x", "number", "mantissa"},
			DeclarationParameter{"i", "int", "exponent"},
		}, "number",
		func(a ...Scmer) (Scmer, error) {
			if err := numbers("ldexp", a...); err != nil {
				return NewNil(), err
			}
			if !a[1].IsInt() {
				return NewNil(), evalError("ldexp", ErrTypeMismatch, "exponent must be an integer")
			}
			x := a[0].Float()
			return mathResult("ldexp", math.Ldexp(x, int(a[1].Int())), false, x)
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"frexp", "splits x into mantissa and exponent, returns (mantissa exponent)",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"x", "number", "value"},
		}, "list",
		func(a ...Scmer) (Scmer, error) {
			if err := numbers("frexp", a...); err != nil {
				return NewNil(), err
			}
			frac, exp := math.Frexp(a[0].Float())
			return List(NewFloat(frac), NewInt(int64(exp))), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"modf", "splits x into fractional and integral part, returns (fraction integral)",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"x", "number", "value"},
		}, "list",
		func(a ...Scmer) (Scmer, error) {
			if err := numbers("modf", a...); err != nil {
				return NewNil(), err
			}
			integral, frac := math.Modf(a[0].Float())
			return List(NewFloat(frac), NewFloat(integral)), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"fsum", "sums a list of numbers with compensated summation",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"values", "list", "numbers to add"},
		}, "number",
		func(a ...Scmer) (Scmer, error) {
			l, err := asSlice("fsum", a[0])
			if err != nil {
				return NewNil(), err
			}
			if err := numbers("fsum", l...); err != nil {
				return NewNil(), err
			}
			// Kahan summation
			var sum, c float64
			for _, v := range l {
				y := v.Float() - c
				t := sum + y
				c = (t - sum) - y
				sum = t
			}
			return NewFloat(sum), nil
		},
		Scmer{}, false,
	})
}
