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
/*
 * A minimal Scheme interpreter, as seen in lis.py and SICP
 * http://norvig.com/lispy.html
 * http://mitpress.mit.edu/sicp/full-text/sicp/book/node77.html
 *
 * Pieter Kelchtermans 2013
 * LICENSE: WTFPL 2.0
 */
package scm

import "fmt"

// Procedure is anything that can stand in the head of an application.
// max < 0 means variadic.
type Procedure interface {
	Name() string
	Arity() (min, max int)
	Apply(args []Scmer) (Scmer, error)
}

/*
 Eval / Apply
*/

// Eval evaluates expression in en. define writes into en itself.
func Eval(expression Expr, en *Env) (Scmer, error) {
	return eval(expression, en, 0)
}

// EvalAll reads every expression of s and evaluates them in order; the last value is returned.
func EvalAll(source, s string, en *Env) (value Scmer, err error) {
	code, err := ReadAll(source, s)
	if err != nil {
		return NewNil(), err
	}
	for _, expression := range code {
		if value, err = Eval(expression, en); err != nil {
			return NewNil(), err
		}
	}
	return value, nil
}

func eval(expression Expr, en *Env, depth int) (value Scmer, err error) {
	if depth > MaxDepth {
		return NewNil(), annotate(evalError("", ErrRecursionDepth, "limit is %d", MaxDepth), expression.SourceInfo)
	}
	switch expression.Kind {
	case ExprSymbol:
		value, err = en.Lookup(expression.Sym)
		return value, annotate(err, expression.SourceInfo)
	case ExprInt, ExprFloat:
		return expression.Literal(), nil
	case ExprForm:
		list := expression.Form
		if len(list) == 0 {
			return NewNil(), annotate(evalError("", ErrEmptyForm, ""), expression.SourceInfo)
		}
		if list[0].Kind == ExprSymbol {
			switch list[0].Sym {
			case "if":
				if len(list) != 4 {
					return NewNil(), annotate(evalError("if", ErrWrongArity, "expects test, consequent and alternative, got %d parameters", len(list)-1), expression.SourceInfo)
				}
				test, err := eval(list[1], en, depth+1)
				if err != nil {
					return NewNil(), annotate(err, expression.SourceInfo)
				}
				// only the chosen branch is evaluated
				branch := list[3]
				if test.Bool() {
					branch = list[2]
				}
				value, err = eval(branch, en, depth+1)
				return value, annotate(err, expression.SourceInfo)
			case "define":
				if len(list) != 3 {
					return NewNil(), annotate(evalError("define", ErrWrongArity, "expects variable and value, got %d parameters", len(list)-1), expression.SourceInfo)
				}
				if list[1].Kind != ExprSymbol {
					return NewNil(), annotate(evalError("define", ErrMalformedForm, "variable must be a symbol, found %s", list[1]), expression.SourceInfo)
				}
				val, err := eval(list[2], en, depth+1)
				if err != nil {
					return NewNil(), annotate(err, expression.SourceInfo)
				}
				en.Define(list[1].Sym, val)
				return NewNil(), nil
			}
		}
		// apply
		procedure, err := eval(list[0], en, depth+1)
		if err != nil {
			return NewNil(), annotate(err, expression.SourceInfo)
		}
		if !procedure.IsProc() {
			return NewNil(), annotate(evalError(list[0].String(), ErrNotCallable, "value is %s", String(procedure)), expression.SourceInfo)
		}
		args := make([]Scmer, len(list)-1)
		for i, x := range list[1:] {
			if args[i], err = eval(x, en, depth+1); err != nil {
				return NewNil(), annotate(err, expression.SourceInfo)
			}
		}
		value, err = Apply(procedure.Proc(), args...)
		return value, annotate(err, expression.SourceInfo)
	}
	panic(fmt.Sprintf("Unknown expression type - EVAL %d", expression.Kind))
}

// Apply calls procedure with already evaluated arguments after checking its arity.
func Apply(procedure Procedure, args ...Scmer) (Scmer, error) {
	min, max := procedure.Arity()
	if len(args) < min || max >= 0 && len(args) > max {
		return NewNil(), evalError(procedure.Name(), ErrWrongArity, "expects %s parameters, got %d", arityString(min, max), len(args))
	}
	return procedure.Apply(args)
}

// ApplyValue is Apply for a value that may not be a procedure
func ApplyValue(procedure Scmer, args ...Scmer) (Scmer, error) {
	if !procedure.IsProc() {
		return NewNil(), evalError("apply", ErrNotCallable, "value is %s", String(procedure))
	}
	return Apply(procedure.Proc(), args...)
}

func arityString(min, max int) string {
	switch {
	case max < 0:
		return fmt.Sprintf("at least %d", min)
	case min == max:
		return fmt.Sprintf("%d", min)
	}
	return fmt.Sprintf("%d to %d", min, max)
}
