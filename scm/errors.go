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
	"fmt"
)

// syntax errors
var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF while reading")
	ErrUnexpectedParen = errors.New("unexpected )")
	ErrTrailingInput   = errors.New("unexpected input after expression")
	ErrNestingTooDeep  = errors.New("expression nested too deeply")
)

// evaluation errors
var (
	ErrUnboundSymbol   = errors.New("unbound symbol")
	ErrWrongArity      = errors.New("wrong number of arguments")
	ErrNotCallable     = errors.New("not a procedure")
	ErrEmptyForm       = errors.New("cannot evaluate empty form")
	ErrMalformedForm   = errors.New("malformed special form")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrDomain          = errors.New("math domain error")
	ErrOverflow        = errors.New("numeric overflow")
	ErrRecursionDepth  = errors.New("maximum recursion depth exceeded")
)

// SyntaxError is returned by the reader for malformed source text.
type SyntaxError struct {
	Source    string
	Line, Col int
	Err       error
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: syntax error: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s:%d:%d: syntax error: %v", e.Source, e.Line, e.Col, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// EvalError is returned by Eval. Op names the symbol or builtin that failed.
type EvalError struct {
	Op     string
	Err    error
	Detail string
	Pos    *SourceInfo
}

func (e *EvalError) Error() string {
	msg := e.Err.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Pos != nil {
		msg += "\nin " + e.Pos.String()
	}
	return msg
}

func (e *EvalError) Unwrap() error { return e.Err }

func evalError(op string, err error, format string, args ...any) *EvalError {
	detail := ""
	if format != "" {
		detail = fmt.Sprintf(format, args...)
	}
	return &EvalError{Op: op, Err: err, Detail: detail}
}

// annotate attaches the innermost source position to an evaluation error
func annotate(err error, si SourceInfo) error {
	var ee *EvalError
	if errors.As(err, &ee) && ee.Pos == nil && si.Line > 0 {
		pos := si
		ee.Pos = &pos
	}
	return err
}
