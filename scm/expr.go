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
	"strconv"
	"strings"
)

// SourceInfo points at the token an expression was read from.
type SourceInfo struct {
	Source string
	Line   int
	Col    int
}

func (source_info SourceInfo) String() string {
	return fmt.Sprintf("%s:%d:%d", source_info.Source, source_info.Line, source_info.Col)
}

type ExprKind uint8

const (
	ExprInt ExprKind = iota
	ExprFloat
	ExprSymbol
	ExprForm
)

// Expr is a node of the syntax tree: an atom or a form of sub expressions.
// Trees are never modified after reading.
type Expr struct {
	Kind  ExprKind
	Int   int64
	Float float64
	Sym   string
	Form  []Expr
	SourceInfo
}

func IntExpr(i int64) Expr { return Expr{Kind: ExprInt, Int: i} }
func FloatExpr(f float64) Expr { return Expr{Kind: ExprFloat, Float: f} }
func SymbolExpr(sym string) Expr { return Expr{Kind: ExprSymbol, Sym: sym} }
func FormExpr(children ...Expr) Expr { return Expr{Kind: ExprForm, Form: children} }

// Atom turns a token into a number or a symbol: integer first, then real, else symbol.
func Atom(tok Token) Expr {
	si := SourceInfo{tok.Source, tok.Line, tok.Col}
	if i, err := strconv.ParseInt(tok.Text, 10, 64); err == nil {
		return Expr{Kind: ExprInt, Int: i, SourceInfo: si}
	}
	// out of range reals read as +-inf
	if f, err := strconv.ParseFloat(tok.Text, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return Expr{Kind: ExprFloat, Float: f, SourceInfo: si}
	}
	return Expr{Kind: ExprSymbol, Sym: tok.Text, SourceInfo: si}
}

func (e Expr) IsSymbol(name string) bool {
	return e.Kind == ExprSymbol && e.Sym == name
}

// Literal returns the runtime value of a number atom
func (e Expr) Literal() Scmer {
	switch e.Kind {
	case ExprInt:
		return NewInt(e.Int)
	case ExprFloat:
		return NewFloat(e.Float)
	}
	panic("Literal: not a number atom")
}

// Equal compares two trees structurally, ignoring source positions
func (e Expr) Equal(o Expr) bool {
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case ExprInt:
		return e.Int == o.Int
	case ExprFloat:
		return e.Float == o.Float || e.Float != e.Float && o.Float != o.Float
	case ExprSymbol:
		return e.Sym == o.Sym
	}
	if len(e.Form) != len(o.Form) {
		return false
	}
	for i := range e.Form {
		if !e.Form[i].Equal(o.Form[i]) {
			return false
		}
	}
	return true
}

// String serializes the tree back into reparsable text
func (e Expr) String() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e Expr) write(b *strings.Builder) {
	switch e.Kind {
	case ExprInt:
		b.WriteString(strconv.FormatInt(e.Int, 10))
	case ExprFloat:
		b.WriteString(formatFloat(e.Float))
	case ExprSymbol:
		b.WriteString(e.Sym)
	case ExprForm:
		b.WriteByte('(')
		for i, child := range e.Form {
			if i > 0 {
				b.WriteByte(' ')
			}
			child.write(b)
		}
		b.WriteByte(')')
	}
}
