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
	"fmt"
	"math"
	"strconv"
)

// Scmer is the tagged runtime value produced by Eval.
type Scmer struct {
	tag  Kind
	bits uint64 // int64, float64 bits or bool
	sym  string
	list []Scmer
	proc Procedure
}

// Kind is the type tag of a Scmer
type Kind uint8

// data will ALWAYS be stored with the correct tag
const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindSymbol
	KindList
	KindProc
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindList:
		return "list"
	case KindProc:
		return "func"
	}
	return fmt.Sprintf("<kind %d>", uint8(k))
}

//
// Constructors
//

func NewNil() Scmer { return Scmer{} }

func NewBool(b bool) Scmer {
	if b {
		return Scmer{tag: KindBool, bits: 1}
	}
	return Scmer{tag: KindBool}
}

func NewInt(i int64) Scmer { return Scmer{tag: KindInt, bits: uint64(i)} }

func NewFloat(f float64) Scmer { return Scmer{tag: KindFloat, bits: math.Float64bits(f)} }

func NewSymbol(sym string) Scmer { return Scmer{tag: KindSymbol, sym: sym} }

// NewSlice wraps a list; the slice is shared, callers must not mutate it afterwards.
func NewSlice(slice []Scmer) Scmer { return Scmer{tag: KindList, list: slice} }

func NewProc(p Procedure) Scmer {
	if p == nil {
		panic("NewProc: nil procedure")
	}
	return Scmer{tag: KindProc, proc: p}
}

// List builds a list value from its arguments
func List(a ...Scmer) Scmer {
	return NewSlice(a)
}

//
// Accessors
//

func (s Scmer) Kind() Kind { return s.tag }

func (s Scmer) IsNil() bool { return s.tag == KindNil }

func (s Scmer) IsBool() bool { return s.tag == KindBool }

func (s Scmer) IsInt() bool { return s.tag == KindInt }

func (s Scmer) IsFloat() bool { return s.tag == KindFloat }

func (s Scmer) IsNumber() bool { return s.tag == KindInt || s.tag == KindFloat }

func (s Scmer) IsSymbol() bool { return s.tag == KindSymbol }

func (s Scmer) IsSlice() bool { return s.tag == KindList }

func (s Scmer) IsProc() bool { return s.tag == KindProc }

// Bool reports truthiness: nil, false, zero and the empty list are false.
func (s Scmer) Bool() bool {
	switch s.tag {
	case KindNil:
		return false
	case KindBool:
		return s.bits != 0
	case KindInt:
		return int64(s.bits) != 0
	case KindFloat:
		return math.Float64frombits(s.bits) != 0.0
	case KindSymbol:
		return s.sym != ""
	case KindList:
		return len(s.list) > 0
	case KindProc:
		return true
	}
	return false
}

func (s Scmer) Int() int64 {
	switch s.tag {
	case KindInt:
		return int64(s.bits)
	case KindFloat:
		return int64(math.Float64frombits(s.bits))
	case KindBool:
		return int64(s.bits)
	}
	return 0
}

func (s Scmer) Float() float64 {
	switch s.tag {
	case KindFloat:
		return math.Float64frombits(s.bits)
	case KindInt:
		return float64(int64(s.bits))
	case KindBool:
		return float64(s.bits)
	}
	return 0.0
}

// Symbol returns the symbol name
func (s Scmer) Symbol() string {
	if s.tag != KindSymbol {
		panic("not symbol")
	}
	return s.sym
}

func (s Scmer) Slice() []Scmer {
	if s.tag != KindList {
		panic("not slice")
	}
	return s.list
}

func (s Scmer) Proc() Procedure {
	if s.tag != KindProc {
		panic("not proc")
	}
	return s.proc
}

func (s Scmer) String() string {
	switch s.tag {
	case KindNil:
		return "nil"
	case KindBool:
		if s.bits != 0 {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(int64(s.bits), 10)
	case KindFloat:
		return formatFloat(math.Float64frombits(s.bits))
	case KindSymbol:
		return s.sym
	}
	return String(s)
}

// formatFloat keeps a fractional part or exponent so the text reads back as a real
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	str := strconv.FormatFloat(f, 'g', -1, 64)
	for _, ch := range str {
		if ch == '.' || ch == 'e' {
			return str
		}
	}
	return str + ".0"
}
