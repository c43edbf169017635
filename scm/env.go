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

type Symbol string

type Vars map[Symbol]Scmer

// Env is one scope of bindings chained to its enclosing scope.
// Env is not safe for concurrent use; see Session.
type Env struct {
	Vars  Vars
	Outer *Env
}

func NewEnv(outer *Env) *Env {
	return &Env{Vars: make(Vars), Outer: outer}
}

// FindRead returns the innermost scope binding s or nil
func (e *Env) FindRead(s Symbol) *Env {
	for en := e; en != nil; en = en.Outer {
		if _, ok := en.Vars[s]; ok {
			return en
		}
	}
	return nil
}

// Lookup resolves name from the innermost scope outwards.
func (e *Env) Lookup(name string) (Scmer, error) {
	en := e.FindRead(Symbol(name))
	if en == nil {
		return NewNil(), evalError(name, ErrUnboundSymbol, "")
	}
	return en.Vars[Symbol(name)], nil
}

// Define binds name in this scope only, replacing an earlier binding.
func (e *Env) Define(name string, value Scmer) {
	if e.Vars == nil {
		e.Vars = make(Vars)
	}
	e.Vars[Symbol(name)] = value
}

// Extend opens a child scope holding bindings
func (e *Env) Extend(bindings Vars) *Env {
	child := NewEnv(e)
	for k, v := range bindings {
		child.Vars[k] = v
	}
	return child
}

// Names lists every visible name once, shadowed ones included only once
func (e *Env) Names() []string {
	seen := make(map[Symbol]bool)
	result := make([]string, 0)
	for en := e; en != nil; en = en.Outer {
		for k := range en.Vars {
			if !seen[k] {
				seen[k] = true
				result = append(result, string(k))
			}
		}
	}
	return result
}
