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

func init() {
	builtins.Vars[Symbol("true")] = NewBool(true)
	builtins.Vars[Symbol("false")] = NewBool(false)

	// system
	DeclareTitle("SCM Builtins")
	Declare(nil, &Declaration{
		"if", "evaluates the test and then only the chosen branch",
		3, 3,
		[]DeclarationParameter{
			DeclarationParameter{"test", "any", "condition; false, 0, 0.0, nil and () count as false"},
			DeclarationParameter{"then", "any", "evaluated if the condition is true"},
			DeclarationParameter{"else", "any", "evaluated if the condition is false"},
		}, "any", nil,
		Scmer{}, true,
	})
	Declare(nil, &Declaration{
		"define", "binds a value to a symbol in the current environment",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"variable", "symbol", "variable to define"},
			DeclarationParameter{"value", "any", "value to assign"},
		}, "nil", nil,
		Scmer{}, true,
	})
	Declare(&builtins, &Declaration{
		"begin", "returns the last of its already evaluated parameters",
		1, -1,
		[]DeclarationParameter{
			DeclarationParameter{"expression...", "any", "values; only the last one is returned"},
		}, "any",
		func(a ...Scmer) (Scmer, error) {
			return a[len(a)-1], nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"apply", "runs the function with its arguments",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"function", "func", "function to execute"},
			DeclarationParameter{"arguments", "list", "list of arguments to apply"},
		}, "any",
		func(a ...Scmer) (Scmer, error) {
			args, err := asSlice("apply", a[1])
			if err != nil {
				return NewNil(), err
			}
			return ApplyValue(a[0], args...)
		},
		Scmer{}, false,
	})

	init_alu()
	init_math()
	init_list()
	init_predicates()
}
