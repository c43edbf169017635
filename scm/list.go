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

// asSlice checks that v is a list
func asSlice(op string, v Scmer) ([]Scmer, error) {
	if !v.IsSlice() {
		return nil, evalError(op, ErrTypeMismatch, "expected a list, found %s %s", v.Kind(), String(v))
	}
	return v.Slice(), nil
}

func init_list() {
	// list functions
	DeclareTitle("Lists")

	Declare(&builtins, &Declaration{
		"list", "constructs a list from its parameters",
		0, -1,
		[]DeclarationParameter{
			DeclarationParameter{"item...", "any", "items of the list"},
		}, "list",
		func(a ...Scmer) (Scmer, error) {
			return NewSlice(append([]Scmer{}, a...)), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"length", "counts the number of elements in the list",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"list", "list", "base list"},
		}, "int",
		func(a ...Scmer) (Scmer, error) {
			list, err := asSlice("length", a[0])
			if err != nil {
				return NewNil(), err
			}
			return NewInt(int64(len(list))), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"cons", "constructs a list from a head and a tail list",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"car", "any", "new head element"},
			DeclarationParameter{"cdr", "list", "tail that is appended after car"},
		}, "list",
		func(a ...Scmer) (Scmer, error) {
			tail, err := asSlice("cons", a[1])
			if err != nil {
				return NewNil(), err
			}
			result := make([]Scmer, 0, len(tail)+1)
			result = append(result, a[0])
			return NewSlice(append(result, tail...)), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"car", "extracts the head of a list",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"list", "list", "list"},
		}, "any",
		func(a ...Scmer) (Scmer, error) {
			list, err := asSlice("car", a[0])
			if err != nil {
				return NewNil(), err
			}
			if len(list) == 0 {
				return NewNil(), evalError("car", ErrIndexOutOfRange, "empty list")
			}
			return list[0], nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"cdr", "extracts the tail of a list\nThe tail of a list is a list with all items except the head.",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"list", "list", "list"},
		}, "list",
		func(a ...Scmer) (Scmer, error) {
			list, err := asSlice("cdr", a[0])
			if err != nil {
				return NewNil(), err
			}
			if len(list) == 0 {
				return NewNil(), evalError("cdr", ErrIndexOutOfRange, "empty list")
			}
			return NewSlice(list[1:]), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"append", "concatenates lists into a new list.\nThe original lists stay unharmed.",
		2, -1,
		[]DeclarationParameter{
			DeclarationParameter{"list...", "list", "lists to concatenate"},
		}, "list",
		func(a ...Scmer) (Scmer, error) {
			size := 0
			for _, v := range a {
				list, err := asSlice("append", v)
				if err != nil {
					return NewNil(), err
				}
				size += len(list)
			}
			result := make([]Scmer, 0, size)
			for _, v := range a {
				result = append(result, v.Slice()...)
			}
			return NewSlice(result), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"map", "returns a list that contains the results of a map function that is applied to the list.\nWith more than one list, the function gets one item of each list; the shortest list ends the result.",
		2, -1,
		[]DeclarationParameter{
			DeclarationParameter{"fn", "func", "map function func(item...)->any"},
			DeclarationParameter{"list...", "list", "lists to map over"},
		}, "list",
		func(a ...Scmer) (Scmer, error) {
			if !a[0].IsProc() {
				return NewNil(), evalError("map", ErrNotCallable, "value is %s", String(a[0]))
			}
			lists := make([][]Scmer, len(a)-1)
			n := -1
			for i, v := range a[1:] {
				list, err := asSlice("map", v)
				if err != nil {
					return NewNil(), err
				}
				lists[i] = list
				if n < 0 || len(list) < n {
					n = len(list)
				}
			}
			result := make([]Scmer, n)
			args := make([]Scmer, len(lists))
			for i := 0; i < n; i++ {
				for j, list := range lists {
					args[j] = list[i]
				}
				value, err := Apply(a[0].Proc(), args...)
				if err != nil {
					return NewNil(), err
				}
				result[i] = value
			}
			return NewSlice(result), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"list?", "checks if a value is a list",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "value to check"},
		}, "bool",
		func(a ...Scmer) (Scmer, error) {
			return NewBool(a[0].IsSlice()), nil
		},
		Scmer{}, false,
	})
	Declare(&builtins, &Declaration{
		"null?", "checks if a value is the empty list",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "value to check"},
		}, "bool",
		func(a ...Scmer) (Scmer, error) {
			return NewBool(a[0].IsSlice() && len(a[0].Slice()) == 0), nil
		},
		Scmer{}, false,
	})
}
