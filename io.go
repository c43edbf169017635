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
package main

import (
	"fmt"
	"os"

	"github.com/launix-de/lispcalc/scm"
)

// ioDeclarations are the host functions every session gets on top of the base environment
var ioDeclarations []*scm.Declaration

// processWide marks IO functions that change state shared by all sessions; parallel jobs do not get them
var processWide = map[string]bool{}

func declareIO(def *scm.Declaration, shared bool) {
	scm.Declare(nil, def)
	ioDeclarations = append(ioDeclarations, def)
	processWide[def.Name] = shared
}

func init() {
	// define some IO functions (scm will not provide them since it is sandboxable)
	scm.DeclareTitle("IO")
	declareIO(&scm.Declaration{
		Name: "print", Desc: "Prints values to stdout (only in IO environment)",
		MinParameter: 1, MaxParameter: -1,
		Params: []scm.DeclarationParameter{
			scm.DeclarationParameter{Name: "value...", Type: "any", Desc: "values to print"},
		}, Returns: "nil",
		Fn: func(a ...scm.Scmer) (scm.Scmer, error) {
			for i, s := range a {
				if i > 0 {
					fmt.Print(" ")
				}
				fmt.Print(scm.String(s))
			}
			fmt.Println()
			return scm.NewNil(), nil
		},
		Value: scm.Scmer{}, Special: false,
	}, false)
	declareIO(&scm.Declaration{
		Name: "help", Desc: "Lists all functions or print help for a specific function.\nSpecial forms (if, define) are not values, so they only show up in the list.",
		MinParameter: 0, MaxParameter: 1,
		Params: []scm.DeclarationParameter{
			scm.DeclarationParameter{Name: "topic", Type: "func", Desc: "function to print help about"},
		}, Returns: "nil",
		Fn: func(a ...scm.Scmer) (scm.Scmer, error) {
			if len(a) == 0 {
				return scm.NewNil(), scm.Help(os.Stdout, nil)
			}
			return scm.NewNil(), scm.Help(os.Stdout, &a[0])
		},
		Value: scm.Scmer{}, Special: false,
	}, false)
	declareIO(&scm.Declaration{
		Name: "settings", Desc: "reads or changes runtime settings: (settings) lists them, (settings Trace) reads one, (settings Trace true) changes it",
		MinParameter: 0, MaxParameter: 2,
		Params: []scm.DeclarationParameter{
			scm.DeclarationParameter{Name: "key", Type: "symbol", Desc: "Trace, TracePrint or MaxDepth"},
			scm.DeclarationParameter{Name: "value", Type: "any", Desc: "new value"},
		}, Returns: "any",
		Fn:    ChangeSettings,
		Value: scm.Scmer{}, Special: false,
	}, true)
}

// setupIO binds the IO functions and the setting names into s
func setupIO(s *scm.Session) {
	for _, def := range ioDeclarations {
		s.Define(def.Name, def.Bind())
	}
	for _, name := range runtimeSettings {
		s.Define(name, scm.NewSymbol(name))
	}
}

// setupJobIO binds the IO functions that only touch the job's own session
func setupJobIO(s *scm.Session) {
	for _, def := range ioDeclarations {
		if !processWide[def.Name] {
			s.Define(def.Name, def.Bind())
		}
	}
}
