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
	"unicode"

	"github.com/google/btree"
)

// Completer completes the symbol under the cursor with the names of an environment.
// It implements readline.AutoCompleter.
type Completer struct {
	names func() []string
}

func NewCompleter(names func() []string) *Completer {
	return &Completer{names}
}

func isDelimiter(r rune) bool {
	return r == '(' || r == ')' || unicode.IsSpace(r)
}

// Complete returns all known names starting with prefix in sorted order
func (c *Completer) Complete(prefix string) []string {
	index := btree.NewOrderedG[string](8)
	for _, name := range c.names() {
		index.ReplaceOrInsert(name)
	}
	var result []string
	index.AscendGreaterOrEqual(prefix, func(name string) bool {
		if len(name) < len(prefix) || name[:len(prefix)] != prefix {
			return false
		}
		result = append(result, name)
		return true
	})
	return result
}

func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && !isDelimiter(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	var result [][]rune
	for _, name := range c.Complete(prefix) {
		result = append(result, []rune(name[len(prefix):]))
	}
	return result, len([]rune(prefix))
}
