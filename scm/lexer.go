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

import "unicode"

// Token is a paren or a whitespace delimited text span
type Token struct {
	Text   string
	Source string
	Line   int
	Col    int
}

// Tokenize splits the text into tokens: every ( and ) stands alone,
// everything else is split at whitespace. Paren balance is not checked here.
func Tokenize(source, s string) []Token {
	line := 1
	col := 0
	result := make([]Token, 0)
	startToken := -1
	var startLine, startCol int
	finish := func(end int) {
		if startToken >= 0 {
			result = append(result, Token{s[startToken:end], source, startLine, startCol})
			startToken = -1
		}
	}
	for i, ch := range s {
		if ch == '\n' {
			finish(i)
			line++
			col = 0
			continue
		}
		col++
		if ch == '(' || ch == ')' {
			finish(i)
			result = append(result, Token{string(ch), source, line, col})
		} else if unicode.IsSpace(ch) {
			finish(i)
		} else if startToken < 0 {
			startToken = i
			startLine = line
			startCol = col
		}
	}
	finish(len(s))
	return result
}
