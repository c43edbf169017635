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

// MaxDepth bounds reader nesting and evaluation recursion
var MaxDepth = 10000

// Parse reads exactly one expression; trailing tokens are an error.
func Parse(s string) (Expr, error) {
	return Read("input", s)
}

// Read parses one expression from s. Anything after it fails with ErrTrailingInput.
func Read(source, s string) (Expr, error) {
	tokens := Tokenize(source, s)
	if len(tokens) == 0 {
		return Expr{}, &SyntaxError{Source: source, Err: ErrUnexpectedEOF}
	}
	expression, err := ReadFromTokens(&tokens)
	if err != nil {
		return Expr{}, err
	}
	if len(tokens) > 0 {
		return Expr{}, &SyntaxError{source, tokens[0].Line, tokens[0].Col, ErrTrailingInput}
	}
	return expression, nil
}

// ReadAll parses a program of consecutive expressions
func ReadAll(source, s string) ([]Expr, error) {
	tokens := Tokenize(source, s)
	result := make([]Expr, 0)
	for len(tokens) > 0 {
		expression, err := ReadFromTokens(&tokens)
		if err != nil {
			return nil, err
		}
		result = append(result, expression)
	}
	return result, nil
}

// ReadFromTokens consumes one expression from the front of tokens.
func ReadFromTokens(tokens *[]Token) (Expr, error) {
	return readFrom(tokens, 0)
}

// Syntactic Analysis
func readFrom(tokens *[]Token, depth int) (Expr, error) {
	if len(*tokens) == 0 {
		return Expr{}, &SyntaxError{Err: ErrUnexpectedEOF}
	}
	// pop first element from tokens
	token := (*tokens)[0]
	*tokens = (*tokens)[1:]
	switch token.Text {
	case "(":
		if depth >= MaxDepth {
			return Expr{}, &SyntaxError{token.Source, token.Line, token.Col, ErrNestingTooDeep}
		}
		L := make([]Expr, 0)
		for {
			if len(*tokens) == 0 {
				// report the unclosed paren
				return Expr{}, &SyntaxError{token.Source, token.Line, token.Col, ErrUnexpectedEOF}
			}
			if (*tokens)[0].Text == ")" {
				*tokens = (*tokens)[1:]
				return Expr{Kind: ExprForm, Form: L, SourceInfo: SourceInfo{token.Source, token.Line, token.Col}}, nil
			}
			child, err := readFrom(tokens, depth+1)
			if err != nil {
				return Expr{}, err
			}
			L = append(L, child)
		}
	case ")":
		return Expr{}, &SyntaxError{token.Source, token.Line, token.Col, ErrUnexpectedParen}
	}
	return Atom(token), nil
}
