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
	"io"
	"runtime/debug"

	"github.com/chzyer/readline"
)

const newprompt = "\033[32m>\033[0m "
const contprompt = "\033[32m.\033[0m "
const resultprompt = "\033[31m=\033[0m "

// Repl reads expressions from the terminal and evaluates them in s until EOF or Ctrl-C on an empty line
func Repl(s *Session, historyFile string) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       historyFile,
		AutoComplete:      NewCompleter(s.Names),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	l.CaptureExitSignal()

	oldline := ""
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(oldline)+len(line) == 0 {
				break
			}
			oldline = ""
			l.SetPrompt(newprompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		oldline = evalLine(s, l.Stdout(), oldline+line)
		if oldline == "" {
			l.SetPrompt(newprompt)
		} else {
			l.SetPrompt(contprompt)
		}
	}
	return nil
}

// evalLine evaluates line and prints the outcome to w.
// Input that stops in the middle of an expression is returned to be continued.
func evalLine(s *Session, w io.Writer, line string) (pending string) {
	if line == "" {
		return ""
	}
	// anti-panic func
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(w, "panic:", r, string(debug.Stack()))
			pending = ""
		}
	}()
	result, err := s.EvalString("user prompt", line)
	if errors.Is(err, ErrUnexpectedEOF) {
		// keep oldline
		return line + "\n"
	}
	if err != nil {
		fmt.Fprintln(w, "error:", err)
		return ""
	}
	if !result.IsNil() {
		fmt.Fprint(w, resultprompt)
		fmt.Fprintln(w, String(result))
	}
	return ""
}
