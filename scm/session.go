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
	"sync"

	"github.com/google/uuid"
)

// Session serializes evaluation on one environment so several goroutines
// (REPL, file watcher, -c commands) can share it.
type Session struct {
	ID  string
	Env *Env
	mu  sync.Mutex
}

// NewSession wraps en; a nil en gets a fresh base environment
func NewSession(en *Env) *Session {
	if en == nil {
		en = NewBaseEnv()
	}
	return &Session{ID: uuid.NewString(), Env: en}
}

// EvalString reads every expression of code and evaluates them in order; the last value is returned.
// Nothing is evaluated when code does not parse. Reading happens under the lock too,
// so a (settings MaxDepth n) of another caller never changes limits mid-read.
func (s *Session) EvalString(source, code string) (value Scmer, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exprs, err := ReadAll(source, code)
	if err != nil {
		return NewNil(), err
	}
	for _, expression := range exprs {
		traced(expression.SourceInfo.String(), s.ID, func() {
			value, err = Eval(expression, s.Env)
		})
		if err != nil {
			return NewNil(), err
		}
	}
	return value, nil
}

// Define binds a host value in the session environment
func (s *Session) Define(name string, value Scmer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Env.Define(name, value)
}

// Names lists all names visible in the session
func (s *Session) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Env.Names()
}
