/*
Copyright (C) 2024  Carl-Philip Hänsch

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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Tracefile writes Chrome trace event JSON (chrome://tracing, Perfetto)
type Tracefile struct {
	isFirst bool
	closed  bool
	file    io.WriteCloser
	m       sync.Mutex
}

var traceMu sync.Mutex
var trace *Tracefile // default trace: nil means tracing is off

var TracePrint atomic.Bool // whether to print traces to stdout

type traceEvent struct {
	Name  string            `json:"name"`
	Cat   string            `json:"cat"`
	Phase string            `json:"ph"`
	Ts    int64             `json:"ts"`
	Pid   int               `json:"pid"`
	Tid   int               `json:"tid"`
	Args  map[string]string `json:"args,omitempty"`
}

// SetTrace closes the current trace and, if on, starts a new trace_<unix>.json in dir
func SetTrace(on bool, dir string) error {
	if !on {
		UseTrace(nil)
		return nil
	}
	f, err := os.Create(filepath.Join(dir, "trace_"+fmt.Sprint(time.Now().Unix())+".json"))
	if err != nil {
		return err
	}
	UseTrace(NewTrace(f))
	return nil
}

// UseTrace installs t (nil turns tracing off) and closes the trace it replaces
func UseTrace(t *Tracefile) {
	traceMu.Lock()
	old := trace
	trace = t
	traceMu.Unlock()
	if old != nil && old != t {
		old.Close()
	}
}

func currentTrace() *Tracefile {
	traceMu.Lock()
	defer traceMu.Unlock()
	return trace
}

func NewTrace(file io.WriteCloser) *Tracefile {
	file.Write([]byte("["))
	result := new(Tracefile)
	result.file = file
	result.isFirst = true
	return result
}

// Close finishes the JSON array; closing twice is a no-op
func (t *Tracefile) Close() {
	t.m.Lock()
	defer t.m.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	t.file.Write([]byte("]"))
	t.file.Close()
}

// Duration records f as a begin/end pair on the lane of the calling goroutine
func (t *Tracefile) Duration(name string, cat string, args map[string]string, f func()) {
	tid := traceLane()
	t.EventHalf(name, cat, "B", tid, 0, args)
	defer t.EventHalf(name, cat, "E", tid, 0, nil)
	f()
}

func (t *Tracefile) EventHalf(name string, cat string, typ string, tid int, pid int, args map[string]string) {
	ts := time.Since(start).Microseconds()
	t.EventFull(name, cat, typ, ts, tid, pid, args)
}

/*
*

	@name string function
	@cat string comma separated categories (for filtering)
	@typ B/E for begin/end
	@ts timestamp in microseconds
	@pid process id
	@tid thread id
	@args free form key/values shown in the event details
*/
func (t *Tracefile) EventFull(name string, cat string, typ string, ts int64, tid int, pid int, args map[string]string) {
	b, _ := json.Marshal(traceEvent{name, cat, typ, ts, pid, tid, args})
	t.m.Lock()
	defer t.m.Unlock()
	if t.closed {
		return
	}
	if t.isFirst {
		t.isFirst = false
	} else {
		t.file.Write([]byte(",\n"))
	}
	t.file.Write(b)
}

var start time.Time = time.Now()

// traced runs f inside a duration event tagged with the session id when tracing is enabled
func traced(name string, session string, f func()) {
	begin := time.Now()
	if t := currentTrace(); t != nil {
		t.Duration(name, "scm", map[string]string{"session": session}, f)
	} else {
		f()
	}
	if TracePrint.Load() {
		fmt.Println("trace", time.Since(begin), session, name)
	}
}
