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
	"fmt"

	"github.com/jtolds/gls"
)

var glsManager = gls.NewContextManager()

type laneKey struct{}

// traceLane is the trace tid of the calling goroutine; 0 outside RunParallel
func traceLane() int {
	if v, ok := glsManager.GetValue(laneKey{}); ok {
		return v.(int)
	}
	return 0
}

type Job struct {
	Source string
	Code   string
}

type JobResult struct {
	Source  string
	Session string // id of the session the job ran in, as found in the trace
	Value   Scmer
	Err     error
}

// RunParallel evaluates each job in its own session on a fresh base environment.
// prepare (may be nil) is called on every session before evaluation. It must not
// bind anything that changes process wide state such as MaxDepth or the trace.
// Results are returned in job order.
func RunParallel(jobs []Job, prepare func(*Session)) []JobResult {
	results := make([]JobResult, len(jobs))
	done := make(chan struct{}, len(jobs))
	for i, job := range jobs {
		gls.Go(func(i int, job Job) func() {
			return func() {
				defer func() {
					if r := recover(); r != nil {
						results[i] = JobResult{Source: job.Source, Session: results[i].Session, Value: NewNil(), Err: fmt.Errorf("panic in %s: %v", job.Source, r)}
					}
					done <- struct{}{}
				}()
				glsManager.SetValues(gls.Values{laneKey{}: i + 1}, func() {
					s := NewSession(nil)
					results[i].Session = s.ID
					if prepare != nil {
						prepare(s)
					}
					value, err := s.EvalString(job.Source, job.Code)
					results[i] = JobResult{job.Source, s.ID, value, err}
				})
			}
		}(i, job))
	}
	for range jobs {
		<-done
	}
	return results
}
