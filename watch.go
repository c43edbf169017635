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
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/launix-de/lispcalc/scm"
)

// watchScript re-evaluates filename in s whenever it changes on disk
func watchScript(s *scm.Session, filename string) (*fsnotify.Watcher, error) {
	reread := func() {
		code, err := readScript(filename)
		if err == nil {
			_, err = s.EvalString(filename, code)
		}
		if err != nil {
			// error happens during reload: log to console
			fmt.Println("error:", err)
			return
		}
		fmt.Println("Reloaded " + filename)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	go func() {
		for {
			select {
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				// flush all other events
				for {
					time.Sleep(10 * time.Millisecond) // delay a bit, so we don't read empty files
					select {
					case <-watcher.Events:
						// ignore
					default:
						goto to_reread
					}
				}
			to_reread:
				reread()
				watcher.Add(filename) // text editors rename, so we have to rewatch
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Println("watch", filename+":", err)
			}
		}
	}()
	if err := watcher.Add(filename); err != nil {
		watcher.Close()
		return nil, err
	}
	return watcher, nil
}
