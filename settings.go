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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dc0d/onexit"
	"github.com/docker/go-units"
	"github.com/launix-de/lispcalc/scm"
	"gopkg.in/yaml.v3"
)

type SettingsT struct {
	Trace         bool   `yaml:"trace"`
	TracePrint    bool   `yaml:"trace_print"`
	TraceDir      string `yaml:"trace_dir"`
	MaxDepth      int    `yaml:"max_depth"`
	MaxScriptSize string `yaml:"max_script_size"` // human readable, e.g. 1MB
	History       string `yaml:"history"`
	Watch         bool   `yaml:"watch"`
	Parallel      bool   `yaml:"parallel"`
}

var Settings SettingsT = SettingsT{false, false, "", 10000, "1MB", ".lispcalc-history.tmp", false, false}

// runtimeSettings can be read and changed with (settings); the names are bound to themselves in the IO environment
var runtimeSettings = []string{"Trace", "TracePrint", "MaxDepth"}

// LoadSettings overlays the YAML file at path onto s
func LoadSettings(path string, s *SettingsT) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("settings: parse %s: %w", path, err)
	}
	if _, err := s.ScriptLimit(); err != nil {
		return fmt.Errorf("settings: %s: %w", path, err)
	}
	return nil
}

// ScriptLimit is MaxScriptSize in bytes
func (s *SettingsT) ScriptLimit() (int64, error) {
	return units.FromHumanSize(s.MaxScriptSize)
}

// call this after you filled Settings
func InitSettings() error {
	if Settings.MaxDepth > 0 {
		scm.MaxDepth = Settings.MaxDepth
	}
	if err := scm.SetTrace(Settings.Trace, Settings.TraceDir); err != nil {
		return err
	}
	scm.TracePrint.Store(Settings.TracePrint)
	onexit.Register(func() { scm.SetTrace(false, "") }) // close trace file on exit
	return nil
}

func settingName(v scm.Scmer) string {
	if v.IsSymbol() {
		return v.Symbol()
	}
	return scm.String(v)
}

func ChangeSettings(a ...scm.Scmer) (scm.Scmer, error) {
	if len(a) == 0 {
		result := make([]scm.Scmer, 0, 2*len(runtimeSettings))
		for _, name := range runtimeSettings {
			value, _ := ChangeSettings(scm.NewSymbol(name))
			result = append(result, scm.NewSymbol(name), value)
		}
		return scm.NewSlice(result), nil
	} else if len(a) == 1 {
		switch settingName(a[0]) {
		case "Trace":
			return scm.NewBool(Settings.Trace), nil
		case "TracePrint":
			return scm.NewBool(Settings.TracePrint), nil
		case "MaxDepth":
			return scm.NewInt(int64(Settings.MaxDepth)), nil
		default:
			return scm.NewNil(), &scm.EvalError{Op: "settings", Err: scm.ErrUnboundSymbol, Detail: "unknown setting " + scm.String(a[0])}
		}
	} else {
		switch settingName(a[0]) {
		case "Trace":
			Settings.Trace = a[1].Bool()
			if err := scm.SetTrace(Settings.Trace, Settings.TraceDir); err != nil {
				return scm.NewNil(), err
			}
		case "TracePrint":
			Settings.TracePrint = a[1].Bool()
			scm.TracePrint.Store(Settings.TracePrint)
		case "MaxDepth":
			if !a[1].IsInt() || a[1].Int() < 1 {
				return scm.NewNil(), &scm.EvalError{Op: "settings", Err: scm.ErrTypeMismatch, Detail: "MaxDepth must be a positive integer, found " + scm.String(a[1])}
			}
			Settings.MaxDepth = int(a[1].Int())
			scm.MaxDepth = Settings.MaxDepth
		default:
			return scm.NewNil(), &scm.EvalError{Op: "settings", Err: scm.ErrUnboundSymbol, Detail: "unknown setting " + scm.String(a[0])}
		}
		return scm.NewBool(true), nil
	}
}
