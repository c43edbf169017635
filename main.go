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
/*
	lispcalc, a small lisp calculator

	https://norvig.com/lispy.html

*/
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/docker/go-units"
	"github.com/google/uuid"
	"github.com/launix-de/lispcalc/scm"
)

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return "dummy"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// readScript loads a script file, refusing files above the configured size
func readScript(filename string) (string, error) {
	limit, err := Settings.ScriptLimit()
	if err != nil {
		return "", err
	}
	info, err := os.Stat(filename)
	if err != nil {
		return "", err
	}
	if info.Size() > limit {
		return "", fmt.Errorf("%s is %s, scripts are limited to %s", filename, units.HumanSize(float64(info.Size())), units.HumanSize(float64(limit)))
	}
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// parseFlags fills Settings from the optional config file and the command line; explicit flags win
func parseFlags(fs *flag.FlagSet, args []string) (commands arrayFlags, scripts []string, docs string, noRepl bool, err error) {
	flags := Settings
	configFile := ""
	fs.Var(&commands, "c", "Execute lisp expression (repeatable)")
	fs.StringVar(&configFile, "config", "", "YAML settings file")
	fs.BoolVar(&flags.Trace, "trace", flags.Trace, "Write a Chrome trace of all evaluations")
	fs.BoolVar(&flags.TracePrint, "trace-print", flags.TracePrint, "Print the duration of every evaluation")
	fs.StringVar(&flags.TraceDir, "trace-dir", flags.TraceDir, "Folder for trace files")
	fs.BoolVar(&flags.Watch, "watch", flags.Watch, "Re-evaluate scripts when they change on disk")
	fs.BoolVar(&flags.Parallel, "parallel", flags.Parallel, "Evaluate scripts concurrently, each in its own environment")
	fs.IntVar(&flags.MaxDepth, "max-depth", flags.MaxDepth, "Maximum nesting of expressions")
	fs.StringVar(&flags.MaxScriptSize, "max-script-size", flags.MaxScriptSize, "Maximum size of a script file (e.g. 1MB)")
	fs.StringVar(&flags.History, "history", flags.History, "REPL history file")
	fs.StringVar(&docs, "docs", "", "Write Markdown documentation of all builtins into this folder and exit")
	fs.BoolVar(&noRepl, "no-repl", false, "Exit after scripts and commands instead of starting the REPL")
	if err = fs.Parse(args); err != nil {
		return
	}
	scripts = fs.Args()

	if configFile != "" {
		if err = LoadSettings(configFile, &Settings); err != nil {
			return
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			Settings.Trace = flags.Trace
		case "trace-print":
			Settings.TracePrint = flags.TracePrint
		case "trace-dir":
			Settings.TraceDir = flags.TraceDir
		case "watch":
			Settings.Watch = flags.Watch
		case "parallel":
			Settings.Parallel = flags.Parallel
		case "max-depth":
			Settings.MaxDepth = flags.MaxDepth
		case "max-script-size":
			Settings.MaxScriptSize = flags.MaxScriptSize
		case "history":
			Settings.History = flags.History
		}
	})
	if _, err = Settings.ScriptLimit(); err != nil {
		err = fmt.Errorf("max-script-size: %w", err)
	}
	return
}

func printResult(value scm.Scmer, err error) bool {
	if err != nil {
		fmt.Println("error:", err)
		return false
	}
	if !value.IsNil() {
		fmt.Println("=", scm.String(value))
	}
	return true
}

func main() {
	fmt.Print(`lispcalc Copyright (C) 2023, 2024   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

`)

	// init random generator for UUIDs
	uuid.SetRand(rand.Reader)

	// parse command line options
	commands, scripts, docs, noRepl, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(2)
	}
	if err := InitSettings(); err != nil {
		fmt.Println("error:", err)
		os.Exit(2)
	}
	if docs != "" {
		if err := scm.WriteDocumentation(docs); err != nil {
			fmt.Println("error:", err)
			exitroutine(1)
		}
		fmt.Println("Documentation written to " + docs)
		exitroutine(0)
	}

	exitcode := 0
	session := scm.NewSession(nil)
	setupIO(session)

	// scripts initialization
	if Settings.Parallel && len(scripts) > 1 {
		jobs := make([]scm.Job, 0, len(scripts))
		for _, scmfile := range scripts {
			code, err := readScript(scmfile)
			if err != nil {
				fmt.Println("error:", err)
				exitcode = 1
				continue
			}
			jobs = append(jobs, scm.Job{Source: scmfile, Code: code})
		}
		fmt.Printf("Evaluating %d scripts in parallel ...\n", len(jobs))
		for _, result := range scm.RunParallel(jobs, setupJobIO) {
			fmt.Println(result.Source + " (session " + result.Session + "):")
			if !printResult(result.Value, result.Err) {
				exitcode = 1
			}
		}
	} else {
		for _, scmfile := range scripts {
			fmt.Println("Loading " + scmfile + " ...")
			code, err := readScript(scmfile)
			if err != nil {
				fmt.Println("error:", err)
				exitcode = 1
				continue
			}
			if !printResult(session.EvalString(scmfile, code)) {
				exitcode = 1
			}
		}
	}
	for _, command := range commands {
		fmt.Println("Executing " + command + " ...")
		if !printResult(session.EvalString("command line", command)) {
			exitcode = 1
		}
	}
	if Settings.Watch {
		for _, scmfile := range scripts {
			if _, err := watchScript(session, scmfile); err != nil {
				fmt.Println("error:", err)
			}
		}
	}

	// install exit handler
	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM, syscall.SIGINT)
	go (func() {
		<-cancelChan
		exitroutine(exitcode)
	})()

	if noRepl {
		if Settings.Watch && len(scripts) > 0 {
			select {} // keep reloading until a signal arrives
		}
		exitroutine(exitcode)
	}

	fmt.Print(`
    Type (help) to show help

`)
	// REPL shell
	if err := scm.Repl(session, Settings.History); err != nil {
		fmt.Println("error:", err)
		exitcode = 1
	}

	// normal shutdown
	exitroutine(exitcode)
}

func exitroutine(code int) {
	scm.SetTrace(false, "")
	os.Exit(code)
}
