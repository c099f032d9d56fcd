/*
Copyright (C) 2026  geomir contributors

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
geomcli is a small driver around the evaluator: one-shot literal evaluation,
a readline REPL, and a file watch mode, grounded on the teacher's main.go
(flag parsing, fsnotify-driven getWatch) and scm/prompt.go's Repl loop. Real
language parsing is out of scope (spec §1); every mode reads data literals
through internal/sampleparse. The REPL wraps each line's literal as an
ir.Constant and runs it through ir.Run to exercise the driver plumbing end
to end (trace toggling, Frame.Globals seeded from package builtin, the
EvalError-to-readable-trace path) without a surface-syntax compiler; -eval
and -watch only parse the literal and print it.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/fsnotify/fsnotify"

	"github.com/launix-de/geomir/builtin"
	"github.com/launix-de/geomir/internal/diag"
	"github.com/launix-de/geomir/internal/sampleparse"
	"github.com/launix-de/geomir/ir"
	"github.com/launix-de/geomir/value"
)

const (
	newPrompt    = "\033[32m>\033[0m "
	resultPrompt = "\033[31m=\033[0m "
)

func main() {
	evalFlag := flag.String("eval", "", "evaluate one literal datum and print its printed form, then exit")
	watchFlag := flag.String("watch", "", "watch a file and re-read/print its literal contents on every change")
	traceFlag := flag.String("trace", "", "write a diagnostic event trace to this path")
	flag.Parse()

	if *traceFlag != "" {
		if err := diag.Enable(*traceFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer diag.Disable()
	}

	switch {
	case *evalFlag != "":
		runOnce(*evalFlag)
	case *watchFlag != "":
		runWatch(*watchFlag)
	default:
		runRepl()
	}
}

// runOnce mirrors the teacher's one-shot `-e` evaluation path, minus actual
// language parsing: it reads one literal datum and prints it.
func runOnce(src string) {
	v, err := sampleparse.Parse(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(value.Print(v))
}

// runWatch is the CLI analogue of the teacher's getWatch: read the file
// once synchronously, then re-read on every fsnotify change event,
// recovering from a read/parse panic the same way the teacher's reread
// closure does (log and keep watching) rather than crashing the process.
func runWatch(filename string) {
	reread := func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintln(os.Stderr, "watch: error while reloading:", r)
			}
		}()
		bytes, err := os.ReadFile(filename)
		if err != nil {
			panic(err)
		}
		v, err := sampleparse.Parse(string(bytes))
		if err != nil {
			panic(err)
		}
		diag.Event("watch:reload", "cli")
		fmt.Println(value.Print(v))
	}
	reread()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer watcher.Close()
	if err := watcher.Add(filename); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for {
		select {
		case _, ok := <-watcher.Events:
			if !ok {
				return
			}
			// flush a burst of events (editors emit several per save) before
			// settling and re-reading once, matching the teacher's delay loop.
			for {
				time.Sleep(10 * time.Millisecond)
				select {
				case <-watcher.Events:
					continue
				default:
				}
				break
			}
			reread()
			watcher.Add(filename) // some editors rename-on-save; re-arm the watch
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)
		}
	}
}

// runRepl is a readline loop over literal data (no surface expression
// language, spec §1): each line is read as one literal datum and then driven
// through ir.Run as a Constant expression against the shared builtin.Globals
// environment, structured like the teacher's scm.Repl — per-line panic
// recovery so one bad line never kills the session. root is registered as
// the goroutine-local "current frame" for the duration of each line's
// evaluation (ir.WithCurrentFrame) so an unexpected, non-EvalError panic can
// still report which frame was active.
func runRepl() {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".geomir-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	globals := builtin.Globals()
	root := ir.NewFrame(0, nil, nil, nil, nil)
	root.Globals = globals

	lineNo := 0
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}
		lineNo++
		ir.WithCurrentFrame(root, func() {
			// ir.Run recovers *ir.EvalError internally and hands it back
			// below as a plain error; anything reaching this recover is an
			// unexpected defect rather than an evaluator-reported failure.
			defer func() {
				if r := recover(); r != nil {
					if f, ok := ir.CurrentFrame(); ok {
						fmt.Println("panic:", r, "(frame", f.ID, ")")
						return
					}
					fmt.Println("panic:", r)
				}
			}()
			v, err := sampleparse.Parse(line)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			// The datum read above is the whole program: drive it through the
			// real evaluator as a Constant expression rather than just
			// echoing it back, so the REPL exercises Run/Globals/trace
			// rendering the same way a full-language front end eventually
			// will (spec §1).
			phrase := ir.Phrase{Source: "repl line", Line: lineNo}
			result, err := ir.Run(ir.NewConstant(phrase, v), 0, nil, globals)
			if err != nil {
				if ee, ok := err.(*ir.EvalError); ok {
					fmt.Println(diag.RenderTrace(ee))
				} else {
					fmt.Fprintln(os.Stderr, err)
				}
				return
			}
			diag.Event("repl:eval", "cli")
			fmt.Print(resultPrompt)
			fmt.Println(value.Print(result))
		})
	}
}
