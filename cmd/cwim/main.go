// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Cwim ("calculate what I mean") is an interactive calculator. Input is
a single arithmetic expression per line, using the usual operators
(+ - * / % ^) plus a fixed prelude of named functions (sqrt cbrt exp ln
log, the trig and inverse-trig and hyperbolic families, all aliased
the way "arccos" aliases "acos"). Whitespace is significant: the
amount of space surrounding an operator weakens or strengthens how
tightly it binds relative to its neighbors, so "2 * 3+4" groups as
2*(3+4) while "2*3+4" groups as (2*3)+4. Writing a number or a
parenthesized group right next to another operand, with no explicit
operator between them, multiplies them implicitly: "2pi" is 2*pi,
"cos 2pi" is cos(2*pi).

A line containing a top-level "=" is an assignment: the left- and
right-hand sides are combined into a single polynomial in whatever one
free variable appears (reusing spec.md's fixed set of named functions
as evaluators wherever they appear over constants), which is then
solved — linear and quadratic equations are supported, so "7x = 14"
binds x to 2, and a quadratic's two roots are both printed, with the
"+√Δ" root the one actually bound. A name, once bound, cannot be
reassigned — ans is the sole exception, rebound after every successful
expression.

When stdin is a terminal, cwim runs an interactive line editor with
prompt "cwim> " and a persistent history file, .cwim_history, in the
working directory. When stdin is a pipe, it reads one line at a time,
evaluating each and printing the result or error with no prompt.

*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/p-davide/cwim/config"
	"github.com/p-davide/cwim/cwim"
	"github.com/p-davide/cwim/env"
	"github.com/p-davide/cwim/numeral"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cwim: logger init: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	numeral.SetLogger(logger.Sugar())

	conf := config.Default()
	e := env.New()

	if isatty.IsTerminal(os.Stdin.Fd()) {
		runInteractive(conf, e)
		return
	}
	runPiped(os.Stdin, e)
}

// runInteractive drives the readline-backed REPL (spec §6): prompt
// "cwim> ", persistent history in conf.HistoryFile. An unreadable
// history file is a logged notice, not a fatal error (spec §6).
func runInteractive(conf config.Config, e *env.Environment) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          conf.Prompt,
		HistoryFile:     conf.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cwim: history file %q unreadable: %s\n", conf.HistoryFile, err)
		rl, err = readline.NewEx(&readline.Config{Prompt: conf.Prompt})
		if err != nil {
			fmt.Fprintf(os.Stderr, "cwim: %s\n", err)
			os.Exit(1)
		}
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return
		}
		printResult(cwim.Run(line, e))
	}
}

// runPiped reads one line at a time from r with no prompt and no
// history (spec §6's non-terminal-stdin path).
func runPiped(r io.Reader, e *env.Environment) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		printResult(cwim.Run(scanner.Text(), e))
	}
}

func printResult(res *cwim.Result, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if res == nil {
		return
	}
	if res.Kind == cwim.Assignment && len(res.Roots) == 2 {
		fmt.Printf("%s = %s or %s (bound %s)\n", res.Unknown, res.Roots[0], res.Roots[1], res.Value)
		return
	}
	fmt.Println(res.Value)
}
