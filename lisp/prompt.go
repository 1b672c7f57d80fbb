/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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

package lisp

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/chzyer/readline"
)

const newprompt = "\033[32m>\033[0m "
const contprompt = "\033[32m.\033[0m "
const resultprompt = "\033[31m=\033[0m "

// Repl runs the interactive read-eval-print loop (spec.md §6): readline
// editing and history, ANSI prompts, a continuation prompt while open
// brackets are unmatched, panic recovery around a single bad form, and a
// "did you mean" suggestion when a lookup fails on an unbound symbol that
// is a near-miss for something actually in scope.
func Repl(env *Env) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".lumen-history",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}

		if !BracketsBalanced(line) {
			oldline = line + "\n"
			l.SetPrompt(contprompt)
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Println("panic:", r, string(debug.Stack()))
				}
				oldline = ""
				l.SetPrompt(newprompt)
			}()
			form, err := ParseOne(line)
			if err != nil {
				printReplError(err, env)
				return
			}
			result, err := Eval(form, env)
			if err != nil {
				printReplError(err, env)
				return
			}
			env.SetGlobal("%%%", result)
			fmt.Print(resultprompt)
			fmt.Println(Write(result))
		}()
	}
}

func printReplError(err error, env *Env) {
	fmt.Println("error:", err.Error())
	if le, ok := err.(*LispError); ok && le.Kind == EUnboundVariable {
		if suggestion, ok := suggestName(Symbol(le.Name), env); ok {
			fmt.Printf("did you mean %s?\n", suggestion)
		}
	}
}

// suggestName scans every name visible in env and returns the closest one
// to name by Levenshtein distance, if it's within 2 edits (spec.md §6).
func suggestName(name Symbol, env *Env) (Symbol, bool) {
	best := Symbol("")
	bestDist := 3
	for candidate := range env.Flatten() {
		d := levenshtein(string(name), string(candidate))
		if d < bestDist {
			bestDist = d
			best = candidate
		}
	}
	if bestDist <= 2 {
		return best, true
	}
	return "", false
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
