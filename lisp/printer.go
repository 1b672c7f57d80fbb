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
	"bytes"
	"fmt"
	"strings"
)

// Write renders v in Lumen's canonical textual form (spec.md §4.5):
// numbers as n / n/d / decimal, strings quoted, symbols verbatim, proper
// lists as "(a b c)", improper lists as "(a b . c)", native/special
// callables by tag name, and lambdas/macros in a structured form exposing
// their arg shape and captured environment.
func Write(v Scmer) string {
	var b bytes.Buffer
	writeTo(&b, v)
	return b.String()
}

// stringWriteEscapes backslash-escapes the two characters the reader's
// string lexeme treats specially, so a written string reads back unchanged.
var stringWriteEscapes = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func writeTo(b *bytes.Buffer, v Scmer) {
	switch t := v.(type) {
	case Nil:
		b.WriteString("NIL")
	case True:
		b.WriteString("T")
	case Symbol:
		b.WriteString(string(t))
	case string:
		b.WriteByte('"')
		b.WriteString(stringWriteEscapes.Replace(t))
		b.WriteByte('"')
	case Number:
		b.WriteString(FormatNumber(t))
	case *Cons:
		writeCons(b, t)
	case Special:
		b.WriteString(string(t))
	case *Native:
		b.WriteString(t.Name)
	case *Lambda:
		writeLambda(b, t, "LAMBDA")
	case *Macro:
		writeLambda(b, (*Lambda)(t), "MACRO")
	default:
		fmt.Fprintf(b, "%v", t)
	}
}

func writeCons(b *bytes.Buffer, c *Cons) {
	b.WriteByte('(')
	writeTo(b, c.Head)
	tail := c.Tail
	for {
		switch t := tail.(type) {
		case Nil:
			b.WriteByte(')')
			return
		case *Cons:
			b.WriteByte(' ')
			writeTo(b, t.Head)
			tail = t.Tail
		default:
			b.WriteString(" . ")
			writeTo(b, tail)
			b.WriteByte(')')
			return
		}
	}
}

// writeLambda renders a closure's arg shape, rest, optional/key defaults,
// body, and captured environment -- this is the "pretty-print of
// callables" component spec.md §2 calls out as its own budget line.
func writeLambda(b *bytes.Buffer, l *Lambda, tag string) {
	b.WriteByte('(')
	b.WriteString(tag)
	b.WriteString(" (")
	parts := make([]string, 0, len(l.Required)+len(l.Optional)+len(l.Key)+3)
	for _, r := range l.Required {
		parts = append(parts, string(r))
	}
	if len(l.Optional) > 0 {
		parts = append(parts, "&OPTIONAL")
		for _, o := range l.Optional {
			parts = append(parts, fmt.Sprintf("(%s %s)", o.Name, Write(o.Default)))
		}
	}
	if l.Rest != "" {
		parts = append(parts, "&REST", string(l.Rest))
	}
	if len(l.Key) > 0 {
		parts = append(parts, "&KEY")
		for _, k := range l.Key {
			parts = append(parts, fmt.Sprintf("(%s %s)", k.Name, Write(k.Default)))
		}
	}
	b.WriteString(strings.Join(parts, " "))
	b.WriteString(") ")
	writeTo(b, l.Body)
	b.WriteString(" {")
	for i, name := range l.envNames() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(name))
	}
	b.WriteString("})")
}
