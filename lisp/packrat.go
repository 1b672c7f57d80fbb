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
package lisp

import (
	packrat "github.com/launix-de/go-packrat/v2"
)

// tokenParser is an OrParser over every lexeme Lumen's reader recognizes:
// bracket/quote/quasiquote/comma punctuation, string literals (with
// backslash escapes), rationals, reals, integers, and bare symbols. Only
// the lexing stage goes through go-packrat; readFrom in parser.go takes
// the resulting flat token list and builds the Cons tree by hand, the
// same division of labor as the original grammar the teacher's packrat.go
// drove through ScmParser -- but fixed to Lumen's own grammar instead of a
// user-definable one.
var tokenParser = packrat.NewOrParser(
	packrat.NewAtomParser("(", false, true),
	packrat.NewAtomParser(")", false, true),
	packrat.NewAtomParser("[", false, true),
	packrat.NewAtomParser("]", false, true),
	packrat.NewAtomParser("`", false, true),
	packrat.NewAtomParser(",", false, true),
	packrat.NewAtomParser("'", false, true),
	packrat.NewRegexParser(`"(\\.|[^"\\])*"`, false, true),
	packrat.NewRegexParser(`-?[0-9]+/[0-9]+`, false, true),
	packrat.NewRegexParser(`-?[0-9]+\.[0-9]+`, false, true),
	packrat.NewRegexParser(`-?[0-9]+`, false, true),
	packrat.NewRegexParser("[^\\s()\\[\\]'`,\"]+", false, true),
)

var tokenListParser = packrat.NewKleeneParser(tokenParser, packrat.NewEmptyParser())

// tokenize splits src into its raw lexeme strings using the packrat
// grammar above, skipping whitespace and comments the same way teacher's
// ScmParser.Execute does.
func tokenize(src string) ([]string, error) {
	scanner := packrat.NewScanner(src, packrat.SkipWhitespaceAndCommentsRegex)
	node, err := packrat.Parse(tokenListParser, scanner)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, nil
	}
	tokens := make([]string, 0, len(node.Children)/2+1)
	for i := 0; i < len(node.Children); i += 2 {
		tokens = append(tokens, node.Children[i].Matched)
	}
	return tokens, nil
}
