package compiler

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokString
	tokUnit
	tokOp
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

const special = "<>=!&|(){}\"'"

func lex(src string) ([]token, error) {
	var out []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			out = append(out, token{tokLParen, "("})
			i++
		case c == ')':
			out = append(out, token{tokRParen, ")"})
			i++
		case strings.HasPrefix(src[i:], "&&"):
			out = append(out, token{tokAnd, "&&"})
			i += 2
		case strings.HasPrefix(src[i:], "||"):
			out = append(out, token{tokOr, "||"})
			i += 2
		case strings.HasPrefix(src[i:], "=="), strings.HasPrefix(src[i:], "!="),
			strings.HasPrefix(src[i:], "<="), strings.HasPrefix(src[i:], ">="):
			out = append(out, token{tokOp, src[i : i+2]})
			i += 2
		case c == '<' || c == '>':
			out = append(out, token{tokOp, string(c)})
			i++
		case c == '!':
			out = append(out, token{tokNot, "!"})
			i++
		case c == '{':
			end := strings.IndexByte(src[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unterminated unit at offset %d", i)
			}
			out = append(out, token{tokUnit, strings.TrimSpace(src[i+1 : i+end])})
			i += end + 1
		case c == '"' || c == '\'':
			end := strings.IndexByte(src[i+1:], c)
			if end < 0 {
				return nil, fmt.Errorf("unterminated string at offset %d", i)
			}
			out = append(out, token{tokString, src[i+1 : i+1+end]})
			i += end + 2
		case c == '=' || c == '&' || c == '|' || c == '}':
			return nil, fmt.Errorf("unexpected %q at offset %d", c, i)
		default:
			start := i
			for i < len(src) && !isBreak(src[i]) {
				i++
			}
			out = append(out, token{tokWord, src[start:i]})
		}
	}
	return out, nil
}

func isBreak(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || strings.IndexByte(special, c) >= 0
}
