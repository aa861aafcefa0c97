// Package compiler turns exit-condition expressions into domain.Predicate values.
//
// Grammar:
//
//	expr       = and { "||" and }
//	and        = term { "&&" term }
//	term       = "(" expr ")" | "!" term | comparison
//	comparison = variable [ "{" unit "}" ] [ op literal ]
//	op         = "==" | "!=" | "<" | "<=" | ">" | ">="
//
// A comparison without an operator tests the variable for truth.
// Literals are numbers, true/false, quoted strings or bare words.
package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/plantctl/pkg/domain"
)

// Parser is responsible for converting expression source into a Predicate.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse compiles src. The returned predicate's String() is the trimmed source.
func (p *Parser) Parse(src string) (domain.Predicate, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("empty expression")
	}
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	ps := &parseState{tokens: tokens}
	pred, err := ps.parseOr()
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", src, err)
	}
	if !ps.done() {
		return nil, fmt.Errorf("parse %q: unexpected %q", src, ps.peek().text)
	}
	return &compiled{Predicate: pred, src: src}, nil
}

// Compile is a convenience for NewParser().Parse(src).
func Compile(src string) (domain.Predicate, error) {
	return NewParser().Parse(src)
}

// MustCompile panics on a bad expression. Intended for tests and builtin tables.
func MustCompile(src string) domain.Predicate {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

// compiled keeps the original source for String().
type compiled struct {
	domain.Predicate
	src string
}

func (c *compiled) String() string { return c.src }

type parseState struct {
	tokens []token
	pos    int
}

func (s *parseState) done() bool { return s.pos >= len(s.tokens) }

func (s *parseState) peek() token {
	if s.done() {
		return token{kind: tokEOF}
	}
	return s.tokens[s.pos]
}

func (s *parseState) next() token {
	t := s.peek()
	if !s.done() {
		s.pos++
	}
	return t
}

func (s *parseState) parseOr() (domain.Predicate, error) {
	left, err := s.parseAnd()
	if err != nil {
		return nil, err
	}
	for s.peek().kind == tokOr {
		s.next()
		right, err := s.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

func (s *parseState) parseAnd() (domain.Predicate, error) {
	left, err := s.parseTerm()
	if err != nil {
		return nil, err
	}
	for s.peek().kind == tokAnd {
		s.next()
		right, err := s.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

func (s *parseState) parseTerm() (domain.Predicate, error) {
	switch t := s.peek(); t.kind {
	case tokLParen:
		s.next()
		inner, err := s.parseOr()
		if err != nil {
			return nil, err
		}
		if s.next().kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		return inner, nil
	case tokNot:
		s.next()
		inner, err := s.parseTerm()
		if err != nil {
			return nil, err
		}
		return &Not{Inner: inner}, nil
	case tokWord:
		return s.parseComparison()
	case tokEOF:
		return nil, fmt.Errorf("unexpected end of expression")
	default:
		return nil, fmt.Errorf("unexpected %q", t.text)
	}
}

func (s *parseState) parseComparison() (domain.Predicate, error) {
	cmp := &Comparison{Var: domain.Variable{Name: s.next().text}}

	if s.peek().kind == tokUnit {
		cmp.Var.Unit = s.next().text
	}

	if s.peek().kind != tokOp {
		cmp.Op = OpEq
		cmp.Operand = true
		return cmp, nil
	}
	cmp.Op = Op(s.next().text)

	lit := s.next()
	switch lit.kind {
	case tokWord:
		cmp.Operand = parseLiteral(lit.text)
	case tokString:
		cmp.Operand = lit.text
	default:
		return nil, fmt.Errorf("expected literal after %s", cmp.Op)
	}

	if cmp.Op.ordered() {
		if _, ok := cmp.Operand.(float64); !ok {
			return nil, fmt.Errorf("operator %s needs a numeric literal, got %q", cmp.Op, lit.text)
		}
	}
	return cmp, nil
}

func parseLiteral(text string) domain.Value {
	switch strings.ToLower(text) {
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f
	}
	return text
}
