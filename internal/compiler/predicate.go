package compiler

import (
	"context"
	"fmt"

	"github.com/aretw0/plantctl/pkg/domain"
)

// Op is a comparison operator.
type Op string

const (
	OpEq Op = "=="
	OpNe Op = "!="
	OpLt Op = "<"
	OpLe Op = "<="
	OpGt Op = ">"
	OpGe Op = ">="
)

func (o Op) ordered() bool {
	return o == OpLt || o == OpLe || o == OpGt || o == OpGe
}

// Comparison tests one variable against a literal.
type Comparison struct {
	Var     domain.Variable
	Op      Op
	Operand domain.Value
}

// Evaluate reads the variable once and applies the operator.
func (c *Comparison) Evaluate(ctx context.Context, r domain.ValueReader) (bool, error) {
	v, err := r.Value(ctx, c.Var.Name, c.Var.Unit)
	if err != nil {
		return false, err
	}

	switch c.Op {
	case OpEq:
		return domain.Equal(v, c.Operand), nil
	case OpNe:
		return !domain.Equal(v, c.Operand), nil
	}

	got, ok := domain.AsFloat(v)
	if !ok {
		return false, fmt.Errorf("%s: cannot compare %T value %v with %s", c.Var.Name, v, v, c.Op)
	}
	want, _ := domain.AsFloat(c.Operand)

	switch c.Op {
	case OpLt:
		return got < want, nil
	case OpLe:
		return got <= want, nil
	case OpGt:
		return got > want, nil
	case OpGe:
		return got >= want, nil
	default:
		return false, fmt.Errorf("unknown operator %q", c.Op)
	}
}

func (c *Comparison) Variables() []domain.Variable {
	return []domain.Variable{c.Var}
}

func (c *Comparison) String() string {
	name := c.Var.Name
	if c.Var.Unit != "" {
		name = fmt.Sprintf("%s{%s}", c.Var.Name, c.Var.Unit)
	}
	if s, ok := c.Operand.(string); ok {
		return fmt.Sprintf("%s %s %q", name, c.Op, s)
	}
	return fmt.Sprintf("%s %s %s", name, c.Op, domain.FormatValue(c.Operand))
}

// And holds when both sides hold. Right is not read when Left is false.
type And struct {
	Left, Right domain.Predicate
}

func (a *And) Evaluate(ctx context.Context, r domain.ValueReader) (bool, error) {
	ok, err := a.Left.Evaluate(ctx, r)
	if err != nil || !ok {
		return false, err
	}
	return a.Right.Evaluate(ctx, r)
}

func (a *And) Variables() []domain.Variable {
	return append(a.Left.Variables(), a.Right.Variables()...)
}

func (a *And) String() string {
	return fmt.Sprintf("(%s && %s)", a.Left, a.Right)
}

// Or holds when either side holds. Right is not read when Left is true.
type Or struct {
	Left, Right domain.Predicate
}

func (o *Or) Evaluate(ctx context.Context, r domain.ValueReader) (bool, error) {
	ok, err := o.Left.Evaluate(ctx, r)
	if err != nil || ok {
		return ok, err
	}
	return o.Right.Evaluate(ctx, r)
}

func (o *Or) Variables() []domain.Variable {
	return append(o.Left.Variables(), o.Right.Variables()...)
}

func (o *Or) String() string {
	return fmt.Sprintf("(%s || %s)", o.Left, o.Right)
}

// Not negates its operand.
type Not struct {
	Inner domain.Predicate
}

func (n *Not) Evaluate(ctx context.Context, r domain.ValueReader) (bool, error) {
	ok, err := n.Inner.Evaluate(ctx, r)
	return !ok, err
}

func (n *Not) Variables() []domain.Variable {
	return n.Inner.Variables()
}

func (n *Not) String() string {
	return fmt.Sprintf("!%s", n.Inner)
}

// Func adapts a plain function into a Predicate. Useful for tests and for
// conditions that cannot be written as an expression.
type Func struct {
	Label string
	Reads []domain.Variable
	Fn    func(ctx context.Context, r domain.ValueReader) (bool, error)
}

func (f *Func) Evaluate(ctx context.Context, r domain.ValueReader) (bool, error) {
	return f.Fn(ctx, r)
}

func (f *Func) Variables() []domain.Variable { return f.Reads }

func (f *Func) String() string { return f.Label }
