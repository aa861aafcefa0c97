package middleware

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
)

// Masked replaces every stored value of a masked column.
const Masked = "***"

type maskMiddleware struct {
	next     ports.RunStore
	patterns []*regexp.Regexp
}

// NewMaskMiddleware creates a middleware that hides the samples of columns
// whose variable name matches one of the patterns. The run held by the
// sequencer is left untouched; only the stored copy is masked.
func NewMaskMiddleware(patternStrings []string) (Middleware, error) {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid mask pattern %q: %w", p, err)
		}
		patterns[i] = re
	}
	return func(next ports.RunStore) ports.RunStore {
		return &maskMiddleware{next: next, patterns: patterns}
	}, nil
}

func (m *maskMiddleware) Save(ctx context.Context, run *domain.Run) error {
	masked := m.maskedColumns(run.Columns)
	if len(masked) == 0 {
		return m.next.Save(ctx, run)
	}

	cloned := *run
	cloned.Samples = make([]domain.Sample, len(run.Samples))
	for i, s := range run.Samples {
		values := make([]domain.Value, len(s.Values))
		copy(values, s.Values)
		for _, col := range masked {
			if col < len(values) {
				values[col] = Masked
			}
		}
		cloned.Samples[i] = domain.Sample{ModelTime: s.ModelTime, Values: values}
	}
	return m.next.Save(ctx, &cloned)
}

func (m *maskMiddleware) maskedColumns(cols []domain.Variable) []int {
	var out []int
	for i, c := range cols {
		for _, p := range m.patterns {
			if p.MatchString(c.Name) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

func (m *maskMiddleware) Load(ctx context.Context, id string) (*domain.Run, error) {
	return m.next.Load(ctx, id)
}

func (m *maskMiddleware) Delete(ctx context.Context, id string) error {
	return m.next.Delete(ctx, id)
}

func (m *maskMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
