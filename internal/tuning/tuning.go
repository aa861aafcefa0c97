// Package tuning adjusts PID controller parameters from closed-loop responses
// scored by integral error criteria.
package tuning

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate"
)

// MinSamples is the smallest response Evaluate accepts.
const MinSamples = 3

// Gains are the controller parameters. Ki and Kd hold the engine's
// IntegralTime and DerivativeTime.
type Gains struct {
	Kp float64 `json:"kp"`
	Ki float64 `json:"ki"`
	Kd float64 `json:"kd"`
}

func (g Gains) String() string {
	return fmt.Sprintf("Kp = %.2f, Ki = %.2f, Kd = %.2f", g.Kp, g.Ki, g.Kd)
}

// Criteria are the integral error measures of one response.
type Criteria struct {
	IAE  float64 `json:"iae"`
	ISE  float64 `json:"ise"`
	ITAE float64 `json:"itae"`
}

// Thresholds bound each criterion; exceeding one triggers its rule.
type Thresholds = Criteria

// DefaultThresholds are IAE 10, ISE 5 and ITAE 20.
var DefaultThresholds = Thresholds{IAE: 10, ISE: 5, ITAE: 20}

// Evaluate integrates the error setpoint-output over time with the composite
// Simpson rule. time must be strictly increasing.
func Evaluate(time, output []float64, setpoint float64) (Criteria, error) {
	if len(time) != len(output) {
		return Criteria{}, fmt.Errorf("tuning: %d times for %d outputs", len(time), len(output))
	}
	if len(time) < MinSamples {
		return Criteria{}, fmt.Errorf("tuning: need at least %d samples, got %d", MinSamples, len(time))
	}
	if !sort.Float64sAreSorted(time) {
		return Criteria{}, errors.New("tuning: sample times are not sorted")
	}
	for i := 1; i < len(time); i++ {
		if time[i] == time[i-1] {
			return Criteria{}, fmt.Errorf("tuning: repeated sample time %v", time[i])
		}
	}

	abs := make([]float64, len(time))
	sq := make([]float64, len(time))
	tw := make([]float64, len(time))
	for i := range time {
		e := setpoint - output[i]
		abs[i] = math.Abs(e)
		sq[i] = e * e
		tw[i] = time[i] * math.Abs(e)
	}
	return Criteria{
		IAE:  integrate.Simpsons(time, abs),
		ISE:  integrate.Simpsons(time, sq),
		ITAE: integrate.Simpsons(time, tw),
	}, nil
}

// Adjustment records one rule that fired.
type Adjustment struct {
	Criterion string  `json:"criterion"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
	Change    string  `json:"change"`
}

func (a Adjustment) String() string {
	return fmt.Sprintf("%s %.2f exceeded threshold %.2f: %s", a.Criterion, a.Value, a.Threshold, a.Change)
}

// Adjust applies the tuning rules in order:
//
//	IAE  > threshold: Kp *= 1.1, Ki *= 1.05
//	ISE  > threshold: Kd *= 0.95
//	ITAE > threshold: Kp *= 0.95
func Adjust(g Gains, c Criteria, th Thresholds) (Gains, []Adjustment) {
	var adj []Adjustment
	if c.IAE > th.IAE {
		g.Kp *= 1.1
		g.Ki *= 1.05
		adj = append(adj, Adjustment{Criterion: "IAE", Value: c.IAE, Threshold: th.IAE, Change: "Kp *= 1.1, Ki *= 1.05"})
	}
	if c.ISE > th.ISE {
		g.Kd *= 0.95
		adj = append(adj, Adjustment{Criterion: "ISE", Value: c.ISE, Threshold: th.ISE, Change: "Kd *= 0.95"})
	}
	if c.ITAE > th.ITAE {
		g.Kp *= 0.95
		adj = append(adj, Adjustment{Criterion: "ITAE", Value: c.ITAE, Threshold: th.ITAE, Change: "Kp *= 0.95"})
	}
	return g, adj
}
