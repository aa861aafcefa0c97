package memory

import (
	"fmt"
	"math"
	"sort"

	"github.com/aretw0/plantctl/pkg/domain"
)

// Plant is a simulated process model hosted by a Timeline. Values are SI.
// Implementations need not be safe for concurrent use; the timeline
// serializes access.
type Plant interface {
	Application() string
	Blocks() []domain.Block

	// Get returns the SI value of a variable.
	Get(name string) (domain.Value, bool)
	// Set writes an SI value. Unknown names return domain.ErrUnknownVariable.
	Set(name string, v domain.Value) error

	// Step integrates the dynamics over dt seconds.
	Step(dt float64)

	// Snapshot captures the dynamic state. Parameters such as controller
	// gains are not part of it.
	Snapshot() map[string]float64
	Restore(map[string]float64)
}

// PlantFactory builds a plant for a parameter set.
type PlantFactory func(parameters string) (Plant, error)

// TutorialModel is the model, parameter and initial-condition name of the
// bundled separator plant.
const TutorialModel = "KSpiceTutorial Model"

// TutorialApplication is the single application of the tutorial plant.
const TutorialApplication = "Process Model"

const (
	atmospheric = 101325.0

	valveStroke = 10.0 // s, full travel

	pumpNominal       = 155.0 // rad/s
	pumpTimeConstant  = 4.0   // s
	compNominal       = 314.0 // rad/s
	compTimeConstant  = 8.0   // s
	separatorArea     = 2.0   // m2
	separatorHeight   = 3.0   // m
	feedFlow          = 0.05  // m3/s at full inlet opening
	maxDischargeFlow  = 0.1   // m3/s at full pump speed and controller output
	blanketPressure   = 1e5   // Pa above atmospheric with the inlet closed
	feedPressure      = 5e5   // Pa added by the feed at full opening
	pressureTimeConst = 15.0  // s
	compressorLift    = 4e5   // Pa at nominal speed

	levelHighAlarm    = 1.2 // m
	pressureHighAlarm = 8e5 // Pa
)

type variable struct {
	get func() domain.Value
	// set is nil for computed outputs.
	set func(domain.Value) error
}

// Tutorial is a three-phase separator with an inlet shutdown valve, an outlet
// shutdown valve, a discharge pump, a gas compressor, four transmitters and a
// level controller.
type Tutorial struct {
	// Commands (true = open / run).
	inletCmd, outletCmd, pumpCmd, compCmd bool

	inletPos, outletPos  float64 // fraction open
	pumpSpeed, compSpeed float64 // rad/s
	level                float64 // m
	pressure             float64 // Pa absolute

	// Level controller 23LIC002.
	gain, integralTime, derivativeTime float64
	setpoint                           float64 // m
	integral, prevPV, output           float64

	vars map[string]*variable
}

// NewTutorial creates the tutorial plant at its steady operating point.
func NewTutorial() *Tutorial {
	t := &Tutorial{
		gain:           2.0,
		integralTime:   120.0,
		derivativeTime: 0.0,
	}
	t.Restore(tutorialInitialCondition())
	t.vars = t.variables()
	return t
}

// TutorialFactory builds the tutorial plant. It only knows its own parameter set.
func TutorialFactory(parameters string) (Plant, error) {
	if parameters != "" && parameters != TutorialModel {
		return nil, fmt.Errorf("unknown parameter set %q", parameters)
	}
	return NewTutorial(), nil
}

func tutorialInitialCondition() map[string]float64 {
	return map[string]float64{
		"inlet_cmd":  1,
		"outlet_cmd": 1,
		"pump_cmd":   1,
		"comp_cmd":   1,
		"inlet_pos":  1,
		"outlet_pos": 1,
		"pump_speed": pumpNominal,
		"comp_speed": compNominal,
		"level":      0.45,
		"pressure":   atmospheric + blanketPressure + feedPressure*0.5,
		"setpoint":   0.6,
		"integral":   0,
		"prev_pv":    0.45,
		"output":     0.5,
	}
}

func (t *Tutorial) Application() string { return TutorialApplication }

func (t *Tutorial) Snapshot() map[string]float64 {
	return map[string]float64{
		"inlet_cmd":  domain.Bool(t.inletCmd),
		"outlet_cmd": domain.Bool(t.outletCmd),
		"pump_cmd":   domain.Bool(t.pumpCmd),
		"comp_cmd":   domain.Bool(t.compCmd),
		"inlet_pos":  t.inletPos,
		"outlet_pos": t.outletPos,
		"pump_speed": t.pumpSpeed,
		"comp_speed": t.compSpeed,
		"level":      t.level,
		"pressure":   t.pressure,
		"setpoint":   t.setpoint,
		"integral":   t.integral,
		"prev_pv":    t.prevPV,
		"output":     t.output,
	}
}

func (t *Tutorial) Restore(s map[string]float64) {
	t.inletCmd = s["inlet_cmd"] != 0
	t.outletCmd = s["outlet_cmd"] != 0
	t.pumpCmd = s["pump_cmd"] != 0
	t.compCmd = s["comp_cmd"] != 0
	t.inletPos = s["inlet_pos"]
	t.outletPos = s["outlet_pos"]
	t.pumpSpeed = s["pump_speed"]
	t.compSpeed = s["comp_speed"]
	t.level = s["level"]
	t.pressure = s["pressure"]
	t.setpoint = s["setpoint"]
	t.integral = s["integral"]
	t.prevPV = s["prev_pv"]
	t.output = s["output"]
}

// Step advances valves, motors, the controller and the vessel balance.
func (t *Tutorial) Step(dt float64) {
	if dt <= 0 {
		return
	}
	t.inletPos = stroke(t.inletPos, t.inletCmd, dt)
	t.outletPos = stroke(t.outletPos, t.outletCmd, dt)
	t.pumpSpeed = lag(t.pumpSpeed, target(t.pumpCmd, pumpNominal), pumpTimeConstant, dt)
	t.compSpeed = lag(t.compSpeed, target(t.compCmd, compNominal), compTimeConstant, dt)

	t.stepController(dt)

	in := feedFlow * t.inletPos
	out := maxDischargeFlow * t.output * t.outletPos * (t.pumpSpeed / pumpNominal)
	t.level = clamp(t.level+(in-out)/separatorArea*dt, 0, separatorHeight)

	compFrac := t.compSpeed / compNominal
	pTarget := atmospheric + blanketPressure + feedPressure*t.inletPos*(1-0.5*compFrac)
	t.pressure = lag(t.pressure, pTarget, pressureTimeConst, dt)
}

// stepController is a direct-acting PI(D): a level above setpoint opens the
// discharge. Derivative acts on the measurement.
func (t *Tutorial) stepController(dt float64) {
	pv := t.level
	e := pv - t.setpoint

	integral := t.integral
	if t.integralTime > 0 {
		integral += e * dt
	}
	deriv := (pv - t.prevPV) / dt
	t.prevPV = pv

	u := 0.5 + t.gain*e + t.derivativeTime*t.gain*deriv
	if t.integralTime > 0 {
		u += t.gain * integral / t.integralTime
	}

	// Anti-windup: freeze the integral while saturated.
	switch {
	case u > 1:
		u = 1
	case u < 0:
		u = 0
	default:
		t.integral = integral
	}
	t.output = u
}

func stroke(pos float64, open bool, dt float64) float64 {
	rate := dt / valveStroke
	if open {
		return math.Min(1, pos+rate)
	}
	return math.Max(0, pos-rate)
}

func lag(v, target, tau, dt float64) float64 {
	return v + (target-v)*(1-math.Exp(-dt/tau))
}

func target(on bool, nominal float64) float64 {
	if on {
		return nominal
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func (t *Tutorial) Get(name string) (domain.Value, bool) {
	v, ok := t.vars[name]
	if !ok {
		return nil, false
	}
	return v.get(), true
}

func (t *Tutorial) Set(name string, val domain.Value) error {
	v, ok := t.vars[name]
	if !ok {
		return &domain.UnknownVariableError{Application: TutorialApplication, Name: name}
	}
	if v.set == nil {
		return fmt.Errorf("variable %q is read-only", name)
	}
	return v.set(val)
}

// Variables returns every variable name, sorted.
func (t *Tutorial) Variables() []string {
	names := make([]string, 0, len(t.vars))
	for n := range t.vars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (t *Tutorial) variables() map[string]*variable {
	vars := make(map[string]*variable)
	boolVar := func(name string, p *bool, writable bool) {
		v := &variable{get: func() domain.Value { return *p }}
		if writable {
			v.set = func(val domain.Value) error {
				b, ok := domain.AsBool(val)
				if !ok {
					return fmt.Errorf("variable %q expects a bool, got %T", name, val)
				}
				*p = b
				return nil
			}
		}
		vars[name] = v
	}
	floatVar := func(name string, get func() float64, set func(float64)) {
		v := &variable{get: func() domain.Value { return get() }}
		if set != nil {
			v.set = func(val domain.Value) error {
				f, ok := domain.AsFloat(val)
				if !ok {
					return fmt.Errorf("variable %q expects a number, got %T", name, val)
				}
				set(f)
				return nil
			}
		}
		vars[name] = v
	}
	computed := func(name string, get func() domain.Value) {
		vars[name] = &variable{get: get}
	}

	boolVar("25ESV0001:LocalInput", &t.inletCmd, true)
	floatVar("25ESV0001:ValveStemPosition", func() float64 { return t.inletPos }, nil)
	computed("25ESV0001:IsDefinedClosed", func() domain.Value { return t.inletPos <= 0.001 })

	boolVar("23ESV0005:LocalInput", &t.outletCmd, true)
	floatVar("23ESV0005:ValveStemPosition", func() float64 { return t.outletPos }, nil)
	computed("23ESV0005:IsDefinedClosed", func() domain.Value { return t.outletPos <= 0.001 })

	boolVar("23KA0001_m:LocalInput", &t.pumpCmd, true)
	floatVar("23KA0001_m:Speed[0]", func() float64 { return t.pumpSpeed }, nil)

	boolVar("23PA0001_m:LocalInput", &t.compCmd, true)
	floatVar("23PA0001_m:Speed[0]", func() float64 { return t.compSpeed }, nil)

	floatVar("23VA0001:Level", func() float64 { return t.level }, nil)
	floatVar("23VA0001:Pressure", func() float64 { return t.pressure }, nil)

	for _, tag := range []string{"23LT0001", "23LT0002"} {
		floatVar(tag+":MeasuredValue", func() float64 { return t.level }, nil)
		computed(tag+":HighAlarm", func() domain.Value { return t.level > levelHighAlarm })
	}
	floatVar("23PT0001:MeasuredValue", func() float64 { return t.pressure }, nil)
	computed("23PT0001:HighAlarm", func() domain.Value { return t.pressure-atmospheric > pressureHighAlarm })
	floatVar("23PT0003:MeasuredValue", func() float64 { return t.dischargePressure() }, nil)
	computed("23PT0003:HighAlarm", func() domain.Value { return t.dischargePressure()-atmospheric > pressureHighAlarm })

	floatVar("23LIC002:Gain", func() float64 { return t.gain }, func(f float64) { t.gain = f })
	floatVar("23LIC002:IntegralTime", func() float64 { return t.integralTime }, func(f float64) { t.integralTime = f })
	floatVar("23LIC002:DerivativeTime", func() float64 { return t.derivativeTime }, func(f float64) { t.derivativeTime = f })
	floatVar("23LIC002:InternalSetpoint", func() float64 { return t.setpoint }, func(f float64) { t.setpoint = f })
	floatVar("23LIC002:MeasuredValue", func() float64 { return t.level }, nil)
	floatVar("23LIC002:Output", func() float64 { return t.output }, nil)
	return vars
}

func (t *Tutorial) dischargePressure() float64 {
	f := t.compSpeed / compNominal
	return t.pressure + compressorLift*f*f
}

// Blocks lists the plant components and their wiring.
func (t *Tutorial) Blocks() []domain.Block {
	transmitter := func(name, source, port string) domain.Block {
		return domain.Block{
			Name:        name,
			Type:        domain.BlockTypeAlarmTransmitter,
			Inputs:      []domain.Connection{{SourceBlock: source, SourcePort: port, DestinationBlock: name, DestinationPort: "Input"}},
			OutputNames: []string{"MeasuredValue", "HighAlarm"},
		}
	}
	esvOutputs := []string{"LocalInput", "ValveStemPosition", "IsDefinedClosed"}
	motorOutputs := []string{"LocalInput", "Speed[0]"}

	return []domain.Block{
		{Name: "25ESV0001", Type: domain.BlockTypeESV, OutputNames: esvOutputs},
		{
			Name:        "23VA0001",
			Type:        domain.BlockTypeSeparator,
			Inputs:      []domain.Connection{{SourceBlock: "25ESV0001", SourcePort: "Outlet", DestinationBlock: "23VA0001", DestinationPort: "Inlet"}},
			OutputNames: []string{"Level", "Pressure"},
		},
		{
			Name:        "23ESV0005",
			Type:        domain.BlockTypeESV,
			Inputs:      []domain.Connection{{SourceBlock: "23VA0001", SourcePort: "LiquidOutlet", DestinationBlock: "23ESV0005", DestinationPort: "Inlet"}},
			OutputNames: esvOutputs,
		},
		{
			Name: "23KA0001_m",
			Type: domain.BlockTypeMotor,
			Inputs: []domain.Connection{
				{SourceBlock: "23ESV0005", SourcePort: "Outlet", DestinationBlock: "23KA0001_m", DestinationPort: "Suction"},
				{SourceBlock: "23LIC002", SourcePort: "Output", DestinationBlock: "23KA0001_m", DestinationPort: "Throttle"},
			},
			OutputNames: motorOutputs,
		},
		{
			Name:        "23PA0001_m",
			Type:        domain.BlockTypeMotor,
			Inputs:      []domain.Connection{{SourceBlock: "23VA0001", SourcePort: "GasOutlet", DestinationBlock: "23PA0001_m", DestinationPort: "Suction"}},
			OutputNames: motorOutputs,
		},
		transmitter("23LT0001", "23VA0001", "Level"),
		transmitter("23LT0002", "23VA0001", "Level"),
		transmitter("23PT0001", "23VA0001", "Pressure"),
		transmitter("23PT0003", "23PA0001_m", "Discharge"),
		{
			Name:        "23LIC002",
			Type:        domain.BlockTypePID,
			Inputs:      []domain.Connection{{SourceBlock: "23LT0002", SourcePort: "MeasuredValue", DestinationBlock: "23LIC002", DestinationPort: "MeasuredValue"}},
			OutputNames: []string{"Gain", "IntegralTime", "DerivativeTime", "InternalSetpoint", "MeasuredValue", "Output"},
		},
	}
}
