// Package units converts process values between SI base units and the
// engineering units used in sequence definitions and reports.
package units

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/plantctl/pkg/domain"
)

// atmosphere is the gauge reference for "barg", in Pa.
const atmosphere = 101325.0

// conversion maps an engineering unit to SI as si = v*scale + offset.
type conversion struct {
	scale  float64
	offset float64
	// dimension groups units that convert into each other.
	dimension string
}

var table = map[string]conversion{
	"m":     {1, 0, "length"},
	"cm":    {0.01, 0, "length"},
	"mm":    {0.001, 0, "length"},
	"Pa":    {1, 0, "pressure"},
	"kPa":   {1e3, 0, "pressure"},
	"bar":   {1e5, 0, "pressure"},
	"bara":  {1e5, 0, "pressure"},
	"barg":  {1e5, atmosphere, "pressure"},
	"psi":   {6894.757293168, 0, "pressure"},
	"%":     {0.01, 0, "fraction"},
	"rad/s": {1, 0, "angular_velocity"},
	"rpm":   {2 * math.Pi / 60, 0, "angular_velocity"},
	"s":     {1, 0, "time"},
	"min":   {60, 0, "time"},
	"h":     {3600, 0, "time"},
	"K":     {1, 0, "temperature"},
	"degC":  {1, 273.15, "temperature"},
	"C":     {1, 273.15, "temperature"},
	"kg/s":  {1, 0, "mass_flow"},
	"kg/h":  {1.0 / 3600, 0, "mass_flow"},
	"m3/s":  {1, 0, "volume_flow"},
	"m3/h":  {1.0 / 3600, 0, "volume_flow"},
}

func lookup(unit string) (conversion, bool, error) {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return conversion{}, false, nil
	}
	c, ok := table[unit]
	if !ok {
		return conversion{}, false, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, unit)
	}
	return c, true, nil
}

// ToSI converts v expressed in unit to the SI base unit.
// An empty unit returns v unchanged.
func ToSI(v float64, unit string) (float64, error) {
	c, ok, err := lookup(unit)
	if err != nil || !ok {
		return v, err
	}
	return v*c.scale + c.offset, nil
}

// FromSI converts an SI value to unit.
// An empty unit returns v unchanged.
func FromSI(v float64, unit string) (float64, error) {
	c, ok, err := lookup(unit)
	if err != nil || !ok {
		return v, err
	}
	return (v - c.offset) / c.scale, nil
}

// Dimension returns the physical dimension of a unit, or "" for an empty unit.
func Dimension(unit string) (string, error) {
	c, ok, err := lookup(unit)
	if err != nil || !ok {
		return "", err
	}
	return c.dimension, nil
}

// Known reports whether unit can be converted.
func Known(unit string) bool {
	_, _, err := lookup(unit)
	return err == nil
}
