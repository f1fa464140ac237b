/*
Copyright © 2018 the hydroloss authors.
This file is part of hydroloss.

hydroloss is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

hydroloss is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with hydroloss.  If not, see <http://www.gnu.org/licenses/>.
*/

package hydroloss

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"
)

// Default output units.
const (
	DefaultPressureUnit = "Pa"
	DefaultSpeedUnit    = "m/s"
	Unitless            = "unitless"
)

// OutputUnits specifies the units that results should be returned in.
// Empty fields take their default values independently of each other.
// Re and Lam are accepted for documentation only: the Reynolds number and
// the friction factor are always dimensionless.
type OutputUnits struct {
	DeltaP string // Pa, kPa, bar or mbar
	V      string // m/s or cm/s
	Re     string
	Lam    string
}

// withDefaults returns a copy of o with empty fields filled in.
// A nil o yields all defaults.
func (o *OutputUnits) withDefaults() OutputUnits {
	var out OutputUnits
	if o != nil {
		out = *o
	}
	if out.DeltaP == "" {
		out.DeltaP = DefaultPressureUnit
	}
	if out.V == "" {
		out.V = DefaultSpeedUnit
	}
	if out.Re == "" {
		out.Re = Unitless
	}
	if out.Lam == "" {
		out.Lam = Unitless
	}
	return out
}

// Pipe holds the measured properties of a straight circular pipe segment
// and the fluid flowing through it.
type Pipe struct {
	Flow      Measurement // volumetric flow rate
	Diameter  Measurement // inner diameter
	Length    Measurement
	Roughness Measurement // absolute wall roughness
	Viscosity Measurement // kinematic viscosity
	Density   Measurement

	// Friction calculates the friction factor. If nil,
	// Transition is used.
	Friction FrictionModel
}

// Result holds the results of a pipe loss calculation.
type Result struct {
	// DeltaP is the pressure loss in Units.DeltaP.
	DeltaP float64
	// Re is the Reynolds number.
	Re float64
	// V is the mean flow velocity in Units.V.
	V float64
	// Lambda is the Darcy friction factor.
	Lambda float64

	// RelativeRoughness is the ratio of wall roughness to diameter.
	// It is reported but does not affect Lambda.
	RelativeRoughness float64

	// Regime is the flow regime at Re.
	Regime Regime

	// PressureLoss and Velocity are the SI values of DeltaP and V.
	PressureLoss, Velocity *unit.Unit

	// Units are the output units, with defaults filled in.
	Units OutputUnits
}

// Tuple returns the pressure loss, Reynolds number, velocity and
// friction factor, in that order.
func (r *Result) Tuple() (deltaP, re, v, lam float64) {
	return r.DeltaP, r.Re, r.V, r.Lambda
}

// siInput holds the pipe properties after conversion to SI.
type siInput struct {
	q, d, l, delta, nu, rho *unit.Unit
}

// quantity converts m to SI, naming the offending quantity in any error.
func quantity(name string, k Kind, m Measurement) (*unit.Unit, error) {
	u, err := m.Quantity(k)
	if err != nil {
		if uerr, ok := err.(*UnknownUnitError); ok {
			uerr.Quantity = name
		}
		return nil, err
	}
	return u, nil
}

// toSI converts all the measurements in p to SI.
func (p *Pipe) toSI() (*siInput, error) {
	var in siInput
	var err error
	vars := []struct {
		name string
		kind Kind
		m    Measurement
		dst  **unit.Unit
	}{
		{"flow rate", Flow, p.Flow, &in.q},
		{"diameter", Length, p.Diameter, &in.d},
		{"length", Length, p.Length, &in.l},
		{"roughness", Length, p.Roughness, &in.delta},
		{"viscosity", Viscosity, p.Viscosity, &in.nu},
		{"density", Density, p.Density, &in.rho},
	}
	for _, v := range vars {
		if *v.dst, err = quantity(v.name, v.kind, v.m); err != nil {
			return nil, err
		}
	}
	return &in, nil
}

// validate checks that the SI inputs lie within the domain of the
// Darcy-Weisbach calculation.
func (in *siInput) validate() error {
	checks := []struct {
		name        string
		v           *unit.Unit
		positive    bool
		nonNegative bool
	}{
		{"flow rate", in.q, false, false},
		{"diameter", in.d, true, false},
		{"length", in.l, false, true},
		{"roughness", in.delta, false, true},
		{"viscosity", in.nu, true, false},
		{"density", in.rho, true, false},
	}
	for _, c := range checks {
		x := c.v.Value()
		switch {
		case math.IsNaN(x) || math.IsInf(x, 0):
			return &InvalidInputError{Quantity: c.name, Value: x, Reason: "must be finite"}
		case c.positive && x <= 0:
			return &InvalidInputError{Quantity: c.name, Value: x, Reason: "must be > 0"}
		case c.nonNegative && x < 0:
			return &InvalidInputError{Quantity: c.name, Value: x, Reason: "must be >= 0"}
		}
	}
	return nil
}

func dimless(v float64) *unit.Unit { return unit.New(v, unit.Dimensions{}) }

// Calculate calculates the pressure loss along p using the
// Darcy-Weisbach equation and returns the results in the requested
// output units. out may be nil, in which case the defaults are used.
func (p *Pipe) Calculate(out *OutputUnits) (*Result, error) {
	in, err := p.toSI()
	if err != nil {
		return nil, err
	}
	units := out.withDefaults()
	// Check the output units before doing any work.
	if _, err := lookup(Pressure, units.DeltaP); err != nil {
		return nil, err
	}
	if _, err := lookup(Speed, units.V); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	// v = 4Q / (πd²)
	v := unit.Div(unit.Mul(dimless(4), in.q), unit.Mul(dimless(math.Pi), unit.Mul(in.d, in.d)))

	// Re = vd / ν
	re := unit.Div(unit.Mul(v, in.d), in.nu)
	if err := re.Check(unit.Dimensions{}); err != nil {
		return nil, fmt.Errorf("hydroloss: Reynolds number: %v", err)
	}

	relRough := unit.Div(in.delta, in.d)

	model := p.Friction
	if model == nil {
		model = Transition{}
	}
	lam, err := model.FrictionFactor(re.Value())
	if err != nil {
		return nil, err
	}

	// Δp = λ (L/d) ρv² / 2
	dp := unit.Div(unit.Mul(dimless(lam), unit.Div(in.l, in.d), in.rho, unit.Mul(v, v)), dimless(2))
	if err := dp.Check(Pressure.Dimensions()); err != nil {
		return nil, fmt.Errorf("hydroloss: pressure loss: %v", err)
	}

	r := &Result{
		Re:                re.Value(),
		Lambda:            lam,
		RelativeRoughness: relRough.Value(),
		Regime:            RegimeOf(re.Value()),
		PressureLoss:      dp,
		Velocity:          v,
		Units:             units,
	}
	if r.DeltaP, err = FromSI(Pressure, dp.Value(), units.DeltaP); err != nil {
		return nil, err
	}
	if r.V, err = FromSI(Speed, v.Value(), units.V); err != nil {
		return nil, err
	}
	return r, nil
}

// PipeLoss calculates the pressure loss deltaP, Reynolds number Re,
// mean velocity v and Darcy friction factor lam for flow through a
// straight circular pipe.
//
// Q is the volumetric flow rate (m3/s, l/s, m3/h or l/h), d the inner
// diameter, L the length and delta the absolute roughness (m, cm or mm),
// nu the kinematic viscosity (m2/s or cSt) and rho the density (kg/m3).
// outputUnits may be nil; see OutputUnits for the defaults.
func PipeLoss(Q float64, QUnit string, d float64, dUnit string, L float64, LUnit string,
	delta float64, deltaUnit string, nu float64, nuUnit string, rho float64, rhoUnit string,
	outputUnits *OutputUnits) (deltaP, Re, v, lam float64, err error) {

	p := Pipe{
		Flow:      Measurement{Value: Q, Unit: QUnit},
		Diameter:  Measurement{Value: d, Unit: dUnit},
		Length:    Measurement{Value: L, Unit: LUnit},
		Roughness: Measurement{Value: delta, Unit: deltaUnit},
		Viscosity: Measurement{Value: nu, Unit: nuUnit},
		Density:   Measurement{Value: rho, Unit: rhoUnit},
	}
	r, err := p.Calculate(outputUnits)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	deltaP, Re, v, lam = r.Tuple()
	return deltaP, Re, v, lam, nil
}
