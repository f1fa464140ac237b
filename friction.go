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
	"math"
)

// Reynolds numbers bounding the transitional flow regime.
const (
	LaminarLimit   = 2300.
	TurbulentLimit = 4000.
)

// Regime is a pipe flow regime.
type Regime int

// These are the flow regimes distinguished by the friction model.
const (
	Laminar Regime = iota
	Transitional
	Turbulent
)

func (r Regime) String() string {
	switch r {
	case Laminar:
		return "laminar"
	case Transitional:
		return "transitional"
	case Turbulent:
		return "turbulent"
	default:
		return "unknown"
	}
}

// RegimeOf returns the flow regime at Reynolds number re.
// Both limits belong to the transitional regime.
func RegimeOf(re float64) Regime {
	switch {
	case re < LaminarLimit:
		return Laminar
	case re > TurbulentLimit:
		return Turbulent
	default:
		return Transitional
	}
}

// FrictionModel calculates the Darcy friction factor of a pipe flow.
// Implementations only see the Reynolds number; wall roughness
// does not enter the calculation.
type FrictionModel interface {
	FrictionFactor(re float64) (float64, error)
}

// FrictionFunc is an adapter to allow the use of an ordinary function
// as a FrictionModel.
type FrictionFunc func(re float64) (float64, error)

// FrictionFactor calls f(re).
func (f FrictionFunc) FrictionFactor(re float64) (float64, error) { return f(re) }

// Transition is the default friction model: Hagen-Poiseuille for
// laminar flow, Blasius for turbulent flow and log-log interpolation
// between the two in the transitional regime.
type Transition struct{}

// FrictionFactor implements FrictionModel.
func (Transition) FrictionFactor(re float64) (float64, error) { return FrictionFactor(re) }

// laminar returns the Hagen-Poiseuille friction factor.
func laminar(re float64) float64 { return 64 / re }

// blasius returns the Blasius friction factor for smooth pipes.
func blasius(re float64) float64 { return 0.3164 * math.Pow(re, -0.25) }

// transitional interpolates linearly in log-log space between the laminar
// friction factor at LaminarLimit and the Blasius friction factor at
// TurbulentLimit.
func transitional(re float64) float64 {
	lamL := math.Log(laminar(LaminarLimit))
	lamT := math.Log(blasius(TurbulentLimit))
	logRe := math.Log(re)
	logMin, logMax := math.Log(LaminarLimit), math.Log(TurbulentLimit)
	return math.Exp((lamT-lamL)*(logRe-logMin)/(logMax-logMin) + lamL)
}

// FrictionFactor returns the dimensionless Darcy friction factor λ
// at Reynolds number re. It returns an error if re is not a finite
// positive number.
func FrictionFactor(re float64) (float64, error) {
	if math.IsNaN(re) || math.IsInf(re, 0) || re <= 0 {
		return 0, &InvalidInputError{Quantity: "Reynolds number", Value: re, Reason: "must be a finite number > 0"}
	}
	switch RegimeOf(re) {
	case Laminar:
		return laminar(re), nil
	case Turbulent:
		return blasius(re), nil
	default:
		return transitional(re), nil
	}
}
