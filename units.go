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
	"sort"

	"github.com/ctessum/unit"
)

// Kind is a kind of physical quantity with its own set of recognized units.
type Kind int

// These are the quantity kinds handled by the calculator.
const (
	Flow Kind = iota
	Length
	Viscosity
	Density
	Pressure
	Speed
)

// Kinds holds all quantity kinds in display order.
var Kinds = []Kind{Flow, Length, Viscosity, Density, Pressure, Speed}

func (k Kind) String() string {
	switch k {
	case Flow:
		return "flow rate"
	case Length:
		return "length"
	case Viscosity:
		return "viscosity"
	case Density:
		return "density"
	case Pressure:
		return "pressure"
	case Speed:
		return "speed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Dimensions returns the SI dimensions of quantities of kind k.
func (k Kind) Dimensions() unit.Dimensions {
	switch k {
	case Flow:
		return unit.Dimensions{unit.LengthDim: 3, unit.TimeDim: -1}
	case Length:
		return unit.Dimensions{unit.LengthDim: 1}
	case Viscosity:
		return unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -1}
	case Density:
		return unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -3}
	case Pressure:
		return unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2}
	case Speed:
		return unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -1}
	default:
		panic(fmt.Errorf("hydroloss: invalid quantity kind %d", int(k)))
	}
}

// factor relates a unit to its SI base: 1 unit = mul/div SI.
// Keeping the multiplier and divisor apart lets each conversion
// be a single exact multiplication or division.
type factor struct {
	mul, div float64
}

func (f factor) toSI(v float64) float64 {
	if f.div != 1 {
		return v / f.div
	}
	return v * f.mul
}

func (f factor) fromSI(v float64) float64 {
	if f.div != 1 {
		return v * f.div
	}
	return v / f.mul
}

// conversions holds the recognized units of each quantity kind.
var conversions = map[Kind]map[string]factor{
	Flow: {
		"m3/s": {1, 1},
		"l/s":  {1, 1000},
		"m3/h": {1, 3600},
		"l/h":  {1, 1000 * 3600},
	},
	Length: {
		"m":  {1, 1},
		"cm": {1, 100},
		"mm": {1, 1000},
	},
	Viscosity: {
		"m2/s": {1, 1},
		"cSt":  {1e-6, 1},
	},
	Density: {
		"kg/m3": {1, 1},
	},
	Pressure: {
		"Pa":   {1, 1},
		"kPa":  {1000, 1},
		"bar":  {1e5, 1},
		"mbar": {100, 1},
	},
	Speed: {
		"m/s":  {1, 1},
		"cm/s": {1, 100},
	},
}

// SIUnit returns the SI base unit name of kind k.
func SIUnit(k Kind) string {
	switch k {
	case Flow:
		return "m3/s"
	case Length:
		return "m"
	case Viscosity:
		return "m2/s"
	case Density:
		return "kg/m3"
	case Pressure:
		return "Pa"
	case Speed:
		return "m/s"
	default:
		return ""
	}
}

// Units returns the units recognized for kind k, with the SI base unit
// first and the rest in alphabetical order.
func Units(k Kind) []string {
	si := SIUnit(k)
	var o []string
	for u := range conversions[k] {
		if u != si {
			o = append(o, u)
		}
	}
	sort.Strings(o)
	if _, ok := conversions[k][si]; ok {
		o = append([]string{si}, o...)
	}
	return o
}

func lookup(k Kind, u string) (factor, error) {
	f, ok := conversions[k][u]
	if !ok {
		return factor{}, &UnknownUnitError{Quantity: k.String(), Unit: u}
	}
	return f, nil
}

// ToSI converts v in unit u of kind k into the kind's SI base unit.
// It returns an *UnknownUnitError if u is not recognized for k.
func ToSI(k Kind, v float64, u string) (float64, error) {
	f, err := lookup(k, u)
	if err != nil {
		return 0, err
	}
	return f.toSI(v), nil
}

// FromSI converts v, in the SI base unit of kind k, into unit u.
// It returns an *UnknownUnitError if u is not recognized for k.
func FromSI(k Kind, v float64, u string) (float64, error) {
	f, err := lookup(k, u)
	if err != nil {
		return 0, err
	}
	return f.fromSI(v), nil
}

// Measurement is a measured value together with the unit it was
// measured in.
type Measurement struct {
	Value float64
	Unit  string
}

// Quantity converts m, which must be a quantity of kind k, into
// a dimensioned SI value.
func (m Measurement) Quantity(k Kind) (*unit.Unit, error) {
	v, err := ToSI(k, m.Value, m.Unit)
	if err != nil {
		return nil, err
	}
	return unit.New(v, k.Dimensions()), nil
}

func (m Measurement) String() string {
	return fmt.Sprintf("%g %s", m.Value, m.Unit)
}
