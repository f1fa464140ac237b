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

package hydroutil

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/hydroloss"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
}

// Pipe calculates the losses in pipe p, with results in the units
// specified by out, and writes them to w. Output variables are calculated
// by o, which may be nil.
func Pipe(w io.Writer, p hydroloss.Pipe, out *hydroloss.OutputUnits, o *Outputter) error {
	Log.WithFields(logrus.Fields{
		"Q":     p.Flow,
		"d":     p.Diameter,
		"L":     p.Length,
		"delta": p.Roughness,
		"nu":    p.Viscosity,
		"rho":   p.Density,
	}).Info("calculating pipe losses")

	r, err := p.Calculate(out)
	if err != nil {
		return err
	}
	Log.WithFields(logrus.Fields{
		"Re":     r.Re,
		"regime": r.Regime,
		"lambda": r.Lambda,
	}).Debug("friction factor")

	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Pressure loss (delta_p)\t%g\t%s\n", r.DeltaP, r.Units.DeltaP)
	fmt.Fprintf(tw, "Reynolds number (Re)\t%g\t\n", r.Re)
	fmt.Fprintf(tw, "Velocity (v)\t%g\t%s\n", r.V, r.Units.V)
	fmt.Fprintf(tw, "Friction factor (lam)\t%g\t\n", r.Lambda)
	fmt.Fprintf(tw, "Flow regime\t%s\t\n", r.Regime)
	fmt.Fprintf(tw, "Relative roughness\t%g\t\n", r.RelativeRoughness)
	if o != nil && len(o.Names()) > 0 {
		vals, err := o.Evaluate(p, r)
		if err != nil {
			return err
		}
		for _, name := range o.Names() {
			fmt.Fprintf(tw, "%s\t%g\t\n", name, vals[name])
		}
	}
	return tw.Flush()
}

// Friction writes the friction factor and flow regime at Reynolds
// number re to w.
func Friction(w io.Writer, re float64) error {
	lam, err := hydroloss.FrictionFactor(re)
	if err != nil {
		return err
	}
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Reynolds number (Re)\t%g\n", re)
	fmt.Fprintf(tw, "Friction factor (lam)\t%g\n", lam)
	fmt.Fprintf(tw, "Flow regime\t%s\n", hydroloss.RegimeOf(re))
	return tw.Flush()
}

// WriteCurve writes points to w as a table. qUnit is the unit of
// the flow rates.
func WriteCurve(w io.Writer, qUnit string, points []CurvePoint) error {
	if len(points) == 0 {
		return nil
	}
	u := points[0].Units
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Q [%s]\tv [%s]\tRe\tlam\tregime\tdelta_p [%s]\n", qUnit, u.V, u.DeltaP)
	for _, pt := range points {
		fmt.Fprintf(tw, "%g\t%g\t%g\t%g\t%s\t%g\n", pt.Q, pt.V, pt.Re, pt.Lambda, pt.Regime, pt.DeltaP)
	}
	return tw.Flush()
}

// WriteUnits writes the recognized units of each quantity kind to w.
func WriteUnits(w io.Writer) error {
	tw := newTabWriter(w)
	for _, k := range hydroloss.Kinds {
		fmt.Fprintf(tw, "%s\t%s\n", k, strings.Join(hydroloss.Units(k), ", "))
	}
	return tw.Flush()
}
