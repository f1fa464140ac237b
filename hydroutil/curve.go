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

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/hydroloss"
	"gonum.org/v1/gonum/floats"
)

// CurvePoint is one row of a pressure loss curve.
type CurvePoint struct {
	// Q is the flow rate in the unit of the pipe's Flow measurement.
	Q float64
	*hydroloss.Result
}

// Curve calculates the losses in pipe p for n flow rates between qMin and
// qMax inclusive, in the unit of p.Flow. The flow rates are evenly spaced
// on a linear scale, or on a logarithmic scale if logSpacing is true.
// p.Flow.Value is ignored.
func Curve(p hydroloss.Pipe, qMin, qMax float64, n int, logSpacing bool, out *hydroloss.OutputUnits) ([]CurvePoint, error) {
	if n < 2 {
		return nil, fmt.Errorf("hydroloss: curve needs at least 2 points but %d were requested", n)
	}
	if !(qMax > qMin) {
		return nil, fmt.Errorf("hydroloss: curve maximum flow rate %g must be greater than minimum %g", qMax, qMin)
	}
	q := make([]float64, n)
	if logSpacing {
		if !(qMin > 0) {
			return nil, fmt.Errorf("hydroloss: logarithmic curve needs minimum flow rate > 0 but it is %g", qMin)
		}
		floats.LogSpan(q, qMin, qMax)
	} else {
		floats.Span(q, qMin, qMax)
	}

	points := make([]CurvePoint, n)
	for i, qi := range q {
		p.Flow.Value = qi
		r, err := p.Calculate(out)
		if err != nil {
			return nil, fmt.Errorf("hydroloss: curve point %d (Q=%g %s): %v", i, qi, p.Flow.Unit, err)
		}
		Log.WithFields(logrus.Fields{
			"Q":      qi,
			"Re":     r.Re,
			"regime": r.Regime,
		}).Debug("calculated curve point")
		points[i] = CurvePoint{Q: qi, Result: r}
	}
	return points, nil
}
