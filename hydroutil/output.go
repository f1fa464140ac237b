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
	"math"
	"sort"

	"github.com/Knetic/govaluate"
	"github.com/spatialmodel/hydroloss"
)

// OutputVariableNames are the variables that can be used in output
// variable expressions. All values are in SI units.
var OutputVariableNames = []string{
	"DeltaP", "Re", "V", "Lambda", "RelativeRoughness",
	"Q", "D", "L", "Delta", "Nu", "Rho",
}

// Outputter calculates user-defined output variables from the results
// of a pipe loss calculation.
type Outputter struct {
	names       []string
	expressions map[string]*govaluate.EvaluableExpression
}

// NewOutputter parses outputVariables, which maps the names of the variables
// to calculate to expressions that define how they should be calculated.
// Default functions are 'exp(x)', 'log(x)', 'sqrt(x)' and 'pow(x, y)';
// outputFunctions can add more or replace them.
func NewOutputter(outputVariables map[string]string, outputFunctions map[string]govaluate.ExpressionFunction) (*Outputter, error) {
	funcs := map[string]govaluate.ExpressionFunction{
		"exp":  unaryFunc("exp", math.Exp),
		"log":  unaryFunc("log", math.Log),
		"sqrt": unaryFunc("sqrt", math.Sqrt),
		"pow": func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("hydroloss: got %d arguments for function 'pow', but needs 2", len(args))
			}
			x, okx := args[0].(float64)
			y, oky := args[1].(float64)
			if !okx || !oky {
				return nil, fmt.Errorf("hydroloss: arguments to 'pow' must be numbers")
			}
			return math.Pow(x, y), nil
		},
	}
	for key, val := range outputFunctions {
		funcs[key] = val
	}

	known := make(map[string]bool)
	for _, n := range OutputVariableNames {
		known[n] = true
	}

	o := &Outputter{expressions: make(map[string]*govaluate.EvaluableExpression)}
	for name, expr := range outputVariables {
		e, err := govaluate.NewEvaluableExpressionWithFunctions(expr, funcs)
		if err != nil {
			return nil, fmt.Errorf("hydroloss: output variable %s: %v", name, err)
		}
		for _, v := range e.Vars() {
			if !known[v] {
				return nil, fmt.Errorf("hydroloss: output variable %s: unknown variable %q; valid variables are %v",
					name, v, OutputVariableNames)
			}
		}
		o.names = append(o.names, name)
		o.expressions[name] = e
	}
	sort.Strings(o.names)
	return o, nil
}

func unaryFunc(name string, f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("hydroloss: got %d arguments for function '%s', but needs 1", len(args), name)
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("hydroloss: argument to '%s' must be a number", name)
		}
		return f(x), nil
	}
}

// Names returns the names of the output variables in alphabetical order.
func (o *Outputter) Names() []string { return o.names }

// parameters returns the SI values of the inputs and results.
func parameters(p hydroloss.Pipe, r *hydroloss.Result) (map[string]interface{}, error) {
	params := map[string]interface{}{
		"DeltaP":            r.PressureLoss.Value(),
		"Re":                r.Re,
		"V":                 r.Velocity.Value(),
		"Lambda":            r.Lambda,
		"RelativeRoughness": r.RelativeRoughness,
	}
	inputs := []struct {
		name string
		kind hydroloss.Kind
		m    hydroloss.Measurement
	}{
		{"Q", hydroloss.Flow, p.Flow},
		{"D", hydroloss.Length, p.Diameter},
		{"L", hydroloss.Length, p.Length},
		{"Delta", hydroloss.Length, p.Roughness},
		{"Nu", hydroloss.Viscosity, p.Viscosity},
		{"Rho", hydroloss.Density, p.Density},
	}
	for _, in := range inputs {
		v, err := hydroloss.ToSI(in.kind, in.m.Value, in.m.Unit)
		if err != nil {
			return nil, err
		}
		params[in.name] = v
	}
	return params, nil
}

// Evaluate calculates the output variables for pipe p and its results r.
func (o *Outputter) Evaluate(p hydroloss.Pipe, r *hydroloss.Result) (map[string]float64, error) {
	params, err := parameters(p, r)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(o.names))
	for _, name := range o.names {
		v, err := o.expressions[name].Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("hydroloss: evaluating output variable %s: %v", name, err)
		}
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("hydroloss: output variable %s is %T, not a number", name, v)
		}
		out[name] = f
	}
	return out, nil
}
