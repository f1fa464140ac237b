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
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/hydroloss"
	"github.com/spf13/cast"
)

// PipeConfig unmarshals a viper configuration for a pipe segment.
// Each Pipe.X value is paired with the unit in Pipe.XUnit.
func PipeConfig(cfg *viper.Viper) (hydroloss.Pipe, error) {
	var p hydroloss.Pipe
	vars := []struct {
		name string
		dst  *hydroloss.Measurement
	}{
		{"Pipe.Flow", &p.Flow},
		{"Pipe.Diameter", &p.Diameter},
		{"Pipe.Length", &p.Length},
		{"Pipe.Roughness", &p.Roughness},
		{"Pipe.Viscosity", &p.Viscosity},
		{"Pipe.Density", &p.Density},
	}
	for _, v := range vars {
		val, err := cast.ToFloat64E(cfg.Get(v.name))
		if err != nil {
			return p, fmt.Errorf("hydroloss: parsing configuration variable %s: %v", v.name, err)
		}
		*v.dst = hydroloss.Measurement{
			Value: val,
			Unit:  strings.TrimSpace(os.ExpandEnv(cfg.GetString(v.name + "Unit"))),
		}
	}
	return p, nil
}

// OutputUnitsConfig unmarshals the OutputUnits configuration variable.
// Keys are matched without regard to case.
func OutputUnitsConfig(cfg *viper.Viper) (*hydroloss.OutputUnits, error) {
	m, err := GetStringMapString("OutputUnits", cfg)
	if err != nil {
		return nil, err
	}
	out := new(hydroloss.OutputUnits)
	for k, v := range m {
		v = strings.TrimSpace(os.ExpandEnv(v))
		switch strings.ToLower(k) {
		case "delta_p":
			out.DeltaP = v
		case "v":
			out.V = v
		case "re":
			out.Re = v
		case "lam":
			out.Lam = v
		default:
			return nil, fmt.Errorf("hydroloss: invalid OutputUnits key %q; valid keys are delta_p, v, Re, and lam", k)
		}
	}
	return out, nil
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument or an environment variable.
func GetStringMapString(varName string, cfg *viper.Viper) (map[string]string, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case nil:
		return make(map[string]string), nil
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		return cast.ToStringMapStringE(v)
	case string:
		o := make(map[string]string)
		if strings.TrimSpace(v) == "" {
			return o, nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		if err := d.Decode(&o); err != nil {
			return nil, fmt.Errorf("hydroloss: parsing configuration variable %s: %v", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("hydroloss: invalid type for configuration variable %s: %#v", varName, i)
	}
}
