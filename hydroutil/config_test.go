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
	"math"
	"reflect"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/kr/pretty"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/hydroloss"
)

const exampleConfig = "../cmd/hydroloss/configExample.toml"

type pipeFile struct {
	Pipe struct {
		Flow, Diameter, Length, Roughness, Viscosity, Density                     float64
		FlowUnit, DiameterUnit, LengthUnit, RoughnessUnit, ViscosityUnit, DensityUnit string
	}
	OutputUnits     map[string]string
	OutputVariables map[string]string
}

func loadExample(t *testing.T) *viper.Viper {
	cfg := viper.New()
	cfg.SetConfigFile(exampleConfig)
	if err := cfg.ReadInConfig(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestPipeConfig(t *testing.T) {
	var f pipeFile
	if _, err := toml.DecodeFile(exampleConfig, &f); err != nil {
		t.Fatal(err)
	}
	want := hydroloss.Pipe{
		Flow:      hydroloss.Measurement{Value: f.Pipe.Flow, Unit: f.Pipe.FlowUnit},
		Diameter:  hydroloss.Measurement{Value: f.Pipe.Diameter, Unit: f.Pipe.DiameterUnit},
		Length:    hydroloss.Measurement{Value: f.Pipe.Length, Unit: f.Pipe.LengthUnit},
		Roughness: hydroloss.Measurement{Value: f.Pipe.Roughness, Unit: f.Pipe.RoughnessUnit},
		Viscosity: hydroloss.Measurement{Value: f.Pipe.Viscosity, Unit: f.Pipe.ViscosityUnit},
		Density:   hydroloss.Measurement{Value: f.Pipe.Density, Unit: f.Pipe.DensityUnit},
	}

	have, err := PipeConfig(loadExample(t))
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(have, want); len(diff) != 0 {
		t.Errorf("pipe configuration: %v", diff)
	}

	out, err := OutputUnitsConfig(loadExample(t))
	if err != nil {
		t.Fatal(err)
	}
	if out.DeltaP != f.OutputUnits["delta_p"] || out.V != f.OutputUnits["v"] {
		t.Errorf("have %+v, want %v", out, f.OutputUnits)
	}

	// The example describes the same pipe as the reference calculation.
	r, err := have.Calculate(out)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.DeltaP-1.357685521830791) > 1.e-9 {
		t.Errorf("have %g kPa, want %g kPa", r.DeltaP, 1.357685521830791)
	}
}

func TestPipeConfigInvalid(t *testing.T) {
	cfg := viper.New()
	cfg.Set("Pipe.Flow", "lots")
	if _, err := PipeConfig(cfg); err == nil {
		t.Error("should be an error")
	}
}

func TestGetStringMapString(t *testing.T) {
	cfg := viper.New()
	tests := []struct {
		name string
		val  interface{}
		want map[string]string
		err  bool
	}{
		{"json", `{"delta_p":"kPa","v":"cm/s"}`, map[string]string{"delta_p": "kPa", "v": "cm/s"}, false},
		{"map", map[string]interface{}{"delta_p": "bar"}, map[string]string{"delta_p": "bar"}, false},
		{"empty", "", map[string]string{}, false},
		{"bad json", `{"delta_p":`, nil, true},
		{"bad type", 12, nil, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg.Set("OutputUnits", test.val)
			have, err := GetStringMapString("OutputUnits", cfg)
			if test.err {
				if err == nil {
					t.Error("should be an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(have, test.want) {
				t.Errorf("have %v, want %v", have, test.want)
			}
		})
	}
}

func TestOutputUnitsConfig(t *testing.T) {
	cfg := viper.New()
	cfg.Set("OutputUnits", `{"DELTA_P":"mbar","lam":"unitless"}`)
	out, err := OutputUnitsConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := &hydroloss.OutputUnits{DeltaP: "mbar", Lam: "unitless"}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("have %+v, want %+v", out, want)
	}

	cfg.Set("OutputUnits", `{"pressure":"mbar"}`)
	if _, err := OutputUnitsConfig(cfg); err == nil {
		t.Error("should be an error")
	}
}
