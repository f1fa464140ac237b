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
	"errors"
	"strings"
	"testing"

	"github.com/spatialmodel/hydroloss"
)

// execute runs the root command with args after the default pipe
// arguments, so that flags set by earlier tests do not leak into
// later ones, and returns the output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	defaults := []string{
		"--config=",
		"--loglevel=warn",
		"--Pipe.Flow=0.01", "--Pipe.FlowUnit=m3/s",
		"--Pipe.Diameter=0.1", "--Pipe.DiameterUnit=m",
		"--Pipe.Length=10", "--Pipe.LengthUnit=m",
		"--Pipe.Roughness=0.00015", "--Pipe.RoughnessUnit=m",
		"--Pipe.Viscosity=1e-6", "--Pipe.ViscosityUnit=m2/s",
		"--Pipe.Density=1000", "--Pipe.DensityUnit=kg/m3",
		`--OutputUnits={"delta_p":"Pa","v":"m/s"}`,
		"--OutputVariables={}",
	}
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	Root.SetArgs(append(append([]string{args[0]}, defaults...), args[1:]...))
	err := Root.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	Root.SetArgs([]string{"version", "--config=", "--loglevel=warn"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if want := "hydroloss v" + hydroloss.Version; !strings.Contains(buf.String(), want) {
		t.Errorf("have %q, want %q", buf.String(), want)
	}
}

func TestPipeCommand(t *testing.T) {
	out, err := execute(t, "pipe")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"1357.685521830", "127323.954473516", "1.27323954473516", "0.0167497737519", "turbulent"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestPipeCommandOutputUnits(t *testing.T) {
	out, err := execute(t, "pipe",
		`--OutputUnits={"delta_p":"kPa","v":"cm/s","Re":"unitless"}`,
		`--OutputVariables={"HeadLoss":"DeltaP / (Rho * 9.80665)"}`)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"1.357685521830", "kPa", "127.323954473516", "cm/s", "HeadLoss", "0.138445393873"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestPipeCommandErrors(t *testing.T) {
	t.Run("unknown unit", func(t *testing.T) {
		_, err := execute(t, "pipe", "--Pipe.FlowUnit=gallons/s")
		var uerr *hydroloss.UnknownUnitError
		if !errors.As(err, &uerr) {
			t.Fatalf("want *hydroloss.UnknownUnitError, have %v", err)
		}
		if uerr.Quantity != "flow rate" {
			t.Errorf("have %s, want flow rate", uerr.Quantity)
		}
	})
	t.Run("zero diameter", func(t *testing.T) {
		_, err := execute(t, "pipe", "--Pipe.Diameter=0")
		var ierr *hydroloss.InvalidInputError
		if !errors.As(err, &ierr) {
			t.Fatalf("want *hydroloss.InvalidInputError, have %v", err)
		}
	})
	t.Run("output units key", func(t *testing.T) {
		if _, err := execute(t, "pipe", `--OutputUnits={"dp":"kPa"}`); err == nil {
			t.Error("should be an error")
		}
	})
	t.Run("output variable", func(t *testing.T) {
		if _, err := execute(t, "pipe", `--OutputVariables={"x":"Gravity * 2"}`); err == nil {
			t.Error("should be an error")
		}
	})
	t.Run("log level", func(t *testing.T) {
		if _, err := execute(t, "pipe", "--loglevel=loud"); err == nil {
			t.Error("should be an error")
		}
	})
}

func TestFrictionCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	Root.SetArgs([]string{"friction", "--config=", "--loglevel=warn", "--re=1000"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"0.064", "laminar"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output should contain %q:\n%s", want, buf.String())
		}
	}

	Root.SetArgs([]string{"friction", "--config=", "--loglevel=warn", "--re=-5"})
	if err := Root.Execute(); err == nil {
		t.Error("should be an error")
	}
}

func TestCurveCommand(t *testing.T) {
	out, err := execute(t, "curve", "--Pipe.FlowUnit=l/s",
		"--Curve.QMin=1", "--Curve.QMax=10", "--Curve.Points=4", "--Curve.Log=false")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("have %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Q [l/s]") {
		t.Errorf("header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[4], "10 ") {
		t.Errorf("last row: %s", lines[4])
	}
}

func TestUnitsCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	Root.SetOutput(buf)
	Root.SetArgs([]string{"units", "--config=", "--loglevel=warn"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"flow rate", "m3/s, l/h, l/s, m3/h", "cSt", "mbar"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output should contain %q:\n%s", want, buf.String())
		}
	}
}
