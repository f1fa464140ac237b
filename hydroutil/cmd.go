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
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/hydroloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log receives log messages from the commands.
var Log logrus.FieldLogger = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	pipeSets := []*pflag.FlagSet{pipeCmd.Flags(), curveCmd.Flags()}

	// Options are the configuration options available to hydroloss.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "loglevel",
			usage: `
              loglevel specifies the minimum level of log messages to
              print: debug, info, warn, or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Pipe.Flow",
			usage: `
              Pipe.Flow is the volumetric flow rate through the pipe,
              in units of Pipe.FlowUnit.`,
			shorthand:  "q",
			defaultVal: 0.01,
			flagsets:   pipeSets,
		},
		{
			name: "Pipe.FlowUnit",
			usage: `
              Pipe.FlowUnit is the unit of Pipe.Flow: m3/s, l/s, m3/h, or l/h.
              In the curve command it is also the unit of Curve.QMin and Curve.QMax.`,
			defaultVal: "m3/s",
			flagsets:   pipeSets,
		},
		{
			name: "Pipe.Diameter",
			usage: `
              Pipe.Diameter is the inner diameter of the pipe, in units of
              Pipe.DiameterUnit.`,
			shorthand:  "d",
			defaultVal: 0.1,
			flagsets:   pipeSets,
		},
		{
			name: "Pipe.DiameterUnit",
			usage: `
              Pipe.DiameterUnit is the unit of Pipe.Diameter: m, cm, or mm.`,
			defaultVal: "m",
			flagsets:   pipeSets,
		},
		{
			name: "Pipe.Length",
			usage: `
              Pipe.Length is the length of the pipe segment, in units of
              Pipe.LengthUnit.`,
			shorthand:  "l",
			defaultVal: 10.0,
			flagsets:   pipeSets,
		},
		{
			name: "Pipe.LengthUnit",
			usage: `
              Pipe.LengthUnit is the unit of Pipe.Length: m, cm, or mm.`,
			defaultVal: "m",
			flagsets:   pipeSets,
		},
		{
			name: "Pipe.Roughness",
			usage: `
              Pipe.Roughness is the absolute roughness of the pipe wall, in
              units of Pipe.RoughnessUnit. It is used to report the relative
              roughness and does not change the friction factor.`,
			defaultVal: 0.00015,
			flagsets:   pipeSets,
		},
		{
			name: "Pipe.RoughnessUnit",
			usage: `
              Pipe.RoughnessUnit is the unit of Pipe.Roughness: m, cm, or mm.`,
			defaultVal: "m",
			flagsets:   pipeSets,
		},
		{
			name: "Pipe.Viscosity",
			usage: `
              Pipe.Viscosity is the kinematic viscosity of the fluid, in units
              of Pipe.ViscosityUnit.`,
			defaultVal: 1.0e-6,
			flagsets:   pipeSets,
		},
		{
			name: "Pipe.ViscosityUnit",
			usage: `
              Pipe.ViscosityUnit is the unit of Pipe.Viscosity: m2/s or cSt.`,
			defaultVal: "m2/s",
			flagsets:   pipeSets,
		},
		{
			name: "Pipe.Density",
			usage: `
              Pipe.Density is the density of the fluid, in units of
              Pipe.DensityUnit.`,
			defaultVal: 1000.0,
			flagsets:   pipeSets,
		},
		{
			name: "Pipe.DensityUnit",
			usage: `
              Pipe.DensityUnit is the unit of Pipe.Density: kg/m3.`,
			defaultVal: "kg/m3",
			flagsets:   pipeSets,
		},
		{
			name: "OutputUnits",
			usage: `
              OutputUnits specifies the units of the results. Keys are
              delta_p (Pa, kPa, bar, or mbar), v (m/s or cm/s), Re, and lam.
              Re and lam are always unitless. Missing keys take their default
              values.`,
			defaultVal: map[string]string{"delta_p": "Pa", "v": "m/s"},
			flagsets:   pipeSets,
		},
		{
			name: "OutputVariables",
			usage: `
              OutputVariables specifies additional results to calculate, as a
              map of names to expressions. Expressions can use the variables
              DeltaP [Pa], Re, V [m/s], Lambda, RelativeRoughness, Q [m3/s],
              D [m], L [m], Delta [m], Nu [m2/s], and Rho [kg/m3], and the
              functions exp(x), log(x), sqrt(x), and pow(x, y).`,
			defaultVal: map[string]string{},
			flagsets:   pipeSets,
		},
		{
			name: "re",
			usage: `
              re is the Reynolds number to calculate the friction factor for.`,
			defaultVal: 1.0e5,
			flagsets:   []*pflag.FlagSet{frictionCmd.Flags()},
		},
		{
			name: "Curve.QMin",
			usage: `
              Curve.QMin is the smallest flow rate in the curve, in units of
              Pipe.FlowUnit.`,
			defaultVal: 0.001,
			flagsets:   []*pflag.FlagSet{curveCmd.Flags()},
		},
		{
			name: "Curve.QMax",
			usage: `
              Curve.QMax is the largest flow rate in the curve, in units of
              Pipe.FlowUnit.`,
			defaultVal: 0.02,
			flagsets:   []*pflag.FlagSet{curveCmd.Flags()},
		},
		{
			name: "Curve.Points",
			usage: `
              Curve.Points is the number of flow rates in the curve.`,
			shorthand:  "n",
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{curveCmd.Flags()},
		},
		{
			name: "Curve.Log",
			usage: `
              Curve.Log specifies whether the flow rates should be evenly
              spaced on a logarithmic rather than a linear scale.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{curveCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("HYDROLOSS")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := strings.TrimSpace(b.String())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(pipeCmd)
	Root.AddCommand(frictionCmd)
	Root.AddCommand(curveCmd)
	Root.AddCommand(unitsCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("hydroloss: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("loglevel"))
	if err != nil {
		return fmt.Errorf("hydroloss: invalid loglevel: %v", err)
	}
	if l, ok := Log.(*logrus.Logger); ok {
		l.Level = level
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "hydroloss",
	Short: "A pipe friction loss calculator.",
	Long: `hydroloss calculates the pressure loss, flow velocity, Reynolds number, and
Darcy friction factor for incompressible flow through a straight circular pipe
using the Darcy-Weisbach equation.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'HYDROLOSS_var' where 'var' is the
name of the variable to be set, with periods replaced by underscores.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of hydroloss.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hydroloss v%s\n", hydroloss.Version)
	},
	DisableAutoGenTag: true,
}

// pipeCmd is a command that calculates the losses in a single pipe segment.
var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Calculate the pressure loss in a pipe.",
	Long: `pipe calculates the pressure loss, Reynolds number, mean velocity, and
friction factor for the pipe and fluid specified by the Pipe.* options, and
prints them in the units given by OutputUnits. Any OutputVariables are
calculated and printed as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := PipeConfig(Cfg)
		if err != nil {
			return err
		}
		out, err := OutputUnitsConfig(Cfg)
		if err != nil {
			return err
		}
		vars, err := GetStringMapString("OutputVariables", Cfg)
		if err != nil {
			return err
		}
		o, err := NewOutputter(vars, nil)
		if err != nil {
			return err
		}
		return Pipe(cmd.OutOrStdout(), p, out, o)
	},
	DisableAutoGenTag: true,
}

// frictionCmd is a command that calculates a friction factor.
var frictionCmd = &cobra.Command{
	Use:   "friction",
	Short: "Calculate the friction factor.",
	Long: `friction prints the Darcy friction factor and the flow regime at the
Reynolds number given by the re option.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Friction(cmd.OutOrStdout(), Cfg.GetFloat64("re"))
	},
	DisableAutoGenTag: true,
}

// curveCmd is a command that calculates losses over a range of flow rates.
var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Calculate a pressure loss curve.",
	Long: `curve calculates the pressure loss in the pipe specified by the Pipe.*
options for Curve.Points flow rates between Curve.QMin and Curve.QMax and
prints the results as a table. Each row is an independent calculation; the
Pipe.Flow option is ignored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := PipeConfig(Cfg)
		if err != nil {
			return err
		}
		out, err := OutputUnitsConfig(Cfg)
		if err != nil {
			return err
		}
		points, err := Curve(p, Cfg.GetFloat64("Curve.QMin"), Cfg.GetFloat64("Curve.QMax"),
			Cfg.GetInt("Curve.Points"), Cfg.GetBool("Curve.Log"), out)
		if err != nil {
			return err
		}
		return WriteCurve(cmd.OutOrStdout(), p.Flow.Unit, points)
	},
	DisableAutoGenTag: true,
}

// unitsCmd is a command that lists the recognized units.
var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the recognized units.",
	Long:  "units lists the units that are recognized for each kind of quantity.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return WriteUnits(cmd.OutOrStdout())
	},
	DisableAutoGenTag: true,
}
