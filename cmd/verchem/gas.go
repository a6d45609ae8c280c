/*
 * gas.go, part of verchem.
 *
 * Copyright 2026 The verchem authors <verchem{at}verchemDOTxyz>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Verchem is developed for chemistry instruction at secondary-school
 * and introductory university level.
 *
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verchemxyz/verchem-sub008/chemcalc"
	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

var (
	gasP       float64
	gasV       float64
	gasN       float64
	gasT       float64
	gasCelsius bool
)

var gasCmd = &cobra.Command{
	Use:   "gas",
	Short: "Solve the ideal gas law for the missing quantity",
	Long: `Solve PV = nRT. Give exactly three of pressure (kPa), volume (L),
amount (mol) and temperature (K) and the fourth is worked out.

Examples:
  verchem gas -n 1 -t 273.15 -p 101.325
  verchem gas -p 200 -v 5 -t 25 --celsius`,
	Args: cobra.NoArgs,
	RunE: runGas,
}

func init() {
	gasCmd.Flags().Float64VarP(&gasP, "pressure", "p", 0, "Pressure, kPa")
	gasCmd.Flags().Float64VarP(&gasV, "volume", "v", 0, "Volume, L")
	gasCmd.Flags().Float64VarP(&gasN, "moles", "n", 0, "Amount, mol")
	gasCmd.Flags().Float64VarP(&gasT, "temp", "t", 0, "Temperature, K")
	gasCmd.Flags().BoolVar(&gasCelsius, "celsius", false, "Read --temp as degrees Celsius")
	rootCmd.AddCommand(gasCmd)
}

func runGas(cmd *cobra.Command, args []string) error {
	have := map[string]bool{
		"pressure": cmd.Flags().Changed("pressure"),
		"volume":   cmd.Flags().Changed("volume"),
		"moles":    cmd.Flags().Changed("moles"),
		"temp":     cmd.Flags().Changed("temp"),
	}
	given := 0
	missing := ""
	for name, ok := range have {
		if ok {
			given++
		} else {
			missing = name
		}
	}
	if given != 3 {
		return fmt.Errorf("give exactly three of --pressure, --volume, --moles and --temp; got %d", given)
	}
	t := gasT
	if have["temp"] && gasCelsius {
		t += chemcalc.KelvinOffset
	}
	var err error
	switch missing {
	case "pressure":
		gasP, err = chemcalc.GasPressure(gasN, gasV, t)
	case "volume":
		gasV, err = chemcalc.GasVolume(gasN, gasP, t)
	case "moles":
		gasN, err = chemcalc.GasMoles(gasP, gasV, t)
	case "temp":
		t, err = chemcalc.GasTemperature(gasP, gasV, gasN)
	}
	if err != nil {
		return err
	}
	ui.Brand.Println("PV = nRT")
	fmt.Printf("  pressure     %.4g kPa (%.4g atm)\n", gasP, gasP*chemcalc.KPa2Atm)
	fmt.Printf("  volume       %.4g L\n", gasV)
	fmt.Printf("  amount       %.4g mol\n", gasN)
	fmt.Printf("  temperature  %.4g K (%.4g degC)\n", t, t-chemcalc.KelvinOffset)
	return nil
}
