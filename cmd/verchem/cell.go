/*
 * cell.go, part of verchem.
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
	cellQ    float64
	cellTemp float64
)

var cellCmd = &cobra.Command{
	Use:   "cell <cathode couple> <anode couple>",
	Short: "Potential of an electrochemical cell",
	Long: `Potential of a cell built from two half-reactions of the data
book. Couples can be named in full ("Cu2+/Cu") or by either species.
Give --q for conditions away from standard and the Nernst correction
is applied.

Examples:
  verchem cell Cu2+/Cu Zn2+/Zn
  verchem cell Ag+/Ag zn --q 0.01`,
	Args: cobra.ExactArgs(2),
	RunE: runCell,
}

func init() {
	cellCmd.Flags().Float64Var(&cellQ, "q", 1, "Reaction quotient")
	cellCmd.Flags().Float64Var(&cellTemp, "temp", chemcalc.StandardTemp, "Temperature, K")
	rootCmd.AddCommand(cellCmd)
}

func runCell(cmd *cobra.Command, args []string) error {
	e0, n, err := chemcalc.StandardCell(args[0], args[1])
	if err != nil {
		return err
	}
	ui.Brand.Printf("E0 = %.3f V\n", e0)
	if e0 > 0 {
		fmt.Printf("  %s spontaneous as written\n", ui.StatusIcon(true))
	} else {
		fmt.Printf("  %s not spontaneous as written; the reverse cell is\n", ui.StatusIcon(false))
	}
	if n == 0 {
		fmt.Printf("  %s the half-reactions move different numbers of electrons;\n", ui.WarnIcon())
		fmt.Println("    balance them before using the Nernst equation or K")
		return nil
	}
	fmt.Printf("  electrons    %d\n", n)
	if cmd.Flags().Changed("q") || cmd.Flags().Changed("temp") {
		e, err := chemcalc.CellPotential(e0, n, cellQ, cellTemp)
		if err != nil {
			return err
		}
		fmt.Printf("  E at Q=%g, %g K: %.4f V\n", cellQ, cellTemp, e)
	}
	k, err := chemcalc.KFromPotential(e0, n, cellTemp)
	if err != nil {
		return err
	}
	fmt.Printf("  equilibrium  K = %.3g\n", k)
	return nil
}
