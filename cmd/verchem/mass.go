/*
 * mass.go, part of verchem.
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
	"sort"

	"github.com/spf13/cobra"

	"github.com/verchemxyz/verchem-sub008/chemcalc"
	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

var (
	massGrams       float64
	massMoles       float64
	massComposition bool
)

var massCmd = &cobra.Command{
	Use:   "mass <formula>",
	Short: "Molar mass and mole arithmetic for a formula",
	Long: `Work out the molar mass of a formula, and optionally convert a
sample between grams and moles or break the mass down by element.

Examples:
  verchem mass H2O
  verchem mass "Ca(OH)2" --composition
  verchem mass C6H12O6 --grams 10`,
	Args: cobra.ExactArgs(1),
	RunE: runMass,
}

func init() {
	massCmd.Flags().Float64Var(&massGrams, "grams", 0, "Convert this many grams of the substance to moles")
	massCmd.Flags().Float64Var(&massMoles, "moles", 0, "Convert this many moles of the substance to grams")
	massCmd.Flags().BoolVarP(&massComposition, "composition", "c", false, "Mass percent of each element")
	rootCmd.AddCommand(massCmd)
}

func runMass(cmd *cobra.Command, args []string) error {
	formula := args[0]
	mm, err := chemcalc.MolarMass(formula)
	if err != nil {
		return err
	}
	ui.Brand.Printf("%s\n", formula)
	fmt.Printf("  molar mass  %.3f g/mol\n", mm)
	if massGrams > 0 {
		moles, err := chemcalc.MolesOf(massGrams, formula)
		if err != nil {
			return err
		}
		fmt.Printf("  %g g is %.4g mol (%.3g particles)\n",
			massGrams, moles, moles*chemcalc.Avogadro)
	}
	if massMoles > 0 {
		grams, err := chemcalc.GramsOf(massMoles, formula)
		if err != nil {
			return err
		}
		fmt.Printf("  %g mol weighs %.4g g\n", massMoles, grams)
	}
	if massComposition {
		comp, err := chemcalc.PercentComposition(formula)
		if err != nil {
			return err
		}
		symbols := make([]string, 0, len(comp))
		for sym := range comp {
			symbols = append(symbols, sym)
		}
		sort.Slice(symbols, func(i, j int) bool { return comp[symbols[i]] > comp[symbols[j]] })
		fmt.Println()
		rows := [][]string{}
		for _, sym := range symbols {
			rows = append(rows, []string{sym, fmt.Sprintf("%.2f%%", comp[sym])})
		}
		ui.Table([]string{"ELEMENT", "BY MASS"}, rows)
	}
	return nil
}
