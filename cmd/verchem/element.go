/*
 * element.go, part of verchem.
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
	"strconv"

	"github.com/spf13/cobra"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/chemref"
	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

var elementList bool

var elementCmd = &cobra.Command{
	Use:   "element <symbol or number>",
	Short: "Look up an element in the data book",
	Long: `Look up an element in the data book, by symbol or by atomic
number.

Examples:
  verchem element O
  verchem element 26
  verchem element --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runElement,
}

func init() {
	elementCmd.Flags().BoolVar(&elementList, "list", false, "List every element in the data book")
	rootCmd.AddCommand(elementCmd)
}

func runElement(cmd *cobra.Command, args []string) error {
	if elementList {
		rows := [][]string{}
		for _, el := range chemref.Elements() {
			rows = append(rows, []string{
				strconv.Itoa(el.Number),
				el.Symbol,
				el.Name,
				fmt.Sprintf("%.3f", el.Mass),
				el.Category,
			})
		}
		ui.Table([]string{"Z", "SYMBOL", "NAME", "MASS", "CATEGORY"}, rows)
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("give an element symbol or atomic number, or --list")
	}
	var el *chemref.Element
	var err error
	if n, aerr := strconv.Atoi(args[0]); aerr == nil {
		el, err = chemref.ElementByNumber(n)
	} else {
		el, err = chemref.ElementBySymbol(args[0])
	}
	if err != nil {
		return err
	}
	ui.Brand.Printf("%s (%s)\n", el.Name, el.Symbol)
	fmt.Printf("  atomic number      %d\n", el.Number)
	fmt.Printf("  atomic mass        %.3f g/mol\n", el.Mass)
	fmt.Printf("  period %d, group %d\n", el.Period, el.Group)
	fmt.Printf("  category           %s\n", el.Category)
	if el.Electronegativity > 0 {
		fmt.Printf("  electronegativity  %.2f (Pauling)\n", el.Electronegativity)
	}
	if chem.KnownSymbol(el.Symbol) {
		ui.Subtle.Printf("  in the sketcher palette, valence %d\n", chem.Valence(el.Symbol))
	}
	return nil
}
