/*
 * potential.go, part of verchem.
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

	"github.com/verchemxyz/verchem-sub008/chemref"
	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

var potentialCmd = &cobra.Command{
	Use:   "potential [couple or species]",
	Short: "Standard reduction potentials from the data book",
	Long: `The standard reduction potentials of the data book, most easily
oxidized first. Give a couple ("Cu2+/Cu") or one of its species ("Cu")
to look up a single half-reaction.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPotential,
}

func init() {
	rootCmd.AddCommand(potentialCmd)
}

func halfReaction(p *chemref.Potential) string {
	return fmt.Sprintf("%s + %de- -> %s", p.Oxidized, p.Electrons, p.Reduced)
}

func runPotential(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		p, err := chemref.PotentialFor(args[0])
		if err != nil {
			return err
		}
		ui.Brand.Printf("%s\n", p.Couple)
		fmt.Printf("  %s\n", halfReaction(p))
		fmt.Printf("  E0 = %+.2f V\n", p.Potential)
		return nil
	}
	rows := [][]string{}
	for _, p := range chemref.Potentials() {
		rows = append(rows, []string{p.Couple, halfReaction(&p), fmt.Sprintf("%+.2f", p.Potential)})
	}
	ui.Table([]string{"COUPLE", "HALF-REACTION", "E0 / V"}, rows)
	return nil
}
