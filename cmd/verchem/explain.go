/*
 * explain.go, part of verchem.
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
	"strings"

	"github.com/spf13/cobra"

	"github.com/verchemxyz/verchem-sub008/chemgraph"
	"github.com/verchemxyz/verchem-sub008/chemtutor"
	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

var explainAtoms bool

var explainCmd = &cobra.Command{
	Use:   "explain <sketch name>",
	Short: "Explain a saved sketch in words",
	Long: `Explain a saved sketch the way the tutor pane of the editor
would: what the molecule is, which atoms are settled and which still
need attention, and why. With --atoms, walk through the electron
arithmetic of every atom.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().BoolVar(&explainAtoms, "atoms", false, "Walk through every atom's electron arithmetic")
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	D, err := loadSketch(args[0])
	if err != nil {
		return err
	}
	text, err := chemtutor.ExplainSketch(D)
	if err != nil {
		return err
	}
	ui.Brand.Printf("%s\n", args[0])
	fmt.Println(text)
	if formulas := chemgraph.FragmentFormulas(D); len(formulas) > 1 {
		fmt.Printf("\nThe canvas holds %d separate molecules: %s.\n",
			len(formulas), strings.Join(formulas, ", "))
	}
	if !explainAtoms {
		return nil
	}
	for i := 0; i < D.Len(); i++ {
		at := D.Atom(i)
		deep, err := chemtutor.ExplainAtom(D, at.ID)
		if err != nil {
			return err
		}
		ui.Subtle.Printf("--- atom %d ---\n", at.ID)
		fmt.Println(deep)
	}
	return nil
}
