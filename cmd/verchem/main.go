/*
 * main.go, part of verchem.
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

//Package main is the verchem command line: the data book, the
//calculators and the sketchbook of the verchem teaching toolkit,
//usable without the graphical editor on top.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/verchemxyz/verchem-sub008/internal/prefs"
	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

//Version is set at build time via ldflags.
var Version = "dev"

var noColor bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Bad.Sprint("verchem:"), err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "verchem",
	Short: "Chemistry data book, calculators and sketchbook",
	Long: `verchem is the command-line side of the verchem chemistry teaching
toolkit. It looks things up in the same data book the graphical editor
uses, runs the usual first-year calculations, and manages the sketchbook
of saved molecules, so lesson material can be prepared and checked
without opening the editor at all.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Plain output without colors")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColor || !prefs.Load().UI.Color {
			color.NoColor = true
		}
	}
}
