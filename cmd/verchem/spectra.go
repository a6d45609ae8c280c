/*
 * spectra.go, part of verchem.
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

var spectraCmd = &cobra.Command{
	Use:   "spectra",
	Short: "Characteristic IR and NMR ranges from the data book",
}

var spectraIRCmd = &cobra.Command{
	Use:   "ir [wavenumber]",
	Short: "Infrared absorption bands, cm-1",
	Long: `The characteristic infrared bands of the data book. Give a
wavenumber to see only the groups that absorb there.

Examples:
  verchem spectra ir
  verchem spectra ir 1700`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSpectraIR,
}

var spectraNMRCmd = &cobra.Command{
	Use:   "nmr [shift]",
	Short: "1H NMR chemical shifts, ppm",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSpectraNMR,
}

func init() {
	spectraCmd.AddCommand(spectraIRCmd, spectraNMRCmd)
	rootCmd.AddCommand(spectraCmd)
}

func irRows(bands []chemref.IRBand) [][]string {
	rows := make([][]string, 0, len(bands))
	for _, b := range bands {
		rows = append(rows, []string{
			b.Group,
			b.Bond,
			fmt.Sprintf("%.0f-%.0f", b.Low, b.High),
			b.Intensity,
			b.Shape,
		})
	}
	return rows
}

func runSpectraIR(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		ui.Table([]string{"GROUP", "BOND", "RANGE cm-1", "INTENSITY", "SHAPE"},
			irRows(chemref.IRBands()))
		return nil
	}
	wn, err := parseNum("a wavenumber in cm-1", args[0])
	if err != nil {
		return err
	}
	bands := chemref.IRNear(wn)
	if len(bands) == 0 {
		fmt.Printf("nothing in the data book absorbs near %g cm-1\n", wn)
		return nil
	}
	ui.Table([]string{"GROUP", "BOND", "RANGE cm-1", "INTENSITY", "SHAPE"}, irRows(bands))
	return nil
}

func nmrRows(shifts []chemref.NMRShift) [][]string {
	rows := make([][]string, 0, len(shifts))
	for _, s := range shifts {
		rows = append(rows, []string{s.Environment, fmt.Sprintf("%.1f-%.1f", s.Low, s.High)})
	}
	return rows
}

func runSpectraNMR(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		ui.Table([]string{"ENVIRONMENT", "SHIFT ppm"}, nmrRows(chemref.NMRShifts()))
		return nil
	}
	ppm, err := parseNum("a shift in ppm", args[0])
	if err != nil {
		return err
	}
	shifts := chemref.NMRNear(ppm)
	if len(shifts) == 0 {
		fmt.Printf("nothing in the data book resonates near %g ppm\n", ppm)
		return nil
	}
	ui.Table([]string{"ENVIRONMENT", "SHIFT ppm"}, nmrRows(shifts))
	return nil
}
