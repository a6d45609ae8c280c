/*
 * ph.go, part of verchem.
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

	"github.com/verchemxyz/verchem-sub008/chemcalc"
	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

var phCmd = &cobra.Command{
	Use:   "ph",
	Short: "pH of acids, bases and buffers",
	Long: `pH calculations at 25 degrees. Strong species dissociate fully;
give a Ka or Kb to treat the species as weak instead.

Examples:
  verchem ph acid 0.1
  verchem ph acid 0.1 1.8e-5
  verchem ph base 0.05
  verchem ph buffer 4.74 0.1 0.1`,
}

var phAcidCmd = &cobra.Command{
	Use:   "acid <concentration> [Ka]",
	Short: "pH of an acid solution",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runPHAcid,
}

var phBaseCmd = &cobra.Command{
	Use:   "base <concentration> [Kb]",
	Short: "pH of a base solution",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runPHBase,
}

var phBufferCmd = &cobra.Command{
	Use:   "buffer <pKa> <acid conc> <base conc>",
	Short: "pH of a buffer, by Henderson-Hasselbalch",
	Args:  cobra.ExactArgs(3),
	RunE:  runPHBuffer,
}

func init() {
	phCmd.AddCommand(phAcidCmd, phBaseCmd, phBufferCmd)
	rootCmd.AddCommand(phCmd)
}

func parseNum(what, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("couldn't read %q as %s", s, what)
	}
	return v, nil
}

func runPHAcid(cmd *cobra.Command, args []string) error {
	conc, err := parseNum("a concentration in mol/L", args[0])
	if err != nil {
		return err
	}
	var ph float64
	if len(args) == 2 {
		ka, err := parseNum("a Ka", args[1])
		if err != nil {
			return err
		}
		ph, err = chemcalc.WeakAcidPH(conc, ka)
		if err != nil {
			return err
		}
		pka, _ := chemcalc.PKa(ka)
		fmt.Printf("weak acid, %g mol/L, Ka %g (pKa %.2f)\n", conc, ka, pka)
	} else {
		ph, err = chemcalc.StrongAcidPH(conc)
		if err != nil {
			return err
		}
		fmt.Printf("strong acid, %g mol/L\n", conc)
	}
	printPH(ph)
	return nil
}

func runPHBase(cmd *cobra.Command, args []string) error {
	conc, err := parseNum("a concentration in mol/L", args[0])
	if err != nil {
		return err
	}
	var ph float64
	if len(args) == 2 {
		kb, err := parseNum("a Kb", args[1])
		if err != nil {
			return err
		}
		ph, err = chemcalc.WeakBasePH(conc, kb)
		if err != nil {
			return err
		}
		fmt.Printf("weak base, %g mol/L, Kb %g\n", conc, kb)
	} else {
		ph, err = chemcalc.StrongBasePH(conc)
		if err != nil {
			return err
		}
		fmt.Printf("strong base, %g mol/L\n", conc)
	}
	printPH(ph)
	return nil
}

func runPHBuffer(cmd *cobra.Command, args []string) error {
	pka, err := parseNum("a pKa", args[0])
	if err != nil {
		return err
	}
	acid, err := parseNum("the acid concentration in mol/L", args[1])
	if err != nil {
		return err
	}
	base, err := parseNum("the base concentration in mol/L", args[2])
	if err != nil {
		return err
	}
	ph, err := chemcalc.BufferPH(pka, acid, base)
	if err != nil {
		return err
	}
	fmt.Printf("buffer, pKa %.2f, acid %g mol/L, base %g mol/L\n", pka, acid, base)
	printPH(ph)
	return nil
}

func printPH(ph float64) {
	ui.Brand.Printf("pH %.2f\n", ph)
	fmt.Printf("  pOH   %.2f\n", 14-ph)
	fmt.Printf("  [H+]  %.3g mol/L\n", chemcalc.HFromPH(ph))
	switch {
	case ph < 6.95:
		fmt.Println("  acidic")
	case ph > 7.05:
		fmt.Println("  basic")
	default:
		fmt.Println("  neutral, near enough")
	}
}
