/*
 * sketch_list.go, part of verchem.
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

	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

var sketchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the saved sketches",
	Args:  cobra.NoArgs,
	RunE:  runSketchList,
}

func init() {
	sketchCmd.AddCommand(sketchListCmd)
}

func runSketchList(cmd *cobra.Command, args []string) error {
	B, err := openBook()
	if err != nil {
		return err
	}
	defer B.Close()
	entries, err := B.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("The sketchbook is empty. Try: verchem sketch demo water")
		return nil
	}
	rows := make([][]string, 0, len(entries))
	for _, en := range entries {
		rows = append(rows, []string{
			en.Name,
			en.Formula,
			ui.StatusIcon(en.Stable),
			strconv.Itoa(en.Atoms),
			strconv.Itoa(en.Bonds),
			en.Updated.Format("2006-01-02 15:04"),
		})
	}
	ui.Table([]string{"NAME", "FORMULA", "OK", "ATOMS", "BONDS", "UPDATED"}, rows)
	return nil
}
