/*
 * sketch_delete.go, part of verchem.
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
)

var sketchDeleteCmd = &cobra.Command{
	Use:   "delete <name>...",
	Short: "Remove sketches from the sketchbook",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSketchDelete,
}

func init() {
	sketchCmd.AddCommand(sketchDeleteCmd)
}

func runSketchDelete(cmd *cobra.Command, args []string) error {
	B, err := openBook()
	if err != nil {
		return err
	}
	defer B.Close()
	for _, name := range args {
		if err := B.Delete(name); err != nil {
			return err
		}
		fmt.Printf("deleted %q\n", name)
	}
	return nil
}
