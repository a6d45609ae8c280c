/*
 * sketch_export.go, part of verchem.
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
	"os"

	"github.com/spf13/cobra"

	"github.com/verchemxyz/verchem-sub008/chemjson"
)

var sketchExportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Write a saved sketch out as a scene file",
	Long: `Write a saved sketch out as a scene file: the same line-per-record
JSON that travels the wire protocol, readable by import and by any host.
Use "-" as the file to write to standard output.`,
	Args: cobra.ExactArgs(2),
	RunE: runSketchExport,
}

func init() {
	sketchCmd.AddCommand(sketchExportCmd)
}

func runSketchExport(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]
	D, err := loadSketch(name)
	if err != nil {
		return err
	}
	sc := chemjson.FromSketch(D, nil)
	if path == "-" {
		if jerr := sc.Transmit(os.Stdout); jerr != nil {
			return jerr
		}
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if jerr := sc.Transmit(f); jerr != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, jerr)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("exported %q to %s (%s)\n", name, path, sc.Header.Formula)
	return nil
}
