/*
 * sketch_import.go, part of verchem.
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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/chemjson"
	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

var importName string

var sketchImportCmd = &cobra.Command{
	Use:   "import <scene file>",
	Short: "Import a scene file into the sketchbook",
	Long: `Import a scene file, as written by export or by any host speaking
the wire protocol, into the sketchbook. The sketch is rebuilt through the
same rules as hand drawing, so a file that asks for impossible chemistry
is refused rather than stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runSketchImport,
}

func init() {
	sketchImportCmd.Flags().StringVar(&importName, "name", "", "Name to save under (default: the file name)")
	sketchCmd.AddCommand(sketchImportCmd)
}

func runSketchImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	sc, jerr := chemjson.DecodeScene(bufio.NewReader(f))
	if jerr != nil {
		return fmt.Errorf("reading %s: %w", path, jerr)
	}
	D, _, jerr := sc.Rebuild()
	if jerr != nil {
		return fmt.Errorf("rebuilding %s: %w", path, jerr)
	}
	name := importName
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	B, err := openBook()
	if err != nil {
		return err
	}
	defer B.Close()
	if err := B.Save(name, D); err != nil {
		return err
	}
	val := chem.Validate(D)
	fmt.Printf("%s imported %s as %q (%s, %d atoms, %d bonds)\n",
		ui.StatusIcon(val.Stable), path, name, val.Formula, D.Len(), D.NBonds())
	return nil
}
