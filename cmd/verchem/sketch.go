/*
 * sketch.go, part of verchem.
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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/internal/prefs"
	"github.com/verchemxyz/verchem-sub008/internal/sketchbook"
)

var sketchCmd = &cobra.Command{
	Use:   "sketch",
	Short: "Work with the sketchbook of saved molecules",
	Long: `Work with the sketchbook, the file where the editor keeps saved
molecules. Sketches go in by name and come out as live diagrams, so they
can be rendered, exported or explained without the editor running.`,
}

func init() {
	rootCmd.AddCommand(sketchCmd)
}

//bookPath returns the sketchbook location: the VERCHEM_SKETCHBOOK
//environment variable when set, else a file next to the preferences.
func bookPath() string {
	if p := os.Getenv("VERCHEM_SKETCHBOOK"); p != "" {
		return p
	}
	return filepath.Join(prefs.Dir(), "sketchbook.db")
}

func openBook() (*sketchbook.Book, error) {
	return sketchbook.Open(bookPath())
}

//loadSketch opens the sketchbook just long enough to rebuild one sketch.
func loadSketch(name string) (*chem.Diagram, error) {
	B, err := openBook()
	if err != nil {
		return nil, err
	}
	defer B.Close()
	return B.Load(name)
}
