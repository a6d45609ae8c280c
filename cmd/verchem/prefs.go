/*
 * prefs.go, part of verchem.
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
	"strings"

	"github.com/spf13/cobra"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/chemplot"
	"github.com/verchemxyz/verchem-sub008/internal/prefs"
	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show the effective settings",
	Long: `Show the effective settings: the preference file merged over the
defaults. The file itself lives in the usual config directory and is
plain TOML, editable by hand.`,
	Args: cobra.NoArgs,
	RunE: runPrefs,
}

var prefsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the preference file with the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := prefs.EnsureExists(); err != nil {
			return err
		}
		fmt.Printf("preferences live in %s\n", prefs.Dir())
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save the file. Keys:

  element      palette element symbol (element set N)
  order        palette bond order, 1 to 3
  snap         grid snapping, on or off
  canvas       editor surface, WIDTHxHEIGHT (canvas set 960x640)
  format       export picture format (` + strings.Join(chemplot.Formats(), ", ") + `)
  export-size  export picture size, WIDTHxHEIGHT
  color        colored terminal output, on or off`,
	Args: cobra.ExactArgs(2),
	RunE: runPrefsSet,
}

func init() {
	prefsCmd.AddCommand(prefsInitCmd, prefsSetCmd)
	rootCmd.AddCommand(prefsCmd)
}

func runPrefs(cmd *cobra.Command, args []string) error {
	p := prefs.Load()
	ui.Brand.Println("editor")
	fmt.Printf("  element  %s\n", p.Editor.Element)
	fmt.Printf("  order    %d\n", p.Editor.Order)
	fmt.Printf("  snap     %v\n", p.Editor.Snap)
	fmt.Printf("  canvas   %dx%d\n", p.Editor.Width, p.Editor.Height)
	ui.Brand.Println("export")
	fmt.Printf("  format   %s\n", p.Export.Format)
	fmt.Printf("  size     %dx%d\n", p.Export.Width, p.Export.Height)
	ui.Brand.Println("ui")
	fmt.Printf("  color    %v\n", p.UI.Color)
	ui.Subtle.Printf("file: %s\n", prefs.Dir())
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	p := prefs.Load()
	switch key {
	case "element":
		if !chem.KnownSymbol(value) {
			return fmt.Errorf("%q is not in the sketcher palette", value)
		}
		p.Editor.Element = value
	case "order":
		n, err := strconv.Atoi(value)
		if err != nil || n < chem.MinOrder || n > chem.MaxOrder {
			return fmt.Errorf("bond order %q is not between %d and %d", value, chem.MinOrder, chem.MaxOrder)
		}
		p.Editor.Order = n
	case "snap":
		on, err := onOff(value)
		if err != nil {
			return err
		}
		p.Editor.Snap = on
	case "canvas":
		w, h, err := parseSize(value)
		if err != nil {
			return err
		}
		p.Editor.Width, p.Editor.Height = w, h
	case "format":
		ext := strings.ToLower(value)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		found := false
		for _, f := range chemplot.Formats() {
			if f == ext {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("can't export %q files; the choices are %s", value, strings.Join(chemplot.Formats(), ", "))
		}
		p.Export.Format = ext
	case "export-size":
		w, h, err := parseSize(value)
		if err != nil {
			return err
		}
		p.Export.Width, p.Export.Height = w, h
	case "color":
		on, err := onOff(value)
		if err != nil {
			return err
		}
		p.UI.Color = on
	default:
		return fmt.Errorf("no setting called %q; see verchem prefs set --help", key)
	}
	if err := prefs.Save(p); err != nil {
		return err
	}
	fmt.Printf("set %s to %s\n", key, value)
	return nil
}

func onOff(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("%q should be on or off", v)
}

func parseSize(v string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(strings.ToLower(v), "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%q should look like 1200x800", v)
	}
	return w, h, nil
}
