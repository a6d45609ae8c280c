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

//Package prefs keeps the user's verchem settings in the usual place, an
//XDG config directory with a TOML file a teacher can edit by hand.
package prefs

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/chemplot"
)

//Prefs holds everything verchem remembers between runs.
type Prefs struct {
	Editor EditorPrefs `toml:"editor"`
	Export ExportPrefs `toml:"export"`
	UI     UIPrefs     `toml:"ui"`
}

//EditorPrefs seeds a fresh sketcher: the starting tool and canvas size.
type EditorPrefs struct {
	Element string `toml:"element"`
	Order   int    `toml:"order"`
	Snap    bool   `toml:"snap"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
}

//ExportPrefs controls what `verchem sketch export` writes when the
//command line doesn't say.
type ExportPrefs struct {
	Format string `toml:"format"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

//UIPrefs controls terminal output.
type UIPrefs struct {
	Color bool `toml:"color"`
}

//Default returns the settings a fresh install starts from.
func Default() *Prefs {
	return &Prefs{
		Editor: EditorPrefs{Element: "C", Order: 1, Snap: true, Width: 960, Height: 640},
		Export: ExportPrefs{Format: ".png", Width: 1200, Height: 800},
		UI:     UIPrefs{Color: true},
	}
}

//Dir returns the verchem config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "verchem")
}

func prefsPath() string {
	return filepath.Join(Dir(), "prefs.toml")
}

//Load reads the prefs file, falling back to defaults if it doesn't
//exist or doesn't parse. Values the rest of the program can't work
//with (an element off the palette, a bond order the table never
//allows, an export format without a canvas) are put back to their
//defaults rather than reported.
func Load() *Prefs {
	p := Default()
	data, err := os.ReadFile(prefsPath())
	if err != nil {
		return p
	}
	_ = toml.Unmarshal(data, p)
	sanitize(p)
	return p
}

func sanitize(p *Prefs) {
	d := Default()
	if !chem.KnownSymbol(p.Editor.Element) {
		p.Editor.Element = d.Editor.Element
	}
	if p.Editor.Order < chem.MinOrder || p.Editor.Order > chem.MaxOrder {
		p.Editor.Order = d.Editor.Order
	}
	if p.Editor.Width < 200 || p.Editor.Height < 200 {
		p.Editor.Width, p.Editor.Height = d.Editor.Width, d.Editor.Height
	}
	ok := false
	for _, ext := range chemplot.Formats() {
		if p.Export.Format == ext {
			ok = true
			break
		}
	}
	if !ok {
		p.Export.Format = d.Export.Format
	}
	if p.Export.Width <= 0 || p.Export.Height <= 0 {
		p.Export.Width, p.Export.Height = d.Export.Width, d.Export.Height
	}
}

//Save writes the prefs to disk, creating the directory if needed.
func Save(p *Prefs) error {
	path := prefsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(p)
}

//EnsureExists creates the prefs file with defaults if it doesn't exist.
func EnsureExists() error {
	if _, err := os.Stat(prefsPath()); err == nil {
		return nil
	}
	return Save(Default())
}
