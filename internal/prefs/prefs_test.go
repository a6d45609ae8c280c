/*
 * prefs_test.go
 *
 * Copyright 2026 The verchem authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 *
 *
 */

package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(Te *testing.T) {
	p := Default()
	if p.Editor.Element != "C" || p.Editor.Order != 1 || !p.Editor.Snap {
		Te.Errorf("editor defaults came out wrong: %+v", p.Editor)
	}
	if p.Export.Format != ".png" {
		Te.Errorf("export default format %q", p.Export.Format)
	}
	if !p.UI.Color {
		Te.Errorf("color should default on")
	}
}

func TestDirHonorsXDG(Te *testing.T) {
	Te.Setenv("XDG_CONFIG_HOME", "/tmp/test-xdg")
	if got := Dir(); got != "/tmp/test-xdg/verchem" {
		Te.Errorf("expected /tmp/test-xdg/verchem, got %q", got)
	}
	Te.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	if got := Dir(); got != filepath.Join(home, ".config", "verchem") {
		Te.Errorf("fallback dir came out %q", got)
	}
}

func TestSaveAndLoadRoundtrip(Te *testing.T) {
	Te.Setenv("XDG_CONFIG_HOME", Te.TempDir())
	p := Default()
	p.Editor.Element = "N"
	p.Editor.Snap = false
	p.Export.Format = ".svg"
	if err := Save(p); err != nil {
		Te.Fatalf("save: %v", err)
	}
	loaded := Load()
	if loaded.Editor.Element != "N" || loaded.Editor.Snap {
		Te.Errorf("editor prefs lost in roundtrip: %+v", loaded.Editor)
	}
	if loaded.Export.Format != ".svg" {
		Te.Errorf("export format lost in roundtrip: %q", loaded.Export.Format)
	}
}

func TestLoadSanitizes(Te *testing.T) {
	dir := Te.TempDir()
	Te.Setenv("XDG_CONFIG_HOME", dir)
	bad := "[editor]\nelement = \"Unobtainium\"\norder = 9\nwidth = 10\nheight = 10\n[export]\nformat = \".doc\"\nwidth = -4\n"
	if err := os.MkdirAll(filepath.Join(dir, "verchem"), 0o755); err != nil {
		Te.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "verchem", "prefs.toml"), []byte(bad), 0o644); err != nil {
		Te.Fatal(err)
	}
	p := Load()
	if p.Editor.Element != "C" || p.Editor.Order != 1 {
		Te.Errorf("bad tool prefs should fall back: %+v", p.Editor)
	}
	if p.Editor.Width != 960 || p.Editor.Height != 640 {
		Te.Errorf("tiny canvas should fall back: %+v", p.Editor)
	}
	if p.Export.Format != ".png" || p.Export.Width != 1200 {
		Te.Errorf("bad export prefs should fall back: %+v", p.Export)
	}
}

func TestEnsureExists(Te *testing.T) {
	dir := Te.TempDir()
	Te.Setenv("XDG_CONFIG_HOME", dir)
	if err := EnsureExists(); err != nil {
		Te.Fatalf("first call: %v", err)
	}
	path := filepath.Join(dir, "verchem", "prefs.toml")
	if _, err := os.Stat(path); err != nil {
		Te.Errorf("prefs file not created: %v", err)
	}
	if err := EnsureExists(); err != nil {
		Te.Fatalf("second call should be a no-op: %v", err)
	}
}
