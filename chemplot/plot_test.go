/*
 * plot_test.go
 *
 * Copyright 2026 The verchem authors
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
 *
 */

/*This provides some tests for the drawing functions, in the form of
 * little functions that have practical applications*/

package chemplot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/chem3d"
	"github.com/verchemxyz/verchem-sub008/chemsketch"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

func plotWater() *chem.Diagram {
	D := chem.NewDiagram()
	o := D.AddAtom("O", 200, 150)
	h1 := D.AddAtom("H", 140, 190)
	h2 := D.AddAtom("H", 260, 190)
	D.Connect(o.ID, h1.ID, 1)
	D.Connect(o.ID, h2.ID, 1)
	return D
}

func TestSVGCarriesTheFormula(Te *testing.T) {
	D := plotWater()
	c := vgsvg.New(vg.Points(400), vg.Points(300))
	DrawSketch(draw.New(c), D, nil)
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		Te.Fatalf("svg: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		Te.Errorf("output does not look like SVG")
	}
	if !strings.Contains(out, "H2O") {
		Te.Errorf("formula caption missing from the SVG text")
	}
}

func TestFrameOverlaysRender(Te *testing.T) {
	D := plotWater()
	//a third hydrogen the oxygen cannot take, to get a real refusal
	h3 := D.AddAtom("H", 200, 90)
	res := D.Connect(D.Atom(0).ID, h3.ID, 1)
	if res.Applied() {
		Te.Fatalf("oxygen took a third bond")
	}
	fr := &chemsketch.Frame{
		SelectedAtoms: []int{D.Atom(0).ID},
		SelectedBond:  D.Bond(0).ID,
		Hover:         h3.ID,
		Preview: &chemsketch.Preview{
			FromID: D.Atom(0).ID,
			X1:     200, Y1: 150,
			X2: 200, Y2: 90,
			Target:  h3.ID,
			Allowed: false,
		},
		BlinkPhase: 1.3,
		ShakeAtom:  h3.ID,
		ShakeLeft:  0.2,
		Rejection:  &res,
		Validation: chem.Validate(D),
	}
	c := vgimg.New(vg.Points(400), vg.Points(300))
	DrawFrame(draw.New(c), D, fr, nil)
	var buf bytes.Buffer
	n, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf)
	if err != nil || n == 0 {
		Te.Fatalf("png from frame: %d bytes, %v", n, err)
	}
}

func TestSaveByExtension(Te *testing.T) {
	D := plotWater()
	dir := Te.TempDir()
	for _, ext := range Formats() {
		path := filepath.Join(dir, "water"+ext)
		if err := Save(D, 400, 300, path, nil); err != nil {
			Te.Errorf("save %s: %v", ext, err)
			continue
		}
		fi, err := os.Stat(path)
		if err != nil || fi.Size() == 0 {
			Te.Errorf("save %s left no bytes behind: %v", ext, err)
		}
	}
	//the compressed SVG must actually be gzip
	raw, err := os.ReadFile(filepath.Join(dir, "water.svgz"))
	if err != nil || len(raw) < 2 || raw[0] != 0x1f || raw[1] != 0x8b {
		Te.Errorf("svgz does not start with the gzip magic")
	}
}

func TestSaveRefusals(Te *testing.T) {
	D := plotWater()
	dir := Te.TempDir()
	if err := Save(D, 400, 300, filepath.Join(dir, "water.bmp"), nil); err == nil {
		Te.Errorf("unknown extension should refuse")
	}
	if err := Save(D, 0, 300, filepath.Join(dir, "water.png"), nil); err == nil {
		Te.Errorf("zero width should refuse")
	}
	defer func() {
		if recover() == nil {
			Te.Errorf("nil sketch should panic")
		}
	}()
	c := vgimg.New(vg.Points(10), vg.Points(10))
	DrawSketch(draw.New(c), nil, nil)
}

func TestScene3DSave(Te *testing.T) {
	D := plotWater()
	cam := chem3d.NewCamera()
	cam.Orbit(0.8, 0.4)
	sc := chem3d.Project(D, cam)
	path := filepath.Join(Te.TempDir(), "water3d.png")
	if err := SaveScene3D(sc, 400, 300, path, nil); err != nil {
		Te.Fatalf("save 3d: %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil || fi.Size() == 0 {
		Te.Errorf("3d save left no bytes behind: %v", err)
	}
}
