/*
 * save.go, part of verchem.
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

package chemplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/chem3d"
	"github.com/verchemxyz/verchem-sub008/chemsketch"
)

//Formats lists the file extensions Save knows how to write.
func Formats() []string {
	return []string{".png", ".jpg", ".jpeg", ".tif", ".tiff", ".svg", ".svgz", ".pdf", ".eps"}
}

//Save renders the sketch and writes it to path. The format is taken
//from the extension; Formats lists the choices. Width and height are in
//points for the vector formats and pixels for the raster ones.
func Save(S chem.Bonder, width, height float64, path string, sty *Style) error {
	return saveDrawing(func(dc draw.Canvas) { DrawSketch(dc, S, sty) }, width, height, path)
}

//SaveFrame renders the sketch with its editor feedback overlaid, the way
//a student saw it, and writes it to path. Useful for worksheets that show
//an editing step mid-gesture.
func SaveFrame(S chem.Bonder, fr chemsketch.Frame, width, height float64, path string, sty *Style) error {
	return saveDrawing(func(dc draw.Canvas) { DrawFrame(dc, S, &fr, sty) }, width, height, path)
}

//SaveScene3D renders a projected 3D scene and writes it to path, with
//the same format choices as Save.
func SaveScene3D(sc *chem3d.Scene, width, height float64, path string, sty *Style) error {
	return saveDrawing(func(dc draw.Canvas) { DrawScene3D(dc, sc, sty) }, width, height, path)
}

func saveDrawing(paint func(draw.Canvas), width, height float64, path string) error {
	w := vg.Length(width)
	h := vg.Length(height)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("chemplot: canvas size %gx%g is not drawable", width, height)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !isInString(Formats(), ext) {
		return fmt.Errorf("chemplot: no canvas for %q files", ext)
	}
	var target io.WriterTo
	switch ext {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		//72 dpi makes one point one pixel, so raster sizes mean what callers think
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72))
		paint(draw.New(c))
		switch ext {
		case ".png":
			target = vgimg.PngCanvas{Canvas: c}
		case ".jpg", ".jpeg":
			target = vgimg.JpegCanvas{Canvas: c}
		default:
			target = vgimg.TiffCanvas{Canvas: c}
		}
	case ".svg", ".svgz":
		c := vgsvg.New(w, h)
		paint(draw.New(c))
		target = c
	case ".pdf":
		c := vgpdf.New(w, h)
		paint(draw.New(c))
		target = c
	case ".eps":
		c := vgeps.New(w, h)
		paint(draw.New(c))
		target = c
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	var out io.Writer = f
	var zw *gzip.Writer
	if ext == ".svgz" {
		zw = gzip.NewWriter(f)
		out = zw
	}
	if _, err := target.WriteTo(out); err != nil {
		f.Close()
		return err
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
