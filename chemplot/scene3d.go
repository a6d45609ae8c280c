/*
 * scene3d.go, part of verchem.
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
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/verchemxyz/verchem-sub008/chem3d"
)

//DrawScene3D paints a projected 3D scene in the middle of the canvas.
//The scene's display lists come depth-sorted; atoms and bonds are merged
//back-to-front so nearer pieces cover farther ones.
func DrawScene3D(dc draw.Canvas, sc *chem3d.Scene, sty *Style) {
	if sc == nil {
		panic("Given nil data")
	}
	if sty == nil {
		sty = DefaultStyle()
	}
	fillBackground(dc, sty.Background)
	s := &scene{dc: dc, sty: sty}
	center := vg.Point{
		X: (dc.Min.X + dc.Max.X) / 2,
		Y: (dc.Min.Y + dc.Max.Y) / 2,
	}
	ai, bi := 0, 0
	for ai < len(sc.Atoms) || bi < len(sc.Bonds) {
		if bi >= len(sc.Bonds) || (ai < len(sc.Atoms) && sc.Atoms[ai].Depth <= sc.Bonds[bi].Depth) {
			s.atom3d(sc.Atoms[ai], center)
			ai++
		} else {
			s.bond3d(sc.Bonds[bi], center)
			bi++
		}
	}
}

func (s *scene) at3d(x, y float64, c vg.Point) vg.Point {
	return vg.Point{X: c.X + vg.Length(x), Y: c.Y - vg.Length(y)}
}

func (s *scene) bond3d(bv chem3d.BondView, c vg.Point) {
	p1 := s.at3d(bv.X1, bv.Y1, c)
	p2 := s.at3d(bv.X2, bv.Y2, c)
	s.strokeParallel(s.sty.Bond, p1, p2, bv.Order)
}

func (s *scene) atom3d(av chem3d.AtomView, c vg.Point) {
	p := s.at3d(av.X, av.Y, c)
	r := s.sty.AtomRadius * vg.Length(av.Scale)
	if r < vg.Points(0.5) {
		r = vg.Points(0.5)
	}
	s.dc.DrawGlyph(draw.GlyphStyle{Color: cpk(av.Symbol), Radius: r, Shape: draw.CircleGlyph{}}, p)
	s.dc.DrawGlyph(draw.GlyphStyle{Color: s.sty.Bond.Color, Radius: r, Shape: draw.RingGlyph{}}, p)
	//tiny far-away discs keep their color but lose the lettering
	if r >= vg.Points(6) {
		s.dc.FillText(s.sty.textStyle(labelColor(av.Symbol), s.sty.LabelSize*vg.Length(av.Scale)), p, av.Symbol)
	}
}
