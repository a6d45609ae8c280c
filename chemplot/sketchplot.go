/*
 * sketchplot.go, part of verchem.
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

/*Package chemplot paints verchem sketches. It draws on the plot/vg
drawing stack so the same code renders to a window backing image, a PNG,
an SVG for the class wiki or a PDF for the handout. The package knows
nothing about pointer events; it consumes the sketch read interface and,
optionally, a presentation Frame from the sketcher, and paints what it
is given.*/
package chemplot

import (
	"fmt"
	"image/color"
	"math"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/chemsketch"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//scene carries the per-call drawing context around the helpers: the
//canvas, the style, and an id lookup for bond endpoints.
type scene struct {
	dc  draw.Canvas
	sty *Style
	ids map[int]*chem.Atom
}

//pt maps sketch coordinates (y growing downward, origin top-left) onto
//the canvas (y growing upward).
func (s *scene) pt(x, y float64) vg.Point {
	return vg.Point{X: s.dc.Min.X + vg.Length(x), Y: s.dc.Max.Y - vg.Length(y)}
}

//DrawSketch paints the molecule alone: bonds, element discs, bookkeeping
//badges and the formula caption. This is what exports use.
func DrawSketch(dc draw.Canvas, S chem.Bonder, sty *Style) {
	render(dc, S, nil, sty)
}

//DrawFrame paints the molecule together with one instant of the
//sketcher's presentation state: selection halos, the hover ring, the
//rubber-band preview, the unstable-atom pulse and the refusal shake.
//Hosts call it once per animation tick with a fresh Frame.
func DrawFrame(dc draw.Canvas, S chem.Bonder, fr *chemsketch.Frame, sty *Style) {
	render(dc, S, fr, sty)
}

func render(dc draw.Canvas, S chem.Bonder, fr *chemsketch.Frame, sty *Style) {
	if S == nil {
		panic("Given nil data")
	}
	if sty == nil {
		sty = DefaultStyle()
	}
	fillBackground(dc, sty.Background)
	s := &scene{dc: dc, sty: sty, ids: make(map[int]*chem.Atom, S.Len())}
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		s.ids[at.ID] = at
	}
	var val *chem.ValidationResult
	if fr != nil {
		val = fr.Validation
	}
	if val == nil {
		val = chem.Validate(S)
	}
	selBond := -1
	if fr != nil {
		selBond = fr.SelectedBond
	}
	for i := 0; i < S.NBonds(); i++ {
		b := S.Bond(i)
		s.strokeBond(b, b.ID == selBond)
	}
	if fr != nil && fr.Preview != nil {
		s.drawPreview(fr.Preview)
	}
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		s.drawAtom(at, val.Report(at.ID), fr)
	}
	s.captions(val, fr)
}

//strokeBond draws one bond, spreading double and triple bonds into
//parallel strokes. A selected bond gets a wider halo stroke underneath.
func (s *scene) strokeBond(b *chem.Bond, selected bool) {
	a1 := s.ids[b.A1]
	a2 := s.ids[b.A2]
	if a1 == nil || a2 == nil {
		return
	}
	p1 := s.pt(a1.X, a1.Y)
	p2 := s.pt(a2.X, a2.Y)
	if selected {
		halo := s.sty.Bond
		halo.Color = s.sty.Selection
		halo.Width = s.sty.Bond.Width + vg.Points(3)
		s.strokeParallel(halo, p1, p2, b.Order)
	}
	s.strokeParallel(s.sty.Bond, p1, p2, b.Order)
}

func (s *scene) strokeParallel(ls draw.LineStyle, p1, p2 vg.Point, order int) {
	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	//unit normal, along which the strokes of a multiple bond spread
	ox := vg.Length(-dy / n)
	oy := vg.Length(dx / n)
	gap := s.sty.BondGap
	var offs []vg.Length
	switch order {
	case 2:
		offs = []vg.Length{-gap / 2, gap / 2}
	case 3:
		offs = []vg.Length{-gap, 0, gap}
	default:
		offs = []vg.Length{0}
	}
	for _, o := range offs {
		s.dc.StrokeLine2(ls, p1.X+ox*o, p1.Y+oy*o, p2.X+ox*o, p2.Y+oy*o)
	}
}

func (s *scene) drawAtom(at *chem.Atom, rep *chem.AtomReport, fr *chemsketch.Frame) {
	x, y := at.X, at.Y
	if fr != nil && fr.ShakeAtom == at.ID && fr.ShakeLeft > 0 {
		x += 3 * math.Sin(fr.ShakeLeft*50)
	}
	p := s.pt(x, y)
	r := s.sty.AtomRadius
	if fr != nil {
		if isInInt(fr.SelectedAtoms, at.ID) {
			s.dc.DrawGlyph(draw.GlyphStyle{Color: s.sty.Selection, Radius: r + vg.Points(3), Shape: draw.CircleGlyph{}}, p)
		} else if fr.Hover == at.ID && !fr.Dragging {
			s.dc.DrawGlyph(draw.GlyphStyle{Color: s.sty.Hover, Radius: r + vg.Points(2), Shape: draw.CircleGlyph{}}, p)
		}
	}
	s.dc.DrawGlyph(draw.GlyphStyle{Color: cpk(at.Symbol), Radius: r, Shape: draw.CircleGlyph{}}, p)
	s.dc.DrawGlyph(draw.GlyphStyle{Color: s.sty.Bond.Color, Radius: r, Shape: draw.RingGlyph{}}, p)
	if rep != nil && !rep.Stable() && fr != nil {
		pulse := (1 + math.Sin(fr.BlinkPhase)) / 2
		s.dc.DrawGlyph(draw.GlyphStyle{Color: withAlpha(s.sty.Unstable, 0.15+0.35*pulse), Radius: r, Shape: draw.CircleGlyph{}}, p)
	}
	s.dc.FillText(s.sty.textStyle(labelColor(at.Symbol), s.sty.LabelSize), p, at.Symbol)
	if rep == nil {
		return
	}
	//the badge corner announces either the surplus (a negative formal
	//charge, the atom took more bonds than its electrons cover) or the
	//deficit (electrons still missing from the shell); never both
	corner := vg.Point{X: p.X + r, Y: p.Y + r}
	if rep.FormalCharge < 0 {
		s.dc.FillText(s.sty.textStyle(s.sty.BadPreview, s.sty.BadgeSize), corner, fmt.Sprintf("%+d", rep.FormalCharge))
	} else if rep.Needs > 0 {
		s.dc.FillText(s.sty.textStyle(s.sty.Caption, s.sty.BadgeSize), corner, fmt.Sprintf("·%d", rep.Needs))
	}
}

func (s *scene) drawPreview(P *chemsketch.Preview) {
	ls := draw.LineStyle{
		Width:  vg.Points(1.4),
		Dashes: []vg.Length{vg.Points(5), vg.Points(4)},
	}
	if P.Allowed {
		ls.Color = s.sty.GoodPreview
	} else {
		ls.Color = s.sty.BadPreview
	}
	p1 := s.pt(P.X1, P.Y1)
	p2 := s.pt(P.X2, P.Y2)
	s.dc.StrokeLine2(ls, p1.X, p1.Y, p2.X, p2.Y)
	if P.Target >= 0 {
		s.dc.DrawGlyph(draw.GlyphStyle{Color: ls.Color, Radius: s.sty.AtomRadius + vg.Points(4), Shape: draw.RingGlyph{}}, p2)
	}
}

func (s *scene) captions(val *chem.ValidationResult, fr *chemsketch.Frame) {
	base := s.dc.Min.Y + vg.Points(10)
	if val != nil && val.Formula != "" {
		cs := s.sty.textStyle(s.sty.Caption, s.sty.CaptionSize)
		cs.XAlign = text.XLeft
		msg := fmt.Sprintf("%s   %.2f g/mol", val.Formula, val.Mass)
		if !val.Stable {
			msg += "   (unstable)"
		}
		s.dc.FillText(cs, vg.Point{X: s.dc.Min.X + vg.Points(8), Y: base}, msg)
	}
	if fr != nil && fr.Rejection != nil {
		cs := s.sty.textStyle(s.sty.BadPreview, s.sty.CaptionSize)
		mid := (s.dc.Min.X + s.dc.Max.X) / 2
		s.dc.FillText(cs, vg.Point{X: mid, Y: base}, fr.Rejection.String())
	}
}

//withAlpha returns clr at the given opacity (0 to 1).
func withAlpha(clr color.Color, a float64) color.Color {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	c.A = uint8(255 * a)
	return c
}
