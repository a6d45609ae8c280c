/*
 * style.go, part of verchem.
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
	"image/color"

	chem "github.com/verchemxyz/verchem-sub008"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Style collects everything about how a sketch looks that is not
//chemistry: colors, stroke widths, radii and fonts. The zero value is
//not usable, start from DefaultStyle.
type Style struct {
	Background  color.Color
	Bond        draw.LineStyle
	BondGap     vg.Length //separation between the parallel strokes of a multiple bond
	AtomRadius  vg.Length
	LabelSize   vg.Length
	BadgeSize   vg.Length
	CaptionSize vg.Length
	Selection   color.Color
	Hover       color.Color
	GoodPreview color.Color
	BadPreview  color.Color
	Unstable    color.Color
	Caption     color.Color
}

//DefaultStyle returns the house look: white canvas, near-black bonds,
//CPK discs sized to match the sketcher's hit radius.
func DefaultStyle() *Style {
	return &Style{
		Background: color.White,
		Bond: draw.LineStyle{
			Color: color.NRGBA{R: 40, G: 40, B: 40, A: 255},
			Width: vg.Points(1.6),
		},
		BondGap:     vg.Points(3.5),
		AtomRadius:  vg.Points(12),
		LabelSize:   vg.Points(11),
		BadgeSize:   vg.Points(8),
		CaptionSize: vg.Points(10),
		Selection:   color.NRGBA{R: 66, G: 133, B: 244, A: 255},
		Hover:       color.NRGBA{R: 66, G: 133, B: 244, A: 120},
		GoodPreview: color.NRGBA{R: 67, G: 160, B: 71, A: 255},
		BadPreview:  color.NRGBA{R: 229, G: 57, B: 53, A: 255},
		Unstable:    color.NRGBA{R: 229, G: 57, B: 53, A: 255},
		Caption:     color.NRGBA{R: 70, G: 70, B: 70, A: 255},
	}
}

//cpk returns the fill color for an element's disc.
func cpk(symbol string) color.Color {
	c := chem.CPKColor(symbol)
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

//labelColor picks black or white lettering so the symbol stays legible
//on its disc.
func labelColor(symbol string) color.Color {
	c := chem.CPKColor(symbol)
	luma := 0.299*float64(c[0]) + 0.587*float64(c[1]) + 0.114*float64(c[2])
	if luma < 140 {
		return color.White
	}
	return color.Black
}

//textStyle builds a ready-to-use style for FillText. Alignment is
//centered on the anchor point unless the caller says otherwise.
func (sty *Style) textStyle(clr color.Color, size vg.Length) text.Style {
	return text.Style{
		Color:   clr,
		Font:    font.Font{Typeface: "Liberation", Variant: "Sans", Size: size},
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: text.Plain{Fonts: font.DefaultCache},
	}
}

//fillBackground paints the whole canvas in the background color.
func fillBackground(dc draw.Canvas, clr color.Color) {
	var p vg.Path
	p.Move(vg.Point{X: dc.Min.X, Y: dc.Min.Y})
	p.Line(vg.Point{X: dc.Max.X, Y: dc.Min.Y})
	p.Line(vg.Point{X: dc.Max.X, Y: dc.Max.Y})
	p.Line(vg.Point{X: dc.Min.X, Y: dc.Max.Y})
	p.Close()
	dc.SetColor(clr)
	dc.Fill(p)
}
