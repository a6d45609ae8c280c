/*
 * hittest.go, part of verchem.
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

package chemsketch

import "math"

/*Hit-testing rules, fixed on purpose so behavior doesn't wobble with zoom or
 * data: atoms are found first, within AtomHitRadius of their center, first
 * match in the sketch's insertion order; bonds only get a chance when no atom
 * matched, within the tighter BondHitRadius of their segment. Raw coordinates
 * always; the grid is for placing things, not for finding them.*/

//atomAt returns the id of the first atom within AtomHitRadius of x,y, in
//insertion order, or -1.
func (E *Editor) atomAt(x, y float64) int {
	return E.atomAtExcluding(x, y, -1)
}

//atomAtExcluding is atomAt with one id left out of consideration. Drag
//drops use it so the atom under the cursor never finds itself.
func (E *Editor) atomAtExcluding(x, y float64, skip int) int {
	S := E.sketch
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		if at.ID == skip {
			continue
		}
		if math.Hypot(at.X-x, at.Y-y) <= AtomHitRadius {
			return at.ID
		}
	}
	return -1
}

//bondAt returns the id of the first bond whose segment passes within
//BondHitRadius of x,y, in insertion order, or -1. A bond whose endpoint
//atom has somehow gone missing can't be hit; in a consistent sketch that
//never happens, but a hit-test is a bad place to find out.
func (E *Editor) bondAt(x, y float64) int {
	S := E.sketch
	for i := 0; i < S.NBonds(); i++ {
		b := S.Bond(i)
		a1 := S.AtomByID(b.A1)
		a2 := S.AtomByID(b.A2)
		if a1 == nil || a2 == nil {
			continue
		}
		if pointSegDist(x, y, a1.X, a1.Y, a2.X, a2.Y) <= BondHitRadius {
			return b.ID
		}
	}
	return -1
}

//pointSegDist returns the distance from point p to the segment a-b,
//i.e. to the nearest point of the segment, not of the infinite line.
func pointSegDist(px, py, ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		//degenerate segment, a bond drawn on two stacked atoms
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}
