/*
 * frame.go, part of verchem.
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

import (
	"math"

	chem "github.com/verchemxyz/verchem-sub008"
)

//Cosmetic timing. The blink is a phase, not a toggle, so renderers can
//fade smoothly; the shake is a short one-shot timer.
const (
	blinkRate = 2 * math.Pi //radians per second: unstable atoms pulse once a second
	shakeTime = 0.4         //seconds a refused atom wobbles
)

//Preview is the rubber-band line shown while a press on an atom hasn't
//become a drag: from the pressed atom toward the cursor, docking onto
//another atom when the cursor hovers one.
type Preview struct {
	FromID int
	X1, Y1 float64
	X2, Y2 float64
	//Target is the hovered atom the line docks onto, or -1 when the line
	//just follows the cursor. Allowed says whether releasing here would
	//bond, so renderers can color the band before the student commits.
	Target  int
	Allowed bool
}

//Frame is everything a renderer needs beyond the sketch itself, captured
//at one instant: selection, hover, the preview line, drag state, cosmetic
//phases and the current validation. The struct is a value and owns copies
//of its slices; a renderer on another goroutine may keep it as long as it
//likes, pairing it with a sketch Copy taken at the same instant.
type Frame struct {
	SelectedAtoms []int
	SelectedBond  int
	Hover         int
	Preview       *Preview
	Dragging      bool
	GroupDrag     bool
	CursorX       float64
	CursorY       float64
	BlinkPhase    float64
	ShakeAtom     int
	ShakeLeft     float64
	//Rejection carries the latest refused bond request until the next
	//successful change, for the feedback line under the canvas.
	Rejection  *chem.BondResult
	Validation *chem.ValidationResult
}

//Advance moves the cosmetic clocks forward by dt seconds. Hosts call it
//once per animation tick; everything else in the Editor is event-driven
//and doesn't care about time at all.
func (E *Editor) Advance(dt float64) {
	if dt < 0 {
		return
	}
	E.blink = math.Mod(E.blink+dt*blinkRate, 2*math.Pi)
	if E.shakeLeft > 0 {
		E.shakeLeft -= dt
		if E.shakeLeft <= 0 {
			E.shakeLeft = 0
			E.shakeID = -1
			E.rejection = nil
		}
	}
}

//Frame captures the current presentation state. It never mutates anything,
//so calling it at any rate is fine.
func (E *Editor) Frame() Frame {
	F := Frame{
		SelectedAtoms: E.SelectedAtoms(),
		SelectedBond:  E.selBond,
		Hover:         E.hover,
		Dragging:      E.state == dragging,
		GroupDrag:     E.state == dragging && len(E.dragSet) > 1,
		CursorX:       E.curX,
		CursorY:       E.curY,
		BlinkPhase:    E.blink,
		ShakeAtom:     E.shakeID,
		ShakeLeft:     E.shakeLeft,
		Rejection:     E.rejection,
		Validation:    E.val,
	}
	if E.state == pressed {
		F.Preview = E.preview()
	}
	return F
}

//preview builds the rubber-band description for the current press.
func (E *Editor) preview() *Preview {
	from := E.sketch.AtomByID(E.pressedID)
	if from == nil {
		return nil
	}
	//a click resting on a second atom, with exactly one other atom
	//selected, is about to bond the two; that's the line to show
	if E.hover == E.pressedID && len(E.selAtoms) == 1 && E.selAtoms[0] != E.pressedID {
		if sel := E.sketch.AtomByID(E.selAtoms[0]); sel != nil {
			return &Preview{
				FromID: sel.ID,
				X1:     sel.X, Y1: sel.Y,
				X2: from.X, Y2: from.Y,
				Target:  from.ID,
				Allowed: E.sketch.CanBond(sel.ID, from.ID, E.order),
			}
		}
	}
	P := &Preview{FromID: E.pressedID, X1: from.X, Y1: from.Y, Target: -1, Allowed: true}
	P.X2, P.Y2 = E.curX, E.curY
	if E.hover != -1 && E.hover != E.pressedID {
		if to := E.sketch.AtomByID(E.hover); to != nil {
			P.X2, P.Y2 = to.X, to.Y
			P.Target = to.ID
			P.Allowed = E.sketch.CanBond(E.pressedID, to.ID, E.order)
		}
	}
	return P
}
