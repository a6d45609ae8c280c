/*
 * sketcher.go, part of verchem.
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

/*Package chemsketch turns raw pointer events into sketch edits. It is the part of
verchem that feels like an application: click an empty spot and an atom of the
current element appears, click two atoms one after the other and a bond forms,
drag atoms around, right-click to erase. The package itself draws nothing and
listens to nothing; the host (a GUI program, a web bridge, a test) forwards
events to one Editor and renders whatever the Editor's Frame says, so the whole
thing stays testable without a single pixel.

All methods of an Editor must be called from one goroutine. That is not a
limitation in practice, since pointer events arrive in one stream anyway, and it
buys the rule that makes the model teachable: between two calls, nothing moves.*/
package chemsketch

import (
	"math"

	chem "github.com/verchemxyz/verchem-sub008"
)

//Tunable geometry of the interaction, in sketch units (a unit maps to
//roughly a pixel on an unscaled surface). Hit radii are generous on
//purpose; school trackpads are what they are.
const (
	AtomHitRadius = 12.0 //press within this of an atom center grabs the atom
	BondHitRadius = 6.0  //distance to the bond segment; checked only when no atom matched
	DragThreshold = 4.0  //movement below this keeps a press a click
	GridUnit      = 20.0 //snap pitch for placement and drag deltas
	Margin        = 16.0 //atoms keep this far inside the surface edge
)

//Event tells the host that something worth recording happened.
type Event int

const (
	//MutationApplied fires once per discrete change: an atom placed, a bond
	//made or re-typed, anything deleted. Hosts checkpoint undo state on it.
	MutationApplied Event = iota
	//DragEnded fires when a drag commits on release. The in-between moves
	//are already in the sketch; the event marks them as one undoable unit.
	DragEnded
)

func (e Event) String() string {
	if e == DragEnded {
		return "drag-ended"
	}
	return "mutation-applied"
}

//Modifier keys, passed with presses and releases.
type Mod uint8

//ModNone is the zero Mod.
const ModNone Mod = 0

const (
	ModShift Mod = 1 << iota
	ModCtrl      //accepted, currently meaningless to every gesture
)

type gesture int

const (
	idle gesture = iota
	pressed
	dragging
)

//dragStart remembers where a dragged atom was when the press landed, so
//every move applies a fresh delta from the origin instead of accumulating
//rounding from move to move.
type dragStart struct {
	id     int
	x0, y0 float64
}

//Editor owns the interaction state over one sketch: the persistent
//selection, the in-flight gesture, and the cosmetic timers. It is the only
//thing that mutates the sketch; everything it does goes through the
//sketch's own public operations, so no gesture can produce a state the
//model would refuse.
type Editor struct {
	sketch *chem.Diagram
	val    *chem.ValidationResult

	//palette state, set by the host's toolbar
	element string
	order   int

	//usable surface
	width, height float64
	snap          bool

	//persistent selection: some atoms, or one bond, never both
	selAtoms []int
	selBond  int

	//transient gesture
	state     gesture
	pressedID int
	pressX    float64
	pressY    float64
	dragSet   []dragStart
	curX      float64
	curY      float64
	hover     int

	//cosmetics, advanced by Advance
	blink     float64
	shakeID   int
	shakeLeft float64
	rejection *chem.BondResult

	//Notify, when set, receives one Event per discrete change and per
	//finished drag. The Editor calls it synchronously, from the same
	//goroutine the gesture methods run on.
	Notify func(Event)
}

//New returns an Editor over the given sketch, with a usable surface of
//width by height sketch units. The palette starts on carbon and single
//bonds, with grid snapping on; hosts usually overwrite all three from
//saved preferences right away.
func New(sketch *chem.Diagram, width, height float64) *Editor {
	E := new(Editor)
	E.sketch = sketch
	E.element = "C"
	E.order = 1
	E.width = width
	E.height = height
	E.snap = true
	E.selBond = -1
	E.pressedID = -1
	E.hover = -1
	E.shakeID = -1
	E.val = chem.Validate(sketch)
	return E
}

//Sketch returns the live sketch. Fine to read from the gesture goroutine;
//anything running elsewhere (an exporter, say) should take a Copy first.
func (E *Editor) Sketch() *chem.Diagram {
	return E.sketch
}

//Validation returns the bookkeeping of the sketch as of the last change.
func (E *Editor) Validation() *chem.ValidationResult {
	return E.val
}

//SetElement picks the element new atoms will use. Symbols outside the
//palette are ignored, keeping the previous pick.
func (E *Editor) SetElement(symbol string) {
	if chem.KnownSymbol(symbol) {
		E.element = symbol
	}
}

//Element returns the palette's current element.
func (E *Editor) Element() string {
	return E.element
}

//SetBondOrder picks the multiplicity Connect requests will use. Values
//outside the single..triple range are ignored.
func (E *Editor) SetBondOrder(order int) {
	if order >= chem.MinOrder && order <= chem.MaxOrder {
		E.order = order
	}
}

//BondOrder returns the palette's current bond multiplicity.
func (E *Editor) BondOrder() int {
	return E.order
}

//AllowedOrdersFor passes the element's multiplicity table through to the
//host, so toolbars can gray out what an element never does.
func (E *Editor) AllowedOrdersFor(symbol string) []int {
	return chem.AllowedOrders(symbol)
}

//SetSnap turns grid snapping on or off. Snapping quantizes where atoms
//land (placement and drag deltas); hit-testing always uses raw positions.
func (E *Editor) SetSnap(on bool) {
	E.snap = on
}

//Snapping tells whether grid snapping is on.
func (E *Editor) Snapping() bool {
	return E.snap
}

//SetSurface updates the usable surface size, e.g. after a window resize.
//Atoms already outside stay where they are until next dragged.
func (E *Editor) SetSurface(width, height float64) {
	E.width = width
	E.height = height
}

//SelectedAtoms returns a copy of the atom selection, in the order the
//atoms were picked.
func (E *Editor) SelectedAtoms() []int {
	ret := make([]int, len(E.selAtoms))
	copy(ret, E.selAtoms)
	return ret
}

//SelectedBond returns the selected bond's id, or -1.
func (E *Editor) SelectedBond() int {
	return E.selBond
}

//PointerDown handles a primary-button press at raw surface coordinates.
//On an atom it only arms a gesture; what the press meant (click, drag,
//bond request) is decided later, by how it ends. On a bond it toggles the
//bond's selection. On empty surface it places an atom of the current
//element, snapped and clamped, and clears the selection.
func (E *Editor) PointerDown(x, y float64, mod Mod) {
	E.track(x, y)
	if E.state != idle {
		//a second press without a release in between; the host's event
		//stream is confused, stick with the gesture we have
		return
	}
	if id := E.atomAt(x, y); id != -1 {
		E.state = pressed
		E.pressedID = id
		E.pressX, E.pressY = x, y
		E.dragSet = E.captureDragSet(id)
		return
	}
	if id := E.bondAt(x, y); id != -1 {
		if E.selBond == id {
			E.selBond = -1
		} else {
			E.selBond = id
			E.selAtoms = E.selAtoms[0:0]
		}
		return
	}
	px, py := x, y
	if E.snap {
		px, py = snapTo(px), snapTo(py)
	}
	px, py = E.clampX(px), E.clampY(py)
	if at := E.sketch.AddAtom(E.element, px, py); at != nil {
		E.selAtoms = E.selAtoms[0:0]
		E.selBond = -1
		E.mutated()
	}
}

//PointerMove handles cursor movement, pressed or not. Below the drag
//threshold a press stays a press and only the preview follows the cursor;
//beyond it the gesture becomes a drag and from then on every move applies
//a batch position update to the whole drag set.
func (E *Editor) PointerMove(x, y float64) {
	E.track(x, y)
	switch E.state {
	case pressed:
		if math.Hypot(x-E.pressX, y-E.pressY) < DragThreshold {
			return
		}
		E.state = dragging
		if !E.inSelection(E.pressedID) {
			//dragging an unselected atom makes it the selection
			E.selAtoms = append(E.selAtoms[0:0], E.pressedID)
			E.selBond = -1
		}
		E.applyDrag()
	case dragging:
		E.applyDrag()
	}
}

//PointerUp is the global release handler: no matter where the pointer is,
//even off the surface, it finishes whatever gesture is in flight and
//always leaves the Editor in Idle. A press that never became a drag is a
//click and resolves selection or bonding here; a drag commits, possibly
//bonding onto the atom it was dropped on.
func (E *Editor) PointerUp(x, y float64, mod Mod) {
	E.track(x, y)
	switch E.state {
	case pressed:
		E.clickOn(E.pressedID, mod)
	case dragging:
		E.dropAt(x, y)
	}
	E.state = idle
	E.pressedID = -1
	E.dragSet = nil
}

//clickOn resolves a press that stayed a click, on the atom with the given id.
func (E *Editor) clickOn(id int, mod Mod) {
	if mod&ModShift != 0 {
		E.toggleAtom(id)
		return
	}
	if len(E.selAtoms) == 1 && E.selAtoms[0] != id {
		res := E.sketch.Connect(E.selAtoms[0], id, E.order)
		if res.Applied() {
			E.selAtoms = E.selAtoms[0:0]
			E.mutated()
		} else {
			//the selection stays, so the student can fix the request
			//(different order, different target) without reselecting
			E.refuse(id, res)
		}
		return
	}
	E.toggleAtom(id)
}

//dropAt resolves the release of a drag at raw coordinates x,y.
func (E *Editor) dropAt(x, y float64) {
	if len(E.dragSet) == 1 {
		if target := E.atomAtExcluding(x, y, E.pressedID); target != -1 {
			res := E.sketch.Connect(E.pressedID, target, E.order)
			if res.Applied() {
				E.mutated()
			} else {
				E.refuse(target, res)
			}
		}
	}
	E.emit(DragEnded)
}

//SecondaryDown handles a secondary-button press: pressing on an atom
//deletes it immediately, selected or not, cascading to its bonds. Away
//from any atom it does nothing.
func (E *Editor) SecondaryDown(x, y float64) {
	E.track(x, y)
	id := E.atomAt(x, y)
	if id == -1 {
		return
	}
	if E.state != idle && E.pressedID == id {
		//the atom under an in-flight gesture is going away
		E.state = idle
		E.pressedID = -1
		E.dragSet = nil
	}
	E.sketch.DeleteAtoms(id)
	E.unselectAtom(id)
	E.mutated()
}

//DeleteSelection deletes whatever is selected, bond or atoms, and clears
//the selection. With nothing selected it does nothing. Hosts wire it to
//the delete key.
func (E *Editor) DeleteSelection() {
	changed := false
	if E.selBond != -1 {
		if E.sketch.DeleteBonds(E.selBond) > 0 {
			changed = true
		}
		E.selBond = -1
	}
	if len(E.selAtoms) > 0 {
		if n, _ := E.sketch.DeleteAtoms(E.selAtoms...); n > 0 {
			changed = true
		}
		E.selAtoms = E.selAtoms[0:0]
	}
	if changed {
		E.mutated()
	}
}

//captureDragSet snapshots who would move if this press turns into a drag:
//the whole selection when the pressed atom is part of it, else the pressed
//atom alone.
func (E *Editor) captureDragSet(id int) []dragStart {
	ids := []int{id}
	if E.inSelection(id) {
		ids = E.selAtoms
	}
	set := make([]dragStart, 0, len(ids))
	for _, aid := range ids {
		if at := E.sketch.AtomByID(aid); at != nil {
			set = append(set, dragStart{id: aid, x0: at.X, y0: at.Y})
		}
	}
	return set
}

//applyDrag moves the whole drag set by the current cursor delta, as one
//batch. With snapping on, the delta itself is quantized (snapped cursor
//minus snapped origin), so a drag never un-snaps an atom that started on
//the grid. Every atom clamps to the usable area independently: pushing a
//group against the edge squashes the formation rather than losing anyone.
func (E *Editor) applyDrag() {
	dx := E.curX - E.pressX
	dy := E.curY - E.pressY
	if E.snap {
		dx = snapTo(E.curX) - snapTo(E.pressX)
		dy = snapTo(E.curY) - snapTo(E.pressY)
	}
	moves := make([]chem.AtomMove, 0, len(E.dragSet))
	for _, d := range E.dragSet {
		moves = append(moves, chem.AtomMove{
			ID: d.id,
			X:  E.clampX(d.x0 + dx),
			Y:  E.clampY(d.y0 + dy),
		})
	}
	E.sketch.MoveAtoms(moves)
	E.val = chem.Validate(E.sketch)
}

//toggleAtom flips the atom in and out of the selection, and drops any
//bond selection: the two kinds never coexist.
func (E *Editor) toggleAtom(id int) {
	E.selBond = -1
	if !E.unselectAtom(id) {
		E.selAtoms = append(E.selAtoms, id)
	}
}

//unselectAtom removes the atom from the selection if present, reporting
//whether it was.
func (E *Editor) unselectAtom(id int) bool {
	for i, aid := range E.selAtoms {
		if aid == id {
			E.selAtoms = append(E.selAtoms[:i], E.selAtoms[i+1:]...)
			return true
		}
	}
	return false
}

func (E *Editor) inSelection(id int) bool {
	for _, aid := range E.selAtoms {
		if aid == id {
			return true
		}
	}
	return false
}

//track keeps cursor position and hover current. Hover works on raw
//coordinates always; snapping never changes what the pointer is over.
func (E *Editor) track(x, y float64) {
	E.curX, E.curY = x, y
	E.hover = E.atomAt(x, y)
}

//mutated is the tail of every successful discrete change: fresh
//bookkeeping, rejection cleared, host notified.
func (E *Editor) mutated() {
	E.val = chem.Validate(E.sketch)
	E.rejection = nil
	E.shakeID = -1
	E.shakeLeft = 0
	E.emit(MutationApplied)
}

//refuse is the tail of every rejected bond request: the result is kept
//for the feedback line, and the atom that refused gets the shake.
func (E *Editor) refuse(atID int, res chem.BondResult) {
	r := res
	E.rejection = &r
	E.shakeID = atID
	E.shakeLeft = shakeTime
}

func (E *Editor) emit(ev Event) {
	if E.Notify != nil {
		E.Notify(ev)
	}
}

//snapTo quantizes one coordinate to the grid pitch.
func snapTo(v float64) float64 {
	return math.Round(v/GridUnit) * GridUnit
}

func (E *Editor) clampX(x float64) float64 {
	return clamp(x, Margin, E.width-Margin)
}

func (E *Editor) clampY(y float64) float64 {
	return clamp(y, Margin, E.height-Margin)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		//surface smaller than two margins; pin to its middle
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
