/*
 * chem.go, part of verchem.
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

package chem

/**Note: Some functions here panic instead of returning errors. This is because they are
 * "fundamental" functions, only reachable with a wrong index or a nil object, i.e. with a
 * programming mistake. Everything a user can cause from the sketcher (stale ids, impossible
 * bonds, unknown elements) comes back as a value instead: the sketch must survive any
 * input sequence.**/

//Atom is one atom of a sketch: an element symbol pinned to a position on the
//drawing surface. The id is assigned by the Diagram when the atom is added
//and never changes, and never gets recycled, so anything outside the library
//(selections, undo records, transmitted scenes) can hold on to it safely.
type Atom struct {
	ID     int
	Symbol string
	X      float64
	Y      float64
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilAtom)
	}
	Newat := new(Atom)
	Newat.ID = A.ID
	Newat.Symbol = A.Symbol
	Newat.X = A.X
	Newat.Y = A.Y
	return Newat
}

//AtomMove is one entry of a batch move: the atom with the given id goes to X,Y.
//Moves travel in batches so a multi-atom drag is applied as one operation.
type AtomMove struct {
	ID int
	X  float64
	Y  float64
}

/*****Diagram type***/

//Diagram is the whole sketch: a flat list of atoms and a flat list of bonds.
//The zero Diagram is not ready to use; get one from NewDiagram. All reads and
//writes go through methods, and only one goroutine may call them at a time;
//concurrent readers (renderers, encoders) work on copies or snapshots.
type Diagram struct {
	atoms    []*Atom
	bonds    []*Bond
	nextAtom int
	nextBond int
}

//NewDiagram returns a new, empty sketch. Ids start at 1 so the zero value
//of an int can keep meaning "no atom" in caller code.
func NewDiagram() *Diagram {
	D := new(Diagram)
	D.atoms = make([]*Atom, 0, 30)
	D.bonds = make([]*Bond, 0, 30)
	D.nextAtom = 1
	D.nextBond = 1
	return D
}

/*Diagram methods*/

//Len returns the number of atoms in the sketch.
func (D *Diagram) Len() int {
	return len(D.atoms)
}

//Atom returns the atom at place i in the sketch, in insertion order.
//It panics if i is out of range.
func (D *Diagram) Atom(i int) *Atom {
	if i < 0 || i >= len(D.atoms) {
		panic(ErrAtomOutOfRange)
	}
	return D.atoms[i]
}

//NBonds returns the number of bonds in the sketch.
func (D *Diagram) NBonds() int {
	return len(D.bonds)
}

//Bond returns the bond at place i in the sketch, in insertion order.
//It panics if i is out of range.
func (D *Diagram) Bond(i int) *Bond {
	if i < 0 || i >= len(D.bonds) {
		panic(ErrBondOutOfRange)
	}
	return D.bonds[i]
}

//AtomByID returns the atom with the given id, or nil if no atom in the
//sketch has it. A nil return is normal, not an error: ids outlive atoms
//in selections and undo records, so stale lookups happen all the time.
func (D *Diagram) AtomByID(id int) *Atom {
	for _, at := range D.atoms {
		if at.ID == id {
			return at
		}
	}
	return nil
}

//BondByID returns the bond with the given id, or nil.
func (D *Diagram) BondByID(id int) *Bond {
	for _, b := range D.bonds {
		if b.ID == id {
			return b
		}
	}
	return nil
}

//BondBetween returns the bond joining the atoms with ids id1 and id2,
//in either order, or nil if they are not bonded. At most one bond can
//join a pair; multiplicity lives in the bond's Order, not in parallel
//records.
func (D *Diagram) BondBetween(id1, id2 int) *Bond {
	for _, b := range D.bonds {
		if (b.A1 == id1 && b.A2 == id2) || (b.A1 == id2 && b.A2 == id1) {
			return b
		}
	}
	return nil
}

//BondsOn returns the bonds incident on the atom with the given id, in bond
//insertion order. The slice is freshly allocated; the bonds themselves are
//the sketch's own.
func (D *Diagram) BondsOn(id int) []*Bond {
	ret := make([]*Bond, 0, 4)
	for _, b := range D.bonds {
		if b.A1 == id || b.A2 == id {
			ret = append(ret, b)
		}
	}
	return ret
}

//BondOrderSum returns the total bond order the atom with the given id is
//engaged in (a double bond counts 2). 0 for unbonded or unknown ids.
func (D *Diagram) BondOrderSum(id int) int {
	sum := 0
	for _, b := range D.bonds {
		if b.A1 == id || b.A2 == id {
			sum += b.Order
		}
	}
	return sum
}

//AddAtom adds an atom of the given element at x,y and returns it. The
//element must belong to the palette; for anything else nothing is added
//and nil is returned. Positions are taken as given: snapping and clamping
//to the drawing surface are the sketcher's business, not the model's.
func (D *Diagram) AddAtom(symbol string, x, y float64) *Atom {
	if !KnownSymbol(symbol) {
		return nil
	}
	at := &Atom{ID: D.nextAtom, Symbol: symbol, X: x, Y: y}
	D.nextAtom++
	D.atoms = append(D.atoms, at)
	return at
}

//MoveAtoms applies a batch of position updates and returns how many were
//applied. Entries whose id no longer names an atom are skipped; the rest
//of the batch still goes through.
func (D *Diagram) MoveAtoms(moves []AtomMove) int {
	applied := 0
	for _, m := range moves {
		at := D.AtomByID(m.ID)
		if at == nil {
			continue
		}
		at.X = m.X
		at.Y = m.Y
		applied++
	}
	return applied
}

//DeleteAtoms removes the atoms with the given ids together with every bond
//touching them, and returns how many atoms and how many bonds went away.
//Ids that name no atom are quietly skipped. Remaining atoms and bonds keep
//their ids and their relative order.
func (D *Diagram) DeleteAtoms(ids ...int) (int, int) {
	if len(ids) == 0 {
		return 0, 0
	}
	gone := make(map[int]bool, len(ids))
	for _, id := range ids {
		if D.AtomByID(id) != nil {
			gone[id] = true
		}
	}
	if len(gone) == 0 {
		return 0, 0
	}
	atoms := make([]*Atom, 0, len(D.atoms))
	for _, at := range D.atoms {
		if !gone[at.ID] {
			atoms = append(atoms, at)
		}
	}
	bonds := make([]*Bond, 0, len(D.bonds))
	cut := 0
	for _, b := range D.bonds {
		if gone[b.A1] || gone[b.A2] {
			cut++
			continue
		}
		bonds = append(bonds, b)
	}
	nat := len(D.atoms) - len(atoms)
	D.atoms = atoms
	D.bonds = bonds
	return nat, cut
}

//DeleteBonds removes the bonds with the given ids and returns how many
//went away. Ids that name no bond are quietly skipped. The endpoint atoms
//stay in the sketch.
func (D *Diagram) DeleteBonds(ids ...int) int {
	if len(ids) == 0 {
		return 0
	}
	gone := make(map[int]bool, len(ids))
	for _, id := range ids {
		gone[id] = true
	}
	bonds := make([]*Bond, 0, len(D.bonds))
	for _, b := range D.bonds {
		if !gone[b.ID] {
			bonds = append(bonds, b)
		}
	}
	cut := len(D.bonds) - len(bonds)
	D.bonds = bonds
	return cut
}

//Clear empties the sketch. The id counters keep running: a session never
//hands out the same id twice, even across a Clear.
func (D *Diagram) Clear() {
	D.atoms = D.atoms[0:0]
	D.bonds = D.bonds[0:0]
}

//Copy returns a deep copy of the sketch, sharing nothing with the original.
//Hosts use this for undo checkpoints, and renderers running in a different
//goroutine use it to read without holding the sketch still.
func (D *Diagram) Copy() *Diagram {
	if D == nil {
		panic(ErrNilDiagram)
	}
	R := new(Diagram)
	R.atoms = make([]*Atom, 0, len(D.atoms))
	for _, at := range D.atoms {
		R.atoms = append(R.atoms, at.Copy())
	}
	R.bonds = make([]*Bond, 0, len(D.bonds))
	for _, b := range D.bonds {
		R.bonds = append(R.bonds, b.Copy())
	}
	R.nextAtom = D.nextAtom
	R.nextBond = D.nextBond
	return R
}
