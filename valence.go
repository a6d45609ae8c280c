/*
 * valence.go, part of verchem.
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

//AtomReport is the electron bookkeeping for one atom, following the
//counting scheme of a first chemistry course: the atom brings its valence
//electrons, spends one per bond order unit, and keeps the rest as
//nonbonding (lone pair) electrons. Each bond shows the atom two shell
//electrons, its own plus the partner's.
type AtomReport struct {
	Symbol       string
	Bonds        int //incident bonds
	OrderSum     int //incident bond orders added up
	Lone         int //nonbonding electrons kept by the atom
	Shell        int //electrons the atom sees: Lone + 2*OrderSum
	FormalCharge int
	Needs        int //electrons still missing for a closed shell
}

//Stable tells whether the atom is content: a closed shell and no formal
//charge. Under the counting scheme above the formal charge can only go
//negative, and only by over-bonding past the element's valence.
func (r *AtomReport) Stable() bool {
	return r.FormalCharge == 0 && r.Needs == 0
}

//ValidationResult is the stability picture of a whole sketch, recomputed
//from scratch after every change. Reports are keyed by atom id, so a
//result stays meaningful to its holder even after later insertions and
//deletions reshuffle the sketch internally.
type ValidationResult struct {
	Formula string
	Mass    float64
	Atoms   map[int]*AtomReport
	Stable  bool
}

//Report returns the report for the atom with the given id, or nil.
func (V *ValidationResult) Report(id int) *AtomReport {
	return V.Atoms[id]
}

//Unstable returns the ids of the atoms that still need attention,
//in the sketch's insertion order.
func (V *ValidationResult) Unstable(S Atomer) []int {
	ret := make([]int, 0, len(V.Atoms))
	for i := 0; i < S.Len(); i++ {
		id := S.Atom(i).ID
		if r := V.Atoms[id]; r != nil && !r.Stable() {
			ret = append(ret, id)
		}
	}
	return ret
}

//Validate runs the electron bookkeeping over every atom of the sketch and
//returns the full picture. An empty sketch is vacuously stable. The sketch
//is only read, never changed, so a renderer may validate a snapshot while
//the live sketch moves on.
func Validate(S Bonder) *ValidationResult {
	V := new(ValidationResult)
	V.Atoms = make(map[int]*AtomReport, S.Len())
	V.Stable = true
	ordersum := make(map[int]int, S.Len())
	nbonds := make(map[int]int, S.Len())
	for i := 0; i < S.NBonds(); i++ {
		b := S.Bond(i)
		ordersum[b.A1] += b.Order
		ordersum[b.A2] += b.Order
		nbonds[b.A1]++
		nbonds[b.A2]++
	}
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		r := reportFor(at.Symbol, nbonds[at.ID], ordersum[at.ID])
		V.Atoms[at.ID] = r
		if !r.Stable() {
			V.Stable = false
		}
	}
	V.Formula = Formula(S)
	V.Mass = TotalMass(S)
	return V
}

//reportFor does the arithmetic for a single atom of the given element with
//the given bonding. Unknown elements can't enter a sketch, but if one did
//sneak in through a future code path it would just read as charge 0,
//needs 0, rather than blowing up mid-render.
func reportFor(symbol string, bonds, ordersum int) *AtomReport {
	r := new(AtomReport)
	r.Symbol = symbol
	r.Bonds = bonds
	r.OrderSum = ordersum
	val := symbolValence[symbol]
	shell := symbolShell[symbol]
	r.Lone = val - ordersum
	if r.Lone < 0 {
		r.Lone = 0 //over-bonded: every valence electron is in bonds
	}
	r.Shell = r.Lone + 2*ordersum
	r.FormalCharge = val - r.Lone - ordersum
	r.Needs = shell - r.Shell
	if r.Needs < 0 {
		r.Needs = 0
	}
	return r
}
