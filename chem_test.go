/*
 * chem_test.go
 *
 * Copyright 2026 The verchem authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 *
 *
 */

package chem

import (
	"fmt"
	"testing"
)

//buildWater puts an H-O-H sketch in D and returns the three atoms.
func buildWater(D *Diagram) (*Atom, *Atom, *Atom) {
	o := D.AddAtom("O", 100, 100)
	h1 := D.AddAtom("H", 60, 120)
	h2 := D.AddAtom("H", 140, 120)
	D.Connect(o.ID, h1.ID, 1)
	D.Connect(o.ID, h2.ID, 1)
	return o, h1, h2
}

//buildMethane puts a CH4 sketch in D and returns the carbon and the hydrogens.
func buildMethane(D *Diagram) (*Atom, []*Atom) {
	c := D.AddAtom("C", 200, 200)
	hs := make([]*Atom, 0, 4)
	pos := [4][2]float64{{200, 140}, {200, 260}, {140, 200}, {260, 200}}
	for _, p := range pos {
		h := D.AddAtom("H", p[0], p[1])
		D.Connect(c.ID, h.ID, 1)
		hs = append(hs, h)
	}
	return c, hs
}

func TestAddAndLookup(Te *testing.T) {
	D := NewDiagram()
	a := D.AddAtom("C", 10, 20)
	b := D.AddAtom("O", 30, 40)
	if a.ID == b.ID {
		Te.Errorf("two atoms got the same id %d", a.ID)
	}
	if D.Len() != 2 {
		Te.Errorf("expected 2 atoms, got %d", D.Len())
	}
	if D.AtomByID(a.ID) != a || D.AtomByID(b.ID) != b {
		Te.Error("AtomByID didn't return the atoms just added")
	}
	if D.AtomByID(99999) != nil {
		Te.Error("a stale id should look up as nil, not as an atom")
	}
	if at := D.AddAtom("Xq", 1, 1); at != nil {
		Te.Errorf("an element outside the palette got into the sketch: %v", at)
	}
	if D.Len() != 2 {
		Te.Error("the rejected element still changed the atom count")
	}
}

func TestConnectOutcomes(Te *testing.T) {
	D := NewDiagram()
	c1 := D.AddAtom("C", 0, 0)
	c2 := D.AddAtom("C", 50, 0)
	h := D.AddAtom("H", 100, 0)
	res := D.Connect(c1.ID, c2.ID, 1)
	if res.Outcome != BondCreated || res.Bond == nil {
		Te.Fatalf("first connect should create: %v", res)
	}
	first := res.Bond.ID
	//asking again for the same pair must re-type, not duplicate
	res = D.Connect(c2.ID, c1.ID, 2)
	if res.Outcome != BondRetyped {
		Te.Errorf("repeated pair should re-type: %v", res)
	}
	if D.NBonds() != 1 || res.Bond.ID != first || res.Bond.Order != 2 {
		Te.Errorf("re-typing went wrong: %d bonds, bond %v", D.NBonds(), res.Bond)
	}
	cases := []struct {
		id1, id2, order int
		why             BondReject
	}{
		{c1.ID, c1.ID, 1, RejectSelfBond},
		{c1.ID, 7777, 1, RejectMissing},
		{c1.ID, h.ID, 0, RejectOrder},
		{c1.ID, h.ID, 4, RejectOrder},
		{c1.ID, h.ID, 2, RejectElement}, //H doesn't double-bond
	}
	for _, tc := range cases {
		res := D.Connect(tc.id1, tc.id2, tc.order)
		if res.Outcome != BondRejected || res.Reason != tc.why {
			Te.Errorf("connect(%d,%d,%d): wanted rejection %v, got %v", tc.id1, tc.id2, tc.order, tc.why, res)
		}
	}
	if D.NBonds() != 1 {
		Te.Errorf("rejections must leave the sketch alone, have %d bonds", D.NBonds())
	}
	//spend H's single-bond budget, then ask for one more
	if res := D.Connect(c1.ID, h.ID, 1); !res.Applied() {
		Te.Fatalf("plain C-H single should work: %v", res)
	}
	h2 := D.AddAtom("H", 100, 50)
	res = D.Connect(h.ID, h2.ID, 1)
	if res.Reason != RejectFull || res.Blocker != "H" {
		Te.Errorf("over-budget H should reject with the blocker named: %v", res)
	}
}

func TestCascadeDelete(Te *testing.T) {
	D := NewDiagram()
	c, hs := buildMethane(D)
	if D.NBonds() != 4 {
		Te.Fatalf("methane should carry 4 bonds, got %d", D.NBonds())
	}
	nat, nb := D.DeleteAtoms(c.ID)
	if nat != 1 || nb != 4 {
		Te.Errorf("deleting the carbon should take its 4 bonds along, got %d atoms %d bonds", nat, nb)
	}
	if D.Len() != 4 || D.NBonds() != 0 {
		Te.Errorf("after the cascade: %d atoms, %d bonds", D.Len(), D.NBonds())
	}
	for _, h := range hs {
		if D.AtomByID(h.ID) == nil {
			Te.Errorf("hydrogen %d went missing, only the carbon was deleted", h.ID)
		}
	}
	//unknown ids are a quiet no-op
	nat, nb = D.DeleteAtoms(c.ID, 31416)
	if nat != 0 || nb != 0 {
		Te.Error("deleting ids that are long gone should do nothing")
	}
}

func TestDeleteBondsKeepsAtoms(Te *testing.T) {
	D := NewDiagram()
	o, h1, _ := buildWater(D)
	b := D.BondBetween(o.ID, h1.ID)
	if b == nil {
		Te.Fatal("water lost an O-H bond")
	}
	if n := D.DeleteBonds(b.ID, 424242); n != 1 {
		Te.Errorf("expected exactly 1 bond deleted, got %d", n)
	}
	if D.Len() != 3 {
		Te.Error("deleting a bond must not touch the atoms")
	}
	if D.BondBetween(o.ID, h1.ID) != nil {
		Te.Error("the deleted bond is still there")
	}
}

func TestMoveBatch(Te *testing.T) {
	D := NewDiagram()
	a := D.AddAtom("C", 0, 0)
	b := D.AddAtom("O", 10, 10)
	moves := []AtomMove{{ID: a.ID, X: 5, Y: 6}, {ID: 5555, X: 1, Y: 1}, {ID: b.ID, X: 20, Y: 21}}
	if n := D.MoveAtoms(moves); n != 2 {
		Te.Errorf("expected 2 applied moves, got %d", n)
	}
	if a.X != 5 || a.Y != 6 || b.X != 20 || b.Y != 21 {
		Te.Errorf("positions after the batch: %v %v", *a, *b)
	}
}

//TestClearAndReplay checks that replaying a build sequence after Clear gives
//the same chemistry (formula, per-atom bookkeeping) while never reusing ids.
func TestClearAndReplay(Te *testing.T) {
	D := NewDiagram()
	o1, ha, hb := buildWater(D)
	v1 := Validate(D)
	firstIds := []int{o1.ID, ha.ID, hb.ID}
	D.Clear()
	if D.Len() != 0 || D.NBonds() != 0 {
		Te.Fatal("Clear left something behind")
	}
	o2, hc, hd := buildWater(D)
	v2 := Validate(D)
	secondIds := []int{o2.ID, hc.ID, hd.ID}
	for _, old := range firstIds {
		for _, nu := range secondIds {
			if old == nu {
				Te.Errorf("id %d was reused across Clear", old)
			}
		}
	}
	if v1.Formula != v2.Formula || v1.Stable != v2.Stable {
		Te.Errorf("replay changed the chemistry: %q/%v vs %q/%v", v1.Formula, v1.Stable, v2.Formula, v2.Stable)
	}
	for i, old := range firstIds {
		r1 := v1.Report(old)
		r2 := v2.Report(secondIds[i])
		if r1.FormalCharge != r2.FormalCharge || r1.Needs != r2.Needs {
			Te.Errorf("atom %d of the replay reports %v, original said %v", i, *r2, *r1)
		}
	}
	fmt.Println("replayed", v2.Formula)
}

func TestCopyIndependence(Te *testing.T) {
	D := NewDiagram()
	o, h1, _ := buildWater(D)
	R := D.Copy()
	D.DeleteAtoms(o.ID)
	if R.Len() != 3 || R.NBonds() != 2 {
		Te.Errorf("the copy followed the original: %d atoms %d bonds", R.Len(), R.NBonds())
	}
	R.AtomByID(h1.ID).X = -1000
	if D.AtomByID(h1.ID).X == -1000 {
		Te.Error("the copy shares atoms with the original")
	}
	//id counters travel with the copy, so both sides keep minting fresh ids
	nu := R.AddAtom("N", 0, 0)
	if R.AtomByID(nu.ID) == nil || nu.ID <= h1.ID {
		Te.Errorf("the copy minted a suspicious id %d", nu.ID)
	}
}

func TestOrdersBetween(Te *testing.T) {
	D := NewDiagram()
	c1 := D.AddAtom("C", 0, 0)
	c2 := D.AddAtom("C", 10, 0)
	o := D.AddAtom("O", 20, 0)
	h := D.AddAtom("H", 30, 0)
	if got := D.OrdersBetween(c1.ID, c2.ID); len(got) != 3 {
		Te.Errorf("fresh C-C should offer 1..3, got %v", got)
	}
	if got := D.OrdersBetween(c1.ID, o.ID); len(got) != 2 || got[1] != 2 {
		Te.Errorf("C-O should offer 1 and 2, got %v", got)
	}
	if got := D.OrdersBetween(c1.ID, h.ID); len(got) != 1 || got[0] != 1 {
		Te.Errorf("C-H should offer only singles, got %v", got)
	}
	if !D.CanBond(c1.ID, o.ID, 2) || D.CanBond(c1.ID, h.ID, 3) {
		Te.Error("CanBond disagrees with the order tables")
	}
	//once H is spoken for, nothing more can reach it
	D.Connect(h.ID, c1.ID, 1)
	if got := D.OrdersBetween(h.ID, c2.ID); len(got) != 0 {
		Te.Errorf("a saturated H still offers %v", got)
	}
	//but the pair it is bonded to may still re-type, within the tables
	if got := D.OrdersBetween(h.ID, c1.ID); len(got) != 1 || got[0] != 1 {
		Te.Errorf("re-type offers for H-C came out as %v", got)
	}
}

func TestBondCross(Te *testing.T) {
	D := NewDiagram()
	a := D.AddAtom("C", 0, 0)
	b := D.AddAtom("N", 10, 0)
	res := D.Connect(a.ID, b.ID, 3)
	if !res.Applied() {
		Te.Fatalf("C#N triple should be allowed: %v", res)
	}
	if res.Bond.Cross(a.ID) != b.ID || res.Bond.Cross(b.ID) != a.ID {
		Te.Error("Cross doesn't walk the bond right")
	}
	defer func() {
		if recover() == nil {
			Te.Error("crossing from a foreign atom should panic")
		}
	}()
	res.Bond.Cross(31416)
}
