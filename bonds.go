/*
 * bonds.go, part of verchem.
 *
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
 *
 * Verchem is developed for chemistry instruction at secondary-school
 * and introductory university level.
 *
 */

package chem

import (
	"fmt"
)

//Bond multiplicities run from single to triple. Aromatic or partial
//orders are not represented; a benzene sketch alternates 1 and 2.
const (
	MinOrder = 1
	MaxOrder = 3
)

//Bond joins the atoms with ids A1 and A2. The pair is unordered and unique:
//a sketch never holds two bonds over the same pair, re-typing changes the
//Order of the existing record instead. Ids, as with atoms, are session-unique.
type Bond struct {
	ID    int
	A1    int
	A2    int
	Order int
}

//Copy returns a copy of the Bond object.
func (B *Bond) Copy() *Bond {
	Newb := new(Bond)
	Newb.ID = B.ID
	Newb.A1 = B.A1
	Newb.A2 = B.A2
	Newb.Order = B.Order
	return Newb
}

//Has tells whether the atom with the given id is an endpoint of the bond.
func (B *Bond) Has(id int) bool {
	return B.A1 == id || B.A2 == id
}

//Cross takes the id of one endpoint of the bond and returns the id of the
//other one. It panics if the given id is not an endpoint: walking a bond
//from an atom it doesn't touch has got to be a programming error.
func (B *Bond) Cross(id int) int {
	if id == B.A1 {
		return B.A2
	}
	if id == B.A2 {
		return B.A1
	}
	panic(ErrNotInBond)
}

//BondOutcome says what Connect did to the sketch.
type BondOutcome int

const (
	BondRejected BondOutcome = iota //nothing changed
	BondCreated                     //a new bond record exists
	BondRetyped                     //the existing record changed order
)

func (o BondOutcome) String() string {
	switch o {
	case BondCreated:
		return "created"
	case BondRetyped:
		return "retyped"
	}
	return "rejected"
}

//BondReject says why Connect refused, for rejections. The zero value
//RejectNone accompanies the successful outcomes.
type BondReject int

const (
	RejectNone     BondReject = iota
	RejectSelfBond            //both ids name the same atom
	RejectMissing             //one of the ids no longer names an atom
	RejectOrder               //order outside the 1..3 range
	RejectElement             //the element doesn't take part in bonds of that order
	RejectFull                //the element's bond budget is already spent
)

func (r BondReject) String() string {
	switch r {
	case RejectSelfBond:
		return "an atom can not bond itself"
	case RejectMissing:
		return "one of the atoms is gone from the sketch"
	case RejectOrder:
		return "bond order must be single, double or triple"
	case RejectElement:
		return "the element does not form bonds of that order"
	case RejectFull:
		return "the element already has all the bonds it takes"
	}
	return ""
}

//BondResult is what Connect hands back: the outcome, the reason when
//rejected, the bond record touched when not, and for element-level
//rejections the symbol that blocked, so the sketcher can say which half
//of the pair refused.
type BondResult struct {
	Outcome BondOutcome
	Reason  BondReject
	Bond    *Bond  //nil on rejection
	Blocker string //empty unless Reason is RejectElement or RejectFull
}

//Applied tells whether the sketch changed at all.
func (R BondResult) Applied() bool {
	return R.Outcome != BondRejected
}

func (R BondResult) String() string {
	if R.Applied() {
		return R.Outcome.String()
	}
	if R.Blocker != "" {
		return fmt.Sprintf("rejected: %s (%s)", R.Reason.String(), R.Blocker)
	}
	return fmt.Sprintf("rejected: %s", R.Reason.String())
}

func reject(why BondReject, blocker string) BondResult {
	return BondResult{Outcome: BondRejected, Reason: why, Blocker: blocker}
}

//Connect asks for a bond of the given order between the atoms with ids id1
//and id2. It is the only way bonds enter a sketch, and it either applies the
//request whole or leaves the sketch exactly as it was:
//
//If the pair is already bonded, the existing record takes the new order
//(subject to the same element checks) and the outcome is BondRetyped.
//Otherwise a new record is added and the outcome is BondCreated.
//
//A request is rejected when the ids coincide, when either id is stale, when
//the order is outside 1..3 or not offered by either element, or, for new
//bonds, when either atom already carries its element's full bond budget.
//Rejections are part of normal sketching (students try things), so they are
//reported in the result rather than as errors.
func (D *Diagram) Connect(id1, id2, order int) BondResult {
	if id1 == id2 {
		return reject(RejectSelfBond, "")
	}
	at1 := D.AtomByID(id1)
	at2 := D.AtomByID(id2)
	if at1 == nil || at2 == nil {
		return reject(RejectMissing, "")
	}
	if order < MinOrder || order > MaxOrder {
		return reject(RejectOrder, "")
	}
	for _, at := range [2]*Atom{at1, at2} {
		if !orderAllowed(at.Symbol, order) {
			return reject(RejectElement, at.Symbol)
		}
	}
	if prev := D.BondBetween(id1, id2); prev != nil {
		prev.Order = order
		return BondResult{Outcome: BondRetyped, Bond: prev}
	}
	for _, at := range [2]*Atom{at1, at2} {
		max := symbolMaxBonds[at.Symbol]
		if max > 0 && len(D.BondsOn(at.ID)) >= max {
			return reject(RejectFull, at.Symbol)
		}
	}
	b := &Bond{ID: D.nextBond, A1: id1, A2: id2, Order: order}
	D.nextBond++
	D.bonds = append(D.bonds, b)
	return BondResult{Outcome: BondCreated, Bond: b}
}

//orderAllowed checks the multiplicity table for one element.
func orderAllowed(symbol string, order int) bool {
	for _, o := range symbolOrders[symbol] {
		if o == order {
			return true
		}
	}
	return false
}

//CanBond reports whether a Connect request between the atoms with ids id1
//and id2, at the given order, would be applied, without applying anything.
//Palettes use it to gray out choices before the user tries them.
func (D *Diagram) CanBond(id1, id2, order int) bool {
	for _, o := range D.OrdersBetween(id1, id2) {
		if o == order {
			return true
		}
	}
	return false
}

//OrdersBetween returns the bond multiplicities a Connect between the two
//atoms would accept right now: the element tables of both endpoints
//intersected, minus anything the bond budgets refuse. For an already
//bonded pair these are the legal re-type targets. An empty return means
//the pair can not be joined at all.
func (D *Diagram) OrdersBetween(id1, id2 int) []int {
	at1 := D.AtomByID(id1)
	at2 := D.AtomByID(id2)
	if at1 == nil || at2 == nil || id1 == id2 {
		return nil
	}
	ret := make([]int, 0, MaxOrder)
	bonded := D.BondBetween(id1, id2) != nil
	for o := MinOrder; o <= MaxOrder; o++ {
		if !orderAllowed(at1.Symbol, o) || !orderAllowed(at2.Symbol, o) {
			continue
		}
		if !bonded {
			full := false
			for _, at := range [2]*Atom{at1, at2} {
				max := symbolMaxBonds[at.Symbol]
				if max > 0 && len(D.BondsOn(at.ID)) >= max {
					full = true
				}
			}
			if full {
				continue
			}
		}
		ret = append(ret, o)
	}
	return ret
}
