/*
 * valence_test.go
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

func TestLoneHydrogen(Te *testing.T) {
	D := NewDiagram()
	h := D.AddAtom("H", 0, 0)
	V := Validate(D)
	if V.Stable {
		Te.Error("a lone hydrogen can not be content")
	}
	r := V.Report(h.ID)
	if r == nil {
		Te.Fatal("no report for the only atom in the sketch")
	}
	if r.Needs != 1 || r.FormalCharge != 0 || r.Lone != 1 {
		Te.Errorf("lone H should need exactly 1 electron at charge 0, got %+v", *r)
	}
}

func TestWaterIsStable(Te *testing.T) {
	D := NewDiagram()
	o, h1, h2 := buildWater(D)
	V := Validate(D)
	if !V.Stable {
		Te.Errorf("water came out unstable: %+v", V)
	}
	if V.Formula != "H2O" {
		Te.Errorf("water spells %q", V.Formula)
	}
	r := V.Report(o.ID)
	if r.Lone != 4 || r.Shell != 8 || r.Needs != 0 {
		Te.Errorf("the oxygen of water should keep two lone pairs in a full shell, got %+v", *r)
	}
	for _, h := range []*Atom{h1, h2} {
		if rh := V.Report(h.ID); rh.Shell != 2 || !rh.Stable() {
			Te.Errorf("hydrogen %d in water: %+v", h.ID, *rh)
		}
	}
}

func TestUnderbondedOxygen(Te *testing.T) {
	D := NewDiagram()
	o := D.AddAtom("O", 0, 0)
	h := D.AddAtom("H", 20, 0)
	D.Connect(o.ID, h.ID, 1)
	V := Validate(D)
	if V.Stable {
		Te.Error("hydroxyl on its own should read unstable")
	}
	r := V.Report(o.ID)
	if r.Needs != 1 || r.FormalCharge != 0 {
		Te.Errorf("an O with one single bond should need 1 more electron, got %+v", *r)
	}
	if rh := V.Report(h.ID); !rh.Stable() {
		Te.Errorf("the H of hydroxyl is fine, but reads %+v", *rh)
	}
	ids := V.Unstable(D)
	if len(ids) != 1 || ids[0] != o.ID {
		Te.Errorf("Unstable should point at the oxygen, got %v", ids)
	}
}

func TestMethane(Te *testing.T) {
	D := NewDiagram()
	c, _ := buildMethane(D)
	V := Validate(D)
	if !V.Stable || V.Formula != "CH4" {
		Te.Errorf("methane: stable=%v formula=%q", V.Stable, V.Formula)
	}
	r := V.Report(c.ID)
	if r.Lone != 0 || r.Shell != 8 || r.FormalCharge != 0 {
		Te.Errorf("the carbon of methane: %+v", *r)
	}
	fmt.Println("methane checks out,", V.Formula, V.Mass, "g/mol")
}

func TestDinitrogen(Te *testing.T) {
	D := NewDiagram()
	n1 := D.AddAtom("N", 0, 0)
	n2 := D.AddAtom("N", 30, 0)
	if res := D.Connect(n1.ID, n2.ID, 3); !res.Applied() {
		Te.Fatalf("N#N should be allowed: %v", res)
	}
	V := Validate(D)
	if !V.Stable {
		Te.Errorf("N2 with a triple bond should be content: %+v", V.Report(n1.ID))
	}
	if r := V.Report(n1.ID); r.Lone != 2 || r.Shell != 8 {
		Te.Errorf("each N of N2 keeps one lone pair, got %+v", *r)
	}
}

//TestOverbondedCarbon builds an allene-gone-wrong: a central carbon holding
//two triple bonds. The bond count is within budget, so the gate lets it
//happen, and the bookkeeping must answer with a negative formal charge.
func TestOverbondedCarbon(Te *testing.T) {
	D := NewDiagram()
	mid := D.AddAtom("C", 50, 0)
	left := D.AddAtom("C", 0, 0)
	right := D.AddAtom("C", 100, 0)
	if res := D.Connect(mid.ID, left.ID, 3); !res.Applied() {
		Te.Fatal(res.String())
	}
	if res := D.Connect(mid.ID, right.ID, 3); !res.Applied() {
		Te.Fatal(res.String())
	}
	V := Validate(D)
	if V.Stable {
		Te.Error("a doubly-tripled carbon can not be stable")
	}
	r := V.Report(mid.ID)
	if r.FormalCharge != -2 {
		Te.Errorf("over-bonding should show as charge -2, got %+v", *r)
	}
	if r.Needs != 0 {
		Te.Errorf("the needs count floors at zero when over-bonded, got %d", r.Needs)
	}
	if r.Lone != 0 {
		Te.Errorf("no electrons left for lone pairs here, got %d", r.Lone)
	}
}

func TestEmptySketch(Te *testing.T) {
	D := NewDiagram()
	V := Validate(D)
	if !V.Stable || V.Formula != "" || len(V.Atoms) != 0 {
		Te.Errorf("an empty sketch should be vacuously stable and empty: %+v", V)
	}
}

//TestValidationKeysSurviveChurn makes sure reports stay keyed to their atoms
//through deletions that reshuffle the sketch internally.
func TestValidationKeysSurviveChurn(Te *testing.T) {
	D := NewDiagram()
	c1 := D.AddAtom("C", 0, 0)
	o := D.AddAtom("O", 30, 0)
	c2 := D.AddAtom("C", 60, 0)
	D.Connect(c2.ID, o.ID, 2)
	D.DeleteAtoms(c1.ID)
	V := Validate(D)
	if V.Report(c1.ID) != nil {
		Te.Error("a deleted atom should not be in the report")
	}
	if r := V.Report(o.ID); r == nil || r.OrderSum != 2 || r.Needs != 0 {
		Te.Errorf("the doubly bonded O reports %+v", r)
	}
	if r := V.Report(c2.ID); r == nil || r.Needs != 2 {
		Te.Errorf("the half-done carbonyl carbon keeps two lone electrons and needs 2 more, got %+v", r)
	}
}
