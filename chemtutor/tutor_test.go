/*
 * tutor_test.go
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

package chemtutor

import (
	"fmt"
	"strings"
	"testing"

	chem "github.com/verchemxyz/verchem-sub008"
)

func TestExplainStableSketch(Te *testing.T) {
	D := chem.NewDiagram()
	o := D.AddAtom("O", 100, 100)
	h1 := D.AddAtom("H", 60, 120)
	h2 := D.AddAtom("H", 140, 120)
	D.Connect(o.ID, h1.ID, 1)
	D.Connect(o.ID, h2.ID, 1)
	out, err := ExplainSketch(D)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(out)
	for _, want := range []string{"H2O", "3 atoms", "2 bonds", "complete"} {
		if !strings.Contains(out, want) {
			Te.Errorf("stable water explanation misses %q:\n%s", want, out)
		}
	}
}

func TestExplainUnfinishedSketch(Te *testing.T) {
	D := chem.NewDiagram()
	o := D.AddAtom("O", 100, 100)
	h := D.AddAtom("H", 60, 120)
	D.Connect(o.ID, h.ID, 1)
	out, err := ExplainSketch(D)
	if err != nil {
		Te.Fatal(err)
	}
	for _, want := range []string{"1 atom still needs attention", "Oxygen", "needs 1 more"} {
		if !strings.Contains(out, want) {
			Te.Errorf("hydroxyl explanation misses %q:\n%s", want, out)
		}
	}
}

func TestExplainOverbondedAtom(Te *testing.T) {
	D := chem.NewDiagram()
	c := D.AddAtom("C", 100, 100)
	n1 := D.AddAtom("N", 40, 100)
	n2 := D.AddAtom("N", 160, 100)
	D.Connect(c.ID, n1.ID, 3)
	D.Connect(c.ID, n2.ID, 3)
	out, err := ExplainSketch(D)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(out, "formal charge -2") {
		Te.Errorf("doubly-triple-bonded carbon should read charge -2:\n%s", out)
	}
	atom, err := ExplainAtom(D, c.ID)
	if err != nil {
		Te.Fatal(err)
	}
	for _, want := range []string{"Carbon", "2 bonds with total order 6", "more than it has", "formal charge -2"} {
		if !strings.Contains(atom, want) {
			Te.Errorf("carbon deep-dive misses %q:\n%s", want, atom)
		}
	}
}

func TestExplainAtomArithmetic(Te *testing.T) {
	D := chem.NewDiagram()
	o := D.AddAtom("O", 100, 100)
	h := D.AddAtom("H", 60, 120)
	D.Connect(o.ID, h.ID, 1)
	out, err := ExplainAtom(D, o.ID)
	if err != nil {
		Te.Fatal(err)
	}
	for _, want := range []string{
		"Oxygen (O, atom 1) makes 1 bond with total order 1",
		"brings 6 valence electrons",
		"leaving 5 unshared",
		"holds 7 of the 8",
		"needs 1 more electron",
	} {
		if !strings.Contains(out, want) {
			Te.Errorf("oxygen walkthrough misses %q:\n%s", want, out)
		}
	}
	happy, err := ExplainAtom(D, h.ID)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(happy, "satisfied") {
		Te.Errorf("bonded hydrogen should be satisfied:\n%s", happy)
	}
	if _, err := ExplainAtom(D, 99); err == nil {
		Te.Errorf("missing atom should refuse")
	}
}

func TestExplainEmptyAndReaction(Te *testing.T) {
	out, err := ExplainSketch(chem.NewDiagram())
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(out, "empty") {
		Te.Errorf("empty sketch explanation: %q", out)
	}
	r, err := ExplainReaction("combustion")
	if err != nil {
		Te.Fatal(err)
	}
	for _, want := range []string{"combustion", "CH4", "O2"} {
		if !strings.Contains(r, want) {
			Te.Errorf("combustion card misses %q:\n%s", want, r)
		}
	}
	if _, err := ExplainReaction("transmutation"); err == nil {
		Te.Errorf("transmutation is still not chemistry")
	}
}
