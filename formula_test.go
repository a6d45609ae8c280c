/*
 * formula_test.go
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
	"math"
	"testing"
)

func TestHillOrdering(Te *testing.T) {
	//atoms enter scrambled; the formula must not care
	D := NewDiagram()
	D.AddAtom("O", 0, 0)
	D.AddAtom("H", 1, 0)
	D.AddAtom("C", 2, 0)
	D.AddAtom("H", 3, 0)
	D.AddAtom("C", 4, 0)
	for i := 0; i < 4; i++ {
		D.AddAtom("H", 5+float64(i), 0)
	}
	if f := Formula(D); f != "C2H6O" {
		Te.Errorf("ethanol's atoms spell %q", f)
	}
	cases := []struct {
		counts map[string]int
		want   string
	}{
		{map[string]int{"H": 2, "O": 1}, "H2O"},
		{map[string]int{"N": 1, "H": 3}, "H3N"}, //Hill puts H before N without carbon around
		{map[string]int{"C": 1, "O": 2}, "CO2"},
		{map[string]int{"C": 1, "H": 1, "Cl": 3}, "CHCl3"},
		{map[string]int{"S": 1, "O": 2}, "O2S"},
		{map[string]int{}, ""},
	}
	for _, tc := range cases {
		if got := HillFormula(tc.counts); got != tc.want {
			Te.Errorf("HillFormula(%v) = %q, wanted %q", tc.counts, got, tc.want)
		}
	}
}

func TestDisconnectedFragmentsOneFormula(Te *testing.T) {
	D := NewDiagram()
	buildWater(D)
	buildWater(D)
	if f := Formula(D); f != "H4O2" {
		Te.Errorf("two waters in one sketch spell %q", f)
	}
}

func TestParseFormula(Te *testing.T) {
	cases := []struct {
		in   string
		want map[string]int
	}{
		{"H2O", map[string]int{"H": 2, "O": 1}},
		{"CH3COOH", map[string]int{"C": 2, "H": 4, "O": 2}},
		{"Ca(OH)2", map[string]int{"Ca": 1, "O": 2, "H": 2}},
		{"K4(ON(SO3)2)2", map[string]int{"K": 4, "O": 14, "N": 2, "S": 4}},
		{"H1", map[string]int{"H": 1}},
	}
	for _, tc := range cases {
		got, err := ParseFormula(tc.in)
		if err != nil {
			Te.Errorf("ParseFormula(%q): %v", tc.in, err)
			continue
		}
		if len(got) != len(tc.want) {
			Te.Errorf("ParseFormula(%q) = %v, wanted %v", tc.in, got, tc.want)
			continue
		}
		for sym, n := range tc.want {
			if got[sym] != n {
				Te.Errorf("ParseFormula(%q)[%s] = %d, wanted %d", tc.in, sym, got[sym], n)
			}
		}
	}
	bad := []string{"", "  ", "h2o", "Ca(OH", "Ca)OH(", "H0", "H2O)", "2HO"}
	for _, in := range bad {
		if _, err := ParseFormula(in); err == nil {
			Te.Errorf("ParseFormula(%q) should have failed", in)
		}
	}
}

func TestTotalMass(Te *testing.T) {
	D := NewDiagram()
	buildWater(D)
	if m := TotalMass(D); math.Abs(m-18.015) > 0.001 {
		Te.Errorf("water weighs %.4f here", m)
	}
}
