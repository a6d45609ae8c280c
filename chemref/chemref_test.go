/*
 * chemref_test.go
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

package chemref

import (
	"strings"
	"testing"
)

func TestElementLookups(Te *testing.T) {
	fe, err := ElementBySymbol("fe")
	if err != nil {
		Te.Fatalf("iron by lowercase symbol: %v", err)
	}
	if fe.Name != "Iron" || fe.Number != 26 || fe.Mass != 55.845 {
		Te.Errorf("iron came out wrong: %+v", fe)
	}
	au, err := ElementByNumber(79)
	if err != nil || au.Symbol != "Au" {
		Te.Errorf("element 79 should be gold: %+v, %v", au, err)
	}
	if _, err := ElementBySymbol("Xq"); err == nil {
		Te.Errorf("made-up symbol should miss the table")
	}
	if _, err := ElementByNumber(200); err == nil {
		Te.Errorf("made-up number should miss the table")
	}
	all := Elements()
	if len(all) < 40 || all[0].Symbol != "H" {
		Te.Errorf("table has %d entries starting with %q", len(all), all[0].Symbol)
	}
	m, err := AtomicMassOf("O")
	if err != nil || m != 15.999 {
		Te.Errorf("oxygen mass %v, %v", m, err)
	}
	//helium carries no Pauling electronegativity
	he, _ := ElementBySymbol("He")
	if he.Electronegativity != 0 {
		Te.Errorf("helium should have no electronegativity, got %v", he.Electronegativity)
	}
}

func TestSpectraRanges(Te *testing.T) {
	hits := IRNear(1700)
	found := false
	for _, b := range hits {
		if b.Group == "carbonyl" {
			found = true
		}
	}
	if !found {
		Te.Errorf("1700 1/cm should land on the carbonyl stretch, got %+v", hits)
	}
	if got := IRNear(100); got != nil {
		Te.Errorf("100 1/cm is below every band, got %+v", got)
	}
	aromatic := false
	for _, s := range NMRNear(7.2) {
		if strings.Contains(s.Environment, "aromatic") {
			aromatic = true
		}
	}
	if !aromatic {
		Te.Errorf("7.2 ppm should read as aromatic")
	}
	if len(NMRShifts()) < 8 || len(IRBands()) < 8 {
		Te.Errorf("spectra tables look truncated: %d NMR, %d IR", len(NMRShifts()), len(IRBands()))
	}
}

func TestReactionTable(Te *testing.T) {
	r, err := ReactionByName("Combustion")
	if err != nil {
		Te.Fatalf("combustion: %v", err)
	}
	if !strings.Contains(r.Pattern, "O2") || r.Example == "" {
		Te.Errorf("combustion entry is incomplete: %+v", r)
	}
	if _, err := ReactionByName("alchemy"); err == nil {
		Te.Errorf("alchemy is not on the syllabus")
	}
}

func TestPotentialTable(Te *testing.T) {
	cu, err := PotentialFor("Cu2+/Cu")
	if err != nil || cu.Potential != 0.34 || cu.Electrons != 2 {
		Te.Errorf("copper couple: %+v, %v", cu, err)
	}
	//a bare species name finds its couple too
	zn, err := PotentialFor("zn")
	if err != nil || zn.Potential != -0.76 {
		Te.Errorf("zinc by species: %+v, %v", zn, err)
	}
	if _, err := PotentialFor("unobtainium"); err == nil {
		Te.Errorf("made-up couple should miss the table")
	}
	all := Potentials()
	if len(all) < 15 || all[0].Potential >= all[len(all)-1].Potential {
		Te.Errorf("potentials should run from reducing to oxidizing")
	}
}
