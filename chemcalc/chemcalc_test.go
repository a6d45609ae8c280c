/*
 * chemcalc_test.go
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

/*The expected numbers here are the ones printed in the course
 * workbooks, so a failing test means a student would catch us too.*/

package chemcalc

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func near(Te *testing.T, what string, got, want, tol float64) {
	Te.Helper()
	if !scalar.EqualWithinAbs(got, want, tol) {
		Te.Errorf("%s: got %v, wanted %v", what, got, want)
	}
}

func TestMolarMasses(Te *testing.T) {
	for _, c := range []struct {
		formula string
		mass    float64
	}{
		{"H2O", 18.015},
		{"C6H12O6", 180.156},
		{"NaCl", 58.44},
		{"Ca(OH)2", 74.092},
		{"CuSO4", 159.602},
	} {
		got, err := MolarMass(c.formula)
		if err != nil {
			Te.Errorf("%s: %v", c.formula, err)
			continue
		}
		near(Te, c.formula, got, c.mass, 0.01)
	}
	if _, err := MolarMass("Xq2"); err == nil {
		Te.Errorf("made-up element should not have a molar mass")
	}
	if _, err := MolarMass(""); err == nil {
		Te.Errorf("empty formula should not parse")
	}
}

func TestMolesAndGrams(Te *testing.T) {
	n, err := MolesOf(36.03, "H2O")
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "moles of 36.03 g water", n, 2.0, 1e-3)
	g, err := GramsOf(0.5, "NaCl")
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "grams of half a mole of salt", g, 29.22, 0.01)
	if _, err := MolesOf(-1, "H2O"); err == nil {
		Te.Errorf("negative mass should refuse")
	}
}

func TestPercentComposition(Te *testing.T) {
	pc, err := PercentComposition("H2O")
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "H in water", pc["H"], 11.19, 0.05)
	near(Te, "O in water", pc["O"], 88.81, 0.05)
	var sum float64
	for _, v := range pc {
		sum += v
	}
	near(Te, "percent total", sum, 100, 1e-9)
}

func TestSolutions(Te *testing.T) {
	m, err := Molarity(0.5, 0.25)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "molarity", m, 2.0, 1e-9)
	c2, err := FinalConcentration(2.0, 0.1, 1.0)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "diluted concentration", c2, 0.2, 1e-9)
	v1, err := StockVolume(10, 1, 0.5)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "stock to measure", v1, 0.05, 1e-9)
	if _, err := Molarity(1, 0); err == nil {
		Te.Errorf("zero volume should refuse")
	}
	if _, err := FinalConcentration(2, 1.0, 0.5); err == nil {
		Te.Errorf("shrinking volume is not a dilution")
	}
	if _, err := StockVolume(1, 2, 1); err == nil {
		Te.Errorf("dilution cannot concentrate")
	}
}

func TestIdealGas(Te *testing.T) {
	//the molar volume at STP that every course memorizes
	v, err := GasVolume(1, StandardPres, 273.15)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "molar volume at STP", v, 22.414, 0.01)
	n, err := GasMoles(StandardPres, 22.414, 273.15)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "moles back from the molar volume", n, 1.0, 1e-3)
	p, err := GasPressure(2, 10, 300)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "pressure of 2 mol in 10 L", p, 498.87, 0.1)
	t, err := GasTemperature(p, 10, 2)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "temperature back", t, 300, 1e-6)
	if _, err := GasVolume(1, 101.325, -5); err == nil {
		Te.Errorf("negative kelvin should refuse")
	}
}

func TestPH(Te *testing.T) {
	ph, err := PH(1e-7)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "neutral water", ph, 7, 1e-9)
	near(Te, "H+ at pH 3", HFromPH(3), 1e-3, 1e-12)
	ph, err = StrongAcidPH(0.01)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "0.01 M strong acid", ph, 2, 1e-9)
	ph, err = StrongBasePH(0.001)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "0.001 M strong base", ph, 11, 1e-9)
	//0.1 M acetic acid, Ka 1.8e-5: the workbook says 2.87
	ph, err = WeakAcidPH(0.1, 1.8e-5)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "0.1 M acetic acid", ph, 2.875, 0.01)
	ph, err = WeakBasePH(0.1, 1.8e-5)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "0.1 M ammonia", ph, 11.125, 0.01)
	ph, err = BufferPH(4.74, 0.1, 0.1)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "equimolar acetate buffer", ph, 4.74, 1e-9)
	pk, err := PKa(1.8e-5)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "pKa of acetic acid", pk, 4.745, 0.001)
	if _, err := PH(0); err == nil {
		Te.Errorf("no protons, no pH")
	}
	if _, err := StrongAcidPH(1e-9); err == nil {
		Te.Errorf("below 1e-6 the shortcut must refuse")
	}
}

func TestElectrochemistry(Te *testing.T) {
	//the Daniell cell, the first one on the blackboard
	e, n, err := StandardCell("Cu2+/Cu", "Zn2+/Zn")
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "Daniell cell", e, 1.10, 1e-9)
	if n != 2 {
		Te.Errorf("Daniell cell moves 2 electrons, got %d", n)
	}
	//species shorthand, and a mismatched electron count
	e, n, err = StandardCell("Ag+/Ag", "zn")
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "silver-zinc", e, 1.56, 1e-9)
	if n != 0 {
		Te.Errorf("mismatched electron counts should come back 0, got %d", n)
	}
	if _, _, err := StandardCell("Cu2+/Cu", "unobtainium"); err == nil {
		Te.Errorf("unknown couple should refuse")
	}
	e, err = CellPotential25(1.10, 2, 1)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "standard conditions leave E0 alone", e, 1.10, 1e-12)
	e, err = CellPotential(1.10, 2, 1e-3, StandardTemp)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "dilute Daniell cell", e, 1.1887, 0.001)
	if _, err := CellPotential(1, 0, 1, 298); err == nil {
		Te.Errorf("zero electrons should refuse")
	}
	if _, err := CellPotential(1, 2, -1, 298); err == nil {
		Te.Errorf("negative quotient should refuse")
	}
	//E0 = RT/F makes ln K exactly 1
	k, err := KFromPotential(GasConstant*StandardTemp/Faraday, 1, StandardTemp)
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, "K at E0 = RT/F", k, math.E, 1e-6)
}
