/*
 * stoich.go, part of verchem.
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

package chemcalc

import (
	"fmt"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/chemref"
)

//MolarMass computes the molar mass of a formula in g/mol. The formula
//syntax is the usual one with parentheses, "Ca(OH)2"; any element in
//the data book is accepted, not just the ones the sketcher draws.
func MolarMass(formula string) (float64, error) {
	counts, err := chem.ParseFormula(formula)
	if err != nil {
		return 0, err
	}
	var total float64
	for symbol, n := range counts {
		m, err := chemref.AtomicMassOf(symbol)
		if err != nil {
			return 0, fmt.Errorf("%q: %v", formula, err)
		}
		total += float64(n) * m
	}
	return total, nil
}

//MolesOf converts a weighed-out mass in grams to moles of the formula.
func MolesOf(grams float64, formula string) (float64, error) {
	if grams < 0 {
		return 0, fmt.Errorf("a mass of %g g cannot sit on a balance", grams)
	}
	mm, err := MolarMass(formula)
	if err != nil {
		return 0, err
	}
	return grams / mm, nil
}

//GramsOf converts moles of the formula to the mass to weigh out.
func GramsOf(moles float64, formula string) (float64, error) {
	if moles < 0 {
		return 0, fmt.Errorf("%g mol is not an amount of substance", moles)
	}
	mm, err := MolarMass(formula)
	if err != nil {
		return 0, err
	}
	return moles * mm, nil
}

//PercentComposition gives the mass percent of each element in the
//formula. The percentages sum to 100 up to rounding.
func PercentComposition(formula string) (map[string]float64, error) {
	counts, err := chem.ParseFormula(formula)
	if err != nil {
		return nil, err
	}
	masses := make(map[string]float64, len(counts))
	var total float64
	for symbol, n := range counts {
		m, err := chemref.AtomicMassOf(symbol)
		if err != nil {
			return nil, fmt.Errorf("%q: %v", formula, err)
		}
		masses[symbol] = float64(n) * m
		total += masses[symbol]
	}
	for symbol := range masses {
		masses[symbol] = 100 * masses[symbol] / total
	}
	return masses, nil
}

//Molarity is moles of solute over liters of solution, in mol/L.
func Molarity(moles, liters float64) (float64, error) {
	if liters <= 0 {
		return 0, fmt.Errorf("%g L is not a volume a solution can have", liters)
	}
	if moles < 0 {
		return 0, fmt.Errorf("%g mol is not an amount of substance", moles)
	}
	return moles / liters, nil
}

//FinalConcentration dilutes: c1*v1 = c2*v2 solved for the new
//concentration after topping a stock up to v2.
func FinalConcentration(c1, v1, v2 float64) (float64, error) {
	if c1 < 0 || v1 < 0 {
		return 0, fmt.Errorf("the stock can't have negative concentration or volume")
	}
	if v2 <= 0 {
		return 0, fmt.Errorf("%g L is not a volume a solution can have", v2)
	}
	if v2 < v1 {
		return 0, fmt.Errorf("dilution only adds solvent; %g L can't shrink to %g L", v1, v2)
	}
	return c1 * v1 / v2, nil
}

//StockVolume answers the lab-bench question: how much stock at c1 to
//measure out to end with v2 of solution at c2.
func StockVolume(c1, c2, v2 float64) (float64, error) {
	if c1 <= 0 {
		return 0, fmt.Errorf("a stock at %g mol/L can't make anything", c1)
	}
	if c2 < 0 || v2 <= 0 {
		return 0, fmt.Errorf("the target must have a volume and a nonnegative concentration")
	}
	if c2 > c1 {
		return 0, fmt.Errorf("dilution can't raise the concentration above the stock's %g mol/L", c1)
	}
	return c2 * v2 / c1, nil
}

//The ideal gas law, PV = nRT, solved for each variable in turn.
//Pressures are in kPa, volumes in L, temperatures in K, so the gas
//constant is used as 8.31446 kPa*L/(K*mol).

//GasPressure returns p for n moles in v liters at t kelvin.
func GasPressure(n, v, t float64) (float64, error) {
	if err := gasCheck(n, v, t); err != nil {
		return 0, err
	}
	return n * GasConstant * t / v, nil
}

//GasVolume returns v for n moles at p kPa and t kelvin.
func GasVolume(n, p, t float64) (float64, error) {
	if err := gasCheck(n, p, t); err != nil {
		return 0, err
	}
	return n * GasConstant * t / p, nil
}

//GasMoles returns n for p kPa filling v liters at t kelvin.
func GasMoles(p, v, t float64) (float64, error) {
	if err := gasCheck(1, v, t); err != nil {
		return 0, err
	}
	if p <= 0 {
		return 0, fmt.Errorf("%g kPa is not a pressure a gas can exert", p)
	}
	return p * v / (GasConstant * t), nil
}

//GasTemperature returns t for p kPa, v liters and n moles.
func GasTemperature(p, v, n float64) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%g mol of gas has no temperature to speak of", n)
	}
	if p <= 0 || v <= 0 {
		return 0, fmt.Errorf("pressure and volume must be positive, got %g kPa and %g L", p, v)
	}
	return p * v / (n * GasConstant), nil
}

func gasCheck(n, v, t float64) error {
	if n <= 0 {
		return fmt.Errorf("%g mol of gas is nothing to compute with", n)
	}
	if v <= 0 {
		return fmt.Errorf("%g is not a positive volume or pressure", v)
	}
	if t <= 0 {
		return fmt.Errorf("%g K is at or below absolute zero", t)
	}
	return nil
}
