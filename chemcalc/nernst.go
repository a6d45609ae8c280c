/*
 * nernst.go, part of verchem.
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
	"math"

	"github.com/verchemxyz/verchem-sub008/chemref"
)

//Electrochemistry: standard cells from the data book, and the Nernst
//equation for everything nonstandard.

//StandardCell is Ecell = E0(cathode) - E0(anode), both couples looked
//up in the data book by name or species ("Cu2+/Cu", or just "Cu").
//It also returns the electrons transferred if both half-reactions
//agree on the count, or 0 when a balancing step is the student's job.
func StandardCell(cathode, anode string) (float64, int, error) {
	cat, err := chemref.PotentialFor(cathode)
	if err != nil {
		return 0, 0, err
	}
	an, err := chemref.PotentialFor(anode)
	if err != nil {
		return 0, 0, err
	}
	n := cat.Electrons
	if an.Electrons != n {
		n = 0
	}
	return cat.Potential - an.Potential, n, nil
}

//CellPotential is the Nernst equation, E = E0 - (RT/nF)*ln(Q), at the
//given temperature in kelvin.
func CellPotential(e0 float64, n int, q, tempK float64) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("a cell reaction transfers at least one electron, not %d", n)
	}
	if q <= 0 {
		return 0, fmt.Errorf("the reaction quotient must be positive, got %g", q)
	}
	if tempK <= 0 {
		return 0, fmt.Errorf("%g K is at or below absolute zero", tempK)
	}
	return e0 - (GasConstant*tempK)/(float64(n)*Faraday)*math.Log(q), nil
}

//CellPotential25 is the Nernst equation at 25 C, the form with
//RT/F = 0.0257 V that the courses quote.
func CellPotential25(e0 float64, n int, q float64) (float64, error) {
	return CellPotential(e0, n, q, StandardTemp)
}

//KFromPotential turns a standard potential into the equilibrium
//constant of the cell reaction: ln K = nFE0/(RT).
func KFromPotential(e0 float64, n int, tempK float64) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("a cell reaction transfers at least one electron, not %d", n)
	}
	if tempK <= 0 {
		return 0, fmt.Errorf("%g K is at or below absolute zero", tempK)
	}
	return math.Exp(float64(n) * Faraday * e0 / (GasConstant * tempK)), nil
}
