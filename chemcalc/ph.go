/*
 * ph.go, part of verchem.
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
)

//Acid-base arithmetic, all of it at 25 C where pKw = 14. The strong
//acid and base formulas ignore water's own autoionization, which is the
//approximation every course makes; below about 1e-6 mol/L it visibly
//breaks down (pure logic would have 1e-8 mol/L HCl at pH 8) and the
//functions say so instead of answering.

//PH is -log10 of the H+ (really H3O+) concentration in mol/L.
func PH(h float64) (float64, error) {
	if h <= 0 {
		return 0, fmt.Errorf("there is no pH without protons: [H+] = %g mol/L", h)
	}
	return -math.Log10(h), nil
}

//HFromPH inverts PH: the H+ concentration at a given pH.
func HFromPH(ph float64) float64 {
	return math.Pow(10, -ph)
}

//POH is -log10 of the OH- concentration in mol/L.
func POH(oh float64) (float64, error) {
	if oh <= 0 {
		return 0, fmt.Errorf("there is no pOH without hydroxide: [OH-] = %g mol/L", oh)
	}
	return -math.Log10(oh), nil
}

//PHFromPOH converts through pKw = 14.
func PHFromPOH(poh float64) float64 {
	return 14 - poh
}

//StrongAcidPH is the pH of a fully dissociated monoprotic acid.
func StrongAcidPH(conc float64) (float64, error) {
	if err := dilutionLimit(conc); err != nil {
		return 0, err
	}
	return -math.Log10(conc), nil
}

//StrongBasePH is the pH of a fully dissociated one-hydroxide base.
func StrongBasePH(conc float64) (float64, error) {
	if err := dilutionLimit(conc); err != nil {
		return 0, err
	}
	return 14 + math.Log10(conc), nil
}

//WeakAcidPH solves the Ka equilibrium exactly (the quadratic, not the
//square-root shortcut): x*x/(c-x) = Ka, pH = -log10 x.
func WeakAcidPH(conc, ka float64) (float64, error) {
	x, err := equilibriumX(conc, ka)
	if err != nil {
		return 0, err
	}
	return -math.Log10(x), nil
}

//WeakBasePH does the same through Kb for the hydroxide side.
func WeakBasePH(conc, kb float64) (float64, error) {
	x, err := equilibriumX(conc, kb)
	if err != nil {
		return 0, err
	}
	return 14 + math.Log10(x), nil
}

//BufferPH is Henderson-Hasselbalch: pKa + log10(base/acid).
func BufferPH(pka, acid, base float64) (float64, error) {
	if acid <= 0 || base <= 0 {
		return 0, fmt.Errorf("a buffer needs both partners: acid %g, base %g mol/L", acid, base)
	}
	return pka + math.Log10(base/acid), nil
}

//PKa converts an acid constant to its log form.
func PKa(ka float64) (float64, error) {
	if ka <= 0 {
		return 0, fmt.Errorf("%g is not an equilibrium constant", ka)
	}
	return -math.Log10(ka), nil
}

//equilibriumX is the dissociated concentration x from
//x^2 + K*x - K*c = 0, taking the positive root.
func equilibriumX(conc, k float64) (float64, error) {
	if err := dilutionLimit(conc); err != nil {
		return 0, err
	}
	if k <= 0 {
		return 0, fmt.Errorf("%g is not an equilibrium constant", k)
	}
	return (-k + math.Sqrt(k*k+4*k*conc)) / 2, nil
}

func dilutionLimit(conc float64) error {
	if conc <= 0 {
		return fmt.Errorf("%g mol/L is not a concentration", conc)
	}
	if conc < 1e-6 {
		return fmt.Errorf("at %g mol/L water's own ions take over; this shortcut stops at 1e-6", conc)
	}
	return nil
}
