/*
 * const.go, part of verchem.
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

/*Package chemcalc does the arithmetic of the first chemistry courses:
moles and molar masses, solution concentrations, pH, the ideal gas law
and cell potentials. Formulas go in as plain strings ("C6H12O6"),
numbers come out in the units the textbook uses. Impossible inputs (a
negative volume, a pH of something with no protons) come back as
errors worded for the student, not for the programmer.*/
package chemcalc

//This provides the physical constants and conversion factors the
//calculators run on

//Physical constants
const (
	GasConstant  = 8.31446       //J/(K*mol), which is also kPa*L/(K*mol)
	Faraday      = 96485.33      //C/mol
	Avogadro     = 6.02214076e23 //things/mol
	Kw           = 1e-14         //water autoionization constant at 25 C
	StandardTemp = 298.15        //K
	StandardPres = 101.325       //kPa
)

//Conversions
const (
	Atm2KPa      = 101.325
	KPa2Atm      = 1 / 101.325
	MmHg2KPa     = 0.133322
	KelvinOffset = 273.15 //add to Celsius to get K
	L2mL         = 1000.0
	ML2L         = 1 / 1000.0
)
