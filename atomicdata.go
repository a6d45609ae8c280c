/*
 * atomicdata.go, part of verchem.
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

//The palette is the set of elements a sketch may contain. It is small on
//purpose: these cover the molecules drawn in introductory organic and
//general chemistry, and every entry has a full row in every table below,
//so the bonding rules never have to guess.
var palette = []string{"H", "C", "N", "O", "F", "P", "S", "Cl", "Br", "I"}

//A map for assigning the number of valence electrons to elements.
//Main-group values, i.e. the group number for groups 1-2 and
//group number minus 10 for 13-18.
var symbolValence = map[string]int{
	"H":  1,
	"C":  4,
	"N":  5,
	"O":  6,
	"F":  7,
	"P":  5,
	"S":  6,
	"Cl": 7,
	"Br": 7,
	"I":  7,
}

//A map for the electron count of a closed valence shell.
//Only hydrogen closes at a duet. Helium would too, but a noble
//gas has no business in a bonding palette.
var symbolShell = map[string]int{
	"H":  2,
	"C":  8,
	"N":  8,
	"O":  8,
	"F":  8,
	"P":  8,
	"S":  8,
	"Cl": 8,
	"Br": 8,
	"I":  8,
}

//A map for checking that atoms don't have too many bonds.
//The value is the largest number of incident bonds the element accepts
//in a sketch. A value of 0 would mean undefined, i.e. that the atom
//shouldn't be checked for max bonds; every palette element is defined.
//P and S get the expanded budgets so PCl5 and SF6 can be drawn.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"N":  3,
	"O":  2,
	"F":  1,
	"P":  5,
	"S":  6,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

//A map for the bond multiplicities each element takes part in.
//Halogens and hydrogen only bond singly. Oxygen and sulfur stop at
//double bonds; letting them form triples only produces species
//(CO, mostly) that confuse the electron bookkeeping we teach.
var symbolOrders = map[string][]int{
	"H":  {1},
	"C":  {1, 2, 3},
	"N":  {1, 2, 3},
	"O":  {1, 2},
	"F":  {1},
	"P":  {1, 2},
	"S":  {1, 2},
	"Cl": {1},
	"Br": {1},
	"I":  {1},
}

//A map for assigning mass to elements, for quick formula-mass readouts
//in the sketcher. Conventional atomic weights, IUPAC 2021. The chemref
//subpackage carries the full table; this one covers just the palette.
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Br": 79.904,
	"I":  126.90,
}

//A map with the element names, as shown in palette tooltips.
var symbolName = map[string]string{
	"H":  "Hydrogen",
	"C":  "Carbon",
	"N":  "Nitrogen",
	"O":  "Oxygen",
	"F":  "Fluorine",
	"P":  "Phosphorus",
	"S":  "Sulfur",
	"Cl": "Chlorine",
	"Br": "Bromine",
	"I":  "Iodine",
}

//A map with CPK-style display colors (RGB). Values follow the Jmol
//conventions, which students will meet again in any viewer they use later.
var symbolColor = map[string][3]uint8{
	"H":  {0xFF, 0xFF, 0xFF},
	"C":  {0x90, 0x90, 0x90},
	"N":  {0x30, 0x50, 0xF8},
	"O":  {0xFF, 0x0D, 0x0D},
	"F":  {0x90, 0xE0, 0x50},
	"P":  {0xFF, 0x80, 0x00},
	"S":  {0xFF, 0xFF, 0x30},
	"Cl": {0x1F, 0xF0, 0x1F},
	"Br": {0xA6, 0x29, 0x29},
	"I":  {0x94, 0x00, 0x94},
}

//Palette returns the symbols a sketch may contain, in the order they are
//presented to the user. The returned slice is a copy.
func Palette() []string {
	ret := make([]string, len(palette))
	copy(ret, palette)
	return ret
}

//KnownSymbol tells whether symbol belongs to the sketching palette.
func KnownSymbol(symbol string) bool {
	_, ok := symbolValence[symbol]
	return ok
}

//Valence returns the number of valence electrons for the element given,
//or 0 if the element is not in the palette.
func Valence(symbol string) int {
	return symbolValence[symbol]
}

//ShellSize returns the electron count at which the element's valence shell
//is considered closed (2 for H, 8 for everything else in the palette),
//or 0 if the element is not in the palette.
func ShellSize(symbol string) int {
	return symbolShell[symbol]
}

//MaxBonds returns the bond budget of the element: the largest number of
//incident bonds it accepts. 0 means the element is not in the palette.
func MaxBonds(symbol string) int {
	return symbolMaxBonds[symbol]
}

//AllowedOrders returns the bond multiplicities the element can take part
//in, always a subset of {1,2,3}, or nil if the element is not in the
//palette. The returned slice is a copy.
func AllowedOrders(symbol string) []int {
	ord, ok := symbolOrders[symbol]
	if !ok {
		return nil
	}
	ret := make([]int, len(ord))
	copy(ret, ord)
	return ret
}

//AtomicMass returns the conventional atomic weight of the element, or 0
//if the element is not in the palette.
func AtomicMass(symbol string) float64 {
	return symbolMass[symbol]
}

//ElementName returns the English name of the element ("C" -> "Carbon"),
//or the symbol itself if the element is not in the palette.
func ElementName(symbol string) string {
	name, ok := symbolName[symbol]
	if !ok {
		return symbol
	}
	return name
}

//CPKColor returns the conventional display color of the element as an RGB
//triplet. Unknown elements get carbon gray, which at least stays visible.
func CPKColor(symbol string) [3]uint8 {
	c, ok := symbolColor[symbol]
	if !ok {
		return symbolColor["C"]
	}
	return c
}
