/*
 * interfaces.go, part of verchem.
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
 *
 */

package chem

/*Everything downstream of the sketch (validation, rendering, 3D lifting, graph
 * analyses, JSON transmission) only reads, so those functions take the narrow
 * read-only interfaces below rather than a *Diagram. That keeps them working on
 * copies, on decoded scenes, or on whatever future container satisfies them.*/

// Atomer is the read side of anything that holds atoms.
type Atomer interface {

	//Atom returns the atom at place i, in insertion order.
	//Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

// Bonder is the read side of a full sketch: atoms plus bonds.
type Bonder interface {
	Atomer

	//Bond returns the bond at place i, in insertion order.
	//Should panic if out of range.
	Bond(i int) *Bond

	NBonds() int
}

//Errors

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package). We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds information when passing the error up, returning the resulting "decoration" slice of strings. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}
