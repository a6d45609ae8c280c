/*
 * errors.go, part of verchem.
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

package chem

//CError is the concrete type implementing the Error interface.
//The decoration slice keeps the names of the functions the error
//has passed through, which is often all one needs to know where
//a user-facing problem came from.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Decorate adds dec to the decoration slice of the error, and returns
//the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that err implements chem.Error, decorates it with
//the caller's name and returns it. Used with any other error it will panic,
//which is intended: within the library we know which functions return what.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics. It does satisfy the error interface,
//but for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

//Only programming mistakes (indexing a sketch out of range, crossing a bond
//from an atom it doesn't touch) panic. Anything a user can cause by drawing
//comes back as a value, never as a panic.
const (
	ErrAtomOutOfRange = PanicMsg("verchem: Atom index out of range")
	ErrBondOutOfRange = PanicMsg("verchem: Bond index out of range")
	ErrNilAtom        = PanicMsg("verchem: Attempted to operate on a nil Atom")
	ErrNilDiagram     = PanicMsg("verchem: Attempted to operate on a nil Diagram")
	ErrNotInBond      = PanicMsg("verchem: The given atom id is not an endpoint of this bond")
)
