/*
 * json.go, part of verchem.
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

package chemjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	chem "github.com/verchemxyz/verchem-sub008"
)

//An easily JSON-serializable error type,
type Error struct {
	deco      []string
	IsError   bool //If this is false (no error) all the other fields will be at their zero-values.
	InOptions bool //If error, was it in parsing the host options?
	InHeader  bool //Was it in the scene header line?
	InAtoms   bool //Was it in an atom line?
	InBonds   bool //Was it in a bond line?
	InRebuild bool //was it while replaying the scene into a sketch?
	Atom      int  //Which atom id, if one is to blame
	Function  string
	Message   string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) //an error while serializing the error leaves nothing sensible to hand the host, so we give up loudly.
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "options":
		jerr.InOptions = true
	case "header":
		jerr.InHeader = true
	case "atoms":
		jerr.InAtoms = true
	case "bonds":
		jerr.InBonds = true
	default:
		jerr.InRebuild = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

//Header is the first line of a transmitted scene. The counts tell the
//reader how many atom and bond lines follow.
type Header struct {
	Natoms  int
	Nbonds  int
	Formula string
	Mass    float64
	Stable  bool
}

//A ready-to-serialize container for an atom, with its bookkeeping
//folded in so a host can paint warnings without redoing the chemistry.
type Atom struct {
	ID           int
	Symbol       string
	X            float64
	Y            float64
	FormalCharge int
	Needs        int
	Stable       bool
}

//A ready-to-serialize container for a bond.
type Bond struct {
	ID    int
	A1    int
	A2    int
	Order int
}

//Scene is a complete sketch snapshot: what travels over the wire, and
//what Rebuild replays into a live sketch again.
type Scene struct {
	Header Header
	Atoms  []*Atom
	Bonds  []*Bond
}

//Options passed from the calling external program
type Options struct {
	Element string //starting element of the placement tool
	Order   int    //starting bond order
	Snap    bool
	Width   int
	Height  int
}

//DecodeOptions Decodes or unmarshals json options into an Options structure
func DecodeOptions(stdin *bufio.Reader) (*Options, *Error) {
	line, err := stdin.ReadBytes('\n')
	if err != nil {
		return nil, NewError("options", "DecodeOptions", err)
	}
	ret := new(Options)
	err = json.Unmarshal(line, ret)
	if err != nil {
		return nil, NewError("options", "DecodeOptions", err)
	}
	return ret, nil
}

//FromSketch takes a snapshot of S ready for transmission. If val is nil
//the sketch is validated here; pass the sketcher's current validation to
//avoid doing the bookkeeping twice.
func FromSketch(S chem.Bonder, val *chem.ValidationResult) *Scene {
	if val == nil {
		val = chem.Validate(S)
	}
	sc := new(Scene)
	sc.Header = Header{
		Natoms:  S.Len(),
		Nbonds:  S.NBonds(),
		Formula: val.Formula,
		Mass:    val.Mass,
		Stable:  val.Stable,
	}
	sc.Atoms = make([]*Atom, 0, S.Len())
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		ja := &Atom{ID: at.ID, Symbol: at.Symbol, X: at.X, Y: at.Y}
		if rep := val.Report(at.ID); rep != nil {
			ja.FormalCharge = rep.FormalCharge
			ja.Needs = rep.Needs
			ja.Stable = rep.Stable()
		}
		sc.Atoms = append(sc.Atoms, ja)
	}
	sc.Bonds = make([]*Bond, 0, S.NBonds())
	for i := 0; i < S.NBonds(); i++ {
		b := S.Bond(i)
		sc.Bonds = append(sc.Bonds, &Bond{ID: b.ID, A1: b.A1, A2: b.A2, Order: b.Order})
	}
	return sc
}

//Transmit encodes the scene and writes it to out as JSON lines: the
//header, then the atoms, then the bonds. Returns an error or nil.
func (S *Scene) Transmit(out io.Writer) *Error {
	const funcname = "Scene.Transmit"
	enc := json.NewEncoder(out)
	if err := enc.Encode(S.Header); err != nil {
		return NewError("header", funcname, err)
	}
	for _, at := range S.Atoms {
		if err := enc.Encode(at); err != nil {
			return NewError("atoms", funcname, err)
		}
	}
	for _, b := range S.Bonds {
		if err := enc.Encode(b); err != nil {
			return NewError("bonds", funcname, err)
		}
	}
	return nil
}

//DecodeScene reads a scene transmitted by Transmit (or by a host
//speaking the same protocol) back into a Scene. The header's counts
//govern how many atom and bond lines are read.
func DecodeScene(stream *bufio.Reader) (*Scene, *Error) {
	const funcname = "DecodeScene"
	line, err := stream.ReadBytes('\n')
	if err != nil {
		return nil, NewError("header", funcname, err)
	}
	sc := new(Scene)
	if err = json.Unmarshal(line, &sc.Header); err != nil {
		return nil, NewError("header", funcname, err)
	}
	sc.Atoms = make([]*Atom, 0, sc.Header.Natoms)
	for i := 0; i < sc.Header.Natoms; i++ {
		line, err = stream.ReadBytes('\n')
		if err != nil {
			return nil, NewError("atoms", funcname, err)
		}
		at := new(Atom)
		if err = json.Unmarshal(line, at); err != nil {
			return nil, NewError("atoms", funcname, err)
		}
		sc.Atoms = append(sc.Atoms, at)
	}
	sc.Bonds = make([]*Bond, 0, sc.Header.Nbonds)
	for i := 0; i < sc.Header.Nbonds; i++ {
		line, err = stream.ReadBytes('\n')
		if err != nil {
			return nil, NewError("bonds", funcname, err)
		}
		b := new(Bond)
		if err = json.Unmarshal(line, b); err != nil {
			return nil, NewError("bonds", funcname, err)
		}
		sc.Bonds = append(sc.Bonds, b)
	}
	return sc, nil
}

//Rebuild replays the scene into a fresh sketch through the normal
//mutation calls, so everything in the result obeys the same rules as
//a hand-drawn sketch. Atom ids are assigned anew; the returned map
//goes from the ids in the scene to the ids in the sketch. A scene the
//rules reject (an unknown element, a bond the table refuses) returns
//an error naming the offender.
func (S *Scene) Rebuild() (*chem.Diagram, map[int]int, *Error) {
	const funcname = "Scene.Rebuild"
	D := chem.NewDiagram()
	ids := make(map[int]int, len(S.Atoms))
	for _, at := range S.Atoms {
		fresh := D.AddAtom(at.Symbol, at.X, at.Y)
		if fresh == nil {
			jerr := NewError("rebuild", funcname, fmt.Errorf("element %q is not on the palette", at.Symbol))
			jerr.Atom = at.ID
			return nil, nil, jerr
		}
		ids[at.ID] = fresh.ID
	}
	for _, b := range S.Bonds {
		id1, ok1 := ids[b.A1]
		id2, ok2 := ids[b.A2]
		if !ok1 || !ok2 {
			return nil, nil, NewError("rebuild", funcname, fmt.Errorf("bond %d points at an atom the scene never declared", b.ID))
		}
		res := D.Connect(id1, id2, b.Order)
		if !res.Applied() {
			return nil, nil, NewError("rebuild", funcname, fmt.Errorf("bond %d refused: %s", b.ID, res.String()))
		}
	}
	return D, ids, nil
}
