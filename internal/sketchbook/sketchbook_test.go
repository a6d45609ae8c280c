/*
 * sketchbook_test.go
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

package sketchbook

import (
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/verchemxyz/verchem-sub008"
)

func buildWater() *chem.Diagram {
	D := chem.NewDiagram()
	o := D.AddAtom("O", 100, 100)
	h1 := D.AddAtom("H", 60, 100)
	h2 := D.AddAtom("H", 140, 100)
	D.Connect(o.ID, h1.ID, 1)
	D.Connect(o.ID, h2.ID, 1)
	return D
}

func buildAmmonia() *chem.Diagram {
	D := chem.NewDiagram()
	n := D.AddAtom("N", 100, 100)
	for i := 0; i < 3; i++ {
		h := D.AddAtom("H", float64(60+40*i), 140)
		D.Connect(n.ID, h.ID, 1)
	}
	return D
}

func openTestBook(Te *testing.T) *Book {
	B, err := Open(filepath.Join(Te.TempDir(), "sketchbook.db"))
	if err != nil {
		Te.Fatal(err)
	}
	Te.Cleanup(func() { B.Close() })
	return B
}

func TestSaveAndLoadKeepsTheChemistry(Te *testing.T) {
	B := openTestBook(Te)
	if err := B.Save("homework water", buildWater()); err != nil {
		Te.Fatal(err)
	}
	D, err := B.Load("homework water")
	if err != nil {
		Te.Fatal(err)
	}
	val := chem.Validate(D)
	if val.Formula != "H2O" || !val.Stable {
		Te.Errorf("reloaded sketch came back as %s, stable %v", val.Formula, val.Stable)
	}
	if D.Len() != 3 || D.NBonds() != 2 {
		Te.Errorf("reloaded sketch has %d atoms and %d bonds", D.Len(), D.NBonds())
	}
}

func TestListOrdersByName(Te *testing.T) {
	B := openTestBook(Te)
	if err := B.Save("water", buildWater()); err != nil {
		Te.Fatal(err)
	}
	if err := B.Save("ammonia", buildAmmonia()); err != nil {
		Te.Fatal(err)
	}
	entries, err := B.List()
	if err != nil {
		Te.Fatal(err)
	}
	if len(entries) != 2 || entries[0].Name != "ammonia" || entries[1].Name != "water" {
		Te.Fatalf("listing came back wrong: %+v", entries)
	}
	am := entries[0]
	if am.Formula != "NH3" || !am.Stable || am.Atoms != 4 || am.Bonds != 3 {
		Te.Errorf("ammonia entry: %+v", am)
	}
	if am.Created.IsZero() || am.Updated.Before(am.Created) {
		Te.Errorf("timestamps look wrong: created %v updated %v", am.Created, am.Updated)
	}
}

func TestOverwriteKeepsCreationTime(Te *testing.T) {
	B := openTestBook(Te)
	if err := B.Save("draft", buildWater()); err != nil {
		Te.Fatal(err)
	}
	before, err := B.List()
	if err != nil {
		Te.Fatal(err)
	}
	if err := B.Save("draft", buildAmmonia()); err != nil {
		Te.Fatal(err)
	}
	after, err := B.List()
	if err != nil {
		Te.Fatal(err)
	}
	if len(after) != 1 {
		Te.Fatalf("overwriting made %d entries", len(after))
	}
	if after[0].Formula != "NH3" {
		Te.Errorf("overwrite kept the old sketch: %+v", after[0])
	}
	if !after[0].Created.Equal(before[0].Created) {
		Te.Errorf("overwrite moved created from %v to %v", before[0].Created, after[0].Created)
	}
	if after[0].Updated.Before(before[0].Updated) {
		Te.Errorf("updated went backwards: %v then %v", before[0].Updated, after[0].Updated)
	}
}

func TestDeleteAndMisses(Te *testing.T) {
	B := openTestBook(Te)
	if err := B.Save("water", buildWater()); err != nil {
		Te.Fatal(err)
	}
	if err := B.Delete("water"); err != nil {
		Te.Fatal(err)
	}
	if _, err := B.Load("water"); err == nil {
		Te.Error("loaded a deleted sketch")
	}
	err := B.Delete("watre")
	if err == nil || !strings.Contains(err.Error(), "no sketch") {
		Te.Errorf("deleting a typo gave: %v", err)
	}
	if err := B.Save("   ", buildWater()); err == nil {
		Te.Error("saved a sketch with a blank name")
	}
}

func TestMemorySketchbook(Te *testing.T) {
	B, err := Open(":memory:")
	if err != nil {
		Te.Fatal(err)
	}
	defer B.Close()
	if err := B.Save("scratch", buildAmmonia()); err != nil {
		Te.Fatal(err)
	}
	entries, err := B.List()
	if err != nil {
		Te.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Formula != "NH3" {
		Te.Errorf("scratch sketchbook: %+v", entries)
	}
}
