/*
 * sketch_demo.go, part of verchem.
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

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

var sketchDemoCmd = &cobra.Command{
	Use:   "demo [molecule]",
	Short: "Put a ready-made molecule into the sketchbook",
	Long: `Put one of the stock demonstration molecules into the sketchbook,
so there is something to render and explain before anyone has drawn
anything. Run without arguments to see what is on offer.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSketchDemo,
}

func init() {
	sketchCmd.AddCommand(sketchDemoCmd)
}

//The stock molecules, laid out on the editor's own 20-unit grid so they
//look tidy when opened for editing.
var demoMolecules = map[string]func() *chem.Diagram{
	"water": func() *chem.Diagram {
		D := chem.NewDiagram()
		o := D.AddAtom("O", 200, 200)
		h1 := D.AddAtom("H", 160, 200)
		h2 := D.AddAtom("H", 240, 200)
		D.Connect(o.ID, h1.ID, 1)
		D.Connect(o.ID, h2.ID, 1)
		return D
	},
	"methane": func() *chem.Diagram {
		D := chem.NewDiagram()
		c := D.AddAtom("C", 200, 200)
		for _, p := range [][2]float64{{200, 160}, {240, 200}, {200, 240}, {160, 200}} {
			h := D.AddAtom("H", p[0], p[1])
			D.Connect(c.ID, h.ID, 1)
		}
		return D
	},
	"ammonia": func() *chem.Diagram {
		D := chem.NewDiagram()
		n := D.AddAtom("N", 200, 200)
		for _, p := range [][2]float64{{160, 220}, {240, 220}, {200, 160}} {
			h := D.AddAtom("H", p[0], p[1])
			D.Connect(n.ID, h.ID, 1)
		}
		return D
	},
	"carbon-dioxide": func() *chem.Diagram {
		D := chem.NewDiagram()
		c := D.AddAtom("C", 200, 200)
		o1 := D.AddAtom("O", 140, 200)
		o2 := D.AddAtom("O", 260, 200)
		D.Connect(c.ID, o1.ID, 2)
		D.Connect(c.ID, o2.ID, 2)
		return D
	},
	"ethene": func() *chem.Diagram {
		D := chem.NewDiagram()
		c1 := D.AddAtom("C", 180, 200)
		c2 := D.AddAtom("C", 240, 200)
		D.Connect(c1.ID, c2.ID, 2)
		for _, p := range [][2]float64{{140, 160}, {140, 240}} {
			h := D.AddAtom("H", p[0], p[1])
			D.Connect(c1.ID, h.ID, 1)
		}
		for _, p := range [][2]float64{{280, 160}, {280, 240}} {
			h := D.AddAtom("H", p[0], p[1])
			D.Connect(c2.ID, h.ID, 1)
		}
		return D
	},
	"ethanol": func() *chem.Diagram {
		D := chem.NewDiagram()
		c1 := D.AddAtom("C", 160, 200)
		c2 := D.AddAtom("C", 220, 200)
		o := D.AddAtom("O", 280, 200)
		D.Connect(c1.ID, c2.ID, 1)
		D.Connect(c2.ID, o.ID, 1)
		for _, p := range [][2]float64{{120, 160}, {120, 240}, {160, 140}} {
			h := D.AddAtom("H", p[0], p[1])
			D.Connect(c1.ID, h.ID, 1)
		}
		for _, p := range [][2]float64{{220, 140}, {220, 260}} {
			h := D.AddAtom("H", p[0], p[1])
			D.Connect(c2.ID, h.ID, 1)
		}
		h := D.AddAtom("H", 320, 240)
		D.Connect(o.ID, h.ID, 1)
		return D
	},
}

func demoNames() []string {
	names := make([]string, 0, len(demoMolecules))
	for name := range demoMolecules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runSketchDemo(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("Stock molecules:")
		for _, name := range demoNames() {
			D := demoMolecules[name]()
			fmt.Printf("  %-16s %s\n", name, chem.Formula(D))
		}
		fmt.Println("\nPick one: verchem sketch demo water")
		return nil
	}
	name := strings.ToLower(args[0])
	build, ok := demoMolecules[name]
	if !ok {
		return fmt.Errorf("no stock molecule called %q; run without arguments to see the list", args[0])
	}
	D := build()
	B, err := openBook()
	if err != nil {
		return err
	}
	defer B.Close()
	if err := B.Save(name, D); err != nil {
		return err
	}
	val := chem.Validate(D)
	fmt.Printf("%s saved %s (%s, %.2f g/mol) to the sketchbook\n",
		ui.StatusIcon(val.Stable), name, val.Formula, val.Mass)
	fmt.Printf("Try: verchem explain %s\n", name)
	return nil
}
