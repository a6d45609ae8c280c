/*
 * sketch_replay.go, part of verchem.
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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/chemplot"
	"github.com/verchemxyz/verchem-sub008/chemsketch"
	"github.com/verchemxyz/verchem-sub008/chemtutor"
	"github.com/verchemxyz/verchem-sub008/internal/prefs"
	"github.com/verchemxyz/verchem-sub008/internal/ui"
)

var (
	replaySave    string
	replayRender  string
	replayExplain bool
	replayEvents  bool
)

var sketchReplayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Drive the editor from a pointer script",
	Long: `Drive the editor from a script of pointer gestures, one per line,
exactly as a student's mouse would. Useful for preparing worksheet
figures and for checking that a lesson's drawing steps do what the
lesson plan says they do.

Script commands:
  element SYM          pick the palette element
  order N              pick the palette bond order
  snap on|off          toggle grid snapping
  down X Y [shift]     press the pointer
  move X Y             move while pressed
  up X Y [shift]       release
  click X Y [shift]    press and release in place
  secondary X Y        secondary click (deletes what it hits)
  delete               delete the current selection
  wait SECONDS         let the cosmetic clocks run
  frame FILE           snapshot the canvas with feedback overlays

Lines starting with # are comments. Refused bonds are reported as they
happen, the way the editor would shake them off on screen.`,
	Args: cobra.ExactArgs(1),
	RunE: runSketchReplay,
}

func init() {
	sketchReplayCmd.Flags().StringVar(&replaySave, "save", "", "Save the result to the sketchbook under this name")
	sketchReplayCmd.Flags().StringVar(&replayRender, "render", "", "Render the final sketch to this file")
	sketchReplayCmd.Flags().BoolVar(&replayExplain, "explain", false, "Explain the final sketch when done")
	sketchReplayCmd.Flags().BoolVar(&replayEvents, "events", false, "Print editor events as they fire")
	sketchCmd.AddCommand(sketchReplayCmd)
}

func runSketchReplay(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	p := prefs.Load()
	width, height := float64(p.Editor.Width), float64(p.Editor.Height)
	E := chemsketch.New(chem.NewDiagram(), width, height)
	E.SetElement(p.Editor.Element)
	E.SetBondOrder(p.Editor.Order)
	E.SetSnap(p.Editor.Snap)
	if replayEvents {
		E.Notify = func(ev chemsketch.Event) {
			ui.Subtle.Printf("    %s\n", ev)
		}
	}

	var lastRejection *chem.BondResult
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := replayStep(E, strings.Fields(line), width, height); err != nil {
			return fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		if rej := E.Frame().Rejection; rej != nil && rej != lastRejection {
			fmt.Printf("  %s line %d: %s\n", ui.WarnIcon(), lineNo, rej.String())
			lastRejection = rej
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	D := E.Sketch()
	val := E.Validation()
	if D.Len() == 0 {
		fmt.Println("the script left an empty sketch")
	} else {
		fmt.Printf("%s %s, %.2f g/mol, %d atoms, %d bonds\n",
			ui.StatusIcon(val.Stable), val.Formula, val.Mass, D.Len(), D.NBonds())
	}
	if replaySave != "" {
		B, err := openBook()
		if err != nil {
			return err
		}
		defer B.Close()
		if err := B.Save(replaySave, D); err != nil {
			return err
		}
		fmt.Printf("saved as %q\n", replaySave)
	}
	if replayRender != "" {
		if err := chemplot.Save(D, float64(p.Export.Width), float64(p.Export.Height), replayRender, nil); err != nil {
			return err
		}
		fmt.Printf("rendered to %s\n", replayRender)
	}
	if replayExplain {
		text, err := chemtutor.ExplainSketch(D)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(text)
	}
	return nil
}

func replayStep(E *chemsketch.Editor, fields []string, width, height float64) error {
	switch fields[0] {
	case "element":
		if len(fields) != 2 {
			return fmt.Errorf("element needs a symbol")
		}
		if !chem.KnownSymbol(fields[1]) {
			return fmt.Errorf("no %q in the palette", fields[1])
		}
		E.SetElement(fields[1])
	case "order":
		if len(fields) != 2 {
			return fmt.Errorf("order needs a number")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < chem.MinOrder || n > chem.MaxOrder {
			return fmt.Errorf("bond order %q is not between %d and %d", fields[1], chem.MinOrder, chem.MaxOrder)
		}
		E.SetBondOrder(n)
	case "snap":
		if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
			return fmt.Errorf("snap wants on or off")
		}
		E.SetSnap(fields[1] == "on")
	case "down", "move", "up", "click", "secondary":
		if len(fields) < 3 {
			return fmt.Errorf("%s needs coordinates", fields[0])
		}
		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		if errX != nil || errY != nil {
			return fmt.Errorf("couldn't read %q %q as coordinates", fields[1], fields[2])
		}
		mod, err := replayMods(fields[3:])
		if err != nil {
			return err
		}
		switch fields[0] {
		case "down":
			E.PointerDown(x, y, mod)
		case "move":
			E.PointerMove(x, y)
		case "up":
			E.PointerUp(x, y, mod)
		case "click":
			E.PointerDown(x, y, mod)
			E.PointerUp(x, y, mod)
		case "secondary":
			E.SecondaryDown(x, y)
		}
	case "delete":
		E.DeleteSelection()
	case "wait":
		if len(fields) != 2 {
			return fmt.Errorf("wait needs seconds")
		}
		sec, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || sec < 0 {
			return fmt.Errorf("couldn't read %q as seconds", fields[1])
		}
		E.Advance(sec)
	case "frame":
		if len(fields) != 2 {
			return fmt.Errorf("frame needs an output file")
		}
		if err := chemplot.SaveFrame(E.Sketch(), E.Frame(), width, height, fields[1], nil); err != nil {
			return err
		}
	default:
		return fmt.Errorf("don't know the command %q", fields[0])
	}
	return nil
}

func replayMods(extra []string) (chemsketch.Mod, error) {
	mod := chemsketch.ModNone
	for _, tok := range extra {
		switch tok {
		case "shift":
			mod |= chemsketch.ModShift
		case "ctrl":
			mod |= chemsketch.ModCtrl
		default:
			return 0, fmt.Errorf("don't know the modifier %q", tok)
		}
	}
	return mod, nil
}
