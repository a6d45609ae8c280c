/*
 * tutor.go, part of verchem.
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

/*Package chemtutor turns the sketcher's bookkeeping into sentences.
The numbers the validator computes (lone electrons, shell counts,
formal charges) are exactly what a teacher scribbles in the margin; this
package writes the margin notes. Everything returns plain text with
newlines, ready for a terminal, a tooltip or a worksheet.*/
package chemtutor

import (
	"fmt"
	"strings"
	"text/template"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/chemref"
)

var funcs = template.FuncMap{
	//plural saves the templates from "1 electrons"
	"plural": func(n int) string {
		if n == 1 {
			return ""
		}
		return "s"
	},
	"abs": func(n int) int {
		if n < 0 {
			return -n
		}
		return n
	},
}

var sketchTmpl = template.Must(template.New("sketch").Funcs(funcs).Parse(
	`{{if eq .Natoms 0}}The sketch is empty. Pick an element and click the canvas to place the first atom.
{{- else}}Your sketch holds {{.Formula}} ({{.Natoms}} atom{{plural .Natoms}}, {{.Nbonds}} bond{{plural .Nbonds}}), molar mass {{printf "%.2f" .Mass}} g/mol.
{{- if .Stable}}
Every atom has a filled shell and no leftover charge. The molecule is complete.
{{- else}}
{{len .Unstable}} atom{{plural (len .Unstable)}} still need{{if eq (len .Unstable) 1}}s{{end}} attention:
{{- range .Unstable}}
{{- if lt .FormalCharge 0}}
  - {{.Name}} (atom {{.ID}}) has taken on more bonding than its electrons cover: formal charge {{.FormalCharge}}. Remove a bond or lower its order.
{{- else}}
  - {{.Name}} (atom {{.ID}}) has {{.Shell}} of the {{.ShellSize}} shell electrons it wants; it needs {{.Needs}} more. Add a bond or raise one to a double or triple.
{{- end}}
{{- end}}
{{- end}}
{{- end}}
`))

var atomTmpl = template.Must(template.New("atom").Funcs(funcs).Parse(
	`{{.Name}} ({{.Symbol}}, atom {{.ID}}) makes {{.Bonds}} bond{{plural .Bonds}} with total order {{.OrderSum}}.
It brings {{.Valence}} valence electron{{plural .Valence}}{{if gt .OrderSum .Valence}}, and its bonds ask for {{.OrderSum}}, more than it has{{else}}; {{.OrderSum}} {{if eq .OrderSum 1}}goes{{else}}go{{end}} into shared pairs, leaving {{.Lone}} unshared{{end}}.
Counting each shared pair twice, its shell holds {{.Shell}} of the {{.ShellSize}} it wants.
{{- if .Stable}}
The atom is satisfied.
{{- else if lt .FormalCharge 0}}
That is {{abs .FormalCharge}} electron{{plural (abs .FormalCharge)}} more bonding than it can cover: formal charge {{.FormalCharge}}.
{{- else}}
It still needs {{.Needs}} more electron{{plural .Needs}}.
{{- end}}
`))

var reactionTmpl = template.Must(template.New("reaction").Parse(
	`{{.Name}} ({{.Kind}})
Pattern:  {{.Pattern}}
Example:  {{.Example}}
{{.Notes}}
`))

type atomView struct {
	Symbol, Name string
	ID           int
	Valence      int
	ShellSize    int
	Bonds        int
	OrderSum     int
	Lone         int
	Shell        int
	Needs        int
	FormalCharge int
	Stable       bool
}

func viewOf(id int, rep *chem.AtomReport) atomView {
	return atomView{
		Symbol:       rep.Symbol,
		Name:         chem.ElementName(rep.Symbol),
		ID:           id,
		Valence:      chem.Valence(rep.Symbol),
		ShellSize:    chem.ShellSize(rep.Symbol),
		Bonds:        rep.Bonds,
		OrderSum:     rep.OrderSum,
		Lone:         rep.Lone,
		Shell:        rep.Shell,
		Needs:        rep.Needs,
		FormalCharge: rep.FormalCharge,
		Stable:       rep.Stable(),
	}
}

//ExplainSketch narrates the whole sketch: what it is, and which atoms
//still need work, in the order they were drawn.
func ExplainSketch(S chem.Bonder) (string, error) {
	val := chem.Validate(S)
	view := struct {
		Formula  string
		Mass     float64
		Natoms   int
		Nbonds   int
		Stable   bool
		Unstable []atomView
	}{
		Formula: val.Formula,
		Mass:    val.Mass,
		Natoms:  S.Len(),
		Nbonds:  S.NBonds(),
		Stable:  val.Stable,
	}
	for _, id := range val.Unstable(S) {
		view.Unstable = append(view.Unstable, viewOf(id, val.Report(id)))
	}
	var b strings.Builder
	if err := sketchTmpl.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

//ExplainAtom walks through the electron arithmetic of one atom, the
//same numbers the validator uses, one step per line.
func ExplainAtom(S chem.Bonder, id int) (string, error) {
	val := chem.Validate(S)
	rep := val.Report(id)
	if rep == nil {
		return "", fmt.Errorf("no atom %d in the sketch", id)
	}
	var b strings.Builder
	if err := atomTmpl.Execute(&b, viewOf(id, rep)); err != nil {
		return "", err
	}
	return b.String(), nil
}

//ExplainReaction writes the one-card summary of a named reaction family
//from the data book.
func ExplainReaction(name string) (string, error) {
	r, err := chemref.ReactionByName(name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := reactionTmpl.Execute(&b, r); err != nil {
		return "", err
	}
	return b.String(), nil
}
