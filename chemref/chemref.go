/*
 * chemref.go, part of verchem.
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

/*Package chemref is the data book in the back of the course: periodic
table entries, characteristic IR and 1H NMR ranges, the named reaction
families and standard reduction potentials. The tables ship embedded in
the binary, so lookups work offline and in exams. The data is sized for
teaching; a research table this is not.*/
package chemref

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/elements.yaml
var elementsRaw []byte

//go:embed data/spectra.yaml
var spectraRaw []byte

//go:embed data/reactions.yaml
var reactionsRaw []byte

//go:embed data/potentials.yaml
var potentialsRaw []byte

//Element is one periodic table entry. Electronegativity is the Pauling
//value, and zero where the concept doesn't apply (most noble gases).
type Element struct {
	Symbol            string  `yaml:"symbol"`
	Name              string  `yaml:"name"`
	Number            int     `yaml:"number"`
	Mass              float64 `yaml:"mass"`
	Period            int     `yaml:"period"`
	Group             int     `yaml:"group"`
	Category          string  `yaml:"category"`
	Electronegativity float64 `yaml:"electronegativity"`
}

//IRBand is one characteristic infrared absorption range, in cm-1.
type IRBand struct {
	Group     string  `yaml:"group"`
	Bond      string  `yaml:"bond"`
	Low       float64 `yaml:"low"`
	High      float64 `yaml:"high"`
	Intensity string  `yaml:"intensity"`
	Shape     string  `yaml:"shape"`
}

//NMRShift is one characteristic 1H NMR range, in ppm against TMS.
type NMRShift struct {
	Environment string  `yaml:"environment"`
	Low         float64 `yaml:"low"`
	High        float64 `yaml:"high"`
}

//Reaction is one named reaction family with its schematic pattern and a
//balanced example.
type Reaction struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Pattern string `yaml:"pattern"`
	Example string `yaml:"example"`
	Notes   string `yaml:"notes"`
}

//Potential is one standard reduction half-reaction: its couple written
//oxidized/reduced, the electrons transferred, and E0 in volts.
type Potential struct {
	Couple    string  `yaml:"couple"`
	Oxidized  string  `yaml:"oxidized"`
	Reduced   string  `yaml:"reduced"`
	Electrons int     `yaml:"electrons"`
	Potential float64 `yaml:"potential"`
}

var (
	loadOnce   sync.Once
	elements   []Element
	bySymbol   map[string]*Element
	byNumber   map[int]*Element
	irBands    []IRBand
	nmrShifts  []NMRShift
	reactions  []Reaction
	potentials []Potential
)

//The tables are compiled into the binary; if they don't parse, the
//binary itself is broken, which is a defect and not a runtime
//condition. Hence the panics.
func load() {
	loadOnce.Do(func() {
		if err := yaml.Unmarshal(elementsRaw, &elements); err != nil {
			panic("chemref: embedded element table is corrupt: " + err.Error())
		}
		var spec struct {
			IR  []IRBand   `yaml:"ir"`
			NMR []NMRShift `yaml:"nmr"`
		}
		if err := yaml.Unmarshal(spectraRaw, &spec); err != nil {
			panic("chemref: embedded spectra table is corrupt: " + err.Error())
		}
		irBands = spec.IR
		nmrShifts = spec.NMR
		if err := yaml.Unmarshal(reactionsRaw, &reactions); err != nil {
			panic("chemref: embedded reaction table is corrupt: " + err.Error())
		}
		if err := yaml.Unmarshal(potentialsRaw, &potentials); err != nil {
			panic("chemref: embedded potential table is corrupt: " + err.Error())
		}
		bySymbol = make(map[string]*Element, len(elements))
		byNumber = make(map[int]*Element, len(elements))
		for i := range elements {
			bySymbol[strings.ToLower(elements[i].Symbol)] = &elements[i]
			byNumber[elements[i].Number] = &elements[i]
		}
	})
}

//Elements returns the periodic table entries in order of atomic number.
func Elements() []Element {
	load()
	return elements
}

//ElementBySymbol finds an element by its symbol, ignoring case, so both
//"fe" and "Fe" find iron.
func ElementBySymbol(symbol string) (*Element, error) {
	load()
	el, ok := bySymbol[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return nil, fmt.Errorf("chemref: no element with symbol %q in the table", symbol)
	}
	return el, nil
}

//ElementByNumber finds an element by atomic number.
func ElementByNumber(number int) (*Element, error) {
	load()
	el, ok := byNumber[number]
	if !ok {
		return nil, fmt.Errorf("chemref: no element with atomic number %d in the table", number)
	}
	return el, nil
}

//AtomicMassOf is a convenience for the calculators: the molar mass of
//one element, by symbol.
func AtomicMassOf(symbol string) (float64, error) {
	el, err := ElementBySymbol(symbol)
	if err != nil {
		return 0, err
	}
	return el.Mass, nil
}

//IRBands returns every characteristic infrared range in the table.
func IRBands() []IRBand {
	load()
	return irBands
}

//IRNear returns the bands whose range contains the given wavenumber,
//the "what absorbs around 1700?" question.
func IRNear(wavenumber float64) []IRBand {
	load()
	var hits []IRBand
	for _, b := range irBands {
		if wavenumber >= b.Low && wavenumber <= b.High {
			hits = append(hits, b)
		}
	}
	return hits
}

//NMRShifts returns every characteristic 1H NMR range in the table.
func NMRShifts() []NMRShift {
	load()
	return nmrShifts
}

//NMRNear returns the proton environments whose range contains the given
//shift.
func NMRNear(ppm float64) []NMRShift {
	load()
	var hits []NMRShift
	for _, s := range nmrShifts {
		if ppm >= s.Low && ppm <= s.High {
			hits = append(hits, s)
		}
	}
	return hits
}

//Reactions returns the named reaction families.
func Reactions() []Reaction {
	load()
	return reactions
}

//ReactionByName finds a reaction family by name, ignoring case.
func ReactionByName(name string) (*Reaction, error) {
	load()
	want := strings.ToLower(strings.TrimSpace(name))
	for i := range reactions {
		if strings.ToLower(reactions[i].Name) == want {
			return &reactions[i], nil
		}
	}
	return nil, fmt.Errorf("chemref: no reaction family named %q in the table", name)
}

//Potentials returns the standard reduction potentials, from the
//strongest reducing agents to the strongest oxidizing agents.
func Potentials() []Potential {
	load()
	return potentials
}

//PotentialFor finds a half-reaction by its couple name ("Zn2+/Zn"), or
//failing that by either of its species, so plain "Zn" works too.
func PotentialFor(couple string) (*Potential, error) {
	load()
	want := strings.ToLower(strings.TrimSpace(couple))
	for i := range potentials {
		if strings.ToLower(potentials[i].Couple) == want {
			return &potentials[i], nil
		}
	}
	for i := range potentials {
		if strings.ToLower(potentials[i].Reduced) == want || strings.ToLower(potentials[i].Oxidized) == want {
			return &potentials[i], nil
		}
	}
	return nil, fmt.Errorf("chemref: no half-reaction for %q in the table", couple)
}
