/*
 * formula.go, part of verchem.
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

import (
	"fmt"
	"sort"
	"strings"
)

//Formula returns the empirical formula of the sketch, Hill convention:
//carbon first, then hydrogen, then everything else alfabetically, with
//counts over 1 appended ("C2H6O"). An empty sketch gives "". Connectivity
//plays no part; two separate water fragments read "H4O2".
func Formula(S Atomer) string {
	counts := make(map[string]int)
	for i := 0; i < S.Len(); i++ {
		counts[S.Atom(i).Symbol]++
	}
	return HillFormula(counts)
}

//HillFormula writes the element counts as an empirical formula in the
//convention described for Formula.
func HillFormula(counts map[string]int) string {
	rest := make([]string, 0, len(counts))
	for sym := range counts {
		if sym != "C" && sym != "H" {
			rest = append(rest, sym)
		}
	}
	sort.Strings(rest)
	var b strings.Builder
	for _, sym := range append([]string{"C", "H"}, rest...) {
		n := counts[sym]
		if n <= 0 {
			continue
		}
		b.WriteString(sym)
		if n > 1 {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	return b.String()
}

//TotalMass adds up the atomic masses of the sketch, in g/mol. Palette
//masses only; for arbitrary formulas the chemcalc subpackage does the
//same job over the full periodic table.
func TotalMass(S Atomer) float64 {
	m := 0.0
	for i := 0; i < S.Len(); i++ {
		m += symbolMass[S.Atom(i).Symbol]
	}
	return m
}

//ParseFormula reads an empirical formula ("H2O", "Ca(OH)2", "CH3COOH")
//into element counts. Parenthesized groups nest and take a trailing
//multiplier. Symbols are checked for shape (capital plus optional
//lowercase letter), not for existence; whether "Xq" means anything is
//the caller's problem, since different callers know different tables.
func ParseFormula(f string) (map[string]int, error) {
	if strings.TrimSpace(f) == "" {
		return nil, &CError{msg: "ParseFormula: empty formula", deco: []string{"ParseFormula"}}
	}
	stack := []map[string]int{make(map[string]int)}
	i := 0
	for i < len(f) {
		c := f[i]
		switch {
		case c == '(':
			stack = append(stack, make(map[string]int))
			i++
		case c == ')':
			if len(stack) == 1 {
				return nil, &CError{msg: fmt.Sprintf("ParseFormula: unbalanced ')' in %q", f), deco: []string{"ParseFormula"}}
			}
			group := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			i++
			n, w := leadingNumber(f[i:])
			i += w
			if n == 0 {
				return nil, &CError{msg: fmt.Sprintf("ParseFormula: zero count in %q", f), deco: []string{"ParseFormula"}}
			}
			for sym, v := range group {
				stack[len(stack)-1][sym] += v * n
			}
		case c >= 'A' && c <= 'Z':
			sym := string(c)
			i++
			if i < len(f) && f[i] >= 'a' && f[i] <= 'z' {
				sym += string(f[i])
				i++
			}
			n, w := leadingNumber(f[i:])
			i += w
			if n == 0 {
				return nil, &CError{msg: fmt.Sprintf("ParseFormula: zero count in %q", f), deco: []string{"ParseFormula"}}
			}
			stack[len(stack)-1][sym] += n
		default:
			return nil, &CError{msg: fmt.Sprintf("ParseFormula: unexpected character %q in %q", c, f), deco: []string{"ParseFormula"}}
		}
	}
	if len(stack) != 1 {
		return nil, &CError{msg: fmt.Sprintf("ParseFormula: unbalanced '(' in %q", f), deco: []string{"ParseFormula"}}
	}
	return stack[0], nil
}

//leadingNumber reads the decimal number starting s, giving its value and
//width. No digits gives 1 and width 0, so "H" and "H1" count the same.
func leadingNumber(s string) (int, int) {
	w := 0
	for w < len(s) && s[w] >= '0' && s[w] <= '9' {
		w++
	}
	if w == 0 {
		return 1, 0
	}
	n := 0
	for _, d := range s[:w] {
		n = n*10 + int(d-'0')
	}
	return n, w
}
