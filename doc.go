/*
 * doc.go, part of verchem.
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

/*Package chem is the main package of the verchem library. It provides the atom and bond
structures that make up a 2D molecular sketch, a table of bonding capabilities for a small
palette of main-group elements, and a Lewis-style electron bookkeeping engine that tells,
for every atom in the sketch, how far it is from a closed valence shell.



	**verchem Capabilities**


    Keeps a molecular sketch as a flat list of atoms and a flat list of bonds,
	each with a session-unique id. Ids are never reused, so external records
	(undo logs, transmitted scenes) stay valid for the whole session.

    Adds, moves and deletes atoms, with deletion cascading to the incident bonds
	in the same operation.

    Creates and re-types bonds through a single gate, Connect, which checks the
	bonding capability table and reports exactly what it did (created, re-typed
	the existing bond, or rejected and why). Rejections leave the sketch untouched.

    Recomputes, after every change, the formal charge and the electron deficit of
	each atom, plus the empirical formula of the whole sketch (Hill convention:
	C first, then H, then the rest alfabetically).

    Parses empirical formulas, including parenthesized groups ("Ca(OH)2").

    The interactive part (pointer gestures, selection, dragging, bond previews)
	lives in the chemsketch subpackage. 2D rendering and file export live in
	chemplot, a rotatable 3D lift of the sketch in chem3d, connectivity analyses
	in chemgraph and JSON transmission in chemjson.



The electron bookkeeping is deliberately the simple one taught in a first course: each
atom keeps as nonbonding electrons whatever its valence shell has left after contributing
one electron per bond order unit, and the shell is considered closed at 8 electrons
(2 for hydrogen). No resonance, no radicals, no expanded-octet bookkeeping beyond what
the per-element bond budgets allow.*/
package chem
