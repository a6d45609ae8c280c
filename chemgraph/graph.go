package chemgraph

import (
	"sort"

	chem "github.com/verchemxyz/verchem-sub008"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

//Atom wraps a sketch atom as a gonum graph node. The sketch's own ids
//are the node ids, so results read straight back into the sketch.
type Atom struct {
	*chem.Atom
}

func (A *Atom) ID() int64 {
	return int64(A.Atom.ID)
}

//Bond wraps a sketch bond as a gonum edge. The bond order doubles as the
//edge weight, which makes multiply-bonded pairs "closer" for the few
//weighted algorithms anyone runs on a sketch.
type Bond struct {
	*chem.Bond
	At1, At2 *Atom
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

//bonds are not directional, so the reversal is a new view, not a mutation
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, At1: B.At2, At2: B.At1}
}

func (B *Bond) Weight() float64 {
	return float64(B.Order)
}

// Implements gonum graph.Nodes
type Atoms struct {
	atoms []*Atom
	curr  int
}

func (A *Atoms) Len() int {
	return len(A.atoms) - A.curr - 1
}
func (A *Atoms) Reset() {
	A.curr = -1
}
func (A *Atoms) Next() bool {
	if A.curr+1 < len(A.atoms) {
		A.curr++
		return true
	}
	return false
}
func (A *Atoms) Node() graph.Node {
	return A.atoms[A.curr]
}

// Topology implements the gonum graph.Undirected and graph.Weighted
// interfaces over a snapshot of a sketch.
type Topology struct {
	atoms []*Atom
	bonds []*Bond
}

//FromSketch takes a snapshot of the sketch's connectivity. Later edits to
//the sketch won't reach the Topology's structure, although the wrapped
//atoms and bonds are shared, not copied.
func FromSketch(S chem.Bonder) *Topology {
	T := new(Topology)
	T.atoms = make([]*Atom, 0, S.Len())
	byID := make(map[int]*Atom, S.Len())
	for i := 0; i < S.Len(); i++ {
		a := &Atom{Atom: S.Atom(i)}
		T.atoms = append(T.atoms, a)
		byID[a.Atom.ID] = a
	}
	T.bonds = make([]*Bond, 0, S.NBonds())
	for i := 0; i < S.NBonds(); i++ {
		b := S.Bond(i)
		T.bonds = append(T.bonds, &Bond{Bond: b, At1: byID[b.A1], At2: byID[b.A2]})
	}
	return T
}

func (T *Topology) Node(id int64) graph.Node {
	for _, a := range T.atoms {
		if a.ID() == id {
			return a
		}
	}
	return nil
}

func (T *Topology) Nodes() graph.Nodes {
	if len(T.atoms) == 0 {
		return graph.Empty
	}
	return &Atoms{atoms: T.atoms, curr: -1}
}

func (T *Topology) From(id int64) graph.Nodes {
	ret := make([]*Atom, 0, 4)
	for _, b := range T.bonds {
		//undirected graph
		if b.At1.ID() == id {
			ret = append(ret, b.At2)
		} else if b.At2.ID() == id {
			ret = append(ret, b.At1)
		}
	}
	if len(ret) == 0 {
		return graph.Empty
	}
	return &Atoms{atoms: ret, curr: -1}
}

func (T *Topology) HasEdgeBetween(id1, id2 int64) bool {
	return T.EdgeBetween(id1, id2) != nil
}

func (T *Topology) EdgeBetween(id1, id2 int64) graph.Edge {
	for _, b := range T.bonds {
		if (b.At1.ID() == id1 && b.At2.ID() == id2) || (b.At1.ID() == id2 && b.At2.ID() == id1) {
			return b
		}
	}
	return nil
}

func (T *Topology) Edge(id1, id2 int64) graph.Edge {
	return T.EdgeBetween(id1, id2)
}

func (T *Topology) WeightedEdge(id1, id2 int64) graph.WeightedEdge {
	e := T.EdgeBetween(id1, id2)
	if e == nil {
		return nil
	}
	return e.(*Bond)
}

func (T *Topology) WeightedEdgeBetween(id1, id2 int64) graph.WeightedEdge {
	return T.WeightedEdge(id1, id2)
}

func (T *Topology) Weight(id1, id2 int64) (w float64, ok bool) {
	if id1 == id2 {
		return 0.0, true
	}
	e := T.EdgeBetween(id1, id2)
	if e == nil {
		return -1, false
	}
	return e.(*Bond).Weight(), true
}

//Degree returns how many bonds touch the atom with the given sketch id.
func (T *Topology) Degree(id int) int {
	n := 0
	for _, b := range T.bonds {
		if b.At1.Atom.ID == id || b.At2.Atom.ID == id {
			n++
		}
	}
	return n
}

//Fragments returns the connected pieces of the sketch as groups of atom
//ids: one molecule per group, the way a chemist reads the canvas. Ids are
//sorted within each group and groups come sorted by their smallest id, so
//the answer is stable for tests and for display.
func Fragments(S chem.Bonder) [][]int {
	T := FromSketch(S)
	if len(T.atoms) == 0 {
		return nil
	}
	comps := topo.ConnectedComponents(T)
	ret := make([][]int, 0, len(comps))
	for _, comp := range comps {
		ids := make([]int, 0, len(comp))
		for _, n := range comp {
			ids = append(ids, int(n.ID()))
		}
		sort.Ints(ids)
		ret = append(ret, ids)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

//atomSlice lets a group of atoms pass for a sketch wherever only the
//atoms matter, such as working out a formula.
type atomSlice []*chem.Atom

func (a atomSlice) Len() int {
	return len(a)
}

func (a atomSlice) Atom(i int) *chem.Atom {
	return a[i]
}

//FragmentFormulas returns the empirical formula of each connected piece,
//in the same order Fragments uses. A canvas holding water next to
//methane reads as ["H2O", "CH4"] rather than the merged CH6O.
func FragmentFormulas(S chem.Bonder) []string {
	byID := make(map[int]*chem.Atom, S.Len())
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		byID[at.ID] = at
	}
	frags := Fragments(S)
	ret := make([]string, 0, len(frags))
	for _, ids := range frags {
		atoms := make(atomSlice, 0, len(ids))
		for _, id := range ids {
			atoms = append(atoms, byID[id])
		}
		ret = append(ret, chem.Formula(atoms))
	}
	return ret
}

//SameFragment tells whether two atoms are in the same connected piece.
func SameFragment(S chem.Bonder, id1, id2 int) bool {
	T := FromSketch(S)
	n1 := T.Node(int64(id1))
	n2 := T.Node(int64(id2))
	if n1 == nil || n2 == nil {
		return false
	}
	if id1 == id2 {
		return true
	}
	return topo.PathExistsIn(T, n1, n2)
}
