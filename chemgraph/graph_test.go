package chemgraph

import (
	"testing"

	chem "github.com/verchemxyz/verchem-sub008"
)

//two waters and a lone carbon: three fragments
func crowdedSketch() (*chem.Diagram, [][]int) {
	D := chem.NewDiagram()
	want := make([][]int, 0, 3)
	for i := 0; i < 2; i++ {
		o := D.AddAtom("O", float64(100*i), 100)
		h1 := D.AddAtom("H", float64(100*i)+20, 120)
		h2 := D.AddAtom("H", float64(100*i)-20, 120)
		D.Connect(o.ID, h1.ID, 1)
		D.Connect(o.ID, h2.ID, 1)
		want = append(want, []int{o.ID, h1.ID, h2.ID})
	}
	c := D.AddAtom("C", 300, 300)
	want = append(want, []int{c.ID})
	return D, want
}

func TestFragments(Te *testing.T) {
	D, want := crowdedSketch()
	got := Fragments(D)
	if len(got) != len(want) {
		Te.Fatalf("expected %d fragments, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			Te.Errorf("fragment %d: %v vs %v", i, got[i], want[i])
			continue
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				Te.Errorf("fragment %d member %d: got %d want %d", i, j, got[i][j], want[i][j])
			}
		}
	}
	if Fragments(chem.NewDiagram()) != nil {
		Te.Error("an empty sketch has no fragments")
	}
}

func TestSameFragment(Te *testing.T) {
	D, frags := crowdedSketch()
	if !SameFragment(D, frags[0][0], frags[0][2]) {
		Te.Error("the two ends of a water should connect")
	}
	if SameFragment(D, frags[0][0], frags[1][0]) {
		Te.Error("separate waters should not connect")
	}
	if !SameFragment(D, frags[2][0], frags[2][0]) {
		Te.Error("an atom is in its own fragment")
	}
	if SameFragment(D, frags[0][0], 99999) {
		Te.Error("a stale id is in no fragment")
	}
}

func TestFragmentFormulas(Te *testing.T) {
	D, _ := crowdedSketch()
	got := FragmentFormulas(D)
	want := []string{"H2O", "H2O", "C"}
	if len(got) != len(want) {
		Te.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			Te.Errorf("fragment %d reads %q, want %q", i, got[i], want[i])
		}
	}
	if FragmentFormulas(chem.NewDiagram()) != nil {
		Te.Error("an empty sketch has no formulas")
	}
}

func TestTopologyQueries(Te *testing.T) {
	D := chem.NewDiagram()
	c1 := D.AddAtom("C", 0, 0)
	c2 := D.AddAtom("C", 50, 0)
	o := D.AddAtom("O", 100, 0)
	D.Connect(c1.ID, c2.ID, 1)
	D.Connect(c2.ID, o.ID, 2)
	T := FromSketch(D)
	if T.Degree(c2.ID) != 2 || T.Degree(o.ID) != 1 {
		Te.Errorf("degrees came out as %d and %d", T.Degree(c2.ID), T.Degree(o.ID))
	}
	if !T.HasEdgeBetween(int64(c2.ID), int64(o.ID)) || T.HasEdgeBetween(int64(c1.ID), int64(o.ID)) {
		Te.Error("edge lookups disagree with the sketch")
	}
	if w, ok := T.Weight(int64(c2.ID), int64(o.ID)); !ok || w != 2 {
		Te.Errorf("the double bond should weigh 2, got %g ok=%v", w, ok)
	}
	it := T.Nodes()
	seen := 0
	for it.Next() {
		seen++
	}
	if seen != 3 {
		Te.Errorf("the node iterator visited %d of 3 atoms", seen)
	}
}
