package automaton

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestClosure(t *testing.T) {
	tests := []struct {
		name  string
		a     *Automaton
		state string
		want  []string
	}{
		{"single epsilon move", epsilonFixture(), "s0", []string{"s0", "s1"}},
		{"no epsilon moves out", epsilonFixture(), "s1", []string{"s1"}},
		{"no epsilon at all", nfaFixture(), "q0", []string{"q0"}},
		{"cycle from r0", cyclicEpsilonFixture(), "r0", []string{"r0", "r1", "r2"}},
		{"cycle from r2", cyclicEpsilonFixture(), "r2", []string{"r0", "r1", "r2"}},
		{"outside cycle", cyclicEpsilonFixture(), "r3", []string{"r3"}},
		{
			name: "self loop",
			a: New([]string{"a"}, []string{"x"}, "x", nil, []Transition{
				{"x", Epsilon, "x"},
			}),
			state: "x",
			want:  []string{"x"},
		},
		{
			name: "chain is sorted",
			a: New([]string{"a"}, []string{"c", "b", "a"}, "c", nil, []Transition{
				{"c", Epsilon, "b"},
				{"b", Epsilon, "a"},
			}),
			state: "c",
			want:  []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(Closure(tt.state, tt.a.Transitions)).To(gomega.Equal(tt.want))
		})
	}
}

func TestClosureIsClosedUnderEpsilon(t *testing.T) {
	for _, a := range []*Automaton{epsilonFixture(), cyclicEpsilonFixture(), nfaFixture()} {
		closures := Closures(a)
		for _, s := range a.States {
			members := make(map[string]bool)
			for _, m := range closures[s] {
				members[m] = true
			}
			if !members[s] {
				t.Errorf("closure(%s) = %v does not contain %s", s, closures[s], s)
			}
			for _, tr := range a.Transitions {
				if tr.IsEpsilon() && members[tr.From] && !members[tr.To] {
					t.Errorf("closure(%s) = %v escapes through %v", s, closures[s], tr)
				}
			}
		}
	}
}

func TestEliminateEpsilon(t *testing.T) {
	g := gomega.NewWithT(t)

	in := epsilonFixture()
	out := EliminateEpsilon(in)

	g.Expect(Classify(out)).NotTo(gomega.Equal(EpsilonNFA))
	g.Expect(out.Alphabet).To(gomega.Equal(in.Alphabet))
	g.Expect(out.States).To(gomega.Equal(in.States))
	g.Expect(out.Initial).To(gomega.Equal(in.Initial))
	g.Expect(out.Finals).To(gomega.Equal([]string{"s0", "s1"}))
	g.Expect(out.Transitions).To(gomega.BeEmpty())

	// the empty word is accepted because s0 reaches s1 without input
	g.Expect(Accept(out, Epsilon)).To(gomega.BeTrue())
	g.Expect(Accept(in, Epsilon)).To(gomega.BeFalse())
}

func TestEliminateEpsilonTransitions(t *testing.T) {
	g := gomega.NewWithT(t)

	a := New(
		[]string{"a", "b"},
		[]string{"0", "1", "2", "3"},
		"0",
		[]string{"3"},
		[]Transition{
			{"0", Epsilon, "1"},
			{"1", "a", "2"},
			{"2", Epsilon, "3"},
			{"0", "b", "0"},
		},
	)

	out := EliminateEpsilon(a)

	g.Expect(out.Transitions).To(gomega.Equal([]Transition{
		{"0", "a", "2"},
		{"0", "a", "3"},
		{"0", "b", "0"},
		{"0", "b", "1"},
		{"1", "a", "2"},
		{"1", "a", "3"},
	}))
	g.Expect(out.Finals).To(gomega.Equal([]string{"2", "3"}))
	g.Expect(Classify(out)).To(gomega.Equal(NFA))
}

func TestEliminateEpsilonDoesNotMutateInput(t *testing.T) {
	g := gomega.NewWithT(t)

	a := cyclicEpsilonFixture()
	before := a.Clone()
	out := EliminateEpsilon(a)
	out.Alphabet[0] = "z"
	out.States[0] = "z"

	g.Expect(a).To(gomega.Equal(before))
}

func TestEliminateEpsilonWithCycle(t *testing.T) {
	g := gomega.NewWithT(t)

	in := cyclicEpsilonFixture()
	out := EliminateEpsilon(in)

	for _, tr := range out.Transitions {
		g.Expect(tr.IsEpsilon()).To(gomega.BeFalse())
	}
	for _, w := range allWords(in.Alphabet, 5) {
		g.Expect(Simulate(out, w)).To(gomega.Equal(Simulate(in, w)), "word %q", w)
	}
}
