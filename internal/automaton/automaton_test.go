package automaton

import (
	"errors"
	"testing"

	"github.com/onsi/gomega"
)

// Fixtures shared by the tests of this package.

func epsilonFixture() *Automaton {
	return New(
		[]string{"a"},
		[]string{"s0", "s1"},
		"s0",
		[]string{"s1"},
		[]Transition{{"s0", Epsilon, "s1"}},
	)
}

func nfaFixture() *Automaton {
	return New(
		[]string{"0", "1"},
		[]string{"q0", "q1", "q2"},
		"q0",
		[]string{"q2"},
		[]Transition{
			{"q0", "0", "q0"},
			{"q0", "0", "q1"},
			{"q0", "1", "q0"},
			{"q1", "1", "q2"},
		},
	)
}

// partialDFAFixture has no transition out of p1 on "b".
func partialDFAFixture() *Automaton {
	return New(
		[]string{"a", "b"},
		[]string{"p0", "p1"},
		"p0",
		[]string{"p1"},
		[]Transition{
			{"p0", "a", "p1"},
			{"p0", "b", "p0"},
			{"p1", "a", "p1"},
		},
	)
}

// cyclicEpsilonFixture has an epsilon cycle r0 -> r1 -> r2 -> r0 and
// accepts (ab)* followed by an optional c.
func cyclicEpsilonFixture() *Automaton {
	return New(
		[]string{"a", "b", "c"},
		[]string{"r0", "r1", "r2", "r3", "r4"},
		"r0",
		[]string{"r2", "r4"},
		[]Transition{
			{"r0", Epsilon, "r1"},
			{"r1", Epsilon, "r2"},
			{"r2", Epsilon, "r0"},
			{"r0", "a", "r3"},
			{"r3", "b", "r0"},
			{"r2", "c", "r4"},
		},
	)
}

func TestNewCopiesInput(t *testing.T) {
	g := gomega.NewWithT(t)

	states := []string{"x", "y"}
	a := New([]string{"a"}, states, "x", nil, nil)
	states[0] = "z"

	g.Expect(a.States).To(gomega.Equal([]string{"x", "y"}))
}

func TestCloneIsDeep(t *testing.T) {
	g := gomega.NewWithT(t)

	a := nfaFixture()
	b := a.Clone()
	b.Transitions[0].To = "q2"
	b.Finals[0] = "q0"

	g.Expect(a.Transitions[0].To).To(gomega.Equal("q0"))
	g.Expect(a.Finals).To(gomega.Equal([]string{"q2"}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *Automaton)
		wantErr bool
	}{
		{"valid", func(a *Automaton) {}, false},
		{"no states", func(a *Automaton) { a.States = nil }, true},
		{"empty label", func(a *Automaton) { a.States = append(a.States, "") }, true},
		{"duplicate state", func(a *Automaton) { a.States = append(a.States, "q1") }, true},
		{"unknown initial", func(a *Automaton) { a.Initial = "qx" }, true},
		{"unknown final", func(a *Automaton) { a.Finals = []string{"qx"} }, true},
		{"multi-character symbol", func(a *Automaton) { a.Alphabet = append(a.Alphabet, "ab") }, true},
		{"marker in alphabet", func(a *Automaton) { a.Alphabet = append(a.Alphabet, Epsilon) }, true},
		{"duplicate symbol", func(a *Automaton) { a.Alphabet = append(a.Alphabet, "0") }, true},
		{"unknown source", func(a *Automaton) {
			a.Transitions = append(a.Transitions, Transition{"qx", "0", "q0"})
		}, true},
		{"unknown destination", func(a *Automaton) {
			a.Transitions = append(a.Transitions, Transition{"q0", "0", "qx"})
		}, true},
		{"symbol outside alphabet", func(a *Automaton) {
			a.Transitions = append(a.Transitions, Transition{"q0", "2", "q1"})
		}, true},
		{"epsilon move", func(a *Automaton) {
			a.Transitions = append(a.Transitions, Transition{"q0", Epsilon, "q1"})
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)

			a := nfaFixture()
			tt.mutate(a)
			err := a.Validate()

			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			if tt.wantErr {
				g.Expect(errors.Is(err, ErrInvalidAutomaton)).To(gomega.BeTrue())
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		a    *Automaton
		want Kind
	}{
		{"epsilon move", epsilonFixture(), EpsilonNFA},
		{"repeated symbol", nfaFixture(), NFA},
		{"deterministic", partialDFAFixture(), DFA},
		{"no transitions", New([]string{"a"}, []string{"s"}, "s", nil, nil), DFA},
		{
			name: "epsilon wins over determinism",
			a: New([]string{"a"}, []string{"s", "t"}, "s", nil, []Transition{
				{"s", "a", "t"},
				{"t", Epsilon, "s"},
			}),
			want: EpsilonNFA,
		},
		{
			name: "same symbol from different states",
			a: New([]string{"a"}, []string{"s", "t"}, "s", nil, []Transition{
				{"s", "a", "t"},
				{"t", "a", "s"},
			}),
			want: DFA,
		},
		{
			name: "duplicate identical transition",
			a: New([]string{"a"}, []string{"s"}, "s", nil, []Transition{
				{"s", "a", "s"},
				{"s", "a", "s"},
			}),
			want: NFA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.a); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{DFA, "DFA"},
		{NFA, "NFA"},
		{EpsilonNFA, "epsilon-NFA"},
		{Kind(0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
