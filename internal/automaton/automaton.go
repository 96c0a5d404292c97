// Package automaton implements the finite automaton model and the
// normalization pipeline: classification, epsilon closure, epsilon
// elimination, subset construction and word acceptance.
//
// Every transformation returns a freshly built Automaton. Inputs are never
// mutated, so a finished automaton can be shared between goroutines.
package automaton

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Epsilon is the symbol marking an empty-string transition. As a word it
// denotes the zero-length word.
const Epsilon = "&"

// ErrInvalidAutomaton is wrapped by every error returned from Validate.
var ErrInvalidAutomaton = errors.New("invalid automaton")

// Transition is a single (source, symbol, destination) move.
type Transition struct {
	From   string
	Symbol string
	To     string
}

// IsEpsilon reports whether the transition consumes no input.
func (t Transition) IsEpsilon() bool {
	return t.Symbol == Epsilon
}

func (t Transition) String() string {
	return fmt.Sprintf("[%s, %s, %s]", t.From, t.Symbol, t.To)
}

// Automaton is a finite automaton over single-character symbols.
// Transitions keep their declaration order; acceptance relies on it.
type Automaton struct {
	Alphabet    []string
	States      []string
	Initial     string
	Finals      []string
	Transitions []Transition
}

// New builds an automaton from copies of the given slices.
func New(alphabet, states []string, initial string, finals []string, transitions []Transition) *Automaton {
	return &Automaton{
		Alphabet:    append([]string(nil), alphabet...),
		States:      append([]string(nil), states...),
		Initial:     initial,
		Finals:      append([]string(nil), finals...),
		Transitions: append([]Transition(nil), transitions...),
	}
}

// Clone returns a deep copy of a.
func (a *Automaton) Clone() *Automaton {
	return New(a.Alphabet, a.States, a.Initial, a.Finals, a.Transitions)
}

// IsFinal reports whether state is one of the final states.
func (a *Automaton) IsFinal(state string) bool {
	for _, f := range a.Finals {
		if f == state {
			return true
		}
	}
	return false
}

// finalSet returns the final states as a lookup set.
func (a *Automaton) finalSet() map[string]bool {
	set := make(map[string]bool, len(a.Finals))
	for _, f := range a.Finals {
		set[f] = true
	}
	return set
}

// Validate checks the structural invariants the rest of the package assumes.
// It reports the first violation found.
func (a *Automaton) Validate() error {
	if len(a.States) == 0 {
		return fmt.Errorf("%w: no states", ErrInvalidAutomaton)
	}

	states := make(map[string]bool, len(a.States))
	for _, s := range a.States {
		if s == "" {
			return fmt.Errorf("%w: empty state label", ErrInvalidAutomaton)
		}
		if states[s] {
			return fmt.Errorf("%w: duplicate state %q", ErrInvalidAutomaton, s)
		}
		states[s] = true
	}

	alphabet := make(map[string]bool, len(a.Alphabet))
	for _, c := range a.Alphabet {
		if c == Epsilon {
			return fmt.Errorf("%w: alphabet contains the empty-string marker %q", ErrInvalidAutomaton, Epsilon)
		}
		if utf8.RuneCountInString(c) != 1 {
			return fmt.Errorf("%w: symbol %q is not a single character", ErrInvalidAutomaton, c)
		}
		if alphabet[c] {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAutomaton, c)
		}
		alphabet[c] = true
	}

	if !states[a.Initial] {
		return fmt.Errorf("%w: initial state %q is not a state", ErrInvalidAutomaton, a.Initial)
	}
	for _, f := range a.Finals {
		if !states[f] {
			return fmt.Errorf("%w: final state %q is not a state", ErrInvalidAutomaton, f)
		}
	}

	for i, t := range a.Transitions {
		if !states[t.From] {
			return fmt.Errorf("%w: transition %d: unknown source %q", ErrInvalidAutomaton, i, t.From)
		}
		if !states[t.To] {
			return fmt.Errorf("%w: transition %d: unknown destination %q", ErrInvalidAutomaton, i, t.To)
		}
		if !t.IsEpsilon() && !alphabet[t.Symbol] {
			return fmt.Errorf("%w: transition %d: symbol %q not in alphabet", ErrInvalidAutomaton, i, t.Symbol)
		}
	}

	return nil
}
