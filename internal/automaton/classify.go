package automaton

// Kind is the variant of a finite automaton.
type Kind int

const (
	// DFA has at most one transition per (state, symbol) and no epsilon moves.
	DFA Kind = iota + 1
	// NFA may have several transitions per (state, symbol) but no epsilon moves.
	NFA
	// EpsilonNFA has at least one epsilon move.
	EpsilonNFA
)

func (k Kind) String() string {
	switch k {
	case DFA:
		return "DFA"
	case NFA:
		return "NFA"
	case EpsilonNFA:
		return "epsilon-NFA"
	default:
		return "unknown"
	}
}

// Deterministic reports whether automata of this kind can be run by Accept.
func (k Kind) Deterministic() bool {
	return k == DFA
}

// Classify reports the variant of a. Any epsilon move makes it an EpsilonNFA,
// even when it is otherwise deterministic.
func Classify(a *Automaton) Kind {
	for _, t := range a.Transitions {
		if t.IsEpsilon() {
			return EpsilonNFA
		}
	}

	seen := make(map[string]map[string]bool)
	for _, t := range a.Transitions {
		symbols, ok := seen[t.From]
		if !ok {
			symbols = make(map[string]bool)
			seen[t.From] = symbols
		}
		if symbols[t.Symbol] {
			return NFA
		}
		symbols[t.Symbol] = true
	}

	return DFA
}
