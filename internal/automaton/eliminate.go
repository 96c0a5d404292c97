package automaton

import "sort"

// EliminateEpsilon returns an automaton without epsilon moves that accepts the
// same language as a. Alphabet, states and initial state are kept. Each state
// gets one transition per distinct destination reachable by consuming a symbol
// between epsilon moves, so the result may still be nondeterministic.
//
// A state is final in the result when its epsilon closure contains a final
// state of a, which keeps the result evaluable without determinizing it.
func EliminateEpsilon(a *Automaton) *Automaton {
	closures := Closures(a)
	moves := symbolEdges(a.Transitions)
	finals := a.finalSet()

	out := &Automaton{
		Alphabet:    append([]string(nil), a.Alphabet...),
		States:      append([]string(nil), a.States...),
		Initial:     a.Initial,
		Finals:      make([]string, 0, len(a.Finals)),
		Transitions: make([]Transition, 0, len(a.Transitions)),
	}

	for _, s := range a.States {
		for _, reached := range closures[s] {
			if finals[reached] {
				out.Finals = append(out.Finals, s)
				break
			}
		}
	}

	for _, s := range a.States {
		for _, c := range a.Alphabet {
			dest := make(map[string]bool)
			for _, t := range closures[s] {
				for _, u := range moves[edgeKey{from: t, symbol: c}] {
					for _, d := range closures[u] {
						dest[d] = true
					}
				}
			}

			sorted := make([]string, 0, len(dest))
			for d := range dest {
				sorted = append(sorted, d)
			}
			sort.Strings(sorted)

			for _, d := range sorted {
				out.Transitions = append(out.Transitions, Transition{From: s, Symbol: c, To: d})
			}
		}
	}

	return out
}

type edgeKey struct {
	from   string
	symbol string
}

// symbolEdges indexes the non-epsilon moves by (source, symbol), keeping
// declaration order and duplicates out.
func symbolEdges(transitions []Transition) map[edgeKey][]string {
	edges := make(map[edgeKey][]string)
	seen := make(map[Transition]bool)
	for _, t := range transitions {
		if t.IsEpsilon() || seen[t] {
			continue
		}
		seen[t] = true
		k := edgeKey{from: t.From, symbol: t.Symbol}
		edges[k] = append(edges[k], t.To)
	}
	return edges
}
