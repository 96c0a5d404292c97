package automaton

// Accept reports whether the deterministic automaton a accepts w.
//
// w == Epsilon (or "") is the zero-length word. Otherwise w is consumed one
// character at a time; the first transition matching the current state and
// character is taken and a missing transition rejects at once. When a is not
// deterministic the earliest declared transition wins.
func Accept(a *Automaton, w string) bool {
	if isEmptyWord(w) {
		return a.IsFinal(a.Initial)
	}

	state := a.Initial
	for _, r := range w {
		c := string(r)
		found := false
		for _, t := range a.Transitions {
			if t.From == state && t.Symbol == c {
				state = t.To
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return a.IsFinal(state)
}

func isEmptyWord(w string) bool {
	return w == Epsilon || w == ""
}

// Evaluator runs words against a deterministic automaton using a step table
// built once. It gives the same answers as Accept and is safe for
// concurrent use.
type Evaluator struct {
	initial string
	finals  map[string]bool
	steps   map[edgeKey]string
}

// NewEvaluator indexes the transitions of a. For duplicate (state, symbol)
// pairs the first declared transition is kept, as in Accept.
func NewEvaluator(a *Automaton) *Evaluator {
	ev := &Evaluator{
		initial: a.Initial,
		finals:  a.finalSet(),
		steps:   make(map[edgeKey]string, len(a.Transitions)),
	}
	for _, t := range a.Transitions {
		k := edgeKey{from: t.From, symbol: t.Symbol}
		if _, exists := ev.steps[k]; !exists {
			ev.steps[k] = t.To
		}
	}
	return ev
}

// Accept reports whether w is accepted.
func (ev *Evaluator) Accept(w string) bool {
	state, ok := ev.Run(w)
	return ok && ev.finals[state]
}

// Run returns the state reached after consuming w. ok is false when a
// character has no transition from the current state.
func (ev *Evaluator) Run(w string) (state string, ok bool) {
	state = ev.initial
	if isEmptyWord(w) {
		return state, true
	}
	for _, r := range w {
		state, ok = ev.steps[edgeKey{from: state, symbol: string(r)}]
		if !ok {
			return "", false
		}
	}
	return state, true
}

// Simulate reports whether any automaton, including an epsilon-NFA, accepts
// w by tracking the set of active states. It does not need a to be
// deterministic and serves as the reference for the converted automata.
func Simulate(a *Automaton, w string) bool {
	edges := epsilonEdges(a.Transitions)
	moves := symbolEdges(a.Transitions)

	active := make(map[string]bool)
	for _, s := range closureOver(a.Initial, edges) {
		active[s] = true
	}

	if !isEmptyWord(w) {
		for _, r := range w {
			c := string(r)
			next := make(map[string]bool)
			for s := range active {
				for _, u := range moves[edgeKey{from: s, symbol: c}] {
					if next[u] {
						continue
					}
					for _, reached := range closureOver(u, edges) {
						next[reached] = true
					}
				}
			}
			if len(next) == 0 {
				return false
			}
			active = next
		}
	}

	for _, f := range a.Finals {
		if active[f] {
			return true
		}
	}
	return false
}
