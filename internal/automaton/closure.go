package automaton

import "sort"

// Closure returns the epsilon closure of state s: s itself plus every state
// reachable from it through epsilon moves only. The result is sorted and
// free of duplicates. Epsilon cycles are allowed.
func Closure(s string, transitions []Transition) []string {
	return closureOver(s, epsilonEdges(transitions))
}

// Closures returns the epsilon closure of every state of a.
func Closures(a *Automaton) map[string][]string {
	edges := epsilonEdges(a.Transitions)
	closures := make(map[string][]string, len(a.States))
	for _, s := range a.States {
		closures[s] = closureOver(s, edges)
	}
	return closures
}

// epsilonEdges indexes the epsilon moves by source state, in declaration order.
func epsilonEdges(transitions []Transition) map[string][]string {
	edges := make(map[string][]string)
	for _, t := range transitions {
		if t.IsEpsilon() {
			edges[t.From] = append(edges[t.From], t.To)
		}
	}
	return edges
}

func closureOver(s string, edges map[string][]string) []string {
	visited := map[string]bool{s: true}
	result := []string{s}
	stack := []string{s}

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range edges[state] {
			if visited[next] {
				continue
			}
			visited[next] = true
			result = append(result, next)
			stack = append(stack, next)
		}
	}

	sort.Strings(result)
	return result
}
