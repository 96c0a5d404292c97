package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// CompositeDelimiter joins member labels in the name of a composite state.
const CompositeDelimiter = "-"

// ToDFA converts a into an equivalent deterministic automaton using subset
// construction. Every DFA state stands for a non-empty set of states of a and
// only sets reachable from {initial} are built. No dead state is added, so
// the result may be partial. Epsilon moves of a are ignored; eliminate them
// first.
func ToDFA(a *Automaton) *Automaton {
	sc := newSubsetBuilder(a)
	return sc.build()
}

// subsetBuilder holds the bookkeeping of one subset construction.
// Composite identity is the bitset of member indices; names are only for
// presentation and are assigned through names.
type subsetBuilder struct {
	src    *Automaton
	index  map[string]uint
	finals *bitset.BitSet
	moves  map[edgeKey]*bitset.BitSet
	names  map[string]string // bitset key -> state name
	taken  map[string]bool   // names already handed out
}

func newSubsetBuilder(a *Automaton) *subsetBuilder {
	n := uint(len(a.States))
	sc := &subsetBuilder{
		src:    a,
		index:  make(map[string]uint, n),
		finals: bitset.New(n),
		moves:  make(map[edgeKey]*bitset.BitSet),
		names:  make(map[string]string),
		taken:  make(map[string]bool),
	}

	for i, s := range a.States {
		sc.index[s] = uint(i)
	}
	for _, f := range a.Finals {
		if i, ok := sc.index[f]; ok {
			sc.finals.Set(i)
		}
	}
	for _, t := range a.Transitions {
		if t.IsEpsilon() {
			continue
		}
		to, ok := sc.index[t.To]
		if !ok {
			continue
		}
		k := edgeKey{from: t.From, symbol: t.Symbol}
		dest, ok := sc.moves[k]
		if !ok {
			dest = bitset.New(n)
			sc.moves[k] = dest
		}
		dest.Set(to)
	}

	return sc
}

func (sc *subsetBuilder) build() *Automaton {
	out := &Automaton{
		Alphabet:    append([]string(nil), sc.src.Alphabet...),
		States:      make([]string, 0),
		Finals:      make([]string, 0),
		Transitions: make([]Transition, 0),
	}

	start := bitset.New(uint(len(sc.src.States)))
	if i, ok := sc.index[sc.src.Initial]; ok {
		start.Set(i)
	}
	out.Initial = sc.name(start)

	worklist := []*bitset.BitSet{start}
	processed := make(map[string]bool)

	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		key := current.String()
		if processed[key] {
			continue
		}
		processed[key] = true

		name := sc.name(current)
		out.States = append(out.States, name)
		if current.IntersectionCardinality(sc.finals) > 0 {
			out.Finals = append(out.Finals, name)
		}

		for _, c := range sc.src.Alphabet {
			next := sc.step(current, c)
			if next.None() {
				continue
			}
			out.Transitions = append(out.Transitions, Transition{From: name, Symbol: c, To: sc.name(next)})
			worklist = append(worklist, next)
		}
	}

	return out
}

// step returns the union of the destinations of every member of set on c.
func (sc *subsetBuilder) step(set *bitset.BitSet, c string) *bitset.BitSet {
	next := bitset.New(uint(len(sc.src.States)))
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if dest, found := sc.moves[edgeKey{from: sc.src.States[i], symbol: c}]; found {
			next.InPlaceUnion(dest)
		}
	}
	return next
}

// name returns the presentation name of set, assigning one on first use.
// Sets whose joined labels collide with an earlier name get a numeric suffix.
func (sc *subsetBuilder) name(set *bitset.BitSet) string {
	key := set.String()
	if name, ok := sc.names[key]; ok {
		return name
	}

	labels := make([]string, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		labels = append(labels, sc.src.States[i])
	}
	sort.Strings(labels)

	base := strings.Join(labels, CompositeDelimiter)
	name := base
	for n := 2; sc.taken[name]; n++ {
		name = base + "#" + strconv.Itoa(n)
	}

	sc.names[key] = name
	sc.taken[name] = true
	return name
}
