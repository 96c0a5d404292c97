package pipeline

import (
	"context"

	"github.com/KromDaniel/dfagen/internal/automaton"
	"github.com/looplab/fsm"
	"github.com/pkg/errors"
)

// Event names of the normalization machine.
const (
	EventEliminate              = "eliminate"
	EventEliminateDeterministic = "eliminate-deterministic"
	EventDeterminize            = "determinize"
)

var normalizationEvents = fsm.Events{
	{Name: EventEliminate, Src: []string{automaton.EpsilonNFA.String()}, Dst: automaton.NFA.String()},
	{Name: EventEliminateDeterministic, Src: []string{automaton.EpsilonNFA.String()}, Dst: automaton.DFA.String()},
	{Name: EventDeterminize, Src: []string{automaton.NFA.String()}, Dst: automaton.DFA.String()},
}

// normalizer tracks which kind of automaton the run currently holds.
// Its states are Kind names; only moves towards DFA are allowed.
type normalizer struct {
	machine *fsm.FSM
}

func newNormalizer(start automaton.Kind, logger *Logger) *normalizer {
	return &normalizer{
		machine: fsm.NewFSM(start.String(), normalizationEvents, fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Log("%s: %s -> %s", e.Event, e.Src, e.Dst)
			},
		}),
	}
}

// advance records that the automaton was transformed by event.
func (n *normalizer) advance(ctx context.Context, event string) error {
	if err := n.machine.Event(ctx, event); err != nil {
		return errors.Wrapf(err, "cannot %s a %s", event, n.machine.Current())
	}
	return nil
}

// deterministic reports whether the machine reached the DFA state.
func (n *normalizer) deterministic() bool {
	return n.machine.Is(automaton.DFA.String())
}
