// Package pipeline runs an automaton through classification, epsilon
// elimination and subset construction, then evaluates words against the
// deterministic result.
package pipeline

import (
	"context"
	"runtime"

	"github.com/KromDaniel/dfagen/internal/automaton"
	"github.com/KromDaniel/dfagen/internal/report"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Step names used in Result.Steps.
const (
	StepInput        = "input"
	StepEliminated   = "epsilon-free"
	StepDeterminized = "determinized"
)

// ErrDivergence is returned when cross-checking finds a word on which the
// deterministic automaton and the simulation of the input disagree.
var ErrDivergence = errors.New("normalized automaton disagrees with the input")

// Options configures a run.
type Options struct {
	// Verbose enables step-by-step logging.
	Verbose bool
	// Concurrency bounds the goroutines evaluating words (0 = GOMAXPROCS).
	Concurrency int
	// Simulate evaluates words on the input automaton by set simulation
	// instead of on the normalized DFA.
	Simulate bool
	// CrossCheck evaluates every word both ways and fails on disagreement.
	CrossCheck bool
	// Logger overrides the logger built from Verbose.
	Logger *Logger
}

// Result holds every automaton built during a run and the word outcomes.
type Result struct {
	Steps []report.Step
	Words []report.WordResult
}

// Final returns the last automaton of the run.
func (r *Result) Final() *automaton.Automaton {
	return r.Steps[len(r.Steps)-1].Automaton
}

// FinalKind returns the kind of the last automaton of the run.
func (r *Result) FinalKind() automaton.Kind {
	return r.Steps[len(r.Steps)-1].Kind
}

// Normalize classifies a and converts it to a DFA, returning every
// intermediate automaton in order. a itself is not modified.
func Normalize(ctx context.Context, a *automaton.Automaton, logger *Logger) ([]report.Step, error) {
	if logger == nil {
		logger = NewLogger(false)
	}

	logger.Section("Classification", a)
	kind := automaton.Classify(a)
	logger.Automaton("Input automaton", a)

	steps := []report.Step{{Name: StepInput, Kind: kind, Automaton: a}}
	machine := newNormalizer(kind, logger)
	current := a

	if kind == automaton.EpsilonNFA {
		logger.Section("Epsilon Elimination", current)
		current = automaton.EliminateEpsilon(current)
		kind = automaton.Classify(current)
		event := EventEliminate
		if kind == automaton.DFA {
			event = EventEliminateDeterministic
		}
		if err := machine.advance(ctx, event); err != nil {
			return nil, err
		}
		logger.Automaton("Epsilon-free automaton", current)
		steps = append(steps, report.Step{Name: StepEliminated, Kind: kind, Automaton: current})
	}

	if kind == automaton.NFA {
		logger.Section("Subset Construction", current)
		current = automaton.ToDFA(current)
		kind = automaton.Classify(current)
		if err := machine.advance(ctx, EventDeterminize); err != nil {
			return nil, err
		}
		logger.Automaton("Deterministic automaton", current)
		steps = append(steps, report.Step{Name: StepDeterminized, Kind: kind, Automaton: current})
	}

	if !machine.deterministic() || kind != automaton.DFA {
		return nil, errors.Errorf("normalization ended with a %s", kind)
	}
	return steps, nil
}

// Run normalizes a and evaluates words against the result.
func Run(ctx context.Context, a *automaton.Automaton, words []string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(opts.Verbose)
	}

	steps, err := Normalize(ctx, a, logger)
	if err != nil {
		return nil, errors.Wrap(err, "unable to normalize automaton")
	}
	result := &Result{Steps: steps}

	logger.Section("Word Evaluation", result.Final())
	var accept func(string) bool
	if opts.Simulate {
		logger.Log("Evaluating %d words by simulating the input automaton", len(words))
		accept = func(w string) bool { return automaton.Simulate(a, w) }
	} else {
		logger.Log("Evaluating %d words on the %s", len(words), result.FinalKind())
		accept = automaton.NewEvaluator(result.Final()).Accept
	}

	result.Words, err = EvaluateConcurrently(ctx, accept, words, opts.Concurrency)
	if err != nil {
		return nil, err
	}

	if opts.CrossCheck {
		if err := crossCheck(a, result); err != nil {
			return nil, err
		}
		logger.Log("Cross-check passed for %d words", len(words))
	}

	return result, nil
}

// EvaluateConcurrently applies accept to every word using at most limit
// goroutines (GOMAXPROCS when limit <= 0). Results keep the order of words.
func EvaluateConcurrently(ctx context.Context, accept func(string) bool, words []string, limit int) ([]report.WordResult, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]report.WordResult, len(words))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, w := range words {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = report.WordResult{Word: w, Accepted: accept(w)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "word evaluation interrupted")
	}
	return results, nil
}

func crossCheck(a *automaton.Automaton, result *Result) error {
	dfa := result.Final()
	for _, r := range result.Words {
		viaDFA := automaton.Accept(dfa, r.Word)
		viaSimulation := automaton.Simulate(a, r.Word)
		if viaDFA != viaSimulation {
			return errors.Wrapf(ErrDivergence, "word %q: dfa=%v simulation=%v", r.Word, viaDFA, viaSimulation)
		}
	}
	return nil
}
