// Package report renders automata and word results for people.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/KromDaniel/dfagen/internal/automaton"
	"github.com/olekukonko/tablewriter"
)

// WordResult is the outcome of testing one word.
type WordResult struct {
	Word     string
	Accepted bool
}

// Verdict returns "accepted" or "rejected".
func (r WordResult) Verdict() string {
	if r.Accepted {
		return "accepted"
	}
	return "rejected"
}

// Automaton prints the kind, alphabet, states, initial and final states of a,
// followed by its transitions as a table.
func Automaton(w io.Writer, title string, a *automaton.Automaton, kind automaton.Kind) {
	if title != "" {
		fmt.Fprintf(w, "== %s ==\n", title)
	}
	fmt.Fprintf(w, "Type: %s\n", kind)
	fmt.Fprintf(w, "Alphabet: %s\n", list(a.Alphabet))
	fmt.Fprintf(w, "States: %s\n", list(a.States))
	fmt.Fprintf(w, "Initial state: %s\n", a.Initial)
	fmt.Fprintf(w, "Final states: %s\n", list(a.Finals))

	if len(a.Transitions) == 0 {
		fmt.Fprintln(w, "Transitions: none")
		return
	}

	fmt.Fprintln(w, "Transitions:")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"From", "Symbol", "To"})
	table.SetAutoWrapText(false)
	for _, t := range a.Transitions {
		table.Append([]string{t.From, t.Symbol, t.To})
	}
	table.Render()
}

// Words prints one "word: accepted|rejected" line per result.
func Words(w io.Writer, results []WordResult) {
	for _, r := range results {
		fmt.Fprintf(w, "%s: %s\n", r.Word, r.Verdict())
	}
}

// WordTable prints the results as a table.
func WordTable(w io.Writer, results []WordResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Word", "Result"})
	table.SetAutoWrapText(false)
	for _, r := range results {
		table.Append([]string{r.Word, r.Verdict()})
	}
	table.Render()
}

// Step is one automaton of a normalization run.
type Step struct {
	Name      string
	Kind      automaton.Kind
	Automaton *automaton.Automaton
}

// Summary prints one row per step with its kind and size.
func Summary(w io.Writer, steps []Step) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "Type", "States", "Finals", "Transitions"})
	for _, s := range steps {
		table.Append([]string{
			s.Name,
			s.Kind.String(),
			fmt.Sprint(len(s.Automaton.States)),
			fmt.Sprint(len(s.Automaton.Finals)),
			fmt.Sprint(len(s.Automaton.Transitions)),
		})
	}
	table.Render()
}

func list(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
