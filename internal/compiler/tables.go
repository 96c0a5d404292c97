package compiler

import (
	"fmt"
	"unicode/utf8"

	"github.com/KromDaniel/dfagen/internal/automaton"
	"github.com/KromDaniel/dfagen/internal/codegen"
	"github.com/dave/jennifer/jen"
)

// generateTransitionTable emits one symbol -> next state map per DFA state.
// When a (state, symbol) pair is declared twice the first one is kept.
func (c *Compiler) generateTransitionTable() {
	rows := make([]jen.Dict, len(c.order))
	for i := range rows {
		rows[i] = jen.Dict{}
	}

	seen := make(map[string]bool)
	for _, t := range c.config.Automaton.Transitions {
		key := t.From + "\x00" + t.Symbol
		if seen[key] {
			continue
		}
		seen[key] = true

		r, _ := utf8.DecodeRuneInString(t.Symbol)
		rows[c.index[t.From]][jen.LitRune(r)] = jen.Lit(c.index[t.To])
	}

	values := make([]jen.Code, len(rows))
	for i, row := range rows {
		values[i] = jen.Values(row)
	}

	c.file.Comment(fmt.Sprintf("%s[state][symbol] is the next state; a missing entry rejects.",
		codegen.TransitionsName(c.config.Name)))
	c.file.Var().Id(codegen.TransitionsName(c.config.Name)).Op("=").
		Index(jen.Op("...")).Map(jen.Rune()).Int().Values(values...)
	c.file.Line()
}

// generateAcceptingStates emits the accept flag of every state.
func (c *Compiler) generateAcceptingStates() {
	a := c.config.Automaton
	values := make([]jen.Code, len(c.order))
	for i, s := range c.order {
		if a.IsFinal(s) {
			values[i] = jen.True()
		} else {
			values[i] = jen.False()
		}
	}

	c.file.Var().Id(codegen.AcceptingName(c.config.Name)).Op("=").
		Index(jen.Op("...")).Bool().Values(values...)
	c.file.Line()
}

// generateStateNames emits the DFA state names, indexed like the tables.
func (c *Compiler) generateStateNames() {
	values := make([]jen.Code, len(c.order))
	for i, s := range c.order {
		values[i] = jen.Lit(s)
	}

	c.file.Var().Id(codegen.StateNamesName(c.config.Name)).Op("=").
		Index(jen.Op("...")).String().Values(values...)
	c.file.Line()
}

// generateRunFunction emits the table walk shared by the methods:
//
//	func nameRun(input string) (int, bool)
func (c *Compiler) generateRunFunction() {
	transitions := codegen.TransitionsName(c.config.Name)

	c.file.Func().Id(codegen.RunName(c.config.Name)).
		Params(jen.Id(codegen.InputName).String()).
		Params(jen.Int(), jen.Bool()).
		Block(
			jen.Id(codegen.StateName).Op(":=").Lit(0),
			jen.If(jen.Id(codegen.InputName).Op("==").Lit(automaton.Epsilon)).Block(
				jen.Return(jen.Id(codegen.StateName), jen.True()),
			),
			jen.For(jen.List(jen.Id("_"), jen.Id(codegen.SymbolName)).Op(":=").Range().Id(codegen.InputName)).Block(
				jen.List(jen.Id(codegen.NextName), jen.Id(codegen.OKName)).Op(":=").
					Id(transitions).Index(jen.Id(codegen.StateName)).Index(jen.Id(codegen.SymbolName)),
				jen.If(jen.Op("!").Id(codegen.OKName)).Block(
					jen.Return(jen.Lit(-1), jen.False()),
				),
				jen.Id(codegen.StateName).Op("=").Id(codegen.NextName),
			),
			jen.Return(jen.Id(codegen.StateName), jen.True()),
		)
	c.file.Line()
}

// generateMethods emits MatchString, MatchBytes and State.
func (c *Compiler) generateMethods() {
	run := codegen.RunName(c.config.Name)

	c.file.Comment("MatchString reports whether input is accepted. \"" + automaton.Epsilon + "\" is the empty word.")
	c.method("MatchString").
		Params(jen.Id(codegen.InputName).String()).
		Params(jen.Bool()).
		Block(
			jen.List(jen.Id(codegen.StateName), jen.Id(codegen.OKName)).Op(":=").Id(run).Call(jen.Id(codegen.InputName)),
			jen.Return(jen.Id(codegen.OKName).Op("&&").
				Id(codegen.AcceptingName(c.config.Name)).Index(jen.Id(codegen.StateName))),
		)
	c.file.Line()

	c.file.Comment("MatchBytes reports whether the UTF-8 encoded input is accepted.")
	c.method("MatchBytes").
		Params(jen.Id(codegen.InputName).Index().Byte()).
		Params(jen.Bool()).
		Block(
			jen.Return(jen.Id(c.config.Name).Values().Dot("MatchString").Call(jen.String().Call(jen.Id(codegen.InputName)))),
		)
	c.file.Line()

	c.file.Comment("State returns the name of the state reached after consuming input.")
	c.file.Comment("ok is false when some symbol has no transition.")
	c.method("State").
		Params(jen.Id(codegen.InputName).String()).
		Params(jen.Id("name").String(), jen.Id(codegen.OKName).Bool()).
		Block(
			jen.List(jen.Id(codegen.StateName), jen.Id(codegen.OKName)).Op(":=").Id(run).Call(jen.Id(codegen.InputName)),
			jen.If(jen.Op("!").Id(codegen.OKName)).Block(
				jen.Return(jen.Lit(""), jen.False()),
			),
			jen.Return(jen.Id(codegen.StateNamesName(c.config.Name)).Index(jen.Id(codegen.StateName)), jen.True()),
		)
}
