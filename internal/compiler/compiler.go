// Package compiler turns a deterministic automaton into a standalone Go
// matcher.
package compiler

import (
	"fmt"
	"go/format"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/dfagen/internal/automaton"
	"github.com/KromDaniel/dfagen/internal/codegen"
	"github.com/KromDaniel/dfagen/internal/pipeline"
	"github.com/dave/jennifer/jen"
	"github.com/pkg/errors"
)

// ErrNotDeterministic is returned when asked to compile an NFA or epsilon-NFA.
var ErrNotDeterministic = errors.New("only deterministic automata can be compiled")

// Config holds the configuration for code generation.
type Config struct {
	Name             string               // Type name of the generated matcher
	Package          string
	OutputFile       string
	Source           string               // Shown in the header comment, e.g. the description path
	Automaton        *automaton.Automaton // Must be a DFA
	GenerateTestFile bool                 // Generate a test file checking TestWords
	TestWords        []string             // Words for the generated test file
	Logger           *pipeline.Logger     // Optional verbose logger
}

// Compiler generates Go code from a DFA.
type Compiler struct {
	config Config
	file   *jen.File
	logger *pipeline.Logger
	order  []string       // DFA states, initial first
	index  map[string]int // state name -> table index
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	logger := config.Logger
	if logger == nil {
		logger = pipeline.NewLogger(false)
	}
	return &Compiler{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: logger,
	}
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// Generate generates the Go code and writes it to the output file.
func (c *Compiler) Generate() error {
	if err := c.build(); err != nil {
		return err
	}

	if err := c.file.Save(c.config.OutputFile); err != nil {
		return errors.Wrap(err, "failed to save file")
	}
	if err := formatFile(c.config.OutputFile); err != nil {
		return errors.Wrap(err, "failed to format file")
	}
	c.logger.Log("Wrote %s", c.config.OutputFile)

	if c.config.GenerateTestFile {
		if err := c.generateTestFile(); err != nil {
			return errors.Wrap(err, "failed to generate test file")
		}
	}
	return nil
}

// Render writes the generated matcher to w without touching the file system.
func (c *Compiler) Render(w io.Writer) error {
	if err := c.build(); err != nil {
		return err
	}
	return errors.Wrap(c.file.Render(w), "failed to render code")
}

func (c *Compiler) build() error {
	a := c.config.Automaton
	if a == nil {
		return errors.New("no automaton to compile")
	}
	if kind := automaton.Classify(a); !kind.Deterministic() {
		return errors.Wrapf(ErrNotDeterministic, "got a %s", kind)
	}

	c.file = jen.NewFile(c.config.Package)
	c.indexStates()

	c.logger.Section("Code Generation", a)
	c.logger.Log("Generating %s (states: %d, transitions: %d)", c.config.Name, len(c.order), len(a.Transitions))

	header := "Code generated by dfagen"
	if c.config.Source != "" {
		header += fmt.Sprintf(" from %s", c.config.Source)
	}
	c.file.HeaderComment(header + ". DO NOT EDIT.")

	c.file.Comment(fmt.Sprintf("%s matches words of a deterministic automaton over %s.",
		c.config.Name, strings.Join(a.Alphabet, ", ")))
	c.file.Type().Id(c.config.Name).Struct()
	c.file.Line()

	c.file.Var().Id(codegen.CompiledName(c.config.Name)).Op("=").Id(c.config.Name).Values()
	c.file.Line()

	c.generateTransitionTable()
	c.generateAcceptingStates()
	c.generateStateNames()
	c.generateRunFunction()
	c.generateMethods()
	return nil
}

// indexStates numbers the DFA states with the initial state at 0.
func (c *Compiler) indexStates() {
	a := c.config.Automaton
	c.order = []string{a.Initial}
	c.index = map[string]int{a.Initial: 0}
	for _, s := range a.States {
		if _, ok := c.index[s]; ok {
			continue
		}
		c.index[s] = len(c.order)
		c.order = append(c.order, s)
	}
}

// method returns a jen.Statement for declaring a method on the generated struct.
func (c *Compiler) method(name string) *jen.Statement {
	return c.file.Func().
		Params(jen.Id(c.config.Name)).
		Id(name)
}

// formatFile reads a file, formats it with go/format, and writes it back.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
