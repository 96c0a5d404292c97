// Package dfagen classifies finite automata, converts them to deterministic
// automata and tests words against them. A deterministic result can be
// compiled into a standalone Go matcher.
package dfagen

import (
	"context"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/KromDaniel/dfagen/internal/automaton"
	"github.com/KromDaniel/dfagen/internal/codegen"
	"github.com/KromDaniel/dfagen/internal/compiler"
	"github.com/KromDaniel/dfagen/internal/description"
	"github.com/KromDaniel/dfagen/internal/pipeline"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalidOptions is the cause of every options validation error.
var ErrInvalidOptions = errors.New("invalid options")

// Kind is the classification of an automaton: DFA, NFA or epsilon-NFA.
type Kind = automaton.Kind

// Result holds every automaton built during a run and the word outcomes.
type Result = pipeline.Result

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("identifier", isIdentifier)
	return v
}

// isIdentifier accepts ASCII Go identifiers that start with a letter, the
// same shape codegen.Identifier produces.
func isIdentifier(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || !unicode.IsLetter(rune(s[0])) || s[0] > unicode.MaxASCII {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// Options configures a run over a description file.
type Options struct {
	// Input is the path of the JSON or YAML description.
	Input string `validate:"required"`

	// Words are tested after the words listed in the description.
	Words []string

	// Verbose prints every normalization step to stderr.
	Verbose bool

	// Concurrency bounds the goroutines evaluating words (0 = GOMAXPROCS).
	Concurrency int `validate:"gte=0"`

	// Simulate evaluates words on the input automaton instead of the DFA.
	Simulate bool

	// CrossCheck fails the run when the DFA and the input disagree on a word.
	CrossCheck bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	return validateStruct(o)
}

// GenerateOptions configures the generation of a Go matcher.
type GenerateOptions struct {
	Options

	// Name is the type name of the generated matcher. Defaults to an
	// identifier derived from the description name or the input file.
	Name string `validate:"omitempty,identifier"`

	// Package is the Go package name for the generated code.
	Package string `validate:"required"`

	// OutputFile is the path where generated code will be written.
	OutputFile string `validate:"required"`

	// GenerateTestFile writes <output>_test.go checking the description
	// words and Words against the generated matcher.
	GenerateTestFile bool
}

// Validate checks if the options are valid.
func (o GenerateOptions) Validate() error {
	return validateStruct(o)
}

func validateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return errors.Wrapf(ErrInvalidOptions, "%v", err)
	}
	return nil
}

// Run loads the description, converts it to a DFA and evaluates every word.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	d, err := description.Load(opts.Input)
	if err != nil {
		return nil, err
	}

	return pipeline.Run(ctx, d.Automaton(), words(d, opts.Words), pipeline.Options{
		Verbose:     opts.Verbose,
		Concurrency: opts.Concurrency,
		Simulate:    opts.Simulate,
		CrossCheck:  opts.CrossCheck,
	})
}

// Classify loads the description at path and reports its kind.
func Classify(path string) (Kind, error) {
	d, err := description.Load(path)
	if err != nil {
		return 0, err
	}
	return automaton.Classify(d.Automaton()), nil
}

// Generate loads the description, converts it to a DFA and writes a Go
// matcher for it.
func Generate(ctx context.Context, opts GenerateOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	d, err := description.Load(opts.Input)
	if err != nil {
		return err
	}

	logger := pipeline.NewLogger(opts.Verbose)
	steps, err := pipeline.Normalize(ctx, d.Automaton(), logger)
	if err != nil {
		return errors.Wrap(err, "unable to normalize automaton")
	}

	name := opts.Name
	if name == "" {
		name = defaultName(d, opts.Input)
	}

	c := compiler.New(compiler.Config{
		Name:             name,
		Package:          opts.Package,
		Source:           filepath.Base(opts.Input),
		Automaton:        steps[len(steps)-1].Automaton,
		GenerateTestFile: opts.GenerateTestFile,
		TestWords:        words(d, opts.Words),
		Logger:           logger,
	})
	c.SetOutputFile(opts.OutputFile)

	if err := c.Generate(); err != nil {
		return errors.Wrap(err, "failed to generate code")
	}
	return nil
}

func words(d *description.Description, extra []string) []string {
	out := make([]string, 0, len(d.Words)+len(extra))
	out = append(out, d.Words...)
	return append(out, extra...)
}

func defaultName(d *description.Description, input string) string {
	if d.Name != "" {
		return codegen.Identifier(d.Name)
	}
	base := filepath.Base(input)
	return codegen.Identifier(strings.TrimSuffix(base, filepath.Ext(base)))
}
