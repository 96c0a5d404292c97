// Package description reads and writes declarative automaton descriptions.
//
// A description is a JSON or YAML document:
//
//	{
//	  "alphabet": ["0", "1"],
//	  "states": ["q0", "q1", "q2"],
//	  "initial_state": "q0",
//	  "final_states": ["q2"],
//	  "transitions": [["q0", "0", "q0"], ["q0", "0", "q1"], ["q1", "1", "q2"]],
//	  "words": ["01", "&"]
//	}
//
// The Portuguese keys of the legacy format (alfabeto, estados, estado_inicial,
// estados_finais, transicoes, palavras) are accepted as aliases.
package description

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/KromDaniel/dfagen/internal/automaton"
	"github.com/ghodss/yaml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// ErrInvalidDescription is the cause of every schema or field validation error.
var ErrInvalidDescription = errors.New("invalid automaton description")

// aliases maps the legacy Portuguese keys to ours.
var aliases = map[string]string{
	"alfabeto":       "alphabet",
	"estados":        "states",
	"estado_inicial": "initial_state",
	"estados_finais": "final_states",
	"transicoes":     "transitions",
	"palavras":       "words",
	"nome":           "name",
}

// use a single instance of validator, it caches struct info
var validate = validator.New()

// Description is the boundary form of an automaton plus the words to test.
type Description struct {
	Name        string     `json:"name,omitempty"`
	Alphabet    []string   `json:"alphabet" validate:"required,unique,dive,len=1,ne=&"`
	States      []string   `json:"states" validate:"required,min=1,unique,dive,required"`
	Initial     string     `json:"initial_state" validate:"required"`
	Finals      []string   `json:"final_states" validate:"unique,dive,required"`
	Transitions [][]string `json:"transitions" validate:"dive,len=3,dive,required"`
	Words       []string   `json:"words,omitempty"`
}

// Load reads the description stored at path.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read description %s", path)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load description %s", path)
	}
	return d, nil
}

// Parse decodes a JSON or YAML description and checks it against the schema,
// the field rules and the automaton invariants.
func Parse(data []byte) (*Description, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	if err := normalizeKeys(doc); err != nil {
		return nil, err
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "unable to re-encode description")
	}

	d := &Description{}
	if err := json.Unmarshal(normalized, d); err != nil {
		return nil, errors.Wrapf(ErrInvalidDescription, "%v", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the field rules and the automaton invariants.
func (d *Description) Validate() error {
	if err := validate.Struct(d); err != nil {
		return errors.Wrapf(ErrInvalidDescription, "%v", err)
	}
	if err := d.Automaton().Validate(); err != nil {
		return errors.Wrap(err, "description does not describe a valid automaton")
	}
	return nil
}

// Automaton builds the core automaton value. The description is not retained.
func (d *Description) Automaton() *automaton.Automaton {
	transitions := make([]automaton.Transition, 0, len(d.Transitions))
	for _, t := range d.Transitions {
		if len(t) != 3 {
			continue
		}
		transitions = append(transitions, automaton.Transition{From: t[0], Symbol: t[1], To: t[2]})
	}
	return automaton.New(d.Alphabet, d.States, d.Initial, d.Finals, transitions)
}

// FromAutomaton builds a description of a with the given words.
func FromAutomaton(name string, a *automaton.Automaton, words []string) *Description {
	transitions := make([][]string, 0, len(a.Transitions))
	for _, t := range a.Transitions {
		transitions = append(transitions, []string{t.From, t.Symbol, t.To})
	}
	return &Description{
		Name:        name,
		Alphabet:    append([]string{}, a.Alphabet...),
		States:      append([]string{}, a.States...),
		Initial:     a.Initial,
		Finals:      append([]string{}, a.Finals...),
		Transitions: transitions,
		Words:       append([]string(nil), words...),
	}
}

// decodeDocument reads a JSON or YAML document into generic values. Every
// scalar keeps its source text, so an unquoted 01 stays the word "01" rather
// than resolving to a number.
func decodeDocument(data []byte) (map[string]interface{}, error) {
	var root yamlv3.Node
	if err := yamlv3.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "unable to decode description")
	}

	doc, ok := nodeValue(&root).(map[string]interface{})
	if !ok {
		return nil, errors.Wrap(ErrInvalidDescription, "document is not an object")
	}
	return doc, nil
}

func nodeValue(n *yamlv3.Node) interface{} {
	switch n.Kind {
	case yamlv3.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return nodeValue(n.Content[0])
	case yamlv3.AliasNode:
		return nodeValue(n.Alias)
	case yamlv3.MappingNode:
		m := make(map[string]interface{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			m[n.Content[i].Value] = nodeValue(n.Content[i+1])
		}
		return m
	case yamlv3.SequenceNode:
		items := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			items = append(items, nodeValue(c))
		}
		return items
	case yamlv3.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil
		}
		return n.Value
	default:
		return nil
	}
}

func normalizeKeys(doc map[string]interface{}) error {
	for alias, key := range aliases {
		v, ok := doc[alias]
		if !ok {
			continue
		}
		if _, dup := doc[key]; dup {
			return errors.Wrapf(ErrInvalidDescription, "both %q and %q are set", alias, key)
		}
		doc[key] = v
		delete(doc, alias)
	}
	return nil
}

func validateSchema(doc map[string]interface{}) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return errors.Wrap(err, "invalid description schema")
	}

	r, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return errors.Wrapf(ErrInvalidDescription, "%v", err)
	}
	if !r.Valid() {
		return errors.Wrapf(ErrInvalidDescription, "%d errors encountered, 1st error: %s",
			len(r.Errors()), r.Errors()[0].String())
	}
	return nil
}

// Format is the encoding of a stored description.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension; JSON is the default.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Marshal encodes d in the given format.
func Marshal(d *Description, format Format) ([]byte, error) {
	switch format {
	case YAML:
		out, err := yaml.Marshal(d)
		return out, errors.Wrap(err, "unable to encode description as yaml")
	case JSON:
		out, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "unable to encode description as json")
		}
		return append(out, '\n'), nil
	default:
		return nil, errors.Errorf("unknown description format %q", format)
	}
}

// Save writes d to path, choosing the format from the extension.
func Save(path string, d *Description) error {
	data, err := Marshal(d, FormatFromPath(path))
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "unable to write description %s", path)
}
