package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema that a completion must satisfy.
type Schema struct {
	// Name identifies the schema to vendors and keys the compile cache.
	// Kebab-case, e.g. "learning-resources".
	Name        string
	Description string
	Definition  map[string]any
}

var compiled = struct {
	sync.Mutex
	byName map[string]*jsonschema.Schema
}{byName: map[string]*jsonschema.Schema{}}

// Validate checks raw against the schema. Schemas are compiled once per
// name.
func (s *Schema) Validate(raw json.RawMessage) error {
	if s == nil {
		return nil
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("output is not JSON: %w", err)
	}
	sch, err := s.compile()
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("output does not match %s: %w", s.Name, err)
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	compiled.Lock()
	defer compiled.Unlock()
	if sch, ok := compiled.byName[s.Name]; ok {
		return sch, nil
	}

	def, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", s.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", s.Name, err)
	}

	c := jsonschema.NewCompiler()
	url := "mem://schemas/" + s.Name + ".json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", s.Name, err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", s.Name, err)
	}
	compiled.byName[s.Name] = sch
	return sch, nil
}
