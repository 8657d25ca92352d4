// Package graphio loads skill graph documents from JSON, validating their
// shape against a JSON Schema at the collaborator boundary before anything
// reaches the engine.
package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/tutorkit/internal/skillgraph"
)

// Document is the on-disk skill graph format.
type Document struct {
	Skills        []skillgraph.Skill        `json:"skills"`
	Prerequisites []skillgraph.Prerequisite `json:"prerequisites"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(documentSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse graph schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://skillgraph.json", parsed); err != nil {
			compileErr = fmt.Errorf("add graph schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://skillgraph.json")
	})
	return compiledSchema, compileErr
}

// Load reads and validates a skill graph document and constructs the graph,
// which applies the structural checks (duplicates, dangling edges, cycles).
func Load(r io.Reader) (*skillgraph.Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read graph document: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	s, err := schema()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(parsed); err != nil {
		return nil, fmt.Errorf("graph document schema validation: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode graph document: %w", err)
	}

	return skillgraph.NewGraph(doc.Skills, doc.Prerequisites)
}

// LoadFile loads a skill graph document from a file path.
func LoadFile(path string) (*skillgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph document: %w", err)
	}
	defer f.Close()
	return Load(f)
}
