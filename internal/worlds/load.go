package worlds

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed worlds.schema.json
var schemaText string

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("worlds.schema.json", schemaText)
	})
	return compiledSchema, schemaErr
}

// File is the on-disk layout of a worlds file.
type File struct {
	DefaultWorldID string           `yaml:"default_world_id,omitempty"`
	Worlds         []PortfolioWorld `yaml:"worlds"`
}

// Load reads a worlds file. An empty path yields the built-in worlds.
func Load(path string) (File, error) {
	if strings.TrimSpace(path) == "" {
		f := File{Worlds: Defaults()}
		f.Normalize()
		return f, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("worlds.yaml: %w", err)
	}
	return Parse(b)
}

// Parse decodes and validates a worlds document.
func Parse(b []byte) (File, error) {
	if err := validateSchema(b); err != nil {
		return File{}, fmt.Errorf("worlds.yaml: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return File{}, fmt.Errorf("worlds.yaml: %w", err)
	}
	f.Normalize()
	if err := f.Validate(); err != nil {
		return File{}, fmt.Errorf("worlds.yaml: %w", err)
	}
	return f, nil
}

// validateSchema checks the raw document against the embedded schema. The
// YAML tree goes through JSON first so the validator only sees JSON types.
func validateSchema(b []byte) error {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	s, err := schema()
	if err != nil {
		return err
	}
	return s.Validate(v)
}

// Normalize fills in derived fields left empty in the file.
func (f *File) Normalize() {
	if f == nil {
		return
	}
	for i := range f.Worlds {
		w := &f.Worlds[i]
		w.ID = strings.TrimSpace(w.ID)
		if w.Background.Key == "" && w.ID != "" {
			w.Background.Key = "world-bg-" + w.ID
		}
	}
	if f.DefaultWorldID == "" && len(f.Worlds) > 0 {
		f.DefaultWorldID = f.Worlds[0].ID
	}
}

func (f File) Validate() error {
	if len(f.Worlds) == 0 {
		return fmt.Errorf("worlds must not be empty")
	}
	seen := map[string]bool{}
	for _, w := range f.Worlds {
		if w.ID == "" {
			return fmt.Errorf("world id must not be empty")
		}
		if seen[w.ID] {
			return fmt.Errorf("duplicate world id: %s", w.ID)
		}
		seen[w.ID] = true
		if w.Color > 0xffffff {
			return fmt.Errorf("world %s color out of range: %#x", w.ID, w.Color)
		}
	}
	if !seen[f.DefaultWorldID] {
		return fmt.Errorf("default_world_id %q not found in worlds", f.DefaultWorldID)
	}
	return nil
}
