package theme

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema/theme.schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// themeDocument is the on-disk form of a theme.
type themeDocument struct {
	Theme   `yaml:",inline"`
	Extends string `yaml:"extends"`
}

// Parse decodes a YAML theme document. Fields it leaves out are taken from the
// theme named by its "extends" key, or from the registry's fallback theme.
func (r *Registry) Parse(data []byte) (Theme, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Theme{}, fmt.Errorf("validate theme: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return Theme{}, fmt.Errorf("%w: %s", ErrInvalidTheme, strings.Join(msgs, "; "))
	}

	base := r.Fallback()
	if ext, _ := doc["extends"].(string); ext != "" {
		var ok bool
		if base, ok = r.Lookup(ext); !ok {
			return Theme{}, fmt.Errorf("%w: extends unknown theme %q", ErrInvalidTheme, ext)
		}
	}

	// Unknown keys are errors.
	out := themeDocument{Theme: base}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	if err := Validate(out.Theme); err != nil {
		return Theme{}, err
	}
	return out.Theme, nil
}

// LoadFile parses the YAML theme at path and registers it.
func (r *Registry) LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}

	t, err := r.Parse(data)
	if err != nil {
		return Theme{}, fmt.Errorf("theme file %s: %w", path, err)
	}

	if err := r.Register(t); err != nil {
		return Theme{}, fmt.Errorf("theme file %s: %w", path, err)
	}
	return t, nil
}
