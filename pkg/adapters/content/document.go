package content

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Document is the decoded form of a content file.
// It uses "mapstructure" tags so unknown keys are rejected after YAML parsing.
// Scalars are weakly typed, so "type: 120" and "type: spell" both decode.
type Document struct {
	Elements  []ElementSpec  `mapstructure:"elements"`
	Variables []VariableSpec `mapstructure:"variables"`
}

// ElementSpec describes one non-variable element.
type ElementSpec struct {
	Type        string       `mapstructure:"type"`
	ID          string       `mapstructure:"id"`
	Name        string       `mapstructure:"name"`
	Description string       `mapstructure:"description"`
	Granted     []any        `mapstructure:"granted"`
	Options     []OptionSpec `mapstructure:"options"`
}

// OptionSpec describes a choice slot. Choices hold "type", "type:id",
// "type:*" strings or {type, id} / {type, match} maps.
type OptionSpec struct {
	Count   int   `mapstructure:"count"`
	Choices []any `mapstructure:"choices"`
}

// VariableSpec describes an integer variable and its formula tree.
type VariableSpec struct {
	ID          string `mapstructure:"id"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Formula     any    `mapstructure:"formula"`
}

// refSpec is the map form of an element reference or choice.
type refSpec struct {
	Type  string `mapstructure:"type"`
	ID    string `mapstructure:"id"`
	Match string `mapstructure:"match"`
}

// Parse decodes a YAML content document.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	var doc Document
	if err := decodeStrict(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	return &doc, nil
}

// ParseFile reads and decodes a YAML content file.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	return Parse(data)
}

func decodeStrict(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
