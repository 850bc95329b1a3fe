// Package instance reads and writes knapsack problem files.
//
// A problem file holds a capacity and a list of items, in YAML:
//
//	capacity: 50
//	items:
//	  - {id: "1", value: 60, weight: 10}
//	  - {id: "2", value: 100, weight: 20}
//
// or the equivalent JSON object. Unknown keys are rejected so that typos do
// not silently drop data.
package instance

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/core"
)

// ErrInvalidInstance is wrapped by every read and decode failure. Validation
// failures additionally wrap core.ErrInvalidInput.
var ErrInvalidInstance = errors.New("instance: invalid problem file")

// Format is a problem file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// document is the file layout.
type document struct {
	Capacity *float64    `json:"capacity" yaml:"capacity"`
	Items    []core.Item `json:"items" yaml:"items"`
}

// FormatFromPath picks JSON for a .json extension and YAML otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

// Load reads and decodes the problem file at path.
func Load(path string) (*core.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}

	return Decode(data, FormatFromPath(path))
}

// Decode parses data in the given format and validates it into a Problem.
func Decode(data []byte, format Format) (*core.Problem, error) {
	var doc document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrInvalidInstance, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrInvalidInstance, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidInstance, format)
	}

	if doc.Capacity == nil {
		return nil, fmt.Errorf("%w: missing capacity", ErrInvalidInstance)
	}
	p, err := core.NewProblem(doc.Items, *doc.Capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}

	return p, nil
}

// Encode writes p to w in the given format.
func Encode(w io.Writer, p *core.Problem, format Format) error {
	capacity := p.Capacity()
	doc := document{Capacity: &capacity, Items: p.Items()}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidInstance, format)
	}
}
