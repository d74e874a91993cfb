// Package fixture loads customer and attribute fixtures into a store.
package fixture

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NikitaCOEUR/prefixgender/internal/customer"
	perrors "github.com/NikitaCOEUR/prefixgender/internal/errors"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// Attribute is a fixture attribute definition
type Attribute struct {
	EntityType string            `yaml:"entity_type"`
	Code       string            `yaml:"code"`
	UsesSource *bool             `yaml:"uses_source"`
	Options    []customer.Option `yaml:"options"`
}

// Fixture is the content of a fixture file
type Fixture struct {
	Attributes []Attribute       `yaml:"attributes"`
	Customers  []customer.Record `yaml:"customers"`
}

// Target receives fixture content
type Target interface {
	PutAttribute(ctx context.Context, a *customer.Attribute) error
	Insert(ctx context.Context, r *customer.Record) error
}

// Summary counts what a Load wrote
type Summary struct {
	Attributes int
	Customers  int
}

// ReadFile reads and validates a YAML or JSON fixture
func ReadFile(path string) (*Fixture, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml", ".json":
	default:
		return nil, perrors.NewValidationError("file", fmt.Sprintf("unsupported fixture format: %s", ext), nil)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(content)
}

// Parse validates content against the fixture schema and decodes it.
// JSON input is accepted since it parses as YAML.
func Parse(content []byte) (*Fixture, error) {
	var doc interface{}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, perrors.NewValidationError("syntax", "invalid fixture syntax", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schemaJSON), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, perrors.NewValidationError("schema", "failed to validate fixture", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
		}
		return nil, perrors.NewValidationError(result.Errors()[0].Field(), strings.Join(msgs, "; "), nil)
	}

	var f Fixture
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, perrors.NewValidationError("syntax", "failed to decode fixture", err)
	}

	seen := make(map[int64]bool, len(f.Customers))
	for i, c := range f.Customers {
		if seen[c.ID] {
			return nil, perrors.NewValidationError(fmt.Sprintf("customers.%d.id", i),
				fmt.Sprintf("duplicate customer id %d", c.ID), nil)
		}
		seen[c.ID] = true
	}

	return &f, nil
}

// Load writes attributes first, then customers. Attributes default to the
// customer entity type and to being source-backed.
func Load(ctx context.Context, target Target, f *Fixture) (Summary, error) {
	var s Summary
	for _, a := range f.Attributes {
		entityType := a.EntityType
		if entityType == "" {
			entityType = customer.EntityType
		}
		usesSource := a.UsesSource == nil || *a.UsesSource
		if err := target.PutAttribute(ctx, customer.NewAttribute(entityType, a.Code, usesSource, a.Options)); err != nil {
			return s, fmt.Errorf("attribute %s/%s: %w", entityType, a.Code, err)
		}
		s.Attributes++
	}

	for i := range f.Customers {
		if err := target.Insert(ctx, &f.Customers[i]); err != nil {
			return s, fmt.Errorf("customer %d: %w", f.Customers[i].ID, err)
		}
		s.Customers++
	}
	return s, nil
}
