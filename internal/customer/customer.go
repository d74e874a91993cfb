// Package customer defines the customer records and attribute metadata the
// converter works on, and the interfaces a backing store must satisfy.
package customer

import (
	"context"
	"strings"
)

// EntityType is the entity type code customers are registered under
const EntityType = "customer"

// GenderAttribute is the attribute code holding a customer's gender
const GenderAttribute = "gender"

// Record is a single customer. An empty Gender means "not set".
type Record struct {
	ID        int64  `json:"id" yaml:"id"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Prefix    string `json:"prefix" yaml:"prefix"`
	Gender    string `json:"gender" yaml:"gender"`
}

// HasGender reports whether a gender value is already assigned
func (r *Record) HasGender() bool {
	return r.Gender != ""
}

// Option is one selectable value of a source-backed attribute
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Attribute describes an entity attribute and, when it is source-backed,
// its option list
type Attribute struct {
	EntityType string
	Code       string
	UsesSource bool
	options    []Option
}

// NewAttribute builds an attribute. Options are only kept for source-backed attributes.
func NewAttribute(entityType, code string, usesSource bool, options []Option) *Attribute {
	a := &Attribute{EntityType: entityType, Code: code, UsesSource: usesSource}
	if usesSource {
		a.options = append([]Option(nil), options...)
	}
	return a
}

// Options returns the attribute options. The empty placeholder option
// (blank value) is only included when includeEmpty is set.
func (a *Attribute) Options(includeEmpty bool) []Option {
	out := make([]Option, 0, len(a.options)+1)
	if includeEmpty {
		out = append(out, Option{Label: "", Value: ""})
	}
	for _, o := range a.options {
		if o.Value == "" {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Store gives access to customer records
type Store interface {
	// All returns every customer, unpaginated
	All(ctx context.Context) ([]Record, error)
	// Load returns the customer with the given id
	Load(ctx context.Context, id int64) (*Record, error)
	// Save persists the record
	Save(ctx context.Context, r *Record) error
}

// AttributeSource resolves attribute metadata
type AttributeSource interface {
	Attribute(ctx context.Context, entityType, code string) (*Attribute, error)
}

// Sex is the target of a conversion
type Sex string

const (
	// Male selects the option labelled "male"
	Male Sex = "male"
	// Female selects the option labelled "female"
	Female Sex = "female"
)

// ParseSex matches a gender argument case-insensitively
func ParseSex(s string) (Sex, bool) {
	switch strings.ToLower(s) {
	case string(Male):
		return Male, true
	case string(Female):
		return Female, true
	}
	return "", false
}
