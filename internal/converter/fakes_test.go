package converter

import (
	"context"
	"fmt"

	"github.com/NikitaCOEUR/prefixgender/internal/customer"
)

// memStore keeps customers in insertion order
type memStore struct {
	records []customer.Record
	saves   []int64
	loads   int
	allErr  error
	failOn  map[int64]error
}

func newMemStore(records ...customer.Record) *memStore {
	return &memStore{records: records, failOn: map[int64]error{}}
}

func (m *memStore) All(_ context.Context) ([]customer.Record, error) {
	if m.allErr != nil {
		return nil, m.allErr
	}
	return append([]customer.Record(nil), m.records...), nil
}

func (m *memStore) Load(_ context.Context, id int64) (*customer.Record, error) {
	m.loads++
	for _, r := range m.records {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("customer %d not found", id)
}

func (m *memStore) Save(_ context.Context, r *customer.Record) error {
	if err := m.failOn[r.ID]; err != nil {
		return err
	}
	for i := range m.records {
		if m.records[i].ID == r.ID {
			m.records[i] = *r
			m.saves = append(m.saves, r.ID)
			return nil
		}
	}
	return fmt.Errorf("customer %d not found", r.ID)
}

func (m *memStore) get(id int64) customer.Record {
	for _, r := range m.records {
		if r.ID == id {
			return r
		}
	}
	return customer.Record{}
}

// memAttributes serves a single attribute
type memAttributes struct {
	attr  *customer.Attribute
	err   error
	calls int
}

func (m *memAttributes) Attribute(_ context.Context, entityType, code string) (*customer.Attribute, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.attr == nil || m.attr.EntityType != entityType || m.attr.Code != code {
		return nil, fmt.Errorf("attribute %s/%s not found", entityType, code)
	}
	return m.attr, nil
}

func genderAttribute(options ...customer.Option) *memAttributes {
	return &memAttributes{attr: customer.NewAttribute(customer.EntityType, customer.GenderAttribute, true, options)}
}

func defaultGenders() *memAttributes {
	return genderAttribute(
		customer.Option{Label: "Male", Value: "1"},
		customer.Option{Label: "Female", Value: "2"},
	)
}

// scenarioCustomers is the three-customer set used across tests
func scenarioCustomers() []customer.Record {
	return []customer.Record{
		{ID: 1, FirstName: "Adam", LastName: "Ek", Prefix: "MR", Gender: ""},
		{ID: 2, FirstName: "Berit", LastName: "Al", Prefix: "MRS", Gender: "2"},
		{ID: 3, FirstName: "Carl", LastName: "Ny", Prefix: "MR", Gender: ""},
	}
}
