// Package model holds the GraphQL object resolvers, input types and custom
// scalars for cellar records.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

// UUID is the UUID scalar.
type UUID struct {
	uuid.UUID
}

func (UUID) ImplementsGraphQLType(name string) bool { return name == "UUID" }

func (u *UUID) UnmarshalGraphQL(input interface{}) error {
	s, ok := input.(string)
	if !ok {
		return fmt.Errorf("UUID must be a string, got %T", input)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("UUID %q is not valid: %w", s, err)
	}
	u.UUID = id
	return nil
}

func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.UUID.String())
}

// DateTime is an RFC 3339 timestamp, always written in UTC.
type DateTime struct {
	time.Time
}

func (DateTime) ImplementsGraphQLType(name string) bool { return name == "DateTime" }

func (t *DateTime) UnmarshalGraphQL(input interface{}) error {
	s, ok := input.(string)
	if !ok {
		return fmt.Errorf("DateTime must be a string, got %T", input)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("DateTime %q is not RFC 3339: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

// Date is a calendar date in YYYY-MM-DD form. Input keeps the raw text so
// that a malformed date is reported by record validation against its field.
type Date struct {
	Text string
}

// NewDate formats t, or returns nil when t is nil.
func NewDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Text: t.Format(domain.DateLayout)}
}

func (Date) ImplementsGraphQLType(name string) bool { return name == "Date" }

func (d *Date) UnmarshalGraphQL(input interface{}) error {
	s, ok := input.(string)
	if !ok {
		return fmt.Errorf("Date must be a string in YYYY-MM-DD format, got %T", input)
	}
	d.Text = s
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Text)
}
