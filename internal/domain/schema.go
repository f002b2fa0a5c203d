package domain

import (
	"maps"
	"slices"
	"strconv"
	"time"
)

// FieldType is the declared value type of an entity field.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldInt    FieldType = "int"
	FieldFloat  FieldType = "float"
	FieldDate   FieldType = "date"
	FieldBool   FieldType = "boolean"
)

// FieldSpec declares one field of an entity.
type FieldSpec struct {
	Name     string
	Type     FieldType
	Required bool
}

// EntitySchema is the ordered field declaration of a record kind. It is the
// contract between form drafts, validation, and the persisted record shape.
type EntitySchema struct {
	Kind   Kind
	Fields []FieldSpec
}

// Field returns the declaration of the named field.
func (s EntitySchema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Required returns the names of required fields in declaration order.
func (s EntitySchema) Required() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

var wineSchema = EntitySchema{
	Kind: KindWine,
	Fields: []FieldSpec{
		{Name: "name", Type: FieldString, Required: true},
		{Name: "producer", Type: FieldString, Required: true},
		{Name: "vintage", Type: FieldInt, Required: true},
		{Name: "country", Type: FieldString, Required: true},
		{Name: "region", Type: FieldString, Required: true},
		{Name: "subRegion", Type: FieldString},
		{Name: "wineType", Type: FieldString, Required: true},
		{Name: "variety", Type: FieldString, Required: true},
		{Name: "blendComposition", Type: FieldString},
		{Name: "quantity", Type: FieldInt, Required: true},
		{Name: "bottleSize", Type: FieldInt, Required: true},
		{Name: "purchaseDate", Type: FieldDate},
		{Name: "purchasePrice", Type: FieldFloat},
		{Name: "estimatedValue", Type: FieldFloat},
		{Name: "storageLocation", Type: FieldString},
		{Name: "tastingNotes", Type: FieldString},
		{Name: "criticsScores", Type: FieldString},
	},
}

var spiritSchema = EntitySchema{
	Kind: KindSpirit,
	Fields: []FieldSpec{
		{Name: "name", Type: FieldString, Required: true},
		{Name: "producer", Type: FieldString, Required: true},
		{Name: "type", Type: FieldString, Required: true},
		{Name: "country", Type: FieldString, Required: true},
		{Name: "region", Type: FieldString},
		{Name: "abv", Type: FieldFloat},
		{Name: "age", Type: FieldInt},
		{Name: "vintageYear", Type: FieldInt},
		{Name: "bottlingYear", Type: FieldInt},
		{Name: "quantity", Type: FieldInt, Required: true},
		{Name: "purchaseDate", Type: FieldDate},
		{Name: "purchasePrice", Type: FieldFloat},
		{Name: "estimatedValue", Type: FieldFloat},
		{Name: "storageLocation", Type: FieldString},
		{Name: "tastingNotes", Type: FieldString},
		{Name: "rating", Type: FieldFloat},
		{Name: "limitedEdition", Type: FieldBool},
	},
}

// SchemaFor returns a copy of the schema for kind.
func SchemaFor(kind Kind) (EntitySchema, bool) {
	var s EntitySchema
	switch kind {
	case KindWine:
		s = wineSchema
	case KindSpirit:
		s = spiritSchema
	default:
		return EntitySchema{}, false
	}
	s.Fields = slices.Clone(s.Fields)
	return s, true
}

// Draft is an unsaved record as entered in a form: raw string values keyed
// by schema field name.
type Draft struct {
	Kind   Kind
	Values map[string]string
}

// NewDraft returns a draft holding the default values for kind.
func NewDraft(kind Kind, now time.Time) Draft {
	d := Draft{Kind: kind, Values: map[string]string{}}
	if s, ok := SchemaFor(kind); ok {
		for _, f := range s.Fields {
			d.Values[f.Name] = ""
		}
	}
	switch kind {
	case KindWine:
		d.Values["vintage"] = strconv.Itoa(now.Year())
		d.Values["quantity"] = "1"
		d.Values["bottleSize"] = "750"
	case KindSpirit:
		d.Values["quantity"] = "1"
	}
	return d
}

// Get returns the raw value of a field ("" when absent).
func (d Draft) Get(field string) string {
	return d.Values[field]
}

// Clone returns a deep copy of the draft.
func (d Draft) Clone() Draft {
	return Draft{Kind: d.Kind, Values: maps.Clone(d.Values)}
}
