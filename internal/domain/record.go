package domain

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies a record variant.
type Kind string

const (
	KindWine   Kind = "WINE"
	KindSpirit Kind = "SPIRIT"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindWine, KindSpirit:
		return true
	}
	return false
}

// Label is the human-readable singular name of the kind ("Wine", "Spirit").
func (k Kind) Label() string {
	switch k {
	case KindWine:
		return "Wine"
	case KindSpirit:
		return "Spirit"
	}
	return string(k)
}

// Record is a persisted or about-to-be-persisted collection item.
// Implemented by *Wine and *Spirit.
type Record interface {
	Kind() Kind
	RecordID() uuid.UUID
	Facets() Facets
}

// Facets are the fields every record exposes to searching, filtering and sorting.
// Year is 0 when the record has none.
type Facets struct {
	Name     string
	Producer string
	Region   string
	Variety  string
	Year     int
}

// Meta holds store-assigned identity and audit fields. ID is uuid.Nil until
// the record is persisted.
type Meta struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Wine is a wine bottling in the collection.
type Wine struct {
	Meta

	Name       string
	Producer   string
	Vintage    int
	Country    string
	Region     string
	WineType   string
	Variety    string
	Quantity   int
	BottleSize int

	SubRegion        *string
	BlendComposition *string
	PurchaseDate     *time.Time
	PurchasePrice    *float64
	EstimatedValue   *float64
	StorageLocation  *string
	TastingNotes     *string
	CriticsScores    *string
}

func (w *Wine) Kind() Kind          { return KindWine }
func (w *Wine) RecordID() uuid.UUID { return w.ID }

func (w *Wine) Facets() Facets {
	return Facets{
		Name:     w.Name,
		Producer: w.Producer,
		Region:   w.Region,
		Variety:  w.Variety,
		Year:     w.Vintage,
	}
}

// Spirit is a spirit bottling in the collection.
type Spirit struct {
	Meta

	Name     string
	Producer string
	Type     string
	Country  string
	Quantity int

	Region          *string
	ABV             *float64
	Age             *int
	VintageYear     *int
	BottlingYear    *int
	PurchaseDate    *time.Time
	PurchasePrice   *float64
	EstimatedValue  *float64
	StorageLocation *string
	TastingNotes    *string
	Rating          *float64
	LimitedEdition  *bool
}

func (s *Spirit) Kind() Kind          { return KindSpirit }
func (s *Spirit) RecordID() uuid.UUID { return s.ID }

// Facets maps the spirit type onto the variety facet and the vintage year
// (if any) onto the year facet.
func (s *Spirit) Facets() Facets {
	f := Facets{
		Name:     s.Name,
		Producer: s.Producer,
		Variety:  s.Type,
	}
	if s.Region != nil {
		f.Region = *s.Region
	}
	if s.VintageYear != nil {
		f.Year = *s.VintageYear
	}
	return f
}

// DateLayout is the wire and form format of date-only fields.
const DateLayout = "2006-01-02"
