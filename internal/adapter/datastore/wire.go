package datastore

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Response shapes
// ---------------------------------------------------------------------------

type wineJSON struct {
	ID               uuid.UUID `json:"id"`
	Owner            uuid.UUID `json:"owner"`
	Name             string    `json:"name"`
	Producer         string    `json:"producer"`
	Vintage          int       `json:"vintage"`
	Country          string    `json:"country"`
	Region           string    `json:"region"`
	SubRegion        *string   `json:"subRegion"`
	WineType         string    `json:"wineType"`
	Variety          string    `json:"variety"`
	BlendComposition *string   `json:"blendComposition"`
	Quantity         int       `json:"quantity"`
	BottleSize       int       `json:"bottleSize"`
	PurchaseDate     *string   `json:"purchaseDate"`
	PurchasePrice    *float64  `json:"purchasePrice"`
	EstimatedValue   *float64  `json:"estimatedValue"`
	StorageLocation  *string   `json:"storageLocation"`
	TastingNotes     *string   `json:"tastingNotes"`
	CriticsScores    *string   `json:"criticsScores"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (w wineJSON) toDomain() (*domain.Wine, error) {
	pd, err := parseDate(w.PurchaseDate)
	if err != nil {
		return nil, err
	}
	return &domain.Wine{
		Meta:             domain.Meta{ID: w.ID, OwnerID: w.Owner, CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt},
		Name:             w.Name,
		Producer:         w.Producer,
		Vintage:          w.Vintage,
		Country:          w.Country,
		Region:           w.Region,
		WineType:         w.WineType,
		Variety:          w.Variety,
		Quantity:         w.Quantity,
		BottleSize:       w.BottleSize,
		SubRegion:        w.SubRegion,
		BlendComposition: w.BlendComposition,
		PurchaseDate:     pd,
		PurchasePrice:    w.PurchasePrice,
		EstimatedValue:   w.EstimatedValue,
		StorageLocation:  w.StorageLocation,
		TastingNotes:     w.TastingNotes,
		CriticsScores:    w.CriticsScores,
	}, nil
}

type spiritJSON struct {
	ID              uuid.UUID `json:"id"`
	Owner           uuid.UUID `json:"owner"`
	Name            string    `json:"name"`
	Producer        string    `json:"producer"`
	Type            string    `json:"type"`
	Country         string    `json:"country"`
	Region          *string   `json:"region"`
	ABV             *float64  `json:"abv"`
	Age             *int      `json:"age"`
	VintageYear     *int      `json:"vintageYear"`
	BottlingYear    *int      `json:"bottlingYear"`
	Quantity        int       `json:"quantity"`
	PurchaseDate    *string   `json:"purchaseDate"`
	PurchasePrice   *float64  `json:"purchasePrice"`
	EstimatedValue  *float64  `json:"estimatedValue"`
	StorageLocation *string   `json:"storageLocation"`
	TastingNotes    *string   `json:"tastingNotes"`
	Rating          *float64  `json:"rating"`
	LimitedEdition  *bool     `json:"limitedEdition"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (s spiritJSON) toDomain() (*domain.Spirit, error) {
	pd, err := parseDate(s.PurchaseDate)
	if err != nil {
		return nil, err
	}
	return &domain.Spirit{
		Meta:            domain.Meta{ID: s.ID, OwnerID: s.Owner, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt},
		Name:            s.Name,
		Producer:        s.Producer,
		Type:            s.Type,
		Country:         s.Country,
		Quantity:        s.Quantity,
		Region:          s.Region,
		ABV:             s.ABV,
		Age:             s.Age,
		VintageYear:     s.VintageYear,
		BottlingYear:    s.BottlingYear,
		PurchaseDate:    pd,
		PurchasePrice:   s.PurchasePrice,
		EstimatedValue:  s.EstimatedValue,
		StorageLocation: s.StorageLocation,
		TastingNotes:    s.TastingNotes,
		Rating:          s.Rating,
		LimitedEdition:  s.LimitedEdition,
	}, nil
}

type connectionJSON[T any] struct {
	Items []T `json:"items"`
}

// ---------------------------------------------------------------------------
// Input variables. Every optional field is present; absent ones are null.
// ---------------------------------------------------------------------------

func wineInput(w *domain.Wine) map[string]any {
	return map[string]any{
		"name":             w.Name,
		"producer":         w.Producer,
		"vintage":          w.Vintage,
		"country":          w.Country,
		"region":           w.Region,
		"subRegion":        optional(w.SubRegion),
		"wineType":         w.WineType,
		"variety":          w.Variety,
		"blendComposition": optional(w.BlendComposition),
		"quantity":         w.Quantity,
		"bottleSize":       w.BottleSize,
		"purchaseDate":     formatDate(w.PurchaseDate),
		"purchasePrice":    optional(w.PurchasePrice),
		"estimatedValue":   optional(w.EstimatedValue),
		"storageLocation":  optional(w.StorageLocation),
		"tastingNotes":     optional(w.TastingNotes),
		"criticsScores":    optional(w.CriticsScores),
	}
}

func spiritInput(s *domain.Spirit) map[string]any {
	return map[string]any{
		"name":            s.Name,
		"producer":        s.Producer,
		"type":            s.Type,
		"country":         s.Country,
		"region":          optional(s.Region),
		"abv":             optional(s.ABV),
		"age":             optional(s.Age),
		"vintageYear":     optional(s.VintageYear),
		"bottlingYear":    optional(s.BottlingYear),
		"quantity":        s.Quantity,
		"purchaseDate":    formatDate(s.PurchaseDate),
		"purchasePrice":   optional(s.PurchasePrice),
		"estimatedValue":  optional(s.EstimatedValue),
		"storageLocation": optional(s.StorageLocation),
		"tastingNotes":    optional(s.TastingNotes),
		"rating":          optional(s.Rating),
		"limitedEdition":  optional(s.LimitedEdition),
	}
}

// optional dereferences p, or returns an untyped nil that encodes as JSON null.
func optional[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func formatDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(domain.DateLayout)
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("purchaseDate %q: %w", *s, err)
	}
	return &t, nil
}
