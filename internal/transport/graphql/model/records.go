package model

import (
	"github.com/heartmarshall/cellar-backend/internal/domain"
)

// Wine resolves the fields of a Wine object.
type Wine struct {
	w *domain.Wine
}

// NewWine wraps w, or returns nil when w is nil.
func NewWine(w *domain.Wine) *Wine {
	if w == nil {
		return nil
	}
	return &Wine{w: w}
}

func (r *Wine) ID() UUID                  { return UUID{r.w.ID} }
func (r *Wine) Owner() UUID               { return UUID{r.w.OwnerID} }
func (r *Wine) Name() string              { return r.w.Name }
func (r *Wine) Producer() string          { return r.w.Producer }
func (r *Wine) Vintage() int32            { return int32(r.w.Vintage) }
func (r *Wine) Country() string           { return r.w.Country }
func (r *Wine) Region() string            { return r.w.Region }
func (r *Wine) SubRegion() *string        { return r.w.SubRegion }
func (r *Wine) WineType() string          { return r.w.WineType }
func (r *Wine) Variety() string           { return r.w.Variety }
func (r *Wine) BlendComposition() *string { return r.w.BlendComposition }
func (r *Wine) Quantity() int32           { return int32(r.w.Quantity) }
func (r *Wine) BottleSize() int32         { return int32(r.w.BottleSize) }
func (r *Wine) PurchaseDate() *Date       { return NewDate(r.w.PurchaseDate) }
func (r *Wine) PurchasePrice() *float64   { return r.w.PurchasePrice }
func (r *Wine) EstimatedValue() *float64  { return r.w.EstimatedValue }
func (r *Wine) StorageLocation() *string  { return r.w.StorageLocation }
func (r *Wine) TastingNotes() *string     { return r.w.TastingNotes }
func (r *Wine) CriticsScores() *string    { return r.w.CriticsScores }
func (r *Wine) CreatedAt() DateTime       { return DateTime{r.w.CreatedAt} }
func (r *Wine) UpdatedAt() DateTime       { return DateTime{r.w.UpdatedAt} }

// Spirit resolves the fields of a Spirit object.
type Spirit struct {
	s *domain.Spirit
}

// NewSpirit wraps s, or returns nil when s is nil.
func NewSpirit(s *domain.Spirit) *Spirit {
	if s == nil {
		return nil
	}
	return &Spirit{s: s}
}

func (r *Spirit) ID() UUID                 { return UUID{r.s.ID} }
func (r *Spirit) Owner() UUID              { return UUID{r.s.OwnerID} }
func (r *Spirit) Name() string             { return r.s.Name }
func (r *Spirit) Producer() string         { return r.s.Producer }
func (r *Spirit) Type() string             { return r.s.Type }
func (r *Spirit) Country() string          { return r.s.Country }
func (r *Spirit) Region() *string          { return r.s.Region }
func (r *Spirit) ABV() *float64            { return r.s.ABV }
func (r *Spirit) Age() *int32              { return int32Ptr(r.s.Age) }
func (r *Spirit) VintageYear() *int32      { return int32Ptr(r.s.VintageYear) }
func (r *Spirit) BottlingYear() *int32     { return int32Ptr(r.s.BottlingYear) }
func (r *Spirit) Quantity() int32          { return int32(r.s.Quantity) }
func (r *Spirit) PurchaseDate() *Date      { return NewDate(r.s.PurchaseDate) }
func (r *Spirit) PurchasePrice() *float64  { return r.s.PurchasePrice }
func (r *Spirit) EstimatedValue() *float64 { return r.s.EstimatedValue }
func (r *Spirit) StorageLocation() *string { return r.s.StorageLocation }
func (r *Spirit) TastingNotes() *string    { return r.s.TastingNotes }
func (r *Spirit) Rating() *float64         { return r.s.Rating }
func (r *Spirit) LimitedEdition() *bool    { return r.s.LimitedEdition }
func (r *Spirit) CreatedAt() DateTime      { return DateTime{r.s.CreatedAt} }
func (r *Spirit) UpdatedAt() DateTime      { return DateTime{r.s.UpdatedAt} }

// Connection resolves WineConnection and SpiritConnection.
type Connection[T any] struct {
	items []T
}

// NewConnection wraps every record with wrap.
func NewConnection[R, T any](records []R, wrap func(R) T) *Connection[T] {
	items := make([]T, len(records))
	for i, rec := range records {
		items[i] = wrap(rec)
	}
	return &Connection[T]{items: items}
}

func (c *Connection[T]) Items() []T { return c.items }

func int32Ptr(p *int) *int32 {
	if p == nil {
		return nil
	}
	v := int32(*p)
	return &v
}
