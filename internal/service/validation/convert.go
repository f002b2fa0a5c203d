package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

// Build validates the draft and converts it into the typed record of its
// kind. Optional fields left empty become nil. Invalid drafts yield a
// *domain.ValidationError.
func (e *Engine) Build(d domain.Draft) (domain.Record, error) {
	if ve := domain.ValidationErrorFromMap(e.ValidateRecord(d)); ve != nil {
		return nil, ve
	}

	v := draftValues{d.Values}
	switch d.Kind {
	case domain.KindWine:
		return &domain.Wine{
			Name:             v.str("name"),
			Producer:         v.str("producer"),
			Vintage:          v.integer("vintage"),
			Country:          v.str("country"),
			Region:           v.str("region"),
			WineType:         v.str("wineType"),
			Variety:          v.str("variety"),
			Quantity:         v.integer("quantity"),
			BottleSize:       v.integer("bottleSize"),
			SubRegion:        v.optStr("subRegion"),
			BlendComposition: v.optStr("blendComposition"),
			PurchaseDate:     v.optDate("purchaseDate"),
			PurchasePrice:    v.optFloat("purchasePrice"),
			EstimatedValue:   v.optFloat("estimatedValue"),
			StorageLocation:  v.optStr("storageLocation"),
			TastingNotes:     v.optStr("tastingNotes"),
			CriticsScores:    v.optStr("criticsScores"),
		}, nil

	case domain.KindSpirit:
		return &domain.Spirit{
			Name:            v.str("name"),
			Producer:        v.str("producer"),
			Type:            v.str("type"),
			Country:         v.str("country"),
			Quantity:        v.integer("quantity"),
			Region:          v.optStr("region"),
			ABV:             v.optFloat("abv"),
			Age:             v.optInt("age"),
			VintageYear:     v.optInt("vintageYear"),
			BottlingYear:    v.optInt("bottlingYear"),
			PurchaseDate:    v.optDate("purchaseDate"),
			PurchasePrice:   v.optFloat("purchasePrice"),
			EstimatedValue:  v.optFloat("estimatedValue"),
			StorageLocation: v.optStr("storageLocation"),
			TastingNotes:    v.optStr("tastingNotes"),
			Rating:          v.optFloat("rating"),
			LimitedEdition:  v.optBool("limitedEdition"),
		}, nil
	}

	return nil, domain.NewValidationError("kind", fmt.Sprintf("unknown record kind %q", d.Kind))
}

// CheckRecord validates an already-typed record with the same rules a draft
// goes through.
func (e *Engine) CheckRecord(rec domain.Record) error {
	d, err := DraftOf(rec)
	if err != nil {
		return err
	}
	if ve := domain.ValidationErrorFromMap(e.ValidateRecord(d)); ve != nil {
		return ve
	}
	return nil
}

// DraftOf renders a typed record back into raw form values.
func DraftOf(rec domain.Record) (domain.Draft, error) {
	switch r := rec.(type) {
	case *domain.Wine:
		return domain.Draft{Kind: domain.KindWine, Values: map[string]string{
			"name":             r.Name,
			"producer":         r.Producer,
			"vintage":          strconv.Itoa(r.Vintage),
			"country":          r.Country,
			"region":           r.Region,
			"subRegion":        fmtStr(r.SubRegion),
			"wineType":         r.WineType,
			"variety":          r.Variety,
			"blendComposition": fmtStr(r.BlendComposition),
			"quantity":         strconv.Itoa(r.Quantity),
			"bottleSize":       strconv.Itoa(r.BottleSize),
			"purchaseDate":     fmtDate(r.PurchaseDate),
			"purchasePrice":    fmtFloat(r.PurchasePrice),
			"estimatedValue":   fmtFloat(r.EstimatedValue),
			"storageLocation":  fmtStr(r.StorageLocation),
			"tastingNotes":     fmtStr(r.TastingNotes),
			"criticsScores":    fmtStr(r.CriticsScores),
		}}, nil

	case *domain.Spirit:
		return domain.Draft{Kind: domain.KindSpirit, Values: map[string]string{
			"name":            r.Name,
			"producer":        r.Producer,
			"type":            r.Type,
			"country":         r.Country,
			"region":          fmtStr(r.Region),
			"abv":             fmtFloat(r.ABV),
			"age":             fmtInt(r.Age),
			"vintageYear":     fmtInt(r.VintageYear),
			"bottlingYear":    fmtInt(r.BottlingYear),
			"quantity":        strconv.Itoa(r.Quantity),
			"purchaseDate":    fmtDate(r.PurchaseDate),
			"purchasePrice":   fmtFloat(r.PurchasePrice),
			"estimatedValue":  fmtFloat(r.EstimatedValue),
			"storageLocation": fmtStr(r.StorageLocation),
			"tastingNotes":    fmtStr(r.TastingNotes),
			"rating":          fmtFloat(r.Rating),
			"limitedEdition":  fmtBool(r.LimitedEdition),
		}}, nil
	}

	return domain.Draft{}, domain.NewValidationError("kind", fmt.Sprintf("unsupported record type %T", rec))
}

// ---------------------------------------------------------------------------
// draft -> typed helpers. Values are already validated, parse errors are
// impossible here and ignored.
// ---------------------------------------------------------------------------

type draftValues struct {
	m map[string]string
}

func (v draftValues) str(name string) string {
	return strings.TrimSpace(v.m[name])
}

func (v draftValues) integer(name string) int {
	n, _ := strconv.Atoi(v.str(name))
	return n
}

func (v draftValues) optStr(name string) *string {
	s := v.str(name)
	if s == "" {
		return nil
	}
	return &s
}

func (v draftValues) optInt(name string) *int {
	s := v.str(name)
	if s == "" {
		return nil
	}
	n, _ := strconv.Atoi(s)
	return &n
}

func (v draftValues) optFloat(name string) *float64 {
	s := v.str(name)
	if s == "" {
		return nil
	}
	f, _ := strconv.ParseFloat(s, 64)
	return &f
}

func (v draftValues) optDate(name string) *time.Time {
	s := v.str(name)
	if s == "" {
		return nil
	}
	t, _ := time.Parse(domain.DateLayout, s)
	return &t
}

func (v draftValues) optBool(name string) *bool {
	s := v.str(name)
	if s == "" {
		return nil
	}
	b, _ := strconv.ParseBool(s)
	return &b
}

func fmtStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fmtInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func fmtFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.DateLayout)
}

func fmtBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
