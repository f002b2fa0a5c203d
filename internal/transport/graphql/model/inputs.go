package model

import (
	"strconv"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

// WineInput is the coerced WineInput argument.
type WineInput struct {
	Name             string
	Producer         string
	Vintage          int32
	Country          string
	Region           string
	SubRegion        *string
	WineType         string
	Variety          string
	BlendComposition *string
	Quantity         int32
	BottleSize       int32
	PurchaseDate     *Date
	PurchasePrice    *float64
	EstimatedValue   *float64
	StorageLocation  *string
	TastingNotes     *string
	CriticsScores    *string
}

// Draft renders the input the way a form would hold it. Null fields become
// empty values.
func (in WineInput) Draft() domain.Draft {
	return domain.Draft{Kind: domain.KindWine, Values: map[string]string{
		"name":             in.Name,
		"producer":         in.Producer,
		"vintage":          intText(in.Vintage),
		"country":          in.Country,
		"region":           in.Region,
		"subRegion":        optText(in.SubRegion),
		"wineType":         in.WineType,
		"variety":          in.Variety,
		"blendComposition": optText(in.BlendComposition),
		"quantity":         intText(in.Quantity),
		"bottleSize":       intText(in.BottleSize),
		"purchaseDate":     dateText(in.PurchaseDate),
		"purchasePrice":    floatText(in.PurchasePrice),
		"estimatedValue":   floatText(in.EstimatedValue),
		"storageLocation":  optText(in.StorageLocation),
		"tastingNotes":     optText(in.TastingNotes),
		"criticsScores":    optText(in.CriticsScores),
	}}
}

// SpiritInput is the coerced SpiritInput argument.
type SpiritInput struct {
	Name            string
	Producer        string
	Type            string
	Country         string
	Region          *string
	ABV             *float64
	Age             *int32
	VintageYear     *int32
	BottlingYear    *int32
	Quantity        int32
	PurchaseDate    *Date
	PurchasePrice   *float64
	EstimatedValue  *float64
	StorageLocation *string
	TastingNotes    *string
	Rating          *float64
	LimitedEdition  *bool
}

// Draft renders the input the way a form would hold it. Null fields become
// empty values.
func (in SpiritInput) Draft() domain.Draft {
	return domain.Draft{Kind: domain.KindSpirit, Values: map[string]string{
		"name":            in.Name,
		"producer":        in.Producer,
		"type":            in.Type,
		"country":         in.Country,
		"region":          optText(in.Region),
		"abv":             floatText(in.ABV),
		"age":             optIntText(in.Age),
		"vintageYear":     optIntText(in.VintageYear),
		"bottlingYear":    optIntText(in.BottlingYear),
		"quantity":        intText(in.Quantity),
		"purchaseDate":    dateText(in.PurchaseDate),
		"purchasePrice":   floatText(in.PurchasePrice),
		"estimatedValue":  floatText(in.EstimatedValue),
		"storageLocation": optText(in.StorageLocation),
		"tastingNotes":    optText(in.TastingNotes),
		"rating":          floatText(in.Rating),
		"limitedEdition":  boolText(in.LimitedEdition),
	}}
}

func intText(n int32) string {
	return strconv.FormatInt(int64(n), 10)
}

func optIntText(p *int32) string {
	if p == nil {
		return ""
	}
	return intText(*p)
}

func optText(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func floatText(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func boolText(p *bool) string {
	if p == nil {
		return ""
	}
	return strconv.FormatBool(*p)
}

func dateText(d *Date) string {
	if d == nil {
		return ""
	}
	return d.Text
}
