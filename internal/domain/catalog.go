package domain

import (
	"slices"
	"sort"
)

// BottleSize is a selectable bottle format.
type BottleSize struct {
	Milliliters int
	Label       string
}

// VarietyGroup lists grape varieties of one wine type.
type VarietyGroup struct {
	WineType  string
	Varieties []string
}

// Catalog tables are fixed at build time; accessors hand out copies so no
// caller can change them.
var (
	wineRegions = map[string][]string{
		"France": {"Bordeaux", "Burgundy", "Champagne", "Loire", "Rhone"},
		"Italy":  {"Tuscany", "Piedmont", "Veneto", "Barolo"},
		"USA":    {"Napa Valley", "Sonoma", "Oregon", "Washington"},
		"Spain":  {"Rioja", "Ribera del Duero", "Priorat"},
	}

	grapeVarieties = []VarietyGroup{
		{WineType: "Red", Varieties: []string{"Cabernet Sauvignon", "Merlot", "Pinot Noir", "Syrah", "Sangiovese"}},
		{WineType: "White", Varieties: []string{"Chardonnay", "Sauvignon Blanc", "Riesling", "Pinot Grigio"}},
		{WineType: "Sparkling", Varieties: []string{"Chardonnay", "Pinot Noir", "Pinot Meunier"}},
	}

	bottleSizes = []BottleSize{
		{Milliliters: 375, Label: "375ml (Half)"},
		{Milliliters: 750, Label: "750ml (Standard)"},
		{Milliliters: 1500, Label: "Magnum (1.5L)"},
		{Milliliters: 3000, Label: "Double Magnum (3L)"},
		{Milliliters: 6000, Label: "Imperial (6L)"},
	}

	spiritTypes = []string{"Whisky", "Bourbon", "Rum", "Gin", "Vodka", "Tequila", "Mezcal", "Cognac", "Armagnac", "Brandy", "Liqueur"}
)

// Countries returns the wine countries in alphabetical order.
func Countries() []string {
	out := make([]string, 0, len(wineRegions))
	for c := range wineRegions {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SubRegions returns the sub-regions of a country, nil if unknown.
func SubRegions(country string) []string {
	return slices.Clone(wineRegions[country])
}

// GrapeVarieties returns the variety groups by wine type.
func GrapeVarieties() []VarietyGroup {
	out := make([]VarietyGroup, len(grapeVarieties))
	for i, g := range grapeVarieties {
		out[i] = VarietyGroup{WineType: g.WineType, Varieties: slices.Clone(g.Varieties)}
	}
	return out
}

// WineTypes returns the wine type names in catalog order.
func WineTypes() []string {
	out := make([]string, len(grapeVarieties))
	for i, g := range grapeVarieties {
		out[i] = g.WineType
	}
	return out
}

// BottleSizes returns the selectable bottle formats, smallest first.
func BottleSizes() []BottleSize {
	return slices.Clone(bottleSizes)
}

// SpiritTypes returns the selectable spirit types.
func SpiritTypes() []string {
	return slices.Clone(spiritTypes)
}
