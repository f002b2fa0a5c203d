package validation

import (
	"github.com/heartmarshall/cellar-backend/internal/domain"
)

// Range and choice limits shared by the rule sets.
const (
	MinYear     = 1900
	MinQuantity = 1
	MaxQuantity = 999
	MaxMoney    = 1_000_000
	MaxPercent  = 100
	MaxAge      = 100
)

type ruleKind int

const (
	ruleIntRange ruleKind = iota + 1
	ruleFloatRange
	ruleYear
	ruleChoice
	ruleDate
	ruleBool
)

// Rule is a constraint on a single non-empty field value. Required-ness is
// declared by the entity schema, not here.
type Rule struct {
	kind    ruleKind
	min     float64
	max     float64
	choices []int
}

func intRange(lo, hi int) Rule { return Rule{kind: ruleIntRange, min: float64(lo), max: float64(hi)} }

func floatRange(lo, hi float64) Rule { return Rule{kind: ruleFloatRange, min: lo, max: hi} }

// yearRule bounds an integer year to [MinYear, current year].
func yearRule() Rule { return Rule{kind: ruleYear, min: MinYear} }

func choice(values ...int) Rule { return Rule{kind: ruleChoice, choices: values} }

var (
	dateRule = Rule{kind: ruleDate}
	boolRule = Rule{kind: ruleBool}
)

var wineRules = map[string]Rule{
	"vintage":        yearRule(),
	"quantity":       intRange(MinQuantity, MaxQuantity),
	"bottleSize":     choice(bottleSizeChoices()...),
	"purchaseDate":   dateRule,
	"purchasePrice":  floatRange(0, MaxMoney),
	"estimatedValue": floatRange(0, MaxMoney),
}

var spiritRules = map[string]Rule{
	"abv":            floatRange(0, MaxPercent),
	"age":            intRange(0, MaxAge),
	"vintageYear":    yearRule(),
	"bottlingYear":   yearRule(),
	"quantity":       intRange(MinQuantity, MaxQuantity),
	"purchaseDate":   dateRule,
	"purchasePrice":  floatRange(0, MaxMoney),
	"estimatedValue": floatRange(0, MaxMoney),
	"rating":         floatRange(0, MaxPercent),
	"limitedEdition": boolRule,
}

func rulesFor(kind domain.Kind) map[string]Rule {
	switch kind {
	case domain.KindWine:
		return wineRules
	case domain.KindSpirit:
		return spiritRules
	}
	return nil
}

func bottleSizeChoices() []int {
	sizes := domain.BottleSizes()
	out := make([]int, len(sizes))
	for i, s := range sizes {
		out[i] = s.Milliliters
	}
	return out
}
