// Package validation checks collection records against the entity schema and
// the static rule set. The same ValidateField runs on change, blur and submit.
package validation

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

// Engine validates drafts and typed records. It is safe for concurrent use.
type Engine struct {
	clock clockwork.Clock
}

// NewEngine creates an Engine. The clock supplies the current year for year
// rules; nil means the real clock.
func NewEngine(clock clockwork.Clock) *Engine {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Engine{clock: clock}
}

// ValidateRecord validates every schema field of the draft and returns
// field -> message for the failing ones. The map is empty when the draft is valid.
func (e *Engine) ValidateRecord(d domain.Draft) map[string]string {
	errs := map[string]string{}
	schema, ok := domain.SchemaFor(d.Kind)
	if !ok {
		errs["kind"] = fmt.Sprintf("unknown record kind %q", d.Kind)
		return errs
	}
	for _, f := range schema.Fields {
		if msg := e.ValidateField(d.Kind, f.Name, d.Get(f.Name)); msg != "" {
			errs[f.Name] = msg
		}
	}
	return errs
}

// ValidateField validates a single raw field value. It returns "" when the
// value is acceptable or when the field is unknown for kind.
func (e *Engine) ValidateField(kind domain.Kind, name, value string) string {
	schema, ok := domain.SchemaFor(kind)
	if !ok {
		return ""
	}
	spec, ok := schema.Field(name)
	if !ok {
		return ""
	}

	value = strings.TrimSpace(value)
	if value == "" {
		if spec.Required {
			return fieldLabel(name) + " is required"
		}
		return ""
	}

	rule, ok := rulesFor(kind)[name]
	if !ok {
		return ""
	}
	return e.check(name, rule, value)
}

func (e *Engine) check(name string, r Rule, value string) string {
	label := fieldLabel(name)

	switch r.kind {
	case ruleIntRange, ruleYear:
		hi := r.max
		if r.kind == ruleYear {
			hi = float64(e.CurrentYear())
		}
		n, err := strconv.Atoi(value)
		if err != nil || float64(n) < r.min || float64(n) > hi {
			return fmt.Sprintf("%s must be between %s and %s", label, formatNum(r.min), formatNum(hi))
		}

	case ruleFloatRange:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < r.min || f > r.max {
			return fmt.Sprintf("%s must be between %s and %s", label, formatNum(r.min), formatNum(r.max))
		}

	case ruleChoice:
		n, err := strconv.Atoi(value)
		if err != nil || !slices.Contains(r.choices, n) {
			return fmt.Sprintf("%s must be one of %s", label, joinInts(r.choices))
		}

	case ruleDate:
		if _, err := time.Parse(domain.DateLayout, value); err != nil {
			return label + " must be a date (YYYY-MM-DD)"
		}

	case ruleBool:
		if _, err := strconv.ParseBool(value); err != nil {
			return label + " must be true or false"
		}
	}
	return ""
}

// CurrentYear is the upper bound of year rules.
func (e *Engine) CurrentYear() int {
	return e.clock.Now().Year()
}

// fieldLabel upper-cases the first letter of a field key: "bottleSize" -> "BottleSize".
func fieldLabel(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}
