// Package collection derives the displayed page of a collection from the
// full record list and the current filter criteria. All functions are pure:
// they never mutate their inputs.
package collection

import (
	"cmp"
	"slices"
	"strings"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

// PageSize is the number of records per page.
const PageSize = 25

// Criteria are the user-entered filters and the requested page.
// Empty strings match everything. Page is 1-based; out of range values are clamped.
type Criteria struct {
	Query   string
	Region  string
	Variety string
	Page    int
}

// Page is one page of the filtered, sorted collection.
type Page[T domain.Record] struct {
	Items     []T
	Page      int
	PageCount int
	Total     int
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool { return p.Page < p.PageCount }

// HasPrev reports whether an earlier page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// Apply filters, sorts and paginates records.
func Apply[T domain.Record](records []T, c Criteria) Page[T] {
	return Paginate(Sort(Filter(records, c)), c.Page)
}

// Filter keeps the records matching every criterion: the query is a
// case-insensitive substring of name or producer, region and variety are
// exact matches.
func Filter[T domain.Record](records []T, c Criteria) []T {
	q := strings.ToLower(c.Query)
	out := make([]T, 0, len(records))
	for _, r := range records {
		f := r.Facets()
		if q != "" &&
			!strings.Contains(strings.ToLower(f.Name), q) &&
			!strings.Contains(strings.ToLower(f.Producer), q) {
			continue
		}
		if c.Region != "" && f.Region != c.Region {
			continue
		}
		if c.Variety != "" && f.Variety != c.Variety {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sort returns a copy of records ordered by year, newest first. Records of
// equal year keep their relative order.
func Sort[T domain.Record](records []T) []T {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(b.Facets().Year, a.Facets().Year)
	})
	return out
}

// Paginate returns the requested page of records, clamping page into
// [1, PageCount]. An empty input yields page 1 of 0 with no items.
func Paginate[T domain.Record](records []T, page int) Page[T] {
	total := len(records)
	count := PageCount(total)
	page = clamp(page, count)

	start := (page - 1) * PageSize
	end := min(start+PageSize, total)

	items := make([]T, 0, end-start)
	items = append(items, records[start:end]...)

	return Page[T]{Items: items, Page: page, PageCount: count, Total: total}
}

// PageCount is ceil(total / PageSize).
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// Next returns the page after current, never past the last one.
func Next(current, pageCount int) int { return clamp(current+1, pageCount) }

// Prev returns the page before current, never before the first one.
func Prev(current, pageCount int) int { return clamp(current-1, pageCount) }

// Goto clamps an arbitrary requested page.
func Goto(page, pageCount int) int { return clamp(page, pageCount) }

func clamp(page, pageCount int) int {
	if page > pageCount {
		page = pageCount
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Regions returns the distinct non-empty regions of records, sorted.
func Regions[T domain.Record](records []T) []string {
	return distinct(records, func(f domain.Facets) string { return f.Region })
}

// Varieties returns the distinct non-empty varieties of records, sorted.
func Varieties[T domain.Record](records []T) []string {
	return distinct(records, func(f domain.Facets) string { return f.Variety })
}

func distinct[T domain.Record](records []T, key func(domain.Facets) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		k := key(r.Facets())
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
