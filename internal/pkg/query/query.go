// Package query implements the shared search/filter/sort/paginate pipeline
// used by every list view in the back-office: shipments, couriers, clients,
// and invoices all flow through Apply before rendering.
//
// The pipeline operates over any homogeneous record type via a Fields map that
// names the searchable/sortable/filterable fields and extracts a typed Value
// from each record. The pipeline is pure: input slices are never reordered or
// mutated, and calling Apply twice with identical arguments yields identical
// results. Nothing is incrementally maintained; every parameter change means
// a fresh Apply.
//
// Stage order is fixed: search, then filter, then stable sort, then paginate.
package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"courierdesk/internal/pkg/errs"
)

// FilterBypass is the filter value that disables a filter, matching every
// record. An absent filter key behaves the same way.
const FilterBypass = "all"

// SortOrder is the direction of the sort stage.
type SortOrder int

const (
	// Asc sorts ascending. It is the zero value, so an unspecified order sorts ascending.
	Asc SortOrder = iota
	// Desc sorts descending.
	Desc
)

// SortOrderFromString parses "asc"/"desc"; the empty string defaults to Asc.
func SortOrderFromString(s string) (SortOrder, error) {
	switch s {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return Asc, errs.NewValueIsInvalidErrorWithCause(
			"sort order", fmt.Errorf("%q is not a valid sort order", s))
	}
}

// String returns the wire representation of the sort order.
func (o SortOrder) String() string {
	if o == Desc {
		return "desc"
	}
	return "asc"
}

// valueKind discriminates the two comparison domains of a Value.
type valueKind int

const (
	stringKind valueKind = iota
	numberKind
)

// Value is a field value extracted from a record for the pipeline.
// String values compare lexicographically (case-insensitively for search and
// filter), number values compare numerically.
type Value struct {
	kind valueKind
	str  string
	num  float64
}

// String wraps a string field value.
func String(s string) Value {
	return Value{kind: stringKind, str: s}
}

// Number wraps a numeric field value.
func Number(f float64) Value {
	return Value{kind: numberKind, num: f}
}

// contains reports whether the value's text form contains term,
// case-insensitively.
func (v Value) contains(term string) bool {
	return strings.Contains(strings.ToLower(v.text()), strings.ToLower(term))
}

// matchesFilter reports whether the value equals the supplied filter literal.
// Numeric values parse the literal as a number; string values compare
// case-insensitively.
func (v Value) matchesFilter(literal string) bool {
	if v.kind == numberKind {
		f, err := strconv.ParseFloat(literal, 64)
		return err == nil && v.num == f
	}
	return strings.EqualFold(v.str, literal)
}

// less compares two values of the same field.
func (v Value) less(other Value) bool {
	if v.kind == numberKind && other.kind == numberKind {
		return v.num < other.num
	}
	return v.text() < other.text()
}

func (v Value) text() string {
	if v.kind == numberKind {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// Fields names the queryable fields of a record type and extracts a Value for
// each. The same map serves the search, filter, and sort stages, so a field
// registered once is automatically usable by all three.
type Fields[T any] map[string]func(T) Value

// Params are the pipeline parameters. Page numbering is 1-based.
type Params struct {
	SearchTerm   string
	SearchFields []string
	Filters      map[string]string
	SortField    string
	SortOrder    SortOrder
	Page         int
	PageSize     int
}

// Result is the pipeline output: one page of records plus the totals computed
// after search and filter but before pagination.
type Result[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// Apply runs the pipeline over records in the fixed stage order.
//
// Stages:
//  1. search: a record matches if any of SearchFields contains SearchTerm,
//     case-insensitively; an empty term matches everything
//  2. filter: a record must satisfy every Filters entry; the value "all" or
//     an empty value bypasses that filter
//  3. sort: stable by SortField in SortOrder direction, so ties retain their
//     original relative order and pagination stays deterministic; an empty
//     SortField keeps the incoming order
//  4. paginate: 1-based Page slices PageSize records; a page beyond the last
//     yields an empty Items slice, not an error
//
// Malformed parameters (unknown field names, non-positive page numbers) fail
// with validation errors from the errs package before any stage runs.
func Apply[T any](records []T, fields Fields[T], params Params) (Result[T], error) {
	if err := validate(fields, params); err != nil {
		return Result[T]{}, err
	}

	matched := make([]T, 0, len(records))
	for _, record := range records {
		if matchesSearch(record, fields, params) && matchesFilters(record, fields, params.Filters) {
			matched = append(matched, record)
		}
	}

	if params.SortField != "" {
		extract := fields[params.SortField]
		sort.SliceStable(matched, func(a, b int) bool {
			left, right := extract(matched[a]), extract(matched[b])
			if params.SortOrder == Desc {
				return right.less(left)
			}
			return left.less(right)
		})
	}

	totalCount := len(matched)
	totalPages := (totalCount + params.PageSize - 1) / params.PageSize

	start := (params.Page - 1) * params.PageSize
	if start >= totalCount {
		return Result[T]{Items: []T{}, TotalCount: totalCount, TotalPages: totalPages}, nil
	}
	end := start + params.PageSize
	if end > totalCount {
		end = totalCount
	}

	items := make([]T, end-start)
	copy(items, matched[start:end])

	return Result[T]{Items: items, TotalCount: totalCount, TotalPages: totalPages}, nil
}

func validate[T any](fields Fields[T], params Params) error {
	if params.Page < 1 {
		return errs.NewValueIsOutOfRangeError("page", params.Page, 1, "unbounded")
	}
	if params.PageSize < 1 {
		return errs.NewValueIsOutOfRangeError("pageSize", params.PageSize, 1, "unbounded")
	}
	if params.SortField != "" {
		if _, ok := fields[params.SortField]; !ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"sort field", fmt.Errorf("%q is not a queryable field", params.SortField))
		}
	}
	for _, field := range params.SearchFields {
		if _, ok := fields[field]; !ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"search field", fmt.Errorf("%q is not a queryable field", field))
		}
	}
	for field := range params.Filters {
		if _, ok := fields[field]; !ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"filter field", fmt.Errorf("%q is not a queryable field", field))
		}
	}
	return nil
}

func matchesSearch[T any](record T, fields Fields[T], params Params) bool {
	if params.SearchTerm == "" || len(params.SearchFields) == 0 {
		return true
	}
	for _, field := range params.SearchFields {
		if fields[field](record).contains(params.SearchTerm) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](record T, fields Fields[T], filters map[string]string) bool {
	for field, literal := range filters {
		if literal == "" || literal == FilterBypass {
			continue
		}
		if !fields[field](record).matchesFilter(literal) {
			return false
		}
	}
	return true
}
