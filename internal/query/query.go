// Package query implements the list query engine shared by every
// collection endpoint: an ordered pipeline of filter predicates
// (status, type, search) followed by a stable sort and pagination.
package query

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"docuforge/internal/domain"
)

// Sorting and paging defaults shared by all list endpoints.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Params is the combined filter/sort/page request accepted by list
// endpoints. Zero-valued fields mean "not supplied".
type Params struct {
	Search    string
	Status    string
	Type      string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string

	// Raw paging inputs as supplied on the query string. Validate
	// rejects malformed values after the filter enums are checked.
	rawPage     string
	rawPageSize string
}

// Meta is the pagination metadata returned alongside a page of results.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// ParseParams reads list query parameters from a URL query string.
// No checks happen here; Collection.Validate rejects malformed values
// in its fixed field order.
func ParseParams(values url.Values) Params {
	params := Params{
		Search:      values.Get("search"),
		Status:      values.Get("status"),
		Type:        values.Get("type"),
		SortBy:      values.Get("sortBy"),
		SortOrder:   values.Get("sortOrder"),
		rawPage:     values.Get("page"),
		rawPageSize: values.Get("pageSize"),
	}

	if page, err := strconv.Atoi(params.rawPage); err == nil {
		params.Page = page
	}
	if pageSize, err := strconv.Atoi(params.rawPageSize); err == nil {
		params.PageSize = pageSize
	}

	return params
}

// SortKey names one sortable field of a collection and its comparator.
// The comparator returns a negative, zero, or positive value for the
// ascending order; ties must return zero so the stable sort keeps
// insertion order.
type SortKey[T any] struct {
	Name    string
	Compare func(a, b T) int
}

// Collection describes how the engine filters and sorts one entity
// type. The first sort key is the default.
type Collection[T any] struct {
	// Statuses are the values accepted by the status filter.
	Statuses []string

	// Types are the values accepted by the type filter. A nil slice
	// means the collection has no type filter and any supplied value
	// is ignored.
	Types []string

	// StatusOf and TypeOf extract the filterable fields of an item.
	StatusOf func(item T) string
	TypeOf   func(item T) string

	// SearchFields returns the fields matched by the search filter.
	SearchFields func(item T) []string

	// SortKeys are the sortable fields, default first.
	SortKeys []SortKey[T]
}

// Validate checks enum and range constraints, first failing rule wins.
// The check order is fixed: status, type, page, pageSize, sortBy,
// sortOrder.
func (c *Collection[T]) Validate(params Params) error {
	if err := validation.Validate(params.Status,
		validation.In(toAny(c.Statuses)...).Error("Status must be one of: "+strings.Join(c.Statuses, ", ")+"."),
	); err != nil {
		return domain.Validation(err.Error())
	}

	if c.Types != nil {
		if err := validation.Validate(params.Type,
			validation.In(toAny(c.Types)...).Error("Type must be one of: "+strings.Join(c.Types, ", ")+"."),
		); err != nil {
			return domain.Validation(err.Error())
		}
	}

	if params.rawPage != "" {
		if page, err := strconv.Atoi(params.rawPage); err != nil || page < 1 {
			return domain.Validation("Page must be a positive integer.")
		}
	}
	if params.rawPageSize != "" {
		if pageSize, err := strconv.Atoi(params.rawPageSize); err != nil || pageSize < 1 {
			return domain.Validation("Page size must be a positive integer.")
		}
	}

	if err := validation.Validate(params.PageSize,
		validation.Max(MaxPageSize).Error("Page size must be at most 100."),
	); err != nil {
		return domain.Validation(err.Error())
	}

	if err := validation.Validate(params.SortBy,
		validation.In(toAny(c.sortKeyNames())...).Error("Sort by must be one of: "+strings.Join(c.sortKeyNames(), ", ")+"."),
	); err != nil {
		return domain.Validation(err.Error())
	}

	if err := validation.Validate(params.SortOrder,
		validation.In(OrderAsc, OrderDesc).Error("Sort order must be asc or desc."),
	); err != nil {
		return domain.Validation(err.Error())
	}

	return nil
}

// Run applies the filter pipeline, sorts, and paginates. Params must
// have passed Validate. An out-of-range page yields an empty data
// slice, not an error.
func (c *Collection[T]) Run(items []T, params Params) ([]T, Meta) {
	params = c.normalize(params)

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if params.Status != "" && c.StatusOf(item) != params.Status {
			continue
		}
		if params.Type != "" && c.Types != nil && c.TypeOf(item) != params.Type {
			continue
		}
		if params.Search != "" && !c.matches(item, params.Search) {
			continue
		}
		filtered = append(filtered, item)
	}

	compare := c.comparator(params.SortBy)
	direction := 1
	if params.SortOrder == OrderDesc {
		direction = -1
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return direction*compare(filtered[i], filtered[j]) < 0
	})

	total := len(filtered)
	totalPages := 0
	if total > 0 {
		totalPages = (total + params.PageSize - 1) / params.PageSize
	}

	start := (params.Page - 1) * params.PageSize
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	meta := Meta{
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}
	return filtered[start:end], meta
}

// normalize fills defaults and folds the search needle to lower case.
// An empty (or all-whitespace) search means no search filter.
func (c *Collection[T]) normalize(params Params) Params {
	params.Search = strings.ToLower(strings.TrimSpace(params.Search))
	if params.Page == 0 {
		params.Page = DefaultPage
	}
	if params.PageSize == 0 {
		params.PageSize = DefaultPageSize
	}
	if params.SortBy == "" {
		params.SortBy = c.SortKeys[0].Name
	}
	if params.SortOrder == "" {
		params.SortOrder = OrderDesc
	}
	return params
}

func (c *Collection[T]) matches(item T, needle string) bool {
	for _, field := range c.SearchFields(item) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (c *Collection[T]) comparator(name string) func(a, b T) int {
	for _, key := range c.SortKeys {
		if key.Name == name {
			return key.Compare
		}
	}
	return c.SortKeys[0].Compare
}

func (c *Collection[T]) sortKeyNames() []string {
	names := make([]string, len(c.SortKeys))
	for i, key := range c.SortKeys {
		names[i] = key.Name
	}
	return names
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
