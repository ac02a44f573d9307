// Package query compiles HTTP query parameters into search backend
// requests using an entity's declarative filter configuration.
package query

import (
	"strconv"
	"strings"

	"civicapi/internal/civic/entity"
	"civicapi/internal/civic/models"
	"civicapi/internal/search"
)

const (
	// DefaultPageSize matches the public API's documented page size.
	DefaultPageSize = 30

	defaultPage = 1
)

// Compiled is the result of turning one request's parameters into a search
// body, along with the resolved pagination values used for response meta.
type Compiled struct {
	Request search.Request
	Page    int
	Size    int
}

// Compile builds the request for cfg against the given index. Unrecognized
// parameters are ignored; recognized parameters only ever add clauses, so a
// compiled query never matches more documents than one with fewer
// parameters. Clause order follows the configuration's filter order, which
// keeps compiled bodies identical for identical inputs.
func Compile(cfg entity.Config, q models.Query, index string) Compiled {
	page, size := Pagination(q)

	req := search.Request{
		Index: index,
		From:  (page - 1) * size,
		Size:  size,
		Sort:  sortOrder(q, cfg.DefaultSort),
	}

	for _, f := range cfg.Filters {
		if !q.Has(f.Param) {
			continue
		}
		req.Must = append(req.Must, f.Build(q.Get(f.Param))...)
	}

	if cfg.LatLon != nil && q.Has("latitude") && q.Has("longitude") {
		req.Must = append(req.Must, cfg.LatLon(q.Get("latitude"), q.Get("longitude")))
	}

	return Compiled{Request: req, Page: page, Size: size}
}

// Pagination resolves the page and pageSize parameters with the API's
// lenient parsing rules: malformed or non-positive values fall back to the
// defaults rather than erroring.
func Pagination(q models.Query) (page, size int) {
	return positiveInt(q.Get("page"), defaultPage), positiveInt(q.Get("pageSize"), DefaultPageSize)
}

// positiveInt parses v as a positive integer, falling back to def when the
// value is missing, malformed, or less than one.
func positiveInt(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// sortOrder pairs the comma-separated sort and order parameters by
// position. Fields without a matching order entry, or with one that isn't
// asc or desc, sort ascending.
func sortOrder(q models.Query, def []search.SortField) []search.SortField {
	if !q.Has("sort") {
		return def
	}

	fields := strings.Split(q.Get("sort"), ",")
	var orders []string
	if q.Has("order") {
		orders = strings.Split(strings.ToLower(q.Get("order")), ",")
	}

	sorts := make([]search.SortField, 0, len(fields))
	for i, field := range fields {
		order := "asc"
		if i < len(orders) && (orders[i] == "asc" || orders[i] == "desc") {
			order = orders[i]
		}
		sorts = append(sorts, search.SortField{Field: field, Order: order})
	}
	return sorts
}
