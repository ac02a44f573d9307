// Package search speaks the search backend's query vocabulary. The filter
// compiler emits Clause values into a Request; the Client executes it.
package search

import "strings"

// Clause is one atomic filter condition in the backend's native JSON shape.
type Clause map[string]any

// Match builds an exact single-field match clause.
func Match(field string, value any) Clause {
	return Clause{"match": map[string]any{field: value}}
}

// Term builds a non-analyzed single-field equality clause.
func Term(field string, value any) Clause {
	return Clause{"term": map[string]any{field: value}}
}

// MultiMatchPhrase matches value as a phrase across the given fields.
func MultiMatchPhrase(value string, fields ...string) Clause {
	return Clause{"multi_match": map[string]any{
		"query":  value,
		"type":   "phrase",
		"fields": fields,
	}}
}

// MultiMatchBest matches value across the given fields, scoring on the
// best-matching field. Fields may carry ^boost suffixes.
func MultiMatchBest(value string, fields ...string) Clause {
	return Clause{"multi_match": map[string]any{
		"query":  value,
		"type":   "best_fields",
		"fields": fields,
	}}
}

// TermsCSV splits a comma-separated value and matches any of its items.
func TermsCSV(field, csv string) Clause {
	return Clause{"terms": map[string]any{
		field:                   strings.Split(csv, ","),
		"minimum_should_match": 1,
	}}
}

// RangeGTE / RangeLTE bound a numeric field from below / above, inclusive.
func RangeGTE(field string, value any) Clause {
	return Clause{"range": map[string]any{field: map[string]any{"gte": value}}}
}

func RangeLTE(field string, value any) Clause {
	return Clause{"range": map[string]any{field: map[string]any{"lte": value}}}
}

// YearWindow bounds a date field to the one-year window starting at year.
func YearWindow(field, year, nextYear string) Clause {
	return Clause{"range": map[string]any{field: map[string]any{
		"gte":    year,
		"lte":    nextYear,
		"format": "yyyy",
	}}}
}

// YearBefore / YearAfter bound a date field exclusively by year.
func YearBefore(field, year string) Clause {
	return Clause{"range": map[string]any{field: map[string]any{
		"lt":     year,
		"format": "yyyy",
	}}}
}

func YearAfter(field, year string) Clause {
	return Clause{"range": map[string]any{field: map[string]any{
		"gt":     year,
		"format": "yyyy",
	}}}
}

// DateLTE / DateGTE bound a date field inclusively by a raw date string.
func DateLTE(field, date string) Clause {
	return Clause{"range": map[string]any{field: map[string]any{"lte": date}}}
}

func DateGTE(field, date string) Clause {
	return Clause{"range": map[string]any{field: map[string]any{"gte": date}}}
}

// GeoPoint builds a point-containment clause against the shape field.
func GeoPoint(latitude, longitude any) Clause {
	return Clause{"geo_shape": map[string]any{
		"shape": map[string]any{
			"shape": map[string]any{
				"coordinates": []any{longitude, latitude},
				"type":        "point",
			},
		},
	}}
}

// GeoCircle builds a circle-containment clause with the given radius, e.g.
// "0.25km".
func GeoCircle(latitude, longitude any, radius string) Clause {
	return Clause{"geo_shape": map[string]any{
		"shape": map[string]any{
			"shape": map[string]any{
				"coordinates": []any{longitude, latitude},
				"type":        "circle",
				"radius":      radius,
			},
		},
	}}
}

// QueryString builds a fuzzy wildcard-wrapped free-text clause over a fixed
// field-boost list. The caller supplies the already-decorated query text.
func QueryString(query string, fields ...string) Clause {
	return Clause{"query_string": map[string]any{
		"query":     query,
		"fields":    fields,
		"fuzziness": "AUTO",
	}}
}

// SortField pairs a sort field with its direction.
type SortField struct {
	Field string
	Order string
}

// Request is one search call against a single index.
type Request struct {
	Index string
	From  int
	Size  int
	Sort  []SortField
	Must  []Clause
}

// Body renders the request payload. Sort renders as an ordered array of
// single-key objects; an empty Must list produces no query element so the
// backend falls back to match-all.
func (r Request) Body() map[string]any {
	body := map[string]any{
		"from": r.From,
		"size": r.Size,
	}
	if len(r.Sort) > 0 {
		sort := make([]map[string]any, 0, len(r.Sort))
		for _, s := range r.Sort {
			sort = append(sort, map[string]any{s.Field: map[string]any{"order": s.Order}})
		}
		body["sort"] = sort
	}
	if len(r.Must) > 0 {
		body["query"] = map[string]any{
			"bool": map[string]any{"must": r.Must},
		}
	}
	return body
}
