// Package response builds the uniform API envelope returned by every
// endpoint. Domain failures ride inside the envelope; handlers always
// answer 200 for domain-level outcomes.
package response

import "math"

// Meta describes pagination of the data payload.
type Meta struct {
	Total   int `json:"total"`
	Showing int `json:"showing"`
	Pages   int `json:"pages"`
	Page    int `json:"page"`
}

// Attribution is the fixed provenance block attached to every response.
type Attribution struct {
	Text      string `json:"text"`
	Website   string `json:"website"`
	Link      string `json:"link"`
	License   string `json:"license"`
	ReportBug string `json:"report_bug"`
	Logo      string `json:"logo"`
	Icon      string `json:"icon"`
}

var defaultAttribution = Attribution{
	Text:      "Data Provided by Civil Services",
	Website:   "https://civil.services",
	Link:      `<a href="https://civil.services">Data Provided by Civil Services</a>`,
	License:   "https://raw.githubusercontent.com/CivilServiceUSA/api/master/LICENSE",
	ReportBug: "https://github.com/CivilServiceUSA/api/issues/new",
	Logo:      "https://cdn.civil.services/common/logo.png",
	Icon:      "https://cdn.civil.services/common/icon.png",
}

// Result is a partial outcome produced by a service; New merges it over the
// default envelope.
type Result struct {
	Notices     []string
	Warnings    []string
	Errors      []string
	FieldErrors map[string][]string
	Meta        *Meta
	Data        any
}

// Envelope is the wire shape of every API response.
type Envelope struct {
	Notices     []string            `json:"notices"`
	Warnings    []string            `json:"warnings"`
	Errors      []string            `json:"errors"`
	FieldErrors map[string][]string `json:"field_errors"`
	Meta        Meta                `json:"meta"`
	Data        any                 `json:"data"`
	Attribution Attribution         `json:"attribution"`
}

// New merges a service result over the default envelope. fields is the raw
// comma-separated `fields` query parameter; when non-empty it restricts data
// records to the named keys, whether data is a record list or a single
// record. Single records serialize with lexicographically ordered keys, which
// encoding/json gives us for free on maps.
func New(res Result, fields string) Envelope {
	env := Envelope{
		Notices:     emptyIfNil(res.Notices),
		Warnings:    emptyIfNil(res.Warnings),
		Errors:      emptyIfNil(res.Errors),
		FieldErrors: res.FieldErrors,
		Meta:        Meta{Total: 0, Showing: 0, Pages: 1, Page: 1},
		Data:        res.Data,
		Attribution: defaultAttribution,
	}
	if env.FieldErrors == nil {
		env.FieldErrors = map[string][]string{}
	}

	if fields != "" {
		env.Data = Project(env.Data, SplitFields(fields))
	}

	if res.Meta != nil {
		env.Meta = *res.Meta
	} else {
		total := dataCount(env.Data)
		env.Meta.Total = total
		env.Meta.Showing = total
	}

	return env
}

// PageCount returns the number of pages covering total results at the given
// page size.
func PageCount(total, size int) int {
	if size <= 0 {
		return 1
	}
	return int(math.Ceil(float64(total) / float64(size)))
}

// SplitFields parses the fields query parameter into a lookup set.
func SplitFields(fields string) map[string]bool {
	keep := make(map[string]bool)
	start := 0
	for i := 0; i <= len(fields); i++ {
		if i == len(fields) || fields[i] == ',' {
			if f := fields[start:i]; f != "" {
				keep[f] = true
			}
			start = i + 1
		}
	}
	return keep
}

// Project restricts data to the named keys. Data is either a record, a list
// of records, or something opaque (returned untouched).
func Project(data any, keep map[string]bool) any {
	switch d := data.(type) {
	case map[string]any:
		return pick(d, keep)
	case []map[string]any:
		out := make([]map[string]any, 0, len(d))
		for _, rec := range d {
			out = append(out, pick(rec, keep))
		}
		return out
	case []any:
		out := make([]any, 0, len(d))
		for _, item := range d {
			if rec, ok := item.(map[string]any); ok {
				out = append(out, pick(rec, keep))
			} else {
				out = append(out, item)
			}
		}
		return out
	default:
		return data
	}
}

func pick(rec map[string]any, keep map[string]bool) map[string]any {
	out := make(map[string]any, len(keep))
	for k, v := range rec {
		if keep[k] {
			out[k] = v
		}
	}
	return out
}

func dataCount(data any) int {
	switch d := data.(type) {
	case nil:
		return 0
	case []map[string]any:
		return len(d)
	case []any:
		return len(d)
	case map[string]any:
		if len(d) == 0 {
			return 0
		}
		return 1
	default:
		return 1
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
