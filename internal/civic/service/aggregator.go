package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"

	"golang.org/x/sync/errgroup"

	"civicapi/internal/civic/entity"
	"civicapi/internal/civic/models"
	"civicapi/pkg/response"
)

// appIndexLifetime is the cache lifetime, in minutes, advertised on app
// index documents.
const appIndexLifetime = 1440

const indexerPageSize = "500"

// searchFilters is the per-record shape returned by the keyword search
// endpoint; appIndexFilters is the richer shape the indexer works from.
var (
	searchFilters   = []string{"data_type", "name", "photo_url", "civil_services_url"}
	appIndexFilters = []string{"data_type", "name", "title", "photo_url_sizes", "skyline", "state_name", "state_code", "city_name", "civil_services_url"}
)

// Government aggregates every elected office covering one location. The
// query must carry either a latitude/longitude pair or a zipcode.
func (s *Service) Government(ctx context.Context, q models.Query) response.Result {
	hasPoint := q.Has("latitude") && q.Has("longitude")
	if !hasPoint && !q.Has("zipcode") {
		return response.Result{Errors: []string{"Requires `latitude` and `longitude`, or `zipcode` Parameters."}}
	}

	results := s.fanOut(ctx, func(entity.Config) models.Query { return q })

	byType := make(map[entity.Type]response.Result, len(results))
	for i, cfg := range aggregated() {
		byType[cfg.Type] = results[i]
	}

	// The state branch flattens to its single covering record.
	var stateRecord any
	if records, ok := byType[entity.TypeState].Data.([]map[string]any); ok && len(records) > 0 {
		stateRecord = records[0]
	}

	return response.Result{
		Notices:  mergeStrings(results, func(r response.Result) []string { return r.Notices }),
		Warnings: mergeStrings(results, func(r response.Result) []string { return r.Warnings }),
		Errors:   mergeStrings(results, func(r response.Result) []string { return r.Errors }),
		Data: map[string]any{
			"house":        byType[entity.TypeHouse].Data,
			"senate":       byType[entity.TypeSenate].Data,
			"city_council": byType[entity.TypeCityCouncil].Data,
			"governor":     byType[entity.TypeGovernor].Data,
			"state":        stateRecord,
		},
	}
}

// Keyword searches every entity type at once and returns a flat summary
// list. The keyword must be at least three characters.
func (s *Service) Keyword(ctx context.Context, q models.Query) response.Result {
	if len(q.Get("keyword")) < 3 {
		return response.Result{Errors: []string{"Search Endpoint Requires a `keyword` Parameter that's at least three characters."}}
	}

	results := s.fanOut(ctx, func(entity.Config) models.Query { return q })

	var data []map[string]any
	for i, cfg := range aggregated() {
		data = append(data, cleanData(results[i].Data, cfg.DataType, searchFilters)...)
	}

	return response.Result{
		Notices:  mergeStrings(results, func(r response.Result) []string { return r.Notices }),
		Warnings: mergeStrings(results, func(r response.Result) []string { return r.Warnings }),
		Errors:   mergeStrings(results, func(r response.Result) []string { return r.Errors }),
		Data:     emptyIfNil(data),
	}
}

// AppIndex builds the document feed consumed by the companion app's search
// index: every official and state, sorted stably, reduced to index cards.
func (s *Service) AppIndex(ctx context.Context) response.Result {
	sorts := map[entity.Type]string{
		entity.TypeHouse:       "state_code,district",
		entity.TypeSenate:      "state_code,last_name",
		entity.TypeCityCouncil: "state_code,district,last_name",
		entity.TypeGovernor:    "state_code,last_name",
		entity.TypeState:       "state_code",
	}

	results := s.fanOut(ctx, func(cfg entity.Config) models.Query {
		return models.Query{"pageSize": indexerPageSize, "sort": sorts[cfg.Type]}
	})

	var records []map[string]any
	for i, cfg := range aggregated() {
		records = append(records, cleanData(results[i].Data, cfg.DataType, appIndexFilters)...)
	}

	prepared := make([]map[string]any, 0, len(records))
	for _, record := range records {
		if doc, ok := appIndexDocument(record); ok {
			prepared = append(prepared, doc)
		}
	}

	return response.Result{
		Notices:  mergeStrings(results, func(r response.Result) []string { return r.Notices }),
		Warnings: mergeStrings(results, func(r response.Result) []string { return r.Warnings }),
		Errors:   mergeStrings(results, func(r response.Result) []string { return r.Errors }),
		Data:     prepared,
	}
}

// aggregated lists the entity configurations every aggregate endpoint fans
// out over, in merge order: house, senate, city council, governor, state.
func aggregated() []entity.Config {
	return []entity.Config{
		entity.House(),
		entity.Senate(),
		entity.CityCouncil(),
		entity.Governor(),
		entity.State(),
	}
}

// fanOut runs one search per aggregated entity concurrently. Failures stay
// inside each result's errors array, so one failing branch never cancels
// its siblings.
func (s *Service) fanOut(ctx context.Context, queryFor func(entity.Config) models.Query) []response.Result {
	configs := aggregated()
	results := make([]response.Result, len(configs))

	g, ctx := errgroup.WithContext(ctx)
	for i, cfg := range configs {
		g.Go(func() error {
			results[i] = s.Search(ctx, cfg, queryFor(cfg))
			return nil
		})
	}
	g.Wait()

	return results
}

// cleanData stamps each record with its data_type and reduces it to the
// given field list.
func cleanData(data any, dataType string, filters []string) []map[string]any {
	records, ok := data.([]map[string]any)
	if !ok {
		return nil
	}
	cleaned := make([]map[string]any, 0, len(records))
	for _, record := range records {
		record["data_type"] = dataType
		kept := make(map[string]any, len(filters))
		for _, f := range filters {
			if v, ok := record[f]; ok {
				kept[f] = v
			}
		}
		cleaned = append(cleaned, kept)
	}
	return cleaned
}

// appIndexDocument turns one cleaned record into an app index card.
// Records without a usable name are skipped.
func appIndexDocument(record map[string]any) (map[string]any, bool) {
	name := strings.Join(strings.Fields(stringValue(record, "name")), " ")
	if name == "" {
		return nil, false
	}

	var title, description, photo string
	var keywords []string

	officialTitle := models.TitleCase(stringValue(record, "title"))

	switch stringValue(record, "data_type") {
	case "us-house-representative":
		title = officialTitle + " " + name
		description = "Accountability Reports, Demographic Data & Contact Information for " + stringValue(record, "state_name") + " U.S. House " + officialTitle + " " + name
		keywords = descriptionKeywords(description, " &", " for")
		photo = photoSize(record, "photo_url_sizes", "size_256x256")
	case "us-senator":
		title = officialTitle + " " + name
		description = "Accountability Reports, Demographic Data & Contact Information for " + stringValue(record, "state_name") + " U.S. " + officialTitle + " " + name
		keywords = descriptionKeywords(description, " &", " for")
		photo = photoSize(record, "photo_url_sizes", "size_256x256")
	case "us-governor":
		title = officialTitle + " " + name
		description = "Demographic Data & Contact Information for " + stringValue(record, "state_name") + " U.S. State " + officialTitle + " " + name
		keywords = descriptionKeywords(description, " &", " for")
		photo = photoSize(record, "photo_url_sizes", "size_256x256")
	case "city-councilor":
		title = officialTitle + " " + name
		description = "Demographic Data & Contact Information for " + stringValue(record, "city_name") + ", " + stringValue(record, "state_code") + " - City " + officialTitle + " " + name
		keywords = descriptionKeywords(strings.ReplaceAll(strings.ReplaceAll(description, " - ", " "), ",", ""), " &", " for")
		photo = photoSize(record, "photo_url_sizes", "size_256x256")
	case "us-state":
		title = "State of " + name
		description = "Information on U.S. State " + name
		keywords = strings.Split(description, " ")
		photo = photoSize(record, "skyline", "size_640x360")
	default:
		return nil, false
	}

	webURL := stringValue(record, "civil_services_url")
	sum := md5.Sum([]byte(webURL))

	return map[string]any{
		"domain":      "app.civil.services",
		"identifier":  hex.EncodeToString(sum[:]),
		"title":       title,
		"description": description,
		"web_url":     webURL,
		"url":         photo,
		"keywords":    keywords,
		"lifetime":    appIndexLifetime,
	}, true
}

// descriptionKeywords splits a description into keywords after stripping
// the connectives.
func descriptionKeywords(description string, drop ...string) []string {
	for _, d := range drop {
		description = strings.ReplaceAll(description, d, "")
	}
	return strings.Split(description, " ")
}

// mergeStrings unions one message list across results, preserving first
// occurrence order.
func mergeStrings(results []response.Result, pick func(response.Result) []string) []string {
	var merged []string
	seen := map[string]bool{}
	for _, r := range results {
		for _, msg := range pick(r) {
			if seen[msg] {
				continue
			}
			seen[msg] = true
			merged = append(merged, msg)
		}
	}
	return merged
}

func photoSize(record map[string]any, family, size string) string {
	sizes, ok := record[family].(map[string]any)
	if !ok {
		return ""
	}
	url, _ := sizes[size].(string)
	return url
}

func stringValue(record map[string]any, field string) string {
	s, _ := record[field].(string)
	return s
}

func emptyIfNil(data []map[string]any) []map[string]any {
	if data == nil {
		return []map[string]any{}
	}
	return data
}
