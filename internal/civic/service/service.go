// Package service orchestrates entity searches: compiling queries,
// resolving zip codes, projecting hits to the public shape and assembling
// response payloads.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"civicapi/internal/civic/entity"
	"civicapi/internal/civic/models"
	"civicapi/internal/civic/projector"
	"civicapi/internal/civic/query"
	"civicapi/internal/geo"
	"civicapi/internal/search"
	"civicapi/pkg/response"
)

// Searcher executes requests against the search backend.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (search.Result, error)
}

// ZipResolver resolves zip codes to district locations.
type ZipResolver interface {
	Resolve(ctx context.Context, zipcode string) (geo.Location, error)
}

// StateStore reads individual state records from the relational database.
type StateStore interface {
	GetState(ctx context.Context, key string) (models.State, error)
}

// Service answers entity search and detail requests.
type Service struct {
	search      Searcher
	zips        ZipResolver
	states      StateStore
	indexPrefix string
	logger      *slog.Logger
}

// New constructs a Service. indexPrefix is prepended to each entity's index
// name, matching how the indices are provisioned per environment.
func New(searcher Searcher, zips ZipResolver, states StateStore, indexPrefix string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		search:      searcher,
		zips:        zips,
		states:      states,
		indexPrefix: indexPrefix,
		logger:      logger,
	}
}

// Search runs one entity search. Failures are reported inside the result's
// errors array rather than as an error return; the HTTP status is always
// 200 for reachable endpoints.
func (s *Service) Search(ctx context.Context, cfg entity.Config, q models.Query) response.Result {
	start := time.Now()
	compiled := query.Compile(cfg, q, s.indexFor(cfg))

	if cfg.ResolveZip && q.Has("zipcode") {
		zip := q.Get("zipcode")
		loc, err := s.zips.Resolve(ctx, zip)
		if err != nil {
			if !errors.Is(err, geo.ErrNotFound) {
				s.logger.Error("zipcode resolution failed", "entity", cfg.Type, "zipcode", zip, "error", err)
			}
			s.observe(cfg, "zip_not_found", start)
			return response.Result{Errors: []string{zip + " Zip Code Not Found"}}
		}
		compiled.Request.Must = append(compiled.Request.Must, search.Match("state_code", loc.StateCode))
		if cfg.ZipGeo != nil {
			compiled.Request.Must = append(compiled.Request.Must, cfg.ZipGeo(loc.Latitude, loc.Longitude))
		}
	}

	res, err := s.search.Search(ctx, compiled.Request)
	if err != nil {
		s.logger.Error("search failed", "entity", cfg.Type, "index", compiled.Request.Index, "error", err)
		s.observe(cfg, "error", start)
		return response.Result{Errors: []string{err.Error()}}
	}

	data := make([]map[string]any, 0, len(res.Hits))
	for _, hit := range res.Hits {
		doc := projector.Public(cfg.PublicFields, hit)
		if cfg.Extend != nil {
			cfg.Extend(doc)
		}
		data = append(data, doc)
	}

	var notices []string
	if cfg.ResolveZip && q.Has("zipcode") && cfg.ZipNotice > 0 && res.Total > cfg.ZipNotice {
		notices = append(notices, zipNotice(cfg))
	}

	s.observe(cfg, "ok", start)
	return response.Result{
		Notices: notices,
		Meta: &response.Meta{
			Total:   res.Total,
			Showing: len(res.Hits),
			Pages:   response.PageCount(res.Total, compiled.Size),
			Page:    compiled.Page,
		},
		Data: data,
	}
}

// GetState returns a single state looked up by name, slug or code from the
// relational database, shaped like a search hit with its image families.
func (s *Service) GetState(ctx context.Context, key string) response.Result {
	if key == "" {
		return response.Result{Errors: []string{"Request Invalid"}}
	}

	st, err := s.states.GetState(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrStateNotFound) {
			s.logger.Error("state lookup failed", "state", key, "error", err)
		}
		return response.Result{Errors: []string{"No State found for " + key}}
	}

	return response.Result{Data: stateDetail(st)}
}

// Zipcode returns the geolocation records matching one zip code.
func (s *Service) Zipcode(ctx context.Context, zipcode string) response.Result {
	cfg := entity.Geolocation()
	req := search.Request{
		Index: s.indexFor(cfg),
		Size:  query.DefaultPageSize,
		Must:  []search.Clause{search.Match("zipcode", zipcode)},
	}

	res, err := s.search.Search(ctx, req)
	if err != nil {
		s.logger.Error("zipcode lookup failed", "zipcode", zipcode, "error", err)
		return response.Result{Errors: []string{err.Error()}}
	}

	data := make([]map[string]any, 0, len(res.Hits))
	for _, hit := range res.Hits {
		data = append(data, projector.Public(cfg.PublicFields, hit))
	}
	return response.Result{Data: data}
}

// ErrStateNotFound is returned by state stores when no record matches.
var ErrStateNotFound = errors.New("state not found")

// stateDetail mirrors the search projection for a state record pulled from
// the relational store.
func stateDetail(st models.State) map[string]any {
	doc := map[string]any{
		"state_name":               st.StateName,
		"state_name_slug":          st.StateNameSlug,
		"state_code":               st.StateCode,
		"state_code_slug":          st.StateCodeSlug,
		"nickname":                 st.Nickname,
		"website":                  st.Website,
		"admission_date":           admissionDate(st),
		"admission_number":         st.AdmissionNumber,
		"capital_city":             st.CapitalCity,
		"capital_url":              st.CapitalURL,
		"population":               st.Population,
		"population_rank":          st.PopulationRank,
		"constitution_url":         st.ConstitutionURL,
		"twitter_handle":           st.TwitterHandle,
		"twitter_url":              st.TwitterURL,
		"facebook_url":             st.FacebookURL,
		"state_flag_url":           st.StateFlagURL,
		"state_seal_url":           st.StateSealURL,
		"map_image_url":            st.MapImageURL,
		"landscape_background_url": st.LandscapeBackgroundURL,
		"skyline_background_url":   st.SkylineBackgroundURL,
	}
	projector.ExtendState(doc)

	// The detail view exposes the derived image families, not the raw
	// asset URLs they are built from.
	for _, raw := range []string{
		"state_flag_url", "state_seal_url", "map_image_url",
		"landscape_background_url", "skyline_background_url",
	} {
		delete(doc, raw)
	}
	return doc
}

func admissionDate(st models.State) any {
	if st.AdmissionDate == nil {
		return nil
	}
	return st.AdmissionDate.UTC().Format("2006-01-02")
}

func (s *Service) indexFor(cfg entity.Config) string {
	return s.indexPrefix + "_" + cfg.Index
}

func (s *Service) observe(cfg entity.Config, outcome string, start time.Time) {
	searchesTotal.WithLabelValues(string(cfg.Type), outcome).Inc()
	searchDuration.WithLabelValues(string(cfg.Type)).Observe(time.Since(start).Seconds())
}

func zipNotice(cfg entity.Config) string {
	name := strings.ReplaceAll(string(cfg.Type), "-", "_")
	return "Try using `latitude` & `longitude` for more specific `" + name + "` district results."
}
