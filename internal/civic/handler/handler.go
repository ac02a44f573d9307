// Package handler wires the civic data endpoints to the search services.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"civicapi/internal/analytics"
	"civicapi/internal/civic/entity"
	"civicapi/internal/civic/models"
	"civicapi/internal/platform/middleware"
	"civicapi/pkg/response"
)

// CivicService answers entity searches and detail lookups.
type CivicService interface {
	Search(ctx context.Context, cfg entity.Config, q models.Query) response.Result
	GetState(ctx context.Context, key string) response.Result
	Zipcode(ctx context.Context, zipcode string) response.Result
	Government(ctx context.Context, q models.Query) response.Result
	Keyword(ctx context.Context, q models.Query) response.Result
	AppIndex(ctx context.Context) response.Result
}

// TaxonomyService answers category and tag listings.
type TaxonomyService interface {
	Categories(ctx context.Context, q models.Query, slug string) response.Result
	Tags(ctx context.Context, q models.Query) response.Result
}

// Handler exposes the public v1 API.
type Handler struct {
	civic    CivicService
	taxonomy TaxonomyService
	events   *analytics.Publisher
	logger   *slog.Logger
}

// New constructs a Handler. events may be nil to disable usage tracking.
func New(civic CivicService, taxonomy TaxonomyService, events *analytics.Publisher, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{civic: civic, taxonomy: taxonomy, events: events, logger: logger}
}

// Register mounts all v1 endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/city-council", h.entitySearch(entity.CityCouncil(), "City Council"))
	r.Get("/city-council/{state}/{city}", h.handleCityCouncilByCity)
	r.Get("/governor", h.entitySearch(entity.Governor(), "Governor"))
	r.Get("/house", h.entitySearch(entity.House(), "House"))
	r.Get("/senate", h.entitySearch(entity.Senate(), "Senate"))
	r.Get("/state", h.entitySearch(entity.State(), "State"))
	r.Get("/state/{state}", h.handleStateDetail)
	r.Get("/geolocation", h.entitySearch(entity.Geolocation(), "Geolocation"))
	r.Get("/geolocation/zipcode/{zipcode}", h.handleZipcodeDetail)
	r.Get("/government", h.handleGovernment)
	r.Get("/search", h.handleSearch)
	r.Get("/indexer", h.handleAppIndex)
	r.Get("/categories", h.handleCategories)
	r.Get("/categories/{slug}", h.handleCategories)
	r.Get("/tags", h.handleTags)
}

func (h *Handler) entitySearch(cfg entity.Config, category string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := queryFrom(r)
		result := h.civic.Search(r.Context(), cfg, q)
		h.track(r, category, "Search Results", r.URL.RawQuery, resultCount(result))
		h.write(w, r, result)
	}
}

func (h *Handler) handleCityCouncilByCity(w http.ResponseWriter, r *http.Request) {
	q := queryFrom(r)
	q["state"] = chi.URLParam(r, "state")
	q["city"] = chi.URLParam(r, "city")

	result := h.civic.Search(r.Context(), entity.CityCouncil(), q)
	label := models.TitleCase(q["city"]) + ", " + strings.ToUpper(q["state"])
	h.track(r, "City Council", label, r.URL.RawQuery, resultCount(result))
	h.write(w, r, result)
}

func (h *Handler) handleStateDetail(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "state")
	result := h.civic.GetState(r.Context(), key)
	h.track(r, "State", models.TitleCase(key), "", resultCount(result))
	h.write(w, r, result)
}

func (h *Handler) handleZipcodeDetail(w http.ResponseWriter, r *http.Request) {
	zipcode := chi.URLParam(r, "zipcode")
	if !validZipcode(zipcode) {
		h.track(r, "Geolocation", "Invalid Zip Code", zipcode, 0)
		h.write(w, r, response.Result{Errors: []string{"Invalid Zip Code"}, Data: []map[string]any{}})
		return
	}

	result := h.civic.Zipcode(r.Context(), zipcode)
	h.track(r, "Geolocation", "Zip Code", zipcode, resultCount(result))
	h.write(w, r, result)
}

func (h *Handler) handleGovernment(w http.ResponseWriter, r *http.Request) {
	result := h.civic.Government(r.Context(), queryFrom(r))
	h.track(r, "Government", "Search Results", r.URL.RawQuery, resultCount(result))
	h.write(w, r, result)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	result := h.civic.Keyword(r.Context(), queryFrom(r))
	h.track(r, "Search", "Search Results", r.URL.RawQuery, resultCount(result))
	h.write(w, r, result)
}

func (h *Handler) handleAppIndex(w http.ResponseWriter, r *http.Request) {
	result := h.civic.AppIndex(r.Context())
	h.track(r, "Indexer", "Fetch", "", resultCount(result))
	h.write(w, r, result)
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	result := h.taxonomy.Categories(r.Context(), queryFrom(r), slug)
	h.track(r, "Categories", "Results", slug, resultCount(result))
	h.write(w, r, result)
}

func (h *Handler) handleTags(w http.ResponseWriter, r *http.Request) {
	result := h.taxonomy.Tags(r.Context(), queryFrom(r))
	h.track(r, "Tags", "Results", "", resultCount(result))
	h.write(w, r, result)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, result response.Result) {
	env := response.New(result, r.URL.Query().Get("fields"))
	response.Write(w, env, r.URL.Query().Get("pretty") == "true")
}

func (h *Handler) track(r *http.Request, category, action, label string, value int) {
	h.events.Track(r.Context(), analytics.Event{
		APIKey:   middleware.GetAPIKey(r.Context()),
		Category: category,
		Action:   action,
		Label:    label,
		Value:    value,
	}, r.UserAgent())
}

// queryFrom flattens the request's query parameters, keeping the first
// value of each.
func queryFrom(r *http.Request) models.Query {
	values := r.URL.Query()
	q := make(models.Query, len(values))
	for key := range values {
		q[key] = values.Get(key)
	}
	return q
}

func resultCount(result response.Result) int {
	if result.Meta != nil {
		return result.Meta.Showing
	}
	if data, ok := result.Data.([]map[string]any); ok {
		return len(data)
	}
	return 0
}

func validZipcode(zipcode string) bool {
	if len(zipcode) != 5 {
		return false
	}
	for _, c := range zipcode {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
