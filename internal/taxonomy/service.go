// Package taxonomy serves the category and tag vocabularies used to
// classify civic content.
package taxonomy

import (
	"context"
	"log/slog"

	"civicapi/internal/civic/models"
	"civicapi/internal/civic/projector"
	"civicapi/internal/civic/query"
	"civicapi/internal/search"
	"civicapi/pkg/response"
)

var (
	categoryFields = []string{"parent_id", "name", "slug", "subcategories"}
	tagFields      = []string{"name", "slug"}
)

// Searcher executes requests against the search backend.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (search.Result, error)
}

// Service answers category and tag listings.
type Service struct {
	search      Searcher
	indexPrefix string
	logger      *slog.Logger
}

// New constructs a taxonomy Service.
func New(searcher Searcher, indexPrefix string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{search: searcher, indexPrefix: indexPrefix, logger: logger}
}

// Categories lists top-level categories with their subcategories, sorted by
// id. A non-empty slug narrows the listing to one category.
func (s *Service) Categories(ctx context.Context, q models.Query, slug string) response.Result {
	req, page, size := s.listRequest(q, "category")
	if slug != "" {
		req.Must = append(req.Must, search.Match("slug", slug))
	}
	return s.list(ctx, req, page, size, categoryFields)
}

// Tags lists tags sorted by id.
func (s *Service) Tags(ctx context.Context, q models.Query) response.Result {
	req, page, size := s.listRequest(q, "tag")
	return s.list(ctx, req, page, size, tagFields)
}

func (s *Service) listRequest(q models.Query, index string) (search.Request, int, int) {
	page, size := query.Pagination(q)
	req := search.Request{
		Index: s.indexPrefix + "_" + index,
		From:  (page - 1) * size,
		Size:  size,
		Sort:  []search.SortField{{Field: "id", Order: "asc"}},
	}
	return req, page, size
}

func (s *Service) list(ctx context.Context, req search.Request, page, size int, fields []string) response.Result {
	res, err := s.search.Search(ctx, req)
	if err != nil {
		s.logger.Error("taxonomy search failed", "index", req.Index, "error", err)
		return response.Result{Errors: []string{err.Error()}}
	}

	data := make([]map[string]any, 0, len(res.Hits))
	for _, hit := range res.Hits {
		data = append(data, projector.Public(fields, hit))
	}

	return response.Result{
		Meta: &response.Meta{
			Total:   res.Total,
			Showing: len(res.Hits),
			Pages:   response.PageCount(res.Total, size),
			Page:    page,
		},
		Data: data,
	}
}
