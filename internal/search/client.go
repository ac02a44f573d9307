package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Hit is one raw document returned by the backend.
type Hit struct {
	Source map[string]any `json:"_source"`
}

// Result is the slice of the backend response this API depends on.
type Result struct {
	Total int
	Hits  []Hit
}

// Total arrives as a bare integer from older backends and as
// {"value": n, "relation": ...} from newer ones; accept both.
type totalField struct {
	Value int `json:"value"`
}

type hitsEnvelope struct {
	Total json.RawMessage `json:"total"`
	Hits  []Hit           `json:"hits"`
}

type searchResponse struct {
	Hits hitsEnvelope `json:"hits"`
}

func (r *Result) fromResponse(resp searchResponse) error {
	r.Hits = resp.Hits.Hits
	if len(resp.Hits.Total) == 0 {
		return nil
	}
	var n int
	if err := json.Unmarshal(resp.Hits.Total, &n); err == nil {
		r.Total = n
		return nil
	}
	var t totalField
	if err := json.Unmarshal(resp.Hits.Total, &t); err != nil {
		return fmt.Errorf("decode hits.total: %w", err)
	}
	r.Total = t.Value
	return nil
}

// Client executes search requests against the backend over HTTP.
type Client struct {
	http *resty.Client
}

// NewClient builds a search client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Client{http: http}
}

// Search executes the request and decodes the hit envelope.
func (c *Client) Search(ctx context.Context, req Request) (Result, error) {
	var decoded searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req.Body()).
		SetResult(&decoded).
		Post(fmt.Sprintf("/%s/_search", req.Index))
	if err != nil {
		return Result{}, fmt.Errorf("search %s: %w", req.Index, err)
	}
	if resp.IsError() {
		return Result{}, fmt.Errorf("search %s: backend returned %s", req.Index, resp.Status())
	}

	var result Result
	if err := result.fromResponse(decoded); err != nil {
		return Result{}, fmt.Errorf("search %s: %w", req.Index, err)
	}
	return result, nil
}
