package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"civicapi/internal/civic/entity"
	"civicapi/internal/civic/models"
	"civicapi/pkg/response"
)

type fakeCivic struct {
	searchResult response.Result
	lastConfig   entity.Config
	lastQuery    models.Query
	stateKey     string
	zipcode      string
}

func (f *fakeCivic) Search(_ context.Context, cfg entity.Config, q models.Query) response.Result {
	f.lastConfig = cfg
	f.lastQuery = q
	return f.searchResult
}

func (f *fakeCivic) GetState(_ context.Context, key string) response.Result {
	f.stateKey = key
	return f.searchResult
}

func (f *fakeCivic) Zipcode(_ context.Context, zipcode string) response.Result {
	f.zipcode = zipcode
	return f.searchResult
}

func (f *fakeCivic) Government(_ context.Context, q models.Query) response.Result {
	f.lastQuery = q
	return f.searchResult
}

func (f *fakeCivic) Keyword(_ context.Context, q models.Query) response.Result {
	f.lastQuery = q
	return f.searchResult
}

func (f *fakeCivic) AppIndex(context.Context) response.Result {
	return f.searchResult
}

type fakeTaxonomy struct {
	lastSlug  string
	lastQuery models.Query
	result    response.Result
}

func (f *fakeTaxonomy) Categories(_ context.Context, q models.Query, slug string) response.Result {
	f.lastQuery = q
	f.lastSlug = slug
	return f.result
}

func (f *fakeTaxonomy) Tags(_ context.Context, q models.Query) response.Result {
	f.lastQuery = q
	return f.result
}

type HandlerSuite struct {
	suite.Suite

	civic    *fakeCivic
	taxonomy *fakeTaxonomy
	router   chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.civic = &fakeCivic{}
	s.taxonomy = &fakeTaxonomy{}
	s.router = chi.NewRouter()
	New(s.civic, s.taxonomy, nil, nil).Register(s.router)
}

func (s *HandlerSuite) get(path string) (*httptest.ResponseRecorder, response.Envelope) {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var env response.Envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func (s *HandlerSuite) TestEntitySearch() {
	s.civic.searchResult = response.Result{
		Meta: &response.Meta{Total: 1, Showing: 1, Pages: 1, Page: 1},
		Data: []map[string]any{{"name": "Rick Scott", "state_code": "FL"}},
	}

	rec, env := s.get("/senate?state=FL&party=republican")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	s.Equal(entity.TypeSenate, s.civic.lastConfig.Type)
	s.Equal("FL", s.civic.lastQuery.Get("state"))
	s.Equal("republican", s.civic.lastQuery.Get("party"))
	s.Equal(1, env.Meta.Total)
	s.Empty(env.Errors)
	s.Equal("Data Provided by Civil Services", env.Attribution.Text)
}

// Domain failures ride inside the envelope with a 200 status.
func (s *HandlerSuite) TestErrorsKeepOKStatus() {
	s.civic.searchResult = response.Result{Errors: []string{"00000 Zip Code Not Found"}}

	rec, env := s.get("/senate?zipcode=00000")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal([]string{"00000 Zip Code Not Found"}, env.Errors)
}

func (s *HandlerSuite) TestFieldsProjection() {
	s.civic.searchResult = response.Result{
		Data: []map[string]any{{"name": "Rick Scott", "party": "republican"}},
	}

	_, env := s.get("/governor?fields=name")

	data := env.Data.([]any)
	s.Require().Len(data, 1)
	record := data[0].(map[string]any)
	s.Contains(record, "name")
	s.NotContains(record, "party")
}

func (s *HandlerSuite) TestCityCouncilByCity() {
	s.get("/city-council/ny/new-york?district=7")

	s.Equal(entity.TypeCityCouncil, s.civic.lastConfig.Type)
	s.Equal("ny", s.civic.lastQuery.Get("state"))
	s.Equal("new-york", s.civic.lastQuery.Get("city"))
	s.Equal("7", s.civic.lastQuery.Get("district"))
}

func (s *HandlerSuite) TestStateDetail() {
	s.get("/state/florida")
	s.Equal("florida", s.civic.stateKey)
}

func (s *HandlerSuite) TestZipcodeDetail() {
	s.Run("valid zip hits the service", func() {
		s.get("/geolocation/zipcode/10001")
		s.Equal("10001", s.civic.zipcode)
	})

	s.Run("malformed zip is rejected locally", func() {
		for _, zip := range []string{"1234", "123456", "1000a"} {
			s.civic.zipcode = ""
			rec, env := s.get("/geolocation/zipcode/" + zip)

			s.Equal(http.StatusOK, rec.Code)
			s.Equal([]string{"Invalid Zip Code"}, env.Errors)
			s.Empty(s.civic.zipcode)
		}
	})
}

func (s *HandlerSuite) TestGovernment() {
	s.get("/government?zipcode=33301")
	s.Equal("33301", s.civic.lastQuery.Get("zipcode"))
}

func (s *HandlerSuite) TestSearch() {
	s.get("/search?keyword=ohio")
	s.Equal("ohio", s.civic.lastQuery.Get("keyword"))
}

func (s *HandlerSuite) TestCategories() {
	s.Run("listing", func() {
		s.get("/categories")
		s.Empty(s.taxonomy.lastSlug)
	})

	s.Run("by slug", func() {
		s.get("/categories/government")
		s.Equal("government", s.taxonomy.lastSlug)
	})
}

func (s *HandlerSuite) TestTags() {
	s.get("/tags?page=2")
	s.Equal("2", s.taxonomy.lastQuery.Get("page"))
}

func (s *HandlerSuite) TestPrettyOutput() {
	s.civic.searchResult = response.Result{Data: []map[string]any{{"name": "x"}}}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/senate?pretty=true", nil))

	s.Contains(rec.Body.String(), "\n  ")
}
