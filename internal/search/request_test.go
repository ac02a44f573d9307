package search

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RequestSuite struct {
	suite.Suite
}

func TestRequestSuite(t *testing.T) {
	suite.Run(t, new(RequestSuite))
}

func (s *RequestSuite) TestBodyPagination() {
	body := Request{Index: "civil_services_senate", From: 30, Size: 30}.Body()

	s.Equal(30, body["from"])
	s.Equal(30, body["size"])
	s.NotContains(body, "query")
	s.NotContains(body, "sort")
}

func (s *RequestSuite) TestBodySortOrder() {
	body := Request{
		Sort: []SortField{
			{Field: "state_code", Order: "asc"},
			{Field: "last_name", Order: "desc"},
		},
	}.Body()

	sort, ok := body["sort"].([]map[string]any)
	s.Require().True(ok)
	s.Require().Len(sort, 2)
	s.Equal(map[string]any{"state_code": map[string]any{"order": "asc"}}, sort[0])
	s.Equal(map[string]any{"last_name": map[string]any{"order": "desc"}}, sort[1])
}

func (s *RequestSuite) TestBodyQueryWrapsMust() {
	body := Request{
		Must: []Clause{Match("state_code", "NY"), Term("party", "democrat")},
	}.Body()

	query, ok := body["query"].(map[string]any)
	s.Require().True(ok)
	boolQuery, ok := query["bool"].(map[string]any)
	s.Require().True(ok)
	must, ok := boolQuery["must"].([]Clause)
	s.Require().True(ok)
	s.Len(must, 2)
}

func (s *RequestSuite) TestClauses() {
	s.Run("match", func() {
		s.Equal(Clause{"match": map[string]any{"district": "7"}}, Match("district", "7"))
	})

	s.Run("terms csv", func() {
		clause := TermsCSV("area_codes", "212,718")
		inner := clause["terms"].(map[string]any)
		s.Equal([]string{"212", "718"}, inner["area_codes"])
		s.Equal(1, inner["minimum_should_match"])
	})

	s.Run("multi match phrase", func() {
		inner := MultiMatchPhrase("john smith", "name", "name_slug")["multi_match"].(map[string]any)
		s.Equal("phrase", inner["type"])
		s.Equal([]string{"name", "name_slug"}, inner["fields"])
	})

	s.Run("query string keeps caller decoration", func() {
		inner := QueryString("smith*", "name^2", "last_name")["query_string"].(map[string]any)
		s.Equal("smith*", inner["query"])
		s.Equal("AUTO", inner["fuzziness"])
	})

	s.Run("year window", func() {
		inner := YearWindow("term_end", "2020", "2021")["range"].(map[string]any)["term_end"].(map[string]any)
		s.Equal("2020", inner["gte"])
		s.Equal("2021", inner["lte"])
		s.Equal("yyyy", inner["format"])
	})
}

// Coordinates go out longitude-first; getting the pair backwards places
// every official in the wrong hemisphere.
func (s *RequestSuite) TestGeoCoordinateOrder() {
	s.Run("point", func() {
		shape := GeoPoint("40.7", "-73.9")["geo_shape"].(map[string]any)["shape"].(map[string]any)["shape"].(map[string]any)
		s.Equal([]any{"-73.9", "40.7"}, shape["coordinates"])
		s.Equal("point", shape["type"])
		s.NotContains(shape, "radius")
	})

	s.Run("circle", func() {
		shape := GeoCircle("40.7", "-73.9", "0.25km")["geo_shape"].(map[string]any)["shape"].(map[string]any)["shape"].(map[string]any)
		s.Equal("circle", shape["type"])
		s.Equal("0.25km", shape["radius"])
	})
}
