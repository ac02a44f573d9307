package projector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"civicapi/internal/civic/models"
	"civicapi/internal/search"
)

type ProjectorSuite struct {
	suite.Suite
}

func TestProjectorSuite(t *testing.T) {
	suite.Run(t, new(ProjectorSuite))
}

func (s *ProjectorSuite) TestPublicAllowList() {
	hit := search.Hit{Source: map[string]any{
		"name":       "Rick Scott",
		"state_code": "FL",
		"shape":      map[string]any{"type": "polygon"},
		"aliases":    []string{"Sen. Scott"},
	}}

	out := Public([]string{"name", "state_code"}, hit)

	s.Equal(map[string]any{"name": "Rick Scott", "state_code": "FL"}, out)
}

func (s *ProjectorSuite) TestPublicIdempotent() {
	fields := []string{"name", "state_code"}
	hit := search.Hit{Source: map[string]any{"name": "x", "state_code": "NY", "shape": "drop"}}

	once := Public(fields, hit)
	twice := Public(fields, search.Hit{Source: once})

	s.Equal(once, twice)
}

func (s *ProjectorSuite) TestPublicOmitsMissingFields() {
	out := Public([]string{"name", "district"}, search.Hit{Source: map[string]any{"name": "x"}})
	s.NotContains(out, "district")
}

func (s *ProjectorSuite) TestOfficialDocument() {
	dob := time.Date(1952, 12, 1, 0, 0, 0, 0, time.UTC)
	lat, lon := 30.4, -84.3
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	o := models.Official{
		Title:       "senator",
		Party:       "republican",
		Name:        "Rick Scott",
		FirstName:   "Rick",
		LastName:    "Scott",
		StateCode:   "FL",
		Class:       "I",
		Bioguide:    "S001217",
		DateOfBirth: &dob,
		Latitude:    &lat,
		Longitude:   &lon,
	}

	doc := OfficialDocument(o, models.ChamberSenate, now)

	s.Run("age from date of birth", func() {
		s.Equal(73, doc["age"])
	})

	s.Run("iso timestamp dates", func() {
		s.Equal("1952-12-01T00:00:00.000Z", doc["date_of_birth"])
		s.Nil(doc["term_end"])
	})

	s.Run("nested location point", func() {
		s.Equal(map[string]any{"lat": 30.4, "lon": -84.3}, doc["location"])
		s.Equal(30.4, doc["latitude"])
	})

	s.Run("chamber fields", func() {
		s.Equal("I", doc["class"])
		s.Equal("S001217", doc["bioguide"])
		s.NotContains(doc, "district")
	})

	s.Run("aliases included", func() {
		s.Contains(doc["aliases"], "Sen. Scott")
	})
}

func (s *ProjectorSuite) TestOfficialDocumentOmitsLocationWithoutCoordinates() {
	doc := OfficialDocument(models.Official{Name: "x"}, models.ChamberHouse, time.Now())

	s.NotContains(doc, "location")
	s.NotContains(doc, "latitude")
}

func (s *ProjectorSuite) TestOfficialDocumentCityCouncil() {
	o := models.Official{CityName: "New York", District: "7", Population: 8400000, Email: "a@b.c"}

	doc := OfficialDocument(o, models.ChamberCityCouncil, time.Now())

	s.Equal("New York", doc["city_name"])
	s.Equal("7", doc["district"])
	s.Equal(8400000, doc["population"])
	s.NotContains(doc, "bioguide")
	s.NotContains(doc, "class")
}

func (s *ProjectorSuite) TestOfficialDocumentAgeBeforeBirthday() {
	dob := time.Date(1980, 12, 25, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	doc := OfficialDocument(models.Official{DateOfBirth: &dob}, models.ChamberGovernor, now)

	s.Equal(45, doc["age"])
}

func (s *ProjectorSuite) TestStateDocument() {
	admitted := time.Date(1845, 3, 3, 0, 0, 0, 0, time.UTC)
	st := models.State{
		StateName:              "Florida",
		StateNameSlug:          "florida",
		StateCode:              "FL",
		AdmissionDate:          &admitted,
		AdmissionNumber:        27,
		LandscapeBackgroundURL: "https://cdn.civil.services/us-states/backgrounds/1280x720/landscape/florida.jpg",
	}

	doc := StateDocument(st)

	s.Equal("Florida", doc["name"])
	s.Equal("1845-03-03T00:00:00.000Z", doc["admission_date"])
	s.Equal(doc["landscape_background_url"], doc["photo_url"])
}

func (s *ProjectorSuite) TestZipCodeDocument() {
	z := models.ZipCode{
		Zipcode:          "10001",
		PrimaryCity:      "New York",
		AcceptableCities: "Manhattan, Midtown",
		AreaCodes:        "212,646",
		Latitude:         40.75,
		Longitude:        -73.99,
	}

	doc := ZipCodeDocument(z)

	s.Equal([]string{"Manhattan", "Midtown"}, doc["alternate_city_names"])
	s.Equal([]string{"212", "646"}, doc["area_codes"])
	s.Equal(map[string]any{"lat": 40.75, "lon": -73.99}, doc["location"])
}

func (s *ProjectorSuite) TestZipCodeDocumentEmptyLists() {
	doc := ZipCodeDocument(models.ZipCode{Zipcode: "99999"})
	s.Equal([]string{}, doc["alternate_city_names"])
	s.Equal([]string{}, doc["area_codes"])
}

func (s *ProjectorSuite) TestCategoryDocument() {
	parent := 1
	c := models.Category{
		ID:   1,
		Name: "Government",
		Slug: "government",
		Subcategories: []models.Category{
			{ID: 4, ParentID: &parent, Name: "Elections", Slug: "elections"},
		},
	}

	doc := CategoryDocument(c)

	s.Nil(doc["parent_id"])
	subs := doc["subcategories"].([]map[string]any)
	s.Require().Len(subs, 1)
	s.Equal(1, subs[0]["parent_id"])
	s.Equal("elections", subs[0]["slug"])
}

func (s *ProjectorSuite) TestCategoryDocumentWithoutChildren() {
	doc := CategoryDocument(models.Category{ID: 2, Name: "Health", Slug: "health"})
	s.NotContains(doc, "subcategories")
}
