// Package models holds the read-side view models for civic reference data
// and the per-request query parameter bag.
package models

import (
	"encoding/json"
	"time"
)

// Query is the flat bag of optional, untyped HTTP query parameters consumed
// by every entity search. Unrecognized keys are ignored by the compiler.
type Query map[string]string

// Get returns the named parameter or "".
func (q Query) Get(name string) string { return q[name] }

// Has reports whether the named parameter is present and non-empty.
func (q Query) Has(name string) bool { return q[name] != "" }

// Clone returns a shallow copy; aggregators mutate copies, never the
// caller's bag.
func (q Query) Clone() Query {
	out := make(Query, len(q))
	for k, v := range q {
		out[k] = v
	}
	return out
}

// Official is an elected-official record as stored in the relational store.
// Presence of the external-ID and chamber-specific fields varies by chamber;
// latitude and longitude are both present or both absent.
type Official struct {
	StateName     string
	StateNameSlug string
	StateCode     string
	StateCodeSlug string

	// City-council only.
	CityName     string
	CityNameSlug string
	District     string
	AtLarge      bool
	Vacant       bool
	Population   int
	Email        string

	// Senate only.
	Class string

	Bioguide       string
	Thomas         string
	Opensecrets    string
	Votesmart      string
	FEC            string
	Maplight       string
	Wikidata       string
	GoogleEntityID string

	Title         string
	Party         string
	Name          string
	NameSlug      string
	FirstName     string
	MiddleName    string
	LastName      string
	NameSuffix    string
	GoesBy        string
	Pronunciation string
	Gender        string
	Ethnicity     string
	Religion      string
	OpenlyLGBTQ   string

	DateOfBirth   *time.Time
	EnteredOffice *time.Time
	TermEnd       *time.Time

	Biography string
	Phone     string
	Fax       string

	Latitude  *float64
	Longitude *float64

	AddressComplete    string
	AddressNumber      string
	AddressPrefix      string
	AddressStreet      string
	AddressSecUnitType string
	AddressSecUnitNum  string
	AddressCity        string
	AddressState       string
	AddressZipcode     string
	AddressType        string

	Website       string
	ContactPage   string
	FacebookURL   string
	TwitterHandle string
	TwitterURL    string
	PhotoURL      string

	// District/office geometry, search-only, never returned raw.
	Shape json.RawMessage
}

// State is a US state reference record.
type State struct {
	StateName              string
	StateNameSlug          string
	StateCode              string
	StateCodeSlug          string
	Nickname               string
	Website                string
	AdmissionDate          *time.Time
	AdmissionNumber        int
	CapitalCity            string
	CapitalURL             string
	Population             int
	PopulationRank         int
	ConstitutionURL        string
	StateFlagURL           string
	StateSealURL           string
	MapImageURL            string
	LandscapeBackgroundURL string
	SkylineBackgroundURL   string
	TwitterHandle          string
	TwitterURL             string
	FacebookURL            string
	Shape                  json.RawMessage
}

// ZipCode is an immutable zip-code reference record.
type ZipCode struct {
	Zipcode             string
	PrimaryCity         string
	AcceptableCities    string
	State               string
	County              string
	Timezone            string
	AreaCodes           string
	Latitude            float64
	Longitude           float64
	EstimatedPopulation int
	Shape               json.RawMessage
}

// Category is a taxonomy node; one level of nesting via ParentID.
type Category struct {
	ID            int
	ParentID      *int
	Name          string
	Slug          string
	Subcategories []Category
}

// Tag is a flat taxonomy node.
type Tag struct {
	ID   int
	Name string
	Slug string
}
