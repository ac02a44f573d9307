// Package entity declares the per-entity search configuration: which index
// an entity lives in, which query parameters it accepts and the clause each
// one produces, its public field allow-list, and how zip-code resolution
// narrows its results.
package entity

import (
	"strconv"
	"strings"

	"civicapi/internal/civic/projector"
	"civicapi/internal/search"
)

// Type identifies a searchable entity.
type Type string

const (
	TypeCityCouncil Type = "city-council"
	TypeGovernor    Type = "governor"
	TypeHouse       Type = "house"
	TypeSenate      Type = "senate"
	TypeState       Type = "state"
	TypeGeolocation Type = "geolocation"
)

// Filter maps one recognized query parameter to the clause(s) it adds to
// the request. Filters are applied in declaration order so compiled query
// bodies are stable for identical inputs.
type Filter struct {
	Param string
	Build func(value string) []search.Clause
}

// Config is the full declarative description of one entity type.
type Config struct {
	Type     Type
	DataType string
	Index    string
	Path     string

	PublicFields []string
	Filters      []Filter
	DefaultSort  []search.SortField

	// LatLon builds the clause for an explicit latitude/longitude pair.
	LatLon func(latitude, longitude string) search.Clause

	// ResolveZip controls whether a zipcode parameter goes through the
	// zip-code resolver. When it is false the zipcode filter, if any, is
	// declared as an ordinary Filter instead.
	ResolveZip bool

	// ZipGeo builds the geo clause added alongside the resolved zip code's
	// state match. Nil means the state match alone narrows the results.
	ZipGeo func(latitude, longitude float64) search.Clause

	// ZipNotice is the result count above which a zip-code search carries
	// a notice suggesting latitude/longitude instead. Zero disables it.
	ZipNotice int

	Extend func(doc map[string]any)
}

// All returns every entity configuration in registration order.
func All() []Config {
	return []Config{CityCouncil(), Governor(), House(), Senate(), State(), Geolocation()}
}

// ByType returns the configuration for the given entity type.
func ByType(t Type) (Config, bool) {
	for _, cfg := range All() {
		if cfg.Type == t {
			return cfg, true
		}
	}
	return Config{}, false
}

// CityCouncil configures city councilor searches.
func CityCouncil() Config {
	return Config{
		Type:     TypeCityCouncil,
		DataType: "city-councilor",
		Index:    "city_council",
		Path:     "city-council",
		PublicFields: []string{
			"address_city", "address_complete", "address_number", "address_prefix",
			"address_sec_unit_num", "address_sec_unit_type", "address_state",
			"address_street", "address_type", "address_zipcode", "age", "aliases",
			"at_large", "background_url", "city_council_calendar_url",
			"city_council_committees_url", "city_council_legislation_url",
			"city_council_url", "city_government_url", "city_name", "city_name_slug",
			"civil_services_url", "date_of_birth", "district", "email",
			"entered_office", "ethnicity", "facebook_url", "first_name", "gender",
			"goes_by", "last_name", "latitude", "longitude", "middle_name", "name",
			"name_slug", "name_suffix", "party", "phone", "photo_url", "population",
			"pronunciation", "photo_url_sizes", "state_code", "state_code_slug",
			"state_name", "state_name_slug", "term_end", "title", "twitter_handle",
			"twitter_url", "vacant",
		},
		Filters: []Filter{
			phrase("state", "state_name", "state_code", "state_code_slug"),
			phrase("city", "city_name", "city_name_slug"),
			match("district", "district"),
			match("atLarge", "at_large"),
			match("vacant", "vacant"),
			terms("title", "title"),
			terms("party", "party"),
			prefixName("name", "name^2", "first_name", "last_name"),
			terms("gender", "gender"),
			terms("ethnicity", "ethnicity"),
			match("age", "age"),
			intGTE("minAge", "age"),
			intLTE("maxAge", "age"),
			yearWindow("termEnds", "term_end"),
			yearBefore("termEndsBefore", "term_end"),
			yearAfter("termEndsAfter", "term_end"),
			yearWindow("enteredOffice", "entered_office"),
			yearBefore("enteredOfficeBefore", "entered_office"),
			yearAfter("enteredOfficeAfter", "entered_office"),
			keyword(),
		},
		LatLon:     pointClause,
		ResolveZip: true,
		ZipGeo: func(lat, lon float64) search.Clause {
			return search.GeoPoint(lat, lon)
		},
		ZipNotice: 3,
		Extend:    projector.ExtendCouncilor,
	}
}

// Governor configures governor searches.
func Governor() Config {
	return Config{
		Type:     TypeGovernor,
		DataType: "us-governor",
		Index:    "governor",
		Path:     "governor",
		PublicFields: []string{
			"aliases", "age", "address_city", "address_complete", "address_number",
			"address_prefix", "address_sec_unit_num", "address_sec_unit_type",
			"address_state", "address_street", "address_type", "address_zipcode",
			"biography", "civil_services_url", "contact_page", "date_of_birth",
			"entered_office", "ethnicity", "facebook_url", "fax", "first_name",
			"gender", "goes_by", "last_name", "latitude", "longitude", "middle_name",
			"name", "name_slug", "name_suffix", "openly_lgbtq", "party", "phone",
			"photo_url", "photo_url_sizes", "pronunciation", "religion",
			"state_code", "state_code_slug", "state_name", "state_name_slug",
			"term_end", "title", "twitter_handle", "twitter_url", "votesmart",
			"website",
		},
		Filters: []Filter{
			phrase("state", "state_code_slug", "state_name_slug", "state_code", "state_name"),
			match("votesmart", "votesmart"),
			terms("title", "title"),
			terms("party", "party"),
			bestFields("name", "name_slug^2", "name", "first_name", "last_name"),
			terms("gender", "gender"),
			terms("ethnicity", "ethnicity"),
			terms("religion", "religion"),
			terms("openlyLGBTQ", "openly_lgbtq"),
			match("age", "age"),
			intGTE("minAge", "age"),
			intLTE("maxAge", "age"),
			yearWindow("termEnds", "term_end"),
			yearBefore("termEndsBefore", "term_end"),
			yearAfter("termEndsAfter", "term_end"),
			yearWindow("enteredOffice", "entered_office"),
			yearBefore("enteredOfficeBefore", "entered_office"),
			yearAfter("enteredOfficeAfter", "entered_office"),
			keyword(),
		},
		LatLon:     pointClause,
		ResolveZip: true,
		ZipGeo: func(lat, lon float64) search.Clause {
			return search.GeoCircle(lat, lon, "0.25km")
		},
		ZipNotice: 1,
		Extend:    projector.ExtendGovernor,
	}
}

// House configures house member searches.
func House() Config {
	return Config{
		Type:     TypeHouse,
		DataType: "us-house-representative",
		Index:    "house",
		Path:     "house",
		PublicFields: []string{
			"address_city", "address_complete", "address_number", "address_prefix",
			"address_sec_unit_num", "address_sec_unit_type", "address_state",
			"address_street", "address_type", "address_zipcode", "age", "aliases",
			"at_large", "biography", "bioguide", "civil_services_url",
			"contact_page", "date_of_birth", "district", "entered_office",
			"ethnicity", "facebook_url", "fax", "fec", "first_name", "gender",
			"goes_by", "google_entity_id", "last_name", "latitude", "longitude",
			"maplight", "middle_name", "name", "name_slug", "name_suffix",
			"openly_lgbtq", "opensecrets", "party", "phone", "photo_url",
			"photo_url_sizes", "pronunciation", "religion", "state_code",
			"state_code_slug", "state_name", "state_name_slug", "term_end",
			"thomas", "title", "twitter_handle", "twitter_url", "vacant",
			"votesmart", "website", "wikidata",
		},
		Filters: append([]Filter{
			phrase("state", "state_code_slug", "state_name_slug", "state_code", "state_name"),
			match("district", "district"),
			match("atLarge", "at_large"),
			match("vacant", "vacant"),
		}, congressionalFilters()...),
		LatLon:     pointClause,
		ResolveZip: true,
		ZipGeo: func(lat, lon float64) search.Clause {
			return search.GeoPoint(lat, lon)
		},
		ZipNotice: 1,
		Extend:    projector.ExtendRepresentative,
	}
}

// Senate configures senator searches.
func Senate() Config {
	return Config{
		Type:     TypeSenate,
		DataType: "us-senator",
		Index:    "senate",
		Path:     "senate",
		PublicFields: []string{
			"address_city", "address_complete", "address_number", "address_prefix",
			"address_sec_unit_num", "address_sec_unit_type", "address_state",
			"address_street", "address_type", "address_zipcode", "age", "aliases",
			"biography", "bioguide", "civil_services_url", "class", "contact_page",
			"date_of_birth", "entered_office", "ethnicity", "facebook_url", "fax",
			"fec", "first_name", "gender", "goes_by", "google_entity_id",
			"last_name", "latitude", "longitude", "maplight", "middle_name",
			"name", "name_slug", "name_suffix", "openly_lgbtq", "opensecrets",
			"party", "phone", "photo_url", "photo_url_sizes", "pronunciation",
			"religion", "state_code", "state_code_slug", "state_name",
			"state_name_slug", "term_end", "thomas", "title", "twitter_handle",
			"twitter_url", "votesmart", "website", "wikidata",
		},
		Filters: append([]Filter{
			phrase("state", "state_code_slug", "state_name_slug", "state_code", "state_name"),
			match("class", "class"),
		}, congressionalFilters()...),
		LatLon:     pointClause,
		ResolveZip: true,
		ZipGeo: func(lat, lon float64) search.Clause {
			return search.GeoCircle(lat, lon, "1km")
		},
		ZipNotice: 2,
		Extend:    projector.ExtendSenator,
	}
}

// State configures state searches.
func State() Config {
	return Config{
		Type:     TypeState,
		DataType: "us-state",
		Index:    "state",
		Path:     "state",
		PublicFields: []string{
			"admission_date", "admission_number", "capital_city", "capital_url",
			"civil_services_url", "constitution_url", "facebook_url",
			"landscape_background_url", "map_image_url", "name", "nickname",
			"photo_url", "population", "population_rank", "skyline_background_url",
			"state_code", "state_code_slug", "state_flag_url", "state_name",
			"state_name_slug", "state_seal_url", "twitter_handle", "twitter_url",
			"website",
		},
		Filters: []Filter{
			match("name", "state_name"),
			match("slug", "state_name_slug"),
			match("code", "state_code"),
			match("nickname", "nickname"),
			intGTE("minPopulation", "population"),
			intLTE("maxPopulation", "population"),
			yearBeforeInclusive("admittedBefore", "admission_date"),
			yearAfterInclusive("admittedAfter", "admission_date"),
			keywordOver("state_name"),
		},
		DefaultSort: []search.SortField{{Field: "state_name", Order: "asc"}},
		LatLon: func(lat, lon string) search.Clause {
			return search.GeoCircle(lat, lon, "0.01km")
		},
		ResolveZip: true,
		ZipNotice:  1,
		Extend:     projector.ExtendState,
	}
}

// Geolocation configures zip-code record searches. A zipcode parameter here
// is a plain match filter, not a resolver lookup.
func Geolocation() Config {
	return Config{
		Type:  TypeGeolocation,
		Index: "geolocation",
		Path:  "geolocation",
		PublicFields: []string{
			"alternate_city_names", "area_codes", "city", "county",
			"estimated_population", "location", "state", "timezone", "zipcode",
		},
		Filters: []Filter{
			match("zipcode", "zipcode"),
			lowerMulti("city", "city", "alternate_city_names"),
			lowerMatch("county", "county"),
			lowerTerm("state", "state"),
			lowerTerm("type", "type"),
			term("areaCode", "area_codes"),
			lowerTerm("timezone", "timezone"),
			intGTE("minPopulation", "estimated_population"),
			intLTE("maxPopulation", "estimated_population"),
		},
		LatLon: pointClause,
	}
}

// congressionalFilters is the filter tail shared by the house and senate
// configurations.
func congressionalFilters() []Filter {
	return []Filter{
		match("bioguide", "bioguide"),
		match("thomas", "thomas"),
		match("opensecrets", "opensecrets"),
		match("votesmart", "votesmart"),
		match("fec", "fec"),
		match("maplight", "maplight"),
		match("wikidata", "wikidata"),
		match("googleEntityId", "google_entity_id"),
		terms("title", "title"),
		terms("party", "party"),
		phrase("name", "name", "name_slug", "first_name", "last_name"),
		terms("gender", "gender"),
		terms("ethnicity", "ethnicity"),
		terms("religion", "religion"),
		terms("openlyLGBTQ", "openly_lgbtq"),
		match("age", "age"),
		intGTE("minAge", "age"),
		intLTE("maxAge", "age"),
		yearWindow("termEnds", "term_end"),
		yearBefore("termEndsBefore", "term_end"),
		yearAfter("termEndsAfter", "term_end"),
		yearWindow("enteredOffice", "entered_office"),
		yearBefore("enteredOfficeBefore", "entered_office"),
		yearAfter("enteredOfficeAfter", "entered_office"),
		keyword(),
	}
}

func pointClause(lat, lon string) search.Clause {
	return search.GeoPoint(lat, lon)
}

func match(param, field string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		return []search.Clause{search.Match(field, v)}
	}}
}

func lowerMatch(param, field string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		return []search.Clause{search.Match(field, strings.ToLower(v))}
	}}
}

func term(param, field string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		return []search.Clause{search.Term(field, v)}
	}}
}

func lowerTerm(param, field string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		return []search.Clause{search.Term(field, strings.ToLower(v))}
	}}
}

func terms(param, field string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		return []search.Clause{search.TermsCSV(field, v)}
	}}
}

func phrase(param string, fields ...string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		return []search.Clause{search.MultiMatchPhrase(v, fields...)}
	}}
}

func bestFields(param string, fields ...string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		return []search.Clause{search.MultiMatchBest(v, fields...)}
	}}
}

func lowerMulti(param string, fields ...string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		return []search.Clause{search.MultiMatchBest(strings.ToLower(v), fields...)}
	}}
}

func prefixName(param string, fields ...string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		return []search.Clause{search.QueryString(v+"*", fields...)}
	}}
}

func keyword() Filter {
	return keywordOver("name", "first_name", "last_name", "title")
}

func keywordOver(fields ...string) Filter {
	return Filter{Param: "keyword", Build: func(v string) []search.Clause {
		return []search.Clause{search.QueryString("*"+v+"*", fields...)}
	}}
}

func intGTE(param, field string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return []search.Clause{search.RangeGTE(field, n)}
	}}
}

func intLTE(param, field string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return []search.Clause{search.RangeLTE(field, n)}
	}}
}

func yearWindow(param, field string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return []search.Clause{search.YearWindow(field, strconv.Itoa(year), strconv.Itoa(year+1))}
	}}
}

func yearBefore(param, field string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return []search.Clause{search.YearBefore(field, strconv.Itoa(year))}
	}}
}

func yearAfter(param, field string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return []search.Clause{search.YearAfter(field, strconv.Itoa(year))}
	}}
}

func yearBeforeInclusive(param, field string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return []search.Clause{search.DateLTE(field, strconv.Itoa(year))}
	}}
}

func yearAfterInclusive(param, field string) Filter {
	return Filter{Param: param, Build: func(v string) []search.Clause {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return []search.Clause{search.DateGTE(field, strconv.Itoa(year))}
	}}
}
