// Package projector narrows raw search hits to the public field allow-list
// per entity type and builds the inverse index-time documents.
package projector

import (
	"strings"
	"time"

	"civicapi/internal/civic/models"
	"civicapi/internal/search"
)

// Public picks the allow-listed fields out of a raw hit source. It is total
// and idempotent: running it over already-public data only re-applies the
// allow-list.
func Public(fields []string, hit search.Hit) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, ok := hit.Source[f]; ok {
			out[f] = v
		}
	}
	return out
}

// OfficialDocument builds the index-time document for an elected official.
// Age is computed from date of birth at index time; latitude/longitude are
// kept flat for range and sort queries and mirrored into a nested location
// point for geo queries.
func OfficialDocument(o models.Official, chamber models.Chamber, now time.Time) map[string]any {
	doc := map[string]any{
		"address_city":          o.AddressCity,
		"address_complete":      o.AddressComplete,
		"address_number":        o.AddressNumber,
		"address_prefix":        o.AddressPrefix,
		"address_sec_unit_num":  o.AddressSecUnitNum,
		"address_sec_unit_type": o.AddressSecUnitType,
		"address_state":         o.AddressState,
		"address_street":        o.AddressStreet,
		"address_type":          o.AddressType,
		"address_zipcode":       o.AddressZipcode,
		"age":                   age(o.DateOfBirth, now),
		"aliases":               o.Aliases(chamber),
		"biography":             o.Biography,
		"date_of_birth":         dateValue(o.DateOfBirth),
		"entered_office":        dateValue(o.EnteredOffice),
		"ethnicity":             o.Ethnicity,
		"facebook_url":          o.FacebookURL,
		"first_name":            o.FirstName,
		"gender":                o.Gender,
		"goes_by":               o.GoesBy,
		"last_name":             o.LastName,
		"middle_name":           o.MiddleName,
		"name":                  o.Name,
		"name_slug":             o.NameSlug,
		"name_suffix":           o.NameSuffix,
		"party":                 o.Party,
		"phone":                 o.Phone,
		"photo_url":             o.PhotoURL,
		"pronunciation":         o.Pronunciation,
		"shape":                 o.Shape,
		"state_code":            o.StateCode,
		"state_code_slug":       o.StateCodeSlug,
		"state_name":            o.StateName,
		"state_name_slug":       o.StateNameSlug,
		"term_end":              dateValue(o.TermEnd),
		"title":                 o.Title,
		"twitter_handle":        o.TwitterHandle,
		"twitter_url":           o.TwitterURL,
	}

	if o.Latitude != nil && o.Longitude != nil {
		doc["latitude"] = *o.Latitude
		doc["longitude"] = *o.Longitude
		doc["location"] = map[string]any{"lat": *o.Latitude, "lon": *o.Longitude}
	}

	switch chamber {
	case models.ChamberHouse:
		doc["district"] = o.District
		doc["at_large"] = o.AtLarge
		doc["vacant"] = o.Vacant
		doc["contact_page"] = o.ContactPage
		doc["fax"] = o.Fax
		doc["website"] = o.Website
		doc["religion"] = o.Religion
		doc["openly_lgbtq"] = o.OpenlyLGBTQ
		addExternalIDs(doc, o)
	case models.ChamberSenate:
		doc["class"] = o.Class
		doc["contact_page"] = o.ContactPage
		doc["fax"] = o.Fax
		doc["website"] = o.Website
		doc["religion"] = o.Religion
		doc["openly_lgbtq"] = o.OpenlyLGBTQ
		addExternalIDs(doc, o)
	case models.ChamberGovernor:
		doc["contact_page"] = o.ContactPage
		doc["fax"] = o.Fax
		doc["website"] = o.Website
		doc["religion"] = o.Religion
		doc["openly_lgbtq"] = o.OpenlyLGBTQ
		doc["votesmart"] = o.Votesmart
	case models.ChamberCityCouncil:
		doc["city_name"] = o.CityName
		doc["city_name_slug"] = o.CityNameSlug
		doc["district"] = o.District
		doc["at_large"] = o.AtLarge
		doc["vacant"] = o.Vacant
		doc["email"] = o.Email
		doc["population"] = o.Population
	}

	return doc
}

func addExternalIDs(doc map[string]any, o models.Official) {
	doc["bioguide"] = o.Bioguide
	doc["thomas"] = o.Thomas
	doc["opensecrets"] = o.Opensecrets
	doc["votesmart"] = o.Votesmart
	doc["fec"] = o.FEC
	doc["maplight"] = o.Maplight
	doc["wikidata"] = o.Wikidata
	doc["google_entity_id"] = o.GoogleEntityID
}

// StateDocument builds the index-time document for a state record.
func StateDocument(s models.State) map[string]any {
	return map[string]any{
		"admission_date":           dateValue(s.AdmissionDate),
		"admission_number":         s.AdmissionNumber,
		"capital_city":             s.CapitalCity,
		"capital_url":              s.CapitalURL,
		"constitution_url":         s.ConstitutionURL,
		"facebook_url":             s.FacebookURL,
		"landscape_background_url": s.LandscapeBackgroundURL,
		"map_image_url":            s.MapImageURL,
		"name":                     s.StateName,
		"nickname":                 s.Nickname,
		"photo_url":                s.LandscapeBackgroundURL,
		"population":               s.Population,
		"population_rank":          s.PopulationRank,
		"shape":                    s.Shape,
		"skyline_background_url":   s.SkylineBackgroundURL,
		"state_code":               s.StateCode,
		"state_code_slug":          s.StateCodeSlug,
		"state_flag_url":           s.StateFlagURL,
		"state_name":               s.StateName,
		"state_name_slug":          s.StateNameSlug,
		"state_seal_url":           s.StateSealURL,
		"twitter_handle":           s.TwitterHandle,
		"twitter_url":              s.TwitterURL,
		"website":                  s.Website,
	}
}

// ZipCodeDocument builds the index-time document for a zip-code record.
// Comma-separated city and area-code lists are split for term queries.
func ZipCodeDocument(z models.ZipCode) map[string]any {
	return map[string]any{
		"alternate_city_names": splitList(z.AcceptableCities, ", "),
		"area_codes":           splitList(z.AreaCodes, ","),
		"city":                 z.PrimaryCity,
		"county":               z.County,
		"estimated_population": z.EstimatedPopulation,
		"latitude":             z.Latitude,
		"location":             map[string]any{"lat": z.Latitude, "lon": z.Longitude},
		"longitude":            z.Longitude,
		"state":                z.State,
		"timezone":             z.Timezone,
		"zipcode":              z.Zipcode,
	}
}

// CategoryDocument builds the index-time document for a category node with
// one level of subcategory nesting.
func CategoryDocument(c models.Category) map[string]any {
	doc := map[string]any{
		"id":        c.ID,
		"parent_id": parentID(c.ParentID),
		"name":      c.Name,
		"slug":      c.Slug,
	}
	if len(c.Subcategories) > 0 {
		subs := make([]map[string]any, 0, len(c.Subcategories))
		for _, sub := range c.Subcategories {
			subs = append(subs, map[string]any{
				"id":        sub.ID,
				"parent_id": parentID(sub.ParentID),
				"name":      sub.Name,
				"slug":      sub.Slug,
			})
		}
		doc["subcategories"] = subs
	}
	return doc
}

// TagDocument builds the index-time document for a tag.
func TagDocument(t models.Tag) map[string]any {
	return map[string]any{
		"id":   t.ID,
		"name": t.Name,
		"slug": t.Slug,
	}
}

func age(dob *time.Time, now time.Time) any {
	if dob == nil {
		return nil
	}
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

func dateValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

func parentID(id *int) any {
	if id == nil {
		return nil
	}
	return *id
}

func splitList(csv, sep string) []string {
	if csv == "" {
		return []string{}
	}
	return strings.Split(csv, sep)
}
