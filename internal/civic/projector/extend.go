package projector

import (
	"fmt"
	"strings"
)

const publicSiteURL = "https://civil.services/"

var photoSizes = []string{"64x64", "128x128", "256x256", "512x512", "1024x1024"}

var backgroundSizes = []string{"640x360", "960x540", "1280x720", "1920x1080"}

// ExtendSenator adds the derived URL and image families to a projected
// senator record. Extension mutates in place and only ever adds keys; keys
// whose backing identifier is absent are still set, with a null value.
func ExtendSenator(doc map[string]any) {
	addPhotoSizes(doc)
	addVotesmartURLs(doc)
	addCongressionalURLs(doc)
	truncateDates(doc, "date_of_birth", "entered_office", "term_end")
	doc["civil_services_url"] = profileURL("us-senate/%s/senator/%s", doc, "state_name_slug", "name_slug")
}

// ExtendRepresentative adds the derived URL and image families to a
// projected house member record.
func ExtendRepresentative(doc map[string]any) {
	addPhotoSizes(doc)
	addVotesmartURLs(doc)
	addCongressionalURLs(doc)
	truncateDates(doc, "date_of_birth", "entered_office", "term_end")
	doc["civil_services_url"] = profileURL("us-house/%s/representative/%s", doc, "state_name_slug", "name_slug")
}

// ExtendGovernor adds photo sizes and Vote Smart links to a projected
// governor record. Governors carry no congressional identifiers.
func ExtendGovernor(doc map[string]any) {
	addPhotoSizes(doc)
	addVotesmartURLs(doc)
	truncateDates(doc, "date_of_birth", "entered_office", "term_end")
	doc["civil_services_url"] = profileURL("us-governor/%s/governor/%s", doc, "state_name_slug", "name_slug")
}

// ExtendCouncilor adds photo sizes to a projected city councilor record.
func ExtendCouncilor(doc map[string]any) {
	addPhotoSizes(doc)
	truncateDates(doc, "date_of_birth", "entered_office", "term_end")
	doc["civil_services_url"] = profileURL("city-council/%s/%s/councilor/%s", doc, "state_name_slug", "city_name_slug", "name_slug")
}

// ExtendState adds the flag, seal, map, landscape and skyline image
// families to a projected state record.
func ExtendState(doc map[string]any) {
	doc["state_flag"] = smallLarge(doc, "state_flag_url")
	doc["state_seal"] = smallLarge(doc, "state_seal_url")
	doc["map"] = smallLarge(doc, "map_image_url")
	doc["landscape"] = backgroundFamily(doc, "landscape_background_url")
	doc["skyline"] = backgroundFamily(doc, "skyline_background_url")
	truncateDates(doc, "admission_date")
	doc["civil_services_url"] = profileURL("state/%s", doc, "state_name_slug")
}

func addPhotoSizes(doc map[string]any) {
	sizes := make(map[string]any, len(photoSizes))
	base, ok := stringField(doc, "photo_url")
	for _, size := range photoSizes {
		if ok {
			sizes["size_"+size] = strings.Replace(base, "512x512", size, 1)
		} else {
			sizes["size_"+size] = nil
		}
	}
	doc["photo_url_sizes"] = sizes
}

func addVotesmartURLs(doc map[string]any) {
	id, ok := stringField(doc, "votesmart")
	doc["votesmart_url"] = candidateURL("", id, ok)
	doc["votesmart_url_tabs"] = map[string]any{
		"summary":   candidateURL("", id, ok),
		"bio":       candidateURL("biography/", id, ok),
		"votes":     candidateURL("key-votes/", id, ok),
		"positions": candidateURL("political-courage-test/", id, ok),
		"ratings":   candidateURL("evaluations/", id, ok),
		"speeches":  candidateURL("public-statements/", id, ok),
		"funding":   candidateURL("campaign-finance/", id, ok),
	}
}

func candidateURL(path, id string, ok bool) any {
	if !ok {
		return nil
	}
	return "http://votesmart.org/candidate/" + path + id
}

func addCongressionalURLs(doc map[string]any) {
	os, hasOS := stringField(doc, "opensecrets")
	doc["opensecrets_url"] = opensecretsURL("summary.php?cid=", os, hasOS)
	doc["opensecrets_url_tabs"] = map[string]any{
		"summary":      opensecretsURL("summary.php?cid=", os, hasOS),
		"elections":    opensecretsURL("elections.php?cid=", os, hasOS),
		"industries":   opensecretsURL("industries.php?cid=", os, hasOS),
		"pacs":         opensecretsURL("pacs.php?cid=", os, hasOS),
		"donors":       opensecretsURL("contrib.php?cid=", os, hasOS),
		"geography":    opensecretsURL("geog.php?cid=", os, hasOS),
		"expenditures": opensecretsURL("expend.php?cid=", os, hasOS),
		"legislation":  opensecretsURL("bills.php?cid=", os, hasOS),
		"news":         opensecretsURL("inthenews.php?cid=", os, hasOS),
		"other":        opensecretsURL("otherdata.php?cid=", os, hasOS),
	}

	doc["bioguide_url"] = idURL(doc, "bioguide", "http://bioguide.congress.gov/scripts/biodisplay.pl?index=")
	doc["fec_url"] = idURL(doc, "fec", "http://www.fec.gov/fecviewer/CandidateCommitteeDetail.do?candidateCommitteeId=")
	doc["maplight_url"] = idURL(doc, "maplight", "http://maplight.org/us-congress/legislator/")
	doc["wikidata_url"] = idURL(doc, "wikidata", "https://www.wikidata.org/wiki/")
}

func opensecretsURL(path, id string, ok bool) any {
	if !ok {
		return nil
	}
	return "https://www.opensecrets.org/politicians/" + path + id
}

func idURL(doc map[string]any, field, prefix string) any {
	id, ok := stringField(doc, field)
	if !ok {
		return nil
	}
	return prefix + id
}

func smallLarge(doc map[string]any, field string) map[string]any {
	large, ok := stringField(doc, field)
	if !ok {
		return map[string]any{"large": nil, "small": nil}
	}
	return map[string]any{
		"large": large,
		"small": strings.Replace(large, "-large.png", "-small.png", 1),
	}
}

func backgroundFamily(doc map[string]any, field string) map[string]any {
	base, ok := stringField(doc, field)
	family := make(map[string]any, len(backgroundSizes))
	for _, size := range backgroundSizes {
		if ok {
			family["size_"+size] = strings.Replace(base, "1280x720", size, 1)
		} else {
			family["size_"+size] = nil
		}
	}
	return family
}

// truncateDates keeps the YYYY-MM-DD prefix of stored timestamps. Absent
// dates come back as explicit nulls so every record carries the same keys.
func truncateDates(doc map[string]any, fields ...string) {
	for _, field := range fields {
		v, ok := stringField(doc, field)
		if !ok {
			doc[field] = nil
			continue
		}
		if len(v) > 10 {
			doc[field] = v[:10]
		}
	}
}

func profileURL(format string, doc map[string]any, slugFields ...string) string {
	args := make([]any, len(slugFields))
	for i, f := range slugFields {
		s, _ := stringField(doc, f)
		args[i] = s
	}
	return publicSiteURL + fmt.Sprintf(format, args...)
}

func stringField(doc map[string]any, field string) (string, bool) {
	s, ok := doc[field].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
