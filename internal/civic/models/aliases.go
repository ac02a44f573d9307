package models

import "strings"

// Chamber selects the alias ruleset for an official.
type Chamber int

const (
	ChamberHouse Chamber = iota
	ChamberSenate
	ChamberGovernor
	ChamberCityCouncil
)

// Aliases generates the human-readable name variants indexed for keyword
// search ("Sen. Doe", "Jane Doe (D)", ...). All of title, first name, last
// name and party must be present; otherwise no aliases are produced.
func (o Official) Aliases(chamber Chamber) []string {
	if o.Title == "" || o.FirstName == "" || o.LastName == "" || o.Party == "" {
		return []string{}
	}

	name := o.FirstName + " " + o.LastName
	last := o.LastName
	party := TitleCase(o.Party)
	if party == "" {
		// Separator-only values title-case to nothing; treat them like a
		// missing party.
		return []string{}
	}
	abbr := strings.ToUpper(party[:1])

	switch chamber {
	case ChamberHouse:
		return chamberAliases(o.Title, "Representative", "Rep.", "House ", name, last, party, abbr)
	case ChamberSenate:
		return chamberAliases(o.Title, "Senator", "Sen.", "Senate ", name, last, party, abbr)
	case ChamberGovernor:
		return []string{
			party + " " + name,
			party + " " + last,
			"Governor " + name,
			"Governor " + last,
			"Gov. " + name,
			"Gov. " + last,
			name + " [" + abbr + "]",
			name + " (" + abbr + ")",
		}
	case ChamberCityCouncil:
		title := TitleCase(o.Title)
		return []string{
			party + " " + name,
			party + " " + last,
			title + " " + name,
			title + " " + last,
			name + " [" + abbr + "]",
			name + " (" + abbr + ")",
		}
	}
	return []string{}
}

// chamberAliases builds the eight base aliases for a congressional chamber
// and, for leadership titles, four extra variants with and without the
// chamber prefix.
func chamberAliases(rawTitle, canonical, short, prefix, name, last, party, abbr string) []string {
	aliases := []string{
		party + " " + name,
		party + " " + last,
		canonical + " " + name,
		canonical + " " + last,
		short + " " + name,
		short + " " + last,
		name + " [" + abbr + "]",
		name + " (" + abbr + ")",
	}

	title := TitleCase(rawTitle)
	if title != canonical {
		aliases = append(aliases,
			title+" "+name,
			title+" "+last,
			strings.Replace(title, prefix, "", 1)+" "+name,
			strings.Replace(title, prefix, "", 1)+" "+last,
		)
	}

	return aliases
}

// TitleCase converts a slug-ish value ("house-majority-leader") into display
// casing ("House Majority Leader").
func TitleCase(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
