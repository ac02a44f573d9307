package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type AliasesSuite struct {
	suite.Suite
}

func TestAliasesSuite(t *testing.T) {
	suite.Run(t, new(AliasesSuite))
}

func (s *AliasesSuite) TestSenatorAliases() {
	o := Official{Title: "senator", FirstName: "Rick", LastName: "Scott", Party: "republican"}

	aliases := o.Aliases(ChamberSenate)

	s.Require().Len(aliases, 8)
	s.Contains(aliases, "Republican Rick Scott")
	s.Contains(aliases, "Republican Scott")
	s.Contains(aliases, "Senator Rick Scott")
	s.Contains(aliases, "Sen. Scott")
	s.Contains(aliases, "Rick Scott [R]")
	s.Contains(aliases, "Rick Scott (R)")
}

// Leadership titles add four extra variants on top of the chamber's eight.
func (s *AliasesSuite) TestLeadershipAliases() {
	o := Official{Title: "senate-majority-leader", FirstName: "Mitch", LastName: "McConnell", Party: "republican"}

	aliases := o.Aliases(ChamberSenate)

	s.Require().Len(aliases, 12)
	s.Contains(aliases, "Senate Majority Leader Mitch McConnell")
	s.Contains(aliases, "Senate Majority Leader McConnell")
	s.Contains(aliases, "Majority Leader Mitch McConnell")
	s.Contains(aliases, "Majority Leader McConnell")
}

func (s *AliasesSuite) TestRepresentativeAliases() {
	o := Official{Title: "representative", FirstName: "Jane", LastName: "Doe", Party: "democrat"}

	aliases := o.Aliases(ChamberHouse)

	s.Require().Len(aliases, 8)
	s.Contains(aliases, "Rep. Jane Doe")
	s.Contains(aliases, "Representative Doe")
	s.Contains(aliases, "Jane Doe (D)")
}

func (s *AliasesSuite) TestGovernorAliases() {
	o := Official{Title: "governor", FirstName: "Rick", LastName: "Scott", Party: "republican"}

	aliases := o.Aliases(ChamberGovernor)

	s.Require().Len(aliases, 8)
	s.Contains(aliases, "Gov. Scott")
	s.Contains(aliases, "Governor Rick Scott")
	s.Contains(aliases, "Republican Scott")
	s.Contains(aliases, "Rick Scott (R)")
}

func (s *AliasesSuite) TestCouncilorAliases() {
	o := Official{Title: "council-member", FirstName: "Ann", LastName: "Lee", Party: "independent"}

	aliases := o.Aliases(ChamberCityCouncil)

	s.Require().Len(aliases, 6)
	s.Contains(aliases, "Council Member Ann Lee")
	s.Contains(aliases, "Independent Lee")
	s.Contains(aliases, "Ann Lee [I]")
}

func (s *AliasesSuite) TestMissingFieldsProduceNone() {
	cases := []struct {
		name string
		o    Official
	}{
		{"no party", Official{Title: "senator", FirstName: "A", LastName: "B"}},
		{"no title", Official{FirstName: "A", LastName: "B", Party: "democrat"}},
		{"no last name", Official{Title: "senator", FirstName: "A", Party: "democrat"}},
		{"separator-only party", Official{Title: "senator", FirstName: "Jane", LastName: "Doe", Party: "-"}},
		{"underscore-only party", Official{Title: "governor", FirstName: "Jane", LastName: "Doe", Party: "_ _"}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.Empty(tc.o.Aliases(ChamberSenate))
		})
	}
}

func (s *AliasesSuite) TestTitleCase() {
	s.Equal("House Majority Leader", TitleCase("house-majority-leader"))
	s.Equal("New York", TitleCase("new_york"))
	s.Equal("Democrat", TitleCase(" DEMOCRAT "))
	s.Equal("", TitleCase(""))
}
