package entity

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestByType() {
	cfg, ok := ByType(TypeSenate)
	s.Require().True(ok)
	s.Equal("senate", cfg.Index)

	_, ok = ByType(Type("unknown"))
	s.False(ok)
}

// Raw district geometry never appears in a public record.
func (s *ConfigSuite) TestShapeNeverPublic() {
	for _, cfg := range All() {
		s.NotContains(cfg.PublicFields, "shape", "entity %s", cfg.Type)
	}
}

func (s *ConfigSuite) TestZipResolution() {
	cases := []struct {
		cfg        Config
		radius     string
		pointShape bool
		threshold  int
	}{
		{CityCouncil(), "", true, 3},
		{House(), "", true, 1},
		{Governor(), "0.25km", false, 1},
		{Senate(), "1km", false, 2},
	}

	for _, tc := range cases {
		s.Run(string(tc.cfg.Type), func() {
			s.True(tc.cfg.ResolveZip)
			s.Equal(tc.threshold, tc.cfg.ZipNotice)

			s.Require().NotNil(tc.cfg.ZipGeo)
			shape := tc.cfg.ZipGeo(40.7, -73.9)["geo_shape"].(map[string]any)["shape"].(map[string]any)["shape"].(map[string]any)
			if tc.pointShape {
				s.Equal("point", shape["type"])
			} else {
				s.Equal("circle", shape["type"])
				s.Equal(tc.radius, shape["radius"])
			}
		})
	}

	s.Run("state narrows by state match alone", func() {
		cfg := State()
		s.True(cfg.ResolveZip)
		s.Nil(cfg.ZipGeo)
	})

	s.Run("geolocation treats zipcode as a plain filter", func() {
		cfg := Geolocation()
		s.False(cfg.ResolveZip)

		var params []string
		for _, f := range cfg.Filters {
			params = append(params, f.Param)
		}
		s.Contains(params, "zipcode")
	})
}

func (s *ConfigSuite) TestFilterValueLowering() {
	cfg := Geolocation()
	byParam := map[string]Filter{}
	for _, f := range cfg.Filters {
		byParam[f.Param] = f
	}

	s.Run("state term is lowercased", func() {
		clause := byParam["state"].Build("NY")[0]
		s.Equal(map[string]any{"state": "ny"}, clause["term"])
	})

	s.Run("area code term keeps its case", func() {
		clause := byParam["areaCode"].Build("212")[0]
		s.Equal(map[string]any{"area_codes": "212"}, clause["term"])
	})
}

func (s *ConfigSuite) TestEveryEntityExtendsExceptGeolocation() {
	for _, cfg := range All() {
		if cfg.Type == TypeGeolocation {
			s.Nil(cfg.Extend)
			continue
		}
		s.NotNil(cfg.Extend, "entity %s", cfg.Type)
	}
}
