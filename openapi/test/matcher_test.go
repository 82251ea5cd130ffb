package test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/miruken-go/expect"
	"github.com/miruken-go/expect/openapi"
	"github.com/stretchr/testify/suite"
)

const playerApi = `{
  "openapi": "3.0.0",
  "info": { "title": "players", "version": "1.0.0" },
  "paths": {},
  "components": {
    "schemas": {
      "Player": {
        "type": "object",
        "required": ["name", "number"],
        "properties": {
          "name":   { "type": "string", "minLength": 1 },
          "number": { "type": "integer", "minimum": 0, "maximum": 99 }
        }
      }
    }
  }
}`

type Player struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
}

type MatcherTestSuite struct {
	suite.Suite
}

func (suite *MatcherTestSuite) loadDoc() *openapi3.T {
	doc, err := openapi3.NewLoader().LoadFromData([]byte(playerApi))
	suite.Require().Nil(err)
	suite.Require().Nil(doc.Validate(context.Background()))
	return doc
}

func (suite *MatcherTestSuite) TestMatchComponent() {
	doc := suite.loadDoc()

	suite.Run("Matches", func() {
		result, err := openapi.MatchComponent[Player](doc, "Player").
			Satisfies(expect.Value(Player{"Sean", 7}))
		suite.Nil(err)
		suite.Equal(expect.Matches, result.Status)
		suite.Equal(`match schema "Player"`, result.Message.ExpectedMessage())
	})

	suite.Run("DoesNotMatch", func() {
		result, err := openapi.MatchComponent[Player](doc, "Player").
			Satisfies(expect.Value(Player{"", 100}))
		suite.Nil(err)
		suite.Equal(expect.DoesNotMatch, result.Status)
		suite.NotEmpty(result.Message.Details())
	})

	suite.Run("Map", func() {
		result, err := openapi.MatchComponent[map[string]any](doc, "Player").
			Satisfies(expect.Value(map[string]any{"name": "Mark"}))
		suite.Nil(err)
		suite.Equal(expect.DoesNotMatch, result.Status)
		suite.Contains(result.Message.Details(), "number")
	})

	suite.Run("Missing", func() {
		suite.PanicsWithValue(`schema "Coach" not found`, func() {
			openapi.MatchComponent[Player](doc, "Coach")
		})
	})
}

func (suite *MatcherTestSuite) TestMatchSchema() {
	schema := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("number", openapi3.NewIntegerSchema().WithMin(0))
	schema.Required = []string{"name"}

	suite.Run("AllOf", func() {
		result, err := expect.AllOf(
			openapi.MatchSchema[*Player](schema),
			expect.Satisfy("wear a low number", func(p *Player) bool { return p.Number < 10 }),
		).Satisfies(expect.Value(&Player{"Sean", 7}))
		suite.Nil(err)
		suite.Equal(expect.Matches, result.Status)
		suite.Equal("match all of: {match schema}, and {wear a low number}", result.Message.ExpectedMessage())
	})

	suite.Run("Nil", func() {
		result, err := openapi.MatchSchema[*Player](schema).Satisfies(expect.Value[*Player](nil))
		suite.Nil(err)
		suite.Equal(expect.Fail, result.Status)
	})

	suite.Run("NotJson", func() {
		result, err := openapi.MatchSchema[func()](schema).Satisfies(expect.Value(func() {}))
		suite.Nil(err)
		suite.Equal(expect.Fail, result.Status)
	})
}

func TestMatcherTestSuite(t *testing.T) {
	suite.Run(t, new(MatcherTestSuite))
}
