package test

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validator "github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/miruken-go/expect"
	"github.com/miruken-go/expect/validates/play"
	"github.com/stretchr/testify/suite"
)

type (
	// Address contains user address information.
	Address struct {
		Street string `validate:"required"`
		City   string `validate:"required"`
	}

	// User contains user information.
	User struct {
		FirstName string    `validate:"required"`
		Age       uint8     `validate:"gte=0,lte=130"`
		Email     string    `validate:"required,email"`
		Addresses []Address `validate:"required,dive"`
	}

	// UserNoTags contains user information without tags.
	UserNoTags struct {
		FirstName string
		Email     string
	}
)

type MatcherTestSuite struct {
	suite.Suite
}

func (suite *MatcherTestSuite) TestBeValid() {
	valid := User{
		FirstName: "Sean",
		Age:       40,
		Email:     "sean@rose.com",
		Addresses: []Address{{"Main", "Austin"}},
	}

	suite.Run("Valid", func() {
		result, err := play.BeValid[User]().Satisfies(expect.Value(valid))
		suite.Nil(err)
		suite.Equal(expect.Matches, result.Status)
		suite.Equal("be valid", result.Message.ExpectedMessage())
	})

	suite.Run("Invalid", func() {
		user := valid
		user.Email = "sean"
		user.Addresses = []Address{{Street: "Main"}}
		result, err := play.BeValid[User]().Satisfies(expect.Value(user))
		suite.Nil(err)
		suite.Equal(expect.DoesNotMatch, result.Status)
		suite.Contains(result.Message.Details(), "2 errors occurred")
		suite.Contains(result.Message.Details(), "User.Email")
		suite.Contains(result.Message.Details(), "User.Addresses[0].City")
	})

	suite.Run("Translated", func() {
		english    := en.New()
		uni        := ut.New(english, english)
		trans, _   := uni.GetTranslator("en")
		validate   := validator.New()
		suite.Nil(entranslations.RegisterDefaultTranslations(validate, trans))
		user := valid
		user.FirstName = ""
		result, err := play.BeValid[User](
			play.WithValidate(validate),
			play.WithTranslator(trans),
		).Satisfies(expect.Value(user))
		suite.Nil(err)
		suite.Equal(expect.DoesNotMatch, result.Status)
		suite.Contains(result.Message.Details(), "FirstName: FirstName is a required field")
	})

	suite.Run("Rules", func() {
		matcher := play.BeValid[*UserNoTags](play.WithRules(play.Rules{
			{UserNoTags{}, map[string]string{
				"FirstName": "required",
				"Email":     "required,email",
			}},
		}))
		result, err := matcher.Satisfies(expect.Value(&UserNoTags{"Sean", "sean@rose.com"}))
		suite.Nil(err)
		suite.Equal(expect.Matches, result.Status)
		result, err = matcher.Satisfies(expect.Value(&UserNoTags{Email: "sean@rose.com"}))
		suite.Nil(err)
		suite.Equal(expect.DoesNotMatch, result.Status)
	})

	suite.Run("Nil", func() {
		result, err := play.BeValid[*User]().Satisfies(expect.Value[*User](nil))
		suite.Nil(err)
		suite.Equal(expect.Fail, result.Status)
	})

	suite.Run("NotStruct", func() {
		result, err := play.BeValid[int]().Satisfies(expect.Value(1))
		suite.Nil(err)
		suite.Equal(expect.Fail, result.Status)
	})

	suite.Run("AllOf", func() {
		adult := expect.Satisfy("be an adult", func(u User) bool { return u.Age >= 18 })
		result, err := expect.AllOf(play.BeValid[User](), adult).Satisfies(expect.Value(valid))
		suite.Nil(err)
		suite.Equal(expect.Matches, result.Status)
		suite.Equal("match all of: {be valid}, and {be an adult}", result.Message.ExpectedMessage())
	})
}

func TestMatcherTestSuite(t *testing.T) {
	suite.Run(t, new(MatcherTestSuite))
}
