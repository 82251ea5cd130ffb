package test

import (
	"testing"

	"github.com/miruken-go/expect"
	govalidator "github.com/miruken-go/expect/validates/go"
	"github.com/stretchr/testify/suite"
)

type (
	Address struct {
		Street string `valid:"required"`
		City   string `valid:"required"`
	}

	User struct {
		FirstName string  `valid:"required"`
		Email     string  `valid:"required,email"`
		Address   Address
	}
)

type MatcherTestSuite struct {
	suite.Suite
}

func (suite *MatcherTestSuite) TestBeValid() {
	valid := User{"Sean", "sean@rose.com", Address{"Main", "Austin"}}

	suite.Run("Valid", func() {
		result, err := govalidator.BeValid[User]().Satisfies(expect.Value(valid))
		suite.Nil(err)
		suite.Equal(expect.Matches, result.Status)
	})

	suite.Run("Invalid", func() {
		user := valid
		user.Email = "sean"
		result, err := govalidator.BeValid[*User]().Satisfies(expect.Value(&user))
		suite.Nil(err)
		suite.Equal(expect.DoesNotMatch, result.Status)
		suite.Contains(result.Message.Details(), "Email: ")
		suite.Contains(result.Message.Details(), "sean does not validate as email")
	})

	suite.Run("NotStruct", func() {
		result, err := govalidator.BeValid[string]().Satisfies(expect.Value("x"))
		suite.Nil(err)
		suite.Equal(expect.Fail, result.Status)
	})
}

func (suite *MatcherTestSuite) TestStrings() {
	suite.Run("Email", func() {
		result, _ := govalidator.BeEmail().Satisfies(expect.Value("sean@rose.com"))
		suite.Equal(expect.Matches, result.Status)
		result, _ = govalidator.BeEmail().Satisfies(expect.Value("sean"))
		suite.Equal(expect.DoesNotMatch, result.Status)
	})

	suite.Run("AllOf", func() {
		result, err := expect.AllOf(govalidator.BeURL(),
			expect.Satisfy("use https", func(s string) bool {
				return len(s) > 8 && s[:8] == "https://"
			})).Satisfies(expect.Value("http://miruken.com"))
		suite.Nil(err)
		suite.Equal(expect.DoesNotMatch, result.Status)
		suite.Equal("match all of: {be a url}, and {use https}", result.Message.ExpectedMessage())
	})
}

func TestMatcherTestSuite(t *testing.T) {
	suite.Run(t, new(MatcherTestSuite))
}
