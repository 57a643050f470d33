package validator

import (
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// UsernameTag is the struct tag that enforces the GitHub username grammar.
const UsernameTag = "github_username"

const maxUsernameLength = 39

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+(-[a-zA-Z0-9]+)*$`)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := Register(validate); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// Username reports whether s is an acceptable GitHub username: 1-39
// alphanumeric characters, with single hyphens allowed only between runs.
func Username(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 1 || n > maxUsernameLength {
		return false
	}
	return usernamePattern.MatchString(s)
}

// Register installs the username rule on v. Gin's binding engine and the
// package validator both go through here so they share one grammar.
func Register(v *validator.Validate) error {
	return v.RegisterValidation(UsernameTag, func(fl validator.FieldLevel) bool {
		return Username(fl.Field().String())
	})
}
