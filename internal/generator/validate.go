package generator

import (
	"fmt"
	"unicode/utf8"
)

// minContentLength is the floor below which a post is junk.
const minContentLength = 10

// Validation is the result of checking generated content against a
// personality's length constraint.
type Validation struct {
	Valid  bool
	Errors []string
}

// ValidateContent checks the one constraint that matters operationally.
// Lengths are counted in runes, matching what platforms count as
// characters.
func ValidateContent(content string, maxLength int) Validation {
	var errs []string

	length := utf8.RuneCountInString(content)
	if length > maxLength {
		errs = append(errs, fmt.Sprintf("Content exceeds maximum length (%d/%d)", length, maxLength))
	}
	if length < minContentLength {
		errs = append(errs, "Content is too short")
	}

	return Validation{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
