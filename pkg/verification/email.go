package verification

import (
	"regexp"
	"strings"
)

// Validator checks that a raw address matches the institutional email format
// and normalizes it to the short-form domain.
type Validator struct {
	domain      string
	aliasPrefix string
	pattern     *regexp.Regexp
}

// NewValidator creates a validator for the given institutional domain.
// aliasPrefix is the long-form domain alias that gets stripped before
// matching, e.g. "buckeyemail." turns name.1@buckeyemail.osu.edu into
// name.1@osu.edu.
func NewValidator(domain, aliasPrefix string) *Validator {
	return &Validator{
		domain:      domain,
		aliasPrefix: aliasPrefix,
		pattern:     regexp.MustCompile(`^[a-zA-Z-]+\.\d+@` + regexp.QuoteMeta(domain) + `$`),
	}
}

// Normalize strips the alias prefix and validates the address shape:
// one letter/hyphen run, a dot, one digit run, then the fixed domain.
// Validation is purely syntactic; no lookup is performed.
func (v *Validator) Normalize(raw string) (string, error) {
	email := raw
	if v.aliasPrefix != "" {
		email = strings.Replace(email, v.aliasPrefix, "", 1)
	}
	if !v.pattern.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}
