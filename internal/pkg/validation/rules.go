package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Institutional faculty identifier - department prefix plus a number,
	// e.g. CS-104
	FacultyIDPattern = `^[A-Z]{2,6}-\d{1,5}$`

	// ISSN as printed on journals, e.g. 2049-3630
	ISSNPattern = `^\d{4}-\d{3}[\dXx]$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email     *regexp.Regexp
	FacultyID *regexp.Regexp
	ISSN      *regexp.Regexp
}{
	Email:     regexp.MustCompile(EmailPattern),
	FacultyID: regexp.MustCompile(FacultyIDPattern),
	ISSN:      regexp.MustCompile(ISSNPattern),
}

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidFacultyID reports whether the value is a well-formed faculty code
func IsValidFacultyID(value string) bool {
	return CompiledPatterns.FacultyID.MatchString(value)
}

// IsValidISSN reports whether the value is a well-formed ISSN
func IsValidISSN(value string) bool {
	return CompiledPatterns.ISSN.MatchString(value)
}
