package services

import (
	"regexp"
)

var idNumberPattern = regexp.MustCompile(`^[0-9]{1,10}$`)

// ValidIDNumber reports whether an ID number is acceptable: empty, or up
// to ten digits.
func ValidIDNumber(idNumber string) bool {
	if idNumber == "" {
		return true
	}
	return idNumberPattern.MatchString(idNumber)
}
