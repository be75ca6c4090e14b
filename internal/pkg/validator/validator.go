package validator

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ExceedsLength reports whether s has more than max characters.
func ExceedsLength(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Route segment: one path segment, lowercase letters, digits, - and _
var routeSegmentRegex = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

func IsValidRouteSegment(segment string) bool {
	return routeSegmentRegex.MatchString(segment)
}

// IsValidBaseURL accepts absolute http(s) URLs without query or fragment.
func IsValidBaseURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != "" && u.RawQuery == "" && u.Fragment == ""
}
