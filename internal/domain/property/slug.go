package property

import (
	"regexp"
	"strconv"
	"strings"
)

var slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses every run of non [a-z0-9] into a single dash.
func Slugify(s string) string {
	return strings.Trim(slugSeparator.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// SlugCandidate returns base for attempt 0 and base-N for attempt N.
func SlugCandidate(base string, attempt int) string {
	if attempt <= 0 {
		return base
	}
	return base + "-" + strconv.Itoa(attempt)
}
