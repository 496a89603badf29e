package utils

import "github.com/microcosm-cc/bluemonday"

// Goals, titles, and names are plain text everywhere the app renders them,
// so the strict policy strips markup entirely instead of allowlisting tags.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize strips HTML from user-supplied text fields.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
