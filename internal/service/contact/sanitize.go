package contact

import (
	"regexp"
	"strings"
)

// angleBrackets strips the characters used to open and close HTML tags.
// Inquiry values end up interpolated into a notification email, so tag
// delimiters are removed wholesale rather than escaped.
var angleBrackets = strings.NewReplacer("<", "", ">", "")

// sanitizeField trims surrounding whitespace and removes angle brackets.
// Trimming happens first; whitespace exposed by bracket removal is kept.
func sanitizeField(s string) string {
	return angleBrackets.Replace(strings.TrimSpace(s))
}

// emailPattern is a light plausibility check: one @ separating non-empty
// halves, with a dot somewhere in the domain. Deliverability is the SMTP
// server's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}
