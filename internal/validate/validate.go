package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reUsername = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,32}$`)
	reGender   = regexp.MustCompile(`^(men|women|unisex)$`)
	rePhone    = regexp.MustCompile(`^\+?[0-9() -]{6,20}$`)
	reQ        = regexp.MustCompile(`^[A-Za-z0-9 _'\-]{1,50}$`)
	reFilename = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reUsername.MatchString(s)
}

// Password enforces the sign-up length window (bcrypt caps input at 72 bytes).
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 72
}

func Gender(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, reGender.MatchString(s)
}

// ID parses a positive integer path parameter.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}

// Price parses a non-negative price.
func Price(s string) (float64, bool) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return p, err == nil && p >= 0
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePhone.MatchString(s)
}

// Name validates a displayable item name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= 80
}

// Q validates a search query: trims, enforces allowed characters and max length.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// Filename strips directories and anything outside a safe character set,
// so an uploaded name can be joined under the upload dir.
func Filename(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	s = reFilename.ReplaceAllString(s, "_")
	s = strings.Trim(s, "._")
	if len(s) > 100 {
		s = s[len(s)-100:]
	}
	return s
}
