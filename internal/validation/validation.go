package validation

import (
	"regexp"
	"strings"
)

// UsernamePattern defines the valid username format: alphanumeric, dots, hyphens, underscores.
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// MaxUsernameLength bounds usernames stored in the users table.
const MaxUsernameLength = 64

// ValidateUsername checks a registration username. Returns a user-facing
// message when invalid.
func ValidateUsername(username string) (bool, string) {
	if username == "" {
		return false, "Username and password are required"
	}
	if len(username) > MaxUsernameLength {
		return false, "Username must be at most 64 characters"
	}
	if !UsernamePattern.MatchString(username) {
		return false, "Username may only contain letters, numbers, dots, hyphens and underscores"
	}
	return true, ""
}

// NormalizeSearchTerm lowercases and trims a directory search term so
// lookups are case-insensitive.
func NormalizeSearchTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so term matches literally.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// SafeRedirect returns target if it is a local path, otherwise fallback.
// Blocks protocol-relative and absolute URLs so redirects stay on-site.
func SafeRedirect(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") {
		return fallback
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, `/\`) {
		return fallback
	}
	return target
}
