// Package status turns rough freeform notes into a bulleted daily update.
package status

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// Template controls the fixed parts of a formatted status.
type Template struct {
	Header     string   // prefix before the user label
	Bullet     string   // marker placed before every line item
	MaxBullets int      // sentences rendered before the overflow line
	Overflow   string   // extra item added when sentences exceed MaxBullets
	Empty      string   // body used when there is nothing to format
	NextSteps  []string // footer items under "Next Steps:"
}

// DefaultTemplate returns the standard daily status layout.
func DefaultTemplate() Template {
	return Template{
		Header:     "Daily Status Update - ",
		Bullet:     "• ",
		MaxBullets: 5,
		Overflow:   "Additional points covered in detailed discussion.",
		Empty:      "No content to format.",
		NextSteps: []string{
			"Continuing with current priorities",
			"Addressing any blockers as needed",
		},
	}
}

// Format renders rawText as a daily status for userLabel using the default
// template.
func Format(rawText, userLabel string) string {
	return DefaultTemplate().Format(rawText, userLabel)
}

// Format renders rawText as a daily status for userLabel.
func (t Template) Format(rawText, userLabel string) string {
	var b strings.Builder
	b.WriteString(t.Header)
	b.WriteString(userLabel)
	b.WriteString("\n\n")
	b.WriteString(t.Body(rawText))
	b.WriteString("\n\nNext Steps:")
	for _, step := range t.NextSteps {
		b.WriteString("\n")
		b.WriteString(t.Bullet)
		b.WriteString(step)
	}
	return b.String()
}

// Body renders only the bullet list for rawText.
func (t Template) Body(rawText string) string {
	sentences := Sentences(rawText)
	if len(sentences) == 0 {
		return t.Empty
	}

	limit := t.MaxBullets
	if limit <= 0 || limit > len(sentences) {
		limit = len(sentences)
	}

	lines := make([]string, 0, limit+1)
	for _, s := range sentences[:limit] {
		lines = append(lines, t.Bullet+Capitalize(s)+".")
	}
	if len(sentences) > limit {
		lines = append(lines, t.Bullet+t.Overflow)
	}
	return strings.Join(lines, "\n")
}

// Normalize collapses every run of whitespace into one space and trims the
// ends.
func Normalize(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// Sentences normalizes s and splits it on runs of '.', '!' and '?'.
// Empty fragments are dropped.
func Sentences(s string) []string {
	parts := sentenceBreak.Split(Normalize(s), -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
