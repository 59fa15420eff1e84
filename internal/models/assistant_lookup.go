package models

import "time"

// Assistant lookup outcome constants
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
)

// AssistantLookup represents a per-keyword question count by outcome.
// Fallback rows use an empty keyword.
type AssistantLookup struct {
	Keyword    string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
