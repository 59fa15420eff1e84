// Package assistant answers free-text questions from an ordered table of
// keyword/response pairs.
package assistant

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultFallback is returned when no keyword matches a question.
const DefaultFallback = "I'm sorry, I don't have information about that topic. Please contact HR or your manager for assistance."

// MatchPolicy selects how overlapping keywords are resolved.
type MatchPolicy string

const (
	// FirstMatch returns the first entry in table order whose keyword occurs
	// in the question.
	FirstMatch MatchPolicy = "first"
	// LongestMatch returns the matching entry with the longest keyword; ties
	// go to the earlier entry.
	LongestMatch MatchPolicy = "longest"
)

// ErrEmptyKeyword is returned when a knowledge base contains a blank keyword.
var ErrEmptyKeyword = errors.New("knowledge entry has an empty keyword")

// KnowledgeEntry pairs a lowercase keyword with its canned response.
type KnowledgeEntry struct {
	Keyword  string `yaml:"keyword" json:"keyword"`
	Response string `yaml:"response" json:"response"`
}

// Answer is the outcome of a lookup.
type Answer struct {
	Keyword  string // empty when Matched is false
	Response string
	Matched  bool
}

// KnowledgeBase is an immutable ordered table plus the fallback wording.
type KnowledgeBase struct {
	entries  []KnowledgeEntry
	fallback string
	policy   MatchPolicy
}

// NewKnowledgeBase copies entries into a new knowledge base. Keywords are
// trimmed and lowercased. An empty fallback selects DefaultFallback and an
// empty policy selects FirstMatch.
func NewKnowledgeBase(entries []KnowledgeEntry, fallback string, policy MatchPolicy) (*KnowledgeBase, error) {
	switch policy {
	case "":
		policy = FirstMatch
	case FirstMatch, LongestMatch:
	default:
		return nil, fmt.Errorf("unknown match policy %q", policy)
	}
	if fallback == "" {
		fallback = DefaultFallback
	}

	table := make([]KnowledgeEntry, 0, len(entries))
	for i, e := range entries {
		kw := strings.ToLower(strings.TrimSpace(e.Keyword))
		if kw == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyKeyword)
		}
		table = append(table, KnowledgeEntry{Keyword: kw, Response: e.Response})
	}

	return &KnowledgeBase{entries: table, fallback: fallback, policy: policy}, nil
}

// Entries returns a copy of the table in priority order.
func (kb *KnowledgeBase) Entries() []KnowledgeEntry {
	out := make([]KnowledgeEntry, len(kb.entries))
	copy(out, kb.entries)
	return out
}

// Fallback returns the no-match response.
func (kb *KnowledgeBase) Fallback() string {
	return kb.fallback
}

// Policy returns the configured match policy.
func (kb *KnowledgeBase) Policy() MatchPolicy {
	return kb.policy
}

// Lookup resolves a question against the table.
func (kb *KnowledgeBase) Lookup(question string) Answer {
	q := strings.ToLower(question)
	if q == "" {
		return Answer{Response: kb.fallback}
	}

	best := -1
	for i, e := range kb.entries {
		if !strings.Contains(q, e.Keyword) {
			continue
		}
		if kb.policy == FirstMatch {
			best = i
			break
		}
		if best < 0 || len(e.Keyword) > len(kb.entries[best].Keyword) {
			best = i
		}
	}

	if best < 0 {
		return Answer{Response: kb.fallback}
	}
	e := kb.entries[best]
	return Answer{Keyword: e.Keyword, Response: e.Response, Matched: true}
}

// Respond returns the response for a question, or the fallback.
func (kb *KnowledgeBase) Respond(question string) string {
	return kb.Lookup(question).Response
}

// Respond answers a question with first-match semantics over table, falling
// back to DefaultFallback. Keywords are expected to be lowercase already.
func Respond(question string, table []KnowledgeEntry) string {
	q := strings.ToLower(question)
	if q == "" {
		return DefaultFallback
	}
	for _, e := range table {
		if e.Keyword != "" && strings.Contains(q, e.Keyword) {
			return e.Response
		}
	}
	return DefaultFallback
}
