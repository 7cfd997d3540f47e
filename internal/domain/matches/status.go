package matches

import (
	"strings"
	"unicode"
)

// Status mirrors the chess.com lifecycle vocabulary for team matches.
type Status string

const (
	StatusFinished   Status = "finished"
	StatusInProgress Status = "in_progress"
	StatusRegistered Status = "registered"
)

// canonical keeps resolution order stable: prefix and substring lookups
// return the first hit in this order.
var canonical = []Status{StatusFinished, StatusInProgress, StatusRegistered}

// CanonicalStatuses returns the closed status vocabulary in canonical order.
func CanonicalStatuses() []Status {
	out := make([]Status, len(canonical))
	copy(out, canonical)
	return out
}

// Valid reports whether s is one of the canonical statuses.
func (s Status) Valid() bool {
	for _, c := range canonical {
		if s == c {
			return true
		}
	}
	return false
}

// DefaultStatuses are the statuses of interest when the caller does not say:
// matches still running or not yet started.
func DefaultStatuses() []Status {
	return []Status{StatusInProgress, StatusRegistered}
}

// ParseStatuses expands user-entered status abbreviations into canonical
// statuses. The input may be a full status name, a one-letter abbreviation,
// several abbreviations run together ("fi"), or tokens separated by commas
// and/or whitespace ("fi, reg"). Unresolvable tokens are returned in dropped.
//
// A short all-letter input is read as independent one-letter abbreviations,
// so "fi" alone means finished + in_progress. As soon as separators appear,
// each token resolves on its own and "fi" becomes a prefix of "finished".
func ParseStatuses(raw string) (statuses []Status, dropped []string) {
	return ParseStatusList(tokenize(raw))
}

// ParseStatusList resolves an already-split token list. Duplicates collapse
// to the first occurrence, preserving encounter order.
func ParseStatusList(tokens []string) (statuses []Status, dropped []string) {
	seen := make(map[Status]bool, len(canonical))
	for _, token := range tokens {
		status, ok := resolve(strings.ToLower(strings.TrimSpace(token)))
		if !ok {
			dropped = append(dropped, token)
			continue
		}
		if !seen[status] {
			seen[status] = true
			statuses = append(statuses, status)
		}
	}
	return statuses, dropped
}

func tokenize(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if isAlpha(trimmed) {
		runes := []rune(trimmed)
		if len(runes) < len(canonical) {
			tokens := make([]string, len(runes))
			for i, r := range runes {
				tokens[i] = string(r)
			}
			return tokens
		}
		return []string{trimmed}
	}
	return strings.FieldsFunc(trimmed, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func resolve(token string) (Status, bool) {
	if token == "" {
		return "", false
	}
	for _, s := range canonical {
		if string(s) == token {
			return s, true
		}
	}
	for _, s := range canonical {
		if strings.HasPrefix(string(s), token) {
			return s, true
		}
	}
	for _, s := range canonical {
		if strings.Contains(string(s), token) {
			return s, true
		}
	}
	// "u" as in "upcoming" is an accepted synonym for registered.
	if strings.HasPrefix(token, "u") {
		return StatusRegistered, true
	}
	return "", false
}
