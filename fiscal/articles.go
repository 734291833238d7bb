package fiscal

import (
	"strings"

	"github.com/teranos/fiscal/errors"
)

// ParticleMatch selects how particles are found in a surname.
type ParticleMatch string

const (
	// MatchSubstring removes a particle wherever its letters occur, including
	// inside words ("DELGADO" loses "DE" and "DEL"). This is the rule as
	// published and the default.
	MatchSubstring ParticleMatch = "substring"
	// MatchToken removes a particle only when it is a whole word (or, for
	// "DE LA", a whole run of words).
	MatchToken ParticleMatch = "token"
)

// ParseParticleMatch validates a configured match mode.
func ParseParticleMatch(s string) (ParticleMatch, error) {
	switch m := ParticleMatch(strings.ToLower(strings.TrimSpace(s))); m {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchToken:
		return MatchToken, nil
	default:
		return "", errors.WithHint(
			errors.Newf("unknown particle match mode %q", s),
			"use \"substring\" or \"token\"",
		)
	}
}

// StripArticles removes particles from a surname and trims the result.
// Every particle in the list is tried, in order.
func StripArticles(surname string, particles []string, mode ParticleMatch) string {
	if mode == MatchToken {
		return stripTokens(surname, particles)
	}
	for _, p := range particles {
		if p != "" && strings.Contains(surname, p) {
			surname = strings.TrimSpace(strings.ReplaceAll(surname, p, ""))
		}
	}
	return surname
}

// stripTokens removes whole-word particles, preferring the longest particle
// that matches at each position
func stripTokens(surname string, particles []string) string {
	words := make([][]string, 0, len(particles))
	for _, p := range particles {
		if w := strings.Fields(p); len(w) > 0 {
			words = append(words, w)
		}
	}

	tokens := strings.Fields(surname)
	kept := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		n := longestMatch(tokens[i:], words)
		if n == 0 {
			kept = append(kept, tokens[i])
			n = 1
		}
		i += n
	}
	return strings.Join(kept, " ")
}

// longestMatch returns how many leading tokens the longest matching particle covers
func longestMatch(tokens []string, particles [][]string) int {
	best := 0
	for _, p := range particles {
		if len(p) <= best || len(p) > len(tokens) {
			continue
		}
		match := true
		for j := range p {
			if tokens[j] != p[j] {
				match = false
				break
			}
		}
		if match {
			best = len(p)
		}
	}
	return best
}
