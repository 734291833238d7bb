package fiscal

import (
	"strings"

	"github.com/teranos/fiscal/internal/util"
)

// Sentinel replaces a blocklisted name code.
const Sentinel = "XXXX"

// blocklist is the part of Tables FilterWord needs.
type blocklist interface {
	IsBlocked(code string) bool
}

// SelectRule picks the composition rule for a particle-stripped paternal
// surname: one or two letters use RuleComposite, anything longer RuleStandard.
// The surname must not be empty.
func SelectRule(paternal string) Rule {
	if n := len(paternal); n == 1 || n == 2 {
		return RuleComposite
	}
	return RuleStandard
}

// Compose builds the four-letter name code. All names must already be
// normalized and precision-reduced, and paternal and given non-empty; an
// empty maternal surname contributes 'X'.
func Compose(rule Rule, given, paternal, maternal string) string {
	if rule == RuleComposite {
		return composeComposite(given, paternal, maternal)
	}
	return composeStandard(given, paternal, maternal)
}

// composeStandard: paternal initial, first vowel after it, maternal initial,
// given-name initial
func composeStandard(given, paternal, maternal string) string {
	return string([]byte{
		paternal[0],
		util.SearchVowel(paternal),
		maternalInitial(maternal),
		given[0],
	})
}

// composeComposite: paternal initial, maternal initial, first two letters of
// the given name (padded with X for one-letter names)
func composeComposite(given, paternal, maternal string) string {
	head := util.FirstLetters(given, 2)
	head += strings.Repeat("X", 2-len(head))
	return string([]byte{paternal[0], maternalInitial(maternal)}) + head
}

// maternalInitial returns 'X' for a missing maternal surname
func maternalInitial(maternal string) byte {
	if maternal == "" {
		return 'X'
	}
	return maternal[0]
}

// FilterWord returns Sentinel when nameCode exactly matches a blocklist entry.
func FilterWord(nameCode string, t blocklist) string {
	if t.IsBlocked(nameCode) {
		return Sentinel
	}
	return nameCode
}
