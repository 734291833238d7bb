package fiscal

import (
	"strings"

	"github.com/teranos/fiscal/internal/util"
)

// Parsed holds a Person's fields after normalization: A-Z and single spaces
// only, given-name fillers removed. City and State are kept for callers that
// build a longer identifier around the code.
type Parsed struct {
	GivenName       string `json:"given_name" yaml:"given_name" validate:"required"`
	PaternalSurname string `json:"paternal_surname" yaml:"paternal_surname" validate:"required"`
	MaternalSurname string `json:"maternal_surname,omitempty" yaml:"maternal_surname,omitempty"`
	City            string `json:"city,omitempty" yaml:"city,omitempty"`
	State           string `json:"state,omitempty" yaml:"state,omitempty"`
	StateCode       string `json:"state_code,omitempty" yaml:"state_code,omitempty"`
}

// HasMaternalSurname reports whether a maternal surname was supplied.
func (p Parsed) HasMaternalSurname() bool {
	return p.MaternalSurname != ""
}

// InternalConsonants returns the first consonant after the initial letter of
// the paternal surname, the maternal surname and the given name, in that
// order. Missing names and names without such a consonant contribute 'X'.
func (p Parsed) InternalConsonants() string {
	return string([]byte{
		util.SearchConsonant(p.PaternalSurname),
		util.SearchConsonant(p.MaternalSurname),
		util.SearchConsonant(p.GivenName),
	})
}

// Parse normalizes every field of p. It never fails: empty input yields empty
// output and validation is left to Generate.
func (g *Generator) Parse(p Person) Parsed {
	parsed := Parsed{
		GivenName:       g.removeFillers(util.Normalize(p.GivenName)),
		PaternalSurname: util.Normalize(p.PaternalSurname),
		MaternalSurname: util.Normalize(p.MaternalSurname),
		City:            util.Normalize(p.City),
		State:           util.Normalize(p.State),
	}

	lookup := parsed.State
	if lookup == "" {
		lookup = parsed.City
	}
	if code, ok := g.tables.StateCode(lookup); ok {
		parsed.StateCode = code
	}
	return parsed
}

// removeFillers drops leading filler tokens (MARIA, JOSE, ...) from a
// normalized given name while more than one token remains.
func (g *Generator) removeFillers(given string) string {
	tokens := strings.Fields(given)
	for len(tokens) > 1 && g.tables.IsGivenNameFiller(tokens[0]) {
		tokens = tokens[1:]
	}
	return strings.Join(tokens, " ")
}
