package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/fiscal/tables"
)

var defaultParticles = []string{"DE", "DEL", "LA", "LOS", "LAS", "Y", "MC", "MAC", "VON", "VAN", "DE LA"}

func TestReducePrecision(t *testing.T) {
	d := tables.Default()

	tests := []struct {
		in   string
		want string
	}{
		{"CHAVEZ", "CAVEZ"},
		{"LLAMAS", "LAMAS"},
		{"CH", "C"},
		{"C", "C"},
		{"", ""},
		{"ACHA", "ACHA"}, // only the head is reduced
		{"CHCH", "CCH"},  // once
		{"RRAMIREZ", "RRAMIREZ"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ReducePrecision(tt.in, d))
		})
	}
}

func TestStripArticles_Substring(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DE LA O", "O"},
		{"DE LA CRUZ", "CRUZ"},
		{"DEL RIO", "L RIO"}, // "DE" is tried before "DEL"
		{"VON HUMBOLDT", "HUMBOLDT"},
		{"MC DONALD", "DONALD"},
		{"GOMEZ", "GOMEZ"},
		{"DE LA", ""},
		// matches are not word-bounded
		{"DELGADO", "LGADO"},
		{"LARA", "RA"},
		{"REYES", "REES"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripArticles(tt.in, defaultParticles, MatchSubstring))
		})
	}
}

func TestStripArticles_DeLaAsUnit(t *testing.T) {
	// "DE LA" is listed last, so with the full list "DE" and "LA" have
	// already removed both halves by the time it is tried.
	assert.Equal(t, "O", StripArticles("DE LA O", defaultParticles, MatchSubstring))

	// On its own it removes the phrase, not the words separately.
	assert.Equal(t, "O", StripArticles("DE LA O", []string{"DE LA"}, MatchSubstring))
	assert.Equal(t, "DEL O", StripArticles("DEL O", []string{"DE LA"}, MatchSubstring))

	// Listed first it removes the whole phrase before "DE" or "LA" are tried.
	first := append([]string{"DE LA"}, defaultParticles[:10]...)
	assert.Equal(t, "O", StripArticles("DE LA O", first, MatchSubstring))
	assert.Equal(t, "CRUZ", StripArticles("DE LA CRUZ", first, MatchSubstring))

	// Without "LA" in the list the article survives.
	assert.Equal(t, "LA O", StripArticles("DE LA O", []string{"DE"}, MatchSubstring))
}

func TestStripArticles_IteratesWholeList(t *testing.T) {
	// both DE and LOS must go, even though DE matches first
	assert.Equal(t, "SANTOS", StripArticles("DE LOS SANTOS", []string{"DE", "LOS"}, MatchSubstring))
}

func TestStripArticles_Token(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DE LA O", "O"},
		{"DE LA CRUZ", "CRUZ"},
		{"DELGADO", "DELGADO"},
		{"LARA", "LARA"},
		{"REYES", "REYES"},
		{"SANCHEZ DE LA BARQUERA", "SANCHEZ BARQUERA"},
		{"DE LA", ""},
		{"LA DE", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripArticles(tt.in, defaultParticles, MatchToken))
		})
	}
}

func TestParseParticleMatch(t *testing.T) {
	m, err := ParseParticleMatch("")
	require.NoError(t, err)
	assert.Equal(t, MatchSubstring, m)

	m, err = ParseParticleMatch(" Token ")
	require.NoError(t, err)
	assert.Equal(t, MatchToken, m)

	_, err = ParseParticleMatch("regex")
	assert.Error(t, err)
}

func TestSelectRule(t *testing.T) {
	assert.Equal(t, RuleComposite, SelectRule("O"))
	assert.Equal(t, RuleComposite, SelectRule("EK"))
	assert.Equal(t, RuleStandard, SelectRule("ORO"))
	assert.Equal(t, RuleStandard, SelectRule("GOMEZ"))
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name                      string
		rule                      Rule
		given, paternal, maternal string
		want                      string
	}{
		{"standard", RuleStandard, "JUAN", "GOMEZ", "PEREZ", "GOPJ"},
		{"standard no vowel", RuleStandard, "JUAN", "BRM", "PEREZ", "BXPJ"},
		{"standard initial vowel skipped", RuleStandard, "JUAN", "ARELLANO", "PEREZ", "AEPJ"},
		{"standard no maternal", RuleStandard, "JUAN", "GOMEZ", "", "GOXJ"},
		{"composite", RuleComposite, "ALVARO", "O", "LOZANO", "OLAL"},
		{"composite no maternal", RuleComposite, "ERNESTO", "EK", "", "EXER"},
		{"composite compound given", RuleComposite, "A BETH", "EK", "RUIZ", "ERAB"},
		{"composite short given", RuleComposite, "J", "EK", "RUIZ", "ERJX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.rule, tt.given, tt.paternal, tt.maternal))
		})
	}
}

func TestFilterWord(t *testing.T) {
	tb, err := tables.New(tables.File{Schema: "1.0.0", Blocklist: []string{"ABCD"}})
	require.NoError(t, err)

	assert.Equal(t, Sentinel, FilterWord("ABCD", tb))
	assert.Equal(t, "ABCE", FilterWord("ABCE", tb))
	assert.Equal(t, "abcd", FilterWord("abcd", tb))
	assert.Equal(t, "BUEI", FilterWord("BUEI", tb), "only the injected list is consulted")
}
