package fiscal

// digraphs is the part of Tables ReducePrecision needs.
type digraphs interface {
	Digraph(prefix string) (string, bool)
}

// ReducePrecision replaces a two-letter digraph at the head of token with its
// single letter (CHAVEZ -> CAVEZ, LLAMAS -> LAMAS). Anything else is returned
// unchanged. It must run before particle stripping and composition.
func ReducePrecision(token string, t digraphs) string {
	if len(token) < 2 {
		return token
	}
	if r, ok := t.Digraph(token[:2]); ok {
		return r + token[2:]
	}
	return token
}
