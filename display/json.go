package display

import (
	"encoding/json"
	"os"
)

// CompactEnvVar switches JSON output to a single line, for scripts that read
// one result per line.
const CompactEnvVar = "FISCAL_JSON_COMPACT"

// MarshalJSON marshals JSON with pretty formatting for human-readable output,
// or compact when FISCAL_JSON_COMPACT is set.
func MarshalJSON(v any) ([]byte, error) {
	if os.Getenv(CompactEnvVar) != "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}
