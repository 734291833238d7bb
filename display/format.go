package display

import (
	"strings"

	"github.com/teranos/fiscal/errors"
)

// Format selects how command results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported output format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// FormatNames returns the supported formats as "text, json, yaml".
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseFormat validates a format name. An empty name is FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	default:
		for _, known := range Formats {
			if f == known {
				return f, nil
			}
		}
		return "", errors.WithHintf(
			errors.Newf("unknown output format %q", s),
			"use one of: %s", FormatNames(),
		)
	}
}
