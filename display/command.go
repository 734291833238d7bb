package display

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/teranos/fiscal/errors"
	"gopkg.in/yaml.v3"
)

// ShouldOutputJSON determines if a command should output JSON based on its flags
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	// Check if --json flag was explicitly set
	if cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	// Check global --json flag
	if globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json"); globalFlag {
		return true
	}
	return false
}

// OutputFormat resolves the format for cmd: --json wins, then an explicit
// --output flag, then fallback (usually the configured output.format).
func OutputFormat(cmd *cobra.Command, fallback Format) (Format, error) {
	if ShouldOutputJSON(cmd) {
		return FormatJSON, nil
	}
	if cmd != nil {
		if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
			return ParseFormat(f.Value.String())
		}
	}
	if fallback == "" {
		return FormatText, nil
	}
	return fallback, nil
}

// Output writes v to w as JSON or YAML. FormatText is handled by the caller;
// passing it here falls back to JSON.
func Output(w io.Writer, format Format, v any) error {
	if format == FormatYAML {
		return writeYAML(w, v)
	}
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to marshal YAML")
	}
	return enc.Close()
}
