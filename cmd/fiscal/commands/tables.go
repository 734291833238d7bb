package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/fiscal/display"
	"github.com/teranos/fiscal/errors"
	"github.com/teranos/fiscal/tables"
)

func newTablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Show or validate reference tables",
		Long: `Show or validate the reference tables: surname particles, head digraphs,
given-name fillers, the blocklist of objectionable name codes and state codes.

The built-in tables are used unless tables.path (or --tables) names a TOML
or YAML file. A file may override only some sections; the rest come from
the built-in tables.

Examples:
  fiscal tables show > tables.toml        # start a custom tables file
  fiscal tables show --format yaml
  fiscal tables validate tables.toml`,
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the active tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTables()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if display.ShouldOutputJSON(cmd) || format == "json" {
				return display.Output(out, display.FormatJSON, t.File())
			}
			switch tables.Format(format) {
			case tables.FormatTOML, tables.FormatYAML:
				return tables.Encode(out, t.File(), tables.Format(format))
			default:
				return errors.WithHint(
					errors.Newf("unsupported format: %s", format),
					"supported: toml, yaml, json",
				)
			}
		},
	}
	showCmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, yaml, json")

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a tables file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := tables.LoadFile(args[0])
			if err != nil {
				return err
			}
			stats := t.Stats()

			outFormat, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if outFormat != display.FormatText {
				return display.Output(out, outFormat, stats)
			}

			pterm.Success.WithWriter(out).Printf("%s is valid (schema %s)\n", args[0], stats.Schema)
			return display.KeyValues(out, [][2]string{
				{"particles", strconv.Itoa(stats.Particles)},
				{"given name fillers", strconv.Itoa(stats.Fillers)},
				{"blocklist", strconv.Itoa(stats.Blocklist)},
				{"digraphs", strconv.Itoa(stats.Digraphs)},
				{"states", strconv.Itoa(stats.States)},
			})
		},
	}

	cmd.AddCommand(showCmd, validateCmd)
	return cmd
}
