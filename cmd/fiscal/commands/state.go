package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/teranos/fiscal/display"
	"github.com/teranos/fiscal/errors"
)

type stateResult struct {
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}

func newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state <name>",
		Short: "Look up a state code",
		Long: `Print the two-letter code of a Mexican state. Accents and case are ignored.

Examples:
  fiscal state Jalisco            # JC
  fiscal state "nuevo león"       # NL`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTables()
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			name := strings.Join(args, " ")
			code, ok := t.StateCode(name)
			if !ok {
				return errors.WithHint(
					errors.Newf("unknown state %q", name),
					"run 'fiscal tables show' to list known states",
				)
			}

			out := cmd.OutOrStdout()
			if format != display.FormatText {
				return display.Output(out, format, stateResult{Name: name, Code: code})
			}
			_, err = fmt.Fprintln(out, code)
			return err
		},
	}
}
