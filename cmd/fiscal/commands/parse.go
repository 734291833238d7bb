package commands

import (
	"github.com/spf13/cobra"
	"github.com/teranos/fiscal/display"
	"github.com/teranos/fiscal/fiscal"
)

type parseResult struct {
	fiscal.Parsed      `yaml:",inline"`
	InternalConsonants string `json:"internal_consonants" yaml:"internal_consonants"`
}

func newParseCmd() *cobra.Command {
	var pf personFlags

	cmd := &cobra.Command{
		Use:   "parse [given paternal [maternal]]",
		Short: "Show how names are normalized",
		Long: `Show the normalized form of a person's names: uppercase A-Z, diacritics
removed, given-name fillers (MARIA, JOSE, ...) dropped, plus the state code
and the internal consonants of each name.

Example:
  fiscal parse "María José" "de la Peña" --state "Nuevo León"`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := newGenerator()
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			parsed := gen.Parse(pf.person(args))
			res := parseResult{Parsed: parsed, InternalConsonants: parsed.InternalConsonants()}

			out := cmd.OutOrStdout()
			if format != display.FormatText {
				return display.Output(out, format, res)
			}
			return display.KeyValues(out, [][2]string{
				{"given name", parsed.GivenName},
				{"paternal surname", parsed.PaternalSurname},
				{"maternal surname", parsed.MaternalSurname},
				{"city", parsed.City},
				{"state", parsed.State},
				{"state code", parsed.StateCode},
				{"internal consonants", res.InternalConsonants},
			})
		},
	}

	pf.register(cmd)
	return cmd
}
