package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/teranos/fiscal/display"
)

// generateResult is the structured form of a generated code
type generateResult struct {
	Code      string `json:"code" yaml:"code"`
	NameCode  string `json:"name_code" yaml:"name_code"`
	DateCode  string `json:"date_code" yaml:"date_code"`
	Rule      string `json:"rule" yaml:"rule"`
	Filtered  bool   `json:"filtered" yaml:"filtered"`
	StateCode string `json:"state_code,omitempty" yaml:"state_code,omitempty"`
}

func newGenerateCmd() *cobra.Command {
	var pf personFlags
	var explain bool

	cmd := &cobra.Command{
		Use:   "generate [given paternal [maternal [DD-MM-YYYY]]]",
		Short: "Generate a code for one person",
		Long: `Generate the ten-character code for one person.

Names can be given as flags or positionally. A missing maternal surname
contributes X; a missing birth date means today.

Examples:
  fiscal generate Alvaro "de la O" Lozano 01-12-1940     # OLAL401201
  fiscal generate -n Juan -p Gómez -d 15-03-2007         # GOXJ070315
  fiscal generate Ernesto Ek Rivera 20-11-2007 --explain`,
		Aliases: []string{"gen"},
		Args:    cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := newGenerator()
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			p := pf.person(args)
			code, err := gen.Generate(p)
			if err != nil {
				return err
			}

			res := generateResult{
				Code:      code.String(),
				NameCode:  code.NameCode(),
				DateCode:  code.DateCode(),
				Rule:      string(code.Rule()),
				Filtered:  code.Filtered(),
				StateCode: gen.Parse(p).StateCode,
			}

			out := cmd.OutOrStdout()
			if format != display.FormatText {
				return display.Output(out, format, res)
			}
			if !explain {
				_, err := fmt.Fprintln(out, res.Code)
				return err
			}
			return display.KeyValues(out, [][2]string{
				{"code", res.Code},
				{"name code", res.NameCode},
				{"date code", res.DateCode},
				{"rule", res.Rule},
				{"filtered", strconv.FormatBool(res.Filtered)},
				{"state code", res.StateCode},
			})
		},
	}

	pf.register(cmd)
	cmd.Flags().BoolVar(&explain, "explain", false, "Show how the code was built")
	return cmd
}
