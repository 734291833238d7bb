package commands

import (
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/fiscal/batch"
	"github.com/teranos/fiscal/display"
	"github.com/teranos/fiscal/errors"
)

type batchOutput struct {
	Summary batch.Summary  `json:"summary" yaml:"summary"`
	Results []batch.Result `json:"results" yaml:"results"`
}

func newBatchCmd() *cobra.Command {
	var (
		outPath  string
		sheet    string
		noHeader bool
		workers  int
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file.csv|file.xlsx>",
		Short: "Generate codes for every row of a CSV or XLSX file",
		Long: `Generate a code for every row of a spreadsheet.

Columns are found by header: given_name, paternal_surname, maternal_surname,
birth_date, city, state (or nombre, apellido_paterno, apellido_materno,
fecha_nacimiento, ciudad, estado). With --no-header they are read in that
order. Rows that fail are reported and do not stop the run.

Examples:
  fiscal batch people.csv
  fiscal batch people.xlsx --sheet Personas --out codes.xlsx
  fiscal batch people.csv --json --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := newGenerator()
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			opts := batch.Options{Sheet: cfg.Batch.Sheet, Header: cfg.Batch.Header}
			if cmd.Flags().Changed("sheet") {
				opts.Sheet = sheet
			}
			if noHeader {
				opts.Header = false
			}
			if !cmd.Flags().Changed("workers") {
				workers = cfg.Batch.Workers
			}

			rows, err := batch.ReadFile(args[0], opts)
			if err != nil {
				return err
			}
			results, err := batch.NewRunner(gen, workers).Run(cmd.Context(), rows)
			if err != nil {
				return err
			}
			summary := batch.Summarize(results)

			if outPath != "" {
				if err := batch.WriteFile(outPath, results); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if format != display.FormatText {
				if err := display.Output(out, format, batchOutput{Summary: summary, Results: results}); err != nil {
					return err
				}
			} else if outPath == "" {
				if err := display.Table(out, []string{"LINE", "NAME", "CODE", "STATE", "ERROR"}, resultRows(results)); err != nil {
					return err
				}
			}

			if format == display.FormatText {
				printSummary(cmd.ErrOrStderr(), summary, outPath)
			}
			if strict && summary.Failed > 0 {
				return errors.Newf("%d of %d rows failed", summary.Failed, summary.Total)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&outPath, "out", "", "Write results to a .csv or .xlsx file")
	fl.StringVar(&sheet, "sheet", "", "XLSX sheet to read (default from batch.sheet, else the first)")
	fl.BoolVar(&noHeader, "no-header", false, "First row is data, not column names")
	fl.IntVar(&workers, "workers", 4, "Rows generated concurrently (default from batch.workers)")
	fl.BoolVar(&strict, "strict", false, "Exit with an error if any row fails")
	return cmd
}

func resultRows(results []batch.Result) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		code := r.Code
		if r.Filtered {
			code += " " + pterm.Yellow("(filtered)")
		}
		rows = append(rows, []string{strconv.Itoa(r.Line), r.Name, code, r.StateCode, pterm.Red(r.Error)})
	}
	return rows
}

// printSummary writes to w (stderr) so stdout stays parseable
func printSummary(w io.Writer, s batch.Summary, outPath string) {
	if s.Failed == 0 {
		pterm.Success.WithWriter(w).Printf("%d codes generated\n", s.OK)
	} else {
		pterm.Warning.WithWriter(w).Printf("%d codes generated, %d rows failed\n", s.OK, s.Failed)
	}
	if outPath != "" {
		pterm.Info.WithWriter(w).Printf("Results written to %s\n", outPath)
	}
}
