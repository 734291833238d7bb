// Package commands implements the fiscal CLI.
package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/teranos/fiscal/am"
	"github.com/teranos/fiscal/display"
	"github.com/teranos/fiscal/errors"
	"github.com/teranos/fiscal/fiscal"
	"github.com/teranos/fiscal/logger"
	"github.com/teranos/fiscal/tables"
)

// skipConfigAnnotation marks commands that must run even when the loaded
// configuration is invalid (so it can be repaired).
const skipConfigAnnotation = "fiscal/skip-config"

var (
	// cfg is the configuration loaded by setup for the running command
	cfg = am.Default()
	// verbosity is the -v count of the running command
	verbosity int
)

// NewRootCmd builds the fiscal command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fiscal",
		Short: "fiscal - name-and-date taxpayer code generator",
		Long: `fiscal - name-and-date taxpayer code generator

Builds the ten-character prefix of a Mexican taxpayer code (RFC) from a
person's names and birth date: four letters from the names followed by the
birth date as YYMMDD.

Available commands:
  generate - Generate a code for one person
  parse    - Show how names are normalized
  state    - Look up a state code
  batch    - Generate codes for every row of a CSV or XLSX file
  tables   - Show or validate reference tables
  am       - Manage fiscal configuration ("I am")

Examples:
  fiscal generate Alvaro "de la O" Lozano 01-12-1940
  fiscal generate -n Ernesto -p Ek -m Rivera -d 20-11-2007 --json
  fiscal batch people.xlsx --out codes.xlsx
  fiscal am show`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().Bool("json", false, "Output results as JSON")
	root.PersistentFlags().StringP("output", "o", "", "Output format: "+display.FormatNames()+" (default from output.format)")
	root.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	root.PersistentFlags().String("tables", "", "Reference tables file (TOML or YAML), overrides tables.path")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newStateCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newTablesCmd())
	root.AddCommand(newAmCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// setup runs before every command: .env, configuration, then the logger
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to load .env")
	}

	am.Reset()
	loaded, err := am.Load()
	switch {
	case err == nil:
		cfg = loaded
	case cmd.Annotations[skipConfigAnnotation] != "":
		cfg = am.Default()
	default:
		return errors.Wrap(err, "failed to load config")
	}

	if path, _ := cmd.Flags().GetString("tables"); path != "" {
		cfg.Tables.Path = path
	}

	verbosity, _ = cmd.Flags().GetCount("verbose")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	logger.SetTheme(cfg.Log.Theme)
	if err := logger.Initialize(jsonLogs || cfg.Log.JSON, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	logger.Debugw("logger initialized",
		logger.FieldComponent, "cli",
		logger.FieldOperation, cmd.CommandPath(),
		logger.FieldVerbosity, logger.LevelName(verbosity))
	return nil
}

// loadTables returns the configured reference tables
func loadTables() (*tables.Tables, error) {
	if cfg.Tables.Path == "" {
		return tables.Default(), nil
	}
	t, err := tables.LoadFile(cfg.Tables.Path)
	if err != nil {
		return nil, err
	}
	logger.Infow("tables loaded",
		logger.FieldComponent, "tables",
		logger.FieldFile, cfg.Tables.Path,
		logger.FieldSchema, t.Schema())
	return t, nil
}

// newGenerator builds a generator from the configured tables and match mode
func newGenerator() (*fiscal.Generator, error) {
	t, err := loadTables()
	if err != nil {
		return nil, err
	}
	match, err := fiscal.ParseParticleMatch(cfg.Tables.ParticleMatch)
	if err != nil {
		return nil, err
	}
	return fiscal.NewGenerator(t,
		fiscal.WithParticleMatch(match),
		fiscal.WithTrace(logger.ShouldLogTrace(verbosity)),
	), nil
}

// outputFormat resolves --json / --output against the configured default
func outputFormat(cmd *cobra.Command) (display.Format, error) {
	configured, err := display.ParseFormat(cfg.Output.Format)
	if err != nil {
		return "", err
	}
	return display.OutputFormat(cmd, configured)
}
