package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/fiscal/am"
	"github.com/teranos/fiscal/display"
	"github.com/teranos/fiscal/errors"
	"gopkg.in/yaml.v3"
)

func newAmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: "Manage fiscal configuration",
		Long: `am - Manage fiscal configuration ("I am")

Display and manage fiscal configuration settings.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (FISCAL_* prefix, also read from ./.env)
3. Project config (./am.toml, searched upward)
4. User config (~/.fiscal/am.toml)
5. System config (/etc/fiscal/am.toml)
6. Default values

Examples:
  fiscal am show                            # Show current configuration
  fiscal am show --format json              # Show configuration in JSON format
  fiscal am show --sources                  # Show where each value comes from
  fiscal am get tables.particle_match       # Get specific config value
  fiscal am set output.format json          # Update ./am.toml
  fiscal am validate                        # Validate current configuration`,
	}

	cmd.AddCommand(newAmShowCmd(), newAmGetCmd(), newAmSetCmd(), newAmInitCmd(), newAmValidateCmd())
	return cmd
}

func newAmShowCmd() *cobra.Command {
	var format string
	var sources bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current fiscal configuration from all sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if display.ShouldOutputJSON(cmd) {
				format = "json"
			}

			if sources {
				settings, err := am.Introspect()
				if err != nil {
					return err
				}
				if format == "json" || format == "yaml" {
					return display.Output(out, display.Format(format), settings)
				}
				rows := make([][]string, 0, len(settings))
				for _, s := range settings {
					rows = append(rows, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath})
				}
				return display.Table(out, []string{"KEY", "VALUE", "SOURCE", "FROM"}, rows)
			}

			switch format {
			case "json":
				return display.Output(out, display.FormatJSON, cfg)
			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to YAML")
				}
				fmt.Fprintf(out, "# fiscal configuration\n%s", data)
			case "toml":
				data, err := toml.Marshal(cfg)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to TOML")
				}
				fmt.Fprintf(out, "# fiscal configuration\n%s", data)
			default:
				return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")
	cmd.Flags().BoolVar(&sources, "sources", false, "Show the source of every setting")
	return cmd
}

func newAmGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., tables.path, output.format)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !am.IsKnownKey(key) {
				return errors.WithHint(
					errors.Newf("configuration key %q not found", key),
					"run 'fiscal am show' to list the available keys",
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
			return nil
		},
	}
}

func newAmSetCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value in a config file",
		Long: `Set a configuration value in a TOML config file (default ./am.toml).
The previous file is kept as .back1 (up to three backups).`,
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := am.SetValue(file, args[0], args[1]); err != nil {
				return err
			}
			pterm.Success.WithWriter(cmd.OutOrStdout()).Printf("%s = %s (%s)\n", args[0], args[1], file)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", am.ConfigFileName, "Config file to update")
	return cmd
}

func newAmInitCmd() *cobra.Command {
	var user, force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a config file with the default settings",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := am.ConfigFileName
			if user {
				home, err := os.UserHomeDir()
				if err != nil {
					return errors.Wrap(err, "could not determine home directory")
				}
				path = filepath.Join(home, am.UserConfigDir, am.ConfigFileName)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.WithHint(
					errors.Newf("%s already exists", path),
					"use --force to overwrite it (a backup is kept)",
				)
			}
			if err := am.WriteDefault(path); err != nil {
				return err
			}
			pterm.Success.WithWriter(cmd.OutOrStdout()).Printf("Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&user, "user", false, "Write ~/.fiscal/am.toml instead of ./am.toml")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newAmValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Long:  "Validate that the current fiscal configuration is valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// setup already loaded and validated; re-check the resolved values
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}
			if _, err := loadTables(); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
			return nil
		},
	}
}
