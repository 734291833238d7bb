package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teranos/fiscal/display"
	"github.com/teranos/fiscal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show fiscal version information",
		Long:  `Display version, build time, commit hash, tables schema and platform information for the fiscal binary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if format != display.FormatText {
				return display.Output(out, format, info)
			}

			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Tables schema: %s\n", info.TablesSchema)
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}
}
