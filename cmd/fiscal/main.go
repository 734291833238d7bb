package main

import (
	"fmt"
	"os"

	"github.com/teranos/fiscal/cmd/fiscal/commands"
	"github.com/teranos/fiscal/errors"
	"github.com/teranos/fiscal/logger"
)

func main() {
	cmd, err := commands.NewRootCmd().ExecuteC()
	if err != nil && logger.JSONOutput {
		logger.Errorw("command failed",
			logger.FieldOperation, cmd.CommandPath(),
			logger.FieldError, err.Error())
	}
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
