package main

import (
	"os"

	"github.com/arthur-debert/wslaunch/internal/cli"
	"github.com/arthur-debert/wslaunch/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_ = ui.NewRenderer(ui.FormatAuto, os.Stderr).Error(err)
		os.Exit(1)
	}
}
