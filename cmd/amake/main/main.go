package main

import (
	"os"

	"github.com/arthur-debert/amake/cmd/amake"
	"github.com/arthur-debert/amake/pkg/ui"
)

func main() {
	rootCmd := amake.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if r, rerr := ui.NewRenderer(ui.DetectFormat(os.Stderr), os.Stderr); rerr == nil {
			_ = r.RenderError(err)
		}
		os.Exit(1)
	}
}
