package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/amake/cmd/amake"
	"github.com/arthur-debert/amake/internal/version"
)

func main() {
	rootCmd := amake.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "AMAKE",
		Section: "1",
		Source:  "amake " + version.Version,
		Manual:  "amake manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
