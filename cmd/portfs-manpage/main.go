package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/portfs/cmd/portfs"
	"github.com/arthur-debert/portfs/internal/version"
)

// With an argument the pages for every subcommand are written to that
// directory; without one only the root page goes to stdout.
func main() {
	rootCmd := portfs.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PORTFS",
		Section: "1",
		Source:  "portfs " + version.Version,
		Manual:  "portfs manual",
	}

	var err error
	if len(os.Args) > 1 {
		err = doc.GenManTree(rootCmd, header, os.Args[1])
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
