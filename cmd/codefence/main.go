// Summary: Codefence CLI entrypoint; parses flags and delegates to internal/fencecli.
package main

import (
	"flag"
	"fmt"
	"os"

	"codefence/internal"
	"codefence/internal/fencecli"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()
	if *showVersion {
		fmt.Fprintln(os.Stdout, internal.Version)
		return
	}

	if err := fencecli.Run(flag.Args(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
