// Summary: Codefence LSP entrypoint; parses flags and delegates to internal/fencelsp.
package main

import (
	"flag"
	"log"
	"os"

	"codefence/internal"
	"codefence/internal/fencelsp"
)

func main() {
	logPath := flag.String("log", "/tmp/codefence-lsp.log", "path to log file (optional)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()
	if *showVersion {
		log.Println(internal.Version)
		return
	}

	if err := fencelsp.Run(*logPath, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
