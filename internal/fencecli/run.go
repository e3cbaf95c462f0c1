// Summary: Codefence CLI runner; ranks a query against the live candidate set
// and prints the suggestions, one per line.
package fencecli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"codefence/internal/fence"
	"codefence/internal/logging"
	"codefence/internal/settings"
)

// Run executes the CLI behavior given arguments and I/O streams. It assumes
// flags have already been parsed by the caller.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var rec settings.Record
	if path, err := settings.Path(); err == nil {
		rec = settings.Load(path, nil)
	}
	return RunWithRecord(args, stdin, stdout, stderr, rec)
}

// RunWithRecord executes the CLI flow against an explicit settings record.
// Useful for testing and embedding.
func RunWithRecord(args []string, stdin io.Reader, stdout, stderr io.Writer, rec settings.Record) error {
	query := readQuery(stdin, args)
	set := fence.Candidates(rec.AdditionalLanguages)
	ranked := fence.Rank(query, set, rec.LastUsedLanguage)
	for _, lang := range ranked {
		fmt.Fprintln(stdout, lang)
	}
	fmt.Fprintf(stderr, logging.AnsiBase+"matched=%d of %d query=%q lastUsed=%q"+logging.AnsiReset+"\n",
		len(ranked), len(set), query, rec.LastUsedLanguage)
	return nil
}

// readQuery combines args and piped stdin into the query prefix. An empty
// query is valid and yields the whole candidate set.
func readQuery(stdin io.Reader, args []string) string {
	if arg := strings.TrimSpace(strings.Join(args, " ")); arg != "" {
		return arg
	}
	if fi, err := os.Stdin.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		b, _ := io.ReadAll(bufio.NewReader(stdin))
		return strings.TrimSpace(string(b))
	}
	return ""
}
