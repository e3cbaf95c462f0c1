// Summary: Codefence LSP runner; configures logging, loads persisted settings,
// and constructs/runs the LSP server (with injectable factory for tests).
package fencelsp

import (
	"io"
	"log"
	"os"
	"strings"

	"codefence/internal/logging"
	"codefence/internal/lsp"
	"codefence/internal/settings"
)

// ServerRunner is the minimal interface satisfied by lsp.Server.
type ServerRunner interface{ Run() error }

// ServerFactory creates a ServerRunner. Default uses lsp.NewServer.
type ServerFactory func(r io.Reader, w io.Writer, logger *log.Logger, opts lsp.ServerOptions) ServerRunner

// Run configures logging, loads the settings record and runs the LSP server.
// It is thin and delegates to RunWithFactory for testability.
func Run(logPath string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	logger := log.New(stderr, "codefence-lsp ", log.LstdFlags|log.Lmsgprefix)
	if strings.TrimSpace(logPath) != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}
	logging.Bind(logger)
	logging.SetLogPreviewLimit(100)

	path, err := settings.Path()
	if err != nil {
		// No home directory: run with in-memory settings only.
		logger.Printf("%v", err)
		path = ""
	}
	rec := settings.Load(path, logger)
	return RunWithFactory(stdin, stdout, logger, path, rec, nil)
}

// RunWithFactory is the testable entrypoint. When factory is nil,
// lsp.NewServer is used.
func RunWithFactory(stdin io.Reader, stdout io.Writer, logger *log.Logger, settingsPath string, rec settings.Record, factory ServerFactory) error {
	factory = ensureFactory(factory)
	opts := lsp.ServerOptions{SettingsPath: settingsPath, Record: rec}
	server := factory(stdin, stdout, logger, opts)
	if err := server.Run(); err != nil {
		logger.Fatalf("server error: %v", err)
	}
	return nil
}

func ensureFactory(factory ServerFactory) ServerFactory {
	if factory != nil {
		return factory
	}
	return func(r io.Reader, w io.Writer, logger *log.Logger, opts lsp.ServerOptions) ServerRunner {
		return lsp.NewServer(r, w, logger, opts)
	}
}
