package lsp

import (
	"bufio"
	"encoding/json"
	"io"
	"log"
	"sync"

	"codefence/internal/fence"
	"codefence/internal/logging"
	"codefence/internal/settings"
)

// Server implements a minimal LSP over stdio.
type Server struct {
	in       *bufio.Reader
	out      io.Writer
	logger   *log.Logger
	exited   bool
	mu       sync.RWMutex
	docs     map[string]*document
	handlers map[string]func(Request)
	nextID   int64

	settingsPath string
	rec          settings.Record
	candidates   []string
	triggerChars []string
}

// ServerOptions carries the runner-provided configuration into NewServer.
type ServerOptions struct {
	SettingsPath      string
	Record            settings.Record
	TriggerCharacters []string
}

func NewServer(r io.Reader, w io.Writer, logger *log.Logger, opts ServerOptions) *Server {
	s := &Server{
		in:           bufio.NewReader(r),
		out:          w,
		logger:       logger,
		docs:         make(map[string]*document),
		settingsPath: opts.SettingsPath,
		rec:          opts.Record,
		triggerChars: opts.TriggerCharacters,
	}
	if len(s.triggerChars) == 0 {
		s.triggerChars = []string{"`"}
	}
	s.candidates = fence.Candidates(s.rec.AdditionalLanguages)
	s.registerHandlers()
	return s
}

func (s *Server) registerHandlers() {
	s.handlers = map[string]func(Request){
		"initialize":                       s.handleInitialize,
		"initialized":                      func(Request) { s.handleInitialized() },
		"shutdown":                         s.handleShutdown,
		"exit":                             func(Request) { s.handleExit() },
		"textDocument/didOpen":             s.handleDidOpen,
		"textDocument/didChange":           s.handleDidChange,
		"textDocument/didClose":            s.handleDidClose,
		"textDocument/completion":          s.handleCompletion,
		"workspace/executeCommand":         s.handleExecuteCommand,
		"workspace/didChangeConfiguration": s.handleDidChangeConfiguration,
	}
}

func (s *Server) Run() error {
	for {
		body, err := s.readMessage()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		var req Request
		if err := json.Unmarshal(body, &req); err != nil {
			logging.Logf("lsp ", "invalid JSON: %v", err)
			continue
		}
		if req.Method == "" {
			// A response from client; ignore
			continue
		}
		go s.handle(req)
		if s.exited {
			return nil
		}
	}
}
