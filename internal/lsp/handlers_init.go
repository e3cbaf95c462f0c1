// Summary: Initialization and lifecycle handlers split from handlers.go.
package lsp

import (
	"os"

	"codefence/internal"
	"codefence/internal/logging"
)

func (s *Server) handleInitialize(req Request) {
	res := InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: 1, // 1 = TextDocumentSyncKindFull
			CompletionProvider: &CompletionOptions{
				ResolveProvider:   false,
				TriggerCharacters: s.triggerChars,
			},
			ExecuteCommandProvider: &ExecuteCommandOptions{
				Commands: []string{cmdInsertBlock, cmdMarkUsed, cmdResetLastUsed},
			},
		},
		ServerInfo: &ServerInfo{Name: "codefence", Version: internal.Version},
	}
	s.reply(req.ID, res, nil)
}

func (s *Server) handleInitialized() {
	logging.Logf("lsp ", "client initialized")
}

func (s *Server) handleShutdown(req Request) {
	s.reply(req.ID, nil, nil)
}

func (s *Server) handleExit() {
	s.exited = true
	os.Exit(0)
}
