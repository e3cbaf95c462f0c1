// Summary: JSON-RPC dispatch, replies, and server-initiated client requests.
package lsp

import (
	"encoding/json"
	"fmt"

	"codefence/internal/fence"
	"codefence/internal/logging"
	"codefence/internal/settings"
)

func (s *Server) handle(req Request) {
	if h, ok := s.handlers[req.Method]; ok {
		h(req)
		return
	}
	if len(req.ID) != 0 {
		s.reply(req.ID, nil, &RespError{Code: -32601, Message: fmt.Sprintf("method not found: %s", req.Method)})
	}
}

func (s *Server) reply(id json.RawMessage, result any, err *RespError) {
	resp := Response{JSONRPC: "2.0", ID: id, Result: result, Error: err}
	s.writeMessage(resp)
}

// clientApplyEdit sends a workspace/applyEdit request to the client.
func (s *Server) clientApplyEdit(label string, edit WorkspaceEdit) {
	params := ApplyWorkspaceEditParams{Label: label, Edit: edit}
	id := s.nextReqID()
	req := Request{JSONRPC: "2.0", ID: id, Method: "workspace/applyEdit"}
	b, _ := json.Marshal(params)
	req.Params = b
	s.writeMessage(req)
}

// clientMoveCursor asks the client to place the cursor at pos via a
// window/showDocument request with an empty selection.
func (s *Server) clientMoveCursor(uri string, pos Position) {
	params := ShowDocumentParams{URI: uri, TakeFocus: true, Selection: &Range{Start: pos, End: pos}}
	id := s.nextReqID()
	req := Request{JSONRPC: "2.0", ID: id, Method: "window/showDocument"}
	b, _ := json.Marshal(params)
	req.Params = b
	s.writeMessage(req)
}

// nextReqID returns a unique json.RawMessage id for server-initiated requests.
func (s *Server) nextReqID() json.RawMessage {
	s.mu.Lock()
	s.nextID++
	idNum := s.nextID
	s.mu.Unlock()
	b, _ := json.Marshal(idNum)
	return b
}

// --- settings state ---

func (s *Server) record() settings.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec
}

func (s *Server) candidateSet() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.candidates
}

// updateRecord applies mutate to the settings record, recomputes the
// candidate set when the additional languages changed, and persists the
// result. Saving is best-effort: failures are logged, never surfaced.
func (s *Server) updateRecord(mutate func(*settings.Record)) {
	s.mu.Lock()
	oldAdditional := s.rec.AdditionalLanguages
	mutate(&s.rec)
	if s.rec.AdditionalLanguages != oldAdditional {
		s.candidates = fence.Candidates(s.rec.AdditionalLanguages)
	}
	rec := s.rec
	path := s.settingsPath
	s.mu.Unlock()

	if path == "" {
		return
	}
	if err := settings.Save(path, rec); err != nil {
		logging.Logf("lsp ", "%ssettings save failed: %v%s", logging.AnsiYellow, err, logging.AnsiBase)
	}
}
