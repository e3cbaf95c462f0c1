package lsp

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"codefence/internal/settings"
)

func execRequest(t *testing.T, command string, args ...any) Request {
	t.Helper()
	p := ExecuteCommandParams{Command: command}
	for _, a := range args {
		p.Arguments = append(p.Arguments, mustMarshal(t, a))
	}
	return Request{JSONRPC: "2.0", ID: json.RawMessage("7"), Method: "workspace/executeCommand", Params: mustMarshal(t, p)}
}

func TestExecuteCommand_MarkUsedPersistsAndAdvancesCursor(t *testing.T) {
	var out bytes.Buffer
	s, path := newTestServer(t, &out, settings.Record{})

	uri := "file:///notes.md"
	s.handleExecuteCommand(execRequest(t, cmdMarkUsed, markUsedArgs{URI: uri, Line: 2, Language: "rust"}))

	if rec := settings.Load(path, nil); rec.LastUsedLanguage != "rust" {
		t.Fatalf("persisted last used got %q want %q", rec.LastUsedLanguage, "rust")
	}
	if s.record().LastUsedLanguage != "rust" {
		t.Fatalf("in-memory last used got %q", s.record().LastUsedLanguage)
	}

	fs := frames(t, &out)
	if len(fs) != 2 { // showDocument request + command reply
		t.Fatalf("expected 2 frames, got %d", len(fs))
	}
	var show struct {
		Method string             `json:"method"`
		Params ShowDocumentParams `json:"params"`
	}
	if err := json.Unmarshal(fs[0], &show); err != nil {
		t.Fatalf("decode showDocument: %v", err)
	}
	if show.Method != "window/showDocument" {
		t.Fatalf("method got %q", show.Method)
	}
	if show.Params.URI != uri {
		t.Fatalf("uri got %q", show.Params.URI)
	}
	sel := show.Params.Selection
	if sel == nil || sel.Start.Line != 3 || sel.Start.Character != 0 {
		t.Fatalf("cursor not advanced to start of following line: %+v", sel)
	}
}

func TestExecuteCommand_InsertBlock(t *testing.T) {
	var out bytes.Buffer
	s, _ := newTestServer(t, &out, settings.Record{})

	uri := "file:///notes.md"
	pos := Position{Line: 4, Character: 2}
	s.handleExecuteCommand(execRequest(t, cmdInsertBlock, insertBlockArgs{URI: uri, Position: pos}))

	fs := frames(t, &out)
	if len(fs) != 3 { // applyEdit + showDocument + reply
		t.Fatalf("expected 3 frames, got %d", len(fs))
	}
	var apply struct {
		Method string                   `json:"method"`
		Params ApplyWorkspaceEditParams `json:"params"`
	}
	if err := json.Unmarshal(fs[0], &apply); err != nil {
		t.Fatalf("decode applyEdit: %v", err)
	}
	if apply.Method != "workspace/applyEdit" {
		t.Fatalf("method got %q", apply.Method)
	}
	edits := apply.Params.Edit.Changes[uri]
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}
	if edits[0].NewText != "```\n\n```" {
		t.Fatalf("inserted text got %q", edits[0].NewText)
	}
	if edits[0].Range.Start != pos || edits[0].Range.End != pos {
		t.Fatalf("insert range got %+v want zero-width at %+v", edits[0].Range, pos)
	}

	var show struct {
		Method string             `json:"method"`
		Params ShowDocumentParams `json:"params"`
	}
	if err := json.Unmarshal(fs[1], &show); err != nil {
		t.Fatalf("decode showDocument: %v", err)
	}
	want := Position{Line: 4, Character: 5} // 3 characters past the origin
	if show.Params.Selection == nil || show.Params.Selection.Start != want {
		t.Fatalf("cursor got %+v want %+v", show.Params.Selection, want)
	}
}

func TestExecuteCommand_ResetLastUsed(t *testing.T) {
	var out bytes.Buffer
	s, path := newTestServer(t, &out, settings.Record{LastUsedLanguage: "go"})

	s.handleExecuteCommand(execRequest(t, cmdResetLastUsed))
	if rec := settings.Load(path, nil); rec.LastUsedLanguage != "" {
		t.Fatalf("expected cleared last used, got %q", rec.LastUsedLanguage)
	}
}

func TestExecuteCommand_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	s, _ := newTestServer(t, &out, settings.Record{})

	s.handleExecuteCommand(execRequest(t, "codefence.nope"))
	var resp struct {
		Error *RespError `json:"error"`
	}
	if err := json.Unmarshal(lastFrame(t, &out), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("expected -32601, got %+v", resp.Error)
	}
}

func TestExecuteCommand_MissingArgs(t *testing.T) {
	var out bytes.Buffer
	s, _ := newTestServer(t, &out, settings.Record{})

	s.handleExecuteCommand(execRequest(t, cmdInsertBlock))
	var resp struct {
		Error *RespError `json:"error"`
	}
	if err := json.Unmarshal(lastFrame(t, &out), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("expected -32602, got %+v", resp.Error)
	}
	if !strings.Contains(resp.Error.Message, cmdInsertBlock) {
		t.Fatalf("error should name the command: %q", resp.Error.Message)
	}
}
