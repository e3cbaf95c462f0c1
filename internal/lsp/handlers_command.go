// Summary: workspace/executeCommand handlers: insert an empty fenced block,
// remember a committed language, reset the remembered language.
package lsp

import (
	"encoding/json"
	"fmt"

	"codefence/internal/logging"
	"codefence/internal/settings"
)

const (
	cmdInsertBlock   = "codefence.insertBlock"
	cmdMarkUsed      = "codefence.markUsed"
	cmdResetLastUsed = "codefence.resetLastUsed"
)

// emptyBlock is the literal text inserted by codefence.insertBlock. The
// cursor lands right after the opening fence, ready for a language tag.
const emptyBlock = "```\n\n```"

type insertBlockArgs struct {
	URI      string   `json:"uri"`
	Position Position `json:"position"`
}

type markUsedArgs struct {
	URI      string `json:"uri"`
	Line     int    `json:"line"`
	Language string `json:"language"`
}

func (s *Server) handleExecuteCommand(req Request) {
	var p ExecuteCommandParams
	if err := json.Unmarshal(req.Params, &p); err != nil {
		s.reply(req.ID, nil, &RespError{Code: -32602, Message: fmt.Sprintf("invalid executeCommand params: %v", err)})
		return
	}
	switch p.Command {
	case cmdInsertBlock:
		s.execInsertBlock(req, p)
	case cmdMarkUsed:
		s.execMarkUsed(req, p)
	case cmdResetLastUsed:
		s.execResetLastUsed(req)
	default:
		s.reply(req.ID, nil, &RespError{Code: -32601, Message: fmt.Sprintf("unknown command: %s", p.Command)})
	}
}

func (s *Server) execInsertBlock(req Request, p ExecuteCommandParams) {
	var args insertBlockArgs
	if !decodeCommandArgs(req, p, &args, s) {
		return
	}
	edit := WorkspaceEdit{Changes: map[string][]TextEdit{
		args.URI: {{
			Range:   Range{Start: args.Position, End: args.Position},
			NewText: emptyBlock,
		}},
	}}
	s.clientApplyEdit("codefence: insert empty block", edit)
	s.clientMoveCursor(args.URI, Position{Line: args.Position.Line, Character: args.Position.Character + 3})
	logging.Logf("lsp ", "insertBlock uri=%s line=%d char=%d", args.URI, args.Position.Line, args.Position.Character)
	s.reply(req.ID, nil, nil)
}

func (s *Server) execMarkUsed(req Request, p ExecuteCommandParams) {
	var args markUsedArgs
	if !decodeCommandArgs(req, p, &args, s) {
		return
	}
	s.updateRecord(func(r *settings.Record) { r.LastUsedLanguage = args.Language })
	s.advanceCursorBelow(args.URI, args.Line)
	logging.Logf("lsp ", "markUsed language=%q uri=%s line=%d", args.Language, args.URI, args.Line)
	s.reply(req.ID, nil, nil)
}

func (s *Server) execResetLastUsed(req Request) {
	s.updateRecord(func(r *settings.Record) { r.LastUsedLanguage = "" })
	logging.Logf("lsp ", "resetLastUsed")
	s.reply(req.ID, nil, nil)
}

// advanceCursorBelow places the cursor at column 0 of the line below the
// committed tag, on the assumption the user types the closing fence next.
// Deliberate, UX-fragile; change here if product decides otherwise.
func (s *Server) advanceCursorBelow(uri string, line int) {
	s.clientMoveCursor(uri, Position{Line: line + 1, Character: 0})
}

// decodeCommandArgs unmarshals the first command argument into out. On
// failure it replies with an invalid-params error and returns false.
func decodeCommandArgs(req Request, p ExecuteCommandParams, out any, s *Server) bool {
	if len(p.Arguments) == 0 {
		s.reply(req.ID, nil, &RespError{Code: -32602, Message: fmt.Sprintf("%s: missing arguments", p.Command)})
		return false
	}
	if err := json.Unmarshal(p.Arguments[0], out); err != nil {
		s.reply(req.ID, nil, &RespError{Code: -32602, Message: fmt.Sprintf("%s: bad arguments: %v", p.Command, err)})
		return false
	}
	return true
}
