// Summary: Completion handler; detects the fence trigger on the current line
// and serves the ranked language suggestions.
package lsp

import (
	"encoding/json"
	"fmt"

	"codefence/internal/fence"
	"codefence/internal/logging"
)

func (s *Server) handleCompletion(req Request) {
	var p CompletionParams
	if err := json.Unmarshal(req.Params, &p); err != nil {
		s.reply(req.ID, CompletionList{IsIncomplete: false, Items: []CompletionItem{}}, nil)
		return
	}
	current := s.lineAt(p.TextDocument.URI, p.Position.Line)
	trig, ok := fence.DetectTrigger(current, p.Position.Character)
	if !ok {
		// Not an error: suppressing the session is the cancellation signal.
		logging.Logf("lsp ", "%scompletion skip=no-fence line=%d char=%d current=%q%s",
			logging.AnsiYellow, p.Position.Line, p.Position.Character, trimLen(current), logging.AnsiBase)
		s.reply(req.ID, CompletionList{IsIncomplete: false, Items: []CompletionItem{}}, nil)
		return
	}
	rec := s.record()
	ranked := fence.Rank(trig.Query, s.candidateSet(), rec.LastUsedLanguage)
	logging.Logf("lsp ", "completion query=%q matched=%d lastUsed=%q uri=%s line=%d current=%s%s%s",
		trig.Query, len(ranked), rec.LastUsedLanguage, p.TextDocument.URI, p.Position.Line,
		logging.AnsiGreen, logging.PreviewForLog(current), logging.AnsiBase)
	items := s.makeCompletionItems(p.TextDocument.URI, p.Position.Line, trig, ranked)
	// IsIncomplete keeps the host re-querying as the tag grows, so ranking
	// stays server-side.
	s.reply(req.ID, CompletionList{IsIncomplete: true, Items: items}, nil)
}

func (s *Server) makeCompletionItems(uri string, line int, trig fence.Trigger, ranked []string) []CompletionItem {
	rng := Range{
		Start: Position{Line: line, Character: trig.Start},
		End:   Position{Line: line, Character: trig.End},
	}
	items := make([]CompletionItem, 0, len(ranked))
	for i, lang := range ranked {
		items = append(items, CompletionItem{
			Label:      lang,
			Kind:       12, // 12 = Value
			Detail:     fence.DisplayName(lang),
			FilterText: lang,
			TextEdit:   &TextEdit{Range: rng, NewText: lang},
			SortText:   fmt.Sprintf("%04d", i),
			Command: &Command{
				Title:     "Remember fence language",
				Command:   cmdMarkUsed,
				Arguments: []any{markUsedArgs{URI: uri, Line: line, Language: lang}},
			},
		})
	}
	return items
}
