// Summary: workspace/didChangeConfiguration handler; applies the host's
// settings-panel edits and persists them.
package lsp

import (
	"encoding/json"

	"codefence/internal/logging"
	"codefence/internal/settings"
)

// configSection mirrors the "codefence" block of the client settings.
// Pointer fields distinguish "absent" from "set to empty".
type configSection struct {
	LastUsedLanguage    *string `json:"lastUsedLanguage"`
	AdditionalLanguages *string `json:"additionalLanguages"`
}

func (s *Server) handleDidChangeConfiguration(req Request) {
	var p DidChangeConfigurationParams
	if err := json.Unmarshal(req.Params, &p); err != nil || len(p.Settings) == 0 {
		return
	}
	var outer struct {
		Codefence *configSection `json:"codefence"`
	}
	if err := json.Unmarshal(p.Settings, &outer); err != nil || outer.Codefence == nil {
		return
	}
	sec := outer.Codefence
	s.updateRecord(func(r *settings.Record) {
		if sec.LastUsedLanguage != nil {
			r.LastUsedLanguage = *sec.LastUsedLanguage
		}
		if sec.AdditionalLanguages != nil {
			r.AdditionalLanguages = *sec.AdditionalLanguages
		}
	})
	logging.Logf("lsp ", "configuration updated lastUsed=%q additional=%q",
		s.record().LastUsedLanguage, s.record().AdditionalLanguages)
}
