// Summary: Persisted plugin settings; reads and rewrites
// ~/.config/codefence/settings.json, merging loaded data onto defaults.
package settings

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Record holds the two persisted settings. Empty strings mean "none"; a
// loaded file only overrides the fields it carries, so partial or missing
// data always yields a usable record.
type Record struct {
	LastUsedLanguage    string `json:"last_used_language"`
	AdditionalLanguages string `json:"additional_languages"`
}

func defaultRecord() Record {
	return Record{}
}

// Path resolves the settings file location. It respects the XDG Base
// Directory Specification.
func Path() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "codefence", "settings.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find user home directory: %v", err)
	}
	return filepath.Join(home, ".config", "codefence", "settings.json"), nil
}

// Load reads the settings file at path and merges it onto defaults. A
// missing or unreadable file is not an error; the caller always gets a
// complete record.
func Load(path string, logger *log.Logger) Record {
	rec := defaultRecord()
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) && logger != nil {
			logger.Printf("cannot open settings file %s: %v", path, err)
		}
		return rec
	}
	defer f.Close()

	// Decoding over the defaulted record leaves absent fields untouched,
	// which is the whole merge.
	if err := json.NewDecoder(f).Decode(&rec); err != nil {
		if logger != nil {
			logger.Printf("invalid settings file %s: %v", path, err)
		}
		return defaultRecord()
	}
	return rec
}

// Save rewrites the settings file wholesale. Persistence is best-effort;
// callers log the returned error and move on.
func Save(path string, rec Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
