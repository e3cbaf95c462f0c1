package lsp

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"codefence/internal/settings"
)

// newTestServer builds a server that writes frames into out and persists
// settings under a per-test temp dir. The returned path locates that file.
func newTestServer(t *testing.T, out *bytes.Buffer, rec settings.Record) (*Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	s := NewServer(strings.NewReader(""), out, nil, ServerOptions{SettingsPath: path, Record: rec})
	return s, path
}

// frames splits the Content-Length framed messages written into buf and
// returns the raw JSON bodies in order.
func frames(t *testing.T, buf *bytes.Buffer) [][]byte {
	t.Helper()
	data := buf.String()
	var out [][]byte
	for len(data) > 0 {
		i := strings.Index(data, "\r\n\r\n")
		if i < 0 {
			t.Fatalf("missing header terminator in %q", data)
		}
		n := 0
		for _, line := range strings.Split(data[:i], "\r\n") {
			if strings.HasPrefix(strings.ToLower(line), "content-length:") {
				v := strings.TrimSpace(line[len("content-length:"):])
				var err error
				if n, err = strconv.Atoi(v); err != nil {
					t.Fatalf("bad Content-Length %q", v)
				}
			}
		}
		body := data[i+4 : i+4+n]
		out = append(out, []byte(body))
		data = data[i+4+n:]
	}
	return out
}

// lastFrame returns the most recently written message body.
func lastFrame(t *testing.T, buf *bytes.Buffer) []byte {
	t.Helper()
	fs := frames(t, buf)
	if len(fs) == 0 {
		t.Fatalf("no frames written")
	}
	return fs[len(fs)-1]
}

func mustMarshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func completionRequest(t *testing.T, uri string, line, char int) Request {
	t.Helper()
	p := CompletionParams{
		TextDocument: TextDocumentIdentifier{URI: uri},
		Position:     Position{Line: line, Character: char},
	}
	return Request{JSONRPC: "2.0", ID: json.RawMessage("1"), Method: "textDocument/completion", Params: mustMarshal(t, p)}
}

// completionResult decodes the completion reply from the last frame.
func completionResult(t *testing.T, buf *bytes.Buffer) CompletionList {
	t.Helper()
	var resp struct {
		Result CompletionList `json:"result"`
		Error  *RespError     `json:"error"`
	}
	if err := json.Unmarshal(lastFrame(t, buf), &resp); err != nil {
		t.Fatalf("decode completion response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error response: %+v", resp.Error)
	}
	return resp.Result
}

func labels(items []CompletionItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}
