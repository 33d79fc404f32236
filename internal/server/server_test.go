package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tsawler/pdfstrings/boundary"
	"github.com/tsawler/pdfstrings/inproc"
	"github.com/tsawler/pdfstrings/internal/config"
	"github.com/tsawler/pdfstrings/model"
)

const (
	plainPDF  = "%PDF-plain"
	lockedPDF = "%PDF-locked"
)

func newTestServer(t *testing.T, maxUpload int64) (*httptest.Server, *inproc.Engine) {
	t.Helper()

	lines := []model.Line{
		{
			{Text: "Name:", BBox: model.BoundingBox{Top: 10, Right: 40, Bottom: 20, Left: 10}, FontSize: 10, Page: 1},
			{Text: "<Ada>", BBox: model.BoundingBox{Top: 10, Right: 90, Bottom: 20, Left: 60}, FontSize: 10, Page: 1},
		},
	}
	eng := inproc.New(inproc.Static{
		plainPDF:  {Lines: lines},
		lockedPDF: {Lines: lines, Password: "pw"},
	}.Extract)

	cfg := &config.Config{
		Addr:        ":0",
		MaxUpload:   maxUpload,
		CORSOrigins: []string{"http://localhost:5173"},
	}
	srv := New(cfg, boundary.New("test", eng), slog.New(slog.DiscardHandler))

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, eng
}

func post(t *testing.T, ts *httptest.Server, query, body string, header http.Header) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/extract"+query, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(b)
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t, 1<<20)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" || body["engine"] != "test" {
		t.Errorf("body = %v", body)
	}
}

func TestExtractFormats(t *testing.T) {
	ts, eng := newTestServer(t, 1<<20)

	tests := []struct {
		query       string
		contentType string
		contains    string
	}{
		{"", "text/plain", "Name: <Ada>\n"},
		{"?format=plain", "text/plain", "Name: <Ada>\n"},
		{"?format=pretty", "text/plain", "Name:"},
		{"?format=json", "application/json", `"text":"\u003cAda\u003e"`},
		{"?format=debug", "text/plain", `Span 1: "<Ada>"`},
		{"?format=html", "text/html", "&lt;Ada&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, body := post(t, ts, tt.query, plainPDF, nil)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d: %s", resp.StatusCode, body)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if !strings.Contains(body, tt.contains) {
				t.Errorf("body %q does not contain %q", body, tt.contains)
			}
		})
	}

	if st := eng.Stats(); st.OpenHandles != 0 || st.OutstandingBuffers != 0 {
		t.Errorf("server leaked engine resources: %+v", st)
	}
}

func TestExtractPassword(t *testing.T) {
	ts, _ := newTestServer(t, 1<<20)

	resp, body := post(t, ts, "", lockedPDF, nil)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("without password: status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "no password") {
		t.Errorf("without password: body = %s", body)
	}

	resp, body = post(t, ts, "", lockedPDF, http.Header{PasswordHeader: {""}})
	if resp.StatusCode != http.StatusUnprocessableEntity || !strings.Contains(body, "no password") {
		t.Errorf("empty password header: %d %s", resp.StatusCode, body)
	}

	resp, body = post(t, ts, "", lockedPDF, http.Header{PasswordHeader: {"pw"}})
	if resp.StatusCode != http.StatusOK || body != "Name: <Ada>\n" {
		t.Errorf("with password: %d %q", resp.StatusCode, body)
	}
}

func TestExtractErrors(t *testing.T) {
	ts, _ := newTestServer(t, 16)

	tests := []struct {
		name   string
		query  string
		body   string
		status int
	}{
		{"unknown format", "?format=xml", plainPDF, http.StatusBadRequest},
		{"empty body", "", "", http.StatusBadRequest},
		{"too large", "", strings.Repeat("x", 64), http.StatusRequestEntityTooLarge},
		{"not a pdf", "", "garbage", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, ts, tt.query, tt.body, nil)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d (%s)", resp.StatusCode, tt.status, body)
			}

			var e map[string]string
			if err := json.Unmarshal([]byte(body), &e); err != nil || e["error"] == "" {
				t.Errorf("expected a JSON error body, got %q", body)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	ts, _ := newTestServer(t, 1<<20)

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/extract", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
