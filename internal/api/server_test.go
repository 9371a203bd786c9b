package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/autodoc/internal/config"
	"github.com/dgallion1/autodoc/internal/convert"
	"github.com/dgallion1/autodoc/internal/llm"
)

const analysisJSON = `{
	"metadata": {"title": "Rapport de test"},
	"toc": false,
	"sections": [{"title": "Introduction", "content": [{"type": "paragraph", "text": "Bonjour"}]}]
}`

// newLLMStub serves an OpenAI-compatible chat completion endpoint that
// always answers with content.
func newLLMStub(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if status != http.StatusOK {
			http.Error(w, `{"error":{"message":"stub failure"}}`, status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}))
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Config{
		Port:              "0",
		CORSOrigins:       "*",
		MaxUploadBytes:    1 << 20,
		AllowedExtensions: "pdf,docx,txt",
		ChunkThreshold:    6000,
		LLMTimeout:        10 * time.Second,
		StatsWindow:       time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	stats := llm.NewStats(cfg.StatsWindow)
	svc := convert.NewService(log, cfg.ChunkThreshold, cfg.LLMTimeout, stats)
	return NewServer(svc, nil, stats, log, cfg)
}

// multipartBody builds a form with a file part plus extra string fields.
func multipartBody(t *testing.T, filename string, fileData []byte, fields map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		fw.Write(fileData)
	}
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func customConfig(baseURL string) string {
	b, _ := json.Marshal(llm.Config{Provider: llm.ProviderCustom, Model: "local-model", BaseURL: baseURL})
	return string(b)
}

func postConvert(t *testing.T, srv *Server, path, filename string, data []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, filename, data, fields)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, rec.Body.String())
	}
	return body["error"]
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["status"] != "healthy" || body["version"] != "1.0.0" {
		t.Errorf("body = %v", body)
	}
}

func TestRoot(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var body struct {
		Name      string            `json:"name"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Name != "AutoDoc" || body.Endpoints["convert"] != "/convert" {
		t.Errorf("body = %+v", body)
	}
}

func TestConvertInvalidOutputFormat(t *testing.T) {
	srv := newTestServer(t)
	rec := postConvert(t, srv, "/convert", "doc.txt", []byte("texte"), map[string]string{
		"llm_config":    customConfig("http://localhost:1"),
		"output_format": "docx",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec); got != "Format de sortie invalide. Utilisez 'html' ou 'pdf'." {
		t.Errorf("error = %q", got)
	}
}

func TestConvertUnsupportedExtension(t *testing.T) {
	srv := newTestServer(t)
	rec := postConvert(t, srv, "/convert", "archive.zip", []byte("data"), map[string]string{
		"llm_config": customConfig("http://localhost:1"),
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec); !strings.HasPrefix(got, "Type de fichier non supporté.") {
		t.Errorf("error = %q", got)
	}
}

func TestConvertFileTooLarge(t *testing.T) {
	srv := newTestServer(t)
	big := bytes.Repeat([]byte("a"), int(srv.cfg.MaxUploadBytes)+1)
	rec := postConvert(t, srv, "/convert", "doc.txt", big, map[string]string{
		"llm_config": customConfig("http://localhost:1"),
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec); !strings.HasPrefix(got, "Fichier trop volumineux.") {
		t.Errorf("error = %q", got)
	}
}

func TestConvertMalformedLLMConfig(t *testing.T) {
	srv := newTestServer(t)
	rec := postConvert(t, srv, "/convert", "doc.txt", []byte("texte"), map[string]string{
		"llm_config": "{not json",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec); got != "Configuration LLM invalide (JSON mal formé)" {
		t.Errorf("error = %q", got)
	}
}

func TestConvertMissingAPIKey(t *testing.T) {
	srv := newTestServer(t)
	cfg, _ := json.Marshal(llm.Config{Provider: llm.ProviderOpenAI, APIKey: "none"})
	rec := postConvert(t, srv, "/convert", "doc.txt", []byte("texte"), map[string]string{
		"llm_config": string(cfg),
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec); got != "Clé API requise" {
		t.Errorf("error = %q", got)
	}
}

func TestConvertCustomNeedsBaseURL(t *testing.T) {
	srv := newTestServer(t)
	cfg, _ := json.Marshal(llm.Config{Provider: llm.ProviderCustom})
	rec := postConvert(t, srv, "/convert", "doc.txt", []byte("texte"), map[string]string{
		"llm_config": string(cfg),
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec); got != "URL de base requise pour le provider custom" {
		t.Errorf("error = %q", got)
	}
}

func TestConvertSuccess(t *testing.T) {
	stub := newLLMStub(t, analysisJSON, http.StatusOK)
	defer stub.Close()

	srv := newTestServer(t)
	rec := postConvert(t, srv, "/convert", "rapport.txt", []byte("Bonjour le monde"), map[string]string{
		"llm_config": customConfig(stub.URL),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp ConversionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Success = false, error = %q", resp.Error)
	}
	if resp.Filename != "rapport_converted.html" {
		t.Errorf("Filename = %q", resp.Filename)
	}
	if resp.Format != "html" {
		t.Errorf("Format = %q", resp.Format)
	}
	if !strings.Contains(resp.HTML, "<h1>Rapport de test</h1>") {
		t.Errorf("HTML missing rendered title")
	}
}

func TestConvertLLMFailureReturnsError(t *testing.T) {
	stub := newLLMStub(t, "", http.StatusInternalServerError)
	defer stub.Close()

	srv := newTestServer(t)
	rec := postConvert(t, srv, "/convert", "rapport.txt", []byte("Bonjour"), map[string]string{
		"llm_config": customConfig(stub.URL),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp ConversionResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Success {
		t.Fatal("expected failure")
	}
	if !strings.HasPrefix(resp.Error, "Erreur lors de la conversion:") {
		t.Errorf("Error = %q", resp.Error)
	}
}

func TestConvertPDFWithoutRasterizer(t *testing.T) {
	stub := newLLMStub(t, analysisJSON, http.StatusOK)
	defer stub.Close()

	srv := newTestServer(t)
	rec := postConvert(t, srv, "/convert", "rapport.txt", []byte("Bonjour"), map[string]string{
		"llm_config":    customConfig(stub.URL),
		"output_format": "pdf",
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec); !strings.HasPrefix(got, "Erreur lors de la génération du PDF:") {
		t.Errorf("error = %q", got)
	}
}

func TestConvertDownload(t *testing.T) {
	stub := newLLMStub(t, analysisJSON, http.StatusOK)
	defer stub.Close()

	srv := newTestServer(t)
	rec := postConvert(t, srv, "/convert/download", "rapport.txt", []byte("Bonjour"), map[string]string{
		"llm_config": customConfig(stub.URL),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); got != "attachment; filename=rapport_converted.html" {
		t.Errorf("Content-Disposition = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "<h1>Rapport de test</h1>") {
		t.Errorf("body missing rendered document")
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/convert", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestCORSRestrictedOrigin(t *testing.T) {
	srv := newTestServer(t)
	srv.cfg.CORSOrigins = "http://app.example.com"
	srv.setupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://app.example.com")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://app.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"../../etc/passwd.txt": "passwd.txt",
		"rapport.pdf":          "rapport.pdf",
		"":                     "document",
	}
	for in, want := range cases {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
