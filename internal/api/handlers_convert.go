package api

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/autodoc/internal/llm"
)

// ConversionResponse is the JSON body returned by POST /convert.
type ConversionResponse struct {
	Success   bool   `json:"success"`
	HTML      string `json:"html,omitempty"`
	PDFBase64 string `json:"pdf_base64,omitempty"`
	Error     string `json:"error,omitempty"`
	Filename  string `json:"filename,omitempty"`
	Format    string `json:"format"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	// Limit total request size, with headroom for the form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "formulaire multipart invalide: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	format := strings.ToLower(r.FormValue("output_format"))
	if format == "" {
		format = "html"
	}
	if format != "html" && format != "pdf" {
		jsonError(w, "Format de sortie invalide. Utilisez 'html' ou 'pdf'.", http.StatusBadRequest)
		return
	}

	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	cfg, ok := s.readLLMConfig(w, r)
	if !ok {
		return
	}

	result := s.converter.Convert(r.Context(), data, filename, cfg)
	if !result.Success {
		writeJSON(w, http.StatusOK, ConversionResponse{
			Error:  result.Error,
			Format: format,
		})
		return
	}

	resp := ConversionResponse{
		Success:  true,
		HTML:     result.HTML,
		Filename: result.Filename,
		Format:   "html",
	}

	// PDF is rendered from the already-converted HTML; a rasterization
	// failure is reported distinctly from a conversion failure.
	if format == "pdf" {
		if s.rasterizer == nil {
			jsonError(w, "Erreur lors de la génération du PDF: rendu PDF indisponible", http.StatusInternalServerError)
			return
		}
		pdfBytes, err := s.rasterizer.PDF(r.Context(), result.HTML)
		if err != nil {
			jsonError(w, "Erreur lors de la génération du PDF: "+err.Error(), http.StatusInternalServerError)
			return
		}
		resp.PDFBase64 = base64.StdEncoding.EncodeToString(pdfBytes)
		resp.Format = "pdf"
		resp.Filename = strings.TrimSuffix(result.Filename, ".html") + ".pdf"
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleConvertDownload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "formulaire multipart invalide: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	cfg, ok := s.readLLMConfig(w, r)
	if !ok {
		return
	}

	result := s.converter.Convert(r.Context(), data, filename, cfg)
	if !result.Success {
		jsonError(w, result.Error, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	w.Write([]byte(result.HTML))
}

// readUpload pulls the "file" part out of the parsed multipart form and
// enforces the extension allow-list and size cap. On failure it writes the
// error response and returns ok=false.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (data []byte, filename string, ok bool) {
	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "fichier requis: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	defer file.Close()

	filename = sanitizeFilename(header.Filename)
	allowed := s.cfg.AllowedExtensionList()
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !contains(allowed, ext) {
		jsonError(w, fmt.Sprintf("Type de fichier non supporté. Extensions autorisées: %s",
			strings.Join(allowed, ", ")), http.StatusBadRequest)
		return nil, "", false
	}

	data, err = readLimited(file, s.cfg.MaxUploadBytes)
	if err != nil {
		jsonError(w, "lecture du fichier impossible", http.StatusInternalServerError)
		return nil, "", false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("Fichier trop volumineux. Taille max: %dMB",
			s.cfg.MaxUploadBytes/(1024*1024)), http.StatusBadRequest)
		return nil, "", false
	}
	return data, filename, true
}

// readLLMConfig parses and validates the "llm_config" form field.
func (s *Server) readLLMConfig(w http.ResponseWriter, r *http.Request) (llm.Config, bool) {
	var cfg llm.Config
	raw := r.FormValue("llm_config")
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		jsonError(w, "Configuration LLM invalide (JSON mal formé)", http.StatusBadRequest)
		return cfg, false
	}

	switch cfg.Provider {
	case llm.ProviderOpenAI, llm.ProviderAnthropic:
		if cfg.APIKey == "" || cfg.APIKey == "none" {
			jsonError(w, "Clé API requise", http.StatusBadRequest)
			return cfg, false
		}
	case llm.ProviderCustom:
		if cfg.BaseURL == "" {
			jsonError(w, "URL de base requise pour le provider custom", http.StatusBadRequest)
			return cfg, false
		}
	default:
		jsonError(w, fmt.Sprintf("Configuration LLM invalide: provider %q non supporté", cfg.Provider), http.StatusBadRequest)
		return cfg, false
	}

	if err := cfg.Validate(); err != nil {
		jsonError(w, "Configuration LLM invalide: "+err.Error(), http.StatusBadRequest)
		return cfg, false
	}
	return cfg, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "document"
	}
	return name
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func readLimited(r io.Reader, max int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, max+1))
}
