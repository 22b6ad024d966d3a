package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/avarialab/avaria/internal/application/analysis"
	domain "github.com/avarialab/avaria/internal/domain/analysis"
	"github.com/avarialab/avaria/internal/infra/export"
	"github.com/avarialab/avaria/internal/middleware"
)

type Router struct {
	svc          *appanalysis.Service
	maxFileBytes int64
}

func NewRouter(svc *appanalysis.Service, maxFileBytes int64) http.Handler {
	r := &Router{svc: svc, maxFileBytes: maxFileBytes}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware)

	mux.Route("/api", func(rt chi.Router) {
		// the analyze route triggers two paid model calls per hit
		rt.With(middleware.RateLimitMiddleware(10, 1)).Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Get("/analyses", r.wrap(r.handleList))
		rt.Delete("/analyses/{id}", r.wrap(r.handleDelete))
		rt.Get("/analyses/{id}/pdf", r.wrap(r.handlePDF))
		rt.Get("/analyses/{id}/export.txt", r.wrap(r.handleExportText))
		rt.Get("/analyses/{id}/export.json", r.wrap(r.handleExportJSON))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps the error taxonomy onto status codes. Caller-fixable conditions
// surface their detail; upstream/model detail is logged and kept generic so
// prompt internals never leak.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Análise não encontrada", "")
		case errors.Is(err, domain.ErrTooManyImages):
			writeError(w, http.StatusBadRequest, "Muitas imagens", "Envie no máximo 5 imagens por análise")
		case errors.Is(err, domain.ErrImageTooLarge):
			writeError(w, http.StatusBadRequest, "Arquivo muito grande", "Cada imagem deve ter no máximo 3MB")
		case errors.Is(err, domain.ErrInvalidImageType):
			writeError(w, http.StatusBadRequest, "Arquivo inválido", "Apenas arquivos de imagem são permitidos")
		case errors.Is(err, domain.ErrNoImages):
			writeError(w, http.StatusBadRequest, "Nenhuma imagem fornecida", "")
		case errors.Is(err, domain.ErrPayloadTooLarge):
			writeError(w, http.StatusBadRequest, "Imagem muito grande após codificação", "Cada imagem deve ter menos de 3MB")
		case errors.Is(err, domain.ErrNoDamageFound):
			writeError(w, http.StatusBadRequest, "Nenhum dano identificado",
				"A análise não identificou danos nas imagens fornecidas. Tente com imagens mais claras ou forneça mais contexto.")
		case errors.Is(err, domain.ErrMissingCredential):
			log.Printf("config error: %v", err)
			writeError(w, http.StatusInternalServerError, "Configuração ausente", "GROQ_API_KEY não está configurada no servidor")
		case errors.Is(err, domain.ErrEmptyVisionResponse), errors.Is(err, domain.ErrInvalidModelOutput):
			log.Printf("upstream model error: %v", err)
			writeError(w, http.StatusInternalServerError, "Erro ao processar análise", "Resposta inválida do serviço de análise")
		default:
			log.Printf("unhandled error: %v", err)
			writeError(w, http.StatusInternalServerError, "Erro ao processar análise", "")
		}
	}
}

// POST /api/analyze
// multipart: 1..5 "images" parts, optional "description" text field,
// optional "assetInfo" JSON text field (parse failure degrades to empty).
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Erro no upload", err.Error())
		return nil
	}
	defer req.MultipartForm.RemoveAll()

	var images []domain.UploadedImage
	for _, fh := range req.MultipartForm.File["images"] {
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		// read one byte past the ceiling so the guard can tell "too large"
		// apart from "exactly at the limit"
		data, err := io.ReadAll(io.LimitReader(f, r.maxFileBytes+1))
		f.Close()
		if err != nil {
			return fmt.Errorf("read upload %s: %w", fh.Filename, err)
		}
		images = append(images, domain.UploadedImage{
			Data:     data,
			MimeType: fh.Header.Get("Content-Type"),
			Filename: fh.Filename,
		})
	}

	var asset domain.AssetInfo
	if raw := req.FormValue("assetInfo"); raw != "" {
		// tolerated: a malformed assetInfo falls back to the empty object
		_ = json.Unmarshal([]byte(raw), &asset)
	}

	a, err := r.svc.Analyze(req.Context(), appanalysis.AnalyzeCommand{
		Images:      images,
		Description: req.FormValue("description"),
		Asset:       asset,
	})
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, a)
}

// GET /api/analyses
func (r *Router) handleList(w http.ResponseWriter, req *http.Request) error {
	list, err := r.svc.List(req.Context())
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domain.Analysis{}
	}
	return writeJSON(w, http.StatusOK, list)
}

// DELETE /api/analyses/{id}
func (r *Router) handleDelete(w http.ResponseWriter, req *http.Request) error {
	id := domain.AnalysisID(chi.URLParam(req, "id"))
	if err := r.svc.Delete(req.Context(), id); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GET /api/analyses/{id}/pdf
func (r *Router) handlePDF(w http.ResponseWriter, req *http.Request) error {
	a, err := r.svc.Get(req.Context(), domain.AnalysisID(chi.URLParam(req, "id")))
	if err != nil {
		return err
	}
	doc, err := export.PDF(a)
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=analise-danos-%s.pdf", a.ID))
	_, err = w.Write(doc)
	return err
}

// GET /api/analyses/{id}/export.txt
func (r *Router) handleExportText(w http.ResponseWriter, req *http.Request) error {
	a, err := r.svc.Get(req.Context(), domain.AnalysisID(chi.URLParam(req, "id")))
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=analise-danos-%s.txt", a.ID))
	_, err = w.Write(export.Text(a))
	return err
}

// GET /api/analyses/{id}/export.json
func (r *Router) handleExportJSON(w http.ResponseWriter, req *http.Request) error {
	a, err := r.svc.Get(req.Context(), domain.AnalysisID(chi.URLParam(req, "id")))
	if err != nil {
		return err
	}
	data, err := export.JSON(a)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=analise-danos-%s.json", a.ID))
	_, err = w.Write(data)
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	body := map[string]string{"error": msg}
	if details != "" {
		body["details"] = details
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
