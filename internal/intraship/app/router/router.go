package router

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aria3ppp/intraship/internal/intraship/domain"
	internal_error "github.com/aria3ppp/intraship/internal/intraship/error"
	"github.com/aria3ppp/intraship/internal/intraship/usecase"

	goccy_json "github.com/goccy/go-json"
	"go.uber.org/atomic"
)

type stats struct {
	rendered atomic.Int64
	rejected atomic.Int64
	failed   atomic.Int64
}

type router struct {
	uc     usecase.UseCase
	logger *slog.Logger
	mux    *http.ServeMux
	stats  stats
}

var _ http.Handler = (*router)(nil)

func NewRouter(
	uc usecase.UseCase,
	logger *slog.Logger,
) *router {
	router := &router{
		uc:     uc,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /shipments/render", router.render)
	mux.HandleFunc("GET /shipments/rendered/{id}", router.getRendered)
	mux.HandleFunc("GET /stats", router.getStats)

	router.mux = mux
	return router
}

func (r *router) render(w http.ResponseWriter, req *http.Request) {
	defer req.Body.Close()

	logger := r.logger.With(slog.String("method", req.Method), slog.String("url", req.URL.Path))

	var renderInput domain.RenderInput
	if err := goccy_json.NewDecoder(req.Body).Decode(&renderInput); err != nil {
		logger.Error("failed to decode request", slog.Any("error", err))
		r.stats.rejected.Inc()
		r.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := r.uc.Render(req.Context(), &renderInput)
	if err != nil {
		logger.Error("failed to uc.Render", slog.Any("error", err))

		status := internal_error.StatusCode(err)
		if status == http.StatusInternalServerError {
			r.stats.failed.Inc()
		} else {
			r.stats.rejected.Inc()
		}
		r.writeError(w, status, err)
		return
	}

	r.stats.rendered.Inc()

	for _, diagnostic := range result.Diagnostics {
		w.Header().Add("Warning", fmt.Sprintf("299 intraship %q", diagnostic.Message))
	}
	if result.JournalID != 0 {
		w.Header().Set("X-Journal-Id", strconv.FormatInt(result.JournalID, 10))
	}

	if req.URL.Query().Get("format") == "json" {
		r.writeJSON(w, http.StatusOK, result)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(result.Document)); err != nil {
		logger.Error("failed to write response", slog.Any("error", err))
	}
}

func (r *router) getRendered(w http.ResponseWriter, req *http.Request) {
	logger := r.logger.With(slog.String("method", req.Method), slog.String("url", req.URL.Path))

	id, err := strconv.ParseInt(req.PathValue("id"), 10, 64)
	if err != nil {
		logger.Error("failed to parse id", slog.Any("error", err))
		r.writeError(w, http.StatusBadRequest, fmt.Errorf("id must be an integer"))
		return
	}

	request, err := r.uc.GetRenderedRequest(req.Context(), id)
	if err != nil {
		logger.Error("failed to uc.GetRenderedRequest", slog.Any("error", err))
		r.writeError(w, internal_error.StatusCode(err), err)
		return
	}

	r.writeJSON(w, http.StatusOK, map[string]any{
		"id":                 request.ID,
		"customer_reference": request.CustomerReference,
		"product_code":       request.ProductCode,
		"service_kinds":      request.ServiceKinds,
		"item_count":         request.ItemCount,
		"document":           request.Document,
		"created_at":         request.CreatedAt,
	})
}

func (r *router) getStats(w http.ResponseWriter, req *http.Request) {
	r.writeJSON(w, http.StatusOK, map[string]int64{
		"rendered": r.stats.rendered.Load(),
		"rejected": r.stats.rejected.Load(),
		"failed":   r.stats.failed.Load(),
	})
}

func (r *router) writeError(w http.ResponseWriter, status int, err error) {
	r.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (r *router) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		r.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (r *router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
