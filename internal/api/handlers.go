package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"parts_harvester/internal/domain"
	"parts_harvester/internal/service"
)

// QueryService is the query-engine surface consumed by the HTTP layer.
type QueryService interface {
	Search(ctx context.Context, article string) (*service.SearchResult, error)
	Tree(ctx context.Context) (service.CatalogTree, error)
	TreeSearch(ctx context.Context, brand, model, generation, category string) ([]domain.PartRecord, error)
}

type Handler struct {
	queries QueryService
	logger  *slog.Logger
}

func NewHandler(queries QueryService, logger *slog.Logger) *Handler {
	return &Handler{
		queries: queries,
		logger:  logger,
	}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/search", h.handleSearch).Methods(http.MethodGet)
	r.HandleFunc("/tree", h.handleTree).Methods(http.MethodGet)
	r.HandleFunc("/tree/search", h.handleTreeSearch).Methods(http.MethodGet)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	article := r.URL.Query().Get("article")
	if article == "" {
		http.Error(w, "article query parameter is required", http.StatusBadRequest)
		return
	}

	result, err := h.queries.Search(r.Context(), article)
	if err != nil {
		h.logger.Error("search failed", "article", article, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, result)
}

func (h *Handler) handleTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.queries.Tree(r.Context())
	if err != nil {
		h.logger.Error("tree build failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, tree)
}

func (h *Handler) handleTreeSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	brand := query.Get("brand")
	model := query.Get("model")
	generation := query.Get("generation")
	category := query.Get("category")

	if brand == "" || model == "" || generation == "" {
		http.Error(w, "brand, model and generation query parameters are required", http.StatusBadRequest)
		return
	}

	offers, err := h.queries.TreeSearch(r.Context(), brand, model, generation, category)
	if err != nil {
		h.logger.Error("tree search failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string][]domain.PartRecord{"offers": offers})
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response failed", "error", err)
	}
}
