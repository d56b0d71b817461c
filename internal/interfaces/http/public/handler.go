package public

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	publicapp "github.com/dodamdoor/casebook/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger *slog.Logger
	cases  publicapp.CaseQueryService
	search publicapp.SearchService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger *slog.Logger
	Cases  publicapp.CaseQueryService
	Search publicapp.SearchService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger: cfg.Logger,
		cases:  cfg.Cases,
		search: cfg.Search,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/search", h.searchHandler())
	r.Get("/apartments/{name}/cases", h.caseListHandler())
	r.Get("/cases/{managementID}/specs", h.specListHandler())
	r.Get("/cases/{constructionID}/estimates", h.estimateLineListHandler())
	r.Get("/cases/{managementID}/detail", h.caseDetailHandler())
}
