package public

import (
	"context"
	"net/http"
	"time"

	"github.com/dodamdoor/casebook/api/internal/interfaces/http/common"
)

func (h *Handler) searchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		query := r.URL.Query().Get("q")
		results, err := h.search.SearchApartments(ctx, query)
		if err != nil {
			h.logger.Error("apartment search failed", "query", query, "error", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, searchResponse{
				Results: []apartmentResponse{},
				Error:   "failed to search",
			})
			return
		}

		items := make([]apartmentResponse, 0, len(results))
		for _, apt := range results {
			items = append(items, buildApartmentResponse(apt))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, searchResponse{Results: items})
	}
}
