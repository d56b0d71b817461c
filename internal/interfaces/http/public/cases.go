package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dodamdoor/casebook/api/internal/interfaces/http/common"
	publicdomain "github.com/dodamdoor/casebook/api/internal/public/domain"
)

func (h *Handler) caseListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		name := strings.TrimSpace(chi.URLParam(r, "name"))
		if name == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, errorResponse{Error: "apartment name is required"})
			return
		}

		cases := h.cases.CasesForApartment(ctx, name)
		items := make([]caseResponse, 0, len(cases))
		for _, c := range cases {
			items = append(items, buildCaseResponse(c))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, caseListResponse{Items: items})
	}
}

func (h *Handler) specListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		managementID := strings.TrimSpace(chi.URLParam(r, "managementID"))
		if managementID == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, errorResponse{Error: "management ID is required"})
			return
		}

		items, err := h.cases.SpecsFor(ctx, managementID)
		if err != nil {
			h.logger.Error("spec lookup failed", "managementId", managementID, "error", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, errorResponse{Error: "failed to load specs"})
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, specListResponse{Items: buildSpecItemResponses(items)})
	}
}

func (h *Handler) estimateLineListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		constructionID := strings.TrimSpace(chi.URLParam(r, "constructionID"))
		if constructionID == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, errorResponse{Error: "construction ID is required"})
			return
		}

		lines, err := h.cases.EstimateLinesFor(ctx, constructionID)
		if err != nil {
			h.logger.Error("estimate line lookup failed", "constructionId", constructionID, "error", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, errorResponse{Error: "failed to load estimate lines"})
			return
		}

		items, total := buildEstimateLineResponses(lines)
		common.WriteJSON(h.logger, w, http.StatusOK, estimateLineListResponse{
			Items:      items,
			Total:      total,
			TotalLabel: publicdomain.FormatAmount(total),
		})
	}
}

func (h *Handler) caseDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		managementID := strings.TrimSpace(chi.URLParam(r, "managementID"))
		constructionID := strings.TrimSpace(r.URL.Query().Get("constructionId"))
		if managementID == "" || constructionID == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, errorResponse{Error: "management ID and constructionId are required"})
			return
		}

		detail, err := h.cases.Detail(ctx, managementID, constructionID)
		if err != nil {
			h.logger.Error("case detail lookup failed", "managementId", managementID, "constructionId", constructionID, "error", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, errorResponse{Error: "failed to load case detail"})
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildCaseDetailResponse(detail))
	}
}
