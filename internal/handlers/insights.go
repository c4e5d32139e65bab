package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/kubev2v/dexkeeper/api/v1"
)

// GetTagInsights returns per-tag counts and averages
// (GET /insights/tags)
func (h *Handler) GetTagInsights(c *gin.Context) {
	insights, err := h.insightsSrv.Tags(c.Request.Context())
	if err != nil {
		respondError(c, "insights_handler", "failed to compute tag insights", err)
		return
	}
	respondData(c, http.StatusOK, v1.NewTagInsightsFromModel(*insights))
}
