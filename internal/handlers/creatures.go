package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	v1 "github.com/kubev2v/dexkeeper/api/v1"
	"github.com/kubev2v/dexkeeper/internal/services"
)

const (
	defaultCreatureLimit = 151
	maxCreatureLimit     = 500
)

// ListCreatures returns the filtered catalog page
// (GET /creatures?search=&type=&types=a,b&owner=&limit=&offset=)
func (h *Handler) ListCreatures(c *gin.Context, params v1.ListCreaturesParams) {
	limit := defaultCreatureLimit
	if params.Limit != nil {
		if *params.Limit <= 0 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = min(*params.Limit, maxCreatureLimit)
	}
	offset := 0
	if params.Offset != nil {
		if *params.Offset < 0 {
			badRequest(c, "offset must be a non-negative integer")
			return
		}
		offset = *params.Offset
	}

	filter := services.CreatureListParams{
		Limit:  uint64(limit),
		Offset: uint64(offset),
	}
	if params.Search != nil {
		filter.Search = strings.TrimSpace(*params.Search)
	}
	if params.Type != nil {
		filter.Type = *params.Type
	}
	if params.Types != nil {
		filter.Types = *params.Types
	}
	if params.Owner != nil {
		if *params.Owner <= 0 {
			badRequest(c, "owner must be a positive integer")
			return
		}
		filter.Owner = params.Owner
	}

	result, err := h.creatureSrv.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "creature_handler", "failed to list creatures", err)
		return
	}

	respondData(c, http.StatusOK, v1.NewCreatureListFromModel(result.Creatures, result.Total, limit, offset))
}

// GetCreature returns one creature by catalog id
// (GET /creatures/{catalogId})
func (h *Handler) GetCreature(c *gin.Context, catalogId v1.CatalogId) {
	if !positiveID(c, "catalogId", int64(catalogId)) {
		return
	}

	creature, err := h.creatureSrv.Get(c.Request.Context(), catalogId)
	if err != nil {
		respondError(c, "creature_handler", "failed to get creature", err)
		return
	}

	respondData(c, http.StatusOK, v1.NewCreatureFromModel(*creature))
}

// UpsertCreature stores a full creature record
// (POST /creatures)
func (h *Handler) UpsertCreature(c *gin.Context) {
	var body v1.UpsertCreatureJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	creature, err := h.creatureSrv.Upsert(c.Request.Context(), body.ToService())
	if err != nil {
		respondError(c, "creature_handler", "failed to upsert creature", err)
		return
	}

	respondData(c, http.StatusCreated, v1.NewCreatureFromModel(*creature))
}

// UpdateCreature merges the given fields into an existing creature
// (PUT /creatures/{catalogId})
func (h *Handler) UpdateCreature(c *gin.Context, catalogId v1.CatalogId) {
	if !positiveID(c, "catalogId", int64(catalogId)) {
		return
	}

	var body v1.UpdateCreatureJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	creature, err := h.creatureSrv.Update(c.Request.Context(), catalogId, body.ToService())
	if err != nil {
		respondError(c, "creature_handler", "failed to update creature", err)
		return
	}

	respondData(c, http.StatusOK, v1.NewCreatureFromModel(*creature))
}

// DeleteCreature removes a creature and its roster slots
// (DELETE /creatures/{catalogId})
func (h *Handler) DeleteCreature(c *gin.Context, catalogId v1.CatalogId) {
	if !positiveID(c, "catalogId", int64(catalogId)) {
		return
	}

	if err := h.creatureSrv.Delete(c.Request.Context(), catalogId); err != nil {
		respondError(c, "creature_handler", "failed to delete creature", err)
		return
	}

	c.Status(http.StatusNoContent)
}
