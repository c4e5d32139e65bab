package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/kubev2v/dexkeeper/api/v1"
)

// ListRoster returns the roster in insertion order
// (GET /roster)
func (h *Handler) ListRoster(c *gin.Context) {
	slots, err := h.rosterSrv.List(c.Request.Context())
	if err != nil {
		respondError(c, "roster_handler", "failed to list roster", err)
		return
	}
	respondData(c, http.StatusOK, v1.NewRosterFromModel(slots))
}

// (GET /roster/{id})
func (h *Handler) GetRosterSlot(c *gin.Context, id v1.Id) {
	if !positiveID(c, "id", id) {
		return
	}

	slot, err := h.rosterSrv.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "roster_handler", "failed to get roster slot", err)
		return
	}
	respondData(c, http.StatusOK, v1.NewRosterSlotFromModel(*slot))
}

// AddRosterSlot appends a slot. A full roster answers 409.
// (POST /roster)
func (h *Handler) AddRosterSlot(c *gin.Context) {
	var body v1.RosterSlotInput
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	slot, err := h.rosterSrv.Add(c.Request.Context(), body.ToService())
	if err != nil {
		respondError(c, "roster_handler", "failed to add roster slot", err)
		return
	}
	respondData(c, http.StatusCreated, v1.NewRosterSlotFromModel(*slot))
}

// (PUT /roster/{id})
func (h *Handler) UpdateRosterSlot(c *gin.Context, id v1.Id) {
	if !positiveID(c, "id", id) {
		return
	}

	var body v1.RosterSlotInput
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	slot, err := h.rosterSrv.Update(c.Request.Context(), id, body.ToService())
	if err != nil {
		respondError(c, "roster_handler", "failed to update roster slot", err)
		return
	}
	respondData(c, http.StatusOK, v1.NewRosterSlotFromModel(*slot))
}

// (DELETE /roster/{id})
func (h *Handler) RemoveRosterSlot(c *gin.Context, id v1.Id) {
	if !positiveID(c, "id", id) {
		return
	}

	if err := h.rosterSrv.Remove(c.Request.Context(), id); err != nil {
		respondError(c, "roster_handler", "failed to remove roster slot", err)
		return
	}
	c.Status(http.StatusNoContent)
}
