package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/kubev2v/dexkeeper/api/v1"
)

func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.tagSrv.List(c.Request.Context())
	if err != nil {
		respondError(c, "tag_handler", "failed to list tags", err)
		return
	}
	respondData(c, http.StatusOK, v1.NewTagsFromModel(tags))
}

func (h *Handler) GetTag(c *gin.Context, id v1.Id) {
	if !positiveID(c, "id", id) {
		return
	}

	tag, err := h.tagSrv.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "tag_handler", "failed to get tag", err)
		return
	}
	respondData(c, http.StatusOK, v1.NewTagFromModel(*tag))
}

func (h *Handler) CreateTag(c *gin.Context) {
	var body v1.TagInput
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	tag, err := h.tagSrv.Create(c.Request.Context(), body.ToService())
	if err != nil {
		respondError(c, "tag_handler", "failed to create tag", err)
		return
	}
	respondData(c, http.StatusCreated, v1.NewTagFromModel(*tag))
}

func (h *Handler) UpdateTag(c *gin.Context, id v1.Id) {
	if !positiveID(c, "id", id) {
		return
	}

	var body v1.TagInput
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	tag, err := h.tagSrv.Update(c.Request.Context(), id, body.ToService())
	if err != nil {
		respondError(c, "tag_handler", "failed to update tag", err)
		return
	}
	respondData(c, http.StatusOK, v1.NewTagFromModel(*tag))
}

func (h *Handler) DeleteTag(c *gin.Context, id v1.Id) {
	if !positiveID(c, "id", id) {
		return
	}

	if err := h.tagSrv.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "tag_handler", "failed to delete tag", err)
		return
	}
	c.Status(http.StatusNoContent)
}
