package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/kubev2v/dexkeeper/api/v1"
)

// GetImport reports the state of the background import job
// (GET /import)
func (h *Handler) GetImport(c *gin.Context) {
	respondData(c, http.StatusOK, v1.NewImportJobFromModel(h.importSrv.Status()))
}

// StartImport submits a seed run and returns at once
// (POST /import)
func (h *Handler) StartImport(c *gin.Context) {
	job, err := h.importSrv.Start()
	if err != nil {
		respondError(c, "import_handler", "failed to start import", err)
		return
	}
	respondData(c, http.StatusAccepted, v1.NewImportJobFromModel(job))
}

// StopImport cancels the running import job
// (DELETE /import)
func (h *Handler) StopImport(c *gin.Context) {
	if err := h.importSrv.Stop(c.Request.Context()); err != nil {
		respondError(c, "import_handler", "failed to stop import", err)
		return
	}
	respondData(c, http.StatusOK, v1.NewImportJobFromModel(h.importSrv.Status()))
}
