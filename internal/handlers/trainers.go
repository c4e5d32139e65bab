package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/kubev2v/dexkeeper/api/v1"
	"github.com/kubev2v/dexkeeper/internal/services"
)

// (GET /trainers)
func (h *Handler) ListTrainers(c *gin.Context) {
	trainers, err := h.trainerSrv.List(c.Request.Context())
	if err != nil {
		respondError(c, "trainer_handler", "failed to list trainers", err)
		return
	}
	respondData(c, http.StatusOK, v1.NewTrainersFromModel(trainers))
}

// (GET /trainers/{id})
func (h *Handler) GetTrainer(c *gin.Context, id v1.Id) {
	if !positiveID(c, "id", id) {
		return
	}

	trainer, err := h.trainerSrv.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "trainer_handler", "failed to get trainer", err)
		return
	}
	respondData(c, http.StatusOK, v1.NewTrainerFromModel(*trainer))
}

// (POST /trainers)
func (h *Handler) CreateTrainer(c *gin.Context) {
	var body v1.TrainerInput
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	trainer, err := h.trainerSrv.Create(c.Request.Context(), body.ToService())
	if err != nil {
		respondError(c, "trainer_handler", "failed to create trainer", err)
		return
	}
	respondData(c, http.StatusCreated, v1.NewTrainerFromModel(*trainer))
}

// (PUT /trainers/{id})
func (h *Handler) UpdateTrainer(c *gin.Context, id v1.Id) {
	if !positiveID(c, "id", id) {
		return
	}

	var body v1.TrainerInput
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	trainer, err := h.trainerSrv.Update(c.Request.Context(), id, body.ToService())
	if err != nil {
		respondError(c, "trainer_handler", "failed to update trainer", err)
		return
	}
	respondData(c, http.StatusOK, v1.NewTrainerFromModel(*trainer))
}

// DeleteTrainer removes the trainer. Owned creatures are kept without owner.
// (DELETE /trainers/{id})
func (h *Handler) DeleteTrainer(c *gin.Context, id v1.Id) {
	if !positiveID(c, "id", id) {
		return
	}

	if err := h.trainerSrv.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "trainer_handler", "failed to delete trainer", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTrainerCreatures returns the creatures owned by a trainer
// (GET /trainers/{id}/creatures)
func (h *Handler) ListTrainerCreatures(c *gin.Context, id v1.Id) {
	if !positiveID(c, "id", id) {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.trainerSrv.Get(ctx, id); err != nil {
		respondError(c, "trainer_handler", "failed to get trainer", err)
		return
	}

	result, err := h.creatureSrv.List(ctx, services.CreatureListParams{Owner: &id, Limit: maxCreatureLimit})
	if err != nil {
		respondError(c, "trainer_handler", "failed to list trainer creatures", err)
		return
	}
	respondData(c, http.StatusOK, v1.NewCreaturesFromModel(result.Creatures))
}
