package handlers

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/kubev2v/dexkeeper/api/v1"
	"github.com/kubev2v/dexkeeper/internal/services"
)

var _ v1.ServerInterface = (*Handler)(nil)

type Handler struct {
	creatureSrv *services.CreatureService
	trainerSrv  *services.TrainerService
	tagSrv      *services.TagService
	rosterSrv   *services.RosterService
	insightsSrv *services.InsightsService
	importSrv   *services.ImportJobService
}

func New(
	creatureSrv *services.CreatureService,
	trainerSrv *services.TrainerService,
	tagSrv *services.TagService,
	rosterSrv *services.RosterService,
	insightsSrv *services.InsightsService,
	importSrv *services.ImportJobService,
) *Handler {
	return &Handler{
		creatureSrv: creatureSrv,
		trainerSrv:  trainerSrv,
		tagSrv:      tagSrv,
		rosterSrv:   rosterSrv,
		insightsSrv: insightsSrv,
		importSrv:   importSrv,
	}
}

// Register mounts the generated routes on router. The guards run in front of
// the bearer-secured operations only, see middlewares.BearerScoped.
func (h *Handler) Register(router gin.IRouter, guards ...v1.MiddlewareFunc) {
	v1.RegisterHandlersWithOptions(router, h, v1.GinServerOptions{
		Middlewares:  guards,
		ErrorHandler: parameterError,
	})
}
