package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	subdto "siloops/internal/application/subscription/dto"
	"siloops/internal/shared/utils"
)

type listPlansUseCase interface {
	Execute(ctx context.Context) []*subdto.PlanDTO
}

// PlanHandler exposes the public plan catalog.
type PlanHandler struct {
	listPlansUC listPlansUseCase
}

func NewPlanHandler(listPlansUC listPlansUseCase) *PlanHandler {
	return &PlanHandler{listPlansUC: listPlansUC}
}

// List returns the catalog in display order.
func (h *PlanHandler) List(c *gin.Context) {
	plans := h.listPlansUC.Execute(c.Request.Context())
	utils.SuccessResponse(c, http.StatusOK, "", plans)
}
