package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"siloops/internal/domain/subscription"
	"siloops/internal/shared/logger"
	"siloops/internal/shared/utils"
)

// SubscriptionHandler exposes the subscription status and admin plan-change
// endpoints.
type SubscriptionHandler struct {
	getInfoUC    getSubscriptionInfoUseCase
	checkLimitUC checkOperationLimitUseCase
	updatePlanUC updateSubscriptionPlanUseCase
	logger       logger.Interface
}

func NewSubscriptionHandler(
	getInfoUC getSubscriptionInfoUseCase,
	checkLimitUC checkOperationLimitUseCase,
	updatePlanUC updateSubscriptionPlanUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		getInfoUC:    getInfoUC,
		checkLimitUC: checkLimitUC,
		updatePlanUC: updatePlanUC,
		logger:       logger,
	}
}

// CurrentLimits summarizes admission headroom for the dashboard.
type CurrentLimits struct {
	CanCreateOperation  bool `json:"canCreateOperation"`
	RemainingOperations int  `json:"remainingOperations"`
	UsagePercentage     int  `json:"usagePercentage"`
}

// SubscriptionStatusResponse is the GET /subscription body.
type SubscriptionStatusResponse struct {
	Subscription  interface{}   `json:"subscription"`
	CurrentLimits CurrentLimits `json:"currentLimits"`
}

// GetStatus returns the caller's subscription info joined with live
// admission headroom.
func (h *SubscriptionHandler) GetStatus(c *gin.Context) {
	companyID, ok := utils.GetCompanyID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "account is not bound to a company")
		return
	}

	info, err := h.getInfoUC.Execute(c.Request.Context(), companyID)
	if err != nil {
		h.logger.Errorw("failed to get subscription info", "company_id", companyID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	if info == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "company subscription not found")
		return
	}

	decision, err := h.checkLimitUC.Execute(c.Request.Context(), companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	limits := CurrentLimits{
		CanCreateOperation:  decision.CanCreate,
		RemainingOperations: decision.Remaining,
		UsagePercentage:     usagePercentage(decision.CurrentCount, decision.Limit),
	}

	utils.SuccessResponse(c, http.StatusOK, "", SubscriptionStatusResponse{
		Subscription:  info,
		CurrentLimits: limits,
	})
}

// UpdatePlanRequest is the admin plan-change body.
type UpdatePlanRequest struct {
	CompanyID string `json:"company_id" binding:"required"`
	NewPlan   string `json:"new_plan" binding:"required"`
}

// UpdatePlan changes a company's plan. Admin only.
func (h *SubscriptionHandler) UpdatePlan(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.updatePlanUC.Execute(c.Request.Context(), req.CompanyID, req.NewPlan); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription plan updated", gin.H{
		"companyId": req.CompanyID,
		"plan":      req.NewPlan,
	})
}

// usagePercentage is 0 for unlimited plans, otherwise the rounded share of
// the cycle quota already used.
func usagePercentage(currentCount, limit int) int {
	if limit == subscription.UnlimitedOperations || limit == 0 {
		return 0
	}
	return int(math.Round(float64(currentCount) / float64(limit) * 100))
}
