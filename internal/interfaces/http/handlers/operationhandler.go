package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	opdto "siloops/internal/application/operation/dto"
	opUsecases "siloops/internal/application/operation/usecases"
	"siloops/internal/shared/logger"
	"siloops/internal/shared/utils"
)

// OperationHandler exposes the quota-gated operation endpoints.
type OperationHandler struct {
	createUC createOperationUseCase
	listUC   listOperationsUseCase
	getUC    getOperationUseCase
	deleteUC deleteOperationUseCase
	logger   logger.Interface
}

func NewOperationHandler(
	createUC createOperationUseCase,
	listUC listOperationsUseCase,
	getUC getOperationUseCase,
	deleteUC deleteOperationUseCase,
	logger logger.Interface,
) *OperationHandler {
	return &OperationHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// quotaRejectionBody is the 403 contract for quota rejections. The
// subscription block gives the UI enough to render an upgrade prompt.
type quotaRejectionBody struct {
	Error        string                `json:"error"`
	Subscription quotaRejectionDetails `json:"subscription"`
}

type quotaRejectionDetails struct {
	Plan                string `json:"plan"`
	CurrentCount        int    `json:"currentCount"`
	Limit               int    `json:"limit"`
	RemainingOperations int    `json:"remainingOperations"`
}

// Create records a grain operation for the caller's company.
func (h *OperationHandler) Create(c *gin.Context) {
	companyID, ok := utils.GetCompanyID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "account is not bound to a company")
		return
	}

	var req opdto.CreateOperationDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), companyID, &req)
	if err != nil {
		if qe, isQuota := opUsecases.AsQuotaExceeded(err); isQuota {
			c.JSON(http.StatusForbidden, quotaRejectionBody{
				Error: qe.Decision.ErrorMessage,
				Subscription: quotaRejectionDetails{
					Plan:                qe.Decision.PlanID.String(),
					CurrentCount:        qe.Decision.CurrentCount,
					Limit:               qe.Decision.Limit,
					RemainingOperations: qe.Decision.Remaining,
				},
			})
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// List returns the company's operations, newest first.
func (h *OperationHandler) List(c *gin.Context) {
	companyID, ok := utils.GetCompanyID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "account is not bound to a company")
		return
	}

	var req opdto.ListOperationsDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return
	}

	items, total, err := h.listUC.Execute(c.Request.Context(), companyID, &req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	utils.SuccessResponse(c, http.StatusOK, "", utils.ListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// Get returns a single operation.
func (h *OperationHandler) Get(c *gin.Context) {
	companyID, ok := utils.GetCompanyID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "account is not bound to a company")
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete removes an operation.
func (h *OperationHandler) Delete(c *gin.Context) {
	companyID, ok := utils.GetCompanyID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "account is not bound to a company")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), companyID, c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "operation deleted", nil)
}
