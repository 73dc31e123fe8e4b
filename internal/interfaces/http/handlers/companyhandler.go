package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	companydto "siloops/internal/application/company/dto"
	"siloops/internal/shared/logger"
	"siloops/internal/shared/utils"
)

type createCompanyUseCase interface {
	Execute(ctx context.Context, req *companydto.CreateCompanyDTO) (*companydto.CompanyDTO, error)
}

type listCompaniesUseCase interface {
	Execute(ctx context.Context, page, pageSize int) ([]*companydto.CompanyDTO, int64, error)
}

type getCompanyUseCase interface {
	Execute(ctx context.Context, companySID string) (*companydto.CompanyDTO, error)
}

// CompanyHandler exposes the admin tenant endpoints.
type CompanyHandler struct {
	createUC createCompanyUseCase
	listUC   listCompaniesUseCase
	getUC    getCompanyUseCase
	logger   logger.Interface
}

func NewCompanyHandler(
	createUC createCompanyUseCase,
	listUC listCompaniesUseCase,
	getUC getCompanyUseCase,
	logger logger.Interface,
) *CompanyHandler {
	return &CompanyHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		logger:   logger,
	}
}

// Create provisions a tenant with its free subscription.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req companydto.CreateCompanyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// List returns tenants, paginated.
func (h *CompanyHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	items, total, err := h.listUC.Execute(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if page < 1 {
		page = 1
	}
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

// Get returns a single tenant.
func (h *CompanyHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
