package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "siloops/internal/application/auth/dto"
	"siloops/internal/shared/logger"
	"siloops/internal/shared/utils"
)

type loginUseCase interface {
	Execute(ctx context.Context, req *authdto.LoginDTO) (*authdto.LoginResultDTO, error)
}

type registerUserUseCase interface {
	Execute(ctx context.Context, req *authdto.RegisterUserDTO) (*authdto.UserDTO, error)
}

// AuthHandler exposes login and admin account creation.
type AuthHandler struct {
	loginUC    loginUseCase
	registerUC registerUserUseCase
	logger     logger.Interface
}

func NewAuthHandler(loginUC loginUseCase, registerUC registerUserUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC:    loginUC,
		registerUC: registerUC,
		logger:     logger,
	}
}

// Login verifies credentials and returns an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Register creates an account. Admin only.
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}
