package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/account-core/internal/application"
	"github.com/oksasatya/account-core/internal/interface/middleware"
	"github.com/oksasatya/account-core/pkg/response"
	"github.com/oksasatya/account-core/pkg/validation"
)

type AccountHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.Service, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"omitempty,pwd"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Signup POST /api/users/signup
func (h *AccountHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	_, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{Name: req.Name, Email: req.Email, Password: req.Password})
	countOutcome("signup", err)
	if err != nil {
		writeError(c, err, "account already exists")
		return
	}
	response.Success[any](c, http.StatusCreated, nil, "account created", nil)
}

// Login POST /api/users/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	countOutcome("login", err)
	if err != nil {
		writeError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, loginResponse{Token: res.Token, TokenType: "Bearer", ExpiresAt: res.ExpiresAt}, "login successful", nil)
}

// GetProfile GET /api/users/profile
func (h *AccountHandler) GetProfile(c *gin.Context) {
	p, err := h.Svc.GetProfile(c.Request.Context(), c.GetString(middleware.CtxAccountIDKey))
	countOutcome("get_profile", err)
	if err != nil {
		writeError(c, err, "")
		return
	}
	response.Success(c, http.StatusOK, p, "profile", nil)
}

// UpdateProfile PUT /api/users/profile
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.UpdateProfile(c.Request.Context(), c.GetString(middleware.CtxAccountIDKey), application.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	countOutcome("update_profile", err)
	if err != nil {
		writeError(c, err, "email already in use")
		return
	}
	response.Success(c, http.StatusOK, p, "profile updated", nil)
}

// writeError maps service errors to a status and a fixed message.
func writeError(c *gin.Context, err error, conflictMsg string) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusBadRequest, "invalid credentials", nil)
	case errors.Is(err, application.ErrConflict):
		response.Error[any](c, http.StatusConflict, conflictMsg, nil)
	case errors.Is(err, application.ErrUnauthorized):
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "account not found", nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
