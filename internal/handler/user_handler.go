package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/dto"
	"github.com/tbcare/screening-api/internal/models"
	"github.com/tbcare/screening-api/pkg/response"
)

// SessionHeader carries the session token issued at login.
const SessionHeader = "X-Session-Token"

type userService interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*models.LoginResult, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error)
	AssignRole(ctx context.Context, userID, siteID, regionID int64, req dto.AssignRoleRequest) error
}

// UserHandler handles signup, login and user administration.
type UserHandler struct {
	service userService
	logger  *zap.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc userService, logger *zap.Logger) *UserHandler {
	return &UserHandler{service: svc, logger: logger}
}

// Signup godoc
// @Summary Register a clinician
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.SignupRequest true "Signup payload"
// @Success 200 {object} models.User
// @Failure 400 {string} string
// @Failure 409 {string} string
// @Router /signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := bindPayload(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	user, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.JSON(c, user)
}

// Login godoc
// @Summary Verify credentials
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} models.User
// @Failure 401 {string} string
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindPayload(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	if result.SessionToken != "" {
		c.Header(SessionHeader, result.SessionToken)
	}
	response.JSON(c, result.User)
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, users)
}

// Update godoc
// @Summary Update user
// @Description Every key must be present; values overwrite the stored user.
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param payload body dto.UpdateUserRequest true "Update payload"
// @Success 200 {object} models.User
// @Failure 400 {string} string
// @Router /users/{user_id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := paramInt(c, "user_id")
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := bindPayload(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	user, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.JSON(c, user)
}

// AssignRole godoc
// @Summary Assign a role to a user registered at a site
// @Tags Users
// @Accept json
// @Param user_id path int true "User ID"
// @Param site_id path int true "Site ID"
// @Param region_id path int true "Region ID"
// @Param payload body dto.AssignRoleRequest true "Role payload"
// @Success 200
// @Failure 400 {string} string
// @Router /users/{user_id}/sites/{site_id}/regions/{region_id} [put]
func (h *UserHandler) AssignRole(c *gin.Context) {
	ids, err := paramInts(c, "user_id", "site_id", "region_id")
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var req dto.AssignRoleRequest
	if err := bindPayload(c, &req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	if err := h.service.AssignRole(c.Request.Context(), ids[0], ids[1], ids[2], req); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Empty(c)
}
