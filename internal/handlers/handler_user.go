package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oclock/event_backend/internal/core/domain"
	"github.com/oclock/event_backend/internal/dto"
	"github.com/oclock/event_backend/internal/middleware"

	portssvc "github.com/oclock/event_backend/internal/core/ports/services"
)

// UserHandler handles profile management and the admin user listing.
type UserHandler struct {
	userService portssvc.UserSvcFacade
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: us}
}

// registerUserRoutes sets up the user routes inside the authenticated group.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := NewUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", middleware.RequireRoles(domain.RoleAdmin), h.ListUsers)
		users.GET("/profile", middleware.RequireRoles(domain.RoleParticipant), h.GetProfile)
		users.PUT("/profile", middleware.RequireRoles(), h.UpdateProfile)
		users.PUT("/profile/password", middleware.RequireRoles(), h.UpdatePassword)
		users.PUT("/profile/email", middleware.RequireRoles(), h.RequestEmailChange)
		users.GET("/event/:id/participants", middleware.RequireRoles(domain.RoleManager), h.ListEventParticipants)
	}
}

// GetProfile godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)
	resp, err := h.userService.GetUserProfileByEmail(c.Request.Context(), principal.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param profile body dto.ProfileRequest true "Fields to update"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	principal, _ := middleware.GetPrincipalFromContext(c)
	resp, err := h.userService.UpdateUserProfile(c.Request.Context(), principal.Email, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePassword godoc
// @Summary Change own password
// @Tags users
// @Accept json
// @Produce json
// @Param password body dto.UpdatePasswordRequest true "Current and new password"
// @Success 200 {string} string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/profile/password [put]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	principal, _ := middleware.GetPrincipalFromContext(c)
	if err := h.userService.UpdatePassword(c.Request.Context(), principal.Email, req); err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, "password updated successfully")
}

// RequestEmailChange godoc
// @Summary Request an email change
// @Description Sends a verification mail to the new address. The account keeps its current email until verified.
// @Tags users
// @Produce json
// @Param newEmail query string true "New email address"
// @Success 200 {string} string
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/profile/email [put]
func (h *UserHandler) RequestEmailChange(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)
	if err := h.userService.UpdateEmail(c.Request.Context(), principal.Email, c.Query("newEmail")); err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, "verification email sent")
}

// ListUsers godoc
// @Summary List all user accounts
// @Tags users
// @Produce json
// @Success 200 {array} dto.ProfileResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	resp, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListEventParticipants godoc
// @Summary List participants of an event
// @Tags users
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/event/{id}/participants [get]
func (h *UserHandler) ListEventParticipants(c *gin.Context) {
	id, ok := parseEventID(c, "id")
	if !ok {
		return
	}
	principal, _ := middleware.GetPrincipalFromContext(c)
	resp, err := h.userService.GetEventParticipantsForManager(c.Request.Context(), id, principal.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
