package http

import (
	"net/http"

	"gamehub/internal/apperr"
	"gamehub/internal/entity"
	"gamehub/internal/usecase"
	"gamehub/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type SuperAdminHandler struct {
	superAdminUseCase usecase.SuperAdminUseCase
	tokens            *jwt.Service
}

func NewSuperAdminHandler(superAdminUseCase usecase.SuperAdminUseCase, tokens *jwt.Service) *SuperAdminHandler {
	return &SuperAdminHandler{superAdminUseCase: superAdminUseCase, tokens: tokens}
}

type ImpersonationResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// ForceLogoutAll godoc
// @Summary      Invalidate every session except the caller's
// @Tags         super-admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      403  {object}  Response
// @Router       /super-admin/users/force-logout-all [put]
func (h *SuperAdminHandler) ForceLogoutAll(c *gin.Context) {
	msg, err := h.superAdminUseCase.ForceLogoutAll(actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, msg)
}

// ForceLogout godoc
// @Summary      Invalidate sessions of the given users, admins included
// @Tags         super-admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body IDsRequest true "Target ids"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Router       /super-admin/users/force-logout [put]
func (h *SuperAdminHandler) ForceLogout(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidID)
		return
	}

	msg, err := h.superAdminUseCase.ForceLogout(actorFromContext(c), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, msg)
}

// SoftDelete godoc
// @Summary      Move users to the trash, admins included
// @Tags         super-admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body IDsRequest true "Target ids"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Router       /super-admin/users/soft-delete [delete]
func (h *SuperAdminHandler) SoftDelete(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidID)
		return
	}

	msg, err := h.superAdminUseCase.SoftDelete(actorFromContext(c), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, msg)
}

// HardDelete godoc
// @Summary      Permanently delete users and their game data
// @Description  Cascades over dependent records inside one transaction per target
// @Tags         super-admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body IDsRequest true "Target ids"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Router       /super-admin/users/hard-delete [delete]
func (h *SuperAdminHandler) HardDelete(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidID)
		return
	}

	msg, err := h.superAdminUseCase.HardDelete(actorFromContext(c), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, msg)
}

// Restore godoc
// @Summary      Restore users from the trash, admins included
// @Tags         super-admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body IDsRequest true "Target ids"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Router       /super-admin/users/restore [put]
func (h *SuperAdminHandler) Restore(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidID)
		return
	}

	msg, err := h.superAdminUseCase.Restore(req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, msg)
}

// Impersonate godoc
// @Summary      Assume another user's identity
// @Description  Issues a credential carrying the target's identity; the event is audit-logged
// @Tags         super-admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Target user id"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /super-admin/impersonate/{id} [post]
func (h *SuperAdminHandler) Impersonate(c *gin.Context) {
	user, token, err := h.superAdminUseCase.Impersonate(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookie(c, token, int(h.tokens.TTL().Seconds()))
	respondData(c, http.StatusOK, ImpersonationResponse{Token: token, User: user})
}
