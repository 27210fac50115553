package http

import (
	"net/http"

	"gamehub/internal/apperr"
	"gamehub/internal/entity"
	"gamehub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{adminUseCase: adminUseCase}
}

type ListUsersRequest struct {
	Page      int      `form:"page,default=1"`
	Limit     int      `form:"limit,default=10"`
	Search    string   `form:"search"`
	Roles     []string `form:"roles"`
	IsActive  *bool    `form:"isActive"`
	SortBy    string   `form:"sortBy,default=created_at"`
	SortOrder string   `form:"sortOrder,default=desc"`
	StartDate string   `form:"startDate"`
	EndDate   string   `form:"endDate"`
}

type IDsRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

type CreateUserRequest struct {
	Username string        `json:"username" binding:"required,min=3,max=50"`
	Email    string        `json:"email" binding:"required,email"`
	Password string        `json:"password" binding:"required,min=8"`
	Roles    []string      `json:"roles"`
	Image    *ImagePayload `json:"image"`
}

type ImagePayload struct {
	Key  string `json:"key" binding:"required"`
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required,url"`
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type UserPageResponse struct {
	Users      []*entity.User `json:"users"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

// ListUsers godoc
// @Summary      List users with filters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page (1-based)"
// @Param        limit query int false "Page size"
// @Param        search query string false "Username/email substring"
// @Param        roles query []string false "Role filter"
// @Param        isActive query bool false "Active flag filter"
// @Param        sortBy query string false "Sort column"
// @Param        sortOrder query string false "asc or desc"
// @Param        startDate query string false "Created from (YYYY-MM-DD)"
// @Param        endDate query string false "Created until (YYYY-MM-DD)"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var req ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, apperr.Invalid("invalid query parameters"))
		return
	}

	page, err := h.adminUseCase.ListUsers(usecase.ListUsersInput{
		Page:      req.Page,
		PageSize:  req.Limit,
		Search:    req.Search,
		Roles:     req.Roles,
		IsActive:  req.IsActive,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, UserPageResponse{
		Users:      page.Users,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.PageSize,
		TotalPages: page.TotalPages,
	})
}

// ForceLogout godoc
// @Summary      Invalidate every session of the given users
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body IDsRequest true "Target ids"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /admin/users/force-logout [put]
func (h *AdminHandler) ForceLogout(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidID)
		return
	}

	msg, err := h.adminUseCase.ForceLogout(actorFromContext(c), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, msg)
}

// SoftDelete godoc
// @Summary      Move users to the trash
// @Description  Force-logs-out every target first; nothing is trashed if any logout fails
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body IDsRequest true "Target ids"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /admin/users/soft-delete [delete]
func (h *AdminHandler) SoftDelete(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidID)
		return
	}

	msg, err := h.adminUseCase.SoftDelete(actorFromContext(c), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, msg)
}

// Restore godoc
// @Summary      Restore users from the trash
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body IDsRequest true "Target ids"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /admin/users/restore [put]
func (h *AdminHandler) Restore(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidID)
		return
	}

	msg, err := h.adminUseCase.Restore(req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, msg)
}

// CreateUser godoc
// @Summary      Create a user account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateUserRequest true "New user"
// @Success      201  {object}  Response
// @Failure      400  {object}  Response
// @Failure      409  {object}  Response
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidUserData)
		return
	}

	input := usecase.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	}
	if req.Image != nil {
		input.Image = &entity.Image{
			Key:  req.Image.Key,
			Name: req.Image.Name,
			URL:  req.Image.URL,
		}
	}

	user, err := h.adminUseCase.CreateUser(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, user)
}

// UpdateUser godoc
// @Summary      Update a user's username or email
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Param        request body UpdateUserRequest true "Fields to change"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Failure      409  {object}  Response
// @Router       /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidUserData)
		return
	}

	user, err := h.adminUseCase.UpdateUser(c.Param("id"), usecase.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, user)
}
