package http

import (
	"net/http"

	"gamehub/internal/apperr"
	"gamehub/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 5 << 20

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

type UpdateUsernameRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
}

// Me godoc
// @Summary      Current account profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	actor := actorFromContext(c)

	user, err := h.userUseCase.Me(actor.ID)
	if err != nil {
		// A trashed account can still carry a fresh-looking token; the 401
		// also drops the session cookie.
		if err == apperr.ErrUnauthorized {
			clearAuthCookie(c)
		}
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, user)
}

// GetUser godoc
// @Summary      Public profile of an active user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUseCase.GetUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, user)
}

// UpdateUsername godoc
// @Summary      Change the caller's username
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateUsernameRequest true "New username"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      409  {object}  Response
// @Router       /users/me/username [put]
func (h *UserHandler) UpdateUsername(c *gin.Context) {
	var req UpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidUserData)
		return
	}

	actor := actorFromContext(c)
	user, err := h.userUseCase.UpdateUsername(actor.ID, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, user)
}

// UpdateAvatar godoc
// @Summary      Replace the caller's avatar
// @Description  Uploads the file and mutates the existing image record in place
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Avatar image"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Router       /users/me/avatar [put]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, apperr.Invalid("file is required"))
		return
	}
	if header.Size > maxAvatarSize {
		respondError(c, apperr.Invalid("file exceeds the 5MB limit"))
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, apperr.ErrInternal)
		return
	}
	defer file.Close()

	actor := actorFromContext(c)
	user, err := h.userUseCase.UpdateAvatar(actor.ID, usecase.AvatarInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, user)
}
