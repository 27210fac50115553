package http

import (
	"net/http"

	"gamehub/internal/apperr"
	"gamehub/internal/entity"
	"gamehub/internal/usecase"
	"gamehub/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	tokens      *jwt.Service
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase, tokens: tokens}
}

type SignUpRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// SignUp godoc
// @Summary      Register a new account
// @Description  Create a local account and start a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignUpRequest true "Registration data"
// @Success      201  {object}  Response
// @Failure      400  {object}  Response
// @Failure      409  {object}  Response
// @Router       /auth/sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidUserData)
		return
	}

	user, token, err := h.authUseCase.SignUp(usecase.SignUpInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookie(c, token, int(h.tokens.TTL().Seconds()))
	respondData(c, http.StatusCreated, AuthResponse{Token: token, User: user})
}

// SignIn godoc
// @Summary      Sign in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignInRequest true "Credentials"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Failure      409  {object}  Response
// @Router       /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidUserData)
		return
	}

	user, token, err := h.authUseCase.SignIn(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookie(c, token, int(h.tokens.TTL().Seconds()))
	respondData(c, http.StatusOK, AuthResponse{Token: token, User: user})
}

// GoogleSignIn godoc
// @Summary      Sign in with a Google ID token
// @Description  Verifies the Google credential and provisions an account on first use
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body GoogleSignInRequest true "Google ID token"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Failure      409  {object}  Response
// @Router       /auth/google [post]
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.ErrInvalidUserData)
		return
	}

	user, token, err := h.authUseCase.SignInWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookie(c, token, int(h.tokens.TTL().Seconds()))
	respondData(c, http.StatusOK, AuthResponse{Token: token, User: user})
}

// SignOut godoc
// @Summary      End the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Response
// @Router       /auth/sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	clearAuthCookie(c)
	respondMessage(c, http.StatusOK, "Signed out")
}
