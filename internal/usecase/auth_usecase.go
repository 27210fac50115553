package usecase

import (
	"context"
	"strings"

	"gamehub/internal/apperr"
	"gamehub/internal/entity"
	"gamehub/internal/repo/persistent"
	"gamehub/pkg/google"
	"gamehub/pkg/jwt"
	"gamehub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// Every local account starts with a placeholder avatar so the user always
// owns exactly one Image row.
const defaultAvatarURL = "/assets/default-avatar.png"

type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// GoogleVerifier checks a Google ID token and returns its payload.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*google.Payload, error)
}

type AuthUseCase interface {
	SignUp(input SignUpInput) (*entity.User, string, error)
	SignIn(email, password string) (*entity.User, string, error)
	SignInWithGoogle(ctx context.Context, idToken string) (*entity.User, string, error)
}

type authUseCase struct {
	users    persistent.UserRepository
	images   persistent.ImageRepository
	tokens   *jwt.Service
	verifier GoogleVerifier
	log      *logger.Logger
}

func NewAuthUseCase(
	users persistent.UserRepository,
	images persistent.ImageRepository,
	tokens *jwt.Service,
	verifier GoogleVerifier,
	log *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		users:    users,
		images:   images,
		tokens:   tokens,
		verifier: verifier,
		log:      log,
	}
}

func (uc *authUseCase) SignUp(input SignUpInput) (*entity.User, string, error) {
	if _, err := uc.users.GetActiveByEmail(input.Email); err == nil {
		return nil, "", apperr.ErrEmailExists
	} else if !isNotFound(err) {
		uc.log.Error("[auth] email lookup failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	taken, err := uc.users.UsernameTaken(input.Username)
	if err != nil {
		uc.log.Error("[auth] username lookup failed: %v", err)
		return nil, "", apperr.ErrInternal
	}
	if taken {
		return nil, "", apperr.ErrUsernameExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Error("[auth] password hash failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	image := &entity.Image{URL: defaultAvatarURL}
	if err := uc.images.Create(image); err != nil {
		uc.log.Error("[auth] avatar create failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	user := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Provider: entity.ProviderLocal,
		Roles:    []entity.Role{entity.RoleUser},
		ImageID:  image.ID,
		IsActive: true,
	}
	if err := uc.users.Create(user); err != nil {
		uc.log.Error("[auth] create user failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	token, err := uc.tokens.GenerateToken(user.ID, entity.RoleNames(user.Roles), user.TokenVersion)
	if err != nil {
		uc.log.Error("[auth] token generation failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	uc.log.Info("[auth] registered %s", user.Username)
	return user, token, nil
}

func (uc *authUseCase) SignIn(email, password string) (*entity.User, string, error) {
	user, err := uc.users.GetActiveByEmail(email)
	if err != nil {
		if isNotFound(err) {
			return nil, "", apperr.ErrUserNotFound
		}
		uc.log.Error("[auth] email lookup failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	// Google-provisioned accounts have no local password; answer the same
	// as an unknown email so the provider is not disclosed.
	if user.Provider != entity.ProviderLocal || user.Password == "" {
		return nil, "", apperr.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperr.ErrInvalidPassword
	}

	token, err := uc.tokens.GenerateToken(user.ID, entity.RoleNames(user.Roles), user.TokenVersion)
	if err != nil {
		uc.log.Error("[auth] token generation failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	uc.log.Info("[auth] signed in %s", user.Username)
	return user, token, nil
}

func (uc *authUseCase) SignInWithGoogle(ctx context.Context, idToken string) (*entity.User, string, error) {
	payload, err := uc.verifier.Verify(ctx, idToken)
	if err != nil {
		uc.log.Warn("[auth] google token rejected: %v", err)
		return nil, "", apperr.ErrUnauthorized
	}
	if !payload.EmailVerified {
		return nil, "", apperr.Invalid("google account email is not verified")
	}

	user, err := uc.users.GetByGoogleID(payload.Subject)
	if err == nil {
		token, err := uc.tokens.GenerateToken(user.ID, entity.RoleNames(user.Roles), user.TokenVersion)
		if err != nil {
			uc.log.Error("[auth] token generation failed: %v", err)
			return nil, "", apperr.ErrInternal
		}
		return user, token, nil
	}
	if !isNotFound(err) {
		uc.log.Error("[auth] google id lookup failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	// First sign-in with this Google account: provision a user. The email
	// must not collide with an existing local account.
	if _, err := uc.users.GetActiveByEmail(payload.Email); err == nil {
		return nil, "", apperr.ErrEmailExists
	} else if !isNotFound(err) {
		uc.log.Error("[auth] email lookup failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	user = &entity.User{
		Username: uc.googleUsername(payload),
		Email:    payload.Email,
		Provider: entity.ProviderGoogle,
		GoogleID: payload.Subject,
		Roles:    []entity.Role{entity.RoleUser},
		IsActive: true,
	}

	if payload.Picture != "" {
		image := &entity.Image{
			Key:  "google/" + payload.Subject,
			Name: "google-avatar",
			URL:  payload.Picture,
		}
		if err := uc.images.Create(image); err != nil {
			uc.log.Error("[auth] avatar create failed: %v", err)
			return nil, "", apperr.ErrInternal
		}
		user.ImageID = image.ID
	}

	if err := uc.users.Create(user); err != nil {
		uc.log.Error("[auth] google provisioning failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	token, err := uc.tokens.GenerateToken(user.ID, entity.RoleNames(user.Roles), user.TokenVersion)
	if err != nil {
		uc.log.Error("[auth] token generation failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	uc.log.Info("[auth] provisioned google account %s", user.Username)
	return user, token, nil
}

// googleUsername derives a username from the token payload, falling back to
// the email local part, then suffixes it until it is free.
func (uc *authUseCase) googleUsername(payload *google.Payload) string {
	base := strings.TrimSpace(payload.Name)
	if base == "" {
		base = payload.Email
		if at := strings.Index(base, "@"); at > 0 {
			base = base[:at]
		}
	}

	candidate := base
	for i := 1; i < 100; i++ {
		taken, err := uc.users.UsernameTaken(candidate)
		if err != nil || !taken {
			return candidate
		}
		candidate = base + "_" + payload.Subject[:min(4+i, len(payload.Subject))]
	}
	return base + "_" + payload.Subject
}
