// Package apperr is the closed catalog of failure conditions the API can
// report. Every value carries the HTTP status it maps to; handlers mirror
// that status onto the transport layer and never invent their own.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidID       = &Error{http.StatusBadRequest, "Invalid user id"}
	ErrInvalidUserData = &Error{http.StatusBadRequest, "Invalid user data"}
	ErrCannotActOnSelf = &Error{http.StatusBadRequest, "Cannot perform this action on your own account"}
	ErrUserDeleted     = &Error{http.StatusBadRequest, "User is already deleted"}
	ErrUserNotDeleted  = &Error{http.StatusBadRequest, "User is not deleted"}

	ErrUnauthorized     = &Error{http.StatusUnauthorized, "Unauthorized"}
	ErrTokenInvalidated = &Error{http.StatusUnauthorized, "Session has been invalidated"}

	ErrForbidden          = &Error{http.StatusForbidden, "Insufficient permissions"}
	ErrAdminCannotLogout  = &Error{http.StatusForbidden, "Cannot force logout an admin or super admin"}
	ErrAdminCannotDelete  = &Error{http.StatusForbidden, "Cannot delete an admin or super admin"}
	ErrAdminCannotRestore = &Error{http.StatusForbidden, "Cannot restore an admin or super admin"}

	ErrUserNotFound       = &Error{http.StatusNotFound, "User not found"}
	ErrImageNotFound      = &Error{http.StatusNotFound, "Image not found"}
	ErrTempUploadNotFound = &Error{http.StatusNotFound, "Temporary upload not found"}

	ErrInvalidPassword = &Error{http.StatusConflict, "Invalid password"}
	ErrEmailExists     = &Error{http.StatusConflict, "Email already registered"}
	ErrUsernameExists  = &Error{http.StatusConflict, "Username already taken"}
	ErrGoogleIDExists  = &Error{http.StatusConflict, "Google account already linked"}

	// ErrInternal carries a generic message; the real cause is logged, never
	// surfaced.
	ErrInternal = &Error{http.StatusInternalServerError, "Something went wrong"}
)

// Invalid builds a 400 with a request-specific message, e.g. listing the
// rejected role names from a filter.
func Invalid(format string, args ...interface{}) *Error {
	return &Error{http.StatusBadRequest, fmt.Sprintf(format, args...)}
}

// From maps any error to its catalog entry; anything untyped is reported as
// ErrInternal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal
}
