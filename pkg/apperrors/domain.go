package apperrors

import "net/http"

// Factories for recurring domain errors. Repositories return their own
// sentinel errors; services translate them through these.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// Predefined errors for the auth flow.
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "auth", "Email is already registered", http.StatusConflict)
	ErrWeakPassword       = New(CodeValidationFailed, "auth", "Password is too weak", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidOperation, "auth", "Invalid user role for this operation", http.StatusBadRequest)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired session", http.StatusUnauthorized)

	// The admin UI expects this exact message on a failed role gate.
	ErrNoAutorizado = New(CodeForbidden, "auth", "No autorizado", http.StatusForbidden)
)
