package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidRole       = errors.New("invalid role")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Generation errors
	ErrDatasetMissing   = errors.New("dataset reference missing")
	ErrInvalidTimeLimit = errors.New("time limit must not be negative")
	ErrGenerationFailed = errors.New("deck generation failed")

	// Deck errors
	ErrDeckNotFound     = errors.New("deck not found")
	ErrDeckAccessDenied = errors.New("deck access denied")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)
