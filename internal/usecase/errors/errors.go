package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInternalError = errors.New("internal server error")
)

// Auth errors
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Deck errors
var (
	ErrDeckNotFound     = errors.New("deck not found")
	ErrDeckAccessDenied = errors.New("access denied to this deck")
	ErrDatasetMissing   = errors.New("dataset reference missing")
	ErrInvalidTimeLimit = errors.New("time limit must not be negative")
	ErrExportFailed     = errors.New("deck export failed")
)

// User errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUserNotActive = errors.New("user is not active")
)
