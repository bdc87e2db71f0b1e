package errors

import (
	"fmt"
	"net/http"
)

var (
	ErrUnsupportedLanguage = New(
		CodeValidation,
		"Unsupported language",
		http.StatusBadRequest,
	)

	ErrEmptyBody = New(
		CodeValidation,
		"Request body is empty",
		http.StatusBadRequest,
	)

	ErrNoLanguageProvided = New(
		CodeValidation,
		"At least one language must be provided",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = New(
		CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrAccountInactive = New(
		CodeForbidden,
		"Account is inactive",
		http.StatusForbidden,
	)

	ErrInsufficientRole = New(
		CodeForbidden,
		"Insufficient permissions for this operation",
		http.StatusForbidden,
	)

	ErrDatabaseError = New(
		CodeDatabase,
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		CodeCache,
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// Validation - ошибка валидации входных данных (400)
func Validation(format string, args ...interface{}) *AppError {
	return New(CodeValidation, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

// Conflict - нарушение уникальности или guard-инварианта (409)
func Conflict(format string, args ...interface{}) *AppError {
	return New(CodeConflict, fmt.Sprintf(format, args...), http.StatusConflict)
}

// NotFound - сущность не найдена (404)
func NotFound(format string, args ...interface{}) *AppError {
	return New(CodeNotFound, fmt.Sprintf(format, args...), http.StatusNotFound)
}

// External - отказ внешнего сервиса, можно повторить запрос (503)
func External(format string, args ...interface{}) *AppError {
	return New(CodeExternal, fmt.Sprintf(format, args...), http.StatusServiceUnavailable)
}

// Configuration - отсутствует обязательная настройка (500)
func Configuration(format string, args ...interface{}) *AppError {
	return New(CodeConfiguration, fmt.Sprintf(format, args...), http.StatusInternalServerError)
}

// Unauthorized - запрос без валидной аутентификации (401)
func Unauthorized(format string, args ...interface{}) *AppError {
	return New(CodeUnauthorized, fmt.Sprintf(format, args...), http.StatusUnauthorized)
}
