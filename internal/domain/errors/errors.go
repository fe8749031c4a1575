package errors

import (
	"errors"
	"net/http"
)

// ErrorType is the closed set of machine-readable error categories exposed
// in the API envelope.
type ErrorType string

const (
	TypeUnauthorized          ErrorType = "UNAUTHORIZED"
	TypeValidationError       ErrorType = "VALIDATION_ERROR"
	TypeNotFound              ErrorType = "NOT_FOUND"
	TypeInsufficientLiquidity ErrorType = "INSUFFICIENT_LIQUIDITY"
	TypePaymentFailed         ErrorType = "PAYMENT_FAILED"
	TypePriceMoved            ErrorType = "PRICE_MOVED"
	TypeSystemError           ErrorType = "SYSTEM_ERROR"
)

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrKYCActive     = errors.New("kyc already active")
	ErrUpstream      = errors.New("upstream dependency failed")
)

// AppError represents an application error with HTTP status and envelope fields
type AppError struct {
	Status  int       `json:"-"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Type    ErrorType `json:"type"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, errType ErrorType, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Type:    errType,
		Err:     err,
	}
}

// Common error constructors

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", message, TypeUnauthorized, ErrUnauthorized)
}

func Validation(code, message string) *AppError {
	return NewAppError(http.StatusBadRequest, code, message, TypeValidationError, ErrInvalidInput)
}

func BadRequest(code, message string) *AppError {
	return NewAppError(http.StatusBadRequest, code, message, TypeSystemError, ErrInvalidInput)
}

func NotFound(code, message string) *AppError {
	return NewAppError(http.StatusNotFound, code, message, TypeNotFound, ErrNotFound)
}

func System(code, message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, code, message, TypeSystemError, err)
}
