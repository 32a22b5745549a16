package apperror

import (
	"errors"
	"net/http"
)

// Kind is the closed set of failure categories the usecase and delivery layers match on.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConnection Kind = "connection"
	KindNotFound   Kind = "not_found"
	KindDuplicate  Kind = "duplicate"
	KindInternal   Kind = "internal"
)

const (
	MsgConnection     = "No se pudo conectar con la base de datos. Por favor, asegúrese de que el servidor de base de datos esté en ejecución."
	MsgNotFound       = "No se pudo encontrar el registro del candidato con el ID proporcionado."
	MsgDuplicateEmail = "The email already exists in the database"
	MsgInternal       = "An unexpected error occurred. Please try again later."
)

type AppError struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, code int, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation marks a user-correctable field failure.
func Validation(message string) *AppError {
	return New(KindValidation, http.StatusBadRequest, message, nil)
}

func BadRequest(message string) *AppError {
	return New(KindValidation, http.StatusBadRequest, message, nil)
}

func Connection(err error) *AppError {
	return New(KindConnection, http.StatusServiceUnavailable, MsgConnection, err)
}

func NotFound(message string) *AppError {
	return New(KindNotFound, http.StatusNotFound, message, nil)
}

func NotFoundCause(message string, err error) *AppError {
	return New(KindNotFound, http.StatusNotFound, message, err)
}

func Duplicate(message string, err error) *AppError {
	return New(KindDuplicate, http.StatusConflict, message, err)
}

func Internal(err error) *AppError {
	return New(KindInternal, http.StatusInternalServerError, MsgInternal, err)
}

// KindOf reports the kind of err, or KindInternal when err carries no AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
