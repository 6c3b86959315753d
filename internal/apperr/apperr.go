// Package apperr описывает закрытый набор ошибок приложения и их отображение в HTTP-статусы.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindConflict
)

const defaultMessage = "Server error"

// Error - ошибка уровня сервиса с типом, сообщением для клиента и необязательными деталями
type Error struct {
	Kind    Kind
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status возвращает HTTP-статус для ошибки. Conflict отдается как 400.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest, KindConflict:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal оборачивает непредвиденную ошибку; клиент увидит только "Server error"
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: defaultMessage, Err: err}
}

// WithDetails добавляет к ошибке дополнительные поля для клиента
func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

// From приводит любую ошибку к *Error, по умолчанию - Internal
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Message == "" {
			cp := *appErr
			cp.Message = defaultMessage
			return &cp
		}
		return appErr
	}
	return Internal(err)
}

// Is сообщает, имеет ли ошибка указанный тип
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
