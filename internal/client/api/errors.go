package api

import (
	"errors"
	"fmt"
	"strings"
)

// User-facing messages surfaced when the backend does not provide one.
// They stay in the backend's language, as the rest of the product does.
const (
	msgConnectionFailure  = "Falha na conexão. Verifique sua internet e tente novamente."
	msgSessionExpired     = "Sessão expirada. Faça login novamente."
	msgInvalidCredentials = "E-mail ou senha inválidos."
	msgInvalidCode        = "Código inválido ou expirado."
	msgPermissionDenied   = "Você não tem permissão para realizar esta ação."
	msgNotFound           = "Recurso não encontrado."
	msgServerError        = "Erro no servidor. Tente novamente mais tarde."
	msgServerProcessing   = "Erro de processamento no servidor. Tente novamente mais tarde."
	msgUnknown            = "Erro desconhecido. Tente novamente."
)

// Error is implemented by every classified API failure. Callers match the
// concrete variant with errors.As (or the Is* helpers below) and display
// UserMessage to the end user.
type Error interface {
	error
	// UserMessage returns a ready-to-display message.
	UserMessage() string
}

// TransportError means no response was received: network unreachable,
// DNS failure, or timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string       { return fmt.Sprintf("transport failure: %v", e.Err) }
func (e *TransportError) Unwrap() error       { return e.Err }
func (e *TransportError) UserMessage() string { return msgConnectionFailure }

// FieldError is one entry of a 400 validation-errors array.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is a 400 response carrying per-field input errors, or a
// rejected one-time reset code (Message set, Fields empty).
type ValidationError struct {
	Status  int
	Fields  []FieldError
	Message string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.ReplaceAll(e.UserMessage(), "\n", "; ")
}

// UserMessage joins the individual field messages with newlines,
// preserving the backend's order.
func (e *ValidationError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "\n")
}

// AuthError is a 401 response. InvalidCredentials marks a failed login
// attempt (no session was invalidated); otherwise the session expired and
// the stored token has already been cleared.
type AuthError struct {
	InvalidCredentials bool
	Message            string
}

func (e *AuthError) Error() string { return "authentication failed: " + e.UserMessage() }

func (e *AuthError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if e.InvalidCredentials {
		return msgInvalidCredentials
	}
	return msgSessionExpired
}

// PermissionError is a 403 response.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string       { return "permission denied: " + e.UserMessage() }
func (e *PermissionError) UserMessage() string { return orDefault(e.Message, msgPermissionDenied) }

// NotFoundError is a 404 response.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string       { return "not found: " + e.UserMessage() }
func (e *NotFoundError) UserMessage() string { return orDefault(e.Message, msgNotFound) }

// ServerError is any 5xx response.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.Status, e.UserMessage())
}
func (e *ServerError) UserMessage() string { return orDefault(e.Message, msgServerError) }

// UnclassifiedError covers every remaining failure; Message carries the
// backend-provided text when there is one.
type UnclassifiedError struct {
	Status  int
	Message string
}

func (e *UnclassifiedError) Error() string {
	return fmt.Sprintf("request failed (status %d): %s", e.Status, e.UserMessage())
}
func (e *UnclassifiedError) UserMessage() string { return orDefault(e.Message, msgUnknown) }

func orDefault(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsAuth reports whether err is an AuthError. Callers conventionally route
// the user back to the login screen when this returns true.
func IsAuth(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

// IsPermission reports whether err is a PermissionError.
func IsPermission(err error) bool {
	var e *PermissionError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsServer reports whether err is a ServerError.
func IsServer(err error) bool {
	var e *ServerError
	return errors.As(err, &e)
}

// UserMessage extracts the display message from any error. Non-classified
// errors map to the generic unknown-error message.
func UserMessage(err error) string {
	var e Error
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return msgUnknown
}
