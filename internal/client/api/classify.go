package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// errorBody is the backend's failure payload: either {message} / {error},
// or {errors: [{msg|message, path|field}, ...]} for validation failures.
type errorBody struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Errors  []fieldErrorDTO `json:"errors"`
}

type fieldErrorDTO struct {
	Msg     string `json:"msg"`
	Message string `json:"message"`
	Path    string `json:"path"`
	Field   string `json:"field"`
}

func (d fieldErrorDTO) toFieldError() FieldError {
	msg := d.Msg
	if msg == "" {
		msg = d.Message
	}
	field := d.Path
	if field == "" {
		field = d.Field
	}
	return FieldError{Field: field, Message: msg}
}

func (b errorBody) message() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

// classify maps a failed response to exactly one error variant; first match
// wins. Transport failures never reach here (they are classified in do).
//
// On a 401 outside the login route the stored token is deleted before
// returning, so no later request can go out with the stale credential.
// A 401 (or a leaked 404) on the login route itself never touches the token:
// there was no session to invalidate.
func (c *Client) classify(ctx context.Context, path string, status int, body []byte) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb) // HTML or empty bodies just leave eb zero

	isLogin := path == RouteLogin

	switch {
	case status == http.StatusBadRequest && len(eb.Errors) > 0:
		fields := make([]FieldError, 0, len(eb.Errors))
		for _, d := range eb.Errors {
			fields = append(fields, d.toFieldError())
		}
		return &ValidationError{Status: status, Fields: fields}

	case status == http.StatusBadRequest && path == RouteValidateCode:
		return &ValidationError{Status: status, Message: orDefault(eb.message(), msgInvalidCode)}

	case status == http.StatusUnauthorized:
		if isLogin {
			return &AuthError{InvalidCredentials: true, Message: orDefault(eb.message(), msgInvalidCredentials)}
		}
		c.clearToken(ctx)
		return &AuthError{Message: msgSessionExpired}

	case status == http.StatusForbidden:
		return &PermissionError{Message: eb.message()}

	case status == http.StatusNotFound:
		if isLogin {
			// Do not leak whether the account exists.
			return &AuthError{InvalidCredentials: true, Message: msgInvalidCredentials}
		}
		return &NotFoundError{Message: eb.message()}

	case status >= 500:
		if looksLikeHTML(body) {
			return &ServerError{Status: status, Message: msgServerProcessing}
		}
		return &ServerError{Status: status, Message: msgServerError}

	case eb.message() != "":
		return &UnclassifiedError{Status: status, Message: eb.message()}

	default:
		return &UnclassifiedError{Status: status, Message: msgUnknown}
	}
}

// clearToken removes the stored session token and the cached Authorization
// default header. The storage delete is synchronous: it completes before the
// classified error is returned to the caller.
func (c *Client) clearToken(ctx context.Context) {
	if err := c.tokens.Delete(ctx); err != nil {
		c.log.Error(ctx, "failed to clear session token", "error", err)
	}
	c.mu.Lock()
	delete(c.defaultHeaders, "Authorization")
	c.mu.Unlock()
}

func looksLikeHTML(body []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(body), []byte("<"))
}
