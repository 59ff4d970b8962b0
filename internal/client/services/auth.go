// Package services contains the application services behind the screens:
// authentication, the book catalog, reviews, and the user profile. Each
// service talks to the backend through the api.Caller surface only.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/beantz/labersaler/internal/client/api"
	"github.com/beantz/labersaler/internal/client/models"
	"github.com/beantz/labersaler/internal/client/tokenstore"
)

// AuthService defines the authentication operations.
//
// Contract:
//   - Login: authenticate and persist the returned session token.
//   - Register: create a new account.
//   - Logout: invalidate the session server-side and clear the local token.
//   - RequestPasswordReset / ValidateResetCode / ResetPassword: the e-mail +
//     one-time-code recovery flow.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, reg models.Registration) error
	Logout(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error
	ValidateResetCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	api    api.Caller
	tokens tokenstore.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and token store.
func NewAuthService(c api.Caller, tokens tokenstore.Store) AuthService {
	return &authService{api: c, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  *struct {
		ID   int    `json:"id"`
		Name string `json:"nome"`
	} `json:"user"`
}

// Login authenticates against the backend and stores the returned token so
// every subsequent request carries it. The optional user object in the
// response fills in Session.UserID/Name when present.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := a.api.Post(ctx, api.RouteLogin, loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var payload loginResponse
	if err := resp.Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Token == "" {
		return nil, errors.New("login response carried no token")
	}

	if err := a.tokens.Set(ctx, payload.Token); err != nil {
		return nil, fmt.Errorf("failed to persist session token: %w", err)
	}

	session := &models.Session{Token: payload.Token}
	if payload.User != nil {
		session.UserID = payload.User.ID
		session.Name = payload.User.Name
	}
	return session, nil
}

func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	_, err := a.api.Post(ctx, api.RouteRegister, reg)
	return err
}

// Logout invalidates the session server-side, then clears the local token.
// The local clear happens even when the server call fails, so the device
// never keeps a credential the user asked to drop.
func (a *authService) Logout(ctx context.Context) error {
	_, apiErr := a.api.Post(ctx, api.RouteLogout, nil)

	if err := a.tokens.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return apiErr
}

func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := a.api.Post(ctx, api.RouteForgotPassword, map[string]string{"email": email})
	return err
}

func (a *authService) ValidateResetCode(ctx context.Context, email, code string) error {
	_, err := a.api.Post(ctx, api.RouteValidateCode, map[string]string{"email": email, "token": code})
	return err
}

func (a *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	_, err := a.api.Post(ctx, api.RouteResetPassword, map[string]string{"token": token, "novaSenha": newPassword})
	return err
}
