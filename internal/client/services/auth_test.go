package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beantz/labersaler/internal/client/api"
	"github.com/beantz/labersaler/internal/logging"
)

// ---- fakes shared by the service tests ----

type recordedCall struct {
	Method string
	Path   string
	Body   any
}

// fakeCaller implements api.Caller with canned responses.
type fakeCaller struct {
	Calls []recordedCall

	Resp *api.Response
	Err  error

	// Handler, when set, overrides Resp/Err per call.
	Handler func(method, path string, body any) (*api.Response, error)
}

func (f *fakeCaller) record(method, path string, body any) (*api.Response, error) {
	f.Calls = append(f.Calls, recordedCall{Method: method, Path: path, Body: body})
	if f.Handler != nil {
		return f.Handler(method, path, body)
	}
	return f.Resp, f.Err
}

func (f *fakeCaller) Get(ctx context.Context, path string, opts ...api.CallOption) (*api.Response, error) {
	return f.record(http.MethodGet, path, nil)
}

func (f *fakeCaller) Post(ctx context.Context, path string, body any, opts ...api.CallOption) (*api.Response, error) {
	return f.record(http.MethodPost, path, body)
}

func (f *fakeCaller) Put(ctx context.Context, path string, body any, opts ...api.CallOption) (*api.Response, error) {
	return f.record(http.MethodPut, path, body)
}

func (f *fakeCaller) Delete(ctx context.Context, path string, opts ...api.CallOption) (*api.Response, error) {
	return f.record(http.MethodDelete, path, nil)
}

// memStore is an in-memory token store.
type memStore struct {
	mu    sync.Mutex
	token string
}

func (m *memStore) Get(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memStore) Set(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memStore) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

func ok(body string) *api.Response {
	return &api.Response{Status: http.StatusOK, Body: []byte(body)}
}

// ---- TESTS ----

func TestAuthService_Login_PersistsTokenAndParsesUser(t *testing.T) {
	fc := &fakeCaller{Resp: ok(`{"token":"abc123","user":{"id":7,"nome":"Joana"}}`)}
	store := &memStore{}
	svc := NewAuthService(fc, store)

	session, err := svc.Login(context.Background(), "joana@email.com", "s3nh4")
	require.NoError(t, err)
	require.Equal(t, "abc123", session.Token)
	require.Equal(t, 7, session.UserID)
	require.Equal(t, "Joana", session.Name)

	tok, err := store.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "abc123", tok)

	require.Len(t, fc.Calls, 1)
	require.Equal(t, api.RouteLogin, fc.Calls[0].Path)
	req, okCast := fc.Calls[0].Body.(loginRequest)
	require.True(t, okCast)
	require.Equal(t, "joana@email.com", req.Email)
}

func TestAuthService_Login_UserObjectOptional(t *testing.T) {
	fc := &fakeCaller{Resp: ok(`{"token":"abc123"}`)}
	svc := NewAuthService(fc, &memStore{})

	session, err := svc.Login(context.Background(), "a@b.c", "x")
	require.NoError(t, err)
	require.Equal(t, "abc123", session.Token)
	require.Zero(t, session.UserID)
}

func TestAuthService_Login_MissingTokenFails(t *testing.T) {
	fc := &fakeCaller{Resp: ok(`{}`)}
	store := &memStore{}
	svc := NewAuthService(fc, store)

	_, err := svc.Login(context.Background(), "a@b.c", "x")
	require.Error(t, err)

	tok, _ := store.Get(context.Background())
	require.Empty(t, tok)
}

func TestAuthService_Login_APIErrorPropagates(t *testing.T) {
	apiErr := &api.AuthError{InvalidCredentials: true, Message: "Senha incorreta"}
	fc := &fakeCaller{Err: apiErr}
	store := &memStore{}
	svc := NewAuthService(fc, store)

	_, err := svc.Login(context.Background(), "a@b.c", "errada")
	require.ErrorIs(t, err, error(apiErr))
	require.True(t, api.IsAuth(err))

	tok, _ := store.Get(context.Background())
	require.Empty(t, tok, "no token may be stored on a failed login")
}

func TestAuthService_Logout_ClearsLocallyEvenWhenServerFails(t *testing.T) {
	apiErr := &api.AuthError{}
	fc := &fakeCaller{Err: apiErr}
	store := &memStore{token: "abc123"}
	svc := NewAuthService(fc, store)

	err := svc.Logout(context.Background())
	require.ErrorIs(t, err, error(apiErr))

	tok, _ := store.Get(context.Background())
	require.Empty(t, tok)
	require.Equal(t, api.RouteLogout, fc.Calls[0].Path)
}

func TestAuthService_PasswordResetFlow_PostsExpectedPayloads(t *testing.T) {
	fc := &fakeCaller{Resp: ok(`{"message":"ok"}`)}
	svc := NewAuthService(fc, &memStore{})
	ctx := context.Background()

	require.NoError(t, svc.RequestPasswordReset(ctx, "joana@email.com"))
	require.NoError(t, svc.ValidateResetCode(ctx, "joana@email.com", "123456"))
	require.NoError(t, svc.ResetPassword(ctx, "reset-tok", "novaSenha123"))

	require.Equal(t, api.RouteForgotPassword, fc.Calls[0].Path)
	require.Equal(t, map[string]string{"email": "joana@email.com"}, fc.Calls[0].Body)

	require.Equal(t, api.RouteValidateCode, fc.Calls[1].Path)
	require.Equal(t, map[string]string{"email": "joana@email.com", "token": "123456"}, fc.Calls[1].Body)

	require.Equal(t, api.RouteResetPassword, fc.Calls[2].Path)
	require.Equal(t, map[string]string{"token": "reset-tok", "novaSenha": "novaSenha123"}, fc.Calls[2].Body)
}

// End to end: login against a fake backend, then verify the next request
// carries the freshly persisted bearer token.
func TestAuthService_LoginThenAuthorizedRequest(t *testing.T) {
	var booksAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case api.RouteLogin:
			w.Write([]byte(`{"token":"abc123"}`))
		case api.RouteBooks:
			booksAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := &memStore{}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	client := api.New(api.Config{BaseURL: srv.URL}, store, log)

	ctx := context.Background()
	_, err := NewAuthService(client, store).Login(ctx, "joana@email.com", "s3nh4")
	require.NoError(t, err)

	_, err = NewBookService(client).List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Bearer abc123", booksAuth)
}
