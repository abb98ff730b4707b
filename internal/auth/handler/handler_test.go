package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdiego26/muti-user-task-manager-api/internal/auth/credentials"
	"github.com/rdiego26/muti-user-task-manager-api/internal/session"
)

type stubVerifier struct {
	userID string
	err    error
	calls  int
}

func (s *stubVerifier) FindWithCredentials(_ context.Context, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.userID, nil
}

type stubRegistrar struct {
	userID string
	err    error
}

func (s *stubRegistrar) Register(_ context.Context, _, _, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.userID, nil
}

func newTestRouter(verifier *stubVerifier, registrar Registrar) (*gin.Engine, *session.Service) {
	gin.SetMode(gin.TestMode)

	svc := session.NewService(session.NewMemoryStore(), verifier, 24*time.Hour, 32)

	router := gin.New()
	NewHandler(svc, registrar).RegisterRoutes(router)
	return router, svc
}

func doJSON(router *gin.Engine, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginMissingPassword(t *testing.T) {
	verifier := &stubVerifier{userID: "user-1"}
	router, _ := newTestRouter(verifier, &stubRegistrar{})

	rec := doJSON(router, http.MethodPost, "/api/login", `{"email":"a@b.com"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, verifier.calls, "service must not be invoked on schema failure")

	var body struct {
		Errors []validationError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "should have required property 'password'", body.Errors[0].Message)
	assert.Equal(t, "password", body.Errors[0].Field)
}

func TestLoginMissingEmail(t *testing.T) {
	router, _ := newTestRouter(&stubVerifier{userID: "user-1"}, &stubRegistrar{})

	rec := doJSON(router, http.MethodPost, "/api/login", `{"password":"secret-pass"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []validationError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "should have required property 'email'", body.Errors[0].Message)
}

func TestLoginEmptyBody(t *testing.T) {
	router, _ := newTestRouter(&stubVerifier{userID: "user-1"}, &stubRegistrar{})

	rec := doJSON(router, http.MethodPost, "/api/login", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	router, _ := newTestRouter(&stubVerifier{err: credentials.ErrInvalidCredentials}, &stubRegistrar{})

	rec := doJSON(router, http.MethodPost, "/api/login", `{"email":"a@b.com","password":"nope"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "token")
}

func TestLoginSuccess(t *testing.T) {
	router, _ := newTestRouter(&stubVerifier{userID: "user-1"}, &stubRegistrar{})

	rec := doJSON(router, http.MethodPost, "/api/login", `{"email":"a@b.com","password":"secret-pass"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sess session.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "user-1", sess.UserID)
	assert.NotEmpty(t, sess.Token)
	assert.True(t, sess.ExpiresAt.After(time.Now()))
}

func TestLoginVerifierDown(t *testing.T) {
	router, _ := newTestRouter(&stubVerifier{err: assert.AnError}, &stubRegistrar{})

	rec := doJSON(router, http.MethodPost, "/api/login", `{"email":"a@b.com","password":"secret-pass"}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error(), "internal detail must not leak")
}

func TestLogoutMissingHeader(t *testing.T) {
	router, _ := newTestRouter(&stubVerifier{userID: "user-1"}, &stubRegistrar{})

	rec := doJSON(router, http.MethodGet, "/api/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutUnknownToken(t *testing.T) {
	router, _ := newTestRouter(&stubVerifier{userID: "user-1"}, &stubRegistrar{})

	rec := doJSON(router, http.MethodGet, "/api/logout", "", map[string]string{
		session.TokenHeader: "never-issued",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutSuccess(t *testing.T) {
	router, svc := newTestRouter(&stubVerifier{userID: "user-1"}, &stubRegistrar{})

	sess, err := svc.Login(context.Background(), "a@b.com", "secret-pass")
	require.NoError(t, err)

	rec := doJSON(router, http.MethodGet, "/api/logout", "", map[string]string{
		session.TokenHeader: sess.Token,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err = svc.FindActiveToken(context.Background(), sess.Token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRegisterSuccess(t *testing.T) {
	router, _ := newTestRouter(
		&stubVerifier{userID: "user-9"},
		&stubRegistrar{userID: "user-9"},
	)

	rec := doJSON(router, http.MethodPost, "/api/register",
		`{"name":"Ada","email":"ada@b.com","password":"secret-pass"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var sess session.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.Equal(t, "user-9", sess.UserID)
	assert.NotEmpty(t, sess.Token)
}

func TestRegisterWeakPassword(t *testing.T) {
	router, _ := newTestRouter(
		&stubVerifier{userID: "user-9"},
		&stubRegistrar{err: credentials.ErrPasswordTooShort},
	)

	rec := doJSON(router, http.MethodPost, "/api/register",
		`{"email":"ada@b.com","password":"short"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterStoreDown(t *testing.T) {
	dbErr := errors.New("pq: connection refused host=10.0.0.5")
	router, _ := newTestRouter(
		&stubVerifier{userID: "user-9"},
		&stubRegistrar{err: dbErr},
	)

	rec := doJSON(router, http.MethodPost, "/api/register",
		`{"email":"ada@b.com","password":"secret-pass"}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), dbErr.Error(), "internal detail must not leak")
}

func TestRegisterDuplicate(t *testing.T) {
	router, _ := newTestRouter(
		&stubVerifier{userID: "user-9"},
		&stubRegistrar{err: credentials.ErrAlreadyRegistered},
	)

	rec := doJSON(router, http.MethodPost, "/api/register",
		`{"email":"ada@b.com","password":"secret-pass"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
