package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/auth"
	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/repository"
)

var authSecret = []byte("test-secret")

func newAuthRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	h := NewAuthHandler(repository.NewAdminRepository(db), authSecret, time.Hour)
	return newRouter(h), mock
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthLogin(t *testing.T) {
	r, mock := newAuthRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM admins WHERE username = $1 AND status = 'active'")).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "status"}).
			AddRow(1, "admin", hashPassword(t, "s3cret"), "active"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE admins SET last_login = NOW() WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := perform(t, r, http.MethodPost, "/api/auth/login",
		`{"username":"admin","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Token string `json:"token"`
			Admin struct {
				ID       int64  `json:"id"`
				Username string `json:"username"`
			} `json:"admin"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "admin", body.Data.Admin.Username)
	require.NotEmpty(t, body.Data.Token)

	// the login response must not leak the password hash
	assert.NotContains(t, rec.Body.String(), "password")

	claims, err := auth.ParseToken(body.Data.Token, authSecret)
	require.NoError(t, err)
	id, err := claims.AdminID()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	r, mock := newAuthRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM admins WHERE username = $1 AND status = 'active'")).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "status"}).
			AddRow(1, "admin", hashPassword(t, "s3cret"), "active"))

	rec := perform(t, r, http.MethodPost, "/api/auth/login",
		`{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "Invalid credentials"}`, rec.Body.String())
}

func TestAuthLoginUnknownUser(t *testing.T) {
	r, mock := newAuthRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM admins WHERE username = $1 AND status = 'active'")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	rec := perform(t, r, http.MethodPost, "/api/auth/login",
		`{"username":"ghost","password":"whatever"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "Invalid credentials"}`, rec.Body.String())
}

func TestAuthLoginMissingFields(t *testing.T) {
	r, _ := newAuthRouter(t)

	rec := perform(t, r, http.MethodPost, "/api/auth/login", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Username and password are required"}`, rec.Body.String())
}

func TestAuthMe(t *testing.T) {
	r, mock := newAuthRouter(t)

	token, err := auth.GenerateToken(1, authSecret, time.Hour)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM admins WHERE id = $1 AND status = 'active'")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "status"}).
			AddRow(1, "admin", "active"))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Username string `json:"username"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "admin", body.Data.Username)
}

func TestAuthMeWithoutToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	rec := perform(t, r, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthUpdateProfile(t *testing.T) {
	r, mock := newAuthRouter(t)

	token, err := auth.GenerateToken(1, authSecret, time.Hour)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE admins SET email = $1 WHERE id = $2 RETURNING *")).
		WithArgs("new@example.com", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(1, "admin", "new@example.com"))

	req := httptest.NewRequest(http.MethodPut, "/api/auth/update-profile",
		strings.NewReader(`{"email":"new@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "new@example.com", body.Data.Email)
}

func TestAuthLogout(t *testing.T) {
	r, _ := newAuthRouter(t)

	rec := perform(t, r, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": {"message": "Logged out successfully"}}`, rec.Body.String())
}
