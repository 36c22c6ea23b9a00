package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/pkg/apperrors"
)

type fakeAuthService struct {
	resp *dto.LoginResponse
	err  error
}

func (f *fakeAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.resp, f.err
}

func newAuthTestRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAuthController(svc)
	router := gin.New()
	router.POST("/login", controller.Login)
	return router
}

func TestLoginSuccess(t *testing.T) {
	svc := &fakeAuthService{resp: &dto.LoginResponse{
		Message:     "Login successful",
		Data:        dto.LoginUserData{Nama: "Administrator"},
		AccessToken: "token",
		ExpiresIn:   3600,
	}}
	router := newAuthTestRouter(svc)

	rec := performRequest(router, http.MethodPost, "/login", `{"email":"admin@tracerstudy.sch.id","password":"Admin123!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Administrator", resp.Data.Nama)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{err: apperrors.ErrInvalidCredentials}
	router := newAuthTestRouter(svc)

	rec := performRequest(router, http.MethodPost, "/login", `{"email":"admin@tracerstudy.sch.id","password":"WrongPass1!"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, resp.Error.Code)
}

func TestLoginValidation(t *testing.T) {
	router := newAuthTestRouter(&fakeAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "bad email", body: `{"email":"nope","password":"Admin123!"}`},
		{name: "short password", body: `{"email":"admin@tracerstudy.sch.id","password":"short"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performRequest(router, http.MethodPost, "/login", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
