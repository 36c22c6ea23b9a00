package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradana/tracerstudy/internal/app/models"
	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/pkg/apperrors"
)

type fakeAlumniService struct {
	checkResp  *dto.CheckAlumniResponse
	checkErr   error
	alumni     *models.Alumni
	getErr     error
	statusResp *dto.TracerStatusResponse
	statusErr  error
}

func (f *fakeAlumniService) Check(_ context.Context, _ *dto.CheckAlumniRequest) (*dto.CheckAlumniResponse, error) {
	return f.checkResp, f.checkErr
}

func (f *fakeAlumniService) Create(_ context.Context, _ *dto.CreateAlumniRequest) (*models.Alumni, error) {
	return f.alumni, f.getErr
}

func (f *fakeAlumniService) GetByID(_ context.Context, _ int64) (*models.Alumni, error) {
	return f.alumni, f.getErr
}

func (f *fakeAlumniService) GetTracerStatus(_ context.Context, _ int64) (*dto.TracerStatusResponse, error) {
	return f.statusResp, f.statusErr
}

func newAlumniTestRouter(svc *fakeAlumniService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAlumniController(svc)
	router := gin.New()
	router.POST("/alumni/check", controller.Check)
	router.GET("/questionnaire/detail/:id_alumni", controller.Detail)
	router.GET("/tracer/status/:id_alumni", controller.TracerStatus)
	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckAlumniFound(t *testing.T) {
	svc := &fakeAlumniService{checkResp: &dto.CheckAlumniResponse{IDAlumni: 42, IsFilled: false}}
	router := newAlumniTestRouter(svc)

	body := `{"nisn":"0051234567","nis":"12345","nik":"3173051234567890","tanggal_lahir":"2004-05-17"}`
	rec := performRequest(router, http.MethodPost, "/alumni/check", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data dto.CheckAlumniResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Data.IDAlumni)
	assert.False(t, resp.Data.IsFilled)
}

func TestCheckAlumniNotFound(t *testing.T) {
	svc := &fakeAlumniService{checkErr: apperrors.ErrAlumniNotFound}
	router := newAlumniTestRouter(svc)

	body := `{"nisn":"0051234567","nis":"12345","nik":"3173051234567890","tanggal_lahir":"2004-05-17"}`
	rec := performRequest(router, http.MethodPost, "/alumni/check", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}

func TestCheckAlumniValidation(t *testing.T) {
	router := newAlumniTestRouter(&fakeAlumniService{})

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "short nik", body: `{"nisn":"0051234567","nis":"12345","nik":"317305","tanggal_lahir":"2004-05-17"}`},
		{name: "non-numeric nisn", body: `{"nisn":"abcdefghij","nis":"12345","nik":"3173051234567890","tanggal_lahir":"2004-05-17"}`},
		{name: "bad date format", body: `{"nisn":"0051234567","nis":"12345","nik":"3173051234567890","tanggal_lahir":"17-05-2004"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performRequest(router, http.MethodPost, "/alumni/check", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
		})
	}
}

func TestAlumniDetail(t *testing.T) {
	svc := &fakeAlumniService{alumni: &models.Alumni{ID: 7, NamaSiswa: "Budi Santoso", TahunLulus: 2022}}
	router := newAlumniTestRouter(svc)

	rec := performRequest(router, http.MethodGet, "/questionnaire/detail/7", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.Alumni `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Budi Santoso", resp.Data.NamaSiswa)
}

func TestAlumniDetailInvalidID(t *testing.T) {
	router := newAlumniTestRouter(&fakeAlumniService{})

	rec := performRequest(router, http.MethodGet, "/questionnaire/detail/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTracerStatus(t *testing.T) {
	svc := &fakeAlumniService{statusResp: &dto.TracerStatusResponse{IsFilled: true}}
	router := newAlumniTestRouter(svc)

	rec := performRequest(router, http.MethodGet, "/tracer/status/7", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data dto.TracerStatusResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Data.IsFilled)
}

func TestTracerStatusNotFound(t *testing.T) {
	svc := &fakeAlumniService{statusErr: apperrors.ErrAlumniNotFound}
	router := newAlumniTestRouter(svc)

	rec := performRequest(router, http.MethodGet, "/tracer/status/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
