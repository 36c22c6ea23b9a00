package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/pkg/apperrors"
)

type fakeTracerService struct {
	resp        *dto.SubmitTracerResponse
	err         error
	gotDocument *multipart.FileHeader
}

func (f *fakeTracerService) Submit(_ context.Context, _ *dto.SubmitTracerRequest, document *multipart.FileHeader) (*dto.SubmitTracerResponse, error) {
	f.gotDocument = document
	return f.resp, f.err
}

type fakeRosterService struct {
	entries []dto.RosterEntry
	err     error
}

func (f *fakeRosterService) GetFullRoster(_ context.Context) ([]dto.RosterEntry, error) {
	return f.entries, f.err
}

func newTracerTestRouter(tracerSvc *fakeTracerService, rosterSvc *fakeRosterService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewTracerController(tracerSvc, rosterSvc)
	router := gin.New()
	router.POST("/questionnaire/submit", controller.Submit)
	router.GET("/tracer/all", controller.GetAll)
	return router
}

// buildSubmitForm builds a multipart body with the JSON payload and an
// optional proof file.
func buildSubmitForm(t *testing.T, payload string, withFile bool) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if payload != "" {
		require.NoError(t, writer.WriteField("data", payload))
	}
	if withFile {
		part, err := writer.CreateFormFile("bukti_kuliah", "bukti.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 dummy"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func validSubmitPayload() string {
	return `{
		"id_alumni": 7,
		"alamat_email": "budi@example.com",
		"no_telepon": "081234567890",
		"status": "BKRJ",
		"jawaban_kuesioner": {"1": 2, "2": 1}
	}`
}

func TestSubmitSuccess(t *testing.T) {
	tracerSvc := &fakeTracerService{resp: &dto.SubmitTracerResponse{
		IDAlumni: 7,
		IDTracer: 3,
		Status:   "BKRJ",
	}}
	router := newTracerTestRouter(tracerSvc, &fakeRosterService{})

	body, contentType := buildSubmitForm(t, validSubmitPayload(), false)
	req := httptest.NewRequest(http.MethodPost, "/questionnaire/submit", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, tracerSvc.gotDocument)

	var resp struct {
		Data dto.SubmitTracerResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Data.IDTracer)
}

func TestSubmitPassesDocumentThrough(t *testing.T) {
	tracerSvc := &fakeTracerService{resp: &dto.SubmitTracerResponse{IDAlumni: 7}}
	router := newTracerTestRouter(tracerSvc, &fakeRosterService{})

	body, contentType := buildSubmitForm(t, validSubmitPayload(), true)
	req := httptest.NewRequest(http.MethodPost, "/questionnaire/submit", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, tracerSvc.gotDocument)
	assert.Equal(t, "bukti.pdf", tracerSvc.gotDocument.Filename)
}

func TestSubmitPayloadErrors(t *testing.T) {
	router := newTracerTestRouter(&fakeTracerService{}, &fakeRosterService{})

	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing data field", payload: ""},
		{name: "malformed json", payload: `{"id_alumni": }`},
		{name: "missing required fields", payload: `{"id_alumni": 7}`},
		{name: "bad email", payload: `{"id_alumni":7,"alamat_email":"nope","no_telepon":"081234567890","status":"BKRJ","jawaban_kuesioner":{"1":2}}`},
		{name: "empty answers", payload: `{"id_alumni":7,"alamat_email":"budi@example.com","no_telepon":"081234567890","status":"BKRJ","jawaban_kuesioner":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := buildSubmitForm(t, tt.payload, false)
			req := httptest.NewRequest(http.MethodPost, "/questionnaire/submit", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestSubmitMissingRequirement(t *testing.T) {
	tracerSvc := &fakeTracerService{err: apperrors.NewMissingRequirementError("pendidikan", "bukti_kuliah")}
	router := newTracerTestRouter(tracerSvc, &fakeRosterService{})

	payload := `{"id_alumni":7,"alamat_email":"budi@example.com","no_telepon":"081234567890","status":"PEND","jawaban_kuesioner":{"1":2}}`
	body, contentType := buildSubmitForm(t, payload, false)
	req := httptest.NewRequest(http.MethodPost, "/questionnaire/submit", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeMissingRequirement, resp.Error.Code)

	details, ok := resp.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.ElementsMatch(t, []interface{}{"pendidikan", "bukti_kuliah"}, details["missing"])
}

func TestSubmitAlumniNotFound(t *testing.T) {
	tracerSvc := &fakeTracerService{err: apperrors.ErrAlumniNotFound}
	router := newTracerTestRouter(tracerSvc, &fakeRosterService{})

	body, contentType := buildSubmitForm(t, validSubmitPayload(), false)
	req := httptest.NewRequest(http.MethodPost, "/questionnaire/submit", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAllRoster(t *testing.T) {
	rosterSvc := &fakeRosterService{entries: []dto.RosterEntry{
		{
			Personal: dto.RosterPersonal{IDAlumni: 7, NamaSiswa: "Budi Santoso", TahunLulus: 2022},
			Tracer:   dto.RosterTracer{IsFilled: true, Status: "Bekerja"},
			Kuesioner: []dto.RosterQuestionnaireItem{
				{IDKuesioner: 1, Pertanyaan: "Kualitas pembelajaran", Jawaban: "Baik"},
			},
		},
	}}
	router := newTracerTestRouter(&fakeTracerService{}, rosterSvc)

	req := httptest.NewRequest(http.MethodGet, "/tracer/all", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []dto.RosterEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Budi Santoso", resp.Data[0].Personal.NamaSiswa)
	assert.Nil(t, resp.Data[0].Pendidikan)
}
