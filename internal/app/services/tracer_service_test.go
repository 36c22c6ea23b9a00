package services

import (
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/pkg/apperrors"
)

func TestCheckConditionalRequirements(t *testing.T) {
	education := &dto.EducationDetailRequest{
		IDPerguruanTinggi: 1,
		IDProgramStudi:    2,
		TahunMasuk:        2024,
		IDSumberBiaya:     1,
	}
	document := &multipart.FileHeader{Filename: "bukti.pdf"}

	tests := []struct {
		name        string
		status      string
		pendidikan  *dto.EducationDetailRequest
		document    *multipart.FileHeader
		wantMissing []string
	}{
		{name: "non-PEND without anything", status: "BKRJ"},
		{name: "non-PEND with stray education", status: "BKRJ", pendidikan: education},
		{name: "PEND complete", status: "PEND", pendidikan: education, document: document},
		{name: "PEND missing both", status: "PEND", wantMissing: []string{"pendidikan", "bukti_kuliah"}},
		{name: "PEND missing document", status: "PEND", pendidikan: education, wantMissing: []string{"bukti_kuliah"}},
		{name: "PEND missing education", status: "PEND", document: document, wantMissing: []string{"pendidikan"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &dto.SubmitTracerRequest{
				IDAlumni:   1,
				Status:     tt.status,
				Pendidikan: tt.pendidikan,
			}

			err := checkConditionalRequirements(req, tt.document)

			if len(tt.wantMissing) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrMissingRequirement)

			var customErr *apperrors.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, tt.wantMissing, customErr.Details["missing"])
		})
	}
}
