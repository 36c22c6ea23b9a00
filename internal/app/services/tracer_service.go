package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/jackc/pgx/v5"

	"github.com/pradana/tracerstudy/internal/app/models"
	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/app/repositories"
	"github.com/pradana/tracerstudy/internal/db"
	"github.com/pradana/tracerstudy/internal/pkg/apperrors"
	"github.com/pradana/tracerstudy/internal/pkg/filestorage"
	"github.com/pradana/tracerstudy/internal/pkg/logger"
)

// TracerService defines the interface for the survey submission workflow
type TracerService interface {
	Submit(ctx context.Context, req *dto.SubmitTracerRequest, document *multipart.FileHeader) (*dto.SubmitTracerResponse, error)
}

// tracerServiceImpl implements the TracerService interface
type tracerServiceImpl struct {
	tracerRepo    *repositories.TracerRepository
	alumniRepo    *repositories.AlumniRepository
	referenceRepo *repositories.ReferenceRepository
	fileStorage   filestorage.FileStorage
}

// NewTracerService creates a new tracer service instance
func NewTracerService(
	tracerRepo *repositories.TracerRepository,
	alumniRepo *repositories.AlumniRepository,
	referenceRepo *repositories.ReferenceRepository,
	fileStorage filestorage.FileStorage,
) TracerService {
	return &tracerServiceImpl{
		tracerRepo:    tracerRepo,
		alumniRepo:    alumniRepo,
		referenceRepo: referenceRepo,
		fileStorage:   fileStorage,
	}
}

// checkConditionalRequirements enforces the PEND rule: continuing education
// requires both the education detail and the proof document. Runs before
// any database work so a failing submission performs zero writes.
func checkConditionalRequirements(req *dto.SubmitTracerRequest, document *multipart.FileHeader) error {
	if req.Status != models.StatusContinuingEducation {
		return nil
	}

	var missing []string
	if req.Pendidikan == nil {
		missing = append(missing, "pendidikan")
	}
	if document == nil {
		missing = append(missing, "bukti_kuliah")
	}
	if len(missing) > 0 {
		return apperrors.NewMissingRequirementError(missing...)
	}
	return nil
}

// Submit runs the submission workflow: contact update, tracer overwrite,
// conditional education detail with document upload, and questionnaire
// answer replacement, all inside one transaction. The document upload is
// an external side effect: if the transaction fails afterwards the stored
// object is orphaned rather than compensated, an accepted inconsistency
// window inherited from the workflow design.
func (s *tracerServiceImpl) Submit(ctx context.Context, req *dto.SubmitTracerRequest, document *multipart.FileHeader) (*dto.SubmitTracerResponse, error) {
	if err := checkConditionalRequirements(req, document); err != nil {
		return nil, err
	}

	if _, err := s.alumniRepo.GetByID(ctx, req.IDAlumni); err != nil {
		if errors.Is(err, apperrors.ErrAlumniNotFound) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error loading alumni: %w", err)
	}

	known, err := s.referenceRepo.StatusExists(ctx, req.Status)
	if err != nil {
		return nil, fmt.Errorf("error validating status code: %w", err)
	}
	if !known {
		return nil, fmt.Errorf("%w: unknown status code %q", apperrors.ErrValidationFailed, req.Status)
	}

	var documentURL string
	var staleDocumentURL string
	var tracerID int64
	err = db.WithTransaction(ctx, s.tracerRepo.Pool(), func(ctx context.Context, tx pgx.Tx) error {
		if err := s.tracerRepo.UpdateAlumniContact(ctx, tx, req.IDAlumni, req.AlamatEmail, req.NoTelepon); err != nil {
			return err
		}

		var err error
		tracerID, err = s.tracerRepo.MarkFilled(ctx, tx, req.IDAlumni, req.Status)
		if err != nil {
			return err
		}

		if req.Status == models.StatusContinuingEducation {
			documentURL, err = s.fileStorage.SaveProofDocument(document, req.IDAlumni)
			if err != nil {
				return fmt.Errorf("error storing proof document: %w", err)
			}

			detail := &models.EducationDetail{
				TracerID:        tracerID,
				InstitutionID:   req.Pendidikan.IDPerguruanTinggi,
				ProgramID:       req.Pendidikan.IDProgramStudi,
				TahunMasuk:      req.Pendidikan.TahunMasuk,
				FundingSourceID: req.Pendidikan.IDSumberBiaya,
				BuktiKuliah:     documentURL,
			}
			if err := s.tracerRepo.UpsertEducationDetail(ctx, tx, detail); err != nil {
				return err
			}
		} else {
			// A resubmission may switch away from PEND; drop any stale
			// education detail so it only exists for continuing education.
			staleDocumentURL, err = s.tracerRepo.DeleteEducationDetail(ctx, tx, tracerID)
			if err != nil {
				return err
			}
		}

		return s.tracerRepo.ReplaceAnswers(ctx, tx, tracerID, req.JawabanKuesioner)
	})
	if err != nil {
		if documentURL != "" {
			logger.Warn().Int64("alumniID", req.IDAlumni).Str("url", documentURL).
				Msg("Submission rolled back after document upload, stored object orphaned")
		}
		return nil, err
	}

	if staleDocumentURL != "" {
		// Best effort: the submission already committed, a leftover file
		// only wastes disk space.
		if err := s.fileStorage.DeleteFile(staleDocumentURL); err != nil {
			logger.Warn().Err(err).Str("url", staleDocumentURL).Msg("Failed to remove stale proof document")
		}
	}

	resp := &dto.SubmitTracerResponse{
		IDAlumni:         req.IDAlumni,
		IDTracer:         tracerID,
		Status:           req.Status,
		AlamatEmail:      req.AlamatEmail,
		NoTelepon:        req.NoTelepon,
		JawabanKuesioner: req.JawabanKuesioner,
		BuktiKuliah:      documentURL,
	}
	return resp, nil
}
