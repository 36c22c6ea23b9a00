package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pradana/tracerstudy/internal/app/models"
	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/app/repositories"
	"github.com/pradana/tracerstudy/internal/pkg/apperrors"
	"github.com/pradana/tracerstudy/internal/pkg/validation"
)

// AlumniService defines the interface for alumni-related operations
type AlumniService interface {
	Check(ctx context.Context, req *dto.CheckAlumniRequest) (*dto.CheckAlumniResponse, error)
	Create(ctx context.Context, req *dto.CreateAlumniRequest) (*models.Alumni, error)
	GetByID(ctx context.Context, id int64) (*models.Alumni, error)
	GetTracerStatus(ctx context.Context, id int64) (*dto.TracerStatusResponse, error)
}

// alumniServiceImpl implements the AlumniService interface
type alumniServiceImpl struct {
	alumniRepo *repositories.AlumniRepository
}

// NewAlumniService creates a new alumni service instance
func NewAlumniService(alumniRepo *repositories.AlumniRepository) AlumniService {
	return &alumniServiceImpl{alumniRepo: alumniRepo}
}

// Check verifies a claimed alumni identity against the four identifying
// fields. All four must match one row; otherwise the lookup misses.
func (s *alumniServiceImpl) Check(ctx context.Context, req *dto.CheckAlumniRequest) (*dto.CheckAlumniResponse, error) {
	if !validation.ValidIdentity(req.NISN, req.NIS, req.NIK) {
		return nil, fmt.Errorf("%w: identity fields have invalid format", apperrors.ErrValidationFailed)
	}

	id, isFilled, err := s.alumniRepo.FindByIdentity(ctx, req.NISN, req.NIS, req.NIK, req.TanggalLahir)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlumniNotFound) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error checking alumni identity: %w", err)
	}

	return &dto.CheckAlumniResponse{IDAlumni: id, IsFilled: isFilled}, nil
}

// Create inserts a new alumni record together with its empty tracer row.
func (s *alumniServiceImpl) Create(ctx context.Context, req *dto.CreateAlumniRequest) (*models.Alumni, error) {
	if !validation.ValidIdentity(req.NISN, req.NIS, req.NIK) {
		return nil, fmt.Errorf("%w: identity fields have invalid format", apperrors.ErrValidationFailed)
	}

	alumni := &models.Alumni{
		NISN:         req.NISN,
		NIS:          req.NIS,
		NIK:          req.NIK,
		NamaSiswa:    req.NamaSiswa,
		TanggalLahir: req.TanggalLahir,
		TahunLulus:   req.TahunLulus,
	}

	id, err := s.alumniRepo.CreateWithTracer(ctx, alumni)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlumniAlreadyExists) {
			return nil, apperrors.ErrAlumniAlreadyExists
		}
		return nil, fmt.Errorf("error creating alumni: %w", err)
	}
	alumni.ID = id

	return alumni, nil
}

// GetByID retrieves the base fields of one alumnus.
func (s *alumniServiceImpl) GetByID(ctx context.Context, id int64) (*models.Alumni, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid alumni ID", apperrors.ErrValidationFailed)
	}

	alumni, err := s.alumniRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlumniNotFound) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error retrieving alumni: %w", err)
	}
	return alumni, nil
}

// GetTracerStatus reports whether the alumnus has completed the survey.
func (s *alumniServiceImpl) GetTracerStatus(ctx context.Context, id int64) (*dto.TracerStatusResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid alumni ID", apperrors.ErrValidationFailed)
	}

	isFilled, err := s.alumniRepo.GetTracerStatus(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlumniNotFound) {
			return nil, apperrors.ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error retrieving tracer status: %w", err)
	}

	return &dto.TracerStatusResponse{IsFilled: isFilled}, nil
}
