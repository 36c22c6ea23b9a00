package services

import (
	"context"
	"fmt"

	"github.com/pradana/tracerstudy/internal/app/models"
	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/app/repositories"
	"github.com/pradana/tracerstudy/internal/pkg/apperrors"
)

// ReferenceService defines the interface for reference data lookups
type ReferenceService interface {
	GetInstitutionsWithPrograms(ctx context.Context) ([]dto.InstitutionWithPrograms, error)
	GetProgramsByInstitution(ctx context.Context, institutionID int64) ([]models.Program, error)
	GetQuestionnaire(ctx context.Context) (*dto.QuestionnaireReference, error)
	GetAnswers(ctx context.Context) ([]models.Answer, error)
	GetStatuses(ctx context.Context) ([]models.Status, error)
	GetMetadata(ctx context.Context) (*dto.QuestionnaireMetadata, error)
}

// referenceServiceImpl implements the ReferenceService interface
type referenceServiceImpl struct {
	referenceRepo *repositories.ReferenceRepository
}

// NewReferenceService creates a new reference service instance
func NewReferenceService(referenceRepo *repositories.ReferenceRepository) ReferenceService {
	return &referenceServiceImpl{referenceRepo: referenceRepo}
}

// groupInstitutionPrograms folds the flat join rows into one entry per
// institution. First-seen institution order is preserved and programs are
// appended in row order.
func groupInstitutionPrograms(rows []repositories.InstitutionProgramRow) []dto.InstitutionWithPrograms {
	grouped := []dto.InstitutionWithPrograms{}
	index := map[int64]int{}

	for _, row := range rows {
		i, seen := index[row.InstitutionID]
		if !seen {
			grouped = append(grouped, dto.InstitutionWithPrograms{
				IDPerguruanTinggi: row.InstitutionID,
				PerguruanTinggi:   row.InstitutionName,
				ProgramStudi:      []dto.ProgramEntry{},
			})
			i = len(grouped) - 1
			index[row.InstitutionID] = i
		}
		grouped[i].ProgramStudi = append(grouped[i].ProgramStudi, dto.ProgramEntry{
			IDProgramStudi: row.ProgramID,
			ProgramStudi:   row.ProgramName,
		})
	}

	return grouped
}

// GetInstitutionsWithPrograms returns every institution with its offered
// programs nested.
func (s *referenceServiceImpl) GetInstitutionsWithPrograms(ctx context.Context) ([]dto.InstitutionWithPrograms, error) {
	rows, err := s.referenceRepo.GetInstitutionPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving institution programs: %w", err)
	}
	return groupInstitutionPrograms(rows), nil
}

// GetProgramsByInstitution returns the programs offered by one institution.
func (s *referenceServiceImpl) GetProgramsByInstitution(ctx context.Context, institutionID int64) ([]models.Program, error) {
	if institutionID <= 0 {
		return nil, fmt.Errorf("%w: invalid institution ID", apperrors.ErrValidationFailed)
	}

	programs, err := s.referenceRepo.GetProgramsByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	return programs, nil
}

// GetQuestionnaire returns all questions with the candidate answers.
func (s *referenceServiceImpl) GetQuestionnaire(ctx context.Context) (*dto.QuestionnaireReference, error) {
	questions, err := s.referenceRepo.GetQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving questions: %w", err)
	}
	answers, err := s.referenceRepo.GetAnswers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving answers: %w", err)
	}

	return &dto.QuestionnaireReference{Pertanyaan: questions, Jawaban: answers}, nil
}

// GetAnswers returns all candidate answers.
func (s *referenceServiceImpl) GetAnswers(ctx context.Context) ([]models.Answer, error) {
	answers, err := s.referenceRepo.GetAnswers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving answers: %w", err)
	}
	return answers, nil
}

// GetStatuses returns all survey status options.
func (s *referenceServiceImpl) GetStatuses(ctx context.Context) ([]models.Status, error) {
	statuses, err := s.referenceRepo.GetStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving statuses: %w", err)
	}
	return statuses, nil
}

// GetMetadata returns the combined reference set the survey form needs.
func (s *referenceServiceImpl) GetMetadata(ctx context.Context) (*dto.QuestionnaireMetadata, error) {
	questions, err := s.referenceRepo.GetQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving questions: %w", err)
	}
	answers, err := s.referenceRepo.GetAnswers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving answers: %w", err)
	}
	statuses, err := s.referenceRepo.GetStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving statuses: %w", err)
	}
	sources, err := s.referenceRepo.GetFundingSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving funding sources: %w", err)
	}

	return &dto.QuestionnaireMetadata{
		Pertanyaan:  questions,
		Jawaban:     answers,
		Status:      statuses,
		SumberBiaya: sources,
	}, nil
}
