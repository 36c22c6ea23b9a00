package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pradana/tracerstudy/internal/app/models"
	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/app/repositories"
	"github.com/pradana/tracerstudy/internal/pkg/helpers"
)

// RosterService defines the interface for the full roster report
type RosterService interface {
	GetFullRoster(ctx context.Context) ([]dto.RosterEntry, error)
}

// rosterServiceImpl implements the RosterService interface
type rosterServiceImpl struct {
	rosterRepo    *repositories.RosterRepository
	referenceRepo *repositories.ReferenceRepository
}

// NewRosterService creates a new roster service instance
func NewRosterService(rosterRepo *repositories.RosterRepository, referenceRepo *repositories.ReferenceRepository) RosterService {
	return &rosterServiceImpl{
		rosterRepo:    rosterRepo,
		referenceRepo: referenceRepo,
	}
}

// answeredPair is one element of the aggregated answer array produced by
// the roster join.
type answeredPair struct {
	IDKuesioner int64  `json:"id_kuesioner"`
	Jawaban     string `json:"jawaban"`
}

// parseAnsweredPairs decodes the json_agg column and indexes the answers
// by question id.
func parseAnsweredPairs(raw []byte) (map[int64]string, error) {
	var pairs []answeredPair
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("error parsing aggregated answers: %w", err)
	}

	answered := make(map[int64]string, len(pairs))
	for _, pair := range pairs {
		answered[pair.IDKuesioner] = pair.Jawaban
	}
	return answered, nil
}

// buildRosterEntry merges one join row with the master question list into
// a normalized record. Every question appears exactly once; unanswered
// items get the absent-marker. The education section is nil as a unit
// when no institution is linked.
func buildRosterEntry(row repositories.RosterRow, questions []models.Question) (dto.RosterEntry, error) {
	answered, err := parseAnsweredPairs(row.AnswersJSON)
	if err != nil {
		return dto.RosterEntry{}, err
	}

	kuesioner := make([]dto.RosterQuestionnaireItem, 0, len(questions))
	for _, question := range questions {
		jawaban, ok := answered[question.ID]
		if !ok {
			jawaban = dto.AnswerNotFilled
		}
		kuesioner = append(kuesioner, dto.RosterQuestionnaireItem{
			IDKuesioner: question.ID,
			Pertanyaan:  question.Text,
			Jawaban:     jawaban,
		})
	}

	entry := dto.RosterEntry{
		Personal: dto.RosterPersonal{
			IDAlumni:     row.AlumniID,
			NISN:         row.NISN,
			NIS:          row.NIS,
			NIK:          row.NIK,
			NamaSiswa:    row.NamaSiswa,
			TanggalLahir: row.TanggalLahir,
			TahunLulus:   row.TahunLulus,
			AlamatEmail:  row.AlamatEmail,
			NoTelepon:    row.NoTelepon,
		},
		Tracer: dto.RosterTracer{
			IsFilled: row.IsFilled,
			Status:   helpers.StringOrEmpty(row.StatusLabel),
		},
		Kuesioner: kuesioner,
	}

	if row.PerguruanTinggi != nil {
		tahunMasuk := 0
		if row.TahunMasuk != nil {
			tahunMasuk = *row.TahunMasuk
		}
		entry.Pendidikan = &dto.RosterEducation{
			PerguruanTinggi: *row.PerguruanTinggi,
			ProgramStudi:    helpers.StringOrEmpty(row.ProgramStudi),
			TahunMasuk:      tahunMasuk,
			SumberBiaya:     helpers.StringOrEmpty(row.SumberBiaya),
			BuktiKuliah:     helpers.StringOrEmpty(row.BuktiKuliah),
		}
	}

	return entry, nil
}

// GetFullRoster produces one record per alumnus merged against the master
// question list, in the repository's (year desc, name asc) order.
func (s *rosterServiceImpl) GetFullRoster(ctx context.Context) ([]dto.RosterEntry, error) {
	questions, err := s.referenceRepo.GetQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving questions: %w", err)
	}

	rows, err := s.rosterRepo.GetFullRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving roster: %w", err)
	}

	entries := make([]dto.RosterEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := buildRosterEntry(row, questions)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
