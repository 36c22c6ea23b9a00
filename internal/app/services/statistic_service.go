package services

import (
	"context"
	"fmt"
	"math"

	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/app/repositories"
)

// answerCategories is the fixed qualitative answer scale, best to worst.
// Every per-year breakdown row starts with these five at zero; labels
// outside the scale are still counted under their own key.
var answerCategories = []string{"Sangat Baik", "Baik", "Cukup", "Kurang", "Sangat Kurang"}

// StatisticService defines the interface for aggregate reporting
type StatisticService interface {
	GetAlumniStatistics(ctx context.Context) (*dto.AlumniStatistics, error)
	GetQuestionnaireBreakdown(ctx context.Context) ([]dto.QuestionBreakdown, error)
}

// statisticServiceImpl implements the StatisticService interface
type statisticServiceImpl struct {
	statisticRepo *repositories.StatisticRepository
}

// NewStatisticService creates a new statistic service instance
func NewStatisticService(statisticRepo *repositories.StatisticRepository) StatisticService {
	return &statisticServiceImpl{statisticRepo: statisticRepo}
}

// formatPercent renders part/total as a whole percentage like "75%".
// A zero total reports "0%" instead of dividing by zero.
func formatPercent(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", int(math.Round(float64(part)*100/float64(total))))
}

// GetAlumniStatistics computes the overall summary plus the per-year rows.
func (s *statisticServiceImpl) GetAlumniStatistics(ctx context.Context) (*dto.AlumniStatistics, error) {
	counts, err := s.statisticRepo.GetSummaryCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving summary counts: %w", err)
	}

	yearRows, err := s.statisticRepo.GetYearCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving year counts: %w", err)
	}

	perTahun := make([]dto.YearCount, 0, len(yearRows))
	for _, row := range yearRows {
		perTahun = append(perTahun, dto.YearCount{
			TahunLulus:       row.TahunLulus,
			JumlahAlumni:     row.Total,
			AlumniMengisi:    row.Filled,
			LanjutPendidikan: row.Continuing,
		})
	}

	return &dto.AlumniStatistics{
		TotalAlumni:       counts.Total,
		AlumniMengisi:     counts.Filled,
		LanjutPendidikan:  counts.Continuing,
		PersentaseMengisi: formatPercent(counts.Filled, counts.Total),
		PersentaseLanjut:  formatPercent(counts.Continuing, counts.Total),
		PerTahun:          perTahun,
	}, nil
}

// newYearAnswerRow creates a breakdown row with the fixed categories at
// zero count.
func newYearAnswerRow(year int) dto.YearAnswerRow {
	counts := make(map[string]int, len(answerCategories))
	for _, category := range answerCategories {
		counts[category] = 0
	}
	return dto.YearAnswerRow{TahunLulus: year, Jumlah: counts}
}

// buildBreakdown reshapes the flat (year, question, answer, count) rows
// into one entry per question with one row per graduation year. Input rows
// arrive ordered by question then year, so question order follows first
// appearance and rows within a question are already year-ascending.
func buildBreakdown(rows []repositories.AnswerCountRow) []dto.QuestionBreakdown {
	breakdown := []dto.QuestionBreakdown{}
	questionIndex := map[int64]int{}
	yearIndex := map[int64]map[int]int{}

	for _, row := range rows {
		qi, seen := questionIndex[row.QuestionID]
		if !seen {
			breakdown = append(breakdown, dto.QuestionBreakdown{
				IDKuesioner: row.QuestionID,
				Pertanyaan:  row.Pertanyaan,
				PerTahun:    []dto.YearAnswerRow{},
			})
			qi = len(breakdown) - 1
			questionIndex[row.QuestionID] = qi
			yearIndex[row.QuestionID] = map[int]int{}
		}

		yi, seen := yearIndex[row.QuestionID][row.TahunLulus]
		if !seen {
			breakdown[qi].PerTahun = append(breakdown[qi].PerTahun, newYearAnswerRow(row.TahunLulus))
			yi = len(breakdown[qi].PerTahun) - 1
			yearIndex[row.QuestionID][row.TahunLulus] = yi
		}

		breakdown[qi].PerTahun[yi].Jumlah[row.Jawaban] = row.Jumlah
	}

	return breakdown
}

// GetQuestionnaireBreakdown computes the per-question, per-cohort answer
// frequency report.
func (s *statisticServiceImpl) GetQuestionnaireBreakdown(ctx context.Context) ([]dto.QuestionBreakdown, error) {
	rows, err := s.statisticRepo.GetAnswerCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving answer counts: %w", err)
	}
	return buildBreakdown(rows), nil
}
