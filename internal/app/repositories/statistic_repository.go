package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pradana/tracerstudy/internal/app/models"
	"github.com/pradana/tracerstudy/internal/pkg/logger"
)

// SummaryCounts holds the absolute counts of the summary statistic.
type SummaryCounts struct {
	Total      int
	Filled     int
	Continuing int
}

// YearCountRow is one per-graduation-year row of the summary statistic.
type YearCountRow struct {
	TahunLulus int
	Total      int
	Filled     int
	Continuing int
}

// AnswerCountRow is one (graduation year, question, answer) frequency.
type AnswerCountRow struct {
	TahunLulus int
	QuestionID int64
	Pertanyaan string
	Jawaban    string
	Jumlah     int
}

// StatisticRepository computes the aggregate reporting queries.
type StatisticRepository struct {
	db *pgxpool.Pool
}

// NewStatisticRepository creates a new StatisticRepository
func NewStatisticRepository(db *pgxpool.Pool) *StatisticRepository {
	return &StatisticRepository{db: db}
}

// GetSummaryCounts counts all alumni, those with a filled tracer and those
// continuing their education.
func (r *StatisticRepository) GetSummaryCounts(ctx context.Context) (*SummaryCounts, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE t.is_filled),
		       COUNT(*) FILTER (WHERE t.kode_status = $1)
		FROM alumni a
		LEFT JOIN tracer t ON t.id_alumni = a.id_alumni`

	counts := &SummaryCounts{}
	err := r.db.QueryRow(ctx, query, models.StatusContinuingEducation).
		Scan(&counts.Total, &counts.Filled, &counts.Continuing)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying summary counts")
		return nil, fmt.Errorf("error querying summary counts: %w", err)
	}

	return counts, nil
}

// GetYearCounts returns the summary counts broken down by graduation year,
// ascending.
func (r *StatisticRepository) GetYearCounts(ctx context.Context) ([]YearCountRow, error) {
	query := `
		SELECT a.tahun_lulus,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE t.is_filled),
		       COUNT(*) FILTER (WHERE t.kode_status = $1)
		FROM alumni a
		LEFT JOIN tracer t ON t.id_alumni = a.id_alumni
		GROUP BY a.tahun_lulus
		ORDER BY a.tahun_lulus`

	rows, err := r.db.Query(ctx, query, models.StatusContinuingEducation)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying year counts")
		return nil, fmt.Errorf("error querying year counts: %w", err)
	}
	defer rows.Close()

	results := []YearCountRow{}
	for rows.Next() {
		var row YearCountRow
		if err := rows.Scan(&row.TahunLulus, &row.Total, &row.Filled, &row.Continuing); err != nil {
			return nil, fmt.Errorf("error scanning year count row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating year count rows: %w", err)
	}

	return results, nil
}

// GetAnswerCounts returns the count of questionnaire answers per
// (graduation year, question, answer) triple, joined through tracer and
// alumni. Ordered by question then year so the service can reshape the
// rows in a single pass.
func (r *StatisticRepository) GetAnswerCounts(ctx context.Context) ([]AnswerCountRow, error) {
	query := `
		SELECT a.tahun_lulus, k.id_kuesioner, k.pertanyaan, j.jawaban, COUNT(*)
		FROM detail_kuesioner dk
		JOIN tracer t ON t.id_tracer = dk.id_tracer
		JOIN alumni a ON a.id_alumni = t.id_alumni
		JOIN kuesioner k ON k.id_kuesioner = dk.id_kuesioner
		JOIN jawaban j ON j.id_jawaban = dk.id_jawaban
		GROUP BY a.tahun_lulus, k.id_kuesioner, k.pertanyaan, j.jawaban
		ORDER BY k.id_kuesioner, a.tahun_lulus`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying answer counts")
		return nil, fmt.Errorf("error querying answer counts: %w", err)
	}
	defer rows.Close()

	results := []AnswerCountRow{}
	for rows.Next() {
		var row AnswerCountRow
		if err := rows.Scan(&row.TahunLulus, &row.QuestionID, &row.Pertanyaan, &row.Jawaban, &row.Jumlah); err != nil {
			return nil, fmt.Errorf("error scanning answer count row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answer count rows: %w", err)
	}

	return results, nil
}
