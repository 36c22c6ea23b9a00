package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pradana/tracerstudy/internal/app/models"
	"github.com/pradana/tracerstudy/internal/pkg/logger"
)

// InstitutionProgramRow is one flat row of the institution-program join,
// in database row order.
type InstitutionProgramRow struct {
	InstitutionID   int64
	InstitutionName string
	ProgramID       int64
	ProgramName     string
}

// ReferenceRepository serves read-only lookups of the reference tables.
type ReferenceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReferenceRepository creates a new ReferenceRepository
func NewReferenceRepository(db *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetInstitutionPrograms returns the flat institution-program join rows.
// Grouping into nested structures happens in the service layer.
func (r *ReferenceRepository) GetInstitutionPrograms(ctx context.Context) ([]InstitutionProgramRow, error) {
	query := `
		SELECT pt.id_perguruan_tinggi, pt.perguruan_tinggi, ps.id_program_studi, ps.nama_program_studi
		FROM perguruan_tinggi_prodi pp
		JOIN perguruan_tinggi pt ON pt.id_perguruan_tinggi = pp.id_perguruan_tinggi
		JOIN program_studi ps ON ps.id_program_studi = pp.id_program_studi
		ORDER BY pt.id_perguruan_tinggi, ps.id_program_studi`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying institution programs")
		return nil, fmt.Errorf("error querying institution programs: %w", err)
	}
	defer rows.Close()

	results := []InstitutionProgramRow{}
	for rows.Next() {
		var row InstitutionProgramRow
		if err := rows.Scan(&row.InstitutionID, &row.InstitutionName, &row.ProgramID, &row.ProgramName); err != nil {
			return nil, fmt.Errorf("error scanning institution program row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating institution program rows: %w", err)
	}

	return results, nil
}

// GetProgramsByInstitution returns the programs offered by one institution.
func (r *ReferenceRepository) GetProgramsByInstitution(ctx context.Context, institutionID int64) ([]models.Program, error) {
	query := `
		SELECT ps.id_program_studi, ps.nama_program_studi
		FROM perguruan_tinggi_prodi pp
		JOIN program_studi ps ON ps.id_program_studi = pp.id_program_studi
		WHERE pp.id_perguruan_tinggi = $1
		ORDER BY ps.id_program_studi`

	rows, err := r.db.Query(ctx, query, institutionID)
	if err != nil {
		logger.Error().Err(err).Int64("institutionID", institutionID).Msg("Error querying programs by institution")
		return nil, fmt.Errorf("error querying programs by institution: %w", err)
	}
	defer rows.Close()

	programs := []models.Program{}
	for rows.Next() {
		var p models.Program
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

// GetQuestions returns all questionnaire items.
func (r *ReferenceRepository) GetQuestions(ctx context.Context) ([]models.Question, error) {
	sql, args, err := r.sb.Select("id_kuesioner", "pertanyaan").
		From("kuesioner").
		OrderBy("id_kuesioner ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying questions")
		return nil, fmt.Errorf("error querying questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text); err != nil {
			return nil, fmt.Errorf("error scanning question row: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating question rows: %w", err)
	}

	return questions, nil
}

// GetAnswers returns all candidate answers.
func (r *ReferenceRepository) GetAnswers(ctx context.Context) ([]models.Answer, error) {
	sql, args, err := r.sb.Select("id_jawaban", "jawaban").
		From("jawaban").
		OrderBy("id_jawaban ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get answers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying answers")
		return nil, fmt.Errorf("error querying answers: %w", err)
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.ID, &a.Label); err != nil {
			return nil, fmt.Errorf("error scanning answer row: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answer rows: %w", err)
	}

	return answers, nil
}

// GetStatuses returns all survey status options.
func (r *ReferenceRepository) GetStatuses(ctx context.Context) ([]models.Status, error) {
	sql, args, err := r.sb.Select("kode_status", "status").
		From("status").
		OrderBy("kode_status ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get statuses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying statuses")
		return nil, fmt.Errorf("error querying statuses: %w", err)
	}
	defer rows.Close()

	statuses := []models.Status{}
	for rows.Next() {
		var s models.Status
		if err := rows.Scan(&s.Code, &s.Label); err != nil {
			return nil, fmt.Errorf("error scanning status row: %w", err)
		}
		statuses = append(statuses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status rows: %w", err)
	}

	return statuses, nil
}

// GetFundingSources returns all funding source options.
func (r *ReferenceRepository) GetFundingSources(ctx context.Context) ([]models.FundingSource, error) {
	sql, args, err := r.sb.Select("id_sumber_biaya", "sumber_biaya").
		From("sumber_biaya").
		OrderBy("id_sumber_biaya ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get funding sources query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying funding sources")
		return nil, fmt.Errorf("error querying funding sources: %w", err)
	}
	defer rows.Close()

	sources := []models.FundingSource{}
	for rows.Next() {
		var s models.FundingSource
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("error scanning funding source row: %w", err)
		}
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating funding source rows: %w", err)
	}

	return sources, nil
}

// StatusExists reports whether a status code is a known reference value.
func (r *ReferenceRepository) StatusExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM status WHERE kode_status = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking status code: %w", err)
	}
	return exists, nil
}
