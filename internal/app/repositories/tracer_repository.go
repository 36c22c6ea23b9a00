package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pradana/tracerstudy/internal/app/models"
	"github.com/pradana/tracerstudy/internal/pkg/helpers"
	"github.com/pradana/tracerstudy/internal/pkg/logger"
)

// TracerRepository handles the transactional writes of the submission
// workflow. All mutating methods operate on a caller-provided transaction
// so the whole submission commits or rolls back as one unit.
type TracerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTracerRepository creates a new TracerRepository
func NewTracerRepository(db *pgxpool.Pool) *TracerRepository {
	return &TracerRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Pool exposes the underlying pool for transaction scoping by the service.
func (r *TracerRepository) Pool() *pgxpool.Pool {
	return r.db
}

// UpdateAlumniContact fills in the alumnus's contact fields.
func (r *TracerRepository) UpdateAlumniContact(ctx context.Context, tx pgx.Tx, alumniID int64, email, phone string) error {
	sql, args, err := r.sb.Update("alumni").
		SetMap(map[string]interface{}{
			"alamat_email": helpers.GetContentNullString(email),
			"no_telepon":   helpers.GetContentNullString(phone),
		}).
		Where(squirrel.Eq{"id_alumni": alumniID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update contact query: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("alumniID", alumniID).Msg("Error updating alumni contact")
		return fmt.Errorf("error updating alumni contact: %w", err)
	}
	return nil
}

// MarkFilled overwrites the alumnus's tracer row with the chosen status,
// sets the filled flag and stamps the current date, returning the tracer
// id. The UPDATE is keyed by alumni id so at most one tracer row stays
// active per alumnus; when no row exists yet it is created lazily.
func (r *TracerRepository) MarkFilled(ctx context.Context, tx pgx.Tx, alumniID int64, statusCode string) (int64, error) {
	update := `
		UPDATE tracer
		SET kode_status = $2, is_filled = true, fill_date = CURRENT_DATE
		WHERE id_alumni = $1
		RETURNING id_tracer`

	var tracerID int64
	err := tx.QueryRow(ctx, update, alumniID, statusCode).Scan(&tracerID)
	if err == nil {
		return tracerID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("alumniID", alumniID).Msg("Error updating tracer")
		return 0, fmt.Errorf("error updating tracer: %w", err)
	}

	insert := `
		INSERT INTO tracer (id_alumni, kode_status, is_filled, fill_date)
		VALUES ($1, $2, true, CURRENT_DATE)
		RETURNING id_tracer`
	if err := tx.QueryRow(ctx, insert, alumniID, statusCode).Scan(&tracerID); err != nil {
		logger.Error().Err(err).Int64("alumniID", alumniID).Msg("Error inserting tracer")
		return 0, fmt.Errorf("error inserting tracer: %w", err)
	}
	return tracerID, nil
}

// ReplaceAnswers deletes the tracer's previous questionnaire answers and
// inserts one row per submitted (question, answer) pair. Delete-then-
// reinsert keeps resubmission idempotent without a uniqueness constraint.
func (r *TracerRepository) ReplaceAnswers(ctx context.Context, tx pgx.Tx, tracerID int64, answers map[int64]int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM detail_kuesioner WHERE id_tracer = $1`, tracerID); err != nil {
		logger.Error().Err(err).Int64("tracerID", tracerID).Msg("Error deleting previous answers")
		return fmt.Errorf("error deleting previous answers: %w", err)
	}

	insert := r.sb.Insert("detail_kuesioner").Columns("id_tracer", "id_kuesioner", "id_jawaban")
	for questionID, answerID := range answers {
		insert = insert.Values(tracerID, questionID, answerID)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert answers query: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("tracerID", tracerID).Msg("Error inserting questionnaire answers")
		return fmt.Errorf("error inserting questionnaire answers: %w", err)
	}
	return nil
}

// UpsertEducationDetail writes the continuing-education record for a
// tracer, replacing any detail left over from an earlier submission.
func (r *TracerRepository) UpsertEducationDetail(ctx context.Context, tx pgx.Tx, detail *models.EducationDetail) error {
	if _, err := tx.Exec(ctx, `DELETE FROM detail_pendidikan_tinggi WHERE id_tracer = $1`, detail.TracerID); err != nil {
		return fmt.Errorf("error deleting previous education detail: %w", err)
	}

	sql, args, err := r.sb.Insert("detail_pendidikan_tinggi").
		Columns("id_tracer", "id_perguruan_tinggi", "id_program_studi", "tahun_masuk", "id_sumber_biaya", "bukti_kuliah").
		Values(detail.TracerID, detail.InstitutionID, detail.ProgramID, detail.TahunMasuk, detail.FundingSourceID, detail.BuktiKuliah).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert education detail query: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("tracerID", detail.TracerID).Msg("Error inserting education detail")
		return fmt.Errorf("error inserting education detail: %w", err)
	}
	return nil
}

// DeleteEducationDetail removes the education record of a tracer, used
// when a resubmission switches away from the continuing-education status.
// Returns the public URL of the removed proof document, empty when no
// record existed.
func (r *TracerRepository) DeleteEducationDetail(ctx context.Context, tx pgx.Tx, tracerID int64) (string, error) {
	var buktiKuliah *string
	err := tx.QueryRow(ctx,
		`DELETE FROM detail_pendidikan_tinggi WHERE id_tracer = $1 RETURNING bukti_kuliah`,
		tracerID).Scan(&buktiKuliah)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		logger.Error().Err(err).Int64("tracerID", tracerID).Msg("Error deleting education detail")
		return "", fmt.Errorf("error deleting education detail: %w", err)
	}
	return helpers.StringOrEmpty(buktiKuliah), nil
}
