package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pradana/tracerstudy/internal/app/models"
	"github.com/pradana/tracerstudy/internal/db"
	"github.com/pradana/tracerstudy/internal/pkg/apperrors"
	"github.com/pradana/tracerstudy/internal/pkg/dberrors"
	"github.com/pradana/tracerstudy/internal/pkg/logger"
)

// AlumniRepository handles alumni database operations
type AlumniRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(db *pgxpool.Pool) *AlumniRepository {
	return &AlumniRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindByIdentity looks up the single alumni row matching all four identity
// fields and reports whether its tracer is already filled. The filled flag
// is false when no tracer row exists.
func (r *AlumniRepository) FindByIdentity(ctx context.Context, nisn, nis, nik, tanggalLahir string) (int64, bool, error) {
	query := `
		SELECT a.id_alumni, COALESCE(t.is_filled, false)
		FROM alumni a
		LEFT JOIN tracer t ON t.id_alumni = a.id_alumni
		WHERE a.nisn = $1 AND a.nis = $2 AND a.nik = $3 AND a.tanggal_lahir = $4::date`

	var id int64
	var isFilled bool
	err := r.db.QueryRow(ctx, query, nisn, nis, nik, tanggalLahir).Scan(&id, &isFilled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, apperrors.ErrAlumniNotFound
		}
		logger.Error().Err(err).Msg("Error executing find alumni by identity query")
		return 0, false, fmt.Errorf("error finding alumni by identity: %w", err)
	}

	return id, isFilled, nil
}

// GetByID retrieves an alumni row by its identifier.
func (r *AlumniRepository) GetByID(ctx context.Context, id int64) (*models.Alumni, error) {
	sql, args, err := r.sb.Select(
		"id_alumni", "nisn", "nis", "nik", "nama_siswa",
		"to_char(tanggal_lahir, 'YYYY-MM-DD')", "tahun_lulus", "alamat_email", "no_telepon").
		From("alumni").
		Where(squirrel.Eq{"id_alumni": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get alumni query: %w", err)
	}

	alumni := &models.Alumni{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&alumni.ID, &alumni.NISN, &alumni.NIS, &alumni.NIK, &alumni.NamaSiswa,
		&alumni.TanggalLahir, &alumni.TahunLulus, &alumni.AlamatEmail, &alumni.NoTelepon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlumniNotFound
		}
		logger.Error().Err(err).Int64("alumniID", id).Msg("Error scanning alumni row")
		return nil, fmt.Errorf("error getting alumni by ID: %w", err)
	}

	return alumni, nil
}

// CreateWithTracer inserts a new alumni together with its empty, unfilled
// tracer row. Both inserts commit or roll back together.
func (r *AlumniRepository) CreateWithTracer(ctx context.Context, alumni *models.Alumni) (int64, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertAlumni := `
			INSERT INTO alumni (nisn, nis, nik, nama_siswa, tanggal_lahir, tahun_lulus)
			VALUES ($1, $2, $3, $4, $5::date, $6)
			RETURNING id_alumni`
		if err := tx.QueryRow(ctx, insertAlumni,
			alumni.NISN, alumni.NIS, alumni.NIK, alumni.NamaSiswa,
			alumni.TanggalLahir, alumni.TahunLulus).Scan(&id); err != nil {
			return err
		}

		insertTracer := `INSERT INTO tracer (id_alumni, is_filled) VALUES ($1, false)`
		_, err := tx.Exec(ctx, insertTracer, id)
		return err
	})
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrAlumniAlreadyExists
		}
		logger.Error().Err(err).Msg("Error creating alumni with tracer")
		return 0, fmt.Errorf("error creating alumni: %w", err)
	}

	return id, nil
}

// GetTracerStatus reports the filled flag of the alumnus's tracer row.
// Missing tracer rows count as unfilled; a missing alumnus is an error.
func (r *AlumniRepository) GetTracerStatus(ctx context.Context, alumniID int64) (bool, error) {
	query := `
		SELECT COALESCE(t.is_filled, false)
		FROM alumni a
		LEFT JOIN tracer t ON t.id_alumni = a.id_alumni
		WHERE a.id_alumni = $1`

	var isFilled bool
	err := r.db.QueryRow(ctx, query, alumniID).Scan(&isFilled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrAlumniNotFound
		}
		logger.Error().Err(err).Int64("alumniID", alumniID).Msg("Error querying tracer status")
		return false, fmt.Errorf("error getting tracer status: %w", err)
	}

	return isFilled, nil
}
