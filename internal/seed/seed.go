package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/pradana/tracerstudy/internal/app/models"
	appRepos "github.com/pradana/tracerstudy/internal/app/repositories"
	"github.com/pradana/tracerstudy/internal/pkg/apperrors"
	"github.com/pradana/tracerstudy/internal/pkg/auth"
)

// defaultStatuses are the post-graduation status options. PEND marks
// continuing education and drives the conditional submission rules.
var defaultStatuses = []appModels.Status{
	{Code: appModels.StatusContinuingEducation, Label: "Melanjutkan Pendidikan"},
	{Code: "BKRJ", Label: "Bekerja"},
	{Code: "WRSA", Label: "Wirausaha"},
	{Code: "MCKR", Label: "Mencari Kerja"},
	{Code: "LNYA", Label: "Lainnya"},
}

// defaultAnswers is the fixed five-point answer scale, best to worst.
var defaultAnswers = []string{
	"Sangat Baik",
	"Baik",
	"Cukup",
	"Kurang",
	"Sangat Kurang",
}

var defaultQuestions = []string{
	"Bagaimana kualitas pembelajaran yang Anda terima di sekolah?",
	"Bagaimana kompetensi guru dalam menyampaikan materi?",
	"Bagaimana kelengkapan sarana dan prasarana sekolah?",
	"Bagaimana relevansi materi pelajaran dengan kebutuhan Anda saat ini?",
	"Bagaimana pelayanan administrasi sekolah?",
	"Bagaimana pembinaan karakter dan kedisiplinan di sekolah?",
}

var defaultFundingSources = []string{
	"Orang Tua",
	"Biaya Sendiri",
	"Beasiswa",
	"Lainnya",
}

const (
	defaultAdminName     = "Administrator"
	defaultAdminEmail    = "admin@tracerstudy.sch.id"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData seeds the reference tables and the default admin user.
// Every step is idempotent so it runs safely on each startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default reference data...")
	var finalErr error

	for _, s := range defaultStatuses {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO status (kode_status, status) VALUES ($1, $2) ON CONFLICT (kode_status) DO NOTHING`,
			s.Code, s.Label)
		if err != nil {
			lgr.Error().Err(err).Str("kode_status", s.Code).Msg("Error seeding status")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := seedLabelTable(ctx, dbPool, "jawaban", "jawaban", defaultAnswers); err != nil {
		lgr.Error().Err(err).Msg("Error seeding answers")
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedLabelTable(ctx, dbPool, "kuesioner", "pertanyaan", defaultQuestions); err != nil {
		lgr.Error().Err(err).Msg("Error seeding questions")
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedLabelTable(ctx, dbPool, "sumber_biaya", "sumber_biaya", defaultFundingSources); err != nil {
		lgr.Error().Err(err).Msg("Error seeding funding sources")
		finalErr = errors.Join(finalErr, err)
	}

	if err := createDefaultAdmin(ctx, dbPool, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

// seedLabelTable inserts the given labels into a single-label reference
// table, skipping values that already exist.
func seedLabelTable(ctx context.Context, dbPool *pgxpool.Pool, table, column string, labels []string) error {
	var finalErr error
	for _, label := range labels {
		query := `INSERT INTO ` + table + ` (` + column + `)
			SELECT $1 WHERE NOT EXISTS (SELECT 1 FROM ` + table + ` WHERE ` + column + ` = $1)`
		if _, err := dbPool.Exec(ctx, query, label); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}
	return finalErr
}

// createDefaultAdmin creates the admin account when it does not exist yet.
func createDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	_, err := userRepo.GetByEmail(ctx, defaultAdminEmail)
	if err == nil {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}

	lgr.Info().Msg("Creating default admin user...")
	hashedPassword, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Nama:     defaultAdminName,
		Email:    defaultAdminEmail,
		Password: hashedPassword,
	}

	adminID, err := userRepo.Create(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
	return nil
}
