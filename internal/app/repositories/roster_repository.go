package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pradana/tracerstudy/internal/pkg/logger"
)

// RosterRow is one alumnus with its joined tracer, education and
// pre-aggregated questionnaire data. AnswersJSON is the json_agg output:
// a JSON array of {id_kuesioner, jawaban} objects, "[]" when the alumnus
// answered nothing.
type RosterRow struct {
	AlumniID        int64
	NISN            string
	NIS             string
	NIK             string
	NamaSiswa       string
	TanggalLahir    string
	TahunLulus      int
	AlamatEmail     *string
	NoTelepon       *string
	IsFilled        bool
	StatusLabel     *string
	PerguruanTinggi *string
	ProgramStudi    *string
	TahunMasuk      *int
	SumberBiaya     *string
	BuktiKuliah     *string
	AnswersJSON     []byte
}

// RosterRepository runs the full-roster join.
type RosterRepository struct {
	db *pgxpool.Pool
}

// NewRosterRepository creates a new RosterRepository
func NewRosterRepository(db *pgxpool.Pool) *RosterRepository {
	return &RosterRepository{db: db}
}

// GetFullRoster returns one row per alumnus, including alumni with no
// tracer at all, sorted by graduation year descending then name ascending.
// The answered (question, answer) pairs are aggregated into a JSON array
// per alumnus so the service can index them by question id.
func (r *RosterRepository) GetFullRoster(ctx context.Context) ([]RosterRow, error) {
	query := `
		SELECT a.id_alumni, a.nisn, a.nis, a.nik, a.nama_siswa,
		       to_char(a.tanggal_lahir, 'YYYY-MM-DD'), a.tahun_lulus,
		       a.alamat_email, a.no_telepon,
		       COALESCE(t.is_filled, false), s.status,
		       pt.perguruan_tinggi, ps.nama_program_studi, dpt.tahun_masuk,
		       sb.sumber_biaya, dpt.bukti_kuliah,
		       COALESCE(
		           json_agg(json_build_object('id_kuesioner', dk.id_kuesioner, 'jawaban', j.jawaban))
		               FILTER (WHERE dk.id_kuesioner IS NOT NULL),
		           '[]'
		       )
		FROM alumni a
		LEFT JOIN tracer t ON t.id_alumni = a.id_alumni
		LEFT JOIN status s ON s.kode_status = t.kode_status
		LEFT JOIN detail_pendidikan_tinggi dpt ON dpt.id_tracer = t.id_tracer
		LEFT JOIN perguruan_tinggi pt ON pt.id_perguruan_tinggi = dpt.id_perguruan_tinggi
		LEFT JOIN program_studi ps ON ps.id_program_studi = dpt.id_program_studi
		LEFT JOIN sumber_biaya sb ON sb.id_sumber_biaya = dpt.id_sumber_biaya
		LEFT JOIN detail_kuesioner dk ON dk.id_tracer = t.id_tracer
		LEFT JOIN jawaban j ON j.id_jawaban = dk.id_jawaban
		GROUP BY a.id_alumni, t.is_filled, s.status,
		         pt.perguruan_tinggi, ps.nama_program_studi, dpt.tahun_masuk,
		         sb.sumber_biaya, dpt.bukti_kuliah
		ORDER BY a.tahun_lulus DESC, a.nama_siswa ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying full roster")
		return nil, fmt.Errorf("error querying full roster: %w", err)
	}
	defer rows.Close()

	results := []RosterRow{}
	for rows.Next() {
		var row RosterRow
		if err := rows.Scan(
			&row.AlumniID, &row.NISN, &row.NIS, &row.NIK, &row.NamaSiswa,
			&row.TanggalLahir, &row.TahunLulus, &row.AlamatEmail, &row.NoTelepon,
			&row.IsFilled, &row.StatusLabel,
			&row.PerguruanTinggi, &row.ProgramStudi, &row.TahunMasuk,
			&row.SumberBiaya, &row.BuktiKuliah,
			&row.AnswersJSON,
		); err != nil {
			return nil, fmt.Errorf("error scanning roster row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster rows: %w", err)
	}

	return results, nil
}
