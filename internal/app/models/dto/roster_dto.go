package dto

// AnswerNotFilled is the absent-marker used for unanswered questionnaire
// items in the full roster report.
const AnswerNotFilled = "Belum diisi"

// RosterPersonal is the identity and contact section of a roster entry.
type RosterPersonal struct {
	IDAlumni     int64   `json:"id_alumni"`
	NISN         string  `json:"nisn"`
	NIS          string  `json:"nis"`
	NIK          string  `json:"nik"`
	NamaSiswa    string  `json:"nama_siswa"`
	TanggalLahir string  `json:"tanggal_lahir"`
	TahunLulus   int     `json:"tahun_lulus"`
	AlamatEmail  *string `json:"alamat_email"`
	NoTelepon    *string `json:"no_telepon"`
}

// RosterTracer is the survey-state section of a roster entry. Status is
// the human-readable label, empty when the survey was never filled.
type RosterTracer struct {
	IsFilled bool   `json:"is_filled"`
	Status   string `json:"status"`
}

// RosterEducation is the continuing-education section. It is omitted as a
// whole (null) when no institution is linked.
type RosterEducation struct {
	PerguruanTinggi string `json:"perguruan_tinggi"`
	ProgramStudi    string `json:"program_studi"`
	TahunMasuk      int    `json:"tahun_masuk"`
	SumberBiaya     string `json:"sumber_biaya"`
	BuktiKuliah     string `json:"bukti_kuliah"`
}

// RosterQuestionnaireItem pairs one reference question with the alumnus's
// answer, or with AnswerNotFilled when unanswered.
type RosterQuestionnaireItem struct {
	IDKuesioner int64  `json:"id_kuesioner"`
	Pertanyaan  string `json:"pertanyaan"`
	Jawaban     string `json:"jawaban"`
}

// RosterEntry is one normalized record of the full roster report. The
// questionnaire list always contains every reference question exactly once.
type RosterEntry struct {
	Personal   RosterPersonal            `json:"personal"`
	Tracer     RosterTracer              `json:"tracer"`
	Pendidikan *RosterEducation          `json:"pendidikan"`
	Kuesioner  []RosterQuestionnaireItem `json:"kuesioner"`
}
