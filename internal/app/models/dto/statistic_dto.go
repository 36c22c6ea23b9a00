package dto

// YearCount is one per-graduation-year row of the summary statistic.
type YearCount struct {
	TahunLulus       int `json:"tahun_lulus"`
	JumlahAlumni     int `json:"jumlah_alumni"`
	AlumniMengisi    int `json:"alumni_mengisi"`
	LanjutPendidikan int `json:"lanjut_pendidikan"`
}

// AlumniStatistics is the overall summary: absolute counts plus whole
// percentages formatted as "<n>%". Both percentages report "0%" when no
// alumni exist.
type AlumniStatistics struct {
	TotalAlumni       int         `json:"total_alumni"`
	AlumniMengisi     int         `json:"alumni_mengisi"`
	LanjutPendidikan  int         `json:"lanjut_pendidikan"`
	PersentaseMengisi string      `json:"persentase_mengisi" example:"75%"`
	PersentaseLanjut  string      `json:"persentase_lanjut" example:"40%"`
	PerTahun          []YearCount `json:"per_tahun"`
}

// YearAnswerRow holds the answer counts of one graduation year for one
// question. Jumlah always contains the five qualitative categories, plus
// any further label that actually occurs in the data.
type YearAnswerRow struct {
	TahunLulus int            `json:"tahun_lulus"`
	Jumlah     map[string]int `json:"jumlah"`
}

// QuestionBreakdown is the per-question answer frequency report.
type QuestionBreakdown struct {
	IDKuesioner int64           `json:"id_kuesioner"`
	Pertanyaan  string          `json:"pertanyaan"`
	PerTahun    []YearAnswerRow `json:"per_tahun"`
}
