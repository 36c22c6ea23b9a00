package models

// EducationDetail exists only for tracers whose status is
// StatusContinuingEducation. BuktiKuliah holds the public URL of the
// uploaded proof-of-enrollment document.
type EducationDetail struct {
	ID              int64  `json:"id_detail"`
	TracerID        int64  `json:"id_tracer"`
	InstitutionID   int64  `json:"id_perguruan_tinggi"`
	ProgramID       int64  `json:"id_program_studi"`
	TahunMasuk      int    `json:"tahun_masuk"`
	FundingSourceID int64  `json:"id_sumber_biaya"`
	BuktiKuliah     string `json:"bukti_kuliah"`
}
