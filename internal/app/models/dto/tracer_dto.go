package dto

// EducationDetailRequest is the conditional education section of a
// submission, mandatory when status is PEND.
type EducationDetailRequest struct {
	IDPerguruanTinggi int64 `json:"id_perguruan_tinggi" binding:"required,min=1"`
	IDProgramStudi    int64 `json:"id_program_studi" binding:"required,min=1"`
	TahunMasuk        int   `json:"tahun_masuk" binding:"required,min=1990,max=2100"`
	IDSumberBiaya     int64 `json:"id_sumber_biaya" binding:"required,min=1"`
}

// SubmitTracerRequest is the JSON part of the multipart submission body.
// JawabanKuesioner maps question id to the chosen answer id.
type SubmitTracerRequest struct {
	IDAlumni         int64                   `json:"id_alumni" binding:"required,min=1"`
	AlamatEmail      string                  `json:"alamat_email" binding:"required,email"`
	NoTelepon        string                  `json:"no_telepon" binding:"required,min=8,max=20"`
	Status           string                  `json:"status" binding:"required,len=4"`
	JawabanKuesioner map[int64]int64         `json:"jawaban_kuesioner" binding:"required,min=1"`
	Pendidikan       *EducationDetailRequest `json:"pendidikan,omitempty"`
}

// SubmitTracerResponse echoes the accepted submission. BuktiKuliah is the
// public URL of the stored proof document, empty when none was required.
type SubmitTracerResponse struct {
	IDAlumni         int64           `json:"id_alumni"`
	IDTracer         int64           `json:"id_tracer"`
	Status           string          `json:"status"`
	AlamatEmail      string          `json:"alamat_email"`
	NoTelepon        string          `json:"no_telepon"`
	JawabanKuesioner map[int64]int64 `json:"jawaban_kuesioner"`
	BuktiKuliah      string          `json:"bukti_kuliah"`
}
