package dto

// CheckAlumniRequest carries the four identity fields that together
// determine at most one alumni row.
type CheckAlumniRequest struct {
	NISN         string `json:"nisn" binding:"required,numeric"`
	NIS          string `json:"nis" binding:"required,numeric"`
	NIK          string `json:"nik" binding:"required,numeric,len=16"`
	TanggalLahir string `json:"tanggal_lahir" binding:"required,datetime=2006-01-02"`
}

// CheckAlumniResponse reports the matched alumni and whether the survey
// was already completed.
type CheckAlumniResponse struct {
	IDAlumni int64 `json:"id_alumni" example:"42"`
	IsFilled bool  `json:"is_filled" example:"false"`
}

// CreateAlumniRequest carries the administrative alumni creation payload.
type CreateAlumniRequest struct {
	NISN         string `json:"nisn" binding:"required,numeric"`
	NIS          string `json:"nis" binding:"required,numeric"`
	NIK          string `json:"nik" binding:"required,numeric,len=16"`
	NamaSiswa    string `json:"nama_siswa" binding:"required,min=2,max=100"`
	TanggalLahir string `json:"tanggal_lahir" binding:"required,datetime=2006-01-02"`
	TahunLulus   int    `json:"tahun_lulus" binding:"required,min=1990,max=2100"`
}

// TracerStatusResponse reports the survey completion flag for one alumnus.
type TracerStatusResponse struct {
	IsFilled bool `json:"is_filled" example:"true"`
}
