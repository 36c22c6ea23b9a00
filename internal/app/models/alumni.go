package models

// Alumni represents one graduate tracked by the tracer study.
// Identity is established by the four fields NISN, NIS, NIK and birth date
// together; contact fields are filled in by the submission workflow.
type Alumni struct {
	ID           int64   `json:"id_alumni"`
	NISN         string  `json:"nisn"`
	NIS          string  `json:"nis"`
	NIK          string  `json:"nik"`
	NamaSiswa    string  `json:"nama_siswa"`
	TanggalLahir string  `json:"tanggal_lahir"`
	TahunLulus   int     `json:"tahun_lulus"`
	AlamatEmail  *string `json:"alamat_email,omitempty"`
	NoTelepon    *string `json:"no_telepon,omitempty"`
}
