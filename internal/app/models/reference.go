package models

// Institution is one perguruan tinggi from the reference table.
type Institution struct {
	ID   int64  `json:"id_perguruan_tinggi"`
	Name string `json:"perguruan_tinggi"`
}

// Program is one program studi offered by institutions.
type Program struct {
	ID   int64  `json:"id_program_studi"`
	Name string `json:"program_studi"`
}

// FundingSource is one sumber biaya option.
type FundingSource struct {
	ID   int64  `json:"id_sumber_biaya"`
	Name string `json:"sumber_biaya"`
}

// Status is one survey status option, keyed by a stable short code.
type Status struct {
	Code  string `json:"kode_status"`
	Label string `json:"status"`
}

// Question is one questionnaire item.
type Question struct {
	ID   int64  `json:"id_kuesioner"`
	Text string `json:"pertanyaan"`
}

// Answer is one candidate questionnaire answer.
type Answer struct {
	ID    int64  `json:"id_jawaban"`
	Label string `json:"jawaban"`
}
