package dto

import "github.com/pradana/tracerstudy/internal/app/models"

// ProgramEntry is one program nested under an institution.
type ProgramEntry struct {
	IDProgramStudi int64  `json:"id_program_studi"`
	ProgramStudi   string `json:"program_studi"`
}

// InstitutionWithPrograms is one institution with the programs it offers,
// in the row order returned by the join.
type InstitutionWithPrograms struct {
	IDPerguruanTinggi int64          `json:"id_perguruan_tinggi"`
	PerguruanTinggi   string         `json:"perguruan_tinggi"`
	ProgramStudi      []ProgramEntry `json:"program_studi"`
}

// QuestionnaireReference bundles questions with their candidate answers.
type QuestionnaireReference struct {
	Pertanyaan []models.Question `json:"pertanyaan"`
	Jawaban    []models.Answer   `json:"jawaban"`
}

// QuestionnaireMetadata is the combined reference set used by the survey
// form client: questions, answers, statuses and funding sources.
type QuestionnaireMetadata struct {
	Pertanyaan  []models.Question      `json:"pertanyaan"`
	Jawaban     []models.Answer        `json:"jawaban"`
	Status      []models.Status        `json:"status"`
	SumberBiaya []models.FundingSource `json:"sumber_biaya"`
}
