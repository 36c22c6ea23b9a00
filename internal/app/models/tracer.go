package models

import "time"

// StatusContinuingEducation is the status code that makes an education
// detail record and a proof-of-enrollment document mandatory.
const StatusContinuingEducation = "PEND"

// Tracer records the survey completion state for one alumnus. A tracer
// marked filled always carries a status code and a fill date.
type Tracer struct {
	ID         int64      `json:"id_tracer"`
	AlumniID   int64      `json:"id_alumni"`
	KodeStatus *string    `json:"kode_status"`
	IsFilled   bool       `json:"is_filled"`
	FillDate   *time.Time `json:"fill_date"`
}

// QuestionnaireAnswer links one tracer to one answered question.
type QuestionnaireAnswer struct {
	TracerID   int64 `json:"id_tracer"`
	QuestionID int64 `json:"id_kuesioner"`
	AnswerID   int64 `json:"id_jawaban"`
}
