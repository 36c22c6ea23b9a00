package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradana/tracerstudy/internal/app/models"
	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/app/repositories"
)

var rosterQuestions = []models.Question{
	{ID: 1, Text: "Kualitas pembelajaran"},
	{ID: 2, Text: "Kompetensi guru"},
	{ID: 3, Text: "Sarana sekolah"},
}

func TestParseAnsweredPairs(t *testing.T) {
	answered, err := parseAnsweredPairs([]byte(`[{"id_kuesioner":1,"jawaban":"Baik"},{"id_kuesioner":3,"jawaban":"Cukup"}]`))
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "Baik", 3: "Cukup"}, answered)
}

func TestParseAnsweredPairsEmptyArray(t *testing.T) {
	answered, err := parseAnsweredPairs([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, answered)
}

func TestParseAnsweredPairsInvalidJSON(t *testing.T) {
	_, err := parseAnsweredPairs([]byte(`{broken`))
	assert.Error(t, err)
}

func TestBuildRosterEntryPadsUnansweredQuestions(t *testing.T) {
	email := "budi@example.com"
	statusLabel := "Bekerja"
	row := repositories.RosterRow{
		AlumniID:     7,
		NISN:         "0051234567",
		NIS:          "12345",
		NIK:          "3173051234567890",
		NamaSiswa:    "Budi Santoso",
		TanggalLahir: "2004-05-17",
		TahunLulus:   2022,
		AlamatEmail:  &email,
		IsFilled:     true,
		StatusLabel:  &statusLabel,
		AnswersJSON:  []byte(`[{"id_kuesioner":2,"jawaban":"Baik"}]`),
	}

	entry, err := buildRosterEntry(row, rosterQuestions)
	require.NoError(t, err)

	assert.Equal(t, int64(7), entry.Personal.IDAlumni)
	assert.Equal(t, "Budi Santoso", entry.Personal.NamaSiswa)
	assert.True(t, entry.Tracer.IsFilled)
	assert.Equal(t, "Bekerja", entry.Tracer.Status)
	assert.Nil(t, entry.Pendidikan)

	// every reference question appears exactly once, in reference order
	require.Len(t, entry.Kuesioner, 3)
	assert.Equal(t, dto.AnswerNotFilled, entry.Kuesioner[0].Jawaban)
	assert.Equal(t, "Baik", entry.Kuesioner[1].Jawaban)
	assert.Equal(t, dto.AnswerNotFilled, entry.Kuesioner[2].Jawaban)
	assert.Equal(t, "Kualitas pembelajaran", entry.Kuesioner[0].Pertanyaan)
}

func TestBuildRosterEntryWithEducation(t *testing.T) {
	institution := "Universitas Indonesia"
	program := "Informatika"
	year := 2023
	funding := "Beasiswa"
	proof := "http://localhost:8080/uploads/bukti_kuliah/alumni_7.pdf"
	statusLabel := "Melanjutkan Pendidikan"
	row := repositories.RosterRow{
		AlumniID:        7,
		NISN:            "0051234567",
		NIS:             "12345",
		NIK:             "3173051234567890",
		NamaSiswa:       "Budi Santoso",
		TanggalLahir:    "2004-05-17",
		TahunLulus:      2022,
		IsFilled:        true,
		StatusLabel:     &statusLabel,
		PerguruanTinggi: &institution,
		ProgramStudi:    &program,
		TahunMasuk:      &year,
		SumberBiaya:     &funding,
		BuktiKuliah:     &proof,
		AnswersJSON:     []byte(`[]`),
	}

	entry, err := buildRosterEntry(row, rosterQuestions)
	require.NoError(t, err)

	require.NotNil(t, entry.Pendidikan)
	assert.Equal(t, "Universitas Indonesia", entry.Pendidikan.PerguruanTinggi)
	assert.Equal(t, "Informatika", entry.Pendidikan.ProgramStudi)
	assert.Equal(t, 2023, entry.Pendidikan.TahunMasuk)
	assert.Equal(t, "Beasiswa", entry.Pendidikan.SumberBiaya)
	assert.Equal(t, proof, entry.Pendidikan.BuktiKuliah)
}

func TestBuildRosterEntryNeverFilled(t *testing.T) {
	row := repositories.RosterRow{
		AlumniID:     9,
		NISN:         "0059876543",
		NIS:          "54321",
		NIK:          "3173059876543210",
		NamaSiswa:    "Siti Aminah",
		TanggalLahir: "2005-01-02",
		TahunLulus:   2023,
		AnswersJSON:  []byte(`[]`),
	}

	entry, err := buildRosterEntry(row, rosterQuestions)
	require.NoError(t, err)

	assert.False(t, entry.Tracer.IsFilled)
	assert.Empty(t, entry.Tracer.Status)
	assert.Nil(t, entry.Pendidikan)
	require.Len(t, entry.Kuesioner, 3)
	for _, item := range entry.Kuesioner {
		assert.Equal(t, dto.AnswerNotFilled, item.Jawaban)
	}
}
