package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pradana/tracerstudy/internal/app/repositories"
)

func TestGroupInstitutionProgramsEmpty(t *testing.T) {
	got := groupInstitutionPrograms(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGroupInstitutionPrograms(t *testing.T) {
	rows := []repositories.InstitutionProgramRow{
		{InstitutionID: 1, InstitutionName: "Universitas Indonesia", ProgramID: 10, ProgramName: "Informatika"},
		{InstitutionID: 1, InstitutionName: "Universitas Indonesia", ProgramID: 11, ProgramName: "Kedokteran"},
		{InstitutionID: 2, InstitutionName: "Universitas Gadjah Mada", ProgramID: 10, ProgramName: "Informatika"},
	}

	got := groupInstitutionPrograms(rows)

	assert.Len(t, got, 2)

	assert.Equal(t, int64(1), got[0].IDPerguruanTinggi)
	assert.Equal(t, "Universitas Indonesia", got[0].PerguruanTinggi)
	assert.Len(t, got[0].ProgramStudi, 2)
	assert.Equal(t, "Informatika", got[0].ProgramStudi[0].ProgramStudi)
	assert.Equal(t, "Kedokteran", got[0].ProgramStudi[1].ProgramStudi)

	assert.Equal(t, int64(2), got[1].IDPerguruanTinggi)
	assert.Len(t, got[1].ProgramStudi, 1)
}

func TestGroupInstitutionProgramsPreservesFirstSeenOrder(t *testing.T) {
	// rows for an institution may be interleaved; grouping keys on first
	// appearance, not on id magnitude
	rows := []repositories.InstitutionProgramRow{
		{InstitutionID: 5, InstitutionName: "Politeknik Negeri", ProgramID: 1, ProgramName: "Mesin"},
		{InstitutionID: 2, InstitutionName: "Institut Teknologi", ProgramID: 2, ProgramName: "Fisika"},
		{InstitutionID: 5, InstitutionName: "Politeknik Negeri", ProgramID: 3, ProgramName: "Elektro"},
	}

	got := groupInstitutionPrograms(rows)

	assert.Len(t, got, 2)
	assert.Equal(t, int64(5), got[0].IDPerguruanTinggi)
	assert.Equal(t, int64(2), got[1].IDPerguruanTinggi)
	assert.Len(t, got[0].ProgramStudi, 2)
}
