package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pradana/tracerstudy/internal/app/repositories"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name  string
		part  int
		total int
		want  string
	}{
		{name: "zero total", part: 0, total: 0, want: "0%"},
		{name: "zero part", part: 0, total: 10, want: "0%"},
		{name: "whole", part: 10, total: 10, want: "100%"},
		{name: "three quarters", part: 3, total: 4, want: "75%"},
		{name: "rounds up", part: 2, total: 3, want: "67%"},
		{name: "rounds down", part: 1, total: 3, want: "33%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPercent(tt.part, tt.total))
		})
	}
}

func TestBuildBreakdownEmpty(t *testing.T) {
	got := buildBreakdown(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBuildBreakdown(t *testing.T) {
	rows := []repositories.AnswerCountRow{
		{TahunLulus: 2022, QuestionID: 1, Pertanyaan: "Kualitas pembelajaran", Jawaban: "Baik", Jumlah: 4},
		{TahunLulus: 2022, QuestionID: 1, Pertanyaan: "Kualitas pembelajaran", Jawaban: "Sangat Baik", Jumlah: 2},
		{TahunLulus: 2023, QuestionID: 1, Pertanyaan: "Kualitas pembelajaran", Jawaban: "Cukup", Jumlah: 1},
		{TahunLulus: 2022, QuestionID: 2, Pertanyaan: "Sarana sekolah", Jawaban: "Kurang", Jumlah: 3},
	}

	got := buildBreakdown(rows)

	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].IDKuesioner)
	assert.Equal(t, "Kualitas pembelajaran", got[0].Pertanyaan)
	assert.Equal(t, int64(2), got[1].IDKuesioner)

	// first question has two year rows, year-ascending
	assert.Len(t, got[0].PerTahun, 2)
	assert.Equal(t, 2022, got[0].PerTahun[0].TahunLulus)
	assert.Equal(t, 2023, got[0].PerTahun[1].TahunLulus)

	// counted labels are set, the rest of the scale stays at zero
	row2022 := got[0].PerTahun[0].Jumlah
	assert.Equal(t, 4, row2022["Baik"])
	assert.Equal(t, 2, row2022["Sangat Baik"])
	assert.Equal(t, 0, row2022["Cukup"])
	assert.Equal(t, 0, row2022["Kurang"])
	assert.Equal(t, 0, row2022["Sangat Kurang"])

	row2023 := got[0].PerTahun[1].Jumlah
	assert.Equal(t, 1, row2023["Cukup"])

	assert.Equal(t, 3, got[1].PerTahun[0].Jumlah["Kurang"])
}

func TestBuildBreakdownKeepsUnknownLabels(t *testing.T) {
	rows := []repositories.AnswerCountRow{
		{TahunLulus: 2021, QuestionID: 7, Pertanyaan: "Pelayanan", Jawaban: "Tidak Tahu", Jumlah: 5},
	}

	got := buildBreakdown(rows)

	assert.Len(t, got, 1)
	counts := got[0].PerTahun[0].Jumlah
	assert.Equal(t, 5, counts["Tidak Tahu"])
	// the fixed scale is still present
	assert.Len(t, counts, len(answerCategories)+1)
}

func TestNewYearAnswerRow(t *testing.T) {
	row := newYearAnswerRow(2020)

	assert.Equal(t, 2020, row.TahunLulus)
	assert.Len(t, row.Jumlah, len(answerCategories))
	for _, category := range answerCategories {
		count, ok := row.Jumlah[category]
		assert.True(t, ok, "category %q missing", category)
		assert.Zero(t, count)
	}
}
