package validation

import "testing"

func TestValidIdentity(t *testing.T) {
	tests := []struct {
		name string
		nisn string
		nis  string
		nik  string
		want bool
	}{
		{name: "valid", nisn: "0051234567", nis: "12345", nik: "3173051234567890", want: true},
		{name: "short nis ok", nisn: "0051234567", nis: "1234", nik: "3173051234567890", want: true},
		{name: "nisn too short", nisn: "005123456", nis: "12345", nik: "3173051234567890", want: false},
		{name: "nisn too long", nisn: "00512345678", nis: "12345", nik: "3173051234567890", want: false},
		{name: "nis too short", nisn: "0051234567", nis: "123", nik: "3173051234567890", want: false},
		{name: "nik wrong length", nisn: "0051234567", nis: "12345", nik: "31730512345678", want: false},
		{name: "non-digit nik", nisn: "0051234567", nis: "12345", nik: "31730512345678ab", want: false},
		{name: "empty", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidIdentity(tt.nisn, tt.nis, tt.nik); got != tt.want {
				t.Errorf("ValidIdentity() = %v, want %v", got, tt.want)
			}
		})
	}
}
