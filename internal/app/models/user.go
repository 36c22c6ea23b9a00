package models

import "time"

// User defines an administrative account based on the 'users' table.
// Password is stored as a bcrypt hash, never in plain text.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Nama      string    `json:"nama" db:"nama" example:"Admin Sekolah"`
	Email     string    `json:"email" db:"email" example:"admin@sekolah.sch.id"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
