package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AlumniRepository    *AlumniRepository
	TracerRepository    *TracerRepository
	ReferenceRepository *ReferenceRepository
	StatisticRepository *StatisticRepository
	RosterRepository    *RosterRepository
	UserRepository      *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AlumniRepository:    NewAlumniRepository(db),
		TracerRepository:    NewTracerRepository(db),
		ReferenceRepository: NewReferenceRepository(db),
		StatisticRepository: NewStatisticRepository(db),
		RosterRepository:    NewRosterRepository(db),
		UserRepository:      NewUserRepository(db),
	}
}
