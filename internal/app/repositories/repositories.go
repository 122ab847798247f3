package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories combines all application repositories
type Repositories struct {
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	StudentFeeRepository *StudentFeeRepository
	ActivityRepository   *ActivityRepository
	AdmissionStore       *AdmissionStore
}

// NewRepositories creates all repositories over one connection pool
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(pool),
		StudentRepository:    NewStudentRepository(pool),
		CourseRepository:     NewCourseRepository(pool),
		StudentFeeRepository: NewStudentFeeRepository(pool),
		ActivityRepository:   NewActivityRepository(pool),
		AdmissionStore:       NewAdmissionStore(pool),
	}
}
