package pgsql

import (
	portsrepo "github.com/eni-training/course_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		AreaRepo:         newPgxAreaRepository(dbPool),
		CourseRepo:       newPgxCourseRepository(dbPool),
		EnrollmentRepo:   newPgxEnrollmentRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		EvidenceRepo:     newPgxEvidenceRepository(dbPool),
	}
}
