package repositories

import (
	"context"

	"github.com/eni-training/course_management_app/internal/core/domain"
)

// EnrollmentRepository defines persistence operations for enrollments.
// Find methods return (nil, nil) when no row matches.
type EnrollmentRepository interface {
	CreateEnrollment(ctx context.Context, enrollment domain.Enrollment) (*domain.Enrollment, error)
	FindEnrollment(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error)
	FindActiveEnrollmentByUser(ctx context.Context, userID int64) (*domain.Enrollment, error)
	ListEnrollmentsWithCourseByUser(ctx context.Context, userID int64) ([]domain.EnrollmentWithCourse, error)
}
