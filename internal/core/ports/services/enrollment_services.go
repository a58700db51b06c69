package services

import (
	"context"

	"github.com/eni-training/course_management_app/internal/core/domain"
)

// EnrollmentSvcFacade defines enrollment operations.
type EnrollmentSvcFacade interface {
	// Enroll creates an active enrollment for the user in the course,
	// enforcing the one-row-per-pair invariant and the single active
	// enrollment rule for Formador users. The course's area is not checked
	// against the caller's area; visibility filtering happens at listing
	// time only.
	Enroll(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error)

	// ListUserEnrollments returns the user's enrollments, newest first,
	// each with a course snapshot.
	ListUserEnrollments(ctx context.Context, userID int64) ([]domain.EnrollmentWithCourse, error)
}
