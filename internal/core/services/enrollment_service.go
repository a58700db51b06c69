package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eni-training/course_management_app/internal/apperrors"
	"github.com/eni-training/course_management_app/internal/core/domain"
	portsrepo "github.com/eni-training/course_management_app/internal/core/ports/repositories"
	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/middleware"
)

type enrollmentService struct {
	enrollmentRepo portsrepo.EnrollmentRepository
	courseRepo     portsrepo.CourseRepository
	userRepo       portsrepo.UserRepository
}

// NewEnrollmentService creates the enrollment service.
func NewEnrollmentService(enrollmentRepo portsrepo.EnrollmentRepository, courseRepo portsrepo.CourseRepository, userRepo portsrepo.UserRepository) portssvc.EnrollmentSvcFacade {
	return &enrollmentService{enrollmentRepo: enrollmentRepo, courseRepo: courseRepo, userRepo: userRepo}
}

// Enroll enforces the enrollment rules in order: valid id, course exists,
// no prior row for the pair (any status), and for Formador users no other
// active enrollment anywhere. The course's area is deliberately not checked
// against the caller's; visibility filtering happens only at listing time.
func (s *enrollmentService) Enroll(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if courseID < 1 {
		return nil, apperrors.NewValidation("INVALID_COURSE_ID", "Invalid course id")
	}

	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find course: %w", err)
	}
	if course == nil {
		return nil, apperrors.NewNotFound("COURSE_NOT_FOUND", "Course not found")
	}

	existing, err := s.enrollmentRepo.FindEnrollment(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing enrollment: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflict("ALREADY_ENROLLED", "You are already enrolled in this course")
	}

	// Role comes from the store here, not from token claims, because the
	// single-active rule depends on the current role.
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("USER_NOT_FOUND", "User not found")
	}
	if user.Role == domain.RoleTrainer {
		active, err := s.enrollmentRepo.FindActiveEnrollmentByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check active enrollment: %w", err)
		}
		if active != nil {
			return nil, apperrors.NewConflict("FORMADOR_SINGLE_ENROLLMENT", "Formador users may hold only one active enrollment")
		}
	}

	enrollment := domain.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   domain.EnrollmentActive,
	}
	created, err := s.enrollmentRepo.CreateEnrollment(ctx, enrollment)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflict("ALREADY_ENROLLED", "You are already enrolled in this course")
		}
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}
	logger.Info("enrollment created", "user_id", userID, "course_id", courseID)
	return created, nil
}

func (s *enrollmentService) ListUserEnrollments(ctx context.Context, userID int64) ([]domain.EnrollmentWithCourse, error) {
	enrollments, err := s.enrollmentRepo.ListEnrollmentsWithCourseByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}
