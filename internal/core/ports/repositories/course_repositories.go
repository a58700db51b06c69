package repositories

import (
	"context"

	"github.com/eni-training/course_management_app/internal/core/domain"
)

// CourseRepository defines persistence operations for courses and the
// derived course-user linkage table. CreateCourse and UpdateCourse run the
// course write and the linkage synchronization in a single transaction so a
// failure midway rolls back both.
type CourseRepository interface {
	// CreateCourse inserts the course and one linkage row for every user
	// whose area matches the course's area.
	CreateCourse(ctx context.Context, course domain.Course) (*domain.Course, error)

	// UpdateCourse persists the course. When rebuildLinks is true all
	// linkage rows for the course are deleted and recomputed from the
	// course's current area inside the same transaction.
	UpdateCourse(ctx context.Context, course domain.Course, rebuildLinks bool) error

	// DeleteCourse removes the course; enrollments and linkage rows go with
	// it via foreign-key cascade. Returns apperrors.ErrNotFound when no row
	// was deleted.
	DeleteCourse(ctx context.Context, courseID int64) error

	FindCourseByID(ctx context.Context, courseID int64) (*domain.Course, error)
	ListCourses(ctx context.Context) ([]domain.Course, error)
	ListCoursesByArea(ctx context.Context, areaID int64) ([]domain.Course, error)

	// ListLinkedUsers returns the users joined through course_user_links.
	ListLinkedUsers(ctx context.Context, courseID int64) ([]domain.User, error)
}
