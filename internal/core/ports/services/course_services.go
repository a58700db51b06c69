package services

import (
	"context"

	"github.com/eni-training/course_management_app/internal/core/domain"
	"github.com/eni-training/course_management_app/internal/dto"
)

// CourseReaderSvc defines read operations for courses.
type CourseReaderSvc interface {
	GetCourseByID(ctx context.Context, courseID int64) (*domain.Course, error)

	// ListCourses returns all courses, newest first.
	ListCourses(ctx context.Context) ([]domain.Course, error)

	// ListCoursesByArea returns the courses of one area, newest first.
	ListCoursesByArea(ctx context.Context, areaID int64) ([]domain.Course, error)

	// ListVisibleCourses applies the visibility rule: administrators see
	// every course, other roles only courses of their own area, and a
	// caller without an area sees none.
	ListVisibleCourses(ctx context.Context, callerUserID int64, callerRole domain.Role) ([]domain.Course, error)

	// ListLinkedUsers returns the users joined to a course through the
	// linkage table.
	ListLinkedUsers(ctx context.Context, courseID int64) ([]domain.User, error)
}

// CourseWriterSvc defines write operations for courses. All of them are
// administrator-only at the routing layer.
type CourseWriterSvc interface {
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest, creatorUserID int64) (*domain.Course, error)
	UpdateCourse(ctx context.Context, courseID int64, req dto.UpdateCourseRequest) (*domain.Course, error)
	DeleteCourse(ctx context.Context, courseID int64) error
}

// CourseSvcFacade combines all course-related service interfaces.
type CourseSvcFacade interface {
	CourseReaderSvc
	CourseWriterSvc
}
