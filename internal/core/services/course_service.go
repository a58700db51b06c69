package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eni-training/course_management_app/internal/apperrors"
	"github.com/eni-training/course_management_app/internal/core/domain"
	portsrepo "github.com/eni-training/course_management_app/internal/core/ports/repositories"
	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/dto"
	"github.com/eni-training/course_management_app/internal/middleware"
)

const maxCourseNameLength = 255

type courseService struct {
	courseRepo portsrepo.CourseRepository
	areaRepo   portsrepo.AreaRepository
	userRepo   portsrepo.UserRepository
}

// NewCourseService creates the course service.
func NewCourseService(courseRepo portsrepo.CourseRepository, areaRepo portsrepo.AreaRepository, userRepo portsrepo.UserRepository) portssvc.CourseSvcFacade {
	return &courseService{courseRepo: courseRepo, areaRepo: areaRepo, userRepo: userRepo}
}

func (s *courseService) GetCourseByID(ctx context.Context, courseID int64) (*domain.Course, error) {
	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course by ID: %w", err)
	}
	if course == nil {
		return nil, apperrors.NewNotFound("COURSE_NOT_FOUND", "Course not found")
	}
	return course, nil
}

func (s *courseService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.courseRepo.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (s *courseService) ListCoursesByArea(ctx context.Context, areaID int64) ([]domain.Course, error) {
	courses, err := s.courseRepo.ListCoursesByArea(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses by area: %w", err)
	}
	return courses, nil
}

func (s *courseService) ListVisibleCourses(ctx context.Context, callerUserID int64, callerRole domain.Role) ([]domain.Course, error) {
	if callerRole == domain.RoleAdministrator {
		return s.ListCourses(ctx)
	}
	caller, err := s.userRepo.FindUserByID(ctx, callerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}
	// A caller without an area sees no courses, never the full catalog.
	if caller == nil || caller.AreaID == nil {
		return []domain.Course{}, nil
	}
	return s.ListCoursesByArea(ctx, *caller.AreaID)
}

func (s *courseService) ListLinkedUsers(ctx context.Context, courseID int64) ([]domain.User, error) {
	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find course: %w", err)
	}
	if course == nil {
		return nil, apperrors.NewNotFound("COURSE_NOT_FOUND", "Course not found")
	}
	users, err := s.courseRepo.ListLinkedUsers(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked users: %w", err)
	}
	return users, nil
}

func (s *courseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest, creatorUserID int64) (*domain.Course, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" ||
		req.Category == "" || req.Level == "" {
		return nil, apperrors.NewValidation("MISSING_FIELDS", "All fields are required")
	}
	if req.DurationHours < 1 {
		return nil, apperrors.NewValidation("INVALID_DURATION", "Duration must be a number greater than 0")
	}
	if len(req.Name) > maxCourseNameLength {
		return nil, apperrors.NewValidation("NAME_TOO_LONG", "Name cannot exceed 255 characters")
	}
	category, err := domain.ParseCourseCategory(req.Category)
	if err != nil {
		return nil, apperrors.NewValidation("INVALID_CATEGORY", "Invalid category")
	}
	level, err := domain.ParseCourseLevel(req.Level)
	if err != nil {
		return nil, apperrors.NewValidation("INVALID_LEVEL", "Invalid level")
	}
	area, err := s.areaRepo.FindAreaByID(ctx, req.AreaID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up area: %w", err)
	}
	if area == nil {
		return nil, apperrors.NewValidation("INVALID_AREA", "Area does not exist")
	}

	course := domain.Course{
		Name:          strings.TrimSpace(req.Name),
		Description:   strings.TrimSpace(req.Description),
		DurationHours: req.DurationHours,
		Category:      category,
		Level:         level,
		AreaID:        &area.ID,
		CreatorUserID: &creatorUserID,
	}
	created, err := s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	logger.Info("course created", "course_id", created.ID, "area_id", area.ID)
	return created, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, courseID int64, req dto.UpdateCourseRequest) (*domain.Course, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find course: %w", err)
	}
	if course == nil {
		return nil, apperrors.NewNotFound("COURSE_NOT_FOUND", "Course not found")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" || len(*req.Name) > maxCourseNameLength {
			return nil, apperrors.NewValidation("INVALID_NAME", "Invalid name")
		}
		course.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, apperrors.NewValidation("INVALID_DESCRIPTION", "Invalid description")
		}
		course.Description = description
	}
	if req.DurationHours != nil {
		if *req.DurationHours < 1 {
			return nil, apperrors.NewValidation("INVALID_DURATION", "Invalid duration")
		}
		course.DurationHours = *req.DurationHours
	}
	if req.Category != nil {
		category, err := domain.ParseCourseCategory(*req.Category)
		if err != nil {
			return nil, apperrors.NewValidation("INVALID_CATEGORY", "Invalid category")
		}
		course.Category = category
	}
	if req.Level != nil {
		level, err := domain.ParseCourseLevel(*req.Level)
		if err != nil {
			return nil, apperrors.NewValidation("INVALID_LEVEL", "Invalid level")
		}
		course.Level = level
	}

	rebuildLinks := false
	if req.AreaID != nil {
		area, err := s.areaRepo.FindAreaByID(ctx, *req.AreaID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up area: %w", err)
		}
		if area == nil {
			return nil, apperrors.NewValidation("INVALID_AREA", "Area does not exist")
		}
		if course.AreaID == nil || *course.AreaID != area.ID {
			rebuildLinks = true
		}
		course.AreaID = &area.ID
	}

	if err := s.courseRepo.UpdateCourse(ctx, *course, rebuildLinks); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	if rebuildLinks {
		logger.Info("course links rebuilt", "course_id", course.ID, "area_id", *course.AreaID)
	}

	updated, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload course: %w", err)
	}
	return updated, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, courseID int64) error {
	if err := s.courseRepo.DeleteCourse(ctx, courseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFound("COURSE_NOT_FOUND", "Course not found")
		}
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}
