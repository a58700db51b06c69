package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/eni-training/course_management_app/internal/apperrors"
	"github.com/eni-training/course_management_app/internal/core/domain"
	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/core/services"
	"github.com/eni-training/course_management_app/internal/dto"
)

type CourseServiceTestSuite struct {
	suite.Suite
	courseRepo *MockCourseRepository
	areaRepo   *MockAreaRepository
	userRepo   *MockUserRepository
	service    portssvc.CourseSvcFacade
	ctx        context.Context
}

func (s *CourseServiceTestSuite) SetupTest() {
	s.courseRepo = new(MockCourseRepository)
	s.areaRepo = new(MockAreaRepository)
	s.userRepo = new(MockUserRepository)
	s.service = services.NewCourseService(s.courseRepo, s.areaRepo, s.userRepo)
	s.ctx = context.Background()
}

func validCreateRequest() dto.CreateCourseRequest {
	return dto.CreateCourseRequest{
		Name:          "Go desde cero",
		Description:   "Introducción al lenguaje",
		DurationHours: 20,
		Category:      "Programación",
		Level:         "Básico",
		AreaID:        1,
	}
}

func (s *CourseServiceTestSuite) assertCode(err error, code string) {
	s.Require().Error(err)
	var appErr *apperrors.AppError
	s.Require().True(errors.As(err, &appErr), "expected coded application error, got %v", err)
	s.Equal(code, appErr.Code)
}

func (s *CourseServiceTestSuite) TestCreateCourse_Success() {
	req := validCreateRequest()
	areaID := int64(1)
	s.areaRepo.On("FindAreaByID", s.ctx, areaID).Return(&domain.Area{ID: areaID, Code: "AREA1", Name: "Informática"}, nil)
	s.courseRepo.On("CreateCourse", s.ctx, mock.MatchedBy(func(c domain.Course) bool {
		return c.Name == req.Name && c.AreaID != nil && *c.AreaID == areaID && c.CreatorUserID != nil && *c.CreatorUserID == 42
	})).Return(&domain.Course{ID: 7, Name: req.Name, AreaID: &areaID}, nil)

	course, err := s.service.CreateCourse(s.ctx, req, 42)

	s.Require().NoError(err)
	s.Equal(int64(7), course.ID)
	s.courseRepo.AssertExpectations(s.T())
}

func (s *CourseServiceTestSuite) TestCreateCourse_ZeroDurationIsInvalidDuration() {
	req := validCreateRequest()
	req.DurationHours = 0

	_, err := s.service.CreateCourse(s.ctx, req, 42)

	s.assertCode(err, "INVALID_DURATION")
	// Nothing may be persisted on validation failure.
	s.courseRepo.AssertNotCalled(s.T(), "CreateCourse", mock.Anything, mock.Anything)
}

func (s *CourseServiceTestSuite) TestCreateCourse_MissingFields() {
	req := validCreateRequest()
	req.Name = "  "

	_, err := s.service.CreateCourse(s.ctx, req, 42)

	s.assertCode(err, "MISSING_FIELDS")
}

func (s *CourseServiceTestSuite) TestCreateCourse_NameTooLong() {
	req := validCreateRequest()
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	req.Name = string(long)

	_, err := s.service.CreateCourse(s.ctx, req, 42)

	s.assertCode(err, "NAME_TOO_LONG")
}

func (s *CourseServiceTestSuite) TestCreateCourse_InvalidCategoryAndLevel() {
	req := validCreateRequest()
	req.Category = "Cocina"
	_, err := s.service.CreateCourse(s.ctx, req, 42)
	s.assertCode(err, "INVALID_CATEGORY")

	req = validCreateRequest()
	req.Level = "Experto"
	_, err = s.service.CreateCourse(s.ctx, req, 42)
	s.assertCode(err, "INVALID_LEVEL")
}

func (s *CourseServiceTestSuite) TestCreateCourse_UnknownArea() {
	req := validCreateRequest()
	req.AreaID = 99
	s.areaRepo.On("FindAreaByID", s.ctx, int64(99)).Return(nil, nil)

	_, err := s.service.CreateCourse(s.ctx, req, 42)

	s.assertCode(err, "INVALID_AREA")
	s.courseRepo.AssertNotCalled(s.T(), "CreateCourse", mock.Anything, mock.Anything)
}

func (s *CourseServiceTestSuite) TestUpdateCourse_AreaChangeRebuildsLinks() {
	oldArea := int64(1)
	newArea := int64(2)
	stored := &domain.Course{ID: 7, Name: "Go", Description: "x", DurationHours: 10, Category: domain.CategoryProgramming, Level: domain.LevelBasic, AreaID: &oldArea}

	s.courseRepo.On("FindCourseByID", s.ctx, int64(7)).Return(stored, nil).Once()
	s.areaRepo.On("FindAreaByID", s.ctx, newArea).Return(&domain.Area{ID: newArea}, nil)
	s.courseRepo.On("UpdateCourse", s.ctx, mock.MatchedBy(func(c domain.Course) bool {
		return c.AreaID != nil && *c.AreaID == newArea
	}), true).Return(nil)
	updated := &domain.Course{ID: 7, AreaID: &newArea}
	s.courseRepo.On("FindCourseByID", s.ctx, int64(7)).Return(updated, nil).Once()

	course, err := s.service.UpdateCourse(s.ctx, 7, dto.UpdateCourseRequest{AreaID: &newArea})

	s.Require().NoError(err)
	s.Equal(newArea, *course.AreaID)
	s.courseRepo.AssertExpectations(s.T())
}

func (s *CourseServiceTestSuite) TestUpdateCourse_SameAreaSkipsRebuild() {
	areaID := int64(1)
	stored := &domain.Course{ID: 7, Name: "Go", Description: "x", DurationHours: 10, Category: domain.CategoryProgramming, Level: domain.LevelBasic, AreaID: &areaID}

	s.courseRepo.On("FindCourseByID", s.ctx, int64(7)).Return(stored, nil)
	s.areaRepo.On("FindAreaByID", s.ctx, areaID).Return(&domain.Area{ID: areaID}, nil)
	s.courseRepo.On("UpdateCourse", s.ctx, mock.Anything, false).Return(nil)

	_, err := s.service.UpdateCourse(s.ctx, 7, dto.UpdateCourseRequest{AreaID: &areaID})

	s.Require().NoError(err)
	s.courseRepo.AssertExpectations(s.T())
}

func (s *CourseServiceTestSuite) TestUpdateCourse_InvalidPatchFields() {
	areaID := int64(1)
	stored := &domain.Course{ID: 7, Name: "Go", Description: "x", DurationHours: 10, Category: domain.CategoryProgramming, Level: domain.LevelBasic, AreaID: &areaID}
	s.courseRepo.On("FindCourseByID", s.ctx, int64(7)).Return(stored, nil)

	empty := "   "
	_, err := s.service.UpdateCourse(s.ctx, 7, dto.UpdateCourseRequest{Name: &empty})
	s.assertCode(err, "INVALID_NAME")

	_, err = s.service.UpdateCourse(s.ctx, 7, dto.UpdateCourseRequest{Description: &empty})
	s.assertCode(err, "INVALID_DESCRIPTION")

	zero := 0
	_, err = s.service.UpdateCourse(s.ctx, 7, dto.UpdateCourseRequest{DurationHours: &zero})
	s.assertCode(err, "INVALID_DURATION")

	s.courseRepo.AssertNotCalled(s.T(), "UpdateCourse", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CourseServiceTestSuite) TestUpdateCourse_NotFound() {
	s.courseRepo.On("FindCourseByID", s.ctx, int64(404)).Return(nil, nil)

	_, err := s.service.UpdateCourse(s.ctx, 404, dto.UpdateCourseRequest{})

	s.assertCode(err, "COURSE_NOT_FOUND")
}

func (s *CourseServiceTestSuite) TestListVisibleCourses_AdminSeesAll() {
	all := []domain.Course{{ID: 1}, {ID: 2}}
	s.courseRepo.On("ListCourses", s.ctx).Return(all, nil)

	courses, err := s.service.ListVisibleCourses(s.ctx, 1, domain.RoleAdministrator)

	s.Require().NoError(err)
	s.Len(courses, 2)
	s.userRepo.AssertNotCalled(s.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (s *CourseServiceTestSuite) TestListVisibleCourses_AreaUserSeesOwnArea() {
	areaID := int64(3)
	s.userRepo.On("FindUserByID", s.ctx, int64(5)).Return(&domain.User{ID: 5, Role: domain.RoleTrainee, AreaID: &areaID}, nil)
	s.courseRepo.On("ListCoursesByArea", s.ctx, areaID).Return([]domain.Course{{ID: 9}}, nil)

	courses, err := s.service.ListVisibleCourses(s.ctx, 5, domain.RoleTrainee)

	s.Require().NoError(err)
	s.Len(courses, 1)
}

func (s *CourseServiceTestSuite) TestListVisibleCourses_NoAreaSeesNone() {
	s.userRepo.On("FindUserByID", s.ctx, int64(5)).Return(&domain.User{ID: 5, Role: domain.RoleTrainer}, nil)

	courses, err := s.service.ListVisibleCourses(s.ctx, 5, domain.RoleTrainer)

	s.Require().NoError(err)
	s.Empty(courses)
	s.courseRepo.AssertNotCalled(s.T(), "ListCourses", mock.Anything)
	s.courseRepo.AssertNotCalled(s.T(), "ListCoursesByArea", mock.Anything, mock.Anything)
}

func (s *CourseServiceTestSuite) TestDeleteCourse_NotFound() {
	s.courseRepo.On("DeleteCourse", s.ctx, int64(404)).Return(apperrors.ErrNotFound)

	err := s.service.DeleteCourse(s.ctx, 404)

	s.assertCode(err, "COURSE_NOT_FOUND")
}

func TestCourseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CourseServiceTestSuite))
}
