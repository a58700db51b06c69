package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eni-training/course_management_app/internal/core/domain"
	"github.com/eni-training/course_management_app/internal/dto"
)

type mockCourseService struct {
	mock.Mock
}

func (m *mockCourseService) GetCourseByID(ctx context.Context, courseID int64) (*domain.Course, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *mockCourseService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *mockCourseService) ListCoursesByArea(ctx context.Context, areaID int64) ([]domain.Course, error) {
	args := m.Called(ctx, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *mockCourseService) ListVisibleCourses(ctx context.Context, callerUserID int64, callerRole domain.Role) ([]domain.Course, error) {
	args := m.Called(ctx, callerUserID, callerRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *mockCourseService) ListLinkedUsers(ctx context.Context, courseID int64) ([]domain.User, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockCourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest, creatorUserID int64) (*domain.Course, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *mockCourseService) UpdateCourse(ctx context.Context, courseID int64, req dto.UpdateCourseRequest) (*domain.Course, error) {
	args := m.Called(ctx, courseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *mockCourseService) DeleteCourse(ctx context.Context, courseID int64) error {
	args := m.Called(ctx, courseID)
	return args.Error(0)
}

func newCourseTestRouter(svc *mockCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	registerCourseRoutes(api, routeTestSecret, svc)
	return r
}

func TestCourseRoutes_LinkedUsersIsPublic(t *testing.T) {
	areaID := int64(3)
	svc := new(mockCourseService)
	svc.On("ListLinkedUsers", mock.Anything, int64(5)).
		Return([]domain.User{{ID: 10, Email: "alumno@example.com", Role: domain.RoleTrainee, AreaID: &areaID}}, nil)
	r := newCourseTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cursos/5/usuarios", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alumno@example.com")
	svc.AssertExpectations(t)
}

func TestCourseRoutes_MineRequiresToken(t *testing.T) {
	svc := new(mockCourseService)
	r := newCourseTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cursos/mine", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_REQUIRED")
}

func TestCourseRoutes_WritesRequireAdmin(t *testing.T) {
	svc := new(mockCourseService)
	r := newCourseTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/cursos/5", nil)
	req.Header.Set("Authorization", bearerFor(t, domain.RoleTrainer))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
	svc.AssertNotCalled(t, "DeleteCourse", mock.Anything, mock.Anything)
}
