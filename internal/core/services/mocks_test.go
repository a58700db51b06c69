package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eni-training/course_management_app/internal/core/domain"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsersByAreaIDs(ctx context.Context, areaIDs []int64) ([]domain.User, error) {
	args := m.Called(ctx, areaIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock AreaRepository ---
type MockAreaRepository struct {
	mock.Mock
}

func (m *MockAreaRepository) CreateArea(ctx context.Context, area domain.Area) (*domain.Area, error) {
	args := m.Called(ctx, area)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Area), args.Error(1)
}

func (m *MockAreaRepository) ListAreas(ctx context.Context) ([]domain.Area, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Area), args.Error(1)
}

func (m *MockAreaRepository) FindAreaByID(ctx context.Context, areaID int64) (*domain.Area, error) {
	args := m.Called(ctx, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Area), args.Error(1)
}

func (m *MockAreaRepository) FindAreaByCode(ctx context.Context, code string) (*domain.Area, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Area), args.Error(1)
}

func (m *MockAreaRepository) DeleteArea(ctx context.Context, areaID int64) error {
	args := m.Called(ctx, areaID)
	return args.Error(0)
}

// --- Mock CourseRepository ---
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) CreateCourse(ctx context.Context, course domain.Course) (*domain.Course, error) {
	args := m.Called(ctx, course)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepository) UpdateCourse(ctx context.Context, course domain.Course, rebuildLinks bool) error {
	args := m.Called(ctx, course, rebuildLinks)
	return args.Error(0)
}

func (m *MockCourseRepository) DeleteCourse(ctx context.Context, courseID int64) error {
	args := m.Called(ctx, courseID)
	return args.Error(0)
}

func (m *MockCourseRepository) FindCourseByID(ctx context.Context, courseID int64) (*domain.Course, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepository) ListCourses(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseRepository) ListCoursesByArea(ctx context.Context, areaID int64) ([]domain.Course, error) {
	args := m.Called(ctx, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseRepository) ListLinkedUsers(ctx context.Context, courseID int64) ([]domain.User, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock EnrollmentRepository ---
type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) CreateEnrollment(ctx context.Context, enrollment domain.Enrollment) (*domain.Enrollment, error) {
	args := m.Called(ctx, enrollment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindEnrollment(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindActiveEnrollmentByUser(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) ListEnrollmentsWithCourseByUser(ctx context.Context, userID int64) ([]domain.EnrollmentWithCourse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrollmentWithCourse), args.Error(1)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotifications(ctx context.Context, notifications []domain.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListNotificationsByRecipient(ctx context.Context, userID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID, recipientUserID int64) error {
	args := m.Called(ctx, notificationID, recipientUserID)
	return args.Error(0)
}

// --- Mock EvidenceRepository ---
type MockEvidenceRepository struct {
	mock.Mock
}

func (m *MockEvidenceRepository) CreateEvidence(ctx context.Context, evidence domain.Evidence) (*domain.Evidence, error) {
	args := m.Called(ctx, evidence)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evidence), args.Error(1)
}

func (m *MockEvidenceRepository) FindEvidenceByID(ctx context.Context, evidenceID int64) (*domain.Evidence, error) {
	args := m.Called(ctx, evidenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evidence), args.Error(1)
}

func (m *MockEvidenceRepository) ListEvidence(ctx context.Context) ([]domain.Evidence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Evidence), args.Error(1)
}

func (m *MockEvidenceRepository) ListEvidenceByOwner(ctx context.Context, ownerUserID int64) ([]domain.Evidence, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Evidence), args.Error(1)
}

func (m *MockEvidenceRepository) UpdateEvidence(ctx context.Context, evidence domain.Evidence) error {
	args := m.Called(ctx, evidence)
	return args.Error(0)
}

func (m *MockEvidenceRepository) DeleteEvidence(ctx context.Context, evidenceID int64) error {
	args := m.Called(ctx, evidenceID)
	return args.Error(0)
}

func (m *MockEvidenceRepository) CountEvidenceByStatus(ctx context.Context) ([]domain.EvidenceStatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EvidenceStatusCount), args.Error(1)
}
