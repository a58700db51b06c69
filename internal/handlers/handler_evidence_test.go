package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eni-training/course_management_app/internal/core/domain"
	"github.com/eni-training/course_management_app/internal/dto"
	"github.com/eni-training/course_management_app/internal/utils"
)

const routeTestSecret = "route-test-secret"

type mockEvidenceService struct {
	mock.Mock
}

func (m *mockEvidenceService) SubmitEvidence(ctx context.Context, ownerUserID int64, ownerName string, uploads []dto.EvidenceUpload, description string) (int, error) {
	args := m.Called(ctx, ownerUserID, ownerName, uploads, description)
	return args.Int(0), args.Error(1)
}

func (m *mockEvidenceService) GetEvidence(ctx context.Context, evidenceID int64) (*domain.Evidence, error) {
	args := m.Called(ctx, evidenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evidence), args.Error(1)
}

func (m *mockEvidenceService) ListEvidence(ctx context.Context) ([]domain.Evidence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Evidence), args.Error(1)
}

func (m *mockEvidenceService) ListEvidenceByOwner(ctx context.Context, ownerUserID int64) ([]domain.Evidence, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Evidence), args.Error(1)
}

func (m *mockEvidenceService) UpdateEvidence(ctx context.Context, evidenceID int64, req dto.UpdateEvidenceRequest) (*domain.Evidence, error) {
	args := m.Called(ctx, evidenceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evidence), args.Error(1)
}

func (m *mockEvidenceService) DeleteEvidence(ctx context.Context, evidenceID int64) error {
	args := m.Called(ctx, evidenceID)
	return args.Error(0)
}

func (m *mockEvidenceService) StatusSummary(ctx context.Context) ([]domain.EvidenceStatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EvidenceStatusCount), args.Error(1)
}

func newEvidenceTestRouter(svc *mockEvidenceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	registerEvidenceRoutes(api, routeTestSecret, svc)
	return r
}

func bearerFor(t *testing.T, role domain.Role) string {
	t.Helper()
	user := &domain.User{ID: 7, Email: "u@example.com", FirstName: "U", LastName: "Ser", Role: role}
	token, err := utils.GenerateJWT(user, routeTestSecret, time.Hour, "course-management-app")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestEvidenceRoutes_TrainerCanListOwnFiles(t *testing.T) {
	svc := new(mockEvidenceService)
	svc.On("ListEvidenceByOwner", mock.Anything, int64(7)).
		Return([]domain.Evidence{{ID: 1, OwnerUserID: 7, Name: "informe.pdf"}}, nil)
	r := newEvidenceTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/archivos/usuario/7", nil)
	req.Header.Set("Authorization", bearerFor(t, domain.RoleTrainer))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "informe.pdf")
	svc.AssertExpectations(t)
}

func TestEvidenceRoutes_TraineeCanListAll(t *testing.T) {
	svc := new(mockEvidenceService)
	svc.On("ListEvidence", mock.Anything).Return([]domain.Evidence{}, nil)
	r := newEvidenceTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/archivos", nil)
	req.Header.Set("Authorization", bearerFor(t, domain.RoleTrainee))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEvidenceRoutes_TokenRequired(t *testing.T) {
	svc := new(mockEvidenceService)
	r := newEvidenceTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/archivos/usuario/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_REQUIRED")
	svc.AssertNotCalled(t, "ListEvidenceByOwner", mock.Anything, mock.Anything)
}
