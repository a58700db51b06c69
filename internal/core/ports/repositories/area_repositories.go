package repositories

import (
	"context"

	"github.com/eni-training/course_management_app/internal/core/domain"
)

// AreaRepository defines persistence operations for areas.
type AreaRepository interface {
	CreateArea(ctx context.Context, area domain.Area) (*domain.Area, error)
	ListAreas(ctx context.Context) ([]domain.Area, error)
	FindAreaByID(ctx context.Context, areaID int64) (*domain.Area, error)
	FindAreaByCode(ctx context.Context, code string) (*domain.Area, error)
	DeleteArea(ctx context.Context, areaID int64) error
}
