package services

import (
	"context"

	"github.com/eni-training/course_management_app/internal/core/domain"
	"github.com/eni-training/course_management_app/internal/dto"
)

// AreaSvcFacade defines operations on organizational areas.
type AreaSvcFacade interface {
	ListAreas(ctx context.Context) ([]domain.Area, error)
	CreateArea(ctx context.Context, req dto.CreateAreaRequest) (*domain.Area, error)
	DeleteArea(ctx context.Context, areaID int64) error
}
