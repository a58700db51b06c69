package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eni-training/course_management_app/internal/apperrors"
	"github.com/eni-training/course_management_app/internal/core/domain"
	portsrepo "github.com/eni-training/course_management_app/internal/core/ports/repositories"
	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/dto"
)

type areaService struct {
	areaRepo portsrepo.AreaRepository
}

// NewAreaService creates the area service.
func NewAreaService(areaRepo portsrepo.AreaRepository) portssvc.AreaSvcFacade {
	return &areaService{areaRepo: areaRepo}
}

func (s *areaService) ListAreas(ctx context.Context) ([]domain.Area, error) {
	areas, err := s.areaRepo.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	return areas, nil
}

func (s *areaService) CreateArea(ctx context.Context, req dto.CreateAreaRequest) (*domain.Area, error) {
	area, err := s.areaRepo.CreateArea(ctx, domain.Area{Code: req.Code, Name: req.Name})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflict("DUPLICATE_AREA_CODE", "An area with that code already exists")
		}
		return nil, fmt.Errorf("failed to create area: %w", err)
	}
	return area, nil
}

func (s *areaService) DeleteArea(ctx context.Context, areaID int64) error {
	if err := s.areaRepo.DeleteArea(ctx, areaID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFound("AREA_NOT_FOUND", "Area not found")
		}
		return fmt.Errorf("failed to delete area: %w", err)
	}
	return nil
}
