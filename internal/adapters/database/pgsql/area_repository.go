package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/eni-training/course_management_app/internal/apperrors"
	"github.com/eni-training/course_management_app/internal/core/domain"
	portsrepo "github.com/eni-training/course_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type areaRepository struct {
	db *pgxpool.Pool
}

func newPgxAreaRepository(db *pgxpool.Pool) *areaRepository {
	return &areaRepository{db: db}
}

var _ portsrepo.AreaRepository = (*areaRepository)(nil)

func (r *areaRepository) CreateArea(ctx context.Context, area domain.Area) (*domain.Area, error) {
	query := `INSERT INTO areas (code, name) VALUES ($1, $2) RETURNING id, code, name;`
	var created domain.Area
	err := r.db.QueryRow(ctx, query, area.Code, area.Name).Scan(&created.ID, &created.Code, &created.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("area code already in use: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create area: %w", err)
	}
	return &created, nil
}

func (r *areaRepository) ListAreas(ctx context.Context) ([]domain.Area, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, name FROM areas ORDER BY code ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query areas: %w", err)
	}
	defer rows.Close()

	areas := []domain.Area{}
	for rows.Next() {
		var area domain.Area
		if err := rows.Scan(&area.ID, &area.Code, &area.Name); err != nil {
			return nil, fmt.Errorf("failed to scan area row: %w", err)
		}
		areas = append(areas, area)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating area rows: %w", rows.Err())
	}
	return areas, nil
}

func (r *areaRepository) FindAreaByID(ctx context.Context, areaID int64) (*domain.Area, error) {
	var area domain.Area
	err := r.db.QueryRow(ctx, `SELECT id, code, name FROM areas WHERE id = $1;`, areaID).
		Scan(&area.ID, &area.Code, &area.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find area by ID: %w", err)
	}
	return &area, nil
}

func (r *areaRepository) FindAreaByCode(ctx context.Context, code string) (*domain.Area, error) {
	var area domain.Area
	err := r.db.QueryRow(ctx, `SELECT id, code, name FROM areas WHERE code = $1;`, code).
		Scan(&area.ID, &area.Code, &area.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find area by code: %w", err)
	}
	return &area, nil
}

func (r *areaRepository) DeleteArea(ctx context.Context, areaID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM areas WHERE id = $1;`, areaID)
	if err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
