package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/eni-training/course_management_app/internal/apperrors"
	"github.com/eni-training/course_management_app/internal/core/domain"
	portsrepo "github.com/eni-training/course_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type evidenceRepository struct {
	db *pgxpool.Pool
}

func newPgxEvidenceRepository(db *pgxpool.Pool) *evidenceRepository {
	return &evidenceRepository{db: db}
}

var _ portsrepo.EvidenceRepository = (*evidenceRepository)(nil)

const evidenceColumns = `id, owner_user_id, name, path, mime_type, size_bytes, description, status, uploaded_at`

func scanEvidence(row pgx.Row) (*domain.Evidence, error) {
	var e domain.Evidence
	err := row.Scan(
		&e.ID,
		&e.OwnerUserID,
		&e.Name,
		&e.Path,
		&e.MimeType,
		&e.SizeBytes,
		&e.Description,
		&e.Status,
		&e.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *evidenceRepository) CreateEvidence(ctx context.Context, evidence domain.Evidence) (*domain.Evidence, error) {
	query := `
        INSERT INTO evidence_files (owner_user_id, name, path, mime_type, size_bytes, description, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + evidenceColumns + `;
    `
	created, err := scanEvidence(r.db.QueryRow(ctx, query,
		evidence.OwnerUserID,
		evidence.Name,
		evidence.Path,
		evidence.MimeType,
		evidence.SizeBytes,
		evidence.Description,
		evidence.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create evidence: %w", err)
	}
	return created, nil
}

func (r *evidenceRepository) FindEvidenceByID(ctx context.Context, evidenceID int64) (*domain.Evidence, error) {
	query := `SELECT ` + evidenceColumns + ` FROM evidence_files WHERE id = $1;`
	evidence, err := scanEvidence(r.db.QueryRow(ctx, query, evidenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find evidence by ID: %w", err)
	}
	return evidence, nil
}

func (r *evidenceRepository) ListEvidence(ctx context.Context) ([]domain.Evidence, error) {
	query := `SELECT ` + evidenceColumns + ` FROM evidence_files ORDER BY uploaded_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query evidence: %w", err)
	}
	defer rows.Close()
	return collectEvidence(rows)
}

func (r *evidenceRepository) ListEvidenceByOwner(ctx context.Context, ownerUserID int64) ([]domain.Evidence, error) {
	query := `SELECT ` + evidenceColumns + ` FROM evidence_files WHERE owner_user_id = $1 ORDER BY uploaded_at DESC;`
	rows, err := r.db.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query evidence by owner: %w", err)
	}
	defer rows.Close()
	return collectEvidence(rows)
}

func (r *evidenceRepository) UpdateEvidence(ctx context.Context, evidence domain.Evidence) error {
	query := `UPDATE evidence_files SET status = $1, description = $2 WHERE id = $3;`
	cmdTag, err := r.db.Exec(ctx, query, evidence.Status, evidence.Description, evidence.ID)
	if err != nil {
		return fmt.Errorf("failed to update evidence: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *evidenceRepository) DeleteEvidence(ctx context.Context, evidenceID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM evidence_files WHERE id = $1;`, evidenceID)
	if err != nil {
		return fmt.Errorf("failed to delete evidence: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *evidenceRepository) CountEvidenceByStatus(ctx context.Context) ([]domain.EvidenceStatusCount, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM evidence_files GROUP BY status;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query evidence stats: %w", err)
	}
	defer rows.Close()

	stats := []domain.EvidenceStatusCount{}
	for rows.Next() {
		var s domain.EvidenceStatusCount
		if err := rows.Scan(&s.Status, &s.Count); err != nil {
			return nil, fmt.Errorf("failed to scan evidence stat row: %w", err)
		}
		stats = append(stats, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating evidence stat rows: %w", rows.Err())
	}
	return stats, nil
}

func collectEvidence(rows pgx.Rows) ([]domain.Evidence, error) {
	items := []domain.Evidence{}
	for rows.Next() {
		evidence, err := scanEvidence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evidence row: %w", err)
		}
		items = append(items, *evidence)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating evidence rows: %w", rows.Err())
	}
	return items, nil
}
