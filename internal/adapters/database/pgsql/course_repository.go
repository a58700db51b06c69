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

type courseRepository struct {
	baseRepository
}

func newPgxCourseRepository(db *pgxpool.Pool) *courseRepository {
	return &courseRepository{baseRepository{pool: db}}
}

var _ portsrepo.CourseRepository = (*courseRepository)(nil)

const courseColumns = `id, name, description, duration_hours, category, level, area_id, creator_user_id, created_at, updated_at`

func scanCourse(row pgx.Row) (*domain.Course, error) {
	var course domain.Course
	err := row.Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.DurationHours,
		&course.Category,
		&course.Level,
		&course.AreaID,
		&course.CreatorUserID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// syncLinks recomputes course_user_links for the course from its area. The
// caller is responsible for running this inside the same transaction as the
// course write so readers never observe an empty membership window.
func syncLinks(ctx context.Context, tx pgx.Tx, courseID int64, areaID *int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM course_user_links WHERE course_id = $1;`, courseID); err != nil {
		return fmt.Errorf("failed to clear course links: %w", err)
	}
	if areaID == nil {
		return nil
	}
	query := `
        INSERT INTO course_user_links (course_id, user_id)
        SELECT $1, id FROM users WHERE area_id = $2;
    `
	if _, err := tx.Exec(ctx, query, courseID, *areaID); err != nil {
		return fmt.Errorf("failed to rebuild course links: %w", err)
	}
	return nil
}

func (r *courseRepository) CreateCourse(ctx context.Context, course domain.Course) (*domain.Course, error) {
	var created *domain.Course
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		query := `
            INSERT INTO courses (name, description, duration_hours, category, level, area_id, creator_user_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING ` + courseColumns + `;
        `
		var err error
		created, err = scanCourse(tx.QueryRow(ctx, query,
			course.Name,
			course.Description,
			course.DurationHours,
			course.Category,
			course.Level,
			course.AreaID,
			course.CreatorUserID,
		))
		if err != nil {
			return fmt.Errorf("failed to insert course: %w", err)
		}
		return syncLinks(ctx, tx, created.ID, created.AreaID)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *courseRepository) UpdateCourse(ctx context.Context, course domain.Course, rebuildLinks bool) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		query := `
            UPDATE courses
            SET name = $1, description = $2, duration_hours = $3, category = $4,
                level = $5, area_id = $6, updated_at = now()
            WHERE id = $7;
        `
		cmdTag, err := tx.Exec(ctx, query,
			course.Name,
			course.Description,
			course.DurationHours,
			course.Category,
			course.Level,
			course.AreaID,
			course.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update course: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		if rebuildLinks {
			return syncLinks(ctx, tx, course.ID, course.AreaID)
		}
		return nil
	})
}

func (r *courseRepository) DeleteCourse(ctx context.Context, courseID int64) error {
	// Enrollments and linkage rows cascade via foreign keys.
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1;`, courseID)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *courseRepository) FindCourseByID(ctx context.Context, courseID int64) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1;`
	course, err := scanCourse(r.pool.QueryRow(ctx, query, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find course by ID: %w", err)
	}
	return course, nil
}

func (r *courseRepository) ListCourses(ctx context.Context) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at DESC;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()
	return collectCourses(rows)
}

func (r *courseRepository) ListCoursesByArea(ctx context.Context, areaID int64) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE area_id = $1 ORDER BY created_at DESC;`
	rows, err := r.pool.Query(ctx, query, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses by area: %w", err)
	}
	defer rows.Close()
	return collectCourses(rows)
}

func (r *courseRepository) ListLinkedUsers(ctx context.Context, courseID int64) ([]domain.User, error) {
	query := `
        SELECT u.id, u.first_name, u.last_name, u.email, u.password, u.role, u.area_id, u.created_at, u.updated_at
        FROM users u
        JOIN course_user_links cul ON cul.user_id = u.id
        WHERE cul.course_id = $1
        ORDER BY u.id;
    `
	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query linked users: %w", err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

func collectCourses(rows pgx.Rows) ([]domain.Course, error) {
	courses := []domain.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, *course)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", rows.Err())
	}
	return courses, nil
}
