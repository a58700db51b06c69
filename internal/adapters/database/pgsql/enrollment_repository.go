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

type enrollmentRepository struct {
	db *pgxpool.Pool
}

func newPgxEnrollmentRepository(db *pgxpool.Pool) *enrollmentRepository {
	return &enrollmentRepository{db: db}
}

var _ portsrepo.EnrollmentRepository = (*enrollmentRepository)(nil)

const enrollmentColumns = `id, user_id, course_id, enrolled_at, status`

func scanEnrollment(row pgx.Row) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := row.Scan(&e.ID, &e.UserID, &e.CourseID, &e.EnrolledAt, &e.Status)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepository) CreateEnrollment(ctx context.Context, enrollment domain.Enrollment) (*domain.Enrollment, error) {
	query := `
        INSERT INTO enrollments (user_id, course_id, status)
        VALUES ($1, $2, $3)
        RETURNING ` + enrollmentColumns + `;
    `
	created, err := scanEnrollment(r.db.QueryRow(ctx, query,
		enrollment.UserID,
		enrollment.CourseID,
		enrollment.Status,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// The (user_id, course_id) unique constraint backs the
			// one-enrollment-per-pair invariant against races.
			return nil, fmt.Errorf("enrollment already exists: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}
	return created, nil
}

func (r *enrollmentRepository) FindEnrollment(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE user_id = $1 AND course_id = $2;`
	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, userID, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find enrollment: %w", err)
	}
	return enrollment, nil
}

func (r *enrollmentRepository) FindActiveEnrollmentByUser(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE user_id = $1 AND status = $2 LIMIT 1;`
	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, userID, domain.EnrollmentActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active enrollment: %w", err)
	}
	return enrollment, nil
}

func (r *enrollmentRepository) ListEnrollmentsWithCourseByUser(ctx context.Context, userID int64) ([]domain.EnrollmentWithCourse, error) {
	query := `
        SELECT e.id, e.user_id, e.course_id, e.enrolled_at, e.status,
               c.id, c.name, c.description, c.duration_hours, c.category, c.level,
               c.area_id, c.creator_user_id, c.created_at, c.updated_at
        FROM enrollments e
        JOIN courses c ON c.id = e.course_id
        WHERE e.user_id = $1
        ORDER BY e.enrolled_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	result := []domain.EnrollmentWithCourse{}
	for rows.Next() {
		var item domain.EnrollmentWithCourse
		var course domain.Course
		err := rows.Scan(
			&item.ID, &item.UserID, &item.CourseID, &item.EnrolledAt, &item.Status,
			&course.ID, &course.Name, &course.Description, &course.DurationHours,
			&course.Category, &course.Level, &course.AreaID, &course.CreatorUserID,
			&course.CreatedAt, &course.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment row: %w", err)
		}
		item.Course = &course
		result = append(result, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", rows.Err())
	}
	return result, nil
}
