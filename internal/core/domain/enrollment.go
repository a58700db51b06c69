package domain

import (
	"fmt"
	"time"
)

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "activo"
	EnrollmentCompleted EnrollmentStatus = "completado"
	EnrollmentCancelled EnrollmentStatus = "cancelado"
)

// ParseEnrollmentStatus validates an enrollment status string.
func ParseEnrollmentStatus(s string) (EnrollmentStatus, error) {
	switch EnrollmentStatus(s) {
	case EnrollmentActive, EnrollmentCompleted, EnrollmentCancelled:
		return EnrollmentStatus(s), nil
	}
	return "", fmt.Errorf("unknown enrollment status %q", s)
}

// Enrollment records a user's participation in a course. At most one row
// exists per (user, course) pair; rows are never physically deleted in
// normal operation.
type Enrollment struct {
	ID         int64            `json:"id"`
	UserID     int64            `json:"usuario_id"`
	CourseID   int64            `json:"curso_id"`
	EnrolledAt time.Time        `json:"fecha_inscripcion"`
	Status     EnrollmentStatus `json:"estado"`
}

// EnrollmentWithCourse pairs an enrollment with a denormalized snapshot of
// its course for listing endpoints.
type EnrollmentWithCourse struct {
	Enrollment
	Course *Course `json:"curso"`
}
