package dto

// EnrollRequest carries the course a caller wants to enroll in.
type EnrollRequest struct {
	CourseID int64 `json:"curso_id"`
}
