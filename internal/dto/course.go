package dto

// CreateCourseRequest carries a new course. Field-level rules (non-empty
// name up to 255 chars, duration >= 1, closed category/level sets, existing
// area) are enforced by the course service with coded errors, so a zero
// duration maps to INVALID_DURATION rather than a generic binding failure.
type CreateCourseRequest struct {
	Name          string `json:"nombre"`
	Description   string `json:"descripcion"`
	DurationHours int    `json:"duracion"`
	Category      string `json:"categoria"`
	Level         string `json:"nivel"`
	AreaID        int64  `json:"areaId"`
}

// UpdateCourseRequest is a partial course patch. Pointer fields distinguish
// omitted from zero values; every provided field is revalidated with the
// creation rules.
type UpdateCourseRequest struct {
	Name          *string `json:"nombre"`
	Description   *string `json:"descripcion"`
	DurationHours *int    `json:"duracion"`
	Category      *string `json:"categoria"`
	Level         *string `json:"nivel"`
	AreaID        *int64  `json:"areaId"`
}
