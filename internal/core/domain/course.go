package domain

import (
	"fmt"
	"time"
)

// CourseCategory is the closed set of course categories. Wire values match
// the existing data.
type CourseCategory string

const (
	CategoryProgramming CourseCategory = "Programación"
	CategoryLanguages   CourseCategory = "Idiomas"
	CategoryMathematics CourseCategory = "Matemáticas"
	CategorySciences    CourseCategory = "Ciencias"
	CategoryBusiness    CourseCategory = "Negocios"
	CategoryArt         CourseCategory = "Arte"
	CategoryOther       CourseCategory = "Otro"
)

// ParseCourseCategory validates a category string.
func ParseCourseCategory(s string) (CourseCategory, error) {
	switch CourseCategory(s) {
	case CategoryProgramming, CategoryLanguages, CategoryMathematics,
		CategorySciences, CategoryBusiness, CategoryArt, CategoryOther:
		return CourseCategory(s), nil
	}
	return "", fmt.Errorf("unknown course category %q", s)
}

// CourseLevel is the closed set of course difficulty levels.
type CourseLevel string

const (
	LevelBasic        CourseLevel = "Básico"
	LevelIntermediate CourseLevel = "Intermedio"
	LevelAdvanced     CourseLevel = "Avanzado"
)

// ParseCourseLevel validates a level string.
func ParseCourseLevel(s string) (CourseLevel, error) {
	switch CourseLevel(s) {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
		return CourseLevel(s), nil
	}
	return "", fmt.Errorf("unknown course level %q", s)
}

// Course is a training course offered within an area.
type Course struct {
	ID            int64          `json:"id"`
	Name          string         `json:"nombre"`
	Description   string         `json:"descripcion"`
	DurationHours int            `json:"duracion"`
	Category      CourseCategory `json:"categoria"`
	Level         CourseLevel    `json:"nivel"`
	AreaID        *int64         `json:"areaId"` // nil for courses created before area assignment was mandatory
	CreatorUserID *int64         `json:"creatorUserId,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// CourseUserLink is a derived membership row: it exists for a (course, user)
// pair iff the user's area equaled the course's area at the last
// synchronization. It is fully owned by the course service and rebuilt
// (delete then insert) whenever a course's area changes.
type CourseUserLink struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"cursoId"`
	UserID    int64     `json:"usuarioId"`
	CreatedAt time.Time `json:"created_at"`
}
