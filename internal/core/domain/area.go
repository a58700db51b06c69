package domain

// Area is an organizational unit. Users and courses belong to exactly one
// area; course visibility and notification targeting are scoped by it.
type Area struct {
	ID   int64  `json:"id"`
	Code string `json:"codigo"`
	Name string `json:"nombre"`
}
