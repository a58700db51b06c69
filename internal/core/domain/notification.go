package domain

import "time"

// Notification is an in-app message delivered to a single recipient. Area
// dispatches fan out to one row per user of the targeted areas; evidence
// uploads fan out to every administrator with a nil AreaID.
type Notification struct {
	ID              int64     `json:"id"`
	RecipientUserID int64     `json:"usuarioId"`
	AreaID          *int64    `json:"areaId"`
	Subject         string    `json:"asunto"`
	Body            string    `json:"mensaje"`
	Attachments     []string  `json:"archivos"` // relative web paths
	IsRead          bool      `json:"leida"`
	CreatedAt       time.Time `json:"creadaEn"`
}
