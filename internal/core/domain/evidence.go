package domain

import (
	"fmt"
	"time"
)

// EvidenceStatus is the moderation state of an uploaded evidence file.
type EvidenceStatus string

const (
	EvidencePending  EvidenceStatus = "pendiente"
	EvidenceApproved EvidenceStatus = "aprobado"
	EvidenceRejected EvidenceStatus = "rechazado"
)

// ParseEvidenceStatus validates an evidence status string.
func ParseEvidenceStatus(s string) (EvidenceStatus, error) {
	switch EvidenceStatus(s) {
	case EvidencePending, EvidenceApproved, EvidenceRejected:
		return EvidenceStatus(s), nil
	}
	return "", fmt.Errorf("unknown evidence status %q", s)
}

// Evidence is a user-submitted PDF awaiting administrator review.
type Evidence struct {
	ID          int64          `json:"id"`
	OwnerUserID int64          `json:"usuarioId"`
	Name        string         `json:"nombre"`
	Path        string         `json:"ruta"` // relative web path under the upload dir
	MimeType    string         `json:"mimeType"`
	SizeBytes   int64          `json:"tamano"`
	Description string         `json:"descripcion"`
	Status      EvidenceStatus `json:"estado"`
	UploadedAt  time.Time      `json:"fechaCarga"`
}

// EvidenceStatusCount is one row of the per-status evidence summary.
type EvidenceStatusCount struct {
	Status EvidenceStatus `json:"estado"`
	Count  int64          `json:"cantidad"`
}
