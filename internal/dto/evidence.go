package dto

// EvidenceUpload describes one file already written by the file store,
// ready to be recorded as an evidence row.
type EvidenceUpload struct {
	Name      string
	Path      string
	MimeType  string
	SizeBytes int64
}

// UpdateEvidenceRequest is a partial moderation patch for an evidence row.
type UpdateEvidenceRequest struct {
	Status      *string `json:"estado"`
	Description *string `json:"descripcion"`
}

// SubmitEvidenceResponse reports the outcome of an evidence upload.
type SubmitEvidenceResponse struct {
	Message        string `json:"mensaje"`
	FileCount      int    `json:"archivos"`
	AdminsNotified int    `json:"administradoresNotificados"`
}
